package controllers

import (
	"log/slog"
	"net/http"

	"requisitionprint/internal/delivery/http/helpers"
	"requisitionprint/internal/delivery/http/middleware"
	"requisitionprint/internal/domain"
)

// SettingsResponse is the body of GET and PUT /settings.
type SettingsResponse struct {
	Settings domain.PaginationSettings `json:"settings"`
	// Persisted is false when the settings store could not be written; the returned settings still apply.
	Persisted bool `json:"persisted"`
}

// SettingsSuccessResponse is the success response envelope for /settings (200).
type SettingsSuccessResponse struct {
	Data  SettingsResponse  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// UpdateSettingsRequest is the request body for PUT /settings. Out-of-range itemsPerPage is clamped, never rejected.
type UpdateSettingsRequest struct {
	ItemsPerPage int  `json:"itemsPerPage"`
	AutoSize     bool `json:"autoSize"`
}

type SettingsController struct {
	Logger  *slog.Logger
	Service domain.SettingsService
}

func NewSettingsController(logger *slog.Logger, svc domain.SettingsService) *SettingsController {
	return &SettingsController{Logger: logger, Service: svc}
}

// GetSettings godoc
// @Summary Get pagination settings
// @Description Returns the caller's stored pagination settings clamped to the given item count, or the defaults (auto-size) when nothing is stored.
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Param total query int false "Number of line items on the current form"
// @Success 200 {object} controllers.SettingsSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /settings [get]
func (c *SettingsController) GetSettings(w http.ResponseWriter, r *http.Request) {
	total, err := helpers.ParseTotal(r)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	s := c.Service.Load(r.Context(), middleware.OwnerFromContext(r.Context()), total)
	helpers.WriteJSONSuccess(w, http.StatusOK, SettingsResponse{Settings: s, Persisted: true})
}

// UpdateSettings godoc
// @Summary Update pagination settings
// @Description Clamps and stores the caller's pagination settings. A storage failure is not an error: the clamped settings are returned with persisted=false.
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param total query int true "Number of line items on the current form"
// @Param settings body UpdateSettingsRequest true "New settings"
// @Success 200 {object} controllers.SettingsSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /settings [put]
func (c *SettingsController) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	total, err := helpers.RequireTotal(r)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	var req UpdateSettingsRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	saved, persisted := c.Service.Save(r.Context(), middleware.OwnerFromContext(r.Context()), total,
		domain.PaginationSettings{ItemsPerPage: req.ItemsPerPage, AutoSize: req.AutoSize})
	helpers.WriteJSONSuccess(w, http.StatusOK, SettingsResponse{Settings: saved, Persisted: persisted})
}
