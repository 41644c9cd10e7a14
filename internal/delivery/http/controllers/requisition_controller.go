package controllers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"

	"requisitionprint/internal/delivery/http/helpers"
	"requisitionprint/internal/delivery/http/middleware"
	"requisitionprint/internal/domain"
	"requisitionprint/internal/pagination"
	"requisitionprint/internal/snapshot"
)

// Response headers describing a preview or export.
const (
	HeaderPreviewDegraded = "X-Preview-Degraded"
	HeaderPageCount       = "X-Page-Count"
	HeaderDensityTier     = "X-Density-Tier"
)

// maxNoteLength bounds the free-text note added to export emails.
const maxNoteLength = 2000

// emailRegex matches a simple email format (local@domain with at least one dot in domain).
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// PreviewRenderer draws a laid-out form as HTML.
type PreviewRenderer interface {
	Render(w io.Writer, form domain.RequisitionForm, l pagination.Layout[domain.LineItem], degraded bool) error
}

// RequisitionRequest is the request body for POST /requisitions/plan and /requisitions/export.
// When settings is omitted the caller's stored settings apply, else the defaults.
type RequisitionRequest struct {
	Form     domain.RequisitionForm     `json:"form"`
	Settings *domain.PaginationSettings `json:"settings,omitempty"`
}

// Validate implements Validator.
func (r RequisitionRequest) Validate() []string {
	return r.Form.Validate()
}

// EmailExportRequest is the request body for POST /requisitions/export/email.
type EmailExportRequest struct {
	Form     domain.RequisitionForm     `json:"form"`
	Settings *domain.PaginationSettings `json:"settings,omitempty"`
	To       string                     `json:"to"`
	Note     string                     `json:"note,omitempty"`
}

// Validate implements Validator.
func (r EmailExportRequest) Validate() []string {
	errs := r.Form.Validate()
	if r.To == "" {
		errs = append(errs, "to is required")
	} else if !emailRegex.MatchString(r.To) {
		errs = append(errs, "to must be a valid email address")
	}
	if len(r.Note) > maxNoteLength {
		errs = append(errs, fmt.Sprintf("note must not exceed %d characters", maxNoteLength))
	}
	return errs
}

// DensityTierResponse names the tier and its CSS classes.
type DensityTierResponse struct {
	Name           string `json:"name"`
	RowHeightClass string `json:"rowHeightClass"`
	FontSizeClass  string `json:"fontSizeClass"`
	SpacingClass   string `json:"spacingClass"`
}

// PlanResponse is the page plan for a form: how it splits, how dense it is drawn and how it prints.
type PlanResponse struct {
	Settings              domain.PaginationSettings `json:"settings"`
	TotalItems            int                       `json:"totalItems"`
	PageCount             int                       `json:"pageCount"`
	PageSizes             []int                     `json:"pageSizes"`
	Pages                 []helpers.PageMeta        `json:"pages"`
	EffectiveItemsPerPage int                       `json:"effectiveItemsPerPage"`
	DensityTier           DensityTierResponse       `json:"densityTier"`
	Export                domain.ExportPlan         `json:"export"`
}

// PlanSuccessResponse is the success response envelope for POST /requisitions/plan (200).
type PlanSuccessResponse struct {
	Data  PlanResponse      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// EmailExportResponse reports a sent export email.
type EmailExportResponse struct {
	To          string `json:"to"`
	FileName    string `json:"fileName"`
	Pages       int    `json:"pages"`
	DensityTier string `json:"densityTier"`
}

// EmailExportSuccessResponse is the success response envelope for POST /requisitions/export/email (200).
type EmailExportSuccessResponse struct {
	Data  EmailExportResponse `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

type RequisitionController struct {
	Logger   *slog.Logger
	Settings domain.SettingsService
	Exporter domain.ExportService
	Email    domain.EmailService
	Renderer PreviewRenderer
}

func NewRequisitionController(logger *slog.Logger, settings domain.SettingsService, exporter domain.ExportService, email domain.EmailService, renderer PreviewRenderer) *RequisitionController {
	return &RequisitionController{
		Logger:   logger,
		Settings: settings,
		Exporter: exporter,
		Email:    email,
		Renderer: renderer,
	}
}

// Preview godoc
// @Summary Render the print preview
// @Description Renders the form as paginated HTML. This is the page the PDF exporter prints. A missing or malformed data parameter renders an empty form with default settings and sets X-Preview-Degraded.
// @Tags requisitions
// @Produce html
// @Param data query string false "URL-encoded JSON {form, settings?}"
// @Success 200 {string} string "text/html document"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /requisitions/preview [get]
func (c *RequisitionController) Preview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	raw := r.URL.Query().Get(snapshot.Param)
	payload, err := snapshot.Decode(raw)
	degraded := err != nil
	if degraded && raw != "" {
		c.Logger.WarnContext(ctx, "preview payload rejected, rendering empty form", "err", err)
	}
	if !degraded {
		if errs := payload.Form.Validate(); len(errs) > 0 {
			c.Logger.WarnContext(ctx, "preview form invalid, rendering empty form", "errors", errs)
			payload, degraded = domain.PreviewPayload{}, true
		}
	}

	settings := payload.Settings
	if settings == nil && !degraded {
		loaded := c.Settings.Load(ctx, middleware.OwnerFromContext(ctx), len(payload.Form.Items))
		settings = &loaded
	}
	layout := pagination.Plan(payload.Form.Items, settings)

	var buf bytes.Buffer
	if err := c.Renderer.Render(&buf, payload.Form, layout, degraded); err != nil {
		c.Logger.ErrorContext(ctx, "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "preview could not be rendered")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set(HeaderPageCount, strconv.Itoa(layout.PageCount()))
	w.Header().Set(HeaderDensityTier, layout.Tier.Name())
	if degraded {
		w.Header().Set(HeaderPreviewDegraded, "true")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// Plan godoc
// @Summary Compute the page plan
// @Description Returns how the form's line items split into pages, the density tier and the print parameters, without rendering.
// @Tags requisitions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RequisitionRequest true "Form and optional settings"
// @Success 200 {object} controllers.PlanSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /requisitions/plan [post]
func (c *RequisitionController) Plan(w http.ResponseWriter, r *http.Request) {
	var req RequisitionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	settings := req.Settings
	if settings == nil {
		loaded := c.Settings.Load(r.Context(), middleware.OwnerFromContext(r.Context()), len(req.Form.Items))
		settings = &loaded
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, NewPlanResponse(pagination.Plan(req.Form.Items, settings)))
}

// NewPlanResponse summarizes a layout without its items.
func NewPlanResponse(l pagination.Layout[domain.LineItem]) PlanResponse {
	pages := make([]helpers.PageMeta, len(l.Pages))
	for i, p := range l.Pages {
		pages[i] = helpers.PageMeta{
			Number:           p.Number,
			FirstLine:        p.FirstOrdinal,
			Items:            len(p.Items),
			ShowContinuation: p.ShowContinuation,
			BreakAfter:       p.BreakAfter,
		}
	}
	return PlanResponse{
		Settings:              l.Settings,
		TotalItems:            l.TotalItems,
		PageCount:             l.PageCount(),
		PageSizes:             l.PageSizes(),
		Pages:                 pages,
		EffectiveItemsPerPage: l.EffectiveItemsPerPage,
		DensityTier: DensityTierResponse{
			Name:           l.Tier.Name(),
			RowHeightClass: l.Tier.RowHeightClass,
			FontSizeClass:  l.Tier.FontSizeClass,
			SpacingClass:   l.Tier.SpacingClass,
		},
		Export: l.Export,
	}
}

// Export godoc
// @Summary Export the form as PDF
// @Description Prints the preview of the form in a headless browser and returns the PDF as an attachment. X-Page-Count and X-Density-Tier describe the plan that was printed.
// @Tags requisitions
// @Accept json
// @Produce application/pdf
// @Security BearerAuth
// @Param request body RequisitionRequest true "Form and optional settings"
// @Success 200 {file} file "PDF document"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 502 {object} helpers.APIResponse "error.code: export_failed"
// @Failure 504 {object} helpers.APIResponse "error.code: export_timeout"
// @Router /requisitions/export [post]
func (c *RequisitionController) Export(w http.ResponseWriter, r *http.Request) {
	var req RequisitionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	res, ok := c.export(w, r, req.Form, req.Settings)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(res.PDF)))
	w.Header().Set(HeaderPageCount, strconv.Itoa(res.Pages))
	w.Header().Set(HeaderDensityTier, res.DensityTier)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.PDF)
}

// EmailExport godoc
// @Summary Export the form as PDF and email it
// @Description Exports the PDF exactly like POST /requisitions/export and sends it as an attachment to the given address.
// @Tags requisitions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body EmailExportRequest true "Form, optional settings, recipient and note"
// @Success 200 {object} controllers.EmailExportSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 502 {object} helpers.APIResponse "error.code: export_failed or email_failed"
// @Failure 504 {object} helpers.APIResponse "error.code: export_timeout"
// @Router /requisitions/export/email [post]
func (c *RequisitionController) EmailExport(w http.ResponseWriter, r *http.Request) {
	var req EmailExportRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	res, ok := c.export(w, r, req.Form, req.Settings)
	if !ok {
		return
	}
	err := c.Email.SendRequisitionExport(r.Context(), &domain.RequisitionExportEmailData{
		To:          req.To,
		Number:      req.Form.Number,
		Department:  req.Form.Department,
		RequestedBy: req.Form.RequestedBy,
		Pages:       res.Pages,
		Total:       req.Form.Total(),
		Note:        req.Note,
		FileName:    res.FileName,
		PDF:         res.PDF,
	})
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusBadGateway, helpers.ErrCodeEmailFailed, "email could not be sent")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, EmailExportResponse{
		To:          req.To,
		FileName:    res.FileName,
		Pages:       res.Pages,
		DensityTier: res.DensityTier,
	})
}

// export runs the exporter and writes the error response on failure. Nothing is
// written before the outcome is known.
func (c *RequisitionController) export(w http.ResponseWriter, r *http.Request, form domain.RequisitionForm, settings *domain.PaginationSettings) (*domain.ExportResult, bool) {
	res, err := c.Exporter.Export(r.Context(), domain.ExportRequest{
		Owner:    middleware.OwnerFromContext(r.Context()),
		Form:     form,
		Settings: settings,
	})
	if err == nil {
		return res, true
	}
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	if errors.Is(err, domain.ErrExportTimeout) {
		helpers.WriteJSONError(w, http.StatusGatewayTimeout, helpers.ErrCodeExportTimeout, "pdf export timed out")
		return nil, false
	}
	helpers.WriteJSONError(w, http.StatusBadGateway, helpers.ErrCodeExportFailed, "pdf export failed")
	return nil, false
}
