package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"requisitionprint/internal/adapters/preview"
	"requisitionprint/internal/delivery/http/controllers"
	"requisitionprint/internal/delivery/http/middleware"
	"requisitionprint/internal/domain"
	"requisitionprint/internal/repository/memory"
	"requisitionprint/internal/services"
)

type staticVerifier struct{}

func (staticVerifier) Verify(token string) (string, error) {
	if token != "good" {
		return "", domain.ErrInvalidToken
	}
	return "user-1", nil
}

type unusedExporter struct{}

func (unusedExporter) Export(ctx context.Context, req domain.ExportRequest) (*domain.ExportResult, error) {
	return nil, domain.ErrExportFailed
}

type unusedEmail struct{}

func (unusedEmail) SendRequisitionExport(ctx context.Context, data *domain.RequisitionExportEmailData) error {
	return nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	settingsSvc := services.NewSettingsService(memory.NewSettingsRepository(), logger)
	renderer, err := preview.NewRenderer()
	require.NoError(t, err)
	return NewRouter(
		controllers.NewRequisitionController(logger, settingsSvc, unusedExporter{}, unusedEmail{}, renderer),
		controllers.NewSettingsController(logger, settingsSvc),
		middleware.RequireAuth(staticVerifier{}, logger),
	)
}

func TestRouter_Auth(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		body   string
		want   int
	}{
		{"preview is public", http.MethodGet, "/requisitions/preview", "", "", http.StatusOK},
		{"settings require token", http.MethodGet, "/settings?total=3", "", "", http.StatusUnauthorized},
		{"settings with token", http.MethodGet, "/settings?total=3", "good", "", http.StatusOK},
		{"plan requires token", http.MethodPost, "/requisitions/plan", "bad", `{"form":{"items":[]}}`, http.StatusUnauthorized},
		{"plan with token", http.MethodPost, "/requisitions/plan", "good", `{"form":{"items":[]}}`, http.StatusOK},
		{"export failure surfaces", http.MethodPost, "/requisitions/export", "good", `{"form":{"items":[]}}`, http.StatusBadGateway},
		{"wrong method", http.MethodDelete, "/settings", "good", "", http.StatusMethodNotAllowed},
		{"health", http.MethodGet, "/healthz", "", "", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, tt.want, rr.Code)
		})
	}
}

func TestRouter_SettingsRoundTrip(t *testing.T) {
	router := newTestRouter(t)

	put := httptest.NewRequest(http.MethodPut, "/settings?total=45", strings.NewReader(`{"itemsPerPage":10,"autoSize":false}`))
	put.Header.Set("Authorization", "Bearer good")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, put)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data":{"settings":{"itemsPerPage":10,"autoSize":false},"persisted":true},"error":null}`, rr.Body.String())

	get := httptest.NewRequest(http.MethodGet, "/settings?total=6", nil)
	get.Header.Set("Authorization", "Bearer good")
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, get)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data":{"settings":{"itemsPerPage":6,"autoSize":false},"persisted":true},"error":null}`, rr.Body.String())
}

func TestRouter_SettingsPutWithoutTotalKeepsStoredValue(t *testing.T) {
	router := newTestRouter(t)

	put := httptest.NewRequest(http.MethodPut, "/settings", strings.NewReader(`{"itemsPerPage":10,"autoSize":false}`))
	put.Header.Set("Authorization", "Bearer good")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, put)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	get := httptest.NewRequest(http.MethodGet, "/settings?total=45", nil)
	get.Header.Set("Authorization", "Bearer good")
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, get)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data":{"settings":{"itemsPerPage":20,"autoSize":true},"persisted":true},"error":null}`, rr.Body.String())
}
