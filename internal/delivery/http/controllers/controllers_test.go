package controllers

import (
	"context"
	"io"
	"log/slog"

	"requisitionprint/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeSettingsService implements domain.SettingsService for handler tests.
type fakeSettingsService struct {
	stored       *domain.PaginationSettings
	saveFails    bool
	lastOwner    string
	lastTotal    int
	lastSaved    *domain.PaginationSettings
	loadCalls    int
	clampToTotal bool
}

func (f *fakeSettingsService) Load(ctx context.Context, owner string, totalItems int) domain.PaginationSettings {
	f.loadCalls++
	f.lastOwner, f.lastTotal = owner, totalItems
	if f.stored != nil {
		return *f.stored
	}
	return domain.PaginationSettings{ItemsPerPage: min(max(totalItems, 1), 20), AutoSize: true}
}

func (f *fakeSettingsService) Save(ctx context.Context, owner string, totalItems int, s domain.PaginationSettings) (domain.PaginationSettings, bool) {
	f.lastOwner, f.lastTotal = owner, totalItems
	if f.clampToTotal && s.ItemsPerPage > totalItems {
		s.ItemsPerPage = max(totalItems, 1)
	}
	f.lastSaved = &s
	return s, !f.saveFails
}

// fakeExportService implements domain.ExportService for handler tests.
type fakeExportService struct {
	result  *domain.ExportResult
	err     error
	lastReq *domain.ExportRequest
}

func (f *fakeExportService) Export(ctx context.Context, req domain.ExportRequest) (*domain.ExportResult, error) {
	f.lastReq = &req
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

// fakeEmailService implements domain.EmailService for handler tests.
type fakeEmailService struct {
	err  error
	last *domain.RequisitionExportEmailData
}

func (f *fakeEmailService) SendRequisitionExport(ctx context.Context, data *domain.RequisitionExportEmailData) error {
	f.last = data
	return f.err
}
