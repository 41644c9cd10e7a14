package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/semaphore"

	"requisitionprint/internal/domain"
	"requisitionprint/internal/pagination"
	"requisitionprint/internal/snapshot"
)

// ExportConfig configures the I/O side of PDF export. The decision functions
// are never retried; only printing is.
type ExportConfig struct {
	// PreviewURL is the absolute URL of the preview route the browser loads.
	PreviewURL string
	// Timeout bounds a single print attempt.
	Timeout time.Duration
	// Attempts is the number of print attempts before giving up.
	Attempts int
	// MaxConcurrent caps simultaneous browser sessions.
	MaxConcurrent int64
}

type exportService struct {
	printer   domain.PDFPrinter
	inspector domain.PDFInspector
	settings  domain.SettingsService
	sem       *semaphore.Weighted
	cfg       ExportConfig
	logger    *slog.Logger
}

// NewExportService returns an ExportService that prints the preview route
// through printer and checks the result with inspector.
func NewExportService(printer domain.PDFPrinter, inspector domain.PDFInspector, settings domain.SettingsService, cfg ExportConfig, logger *slog.Logger) domain.ExportService {
	if cfg.Attempts < 1 {
		cfg.Attempts = 1
	}
	if cfg.MaxConcurrent < 1 {
		cfg.MaxConcurrent = 1
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &exportService{
		printer:   printer,
		inspector: inspector,
		settings:  settings,
		sem:       semaphore.NewWeighted(cfg.MaxConcurrent),
		cfg:       cfg,
		logger:    logger,
	}
}

func (s *exportService) Export(ctx context.Context, req domain.ExportRequest) (*domain.ExportResult, error) {
	settings := req.Settings
	if settings == nil {
		loaded := s.settings.Load(ctx, req.Owner, len(req.Form.Items))
		settings = &loaded
	}
	layout := pagination.Plan(req.Form.Items, settings)

	// The browser gets the normalized settings explicitly, so the preview it
	// renders plans exactly what was planned here.
	url, err := snapshot.PreviewURL(s.cfg.PreviewURL, domain.PreviewPayload{Form: req.Form, Settings: &layout.Settings})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}

	if err := s.sem.Acquire(ctx, 1); err != nil {
		return nil, exportError(err)
	}
	defer s.sem.Release(1)

	data, err := s.print(ctx, url, pagination.PrintOptions(layout.Export))
	if err != nil {
		return nil, err
	}

	info, err := s.inspector.Inspect(data)
	if err != nil {
		return nil, fmt.Errorf("%w: unreadable pdf: %v", domain.ErrExportFailed, err)
	}
	if info.Pages != layout.PageCount() {
		s.logger.WarnContext(ctx, "printed page count differs from plan",
			"planned", layout.PageCount(), "printed", info.Pages, "tier", layout.Tier.Name())
	}
	if !info.Landscape {
		s.logger.WarnContext(ctx, "printed pdf is not landscape")
	}

	return &domain.ExportResult{
		PDF:         data,
		FileName:    req.Form.FileName(),
		Pages:       layout.PageCount(),
		DensityTier: layout.Tier.Name(),
		Plan:        layout.Export,
	}, nil
}

// print retries without delay; each attempt gets its own timeout.
func (s *exportService) print(ctx context.Context, url string, opts domain.PrintOptions) ([]byte, error) {
	attempt := 0
	op := func() ([]byte, error) {
		attempt++
		attemptCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
		data, err := s.printer.Print(attemptCtx, url, opts)
		if err == nil {
			return data, nil
		}
		s.logger.WarnContext(ctx, "print attempt failed", "attempt", attempt, "of", s.cfg.Attempts, "err", err)
		if ctx.Err() != nil {
			return nil, backoff.Permanent(err)
		}
		return nil, err
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(&backoff.ZeroBackOff{}, uint64(s.cfg.Attempts-1)), ctx)
	data, err := backoff.RetryWithData(op, policy)
	if err != nil {
		return nil, exportError(err)
	}
	return data, nil
}

func exportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", domain.ErrExportTimeout, err)
	}
	return fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
}
