package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"requisitionprint/internal/domain"
	"requisitionprint/internal/snapshot"
)

// fakePrinter implements domain.PDFPrinter. It fails the first failures calls.
type fakePrinter struct {
	mu       sync.Mutex
	failures int
	err      error
	block    bool
	calls    int
	lastURL  string
	lastOpts domain.PrintOptions
	active   atomic.Int32
	peak     atomic.Int32
	hold     time.Duration
}

func (f *fakePrinter) Print(ctx context.Context, u string, opts domain.PrintOptions) ([]byte, error) {
	n := f.active.Add(1)
	defer f.active.Add(-1)
	for {
		p := f.peak.Load()
		if n <= p || f.peak.CompareAndSwap(p, n) {
			break
		}
	}

	f.mu.Lock()
	f.calls++
	f.lastURL = u
	f.lastOpts = opts
	fail := f.calls <= f.failures
	f.mu.Unlock()

	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if f.hold > 0 {
		time.Sleep(f.hold)
	}
	if fail {
		return nil, f.err
	}
	return []byte("%PDF-1.7 fake"), nil
}

// fakeInspector implements domain.PDFInspector.
type fakeInspector struct {
	info domain.PDFInfo
	err  error
}

func (f *fakeInspector) Inspect(data []byte) (domain.PDFInfo, error) {
	return f.info, f.err
}

func itemsN(n int) []domain.LineItem {
	items := make([]domain.LineItem, n)
	for i := range items {
		items[i] = domain.LineItem{Description: fmt.Sprintf("item %d", i+1), Quantity: 1}
	}
	return items
}

func newExport(p domain.PDFPrinter, insp domain.PDFInspector, store domain.SettingsStore, cfg ExportConfig) domain.ExportService {
	if cfg.PreviewURL == "" {
		cfg.PreviewURL = "http://127.0.0.1:8080/requisitions/preview"
	}
	return NewExportService(p, insp, NewSettingsService(store, discardLogger()), cfg, discardLogger())
}

func TestExportService_Export(t *testing.T) {
	ctx := context.Background()
	printer := &fakePrinter{}
	insp := &fakeInspector{info: domain.PDFInfo{Pages: 3, Landscape: true}}
	svc := newExport(printer, insp, newFakeSettingsStore(), ExportConfig{Attempts: 1, Timeout: time.Second})

	res, err := svc.Export(ctx, domain.ExportRequest{
		Form:     domain.RequisitionForm{Number: "RQ 88", Items: itemsN(45)},
		Settings: &domain.PaginationSettings{ItemsPerPage: 16, AutoSize: false},
	})
	require.NoError(t, err)

	assert.Equal(t, "requisition-RQ-88.pdf", res.FileName)
	assert.Equal(t, 3, res.Pages)
	assert.Equal(t, "Maximal", res.DensityTier)
	assert.Equal(t, 0.94, res.Plan.Scale)
	assert.NotEmpty(t, res.PDF)

	assert.Equal(t, 0.94, printer.lastOpts.Scale)
	assert.True(t, printer.lastOpts.Landscape)
	assert.Equal(t, 11.0, printer.lastOpts.PaperWidth)

	u, err := url.Parse(printer.lastURL)
	require.NoError(t, err)
	payload, err := snapshot.Decode(u.Query().Get(snapshot.Param))
	require.NoError(t, err)
	require.NotNil(t, payload.Settings)
	assert.Equal(t, domain.PaginationSettings{ItemsPerPage: 16, AutoSize: false}, *payload.Settings)
	assert.Len(t, payload.Form.Items, 45)
}

func TestExportService_UsesPersistedSettingsWhenAbsent(t *testing.T) {
	ctx := context.Background()
	store := newFakeSettingsStore()
	store.values[domain.SettingsKeyFor("u7")] = []byte(`{"itemsPerPage":8,"autoSize":false}`)
	printer := &fakePrinter{}
	svc := newExport(printer, &fakeInspector{info: domain.PDFInfo{Pages: 3, Landscape: true}}, store, ExportConfig{})

	res, err := svc.Export(ctx, domain.ExportRequest{Owner: "u7", Form: domain.RequisitionForm{Items: itemsN(20)}})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Pages)
	assert.Equal(t, "Compact", res.DensityTier)
	assert.Equal(t, 0.97, printer.lastOpts.Scale)
}

func TestExportService_DefaultsWithoutAnySettings(t *testing.T) {
	printer := &fakePrinter{}
	svc := newExport(printer, &fakeInspector{info: domain.PDFInfo{Pages: 1, Landscape: true}}, newFakeSettingsStore(), ExportConfig{})

	res, err := svc.Export(context.Background(), domain.ExportRequest{Form: domain.RequisitionForm{Items: itemsN(10)}})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Pages)
	assert.Equal(t, "Dense", res.DensityTier)
	assert.Equal(t, 0.98, res.Plan.Scale)
}

func TestExportService_Failures(t *testing.T) {
	tests := []struct {
		name      string
		printer   *fakePrinter
		inspector *fakeInspector
		cfg       ExportConfig
		errIs     error
		wantCalls int
	}{
		{
			name:      "retries then succeeds",
			printer:   &fakePrinter{failures: 1, err: errors.New("navigation failed")},
			inspector: &fakeInspector{info: domain.PDFInfo{Pages: 1, Landscape: true}},
			cfg:       ExportConfig{Attempts: 2, Timeout: time.Second},
			wantCalls: 2,
		},
		{
			name:      "gives up after attempts",
			printer:   &fakePrinter{failures: 5, err: errors.New("browser crashed")},
			inspector: &fakeInspector{},
			cfg:       ExportConfig{Attempts: 3, Timeout: time.Second},
			errIs:     domain.ErrExportFailed,
			wantCalls: 3,
		},
		{
			name:      "attempt deadline is a timeout",
			printer:   &fakePrinter{block: true},
			inspector: &fakeInspector{},
			cfg:       ExportConfig{Attempts: 2, Timeout: 20 * time.Millisecond},
			errIs:     domain.ErrExportTimeout,
			wantCalls: 2,
		},
		{
			name:      "corrupt pdf is never returned",
			printer:   &fakePrinter{},
			inspector: &fakeInspector{err: errors.New("no xref")},
			cfg:       ExportConfig{Attempts: 2, Timeout: time.Second},
			errIs:     domain.ErrExportFailed,
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newExport(tt.printer, tt.inspector, newFakeSettingsStore(), tt.cfg)
			res, err := svc.Export(context.Background(), domain.ExportRequest{Form: domain.RequisitionForm{Items: itemsN(4)}})
			assert.Equal(t, tt.wantCalls, tt.printer.calls)
			if tt.errIs == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.errIs)
			assert.Nil(t, res)
		})
	}
}

func TestExportService_CallerCancelStopsRetries(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	printer := &fakePrinter{block: true}
	svc := newExport(printer, &fakeInspector{}, newFakeSettingsStore(), ExportConfig{Attempts: 5, Timeout: time.Second})

	_, err := svc.Export(ctx, domain.ExportRequest{})
	require.ErrorIs(t, err, domain.ErrExportTimeout)
	assert.Equal(t, 1, printer.calls)
}

func TestExportService_BoundsConcurrentSessions(t *testing.T) {
	printer := &fakePrinter{hold: 20 * time.Millisecond}
	svc := newExport(printer, &fakeInspector{info: domain.PDFInfo{Pages: 1, Landscape: true}}, newFakeSettingsStore(),
		ExportConfig{Attempts: 1, Timeout: time.Second, MaxConcurrent: 2})

	var wg sync.WaitGroup
	for i := 0; i < 6; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Export(context.Background(), domain.ExportRequest{Form: domain.RequisitionForm{Items: itemsN(2)}})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 6, printer.calls)
	assert.LessOrEqual(t, printer.peak.Load(), int32(2))
}
