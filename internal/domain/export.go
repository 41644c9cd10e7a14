package domain

import (
	"context"
	"errors"
)

// Sentinel errors for PDF export.
var (
	ErrExportFailed  = errors.New("pdf export failed")
	ErrExportTimeout = errors.New("pdf export timed out")
)

// Margins are page margins in inches.
type Margins struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// ExportPlan holds the print parameters derived from the effective items per page.
// It is recomputed for every export and never persisted.
// swagger:model ExportPlan
type ExportPlan struct {
	Scale  float64 `json:"scale"`
	Margin Margins `json:"margin"`
}

// PrintOptions are the page-setup parameters handed to the PDF engine.
type PrintOptions struct {
	PaperWidth      float64
	PaperHeight     float64
	Landscape       bool
	PrintBackground bool
	Scale           float64
	Margin          Margins
}

// PDFPrinter renders the page at url and returns the printed PDF bytes.
// Each call owns an isolated browser session.
type PDFPrinter interface {
	Print(ctx context.Context, url string, opts PrintOptions) ([]byte, error)
}

// PDFInfo describes a parsed PDF document.
type PDFInfo struct {
	Pages     int
	Landscape bool
}

// PDFInspector parses PDF bytes and reports their structure.
type PDFInspector interface {
	Inspect(data []byte) (PDFInfo, error)
}

// ExportRequest is the input for one PDF export.
type ExportRequest struct {
	Owner    string
	Form     RequisitionForm
	Settings *PaginationSettings
}

// ExportResult is a finished PDF and the plan that produced it.
type ExportResult struct {
	PDF         []byte
	FileName    string
	Pages       int
	DensityTier string
	Plan        ExportPlan
}

// ExportService produces PDFs from requisition forms.
type ExportService interface {
	Export(ctx context.Context, req ExportRequest) (*ExportResult, error)
}
