// Package pdfinspect checks printed PDFs with pdfcpu before they leave the service.
package pdfinspect

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"requisitionprint/internal/domain"
)

type inspector struct {
	conf *model.Configuration
}

// NewInspector returns a PDFInspector backed by pdfcpu in relaxed validation mode.
func NewInspector() domain.PDFInspector {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &inspector{conf: conf}
}

// Inspect reports the page count and whether the first page is landscape.
func (i *inspector) Inspect(data []byte) (domain.PDFInfo, error) {
	if len(data) == 0 {
		return domain.PDFInfo{}, errors.New("empty pdf")
	}
	pages, err := api.PageCount(bytes.NewReader(data), i.conf)
	if err != nil {
		return domain.PDFInfo{}, fmt.Errorf("count pages: %w", err)
	}
	if pages < 1 {
		return domain.PDFInfo{}, errors.New("pdf has no pages")
	}
	dims, err := api.PageDims(bytes.NewReader(data), i.conf)
	if err != nil {
		return domain.PDFInfo{}, fmt.Errorf("page dimensions: %w", err)
	}
	info := domain.PDFInfo{Pages: pages}
	if len(dims) > 0 {
		info.Landscape = dims[0].Width > dims[0].Height
	}
	return info, nil
}
