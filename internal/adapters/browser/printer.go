// Package browser prints pages to PDF with a headless Chromium driven by go-rod.
package browser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/ysmood/gson"

	"requisitionprint/internal/domain"
)

// ErrDegradedPreview is returned when the loaded page reports that it fell back
// to an empty form, which means the snapshot in the URL did not decode.
var ErrDegradedPreview = errors.New("preview page rendered in degraded mode")

// Config holds browser launch options.
type Config struct {
	// Bin is the Chromium executable. Empty lets go-rod find or download one.
	Bin string
	// NoSandbox disables the Chromium sandbox, needed when running as root in containers.
	NoSandbox bool
}

type rodPrinter struct {
	cfg    Config
	logger *slog.Logger
}

// NewPrinter returns a PDFPrinter that launches a fresh browser for every call.
func NewPrinter(cfg Config, logger *slog.Logger) domain.PDFPrinter {
	return &rodPrinter{cfg: cfg, logger: logger}
}

func (p *rodPrinter) Print(ctx context.Context, url string, opts domain.PrintOptions) (pdf []byte, err error) {
	l := launcher.New().Context(ctx).Headless(true)
	if p.cfg.Bin != "" {
		l = l.Bin(p.cfg.Bin)
	}
	if p.cfg.NoSandbox {
		l = l.NoSandbox(true)
	}
	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", contextErr(ctx, err))
	}
	defer l.Cleanup()
	defer l.Kill()

	browser := rod.New().Context(ctx).ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect browser: %w", contextErr(ctx, err))
	}
	defer func() {
		if cerr := browser.Close(); cerr != nil {
			p.logger.DebugContext(ctx, "browser close failed", "err", cerr)
		}
	}()

	page, err := browser.Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		return nil, fmt.Errorf("open page: %w", contextErr(ctx, err))
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("wait load: %w", contextErr(ctx, err))
	}
	if err := checkPreview(page); err != nil {
		return nil, err
	}

	stream, err := page.PDF(printRequest(opts))
	if err != nil {
		return nil, fmt.Errorf("print to pdf: %w", contextErr(ctx, err))
	}
	pdf, err = io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read pdf stream: %w", contextErr(ctx, err))
	}
	p.logger.DebugContext(ctx, "page printed", "bytes", len(pdf), "scale", opts.Scale)
	return pdf, nil
}

func checkPreview(page *rod.Page) error {
	body, err := page.Element("body")
	if err != nil {
		return fmt.Errorf("find body: %w", err)
	}
	degraded, err := body.Attribute("data-degraded")
	if err != nil {
		return fmt.Errorf("read preview state: %w", err)
	}
	if degraded != nil && *degraded == "true" {
		return ErrDegradedPreview
	}
	return nil
}

// printRequest maps print options to the DevTools call. Chromium rotates the
// paper itself when Landscape is set, so the short edge goes in PaperWidth.
func printRequest(opts domain.PrintOptions) *proto.PagePrintToPDF {
	w, h := opts.PaperWidth, opts.PaperHeight
	if opts.Landscape && w > h {
		w, h = h, w
	}
	return &proto.PagePrintToPDF{
		Landscape:         opts.Landscape,
		PrintBackground:   opts.PrintBackground,
		Scale:             gson.Num(opts.Scale),
		PaperWidth:        gson.Num(w),
		PaperHeight:       gson.Num(h),
		MarginTop:         gson.Num(opts.Margin.Top),
		MarginBottom:      gson.Num(opts.Margin.Bottom),
		MarginLeft:        gson.Num(opts.Margin.Left),
		MarginRight:       gson.Num(opts.Margin.Right),
		PreferCSSPageSize: false,
	}
}

// contextErr surfaces the caller's deadline so it can be told apart from a browser fault.
func contextErr(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
		return fmt.Errorf("%w: %v", ctxErr, err)
	}
	return err
}
