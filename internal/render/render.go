// Package render is the pagination backend: it owns page geometry and turns a
// composed flow into PDF bytes.
package render

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontfamily"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"invoice-service/internal/layout"
	"invoice-service/internal/models"
)

// Options describes the page geometry of a document. Dimensions and margins
// are in millimeters; zero Width/Height means A4 portrait.
type Options struct {
	Width  float64
	Height float64
	Margin float64
	Font   string
}

// Thermal tickets print on 3in continuous stock; we emit an 11in page of it.
const (
	thermalPageWidth  = 76.2
	thermalPageHeight = 279.4
)

// OptionsFor returns the page geometry a template family expects. The wide
// margins of the minimal and elegant families are part of their look; the
// thermal family switches to narrow continuous stock.
func OptionsFor(kind models.DocumentKind, template models.Template) Options {
	if kind == models.DocumentKindReceipt && template == models.TemplateThermal {
		return Options{
			Width:  thermalPageWidth,
			Height: thermalPageHeight,
			Margin: 2.5,
			Font:   fontfamily.Courier,
		}
	}
	switch template {
	case models.TemplateMinimal, models.TemplateElegant:
		return Options{Margin: 20.3}
	default:
		return Options{Margin: 12.7}
	}
}

// Document paginates the flow and returns the PDF bytes
func Document(flow layout.Flow, opts Options) ([]byte, error) {
	b := config.NewBuilder().
		WithLeftMargin(opts.Margin).
		WithTopMargin(opts.Margin).
		WithRightMargin(opts.Margin)

	if opts.Width > 0 && opts.Height > 0 {
		b.WithDimensions(opts.Width, opts.Height)
	} else {
		b.WithPageSize(pagesize.A4)
	}
	if opts.Font != "" {
		b.WithDefaultFont(&props.Font{Family: opts.Font})
	}

	m := maroto.New(b.Build())
	m.AddRows(flow...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}
