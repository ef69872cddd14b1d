// Package layout provides the reusable building blocks the template
// compositors assemble documents from: stacked styled text, grids with
// computed column styling, dividers and accent bars, and image embedding with
// a placeholder fallback that preserves geometry.
//
// Everything here produces maroto rows and columns; the pagination backend
// consumes the resulting Flow and performs page-breaking and margins.
package layout

import (
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"invoice-service/internal/assets"
)

// Flow is the ordered, append-only block sequence handed to the render
// backend.
type Flow []core.Row

// Add appends rows to the flow
func (f *Flow) Add(rows ...core.Row) {
	*f = append(*f, rows...)
}

// RGB builds a maroto color
func RGB(r, g, b int) *props.Color {
	return &props.Color{Red: r, Green: g, Blue: b}
}

var (
	// White is shared by header rows across templates
	White = RGB(255, 255, 255)
	// Black is the default text color
	Black = RGB(0, 0, 0)
	// Grey is used for rules and muted text
	Grey = RGB(128, 128, 128)
)

// Spacer returns an explicit vertical gap
func Spacer(height float64) core.Row {
	return row.New(height)
}

// Divider returns a full-width horizontal rule
func Divider(height float64, ps ...props.Line) core.Row {
	return line.NewRow(height, ps...)
}

// AccentBar returns a filled full-width rectangle used as a visual separator
func AccentBar(height float64, color *props.Color) core.Row {
	return row.New(height).WithStyle(&props.Cell{BackgroundColor: color})
}

// Line is one styled line of text inside a stacked column
type Line struct {
	Text   string
	Size   float64
	Bold   bool
	Color  *props.Color
	Align  align.Type
	Family string
}

// Stack lays lines vertically inside one column, spaced by lineHeight. This
// is the paragraph primitive: mixed sizes, weights and colors within a single
// cell.
func Stack(size int, lineHeight float64, lines []Line) core.Col {
	c := col.New(size)
	top := 0.0
	for _, ln := range lines {
		if ln.Text == "" {
			top += lineHeight / 2
			continue
		}
		p := props.Text{
			Top:    top,
			Size:   ln.Size,
			Align:  ln.Align,
			Color:  ln.Color,
			Family: ln.Family,
		}
		if ln.Bold {
			p.Style = fontstyle.Bold
		}
		c.Add(text.New(ln.Text, p))
		top += lineHeight
	}
	return c
}

// ImageCol embeds an image at the given grid width. A nil image yields an
// empty column of the same grid size, so surrounding layout never shifts when
// the asset is absent or failed to decode.
func ImageCol(size int, img *assets.Image, rect props.Rect) core.Col {
	if img == nil || len(img.Data) == 0 {
		return col.New(size)
	}
	return col.New(size).Add(image.NewFromBytes(img.Data, img.Ext, rect))
}

// BorderRule selects how a table draws its borders
type BorderRule int

const (
	// BorderNone draws no borders
	BorderNone BorderRule = iota
	// BorderGrid draws the full cell grid
	BorderGrid
	// BorderUnderline draws a rule under the header and under each body row
	BorderUnderline
)

// Column describes one table column: grid width and text alignment
type Column struct {
	Size  int
	Align align.Type
}

// TableStyle carries the per-template styling constants for a grid
type TableStyle struct {
	HeaderBackground *props.Color
	HeaderColor      *props.Color
	HeaderBold       bool
	HeaderSize       float64
	HeaderHeight     float64
	BodySize         float64
	BodyColor        *props.Color
	RowHeight        float64
	AltRowBackground *props.Color
	Border           BorderRule
	BorderColor      *props.Color
	Family           string
}

// Table builds a grid: one header row plus one body row per entry, in input
// order, with alternating backgrounds and the requested border rule.
func Table(cols []Column, header []string, body [][]string, style TableStyle) []core.Row {
	rows := make([]core.Row, 0, len(body)+2)

	headerRow := row.New(style.HeaderHeight)
	if style.HeaderBackground != nil {
		headerRow.WithStyle(&props.Cell{BackgroundColor: style.HeaderBackground})
	}
	headerCells := make([]core.Col, 0, len(cols))
	for i, c := range cols {
		p := props.Text{
			Size:   style.HeaderSize,
			Align:  c.Align,
			Color:  style.HeaderColor,
			Top:    1,
			Left:   1,
			Right:  1,
			Family: style.Family,
		}
		if style.HeaderBold {
			p.Style = fontstyle.Bold
		}
		cell := col.New(c.Size).Add(text.New(header[i], p))
		if style.Border == BorderGrid {
			cell.WithStyle(gridCellStyle(style, style.HeaderBackground))
		}
		headerCells = append(headerCells, cell)
	}
	headerRow.Add(headerCells...)
	rows = append(rows, headerRow)

	if style.Border == BorderUnderline {
		rows = append(rows, line.NewRow(1, props.Line{Color: style.BorderColor, Thickness: 0.4}))
	}

	for rowIdx, values := range body {
		var bg *props.Color
		if style.AltRowBackground != nil && rowIdx%2 == 1 {
			bg = style.AltRowBackground
		}
		r := row.New(style.RowHeight)
		if bg != nil && style.Border != BorderGrid {
			r.WithStyle(&props.Cell{BackgroundColor: bg})
		}
		cells := make([]core.Col, 0, len(cols))
		for i, c := range cols {
			cell := col.New(c.Size).Add(text.New(values[i], props.Text{
				Size:   style.BodySize,
				Align:  c.Align,
				Color:  style.BodyColor,
				Top:    1,
				Left:   1,
				Right:  1,
				Family: style.Family,
			}))
			if style.Border == BorderGrid {
				cell.WithStyle(gridCellStyle(style, bg))
			}
			cells = append(cells, cell)
		}
		r.Add(cells...)
		rows = append(rows, r)

		if style.Border == BorderUnderline {
			rows = append(rows, line.NewRow(1, props.Line{Color: style.BorderColor, Thickness: 0.2}))
		}
	}

	return rows
}

func gridCellStyle(style TableStyle, bg *props.Color) *props.Cell {
	return &props.Cell{
		BackgroundColor: bg,
		BorderType:      border.Full,
		BorderColor:     style.BorderColor,
		BorderThickness: 0.2,
	}
}

// SignatureStyle carries the visual constants of a signature column
type SignatureStyle struct {
	LabelColor *props.Color
	NameColor  *props.Color
	LineColor  *props.Color
	LabelSize  float64
	NameSize   float64
}

// SignatureCol renders one signature slot: a fixed-height image area (image
// or invisible placeholder of the same reserved size), a rule, a bold label,
// and optional name and position lines beneath. Designed for a 34-unit row.
func SignatureCol(size int, label string, img *assets.Image, name, position string, style SignatureStyle) core.Col {
	c := col.New(size)

	if img != nil && len(img.Data) > 0 {
		c.Add(image.NewFromBytes(img.Data, img.Ext, props.Rect{
			Top:     1,
			Percent: 80,
			Center:  true,
		}))
	}

	// The rule sits below the image slot regardless of whether an image was
	// drawn, keeping the region geometry identical either way.
	c.Add(line.New(props.Line{
		Color:         style.LineColor,
		Thickness:     0.3,
		OffsetPercent: 48,
		SizePercent:   70,
	}))

	c.Add(text.New(label, props.Text{
		Top:   18,
		Size:  style.LabelSize,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: style.LabelColor,
	}))

	top := 23.0
	if name != "" {
		c.Add(text.New(name, props.Text{
			Top:   top,
			Size:  style.NameSize,
			Align: align.Center,
			Color: style.NameColor,
		}))
		top += 4
	}
	if position != "" {
		c.Add(text.New(position, props.Text{
			Top:   top,
			Size:  style.NameSize,
			Align: align.Center,
			Color: style.NameColor,
		}))
	}

	return c
}
