// Package compose turns validated document data into template-specific flows.
// Each template family is a pure function from data plus optional assets to a
// layout.Flow; nothing here touches the PDF backend directly, which keeps the
// compositors deterministic and testable by structure.
package compose

import (
	"strconv"
	"time"

	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"invoice-service/internal/assets"
	"invoice-service/internal/format"
	"invoice-service/internal/layout"
	"invoice-service/internal/models"
)

// Assets carries the optional raster assets attached to a render call. Either
// entry may be nil; compositors reserve the same space regardless.
type Assets struct {
	Logo      *assets.Image
	Signature *assets.Image
}

// Invoice builds the flow for an invoice in its resolved template. Unknown
// selectors fall back to the classic template.
func Invoice(inv *models.InvoiceData, as Assets) layout.Flow {
	symbol := format.SafeCurrency(inv.CurrencySymbol)
	switch models.ResolveInvoiceTemplate(inv.Template) {
	case models.TemplateModern:
		return invoiceModern(inv, as, symbol)
	case models.TemplateMinimal:
		return invoiceMinimal(inv, as, symbol)
	case models.TemplateCorporate:
		return invoiceCorporate(inv, as, symbol)
	case models.TemplateElegant:
		return invoiceElegant(inv, as, symbol)
	default:
		return invoiceClassic(inv, as, symbol)
	}
}

// Receipt builds the flow for a receipt in its resolved template
func Receipt(r *models.ReceiptData, as Assets) layout.Flow {
	symbol := format.SafeCurrency(r.CurrencySymbol)
	switch models.ResolveReceiptTemplate(r.Template) {
	case models.TemplateModern:
		return receiptModern(r, as, symbol)
	case models.TemplateMinimal:
		return receiptMinimal(r, as, symbol)
	case models.TemplateThermal:
		return receiptThermal(r, symbol)
	case models.TemplateElegant:
		return receiptElegant(r, as, symbol)
	default:
		return receiptClassic(r, as, symbol)
	}
}

// item grid geometry shared by every non-thermal template
var itemColumns = []layout.Column{
	{Size: 1, Align: align.Center},
	{Size: 5, Align: align.Left},
	{Size: 2, Align: align.Center},
	{Size: 2, Align: align.Right},
	{Size: 2, Align: align.Right},
}

var itemHeader = []string{"#", "Description", "Qty", "Unit Price", "Total"}

// itemBody numbers rows 1-based in print order, so receipts number the
// filtered set rather than the submitted one.
func itemBody(items []models.LineItem, symbol string) [][]string {
	body := make([][]string, 0, len(items))
	for i, it := range items {
		body = append(body, []string{
			strconv.Itoa(i + 1),
			it.Description,
			format.Quantity(it.Quantity),
			format.Amount(symbol, it.UnitPrice),
			format.Amount(symbol, it.Total()),
		})
	}
	return body
}

// paidItems keeps the rows a receipt prints: a non-empty description and a
// positive quantity.
func paidItems(items []models.LineItem) []models.LineItem {
	kept := make([]models.LineItem, 0, len(items))
	for _, it := range items {
		if it.Description != "" && it.Quantity > 0 {
			kept = append(kept, it)
		}
	}
	return kept
}

// blankBody emits the fixed count of empty rows a receipt prints when no
// valid items were submitted, keeping the printed form's body height. It is
// not used while any valid item exists.
func blankBody(n int) [][]string {
	body := make([][]string, n)
	for i := range body {
		body[i] = []string{"", "", "", "", ""}
	}
	return body
}

func dateOf(d *models.Date) *time.Time {
	if d == nil {
		return nil
	}
	return &d.Time
}

// hasDate reports whether a wire date was actually supplied. Invoice
// compositors omit missing date lines; receipt compositors fall back to today.
func hasDate(d *models.Date) bool {
	return d != nil && !d.IsZero()
}

// appendDateLines appends right-aligned purchase/due date lines, skipping the
// ones that were not supplied.
func appendDateLines(lines []layout.Line, inv *models.InvoiceData, purchaseLabel, dueLabel string, style format.DateStyle, size float64, color *props.Color) []layout.Line {
	if hasDate(inv.PurchaseDate) {
		lines = append(lines, layout.Line{Text: purchaseLabel + format.Date(dateOf(inv.PurchaseDate), style), Size: size, Color: color, Align: align.Right})
	}
	if hasDate(inv.DueDate) {
		lines = append(lines, layout.Line{Text: dueLabel + format.Date(dateOf(inv.DueDate), style), Size: size, Color: color, Align: align.Right})
	}
	return lines
}

// totalsBlock is the template-independent content of the totals region
type totalsBlock struct {
	symbol         string
	subtotal       float64
	discountRate   *float64
	discountAmount float64
	taxRate        *float64
	taxAmount      float64
	total          float64
}

func invoiceTotals(inv *models.InvoiceData, symbol string) totalsBlock {
	return totalsBlock{
		symbol:         symbol,
		subtotal:       inv.Subtotal,
		discountRate:   inv.DiscountRate,
		discountAmount: inv.DiscountAmountValue(),
		taxRate:        inv.TaxRate,
		taxAmount:      inv.TaxAmountValue(),
		total:          inv.Total,
	}
}

func receiptTotals(r *models.ReceiptData, symbol string) totalsBlock {
	return totalsBlock{
		symbol:         symbol,
		subtotal:       r.Subtotal,
		discountRate:   r.DiscountRate,
		discountAmount: r.DiscountAmountValue(),
		taxRate:        r.TaxRate,
		taxAmount:      r.TaxAmountValue(),
		total:          r.Total,
	}
}

type totalsStyle struct {
	labelColor *props.Color
	valueColor *props.Color
	totalColor *props.Color
	ruleColor  *props.Color
	size       float64
	totalSize  float64
	family     string
}

func rateSuffix(rate *float64) string {
	if rate == nil || *rate <= 0 {
		return ""
	}
	return " (" + format.Quantity(*rate) + "%)"
}

// rows renders the right-aligned totals region: subtotal, then discount and
// tax only when their amounts are positive, then the grand total under a
// rule. Order is fixed regardless of template.
func (t totalsBlock) rows(st totalsStyle) []core.Row {
	type entry struct {
		label string
		value string
	}
	entries := []entry{{"Subtotal:", format.Amount(t.symbol, t.subtotal)}}
	if t.discountAmount > 0 {
		entries = append(entries, entry{
			"Discount" + rateSuffix(t.discountRate) + ":",
			"-" + format.Amount(t.symbol, t.discountAmount),
		})
	}
	if t.taxAmount > 0 {
		entries = append(entries, entry{
			"Tax" + rateSuffix(t.taxRate) + ":",
			format.Amount(t.symbol, t.taxAmount),
		})
	}

	out := make([]core.Row, 0, len(entries)+2)
	for _, e := range entries {
		out = append(out, row.New(6).Add(
			col.New(6),
			text.NewCol(3, e.label, props.Text{
				Size: st.size, Align: align.Right, Color: st.labelColor, Family: st.family,
			}),
			text.NewCol(3, e.value, props.Text{
				Size: st.size, Align: align.Right, Color: st.valueColor, Family: st.family,
			}),
		))
	}
	out = append(out, row.New(1).Add(
		col.New(6),
		line.NewCol(6, props.Line{Color: st.ruleColor, Thickness: 0.4}),
	))
	out = append(out, row.New(8).Add(
		col.New(6),
		text.NewCol(3, "Total:", props.Text{
			Size: st.totalSize, Style: fontstyle.Bold, Align: align.Right,
			Color: st.totalColor, Family: st.family,
		}),
		text.NewCol(3, format.Amount(t.symbol, t.total), props.Text{
			Size: st.totalSize, Style: fontstyle.Bold, Align: align.Right,
			Color: st.totalColor, Family: st.family,
		}),
	))
	return out
}

// companyLines builds the issuer identity block. Services is a receipt-only
// tagline so callers pass withServices accordingly.
func companyLines(c models.CompanyDetails, a align.Type, nameColor, mutedColor *props.Color, withServices bool) []layout.Line {
	lines := []layout.Line{{Text: c.Name, Size: 11, Bold: true, Color: nameColor, Align: a}}
	for _, s := range []string{c.Address, c.Email, c.Phone} {
		if s != "" {
			lines = append(lines, layout.Line{Text: s, Size: 8.5, Color: mutedColor, Align: a})
		}
	}
	if withServices && c.Services != "" {
		lines = append(lines, layout.Line{Text: c.Services, Size: 8, Color: mutedColor, Align: a})
	}
	return lines
}

// partyLines builds a labelled counterparty block ("BILL TO", "RECEIVED FROM")
func partyLines(label, name, address string, accent, mutedColor *props.Color) []layout.Line {
	lines := []layout.Line{{Text: label, Size: 9, Bold: true, Color: accent}}
	if name != "" {
		lines = append(lines, layout.Line{Text: name, Size: 10, Bold: true})
	}
	if address != "" {
		lines = append(lines, layout.Line{Text: address, Size: 8.5, Color: mutedColor})
	}
	return lines
}

func commentRows(comments string, accent, mutedColor *props.Color) []core.Row {
	if comments == "" {
		return nil
	}
	return []core.Row{
		layout.Spacer(4),
		row.New(12).Add(layout.Stack(12, 5, []layout.Line{
			{Text: "Notes", Size: 9, Bold: true, Color: accent},
			{Text: comments, Size: 8.5, Color: mutedColor},
		})),
	}
}

// invoiceSignature renders a single right-hand signature slot when a drawn
// signature or a signer name is present, and nothing otherwise.
func invoiceSignature(info *models.SignatureInfo, img *assets.Image, st layout.SignatureStyle) []core.Row {
	if (img == nil || len(img.Data) == 0) && !info.HasName() {
		return nil
	}
	name, position := "", ""
	if info != nil {
		name, position = info.UserName, info.Position
	}
	return []core.Row{
		layout.Spacer(6),
		row.New(34).Add(
			col.New(7),
			layout.SignatureCol(5, "Authorized Signature", img, name, position, st),
		),
	}
}

// receiptSignatures renders the paired slots: the issuer's on the left, and a
// customer slot on the right that is always present as a blank line to sign.
func receiptSignatures(info *models.SignatureInfo, img *assets.Image, st layout.SignatureStyle) []core.Row {
	name, position := "", ""
	if info != nil {
		name, position = info.UserName, info.Position
	}
	return []core.Row{
		layout.Spacer(6),
		row.New(34).Add(
			layout.SignatureCol(5, "Authorized Signature", img, name, position, st),
			col.New(2),
			layout.SignatureCol(5, "Customer Signature", nil, "", "", st),
		),
	}
}

func centeredNote(s string, size float64, color *props.Color, style fontstyle.Type) core.Row {
	return row.New(8).Add(text.NewCol(12, s, props.Text{
		Size:  size,
		Align: align.Center,
		Color: color,
		Style: style,
	}))
}
