package compose

import (
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontfamily"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"invoice-service/internal/format"
	"invoice-service/internal/layout"
	"invoice-service/internal/models"
)

// Blank body row counts per template, emitted only when a receipt carries no
// valid items so the printed form keeps its shape.
const (
	classicBodyRows = 10
	modernBodyRows  = 5
	minimalBodyRows = 3
)

func receiptClassic(r *models.ReceiptData, as Assets, symbol string) layout.Flow {
	green := layout.RGB(39, 96, 54)
	muted := layout.RGB(110, 110, 110)

	var f layout.Flow

	f.Add(row.New(22).Add(
		layout.ImageCol(3, as.Logo, props.Rect{Percent: 90}),
		col.New(4),
		layout.Stack(5, 6, []layout.Line{
			{Text: "RECEIPT", Size: 24, Bold: true, Color: green, Align: align.Right},
			{Text: "# " + r.ReceiptNumber, Size: 10, Color: muted, Align: align.Right},
		}),
	))
	f.Add(layout.Spacer(2))

	f.Add(row.New(26).Add(
		layout.Stack(6, 4.5, companyLines(r.Company, align.Left, green, muted, true)),
		layout.Stack(6, 4.5, []layout.Line{
			{Text: "Date: " + format.Date(dateOf(r.PaymentDate), format.DateUS), Size: 9, Color: muted, Align: align.Right},
			{Text: "Paid By: " + format.PaymentMethod(r.PaymentMethod), Size: 9, Color: muted, Align: align.Right},
		}),
	))

	f.Add(row.New(18).Add(
		layout.Stack(6, 4.5, partyLines("RECEIVED FROM", r.CustomerName, r.CustomerAddress, green, muted)),
	))
	f.Add(layout.Spacer(4))

	body := itemBody(paidItems(r.Items), symbol)
	if len(body) == 0 {
		body = blankBody(classicBodyRows)
	}
	f.Add(layout.Table(itemColumns, itemHeader, body, layout.TableStyle{
		HeaderBackground: green,
		HeaderColor:      layout.White,
		HeaderBold:       true,
		HeaderSize:       9.5,
		HeaderHeight:     8,
		BodySize:         9,
		RowHeight:        7,
		Border:           layout.BorderGrid,
		BorderColor:      green,
	})...)
	f.Add(layout.Spacer(4))

	f.Add(receiptTotals(r, symbol).rows(totalsStyle{
		labelColor: muted,
		valueColor: layout.Black,
		totalColor: green,
		ruleColor:  green,
		size:       9.5,
		totalSize:  12,
	})...)

	f.Add(commentRows(r.Comments, green, muted)...)
	f.Add(receiptSignatures(r.Signature, as.Signature, layout.SignatureStyle{
		LabelColor: green, NameColor: muted, LineColor: green, LabelSize: 9, NameSize: 8,
	})...)

	f.Add(layout.Spacer(4))
	f.Add(layout.Divider(2, props.Line{Color: green, Thickness: 0.5}))
	f.Add(centeredNote(thanksLine, 9, muted, fontstyle.Italic))

	return f
}

func receiptModern(r *models.ReceiptData, as Assets, symbol string) layout.Flow {
	violet := layout.RGB(108, 92, 231)
	slate := layout.RGB(45, 52, 54)
	muted := layout.RGB(128, 128, 140)
	zebra := layout.RGB(246, 245, 252)

	var f layout.Flow

	f.Add(layout.AccentBar(3, violet))
	f.Add(layout.Spacer(4))

	f.Add(row.New(22).Add(
		layout.Stack(6, 6, []layout.Line{
			{Text: "Receipt", Size: 26, Bold: true, Color: slate},
			{Text: r.ReceiptNumber, Size: 10, Color: violet},
		}),
		col.New(3),
		layout.ImageCol(3, as.Logo, props.Rect{Percent: 90, Center: true}),
	))
	f.Add(layout.Spacer(3))

	f.Add(row.New(26).Add(
		layout.Stack(5, 4.5, partyLines("RECEIVED FROM", r.CustomerName, r.CustomerAddress, violet, muted)),
		col.New(2),
		layout.Stack(5, 4.5, append(
			companyLines(r.Company, align.Right, slate, muted, true),
			layout.Line{Text: format.Date(dateOf(r.PaymentDate), format.DateLong), Size: 8.5, Color: muted, Align: align.Right},
			layout.Line{Text: format.PaymentMethod(r.PaymentMethod), Size: 8.5, Color: violet, Align: align.Right},
		)),
	))
	f.Add(layout.Spacer(5))

	body := itemBody(paidItems(r.Items), symbol)
	if len(body) == 0 {
		body = blankBody(modernBodyRows)
	}
	f.Add(layout.Table(itemColumns, itemHeader, body, layout.TableStyle{
		HeaderColor:      violet,
		HeaderBold:       true,
		HeaderSize:       9,
		HeaderHeight:     8,
		BodySize:         9,
		BodyColor:        slate,
		RowHeight:        7,
		AltRowBackground: zebra,
		Border:           layout.BorderUnderline,
		BorderColor:      violet,
	})...)
	f.Add(layout.Spacer(4))

	f.Add(receiptTotals(r, symbol).rows(totalsStyle{
		labelColor: muted,
		valueColor: slate,
		totalColor: violet,
		ruleColor:  violet,
		size:       9.5,
		totalSize:  13,
	})...)

	f.Add(commentRows(r.Comments, violet, muted)...)
	f.Add(receiptSignatures(r.Signature, as.Signature, layout.SignatureStyle{
		LabelColor: slate, NameColor: muted, LineColor: violet, LabelSize: 9, NameSize: 8,
	})...)

	f.Add(layout.Spacer(4))
	f.Add(layout.AccentBar(1.5, violet))
	f.Add(centeredNote(thanksLine, 9, muted, fontstyle.Normal))

	return f
}

func receiptMinimal(r *models.ReceiptData, as Assets, symbol string) layout.Flow {
	ink := layout.RGB(40, 40, 40)
	muted := layout.RGB(140, 140, 140)
	hairline := layout.RGB(210, 210, 210)

	var f layout.Flow

	f.Add(row.New(20).Add(
		layout.Stack(7, 6, []layout.Line{
			{Text: "Receipt", Size: 20, Color: ink},
			{Text: r.ReceiptNumber, Size: 9, Color: muted},
		}),
		col.New(2),
		layout.ImageCol(3, as.Logo, props.Rect{Percent: 80, Center: true}),
	))
	f.Add(layout.Divider(1, props.Line{Color: hairline, Thickness: 0.3}))
	f.Add(layout.Spacer(4))

	f.Add(row.New(24).Add(
		layout.Stack(4, 4.5, companyLines(r.Company, align.Left, ink, muted, true)),
		layout.Stack(4, 4.5, partyLines("Received from", r.CustomerName, r.CustomerAddress, muted, muted)),
		layout.Stack(4, 4.5, []layout.Line{
			{Text: format.Date(dateOf(r.PaymentDate), format.DateISO), Size: 9, Color: ink, Align: align.Right},
			{Text: format.PaymentMethod(r.PaymentMethod), Size: 8, Color: muted, Align: align.Right},
		}),
	))
	f.Add(layout.Spacer(6))

	body := itemBody(paidItems(r.Items), symbol)
	if len(body) == 0 {
		body = blankBody(minimalBodyRows)
	}
	f.Add(layout.Table(itemColumns, itemHeader, body, layout.TableStyle{
		HeaderColor:  muted,
		HeaderSize:   8.5,
		HeaderHeight: 7,
		BodySize:     9,
		BodyColor:    ink,
		RowHeight:    7,
		Border:       layout.BorderUnderline,
		BorderColor:  hairline,
	})...)
	f.Add(layout.Spacer(4))

	f.Add(receiptTotals(r, symbol).rows(totalsStyle{
		labelColor: muted,
		valueColor: ink,
		totalColor: ink,
		ruleColor:  ink,
		size:       9,
		totalSize:  11,
	})...)

	f.Add(commentRows(r.Comments, muted, muted)...)
	f.Add(receiptSignatures(r.Signature, as.Signature, layout.SignatureStyle{
		LabelColor: ink, NameColor: muted, LineColor: hairline, LabelSize: 8.5, NameSize: 8,
	})...)

	return f
}

const thermalWidth = 30

func thermalLine(s string, size float64, bold bool) core.Row {
	p := props.Text{Size: size, Align: align.Center, Family: fontfamily.Courier}
	if bold {
		p.Style = fontstyle.Bold
	}
	return row.New(3.6).Add(text.NewCol(12, s, p))
}

func thermalRule(ch string) core.Row {
	return thermalLine(strings.Repeat(ch, thermalWidth), 7, false)
}

// receiptThermal reproduces a point-of-sale ticket: narrow continuous stock,
// monospaced, everything centered, rules drawn as character runs.
func receiptThermal(r *models.ReceiptData, symbol string) layout.Flow {
	var f layout.Flow

	f.Add(thermalLine(strings.ToUpper(r.Company.Name), 9, true))
	for _, s := range []string{r.Company.Address, r.Company.Phone, r.Company.Services} {
		if s != "" {
			f.Add(thermalLine(s, 7, false))
		}
	}
	f.Add(thermalRule("="))
	f.Add(thermalLine("CASH RECEIPT", 8.5, true))
	f.Add(thermalLine("# "+r.ReceiptNumber, 7.5, false))
	f.Add(thermalLine(format.Date(dateOf(r.PaymentDate), format.DateUS), 7.5, false))
	f.Add(thermalLine("Paid by "+format.PaymentMethod(r.PaymentMethod), 7.5, false))
	if r.CustomerName != "" {
		f.Add(thermalLine("Customer: "+r.CustomerName, 7.5, false))
	}
	f.Add(thermalRule("-"))

	items := paidItems(r.Items)
	if len(items) == 0 {
		f.Add(thermalLine("No items", 7.5, false))
	}
	for _, it := range items {
		f.Add(thermalLine(it.Description, 7.5, false))
		f.Add(thermalLine(fmt.Sprintf("%s x %s = %s",
			format.Quantity(it.Quantity),
			format.Amount(symbol, it.UnitPrice),
			format.Amount(symbol, it.Total()),
		), 7.5, false))
	}

	f.Add(thermalRule("-"))
	f.Add(thermalLine("SUBTOTAL: "+format.Amount(symbol, r.Subtotal), 7.5, false))
	if d := r.DiscountAmountValue(); d > 0 {
		f.Add(thermalLine("DISCOUNT: -"+format.Amount(symbol, d), 7.5, false))
	}
	if t := r.TaxAmountValue(); t > 0 {
		f.Add(thermalLine("TAX: "+format.Amount(symbol, t), 7.5, false))
	}
	f.Add(thermalLine("TOTAL: "+format.Amount(symbol, r.Total), 9, true))
	f.Add(thermalRule("="))
	if r.Comments != "" {
		f.Add(thermalLine(r.Comments, 7, false))
	}
	f.Add(thermalLine("THANK YOU!", 8.5, true))
	f.Add(layout.Spacer(2))
	f.Add(thermalLine("SELLER: ___________", 7.5, false))
	f.Add(thermalLine("CUSTOMER: _________", 7.5, false))

	return f
}

// receiptElegant prints every submitted row as-is, including zero-quantity
// ones, matching the layout of the long-form stationery it is modeled on.
func receiptElegant(r *models.ReceiptData, as Assets, symbol string) layout.Flow {
	gold := layout.RGB(176, 141, 87)
	charcoal := layout.RGB(60, 60, 60)
	muted := layout.RGB(130, 125, 115)

	var f layout.Flow

	f.Add(row.New(14).Add(layout.ImageCol(12, as.Logo, props.Rect{Percent: 55, Center: true})))
	f.Add(row.New(10).Add(text.NewCol(12, r.Company.Name, props.Text{
		Size: 18, Align: align.Center, Color: charcoal,
	})))
	if r.Company.Services != "" {
		f.Add(row.New(5).Add(text.NewCol(12, r.Company.Services, props.Text{
			Size: 8.5, Align: align.Center, Color: muted, Style: fontstyle.Italic,
		})))
	}
	f.Add(layout.Divider(1, props.Line{Color: gold, Thickness: 0.6}))
	f.Add(layout.Divider(2, props.Line{Color: gold, Thickness: 0.2}))
	f.Add(row.New(8).Add(text.NewCol(12, "Receipt "+r.ReceiptNumber, props.Text{
		Size: 11, Align: align.Center, Color: gold, Style: fontstyle.Bold,
	})))
	f.Add(layout.Spacer(3))

	f.Add(row.New(24).Add(
		layout.Stack(6, 4.5, partyLines("Received from", r.CustomerName, r.CustomerAddress, gold, muted)),
		layout.Stack(6, 4.5, []layout.Line{
			{Text: format.Date(dateOf(r.PaymentDate), format.DateLong), Size: 9, Color: charcoal, Align: align.Right},
			{Text: format.PaymentMethod(r.PaymentMethod), Size: 8.5, Color: muted, Align: align.Right},
		}),
	))
	f.Add(layout.Spacer(4))

	f.Add(layout.Table(itemColumns, itemHeader, itemBody(r.Items, symbol), layout.TableStyle{
		HeaderColor:  gold,
		HeaderBold:   true,
		HeaderSize:   9,
		HeaderHeight: 8,
		BodySize:     9,
		BodyColor:    charcoal,
		RowHeight:    7,
		Border:       layout.BorderUnderline,
		BorderColor:  gold,
	})...)
	f.Add(layout.Spacer(4))

	f.Add(receiptTotals(r, symbol).rows(totalsStyle{
		labelColor: muted,
		valueColor: charcoal,
		totalColor: gold,
		ruleColor:  gold,
		size:       9.5,
		totalSize:  12,
	})...)

	f.Add(commentRows(r.Comments, gold, muted)...)
	f.Add(receiptSignatures(r.Signature, as.Signature, layout.SignatureStyle{
		LabelColor: charcoal, NameColor: muted, LineColor: gold, LabelSize: 9, NameSize: 8,
	})...)

	f.Add(layout.Spacer(4))
	f.Add(layout.Divider(1, props.Line{Color: gold, Thickness: 0.2}))
	f.Add(layout.Divider(2, props.Line{Color: gold, Thickness: 0.6}))
	f.Add(centeredNote(thanksLine, 9, muted, fontstyle.Italic))

	return f
}
