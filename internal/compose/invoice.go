package compose

import (
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"invoice-service/internal/format"
	"invoice-service/internal/layout"
	"invoice-service/internal/models"
)

const thanksLine = "Thank you for your business!"

func invoiceClassic(inv *models.InvoiceData, as Assets, symbol string) layout.Flow {
	navy := layout.RGB(31, 56, 100)
	muted := layout.RGB(110, 110, 110)

	var f layout.Flow

	f.Add(row.New(22).Add(
		layout.ImageCol(3, as.Logo, props.Rect{Percent: 90}),
		col.New(4),
		layout.Stack(5, 6, []layout.Line{
			{Text: "INVOICE", Size: 24, Bold: true, Color: navy, Align: align.Right},
			{Text: "# " + inv.InvoiceNumber, Size: 10, Color: muted, Align: align.Right},
		}),
	))
	f.Add(layout.Spacer(2))

	var meta []layout.Line
	if hasDate(inv.PurchaseDate) {
		meta = append(meta, layout.Line{Text: "Date: " + format.Date(dateOf(inv.PurchaseDate), format.DateUS), Size: 9, Color: muted, Align: align.Right})
	}
	if hasDate(inv.DueDate) {
		meta = append(meta, layout.Line{Text: "Due Date: " + format.Date(dateOf(inv.DueDate), format.DateUS), Size: 9, Color: muted, Align: align.Right})
	}
	f.Add(row.New(24).Add(
		layout.Stack(6, 4.5, companyLines(inv.Company, align.Left, navy, muted, false)),
		layout.Stack(6, 4.5, meta),
	))

	f.Add(row.New(18).Add(
		layout.Stack(6, 4.5, partyLines("BILL TO", inv.ClientName, inv.ClientAddress, navy, muted)),
	))
	f.Add(layout.Spacer(4))

	f.Add(layout.Table(itemColumns, itemHeader, itemBody(inv.Items, symbol), layout.TableStyle{
		HeaderBackground: navy,
		HeaderColor:      layout.White,
		HeaderBold:       true,
		HeaderSize:       9.5,
		HeaderHeight:     8,
		BodySize:         9,
		RowHeight:        7,
		Border:           layout.BorderGrid,
		BorderColor:      navy,
	})...)
	f.Add(layout.Spacer(4))

	f.Add(invoiceTotals(inv, symbol).rows(totalsStyle{
		labelColor: muted,
		valueColor: layout.Black,
		totalColor: navy,
		ruleColor:  navy,
		size:       9.5,
		totalSize:  12,
	})...)

	f.Add(commentRows(inv.Comments, navy, muted)...)
	f.Add(invoiceSignature(inv.Signature, as.Signature, layout.SignatureStyle{
		LabelColor: navy, NameColor: muted, LineColor: navy, LabelSize: 9, NameSize: 8,
	})...)

	f.Add(layout.Spacer(6))
	f.Add(layout.Divider(2, props.Line{Color: navy, Thickness: 0.5}))
	f.Add(centeredNote(thanksLine, 9, muted, fontstyle.Italic))

	return f
}

func invoiceModern(inv *models.InvoiceData, as Assets, symbol string) layout.Flow {
	teal := layout.RGB(26, 188, 156)
	slate := layout.RGB(52, 73, 94)
	muted := layout.RGB(127, 140, 141)
	zebra := layout.RGB(245, 247, 250)

	var f layout.Flow

	f.Add(layout.AccentBar(3, teal))
	f.Add(layout.Spacer(4))

	f.Add(row.New(22).Add(
		layout.Stack(6, 6, []layout.Line{
			{Text: "Invoice", Size: 26, Bold: true, Color: slate},
			{Text: inv.InvoiceNumber, Size: 10, Color: teal},
		}),
		col.New(3),
		layout.ImageCol(3, as.Logo, props.Rect{Percent: 90, Center: true}),
	))
	f.Add(layout.Spacer(3))

	f.Add(row.New(24).Add(
		layout.Stack(5, 4.5, partyLines("BILLED TO", inv.ClientName, inv.ClientAddress, teal, muted)),
		col.New(2),
		layout.Stack(5, 4.5, appendDateLines(
			companyLines(inv.Company, align.Right, slate, muted, false),
			inv, "Issued ", "Due ", format.DateLong, 8.5, muted,
		)),
	))
	f.Add(layout.Spacer(5))

	f.Add(layout.Table(itemColumns, itemHeader, itemBody(inv.Items, symbol), layout.TableStyle{
		HeaderColor:      teal,
		HeaderBold:       true,
		HeaderSize:       9,
		HeaderHeight:     8,
		BodySize:         9,
		BodyColor:        slate,
		RowHeight:        7,
		AltRowBackground: zebra,
		Border:           layout.BorderUnderline,
		BorderColor:      teal,
	})...)
	f.Add(layout.Spacer(4))

	f.Add(invoiceTotals(inv, symbol).rows(totalsStyle{
		labelColor: muted,
		valueColor: slate,
		totalColor: teal,
		ruleColor:  teal,
		size:       9.5,
		totalSize:  13,
	})...)

	f.Add(commentRows(inv.Comments, teal, muted)...)
	f.Add(invoiceSignature(inv.Signature, as.Signature, layout.SignatureStyle{
		LabelColor: slate, NameColor: muted, LineColor: teal, LabelSize: 9, NameSize: 8,
	})...)

	f.Add(layout.Spacer(6))
	f.Add(layout.AccentBar(1.5, teal))
	f.Add(centeredNote(thanksLine, 9, muted, fontstyle.Normal))

	return f
}

func invoiceMinimal(inv *models.InvoiceData, as Assets, symbol string) layout.Flow {
	ink := layout.RGB(40, 40, 40)
	muted := layout.RGB(140, 140, 140)
	hairline := layout.RGB(210, 210, 210)

	var f layout.Flow

	f.Add(row.New(20).Add(
		layout.Stack(7, 6, []layout.Line{
			{Text: "Invoice", Size: 20, Color: ink},
			{Text: inv.InvoiceNumber, Size: 9, Color: muted},
		}),
		col.New(2),
		layout.ImageCol(3, as.Logo, props.Rect{Percent: 80, Center: true}),
	))
	f.Add(layout.Divider(1, props.Line{Color: hairline, Thickness: 0.3}))
	f.Add(layout.Spacer(4))

	var meta []layout.Line
	if hasDate(inv.PurchaseDate) {
		meta = append(meta,
			layout.Line{Text: "Issued", Size: 8, Color: muted, Align: align.Right},
			layout.Line{Text: format.Date(dateOf(inv.PurchaseDate), format.DateISO), Size: 9, Color: ink, Align: align.Right},
		)
	}
	if hasDate(inv.DueDate) {
		meta = append(meta, layout.Line{Text: "Due " + format.Date(dateOf(inv.DueDate), format.DateISO), Size: 8, Color: muted, Align: align.Right})
	}
	f.Add(row.New(24).Add(
		layout.Stack(4, 4.5, companyLines(inv.Company, align.Left, ink, muted, false)),
		layout.Stack(4, 4.5, partyLines("Billed to", inv.ClientName, inv.ClientAddress, muted, muted)),
		layout.Stack(4, 4.5, meta),
	))
	f.Add(layout.Spacer(6))

	f.Add(layout.Table(itemColumns, itemHeader, itemBody(inv.Items, symbol), layout.TableStyle{
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

	f.Add(invoiceTotals(inv, symbol).rows(totalsStyle{
		labelColor: muted,
		valueColor: ink,
		totalColor: ink,
		ruleColor:  ink,
		size:       9,
		totalSize:  11,
	})...)

	f.Add(commentRows(inv.Comments, muted, muted)...)
	f.Add(invoiceSignature(inv.Signature, as.Signature, layout.SignatureStyle{
		LabelColor: ink, NameColor: muted, LineColor: hairline, LabelSize: 8.5, NameSize: 8,
	})...)

	return f
}

func invoiceCorporate(inv *models.InvoiceData, as Assets, symbol string) layout.Flow {
	steel := layout.RGB(44, 62, 80)
	accent := layout.RGB(41, 128, 185)
	muted := layout.RGB(120, 130, 140)
	zebra := layout.RGB(236, 240, 241)

	var f layout.Flow

	band := row.New(26).WithStyle(&props.Cell{BackgroundColor: steel})
	band.Add(
		layout.ImageCol(3, as.Logo, props.Rect{Percent: 70, Center: true}),
		layout.Stack(6, 6, []layout.Line{
			{Text: inv.Company.Name, Size: 14, Bold: true, Color: layout.White},
			{Text: inv.Company.Address, Size: 8, Color: layout.White},
		}),
		layout.Stack(3, 6, []layout.Line{
			{Text: "INVOICE", Size: 16, Bold: true, Color: layout.White, Align: align.Right},
			{Text: inv.InvoiceNumber, Size: 9, Color: layout.White, Align: align.Right},
		}),
	)
	f.Add(band)
	f.Add(layout.Spacer(6))

	meta := appendDateLines(nil, inv, "Invoice Date: ", "Payment Due: ", format.DateUS, 9, steel)
	meta = append(meta, layout.Line{Text: "Currency: " + inv.Currency, Size: 9, Color: muted, Align: align.Right})
	f.Add(row.New(24).Add(
		layout.Stack(6, 4.5, partyLines("BILL TO", inv.ClientName, inv.ClientAddress, accent, muted)),
		layout.Stack(6, 4.5, meta),
	))
	f.Add(layout.Spacer(4))

	f.Add(layout.Table(itemColumns, itemHeader, itemBody(inv.Items, symbol), layout.TableStyle{
		HeaderBackground: steel,
		HeaderColor:      layout.White,
		HeaderBold:       true,
		HeaderSize:       9.5,
		HeaderHeight:     8,
		BodySize:         9,
		BodyColor:        steel,
		RowHeight:        7,
		AltRowBackground: zebra,
		Border:           layout.BorderGrid,
		BorderColor:      muted,
	})...)
	f.Add(layout.Spacer(4))

	f.Add(invoiceTotals(inv, symbol).rows(totalsStyle{
		labelColor: muted,
		valueColor: steel,
		totalColor: accent,
		ruleColor:  steel,
		size:       9.5,
		totalSize:  12,
	})...)

	f.Add(commentRows(inv.Comments, accent, muted)...)
	f.Add(invoiceSignature(inv.Signature, as.Signature, layout.SignatureStyle{
		LabelColor: steel, NameColor: muted, LineColor: steel, LabelSize: 9, NameSize: 8,
	})...)

	f.Add(layout.Spacer(6))
	f.Add(layout.AccentBar(2, accent))
	f.Add(centeredNote(thanksLine, 9, muted, fontstyle.Normal))

	return f
}

func invoiceElegant(inv *models.InvoiceData, as Assets, symbol string) layout.Flow {
	gold := layout.RGB(176, 141, 87)
	charcoal := layout.RGB(60, 60, 60)
	muted := layout.RGB(130, 125, 115)

	var f layout.Flow

	f.Add(row.New(14).Add(layout.ImageCol(12, as.Logo, props.Rect{Percent: 55, Center: true})))
	f.Add(row.New(10).Add(text.NewCol(12, inv.Company.Name, props.Text{
		Size: 18, Align: align.Center, Color: charcoal,
	})))
	f.Add(layout.Divider(1, props.Line{Color: gold, Thickness: 0.6}))
	f.Add(layout.Divider(2, props.Line{Color: gold, Thickness: 0.2}))
	f.Add(row.New(8).Add(text.NewCol(12, "Invoice "+inv.InvoiceNumber, props.Text{
		Size: 11, Align: align.Center, Color: gold, Style: fontstyle.Bold,
	})))
	f.Add(layout.Spacer(3))

	var meta []layout.Line
	if hasDate(inv.PurchaseDate) {
		meta = append(meta, layout.Line{Text: format.Date(dateOf(inv.PurchaseDate), format.DateLong), Size: 9, Color: charcoal, Align: align.Right})
	}
	if hasDate(inv.DueDate) {
		meta = append(meta, layout.Line{Text: "Due " + format.Date(dateOf(inv.DueDate), format.DateLong), Size: 8.5, Color: muted, Align: align.Right})
	}
	f.Add(row.New(24).Add(
		layout.Stack(6, 4.5, partyLines("For", inv.ClientName, inv.ClientAddress, gold, muted)),
		layout.Stack(6, 4.5, meta),
	))
	f.Add(layout.Spacer(4))

	f.Add(layout.Table(itemColumns, itemHeader, itemBody(inv.Items, symbol), layout.TableStyle{
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

	f.Add(invoiceTotals(inv, symbol).rows(totalsStyle{
		labelColor: muted,
		valueColor: charcoal,
		totalColor: gold,
		ruleColor:  gold,
		size:       9.5,
		totalSize:  12,
	})...)

	f.Add(commentRows(inv.Comments, gold, muted)...)
	f.Add(invoiceSignature(inv.Signature, as.Signature, layout.SignatureStyle{
		LabelColor: charcoal, NameColor: muted, LineColor: gold, LabelSize: 9, NameSize: 8,
	})...)

	f.Add(layout.Spacer(6))
	f.Add(layout.Divider(1, props.Line{Color: gold, Thickness: 0.2}))
	f.Add(layout.Divider(2, props.Line{Color: gold, Thickness: 0.6}))
	f.Add(centeredNote(thanksLine, 9, muted, fontstyle.Italic))

	return f
}
