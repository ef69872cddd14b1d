package compose

import (
	"strings"
	"testing"
	"time"

	"github.com/johnfercher/go-tree/node"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/stretchr/testify/assert"

	"invoice-service/internal/assets"
	"invoice-service/internal/layout"
	"invoice-service/internal/models"
)

// flowText walks the component tree of every row and collects the rendered
// text values in document order.
func flowText(f layout.Flow) []string {
	var out []string
	for _, r := range f {
		collectText(r.GetStructure(), &out)
	}
	return out
}

func collectText(n *node.Node[core.Structure], out *[]string) {
	s := n.GetData()
	if s.Type == "text" {
		if v, ok := s.Value.(string); ok {
			*out = append(*out, v)
		}
	}
	for _, child := range n.GetNexts() {
		collectText(child, out)
	}
}

func containsText(f layout.Flow, want string) bool {
	for _, s := range flowText(f) {
		if s == want {
			return true
		}
	}
	return false
}

func containsSubstring(f layout.Flow, want string) bool {
	for _, s := range flowText(f) {
		if strings.Contains(s, want) {
			return true
		}
	}
	return false
}

func ptr(v float64) *float64 { return &v }

func sampleInvoice(template models.Template) *models.InvoiceData {
	return &models.InvoiceData{
		InvoiceNumber:  "INV-2024-001",
		Currency:       "USD",
		CurrencySymbol: "$",
		Template:       template,
		Company: models.CompanyDetails{
			Name:    "Acme Corp",
			Address: "1 Main St, Springfield",
			Email:   "billing@acme.test",
		},
		ClientName:    "Jordan Blake",
		ClientAddress: "42 Elm Ave",
		Items: []models.LineItem{
			{Description: "Consulting", Quantity: 2, UnitPrice: 150},
			{Description: "Hosting", Quantity: 1, UnitPrice: 1250},
		},
		Subtotal: 1550,
		Total:    1550,
	}
}

func sampleReceipt(template models.Template) *models.ReceiptData {
	return &models.ReceiptData{
		ReceiptNumber:  "RCP-2024-001",
		Currency:       "USD",
		CurrencySymbol: "$",
		Template:       template,
		Company: models.CompanyDetails{
			Name:     "Acme Corp",
			Address:  "1 Main St, Springfield",
			Services: "Widgets and repairs",
		},
		CustomerName:  "Jordan Blake",
		PaymentMethod: "bank_transfer",
		Items: []models.LineItem{
			{Description: "Widget", Quantity: 3, UnitPrice: 10},
			{Description: "Repair", Quantity: 1, UnitPrice: 45},
		},
		Subtotal: 75,
		Total:    75,
	}
}

func TestInvoiceClassicContent(t *testing.T) {
	f := Invoice(sampleInvoice(models.TemplateClassic), Assets{})

	assert.True(t, containsText(f, "INVOICE"))
	assert.True(t, containsText(f, "# INV-2024-001"))
	assert.True(t, containsText(f, "Acme Corp"))
	assert.True(t, containsText(f, "Jordan Blake"))
	assert.True(t, containsText(f, "Consulting"))
	assert.True(t, containsText(f, "Hosting"))
	assert.True(t, containsText(f, "$1,250.00"))
	assert.True(t, containsText(f, "Subtotal:"))
	assert.True(t, containsText(f, "$1,550.00"))
	assert.True(t, containsText(f, "Thank you for your business!"))
}

func TestInvoiceRendersAllRowsUnfiltered(t *testing.T) {
	// Invoices print every supplied row, including zero-quantity ones
	inv := sampleInvoice(models.TemplateClassic)
	inv.Items = append(inv.Items, models.LineItem{Description: "Retainer", Quantity: 0, UnitPrice: 500})

	for _, template := range []models.Template{
		models.TemplateClassic,
		models.TemplateModern,
		models.TemplateMinimal,
		models.TemplateCorporate,
		models.TemplateElegant,
	} {
		inv.Template = template
		f := Invoice(inv, Assets{})
		assert.True(t, containsText(f, "Retainer"), "template %s", template)
	}
}

func TestInvoiceUnknownTemplateFallsBackToClassic(t *testing.T) {
	known := Invoice(sampleInvoice(models.TemplateClassic), Assets{})
	unknown := Invoice(sampleInvoice("holographic"), Assets{})

	assert.Equal(t, flowText(known), flowText(unknown))
	assert.Equal(t, len(known), len(unknown))
}

func TestInvoiceDeterministic(t *testing.T) {
	first := Invoice(sampleInvoice(models.TemplateModern), Assets{})
	second := Invoice(sampleInvoice(models.TemplateModern), Assets{})

	assert.Equal(t, flowText(first), flowText(second))
	assert.Equal(t, len(first), len(second))
}

func TestInvoiceTotalsRegion(t *testing.T) {
	inv := sampleInvoice(models.TemplateClassic)
	inv.DiscountRate = ptr(10)
	inv.DiscountAmount = ptr(155)
	inv.TaxRate = ptr(7.5)
	inv.TaxAmount = ptr(104.63)
	inv.Total = 1499.63

	f := Invoice(inv, Assets{})
	assert.True(t, containsText(f, "Discount (10%):"))
	assert.True(t, containsText(f, "-$155.00"))
	assert.True(t, containsText(f, "Tax (7.5%):"))
	assert.True(t, containsText(f, "$104.63"))
	assert.True(t, containsText(f, "Total:"))
}

func TestInvoiceTotalsOmitsZeroAdjustments(t *testing.T) {
	f := Invoice(sampleInvoice(models.TemplateClassic), Assets{})

	assert.False(t, containsSubstring(f, "Discount"))
	assert.False(t, containsSubstring(f, "Tax"))
	assert.True(t, containsText(f, "Subtotal:"))
	assert.True(t, containsText(f, "Total:"))
}

func TestInvoiceTotalsOmitsExplicitZeroAmounts(t *testing.T) {
	inv := sampleInvoice(models.TemplateClassic)
	inv.DiscountAmount = ptr(0)
	inv.TaxAmount = ptr(0)

	f := Invoice(inv, Assets{})
	assert.False(t, containsSubstring(f, "Discount"))
	assert.False(t, containsSubstring(f, "Tax"))
}

func TestInvoiceTotalsAdjustmentIndependence(t *testing.T) {
	discountOnly := sampleInvoice(models.TemplateClassic)
	discountOnly.DiscountRate = ptr(10)
	discountOnly.DiscountAmount = ptr(155)
	discountOnly.Total = 1395

	f := Invoice(discountOnly, Assets{})
	assert.True(t, containsSubstring(f, "Discount"))
	assert.False(t, containsSubstring(f, "Tax"))

	taxOnly := sampleInvoice(models.TemplateClassic)
	taxOnly.TaxRate = ptr(7.5)
	taxOnly.TaxAmount = ptr(116.25)
	taxOnly.Total = 1666.25

	f = Invoice(taxOnly, Assets{})
	assert.False(t, containsSubstring(f, "Discount"))
	assert.True(t, containsSubstring(f, "Tax"))
}

func TestInvoiceOmitsMissingDates(t *testing.T) {
	for _, template := range []models.Template{
		models.TemplateClassic,
		models.TemplateModern,
		models.TemplateMinimal,
		models.TemplateCorporate,
		models.TemplateElegant,
	} {
		f := Invoice(sampleInvoice(template), Assets{})
		assert.False(t, containsSubstring(f, "Due"), "template %s", template)
	}

	inv := sampleInvoice(models.TemplateClassic)
	inv.DueDate = &models.Date{Time: time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)}
	f := Invoice(inv, Assets{})
	assert.True(t, containsText(f, "Due Date: 07/01/2024"))
}

func TestReceiptMissingDateFallsBackToToday(t *testing.T) {
	f := Receipt(sampleReceipt(models.TemplateClassic), Assets{})
	assert.True(t, containsText(f, "Date: "+time.Now().Format("01/02/2006")))
}

func TestInvoiceCurrencySafety(t *testing.T) {
	inv := sampleInvoice(models.TemplateClassic)
	inv.CurrencySymbol = "₹"

	texts := flowText(Invoice(inv, Assets{}))
	joined := strings.Join(texts, "\n")
	assert.Contains(t, joined, "INR1,550.00")
	assert.NotContains(t, joined, "₹")
}

func TestInvoiceSignatureRegion(t *testing.T) {
	// No signature info and no image: region absent
	f := Invoice(sampleInvoice(models.TemplateClassic), Assets{})
	assert.False(t, containsText(f, "Authorized Signature"))

	// Signer name alone is enough
	inv := sampleInvoice(models.TemplateClassic)
	inv.Signature = &models.SignatureInfo{UserName: "Dana Reeve", Position: "Director"}
	f = Invoice(inv, Assets{})
	assert.True(t, containsText(f, "Authorized Signature"))
	assert.True(t, containsText(f, "Dana Reeve"))
	assert.True(t, containsText(f, "Director"))

	// An image alone is enough too
	img := &assets.Image{Data: []byte{0x89, 'P', 'N', 'G'}}
	f = Invoice(sampleInvoice(models.TemplateClassic), Assets{Signature: img})
	assert.True(t, containsText(f, "Authorized Signature"))
}

func TestInvoiceLogoDoesNotShiftLayout(t *testing.T) {
	img := &assets.Image{Data: []byte{0x89, 'P', 'N', 'G'}}

	without := Invoice(sampleInvoice(models.TemplateClassic), Assets{})
	with := Invoice(sampleInvoice(models.TemplateClassic), Assets{Logo: img})

	// Same row count and same text either way; only the image slot differs
	assert.Equal(t, len(without), len(with))
	assert.Equal(t, flowText(without), flowText(with))
}

func TestInvoiceComments(t *testing.T) {
	inv := sampleInvoice(models.TemplateClassic)
	inv.Comments = "Payment due within 30 days."

	f := Invoice(inv, Assets{})
	assert.True(t, containsText(f, "Payment due within 30 days."))

	f = Invoice(sampleInvoice(models.TemplateClassic), Assets{})
	assert.False(t, containsText(f, "Notes"))
}

func TestReceiptClassicContent(t *testing.T) {
	f := Receipt(sampleReceipt(models.TemplateClassic), Assets{})

	assert.True(t, containsText(f, "RECEIPT"))
	assert.True(t, containsText(f, "# RCP-2024-001"))
	assert.True(t, containsText(f, "Widget"))
	assert.True(t, containsText(f, "Repair"))
	assert.True(t, containsSubstring(f, "Bank Transfer"))
	assert.True(t, containsText(f, "Widgets and repairs"))
}

func TestReceiptFiltersInvalidItems(t *testing.T) {
	rec := sampleReceipt(models.TemplateClassic)
	rec.Items = append(rec.Items,
		models.LineItem{Description: "", Quantity: 2, UnitPrice: 5},
		models.LineItem{Description: "Backorder", Quantity: 0, UnitPrice: 99},
	)

	for _, template := range []models.Template{
		models.TemplateClassic,
		models.TemplateModern,
		models.TemplateMinimal,
		models.TemplateThermal,
	} {
		rec.Template = template
		f := Receipt(rec, Assets{})
		assert.False(t, containsText(f, "Backorder"), "template %s", template)
		assert.True(t, containsText(f, "Widget"), "template %s", template)
	}
}

func TestItemBodyNumbersRowsInPrintOrder(t *testing.T) {
	body := itemBody([]models.LineItem{
		{Description: "Widget", Quantity: 3, UnitPrice: 10},
		{Description: "Repair", Quantity: 1, UnitPrice: 45},
	}, "$")

	assert.Equal(t, []string{"1", "Widget", "3", "$10.00", "$30.00"}, body[0])
	assert.Equal(t, []string{"2", "Repair", "1", "$45.00", "$45.00"}, body[1])
}

func TestReceiptNumbersFilteredSet(t *testing.T) {
	// The serial index restarts over the kept rows, not the submitted ones
	rec := sampleReceipt(models.TemplateClassic)
	rec.Items = []models.LineItem{
		{Description: "Skipped", Quantity: 0, UnitPrice: 5},
		{Description: "Widget", Quantity: 3, UnitPrice: 10},
	}

	body := itemBody(paidItems(rec.Items), "$")
	assert.Len(t, body, 1)
	assert.Equal(t, "1", body[0][0])
	assert.Equal(t, "Widget", body[0][1])
}

func TestReceiptThermalNoItemsLine(t *testing.T) {
	rec := sampleReceipt(models.TemplateThermal)
	rec.Items = nil

	f := Receipt(rec, Assets{})
	assert.True(t, containsText(f, "No items"))
}

func TestReceiptThermalSignatureLines(t *testing.T) {
	f := Receipt(sampleReceipt(models.TemplateThermal), Assets{})

	assert.True(t, containsText(f, "SELLER: ___________"))
	assert.True(t, containsText(f, "CUSTOMER: _________"))
}

func TestReceiptElegantRendersAllRows(t *testing.T) {
	rec := sampleReceipt(models.TemplateElegant)
	rec.Items = append(rec.Items, models.LineItem{Description: "Backorder", Quantity: 0, UnitPrice: 99})

	f := Receipt(rec, Assets{})
	assert.True(t, containsText(f, "Backorder"))
}

// blankGridRows counts body rows whose cells all rendered as empty text
func blankGridRows(f layout.Flow) int {
	count := 0
	for _, r := range f {
		var texts []string
		collectText(r.GetStructure(), &texts)
		if len(texts) != len(itemColumns) {
			continue
		}
		blank := true
		for _, s := range texts {
			if s != "" {
				blank = false
				break
			}
		}
		if blank {
			count++
		}
	}
	return count
}

func TestReceiptZeroValidItemsPadding(t *testing.T) {
	// With no valid items the body is filled to the template's fixed height
	counts := map[models.Template]int{
		models.TemplateClassic: 10,
		models.TemplateModern:  5,
		models.TemplateMinimal: 3,
	}
	for template, want := range counts {
		rec := sampleReceipt(template)
		rec.Items = nil
		assert.Equal(t, want, blankGridRows(Receipt(rec, Assets{})), "template %s", template)

		rec = sampleReceipt(template)
		rec.Items = []models.LineItem{
			{Description: "", Quantity: 2, UnitPrice: 5},
			{Description: "Backorder", Quantity: 0, UnitPrice: 99},
		}
		assert.Equal(t, want, blankGridRows(Receipt(rec, Assets{})), "template %s, invalid-only items", template)
	}
}

func TestReceiptNoBlankRowsWithValidItems(t *testing.T) {
	// Valid items print one row each, with no filler around them
	for _, template := range []models.Template{
		models.TemplateClassic,
		models.TemplateModern,
		models.TemplateMinimal,
	} {
		one := sampleReceipt(template)
		one.Items = one.Items[:1]

		assert.Zero(t, blankGridRows(Receipt(one, Assets{})), "template %s", template)
		assert.Zero(t, blankGridRows(Receipt(sampleReceipt(template), Assets{})), "template %s", template)
	}
}

func TestReceiptNoPaddingAboveMinimum(t *testing.T) {
	short := sampleReceipt(models.TemplateMinimal)

	long := sampleReceipt(models.TemplateMinimal)
	for i := 0; i < 6; i++ {
		long.Items = append(long.Items, models.LineItem{Description: "Extra", Quantity: 1, UnitPrice: 1})
	}

	assert.Greater(t, len(Receipt(long, Assets{})), len(Receipt(short, Assets{})))
}

func TestReceiptCustomerSignatureAlwaysPresent(t *testing.T) {
	for _, template := range []models.Template{
		models.TemplateClassic,
		models.TemplateModern,
		models.TemplateMinimal,
		models.TemplateElegant,
	} {
		f := Receipt(sampleReceipt(template), Assets{})
		assert.True(t, containsText(f, "Customer Signature"), "template %s", template)
		assert.True(t, containsText(f, "Authorized Signature"), "template %s", template)
	}
}

func TestReceiptThermalContent(t *testing.T) {
	f := Receipt(sampleReceipt(models.TemplateThermal), Assets{})

	assert.True(t, containsText(f, "ACME CORP"))
	assert.True(t, containsText(f, "CASH RECEIPT"))
	assert.True(t, containsText(f, strings.Repeat("=", 30)))
	assert.True(t, containsText(f, strings.Repeat("-", 30)))
	assert.True(t, containsText(f, "3 x $10.00 = $30.00"))
	assert.True(t, containsText(f, "SUBTOTAL: $75.00"))
	assert.True(t, containsText(f, "TOTAL: $75.00"))
	assert.True(t, containsText(f, "THANK YOU!"))
}

func TestReceiptThermalAdjustments(t *testing.T) {
	rec := sampleReceipt(models.TemplateThermal)
	rec.DiscountAmount = ptr(5)
	rec.TaxAmount = ptr(3.5)
	rec.Total = 73.5

	f := Receipt(rec, Assets{})
	assert.True(t, containsText(f, "DISCOUNT: -$5.00"))
	assert.True(t, containsText(f, "TAX: $3.50"))
}

func TestReceiptUnknownTemplateFallsBackToClassic(t *testing.T) {
	known := Receipt(sampleReceipt(models.TemplateClassic), Assets{})
	unknown := Receipt(sampleReceipt("corporate"), Assets{})

	assert.Equal(t, flowText(known), flowText(unknown))
}
