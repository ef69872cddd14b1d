package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validInvoice() *InvoiceData {
	return &InvoiceData{
		InvoiceNumber: "INV-001",
		Company:       CompanyDetails{Name: "Acme Corp"},
		ClientName:    "Jordan Blake",
		Items: []LineItem{
			{Description: "Consulting", Quantity: 2, UnitPrice: 150},
		},
		Subtotal: 300,
		Total:    300,
	}
}

func validReceipt() *ReceiptData {
	return &ReceiptData{
		ReceiptNumber: "RCP-001",
		Company:       CompanyDetails{Name: "Acme Corp"},
		CustomerName:  "Jordan Blake",
		Items: []LineItem{
			{Description: "Consulting", Quantity: 2, UnitPrice: 150},
		},
		Subtotal: 300,
		Total:    300,
	}
}

func TestInvoiceValidateOK(t *testing.T) {
	assert.NoError(t, validInvoice().Validate())
}

func TestInvoiceValidateRequiredFields(t *testing.T) {
	inv := validInvoice()
	inv.InvoiceNumber = ""
	assert.Error(t, inv.Validate())

	inv = validInvoice()
	inv.ClientName = ""
	assert.Error(t, inv.Validate())

	inv = validInvoice()
	inv.Company.Name = ""
	assert.Error(t, inv.Validate())
}

func TestInvoiceValidateReturnsValidationError(t *testing.T) {
	inv := validInvoice()
	inv.InvoiceNumber = ""

	err := inv.Validate()
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestInvoiceValidateItemDescriptionRequired(t *testing.T) {
	inv := validInvoice()
	inv.Items = append(inv.Items, LineItem{Quantity: 1, UnitPrice: 10})

	err := inv.Validate()
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Field, "items[1]")
}

func TestInvoiceValidateRejectsNegativeAmounts(t *testing.T) {
	inv := validInvoice()
	inv.Items[0].Quantity = -1
	assert.Error(t, inv.Validate())

	inv = validInvoice()
	inv.Items[0].UnitPrice = -5
	assert.Error(t, inv.Validate())

	inv = validInvoice()
	inv.Subtotal = -1
	assert.Error(t, inv.Validate())
}

func TestReceiptValidateOK(t *testing.T) {
	assert.NoError(t, validReceipt().Validate())
}

func TestReceiptValidateAllowsBlankItemDescriptions(t *testing.T) {
	// Receipt templates filter blank rows themselves
	rec := validReceipt()
	rec.Items = append(rec.Items, LineItem{Quantity: 1, UnitPrice: 10})
	assert.NoError(t, rec.Validate())
}

func TestReceiptValidateRequiresNumber(t *testing.T) {
	rec := validReceipt()
	rec.ReceiptNumber = ""
	assert.Error(t, rec.Validate())
}

func TestTotalsMismatch(t *testing.T) {
	assert.False(t, TotalsMismatch(300, 0, 0, 300))
	assert.False(t, TotalsMismatch(300, 30, 22.5, 292.5))

	// Drift inside the one-cent tolerance is accepted
	assert.False(t, TotalsMismatch(300, 0, 0, 300.009))

	assert.True(t, TotalsMismatch(300, 0, 0, 301))
	assert.True(t, TotalsMismatch(300, 30, 0, 300))
}
