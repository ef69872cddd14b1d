package models

import (
	"fmt"
	"strings"
	"time"
)

// DocumentKind discriminates the two billing document types
type DocumentKind string

const (
	DocumentKindInvoice DocumentKind = "invoice"
	DocumentKindReceipt DocumentKind = "receipt"
)

// Template represents a visual template selector
type Template string

// Invoice templates
const (
	TemplateClassic   Template = "classic"
	TemplateModern    Template = "modern"
	TemplateMinimal   Template = "minimal"
	TemplateCorporate Template = "corporate"
	TemplateElegant   Template = "elegant"
)

// Receipt-only template
const (
	TemplateThermal Template = "thermal"
)

// invoiceTemplates and receiptTemplates are the valid selector sets per kind.
// Anything outside the set falls back to classic rather than failing.
var invoiceTemplates = map[Template]bool{
	TemplateClassic:   true,
	TemplateModern:    true,
	TemplateMinimal:   true,
	TemplateCorporate: true,
	TemplateElegant:   true,
}

var receiptTemplates = map[Template]bool{
	TemplateClassic: true,
	TemplateModern:  true,
	TemplateMinimal: true,
	TemplateThermal: true,
	TemplateElegant: true,
}

// ResolveInvoiceTemplate normalizes a template selector for invoices
func ResolveInvoiceTemplate(t Template) Template {
	if invoiceTemplates[t] {
		return t
	}
	return TemplateClassic
}

// ResolveReceiptTemplate normalizes a template selector for receipts
func ResolveReceiptTemplate(t Template) Template {
	if receiptTemplates[t] {
		return t
	}
	return TemplateClassic
}

// Date wraps time.Time with the "2006-01-02" wire format used by the API
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

// UnmarshalJSON parses a quoted YYYY-MM-DD string
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	d.Time = t
	return nil
}

// MarshalJSON renders the date as a quoted YYYY-MM-DD string
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// LineItem is a single billable row. Items are immutable during rendering and
// print in insertion order.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity" validate:"gte=0"`
	UnitPrice   float64 `json:"unit_price" validate:"gte=0"`
}

// Total returns the derived line total
func (i LineItem) Total() float64 {
	return i.Quantity * i.UnitPrice
}

// CompanyDetails holds the issuing party identity. Services is a tagline shown
// on receipts only.
type CompanyDetails struct {
	Name     string `json:"name" validate:"required"`
	Address  string `json:"address,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Services string `json:"services,omitempty"`
}

// SignatureInfo holds the optional signer identity for the signature block
type SignatureInfo struct {
	UserName string `json:"user_name,omitempty"`
	Position string `json:"position,omitempty"`
}

// InvoiceData is the validated semantic record for an invoice render call.
// Subtotal, discount, tax and total are caller-supplied and displayed as-is;
// the service cross-checks them but does not recompute.
type InvoiceData struct {
	InvoiceNumber  string         `json:"invoice_number" validate:"required"`
	Currency       string         `json:"currency"`
	CurrencySymbol string         `json:"currency_symbol"`
	Template       Template       `json:"template"`
	Company        CompanyDetails `json:"company"`
	ClientName     string         `json:"client_name" validate:"required"`
	ClientAddress  string         `json:"client_address,omitempty"`
	Items          []LineItem     `json:"items" validate:"dive"`
	Subtotal       float64        `json:"subtotal" validate:"gte=0"`
	TaxRate        *float64       `json:"tax_rate,omitempty"`
	TaxAmount      *float64       `json:"tax_amount,omitempty"`
	DiscountRate   *float64       `json:"discount_rate,omitempty"`
	DiscountAmount *float64       `json:"discount_amount,omitempty"`
	Total          float64        `json:"total" validate:"gte=0"`
	DueDate        *Date          `json:"due_date,omitempty"`
	PurchaseDate   *Date          `json:"purchase_date,omitempty"`
	Comments       string         `json:"comments,omitempty"`
	Signature      *SignatureInfo `json:"signature,omitempty"`
}

// ReceiptData is the validated semantic record for a receipt render call
type ReceiptData struct {
	ReceiptNumber   string         `json:"receipt_number" validate:"required"`
	Currency        string         `json:"currency"`
	CurrencySymbol  string         `json:"currency_symbol"`
	Template        Template       `json:"template"`
	Company         CompanyDetails `json:"company"`
	CustomerName    string         `json:"customer_name"`
	CustomerAddress string         `json:"customer_address,omitempty"`
	PaymentDate     *Date          `json:"payment_date,omitempty"`
	PaymentMethod   string         `json:"payment_method"`
	Items           []LineItem     `json:"items" validate:"dive"`
	Subtotal        float64        `json:"subtotal" validate:"gte=0"`
	TaxRate         *float64       `json:"tax_rate,omitempty"`
	TaxAmount       *float64       `json:"tax_amount,omitempty"`
	DiscountRate    *float64       `json:"discount_rate,omitempty"`
	DiscountAmount  *float64       `json:"discount_amount,omitempty"`
	Total           float64        `json:"total" validate:"gte=0"`
	Comments        string         `json:"comments,omitempty"`
	Signature       *SignatureInfo `json:"signature,omitempty"`
}

// HasName reports whether a signer name is present, which by itself is enough
// to render the signature region.
func (s *SignatureInfo) HasName() bool {
	return s != nil && s.UserName != ""
}

// ApplyDefaults fills wire-format defaults matching the public API contract
func (inv *InvoiceData) ApplyDefaults() {
	if inv.Currency == "" {
		inv.Currency = "USD"
	}
	if inv.CurrencySymbol == "" {
		inv.CurrencySymbol = "$"
	}
	inv.Template = ResolveInvoiceTemplate(inv.Template)
}

// ApplyDefaults fills wire-format defaults matching the public API contract
func (r *ReceiptData) ApplyDefaults() {
	if r.Currency == "" {
		r.Currency = "USD"
	}
	if r.CurrencySymbol == "" {
		r.CurrencySymbol = "$"
	}
	if r.PaymentMethod == "" {
		r.PaymentMethod = "cash"
	}
	r.Template = ResolveReceiptTemplate(r.Template)
}
