package models

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

// validate is shared across calls; the validator caches struct metadata and is
// safe for concurrent use.
var validate = validator.New()

// ValidationError reports a record that failed required-field or type
// constraints. It is surfaced before any rendering work begins.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// totalsTolerance bounds the floating drift accepted when cross-checking
// caller-supplied totals.
const totalsTolerance = 0.01

// TotalsMismatch reports whether total deviates from
// subtotal - discount + tax beyond the accepted tolerance. Callers log the
// mismatch and render anyway; the supplied figures are displayed as-is.
func TotalsMismatch(subtotal, discount, tax, total float64) bool {
	expected := subtotal - discount + tax
	return math.Abs(expected-total) > totalsTolerance
}

func firstFieldError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		fe := errs[0]
		return &ValidationError{Field: fe.Namespace(), Reason: "failed " + fe.Tag() + " constraint"}
	}
	return err
}

// Validate checks the invoice record once, at the boundary. Invoice items must
// all carry a description because invoice templates render every supplied row.
func (inv *InvoiceData) Validate() error {
	if err := validate.Struct(inv); err != nil {
		return firstFieldError(err)
	}
	for i, item := range inv.Items {
		if item.Description == "" {
			return &ValidationError{
				Field:  fmt.Sprintf("items[%d].description", i),
				Reason: "description is required",
			}
		}
	}
	return nil
}

// Validate checks the receipt record once, at the boundary. Receipt templates
// filter out blank rows themselves, so item descriptions may be empty here.
func (r *ReceiptData) Validate() error {
	if err := validate.Struct(r); err != nil {
		return firstFieldError(err)
	}
	return nil
}

func value(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// DiscountAmountValue returns the optional discount amount or zero
func (inv *InvoiceData) DiscountAmountValue() float64 { return value(inv.DiscountAmount) }

// TaxAmountValue returns the optional tax amount or zero
func (inv *InvoiceData) TaxAmountValue() float64 { return value(inv.TaxAmount) }

// DiscountAmountValue returns the optional discount amount or zero
func (r *ReceiptData) DiscountAmountValue() float64 { return value(r.DiscountAmount) }

// TaxAmountValue returns the optional tax amount or zero
func (r *ReceiptData) TaxAmountValue() float64 { return value(r.TaxAmount) }
