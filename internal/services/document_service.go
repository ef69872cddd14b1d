package services

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"invoice-service/internal/compose"
	"invoice-service/internal/models"
	"invoice-service/internal/render"
)

// DocumentService handles billing document generation operations
type DocumentService interface {
	// GenerateInvoice renders an invoice PDF in-memory and returns the bytes
	// plus the suggested download filename
	GenerateInvoice(inv *models.InvoiceData, as compose.Assets) ([]byte, string, error)

	// GenerateReceipt renders a receipt PDF in-memory and returns the bytes
	// plus the suggested download filename
	GenerateReceipt(r *models.ReceiptData, as compose.Assets) ([]byte, string, error)
}

type documentService struct {
	logger *logrus.Logger
}

// NewDocumentService creates a new document service
func NewDocumentService(logger *logrus.Logger) DocumentService {
	return &documentService{logger: logger}
}

func (s *documentService) GenerateInvoice(inv *models.InvoiceData, as compose.Assets) ([]byte, string, error) {
	inv.ApplyDefaults()
	if err := inv.Validate(); err != nil {
		return nil, "", err
	}

	// Submitted amounts are rendered as-is; a failed cross-check is logged and
	// does not block generation.
	if models.TotalsMismatch(inv.Subtotal, inv.DiscountAmountValue(), inv.TaxAmountValue(), inv.Total) {
		s.logger.WithFields(logrus.Fields{
			"invoice_number": inv.InvoiceNumber,
			"subtotal":       inv.Subtotal,
			"discount":       inv.DiscountAmountValue(),
			"tax":            inv.TaxAmountValue(),
			"total":          inv.Total,
		}).Warn("Invoice totals do not reconcile, rendering submitted amounts")
	}

	template := models.ResolveInvoiceTemplate(inv.Template)
	flow := compose.Invoice(inv, as)
	pdf, err := render.Document(flow, render.OptionsFor(models.DocumentKindInvoice, template))
	if err != nil {
		return nil, "", fmt.Errorf("failed to render invoice %s: %w", inv.InvoiceNumber, err)
	}

	s.logger.WithFields(logrus.Fields{
		"invoice_number": inv.InvoiceNumber,
		"template":       template,
		"items":          len(inv.Items),
		"bytes":          len(pdf),
	}).Info("Invoice PDF generated")

	return pdf, downloadName("invoice", inv.InvoiceNumber), nil
}

func (s *documentService) GenerateReceipt(r *models.ReceiptData, as compose.Assets) ([]byte, string, error) {
	r.ApplyDefaults()
	if err := r.Validate(); err != nil {
		return nil, "", err
	}

	if models.TotalsMismatch(r.Subtotal, r.DiscountAmountValue(), r.TaxAmountValue(), r.Total) {
		s.logger.WithFields(logrus.Fields{
			"receipt_number": r.ReceiptNumber,
			"subtotal":       r.Subtotal,
			"discount":       r.DiscountAmountValue(),
			"tax":            r.TaxAmountValue(),
			"total":          r.Total,
		}).Warn("Receipt totals do not reconcile, rendering submitted amounts")
	}

	template := models.ResolveReceiptTemplate(r.Template)
	flow := compose.Receipt(r, as)
	pdf, err := render.Document(flow, render.OptionsFor(models.DocumentKindReceipt, template))
	if err != nil {
		return nil, "", fmt.Errorf("failed to render receipt %s: %w", r.ReceiptNumber, err)
	}

	s.logger.WithFields(logrus.Fields{
		"receipt_number": r.ReceiptNumber,
		"template":       template,
		"items":          len(r.Items),
		"bytes":          len(pdf),
	}).Info("Receipt PDF generated")

	return pdf, downloadName("receipt", r.ReceiptNumber), nil
}

// downloadName builds the Content-Disposition filename:
// {kind}_{number}_{YYYYMMDD_HHMMSS}.pdf
func downloadName(kind, number string) string {
	return fmt.Sprintf("%s_%s_%s.pdf", kind, number, time.Now().Format("20060102_150405"))
}
