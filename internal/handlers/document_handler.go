package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"invoice-service/internal/assets"
	"invoice-service/internal/compose"
	"invoice-service/internal/models"
	"invoice-service/internal/services"
)

// DocumentHandler handles HTTP requests for PDF generation
type DocumentHandler struct {
	documentService services.DocumentService
	logger          *logrus.Logger
	maxAssetSize    int64
}

// NewDocumentHandler creates a new document handler. maxAssetSize bounds each
// uploaded image in bytes.
func NewDocumentHandler(documentService services.DocumentService, logger *logrus.Logger, maxAssetSize int64) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		logger:          logger,
		maxAssetSize:    maxAssetSize,
	}
}

// ErrorResponse is the generic error body for document endpoints
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// GenerateInvoicePDF renders an invoice as a downloadable PDF
// @Summary Generate an invoice PDF
// @Description Renders an invoice from a multipart form: an invoice_data JSON field plus optional logo and signature image files
// @Tags invoices
// @Accept multipart/form-data
// @Produce application/pdf
// @Param invoice_data formData string true "Invoice payload as JSON"
// @Param logo formData file false "Company logo (PNG or JPEG)"
// @Param signature formData file false "Signature image (PNG or JPEG)"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /invoices/generate-pdf [post]
func (h *DocumentHandler) GenerateInvoicePDF(c *gin.Context) {
	payload := c.PostForm("invoice_data")
	if payload == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "MISSING_INVOICE_DATA",
			Message: "invoice_data form field is required",
		})
		return
	}

	var inv models.InvoiceData
	if err := json.Unmarshal([]byte(payload), &inv); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "INVALID_JSON",
			Message: err.Error(),
		})
		return
	}

	as, err := h.formAssets(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "INVALID_UPLOAD",
			Message: err.Error(),
		})
		return
	}

	pdf, filename, err := h.documentService.GenerateInvoice(&inv, as)
	if err != nil {
		h.respondGenerationError(c, err, "invoice")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Header("Cache-Control", "no-cache")
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// GenerateReceiptPDF renders a receipt as a downloadable PDF
// @Summary Generate a receipt PDF
// @Description Renders a receipt from a multipart form: a receipt_data JSON field plus optional logo and signature image files
// @Tags receipts
// @Accept multipart/form-data
// @Produce application/pdf
// @Param receipt_data formData string true "Receipt payload as JSON"
// @Param logo formData file false "Company logo (PNG or JPEG)"
// @Param signature formData file false "Signature image (PNG or JPEG)"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /receipts/generate-pdf [post]
func (h *DocumentHandler) GenerateReceiptPDF(c *gin.Context) {
	payload := c.PostForm("receipt_data")
	if payload == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "MISSING_RECEIPT_DATA",
			Message: "receipt_data form field is required",
		})
		return
	}

	var rec models.ReceiptData
	if err := json.Unmarshal([]byte(payload), &rec); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "INVALID_JSON",
			Message: err.Error(),
		})
		return
	}

	as, err := h.formAssets(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "INVALID_UPLOAD",
			Message: err.Error(),
		})
		return
	}

	pdf, filename, err := h.documentService.GenerateReceipt(&rec, as)
	if err != nil {
		h.respondGenerationError(c, err, "receipt")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Header("Cache-Control", "no-cache")
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *DocumentHandler) respondGenerationError(c *gin.Context, err error, kind string) {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "VALIDATION_ERROR",
			Message: verr.Error(),
		})
		return
	}
	h.logger.WithError(err).Errorf("Failed to generate %s PDF", kind)
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "GENERATION_FAILED",
		Message: fmt.Sprintf("failed to generate %s PDF", kind),
	})
}

func (h *DocumentHandler) formAssets(c *gin.Context) (compose.Assets, error) {
	logo, err := h.formImage(c, "logo")
	if err != nil {
		return compose.Assets{}, err
	}
	signature, err := h.formImage(c, "signature")
	if err != nil {
		return compose.Assets{}, err
	}
	return compose.Assets{Logo: logo, Signature: signature}, nil
}

// formImage reads an optional uploaded image field. A missing file yields a
// nil image. An undecodable upload is dropped with a warning so the document
// still renders, with the image slot left blank; an oversized one is an error.
func (h *DocumentHandler) formImage(c *gin.Context, field string) (*assets.Image, error) {
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s upload: %w", field, err)
	}
	if fh.Size > h.maxAssetSize {
		return nil, fmt.Errorf("%s exceeds the %d byte upload limit", field, h.maxAssetSize)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s upload: %w", field, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.maxAssetSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s upload: %w", field, err)
	}

	img, err := assets.Detect(data, fh.Header.Get("Content-Type"))
	if err != nil {
		h.logger.WithFields(logrus.Fields{
			"field":    field,
			"filename": fh.Filename,
		}).WithError(err).Warn("Ignoring unusable image upload")
		return nil, nil
	}
	return img, nil
}
