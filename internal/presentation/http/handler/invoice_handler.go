package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kuldeephumbal/BMS-sub001/internal/application/service"
	"github.com/kuldeephumbal/BMS-sub001/internal/billing/invoice"
	"github.com/kuldeephumbal/BMS-sub001/internal/presentation/http/dto/response"
)

// InvoiceHandler handles invoice document HTTP requests
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// ExportPDF handles downloading a bill as a PDF document
func (h *InvoiceHandler) ExportPDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	theme, err := invoice.ParseTheme(c.DefaultQuery("theme", "detailed"))
	if err != nil {
		response.BadRequest(c, "Unknown theme")
		return
	}

	output, err := h.invoiceService.ExportPDF(c.Request.Context(), id, theme)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.FileName))
	c.Data(http.StatusOK, "application/pdf", output.Content)
}

// RenderText handles rendering a bill as plain text
func (h *InvoiceHandler) RenderText(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	theme, err := invoice.ParseTheme(c.DefaultQuery("theme", "detailed"))
	if err != nil {
		response.BadRequest(c, "Unknown theme")
		return
	}

	text, err := h.invoiceService.RenderText(c.Request.Context(), id, theme)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice rendered successfully", gin.H{
		"theme": theme.String(),
		"text":  text,
	})
}

// Share handles building a short shareable summary of a bill
func (h *InvoiceHandler) Share(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	text, err := h.invoiceService.ShareText(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Share text generated successfully", gin.H{
		"text": text,
	})
}

// Print handles sending a bill to the configured receipt printer
func (h *InvoiceHandler) Print(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	text, err := h.invoiceService.PrintReceipt(c.Request.Context(), id)
	if err != nil {
		// The rendered receipt still comes back so the client can fall
		// back to showing it when the printer is unavailable.
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"message": err.Error(),
			"data":    gin.H{"receipt": text},
		})
		return
	}

	response.OK(c, "Receipt printed successfully", gin.H{
		"receipt": text,
	})
}

// PrinterStatus handles reporting receipt printer status
func (h *InvoiceHandler) PrinterStatus(c *gin.Context) {
	response.OK(c, "Printer status retrieved successfully", h.invoiceService.GetPrinterStatus())
}
