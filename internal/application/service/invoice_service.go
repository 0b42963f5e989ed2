package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kuldeephumbal/BMS-sub001/internal/billing/invoice"
	"github.com/kuldeephumbal/BMS-sub001/internal/domain/entity"
	"github.com/kuldeephumbal/BMS-sub001/internal/domain/repository"
	"github.com/kuldeephumbal/BMS-sub001/pkg/apperror"
	"github.com/kuldeephumbal/BMS-sub001/pkg/printer"
)

// InvoiceService renders bills as invoice documents: PDF export, thermal
// receipt printing and share text.
type InvoiceService struct {
	billRepo     repository.BillRepository
	businessRepo repository.BusinessRepository
	printer      printer.Printer
	printerType  string
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	billRepo repository.BillRepository,
	businessRepo repository.BusinessRepository,
	p printer.Printer,
	printerType string,
) *InvoiceService {
	return &InvoiceService{
		billRepo:     billRepo,
		businessRepo: businessRepo,
		printer:      p,
		printerType:  printerType,
	}
}

// buildData loads a bill with details and its business header into render data.
func (s *InvoiceService) buildData(ctx context.Context, billID uuid.UUID) (*invoice.Data, error) {
	bill, err := s.billRepo.GetWithDetails(ctx, billID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}

	info := invoice.BusinessInfo{}
	if business, err := s.businessRepo.GetByID(ctx, bill.BusinessID); err != nil {
		return nil, err
	} else if business != nil {
		info = businessInfo(business)
	}

	return invoice.NewData(bill, info), nil
}

func businessInfo(business *entity.Business) invoice.BusinessInfo {
	info := invoice.BusinessInfo{
		Name:  business.Name,
		Phone: business.Phone,
	}
	if business.Address != nil {
		info.Address = *business.Address
	}
	if business.GSTIN != nil {
		info.GSTIN = *business.GSTIN
	}
	if business.Logo != nil {
		info.Logo = *business.Logo
	}
	return info
}

// ExportPDFOutput carries a rendered PDF and its download filename.
type ExportPDFOutput struct {
	FileName string
	Content  []byte
}

// ExportPDF renders the bill as a PDF in the requested theme. Every call
// produces a fresh artifact.
func (s *InvoiceService) ExportPDF(ctx context.Context, billID uuid.UUID, theme invoice.Theme) (*ExportPDFOutput, error) {
	data, err := s.buildData(ctx, billID)
	if err != nil {
		return nil, err
	}

	content, err := invoice.ForTheme(theme).RenderPDF(data)
	if err != nil {
		return nil, err
	}

	return &ExportPDFOutput{
		FileName: fmt.Sprintf("%s-%s.pdf", data.Bill.BillNo, theme),
		Content:  content,
	}, nil
}

// RenderText renders the bill as plain text in the requested theme
func (s *InvoiceService) RenderText(ctx context.Context, billID uuid.UUID, theme invoice.Theme) (string, error) {
	data, err := s.buildData(ctx, billID)
	if err != nil {
		return "", err
	}
	return invoice.ForTheme(theme).RenderText(data), nil
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetPrinterStatus returns printer connection status
func (s *InvoiceService) GetPrinterStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// PrintReceipt sends the bill to the thermal printer as an ESC/POS receipt.
// The receipt text is returned so callers can show it when no physical
// printer is configured.
func (s *InvoiceService) PrintReceipt(ctx context.Context, billID uuid.UUID) (string, error) {
	data, err := s.buildData(ctx, billID)
	if err != nil {
		return "", err
	}

	text := invoice.ForTheme(invoice.ThemeReceipt).RenderText(data)

	if err := s.printer.Print(invoice.ESCPOS(data)); err != nil {
		return text, fmt.Errorf("receipt print failed: %w", err)
	}

	return text, nil
}

// ShareText builds the short share message for a bill
func (s *InvoiceService) ShareText(ctx context.Context, billID uuid.UUID) (string, error) {
	data, err := s.buildData(ctx, billID)
	if err != nil {
		return "", err
	}
	return invoice.ShareSummary(data), nil
}
