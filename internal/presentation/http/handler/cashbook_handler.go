package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kuldeephumbal/BMS-sub001/internal/application/service"
	"github.com/kuldeephumbal/BMS-sub001/internal/domain/enum"
	"github.com/kuldeephumbal/BMS-sub001/internal/domain/repository"
	"github.com/kuldeephumbal/BMS-sub001/internal/presentation/http/dto/response"
	"github.com/kuldeephumbal/BMS-sub001/pkg/pagination"
)

// CashbookHandler handles cashbook-related HTTP requests
type CashbookHandler struct {
	cashbookService *service.CashbookService
}

// NewCashbookHandler creates a new cashbook handler
func NewCashbookHandler(cashbookService *service.CashbookService) *CashbookHandler {
	return &CashbookHandler{cashbookService: cashbookService}
}

// List handles listing cashbook entries
func (h *CashbookHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	result, err := h.cashbookService.ListEntries(c.Request.Context(), &repository.CashbookFilterParams{
		Pagination: &pagination.PaginationParams{Page: page, PerPage: perPage},
		Direction:  parseEntryDirection(c.Query("direction")),
		Method:     parsePaymentMethod(c.Query("method")),
		StartDate:  parseDate(c.Query("start_date")),
		EndDate:    parseDate(c.Query("end_date")),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Cashbook entries retrieved successfully", result)
}

// Summary handles the cash-in/cash-out summary over an optional date range
func (h *CashbookHandler) Summary(c *gin.Context) {
	summary, err := h.cashbookService.GetSummary(c.Request.Context(), parseDate(c.Query("start_date")), parseDate(c.Query("end_date")))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cashbook summary retrieved successfully", summary)
}

// Create handles recording a cashbook entry
func (h *CashbookHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		Direction enum.EntryDirection `json:"direction"`
		Amount    float64             `json:"amount" binding:"required"`
		Method    enum.PaymentMethod  `json:"method"`
		Note      *string             `json:"note"`
		Date      *time.Time          `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreateEntryInput{
		UserID:    *userID,
		Direction: req.Direction,
		Amount:    req.Amount,
		Method:    req.Method,
		Note:      req.Note,
	}
	if req.Date != nil {
		input.Date = *req.Date
	}

	entry, err := h.cashbookService.CreateEntry(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Cashbook entry created successfully", entry)
}

// Get handles getting a single cashbook entry
func (h *CashbookHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid entry ID")
		return
	}

	entry, err := h.cashbookService.GetEntry(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cashbook entry retrieved successfully", entry)
}

// Update handles updating a cashbook entry
func (h *CashbookHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid entry ID")
		return
	}

	var req struct {
		Direction *enum.EntryDirection `json:"direction"`
		Amount    *float64             `json:"amount"`
		Method    *enum.PaymentMethod  `json:"method"`
		Note      *string              `json:"note"`
		Date      *time.Time           `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	entry, err := h.cashbookService.UpdateEntry(c.Request.Context(), &service.UpdateEntryInput{
		ID:        id,
		Direction: req.Direction,
		Amount:    req.Amount,
		Method:    req.Method,
		Note:      req.Note,
		Date:      req.Date,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cashbook entry updated successfully", entry)
}

// Delete handles deleting a cashbook entry
func (h *CashbookHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid entry ID")
		return
	}

	if err := h.cashbookService.DeleteEntry(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
