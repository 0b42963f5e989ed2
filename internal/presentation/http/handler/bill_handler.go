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

// billItemRequest is one line item in a bill request body
type billItemRequest struct {
	ProductID *uuid.UUID `json:"product_id"`
	Name      string     `json:"name" binding:"required"`
	Quantity  float64    `json:"quantity" binding:"required"`
	UnitPrice float64    `json:"unit_price"`
	Unit      *string    `json:"unit"`
}

// billChargeRequest is one additional charge in a bill request body
type billChargeRequest struct {
	Name   string  `json:"name" binding:"required"`
	Amount float64 `json:"amount"`
}

// billDiscountRequest is one discount in a bill request body
type billDiscountRequest struct {
	Kind  enum.DiscountKind `json:"kind"`
	Value float64           `json:"value"`
}

func toItemInputs(items []billItemRequest) []service.BillItemInput {
	out := make([]service.BillItemInput, 0, len(items))
	for _, item := range items {
		out = append(out, service.BillItemInput{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Unit:      item.Unit,
		})
	}
	return out
}

func toChargeInputs(charges []billChargeRequest) []service.BillChargeInput {
	out := make([]service.BillChargeInput, 0, len(charges))
	for _, charge := range charges {
		out = append(out, service.BillChargeInput{Name: charge.Name, Amount: charge.Amount})
	}
	return out
}

func toDiscountInputs(discounts []billDiscountRequest) []service.BillDiscountInput {
	out := make([]service.BillDiscountInput, 0, len(discounts))
	for _, discount := range discounts {
		out = append(out, service.BillDiscountInput{Kind: discount.Kind, Value: discount.Value})
	}
	return out
}

// BillHandler handles bill-related HTTP requests
type BillHandler struct {
	billService *service.BillService
}

// NewBillHandler creates a new bill handler
func NewBillHandler(billService *service.BillService) *BillHandler {
	return &BillHandler{billService: billService}
}

// List handles listing bills (supports both page-based and cursor-based pagination)
func (h *BillHandler) List(c *gin.Context) {
	search := c.Query("search")
	billType := parseBillType(c.Query("type"))

	var partyID *uuid.UUID
	if s := c.Query("party_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			partyID = &id
		}
	}

	// Check if cursor-based pagination is requested
	if cursor := c.Query("cursor"); cursor != "" || c.Query("limit") != "" {
		h.listWithCursor(c, search, billType, partyID)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	result, err := h.billService.ListBills(c.Request.Context(), &repository.BillFilterParams{
		Pagination:    &pagination.PaginationParams{Page: page, PerPage: perPage},
		Search:        search,
		Type:          billType,
		PartyID:       partyID,
		PaymentMethod: parsePaymentMethod(c.Query("payment_method")),
		StartDate:     parseDate(c.Query("start_date")),
		EndDate:       parseDate(c.Query("end_date")),
		SortBy:        c.Query("sort_by"),
		SortOrder:     c.Query("sort_order"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Bills retrieved successfully", result)
}

// listWithCursor handles listing bills with cursor-based pagination
func (h *BillHandler) listWithCursor(c *gin.Context, search string, billType *enum.BillType, partyID *uuid.UUID) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "15"))
	cursor := c.Query("cursor")
	direction := c.DefaultQuery("direction", "next")

	result, err := h.billService.ListBillsWithCursor(c.Request.Context(), &repository.BillCursorFilterParams{
		Cursor: &pagination.CursorParams{
			Cursor:    cursor,
			Direction: pagination.CursorDirection(direction),
			Limit:     limit,
		},
		Search:  search,
		Type:    billType,
		PartyID: partyID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 200, "Bills retrieved successfully", result)
}

// Create handles creating a bill
func (h *BillHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		Type          enum.BillType         `json:"type"`
		BillNo        string                `json:"bill_no"`
		PartyID       uuid.UUID             `json:"party_id" binding:"required"`
		PaymentMethod enum.PaymentMethod    `json:"payment_method"`
		Date          *time.Time            `json:"date"`
		DueDate       *time.Time            `json:"due_date"`
		Items         []billItemRequest     `json:"items" binding:"required"`
		Charges       []billChargeRequest   `json:"charges"`
		Discounts     []billDiscountRequest `json:"discounts"`
		BalanceDue    *float64              `json:"balance_due"`
		TotalAmount   *float64              `json:"total_amount"`
		Notes         *string               `json:"notes"`
		Terms         *string               `json:"terms"`
		Photos        []string              `json:"photos"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	bill, err := h.billService.CreateBill(c.Request.Context(), &service.CreateBillInput{
		UserID:        *userID,
		Type:          req.Type,
		BillNo:        req.BillNo,
		PartyID:       req.PartyID,
		PaymentMethod: req.PaymentMethod,
		Date:          req.Date,
		DueDate:       req.DueDate,
		Items:         toItemInputs(req.Items),
		Charges:       toChargeInputs(req.Charges),
		Discounts:     toDiscountInputs(req.Discounts),
		BalanceDue:    req.BalanceDue,
		TotalAmount:   req.TotalAmount,
		Notes:         req.Notes,
		Terms:         req.Terms,
		Photos:        req.Photos,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Bill created successfully", bill)
}

// Get handles getting a single bill with its computed totals
func (h *BillHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	bill, err := h.billService.GetBill(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill retrieved successfully", bill)
}

// Update handles updating a bill
func (h *BillHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	var req struct {
		PaymentMethod *enum.PaymentMethod   `json:"payment_method"`
		Date          *time.Time            `json:"date"`
		DueDate       *time.Time            `json:"due_date"`
		Items         []billItemRequest     `json:"items"`
		Charges       []billChargeRequest   `json:"charges"`
		Discounts     []billDiscountRequest `json:"discounts"`
		BalanceDue    *float64              `json:"balance_due"`
		TotalAmount   *float64              `json:"total_amount"`
		Notes         *string               `json:"notes"`
		Terms         *string               `json:"terms"`
		Photos        []string              `json:"photos"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateBillInput{
		ID:            id,
		PaymentMethod: req.PaymentMethod,
		Date:          req.Date,
		DueDate:       req.DueDate,
		BalanceDue:    req.BalanceDue,
		TotalAmount:   req.TotalAmount,
		Notes:         req.Notes,
		Terms:         req.Terms,
		Photos:        req.Photos,
	}
	if req.Items != nil {
		input.Items = toItemInputs(req.Items)
		input.Charges = toChargeInputs(req.Charges)
		input.Discounts = toDiscountInputs(req.Discounts)
	}

	bill, err := h.billService.UpdateBill(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill updated successfully", bill)
}

// Delete handles deleting a bill (stock effects are reversed)
func (h *BillHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	if err := h.billService.DeleteBill(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
