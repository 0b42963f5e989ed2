package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kuldeephumbal/BMS-sub001/internal/application/service"
	"github.com/kuldeephumbal/BMS-sub001/internal/domain/enum"
	"github.com/kuldeephumbal/BMS-sub001/internal/domain/repository"
	"github.com/kuldeephumbal/BMS-sub001/internal/presentation/http/dto/response"
	"github.com/kuldeephumbal/BMS-sub001/pkg/pagination"
)

// PartyHandler handles party-related HTTP requests
type PartyHandler struct {
	partyService *service.PartyService
}

// NewPartyHandler creates a new party handler
func NewPartyHandler(partyService *service.PartyService) *PartyHandler {
	return &PartyHandler{partyService: partyService}
}

// List handles listing parties (supports both page-based and cursor-based pagination)
func (h *PartyHandler) List(c *gin.Context) {
	search := c.Query("search")
	partyType := parsePartyType(c.Query("type"))

	// Check if cursor-based pagination is requested
	if cursor := c.Query("cursor"); cursor != "" || c.Query("limit") != "" {
		h.listWithCursor(c, search, partyType)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	result, err := h.partyService.ListParties(c.Request.Context(), &repository.PartyFilterParams{
		Pagination: &pagination.PaginationParams{Page: page, PerPage: perPage},
		Search:     search,
		Type:       partyType,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Parties retrieved successfully", result)
}

// listWithCursor handles listing parties with cursor-based pagination
func (h *PartyHandler) listWithCursor(c *gin.Context, search string, partyType *enum.PartyType) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "15"))
	cursor := c.Query("cursor")
	direction := c.DefaultQuery("direction", "next")

	params := &pagination.CursorParams{
		Cursor:    cursor,
		Direction: pagination.CursorDirection(direction),
		Limit:     limit,
	}

	result, err := h.partyService.ListPartiesWithCursor(c.Request.Context(), params, search, partyType)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 200, "Parties retrieved successfully", result)
}

// Create handles creating a party
func (h *PartyHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		Type    enum.PartyType `json:"type"`
		Name    string         `json:"name" binding:"required"`
		Phone   string         `json:"phone" binding:"required"`
		Email   *string        `json:"email"`
		Address *string        `json:"address"`
		GSTIN   *string        `json:"gstin"`
		Photo   *string        `json:"photo"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	party, err := h.partyService.CreateParty(c.Request.Context(), &service.CreatePartyInput{
		UserID:  *userID,
		Type:    req.Type,
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
		GSTIN:   req.GSTIN,
		Photo:   req.Photo,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Party created successfully", party)
}

// Get handles getting a single party
func (h *PartyHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid party ID")
		return
	}

	party, err := h.partyService.GetParty(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Party retrieved successfully", party)
}

// GetBalance handles getting the outstanding balance for a party
func (h *PartyHandler) GetBalance(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid party ID")
		return
	}

	balance, err := h.partyService.GetPartyBalance(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Party balance retrieved successfully", balance)
}

// Update handles updating a party
func (h *PartyHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid party ID")
		return
	}

	var req struct {
		Name    *string `json:"name"`
		Phone   *string `json:"phone"`
		Email   *string `json:"email"`
		Address *string `json:"address"`
		GSTIN   *string `json:"gstin"`
		Photo   *string `json:"photo"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	party, err := h.partyService.UpdateParty(c.Request.Context(), &service.UpdatePartyInput{
		ID:      id,
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
		GSTIN:   req.GSTIN,
		Photo:   req.Photo,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Party updated successfully", party)
}

// Delete handles deleting a party
func (h *PartyHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid party ID")
		return
	}

	if err := h.partyService.DeleteParty(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
