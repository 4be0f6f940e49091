package handler

import (
	"context"
	"fmt"
	"net/http"

	model "sharelocal/internal/models"
	"sharelocal/services/request/helpers"
	"sharelocal/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=catalog_handler.go -destination=mock_service.go -package=handler

type CatalogServiceInterface interface {
	AddItem(ctx context.Context, ownerID, title, description, itemType string, price float64) (model.Item, error)
	GetItem(ctx context.Context, itemID string) (model.Item, error)
	ListAvailable(ctx context.Context) ([]model.Item, error)
}

type CatalogHandler struct {
	service CatalogServiceInterface
}

func NewCatalogHandler(service CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// AddItemRequest is the payload for creating a listing
type AddItemRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	ItemType    string  `json:"item_type" binding:"required,oneof=Share Sell Rent"`
	Price       float64 `json:"price" binding:"gte=0"`
}

// AddItemHandler handles POST /items
func (h *CatalogHandler) AddItemHandler(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddItemHandler", err)
		return
	}

	ownerID := utils.CurrentUser(c)
	item, err := h.service.AddItem(c.Request.Context(), ownerID, req.Title, req.Description, req.ItemType, req.Price)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("AddItemHandler: failed to add item", map[string]any{
			"owner_id": ownerID,
			"title":    req.Title,
			"error":    err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, item, "item added successfully")
	helpers.LogSuccess("AddItemHandler", "item added successfully", map[string]any{
		"item_id":  item.ItemID,
		"owner_id": ownerID,
		"type":     item.ItemType,
	})
}

// GetItemHandler handles GET /items/:item_id
func (h *CatalogHandler) GetItemHandler(c *gin.Context) {
	itemID := c.Param("item_id")

	item, err := h.service.GetItem(c.Request.Context(), itemID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetItemHandler: error retrieving item", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, item, "item retrieved successfully")
}

// ListItemsHandler handles GET /items
func (h *CatalogHandler) ListItemsHandler(c *gin.Context) {
	items, err := h.service.ListAvailable(c.Request.Context())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListItemsHandler: error listing items", map[string]any{"error": err.Error()})
		return
	}

	if items == nil {
		items = []model.Item{}
	}

	utils.JSONResponse(c, http.StatusOK, items, "items retrieved successfully")
}
