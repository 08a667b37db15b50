package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/harley-is-not-available/ClosetManager/internal/app"
	"github.com/harley-is-not-available/ClosetManager/internal/model"
	"github.com/harley-is-not-available/ClosetManager/internal/transport/http/response"
)

type ItemHandler struct {
	itemService *app.ItemService
}

type CreateItemRequest struct {
	Name         string     `json:"name" binding:"required,min=1,max=255"`
	Description  string     `json:"description"`
	Category     string     `json:"category" binding:"max=100"`
	Size         string     `json:"size" binding:"max=20"`
	Color        string     `json:"color" binding:"max=50"`
	Price        float64    `json:"price" binding:"omitempty,gte=0"`
	PurchaseDate *time.Time `json:"purchase_date"`
	// user_id inside the payload is accepted for wire compatibility with the
	// original clients but never trusted; ownership comes from the caller.
	UserID uint `json:"user_id"`
}

type UpdateItemRequest struct {
	Name         *string    `json:"name"`
	Description  *string    `json:"description"`
	Category     *string    `json:"category"`
	Size         *string    `json:"size"`
	Color        *string    `json:"color"`
	Price        *float64   `json:"price"`
	PurchaseDate *time.Time `json:"purchase_date"`
}

func NewItemHandler(itemService *app.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// List always answers 200, with an empty array when the closet is empty.
func (h *ItemHandler) List(c *gin.Context) {
	userID, ok := callerUserID(c)
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "missing or invalid user_id")
		return
	}

	items, err := h.itemService.List(userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "list items failed")
		return
	}
	if items == nil {
		items = []model.ClothingItem{}
	}
	response.OK(c, items)
}

func (h *ItemHandler) Get(c *gin.Context) {
	userID, ok := callerUserID(c)
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "missing or invalid user_id")
		return
	}
	itemID, ok := pathID(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid item id")
		return
	}

	item, err := h.itemService.Get(itemID, userID)
	if err != nil {
		h.writeItemError(c, err)
		return
	}
	response.OK(c, item)
}

func (h *ItemHandler) Create(c *gin.Context) {
	userID, ok := callerUserID(c)
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "missing or invalid user_id")
		return
	}

	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	item, err := h.itemService.Create(app.CreateItemInput{
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		Size:         req.Size,
		Color:        req.Color,
		Price:        req.Price,
		PurchaseDate: req.PurchaseDate,
	}, userID)
	if err != nil {
		h.writeItemError(c, err)
		return
	}
	response.OK(c, item)
}

func (h *ItemHandler) Update(c *gin.Context) {
	userID, ok := callerUserID(c)
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "missing or invalid user_id")
		return
	}
	itemID, ok := pathID(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid item id")
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	item, err := h.itemService.Update(itemID, app.ItemPatch{
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		Size:         req.Size,
		Color:        req.Color,
		Price:        req.Price,
		PurchaseDate: req.PurchaseDate,
	}, userID)
	if err != nil {
		h.writeItemError(c, err)
		return
	}
	response.OK(c, item)
}

func (h *ItemHandler) Delete(c *gin.Context) {
	userID, ok := callerUserID(c)
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "missing or invalid user_id")
		return
	}
	itemID, ok := pathID(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid item id")
		return
	}

	if err := h.itemService.Delete(itemID, userID); err != nil {
		h.writeItemError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ItemHandler) writeItemError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, app.ErrInvalidInput):
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
	case errors.Is(err, app.ErrItemNotFound):
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "item not found")
	default:
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "item operation failed")
	}
}
