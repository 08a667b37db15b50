package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harley-is-not-available/ClosetManager/internal/app"
	"github.com/harley-is-not-available/ClosetManager/internal/model"
	"github.com/harley-is-not-available/ClosetManager/internal/transport/http/response"
)

type CollectionHandler struct {
	collectionService *app.CollectionService
}

type CreateCollectionRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Description string `json:"description"`
	Items       []uint `json:"items"`
}

type UpdateCollectionRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Items       *[]uint `json:"items"`
}

func NewCollectionHandler(collectionService *app.CollectionService) *CollectionHandler {
	return &CollectionHandler{collectionService: collectionService}
}

func (h *CollectionHandler) List(c *gin.Context) {
	userID, ok := callerUserID(c)
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "missing or invalid user_id")
		return
	}

	collections, err := h.collectionService.List(userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "list collections failed")
		return
	}
	if collections == nil {
		collections = []model.Collection{}
	}
	response.OK(c, collections)
}

func (h *CollectionHandler) Get(c *gin.Context) {
	userID, ok := callerUserID(c)
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "missing or invalid user_id")
		return
	}
	collectionID, ok := pathID(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid collection id")
		return
	}

	collection, err := h.collectionService.Get(collectionID, userID)
	if err != nil {
		h.writeCollectionError(c, err)
		return
	}
	response.OK(c, collection)
}

func (h *CollectionHandler) Create(c *gin.Context) {
	userID, ok := callerUserID(c)
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "missing or invalid user_id")
		return
	}

	var req CreateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	collection, err := h.collectionService.Create(app.CreateCollectionInput{
		Name:        req.Name,
		Description: req.Description,
		ItemIDs:     req.Items,
	}, userID)
	if err != nil {
		h.writeCollectionError(c, err)
		return
	}
	response.OK(c, collection)
}

func (h *CollectionHandler) Update(c *gin.Context) {
	userID, ok := callerUserID(c)
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "missing or invalid user_id")
		return
	}
	collectionID, ok := pathID(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid collection id")
		return
	}

	var req UpdateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	collection, err := h.collectionService.Update(collectionID, app.CollectionPatch{
		Name:        req.Name,
		Description: req.Description,
		ItemIDs:     req.Items,
	}, userID)
	if err != nil {
		h.writeCollectionError(c, err)
		return
	}
	response.OK(c, collection)
}

func (h *CollectionHandler) Delete(c *gin.Context) {
	userID, ok := callerUserID(c)
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "missing or invalid user_id")
		return
	}
	collectionID, ok := pathID(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid collection id")
		return
	}

	if err := h.collectionService.Delete(collectionID, userID); err != nil {
		h.writeCollectionError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CollectionHandler) writeCollectionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, app.ErrInvalidInput):
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
	case errors.Is(err, app.ErrCollectionNotFound):
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "collection not found")
	default:
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "collection operation failed")
	}
}
