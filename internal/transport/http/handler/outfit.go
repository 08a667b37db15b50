package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harley-is-not-available/ClosetManager/internal/app"
	"github.com/harley-is-not-available/ClosetManager/internal/model"
	"github.com/harley-is-not-available/ClosetManager/internal/transport/http/response"
)

type OutfitHandler struct {
	outfitService *app.OutfitService
}

type CreateOutfitRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Description string `json:"description"`
	Items       []uint `json:"items"`
	Metadata    string `json:"metadata"`
	IsPublic    bool   `json:"is_public"`
}

type UpdateOutfitRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Items       *[]uint `json:"items"`
	Metadata    *string `json:"metadata"`
	IsPublic    *bool   `json:"is_public"`
}

func NewOutfitHandler(outfitService *app.OutfitService) *OutfitHandler {
	return &OutfitHandler{outfitService: outfitService}
}

func (h *OutfitHandler) List(c *gin.Context) {
	userID, ok := callerUserID(c)
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "missing or invalid user_id")
		return
	}

	outfits, err := h.outfitService.List(userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "list outfits failed")
		return
	}
	if outfits == nil {
		outfits = []model.Outfit{}
	}
	response.OK(c, outfits)
}

func (h *OutfitHandler) Get(c *gin.Context) {
	userID, ok := callerUserID(c)
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "missing or invalid user_id")
		return
	}
	outfitID, ok := pathID(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid outfit id")
		return
	}

	outfit, err := h.outfitService.Get(outfitID, userID)
	if err != nil {
		h.writeOutfitError(c, err)
		return
	}
	response.OK(c, outfit)
}

func (h *OutfitHandler) Create(c *gin.Context) {
	userID, ok := callerUserID(c)
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "missing or invalid user_id")
		return
	}

	var req CreateOutfitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	outfit, err := h.outfitService.Create(app.CreateOutfitInput{
		Name:        req.Name,
		Description: req.Description,
		ItemIDs:     req.Items,
		Metadata:    req.Metadata,
		IsPublic:    req.IsPublic,
	}, userID)
	if err != nil {
		h.writeOutfitError(c, err)
		return
	}
	response.OK(c, outfit)
}

func (h *OutfitHandler) Update(c *gin.Context) {
	userID, ok := callerUserID(c)
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "missing or invalid user_id")
		return
	}
	outfitID, ok := pathID(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid outfit id")
		return
	}

	var req UpdateOutfitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	outfit, err := h.outfitService.Update(outfitID, app.OutfitPatch{
		Name:        req.Name,
		Description: req.Description,
		ItemIDs:     req.Items,
		Metadata:    req.Metadata,
		IsPublic:    req.IsPublic,
	}, userID)
	if err != nil {
		h.writeOutfitError(c, err)
		return
	}
	response.OK(c, outfit)
}

func (h *OutfitHandler) Delete(c *gin.Context) {
	userID, ok := callerUserID(c)
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "missing or invalid user_id")
		return
	}
	outfitID, ok := pathID(c, "id")
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid outfit id")
		return
	}

	if err := h.outfitService.Delete(outfitID, userID); err != nil {
		h.writeOutfitError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OutfitHandler) writeOutfitError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, app.ErrInvalidInput):
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
	case errors.Is(err, app.ErrOutfitNotFound):
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "outfit not found")
	default:
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "outfit operation failed")
	}
}
