package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/harley-is-not-available/ClosetManager/internal/app"
	"github.com/harley-is-not-available/ClosetManager/internal/transport/http/response"
)

const maxUploadBytes = 10 << 20 // 10 MiB

type UploadHandler struct {
	uploadService *app.UploadService
}

func NewUploadHandler(uploadService *app.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// Upload accepts a multipart form with a "file" part plus item_id and
// user_id fields.
func (h *UploadHandler) Upload(c *gin.Context) {
	userID, ok := callerUserID(c)
	if !ok {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "missing or invalid user_id")
		return
	}

	itemID, err := strconv.ParseUint(c.PostForm("item_id"), 10, 32)
	if err != nil || itemID == 0 {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "missing or invalid item_id")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "missing file")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "file too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "unreadable file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil || int64(len(data)) > maxUploadBytes {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "unreadable file")
		return
	}

	result, err := h.uploadService.UploadImage(app.UploadInput{
		FileData: data,
		FileName: fileHeader.Filename,
		ItemID:   uint(itemID),
		UserID:   userID,
	})
	if err != nil {
		h.writeUploadError(c, err)
		return
	}

	response.OK(c, gin.H{
		"item":       result.Item,
		"image_data": result.ImageData,
	})
}

func (h *UploadHandler) DeleteImage(c *gin.Context) {
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

	if err := h.uploadService.DeleteImage(itemID, userID); err != nil {
		h.writeUploadError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UploadHandler) writeUploadError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, app.ErrInvalidInput):
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
	// A missing item and a missing image are both reported as not-found so
	// callers cannot probe other users' closets.
	case errors.Is(err, app.ErrItemNotFound), errors.Is(err, app.ErrNoImage):
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "item or image not found")
	default:
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, app.ErrUploadFailed.Error())
	}
}
