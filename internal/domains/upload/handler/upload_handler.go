package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"authorsite-backend/internal/domains/upload"
	"authorsite-backend/internal/shared/response"
)

// UploadHandler - HTTP layer for image uploads
type UploadHandler struct {
	service upload.Service
	maxSize int64
}

// NewUploadHandler - Constructor
func NewUploadHandler(service upload.Service, maxSize int64) *UploadHandler {
	return &UploadHandler{service: service, maxSize: maxSize}
}

// Upload handles POST /api/upload (multipart form, field "file")
func (h *UploadHandler) Upload(c *gin.Context) {
	// Cap the request body before parsing; the processor re-checks the
	// decoded size but this stops oversized bodies at the wire.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxSize+4096)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file field is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "cannot read uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxSize+1))
	if err != nil {
		response.BadRequest(c, "cannot read uploaded file")
		return
	}

	result, err := h.service.Upload(c.Request.Context(), fileHeader.Filename, data)
	if err != nil {
		if errors.Is(err, upload.ErrInvalidImage) {
			response.BadRequest(c, err.Error())
			return
		}
		log.Error().Err(err).Msg("Upload failed")
		response.InternalServerError(c, "upload failed")
		return
	}

	response.Success(c, http.StatusCreated, result)
}

// Delete handles DELETE /api/upload?url=...
func (h *UploadHandler) Delete(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		response.BadRequest(c, "url query parameter is required")
		return
	}

	if err := h.service.Delete(c.Request.Context(), url); err != nil {
		if errors.Is(err, upload.ErrNotOwned) {
			response.BadRequest(c, "url is not in blob storage")
			return
		}
		log.Error().Err(err).Str("url", url).Msg("Blob delete failed")
		response.InternalServerError(c, "delete failed")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
