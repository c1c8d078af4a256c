package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"authorsite-backend/internal/domains/work"
	"authorsite-backend/internal/infrastructure/database"
	"authorsite-backend/internal/shared/response"
)

// WorkHandler - HTTP layer for works
type WorkHandler struct {
	service work.Service
}

// NewWorkHandler - Constructor
func NewWorkHandler(service work.Service) *WorkHandler {
	return &WorkHandler{service: service}
}

// List handles GET /api/works
func (h *WorkHandler) List(c *gin.Context) {
	var filter work.Filter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	works, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, works)
}

// AdminList handles GET /api/admin/works. Unlike the public listing it
// includes drafts unless the caller narrows by status.
func (h *WorkHandler) AdminList(c *gin.Context) {
	var filter work.Filter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}
	if filter.Status == "" {
		filter.Status = "all"
	}

	works, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, works)
}

// ListFeatured handles GET /api/works/featured
func (h *WorkHandler) ListFeatured(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "3"))
	if err != nil || limit < 1 || limit > 50 {
		response.BadRequest(c, "limit must be a number between 1 and 50")
		return
	}

	works, err := h.service.ListFeatured(c.Request.Context(), limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, works)
}

// GetBySlug handles GET /api/works/slug/:slug
func (h *WorkHandler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")

	w, err := h.service.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, w)
}

// ListSlugs handles GET /api/works/slugs
func (h *WorkHandler) ListSlugs(c *gin.Context) {
	slugs, err := h.service.ListSlugs(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, slugs)
}

// Create handles POST /api/works
func (h *WorkHandler) Create(c *gin.Context) {
	var req work.CreateWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	w, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, w)
}

// Update handles PUT /api/works/:id
func (h *WorkHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid work id")
		return
	}

	var req work.UpdateWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	w, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, w)
}

// Delete handles DELETE /api/works/:id
func (h *WorkHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid work id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *WorkHandler) handleError(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.BadRequest(c, verrs.Error())
		return
	}

	switch {
	case errors.Is(err, work.ErrWorkNotFound):
		response.NotFound(c, "work not found")
	case errors.Is(err, work.ErrSlugAlreadyExists):
		response.Conflict(c, "a work with this slug already exists")
	case database.IsUnavailable(err):
		response.ServiceUnavailable(c, "database unavailable")
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Work handler error")
		response.InternalServerError(c, "internal server error")
	}
}
