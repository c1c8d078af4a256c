package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"authorsite-backend/internal/domains/book"
	"authorsite-backend/internal/infrastructure/database"
	"authorsite-backend/internal/shared/response"
)

// BookHandler - HTTP layer for books
type BookHandler struct {
	service book.Service
}

// NewBookHandler - Constructor
func NewBookHandler(service book.Service) *BookHandler {
	return &BookHandler{service: service}
}

// List handles GET /api/books
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, books)
}

// ListFeatured handles GET /api/books/featured
func (h *BookHandler) ListFeatured(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "3"))
	if err != nil || limit < 1 || limit > 50 {
		response.BadRequest(c, "limit must be a number between 1 and 50")
		return
	}

	books, err := h.service.ListFeatured(c.Request.Context(), limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, books)
}

// Create handles POST /api/books
func (h *BookHandler) Create(c *gin.Context) {
	var req book.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	b, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, b)
}

// Update handles PUT /api/books/:id
func (h *BookHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	var req book.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	b, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, b)
}

// Delete handles DELETE /api/books/:id
func (h *BookHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *BookHandler) handleError(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.BadRequest(c, verrs.Error())
		return
	}

	switch {
	case errors.Is(err, book.ErrBookNotFound):
		response.NotFound(c, "book not found")
	case errors.Is(err, book.ErrSlugAlreadyExists):
		response.Conflict(c, "a book with this slug already exists")
	case database.IsUnavailable(err):
		response.ServiceUnavailable(c, "database unavailable")
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Book handler error")
		response.InternalServerError(c, "internal server error")
	}
}
