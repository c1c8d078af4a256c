package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"authorsite-backend/internal/domains/award"
	"authorsite-backend/internal/infrastructure/database"
	"authorsite-backend/internal/shared/response"
)

// AwardHandler - HTTP layer for awards
type AwardHandler struct {
	service award.Service
}

// NewAwardHandler - Constructor
func NewAwardHandler(service award.Service) *AwardHandler {
	return &AwardHandler{service: service}
}

// List handles GET /api/awards
func (h *AwardHandler) List(c *gin.Context) {
	awards, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, awards)
}

// Create handles POST /api/awards
func (h *AwardHandler) Create(c *gin.Context) {
	var req award.CreateAwardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	a, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, a)
}

// Update handles PUT /api/awards/:id
func (h *AwardHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid award id")
		return
	}

	var req award.UpdateAwardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	a, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, a)
}

// Delete handles DELETE /api/awards/:id
func (h *AwardHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid award id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *AwardHandler) handleError(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.BadRequest(c, verrs.Error())
		return
	}

	switch {
	case errors.Is(err, award.ErrAwardNotFound):
		response.NotFound(c, "award not found")
	case database.IsUnavailable(err):
		response.ServiceUnavailable(c, "database unavailable")
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Award handler error")
		response.InternalServerError(c, "internal server error")
	}
}
