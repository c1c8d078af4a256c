package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"authorsite-backend/internal/domains/home"
	"authorsite-backend/internal/infrastructure/database"
	"authorsite-backend/internal/shared/response"
)

// HomeHandler - HTTP layer for site aggregates
type HomeHandler struct {
	service home.Service
}

// NewHomeHandler - Constructor
func NewHomeHandler(service home.Service) *HomeHandler {
	return &HomeHandler{service: service}
}

// Stats handles GET /api/stats
func (h *HomeHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		if database.IsUnavailable(err) {
			response.ServiceUnavailable(c, "database unavailable")
			return
		}
		log.Error().Err(err).Msg("Stats query failed")
		response.InternalServerError(c, "internal server error")
		return
	}

	response.Success(c, http.StatusOK, stats)
}
