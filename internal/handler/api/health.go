package api

import (
	"net/http"

	resdto "promo-code-service/internal/handler/dto/response"
	"promo-code-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const serviceName = "promo-code-service"

type HealthHandler struct {
	q queries.PromoCodeQueries
}

func NewHealthHandler(q queries.PromoCodeQueries) *HealthHandler {
	return &HealthHandler{q: q}
}

// @Summary Health check
// @Description Reports whether the configured store backend is reachable
// @Tags health
// @Produce json
// @Success 200 {object} resdto.HealthResponse
// @Failure 503 {object} resdto.HealthResponse
// @Router /api/health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	report := h.q.Health(c.Request.Context())

	status := http.StatusOK
	if !report.Reachable {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, resdto.FromHealthReport(report, serviceName))
}
