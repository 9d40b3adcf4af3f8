package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pharmadesk/pharmacy-api/internal/service/dashboard"
)

type Handler struct {
	service dashboard.Service
}

func NewHandler(service dashboard.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/dashboard/stats", h.GetStats)
}

// GetStats always answers 200: a failed sub-query degrades its own slot to an
// error descriptor instead of failing the whole snapshot.
func (h *Handler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Stats(c.Request.Context()))
}
