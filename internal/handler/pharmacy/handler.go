package pharmacy

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pharmadesk/pharmacy-api/internal/model"
	"github.com/pharmadesk/pharmacy-api/internal/service/pharmacy"
)

type Handler struct {
	service pharmacy.Service
}

func NewHandler(service pharmacy.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	pharmacies := r.Group("/pharmacies")
	{
		pharmacies.GET("", h.ListPharmacies)
		pharmacies.GET("/:id", h.GetPharmacy)
		pharmacies.POST("", h.CreatePharmacy)
		pharmacies.PUT("/:id", h.UpdatePharmacy)
		pharmacies.DELETE("/:id", h.DeletePharmacy)

		pharmacies.GET("/:id/drug-count", h.DrugCount)
	}
}

func (h *Handler) ListPharmacies(c *gin.Context) {
	pharmacies, err := h.service.ListPharmacies(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if pharmacies == nil {
		pharmacies = []*model.Pharmacy{}
	}
	c.JSON(http.StatusOK, pharmacies)
}

func (h *Handler) GetPharmacy(c *gin.Context) {
	pharmacy, err := h.service.GetPharmacy(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pharmacy)
}

func (h *Handler) CreatePharmacy(c *gin.Context) {
	var req model.CreatePharmacyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.CreatePharmacy(c.Request.Context(), &req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "pharmacy added successfully", "phar_id": req.PharID})
}

func (h *Handler) UpdatePharmacy(c *gin.Context) {
	var req model.UpdatePharmacyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.UpdatePharmacy(c.Request.Context(), c.Param("id"), &req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "pharmacy updated successfully"})
}

func (h *Handler) DeletePharmacy(c *gin.Context) {
	if err := h.service.DeletePharmacy(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "pharmacy deleted successfully"})
}

func (h *Handler) DrugCount(c *gin.Context) {
	result, err := h.service.DrugCount(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"drug_count": result.Count})
}
