package drug

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pharmadesk/pharmacy-api/internal/model"
	"github.com/pharmadesk/pharmacy-api/internal/service/drug"
)

type Handler struct {
	service drug.Service
}

func NewHandler(service drug.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	drugs := r.Group("/drugs")
	{
		drugs.GET("", h.ListDrugs)
		drugs.POST("", h.CreateDrug)
		drugs.GET("/below-price/:threshold", h.ListBelowPrice)
		drugs.PUT("/update-price", h.UpdatePrice)
		drugs.GET("/:name", h.GetDrug)
		drugs.PUT("/:name", h.UpdateDrug)
		drugs.DELETE("/:name", h.DeleteDrug)
	}
}

func (h *Handler) ListDrugs(c *gin.Context) {
	drugs, err := h.service.ListDrugs(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if drugs == nil {
		drugs = []*model.Drug{}
	}
	c.JSON(http.StatusOK, drugs)
}

func (h *Handler) GetDrug(c *gin.Context) {
	drug, err := h.service.GetDrug(c.Request.Context(), c.Param("name"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, drug)
}

func (h *Handler) CreateDrug(c *gin.Context) {
	var req model.CreateDrugRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.CreateDrug(c.Request.Context(), &req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "drug added successfully", "drug_name": req.DrugName})
}

func (h *Handler) UpdateDrug(c *gin.Context) {
	var req model.UpdateDrugRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.UpdateDrug(c.Request.Context(), c.Param("name"), &req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "drug updated successfully"})
}

func (h *Handler) DeleteDrug(c *gin.Context) {
	if err := h.service.DeleteDrug(c.Request.Context(), c.Param("name")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "drug deleted successfully"})
}

func (h *Handler) ListBelowPrice(c *gin.Context) {
	threshold, err := strconv.ParseFloat(c.Param("threshold"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price threshold"})
		return
	}

	drugs, err := h.service.ListBelowPrice(c.Request.Context(), threshold)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if drugs == nil {
		drugs = []*model.PricedDrug{}
	}
	c.JSON(http.StatusOK, drugs)
}

// UpdatePrice reprices one (pharmacy, drug) pair taken from the body; drug
// price is scoped to the pharmacy selling it.
func (h *Handler) UpdatePrice(c *gin.Context) {
	var req model.UpdateDrugPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.UpdatePrice(c.Request.Context(), &req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "drug price updated successfully"})
}
