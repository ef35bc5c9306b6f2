package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/seedcatalog/backend/internal/domain"
	"github.com/seedcatalog/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	service *usecase.CatalogService
}

// NewHandler creates a new HTTP handler
func NewHandler(service *usecase.CatalogService) *Handler {
	return &Handler{service: service}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "seedcatalog-backend",
		"version": "1.0.0",
	})
}

// NormalizeProduct normalizes one scraped product into a catalog record
func (h *Handler) NormalizeProduct(c *gin.Context) {
	var req domain.NormalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	product, err := h.service.NormalizeProduct(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	response := gin.H{"product": product}
	if warnings := h.service.ValidateProduct(product); len(warnings) > 0 {
		response["warnings"] = warnings
	}
	c.JSON(http.StatusOK, response)
}

// LandedCost computes a standalone landed-cost breakdown
func (h *Handler) LandedCost(c *gin.Context) {
	var req domain.LandedCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.service.LandedCost(&req))
}

// CommonNames lists the known common names, longest first
func (h *Handler) CommonNames(c *gin.Context) {
	names := h.service.CommonNames()
	c.JSON(http.StatusOK, gin.H{
		"count":        len(names),
		"common_names": names,
	})
}
