package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nutritrack/backend/internal/domain"
	"github.com/nutritrack/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	beverageService *usecase.BeverageService
}

// NewHandler creates a new HTTP handler
func NewHandler(beverageService *usecase.BeverageService) *Handler {
	return &Handler{
		beverageService: beverageService,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	status := gin.H{
		"status":  "healthy",
		"service": "nutritrack-backend",
		"version": "1.0.0",
	}

	if h.beverageService != nil {
		status["catalogs"] = gin.H{
			string(domain.CatalogAlcohol):  h.beverageService.CatalogSize(domain.CatalogAlcohol),
			string(domain.CatalogCaffeine): h.beverageService.CatalogSize(domain.CatalogCaffeine),
		}
		status["cacheSize"] = h.beverageService.CacheSize()
	}

	c.JSON(http.StatusOK, status)
}

// classifyRequest is the body of a product classification request
type classifyRequest struct {
	ProductName string `json:"productName" binding:"required"`
}

// ClassifyProduct decides whether a scanned product name is an alcoholic or
// caffeinated beverage. "No match" is a valid 200 response with kind "none".
func (h *Handler) ClassifyProduct(c *gin.Context) {
	var req classifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "productName is required",
		})
		return
	}

	mapping := h.beverageService.MapFoodProduct(req.ProductName)
	c.JSON(http.StatusOK, mapping)
}

// ReplaceCatalog atomically swaps the catalog of the given kind with the
// posted entries and drops its cached match results
func (h *Handler) ReplaceCatalog(c *gin.Context) {
	kind := domain.CatalogKind(c.Param("kind"))

	var entries []domain.CatalogEntry
	if err := c.ShouldBindJSON(&entries); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "request body must be a JSON array of catalog entries",
		})
		return
	}

	if err := h.beverageService.UpdateCatalog(kind, entries); err != nil {
		if errors.Is(err, domain.ErrUnknownCatalog) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "unknown catalog kind: " + string(kind),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"kind":    kind,
		"entries": len(entries),
	})
}
