package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/petscout/backend/config"
	"github.com/petscout/backend/internal/domain"
	"github.com/petscout/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	adoptions *usecase.AdoptionService
	snapshot  config.Snapshot
}

// NewHandler creates a new HTTP handler
func NewHandler(adoptions *usecase.AdoptionService, snapshot config.Snapshot) *Handler {
	return &Handler{
		adoptions: adoptions,
		snapshot:  snapshot,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "petscout-backend",
		"version": "1.0.0",
	})
}

// ListAnimals handles GET /api/v1/animals
func (h *Handler) ListAnimals(c *gin.Context) {
	var filter domain.SearchFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter parameters"})
		return
	}

	animals, err := h.adoptions.ListAnimals(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"animals": animals})
}

// GetAnimal handles GET /api/v1/animals/:id
func (h *Handler) GetAnimal(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "animal id must be numeric"})
		return
	}

	animal, err := h.adoptions.GetAnimal(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if animal == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "animal not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"animal": animal})
}

// SearchNearby handles GET /api/v1/animals/nearby
func (h *Handler) SearchNearby(c *gin.Context) {
	location := c.Query("location")
	if location == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "location is required"})
		return
	}

	var filter domain.SearchFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter parameters"})
		return
	}

	animals, err := h.adoptions.SearchNearby(c.Request.Context(), location, filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"animals": animals})
}

// ListOrganizations handles GET /api/v1/organizations
func (h *Handler) ListOrganizations(c *gin.Context) {
	orgs, err := h.adoptions.ListOrganizations(c.Request.Context(), c.Query("location"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"organizations": orgs})
}

// DevStatus handles GET /api/v1/dev/status
func (h *Handler) DevStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"forceMock":      h.adoptions.ForceMockMode(),
		"hasCredentials": h.adoptions.HasCredentials(),
		"config":         h.snapshot,
	})
}

// mockModeRequest is the body for POST /api/v1/dev/mock
type mockModeRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// SetMockMode handles POST /api/v1/dev/mock
func (h *Handler) SetMockMode(c *gin.Context) {
	var req mockModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "body must include enabled (boolean)"})
		return
	}

	h.adoptions.SetForceMockMode(*req.Enabled)
	c.JSON(http.StatusOK, gin.H{"forceMock": h.adoptions.ForceMockMode()})
}

// ClearCache handles POST /api/v1/dev/cache/clear
func (h *Handler) ClearCache(c *gin.Context) {
	h.adoptions.ClearCache()
	c.JSON(http.StatusOK, gin.H{"cleared": true})
}

// respondError maps client errors to HTTP statuses. Provider and auth
// failures all surface as 502 with the stable user-facing message; wire
// detail stays in the logs.
func respondError(c *gin.Context, err error) {
	var authErr *domain.AuthError
	var apiErr *domain.APIError
	var netErr *domain.NetworkError

	switch {
	case errors.As(err, &authErr), errors.As(err, &apiErr), errors.As(err, &netErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": domain.UserMessage(err)})
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
