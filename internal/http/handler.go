package http

import (
	"bytes"
	"fmt"
	"image/png"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"go.ngs.io/harmonics/internal/content"
	"go.ngs.io/harmonics/internal/usecase"
)

// Handler handles HTTP requests for harmonic fields and site pages.
type Handler struct {
	harmonicUC *usecase.HarmonicUseCase
	posts      *content.Store
}

// NewHandler creates a new HTTP handler.
func NewHandler(harmonicUC *usecase.HarmonicUseCase, posts *content.Store) *Handler {
	return &Handler{
		harmonicUC: harmonicUC,
		posts:      posts,
	}
}

// GetField handles GET /v1/harmonics/field.
func (h *Handler) GetField(c *gin.Context) {
	degree, order, ok := parseMode(c)
	if !ok {
		return
	}

	// Parse resolution (default applied by the use case).
	resolution := 0
	if resStr := c.Query("resolution"); resStr != "" {
		parsed, err := strconv.Atoi(resStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid resolution: %v", err)})
			return
		}
		resolution = parsed
	}

	response, err := h.harmonicUC.Field(usecase.FieldRequest{
		Degree:     degree,
		Order:      order,
		Resolution: resolution,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetPlot handles GET /v1/harmonics/plot, returning a PNG map of the field.
func (h *Handler) GetPlot(c *gin.Context) {
	degree, order, ok := parseMode(c)
	if !ok {
		return
	}

	width, err := intQuery(c, "width", 720)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	height, err := intQuery(c, "height", 360)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	img, err := h.harmonicUC.Plot(usecase.PlotRequest{
		Degree: degree,
		Order:  order,
		Width:  width,
		Height: height,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to encode plot: %v", err)})
		return
	}

	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// GetModes handles GET /v1/harmonics/modes.
func (h *Handler) GetModes(c *gin.Context) {
	maxDegree, err := intQuery(c, "max_degree", 4)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if maxDegree < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "max_degree must be non-negative"})
		return
	}

	modes := h.harmonicUC.Modes(maxDegree)

	c.JSON(http.StatusOK, gin.H{
		"modes": modes,
		"count": len(modes),
	})
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// Index handles GET /, the post listing page.
func (h *Handler) Index(c *gin.Context) {
	posts, err := h.posts.List()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"error": err.Error()})
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Posts": posts,
	})
}

// ShowPost handles GET /posts/:slug.
func (h *Handler) ShowPost(c *gin.Context) {
	post, err := h.posts.Get(c.Param("slug"))
	if err != nil {
		c.HTML(http.StatusNotFound, "error.html", gin.H{"error": "post not found"})
		return
	}

	c.HTML(http.StatusOK, "post.html", gin.H{
		"Post": post,
	})
}

// parseMode extracts the required l and m query parameters. On failure it
// writes the error response and returns ok=false.
func parseMode(c *gin.Context) (degree, order int, ok bool) {
	lStr := c.Query("l")
	if lStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "l parameter is required"})
		return 0, 0, false
	}
	mStr := c.Query("m")
	if mStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "m parameter is required"})
		return 0, 0, false
	}

	degree, err := strconv.Atoi(lStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid degree: %v", err)})
		return 0, 0, false
	}
	order, err = strconv.Atoi(mStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid order: %v", err)})
		return 0, 0, false
	}

	return degree, order, true
}

// intQuery parses an optional integer query parameter with a default.
func intQuery(c *gin.Context, name string, defaultValue int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", name, err)
	}
	return value, nil
}
