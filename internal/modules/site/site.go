package site

import (
	"github.com/gigspace/core/internal/domain"
	"github.com/gigspace/core/internal/models"
	"github.com/gigspace/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

// Handler serves the public read model: site copy plus published work.
type Handler struct {
	d *domain.Store
}

func NewHandler(d *domain.Store) *Handler { return &Handler{d: d} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, _ gin.HandlerFunc) {
	g := rg.Group("/site")
	g.GET("/content", h.content)
	g.GET("/home", h.home)
	g.GET("/status", h.status)
}

// GET /site/content
func (h *Handler) content(c *gin.Context) {
	response.OK(c, h.d.Content())
}

// GET /site/home
func (h *Handler) home(c *gin.Context) {
	content := h.d.Content()
	projects := h.d.PublishedProjects()
	if projects == nil {
		projects = []models.Project{}
	}
	response.OK(c, gin.H{
		"owner":    content.Owner,
		"home":     content.Home,
		"projects": projects,
	})
}

// GET /site/status
func (h *Handler) status(c *gin.Context) {
	response.OK(c, gin.H{
		"maintenance":          h.d.MaintenanceActive(),
		"applications_enabled": h.d.ApplicationsOpen(),
	})
}
