package settings

import (
	"errors"

	"github.com/gigspace/core/internal/domain"
	"github.com/gigspace/core/internal/middleware"
	"github.com/gigspace/core/internal/models"
	"github.com/gigspace/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

// Handler exposes the editable site copy and automation toggles.
type Handler struct {
	d *domain.Store
}

func NewHandler(d *domain.Store) *Handler { return &Handler{d: d} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/settings", authMW)
	g.GET("/content", h.getContent)
	g.PUT("/content", h.putContent)
	g.GET("/automations", h.getAutomations)
	g.PUT("/automations", h.putAutomations)
}

// GET /settings/content
func (h *Handler) getContent(c *gin.Context) {
	response.OK(c, h.d.Content())
}

// PUT /settings/content
func (h *Handler) putContent(c *gin.Context) {
	var content models.SiteContent
	if err := c.ShouldBindJSON(&content); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	result, err := h.d.UpdateContent(c.Request.Context(), middleware.CurrentIdentity(c), content)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, gin.H{"content": content, "persisted": result.Persisted})
}

// GET /settings/automations
func (h *Handler) getAutomations(c *gin.Context) {
	response.OK(c, h.d.Automations())
}

// PUT /settings/automations
func (h *Handler) putAutomations(c *gin.Context) {
	var automations models.AutomationSettings
	if err := c.ShouldBindJSON(&automations); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	result, err := h.d.UpdateAutomations(c.Request.Context(), middleware.CurrentIdentity(c), automations)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, gin.H{"automations": automations, "persisted": result.Persisted})
}

func writeError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrForbidden) {
		response.Forbidden(c)
		return
	}
	response.InternalError(c, err)
}
