package enhance

import (
	"github.com/gigspace/core/internal/pkg/ai"
	"github.com/gigspace/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type EnhanceDTO struct {
	Description string `json:"description" binding:"required"`
}

type TagsDTO struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// Handler exposes the AI copy helpers to the dashboard.
type Handler struct {
	enhancer *ai.Enhancer
}

func NewHandler(enhancer *ai.Enhancer) *Handler { return &Handler{enhancer: enhancer} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/ai", authMW)
	g.POST("/enhance", h.enhance)
	g.POST("/tags", h.tags)
}

// POST /ai/enhance
func (h *Handler) enhance(c *gin.Context) {
	var dto EnhanceDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	out := h.enhancer.EnhanceDescription(c.Request.Context(), dto.Description)
	response.OK(c, gin.H{"description": out, "enhanced": out != dto.Description})
}

// POST /ai/tags
func (h *Handler) tags(c *gin.Context) {
	var dto TagsDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	tags := h.enhancer.SuggestTags(c.Request.Context(), dto.Title, dto.Description)
	if tags == nil {
		tags = []string{}
	}
	response.OK(c, gin.H{"tags": tags})
}
