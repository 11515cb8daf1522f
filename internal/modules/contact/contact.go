package contact

import (
	"errors"

	"github.com/gigspace/core/internal/domain"
	"github.com/gigspace/core/internal/middleware"
	"github.com/gigspace/core/internal/models"
	"github.com/gigspace/core/internal/pkg/pagination"
	"github.com/gigspace/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type ContactDTO struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type Handler struct {
	d *domain.Store
}

func NewHandler(d *domain.Store) *Handler { return &Handler{d: d} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/messages")
	g.POST("", h.create)

	a := g.Group("", authMW)
	a.GET("", h.list)
	a.PATCH("/:id/read", h.markRead)
}

// POST /messages
func (h *Handler) create(c *gin.Context) {
	var dto ContactDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	msg, result, err := h.d.AddMessage(c.Request.Context(), domain.ContactInput{
		Name:    dto.Name,
		Email:   dto.Email,
		Subject: dto.Subject,
		Message: dto.Message,
	})
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, gin.H{"message": msg, "persisted": result.Persisted})
}

// GET /messages
func (h *Handler) list(c *gin.Context) {
	msgs, err := h.d.Messages(c.Request.Context(), middleware.CurrentIdentity(c))
	if err != nil {
		response.Forbidden(c)
		return
	}
	if msgs == nil {
		msgs = []models.Message{}
	}
	if pagination.Requested(c) {
		page, meta := pagination.Slice(msgs, pagination.FromContext(c))
		response.OK(c, gin.H{"data": page, "pagination": meta})
		return
	}
	response.OK(c, msgs)
}

// PATCH /messages/:id/read
func (h *Handler) markRead(c *gin.Context) {
	result, err := h.d.MarkMessageRead(c.Request.Context(), middleware.CurrentIdentity(c), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			response.Forbidden(c)
		case errors.Is(err, domain.ErrNotFound):
			response.NotFound(c)
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.OK(c, gin.H{"persisted": result.Persisted})
}
