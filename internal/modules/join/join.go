package join

import (
	"errors"

	"github.com/gigspace/core/internal/domain"
	"github.com/gigspace/core/internal/middleware"
	"github.com/gigspace/core/internal/models"
	"github.com/gigspace/core/internal/pkg/pagination"
	"github.com/gigspace/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type ApplicationDTO struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Role       string `json:"role" binding:"required"`
	Portfolio  string `json:"portfolio"`
	Motivation string `json:"motivation"`
}

type StatusDTO struct {
	Status string `json:"status" binding:"required"`
}

type Handler struct {
	d *domain.Store
}

func NewHandler(d *domain.Store) *Handler { return &Handler{d: d} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("/join/status", h.status)

	g := rg.Group("/applications")
	g.POST("", h.create)

	a := g.Group("", authMW)
	a.GET("", h.list)
	a.PATCH("/:id/status", h.updateStatus)
}

// GET /join/status
func (h *Handler) status(c *gin.Context) {
	response.OK(c, gin.H{"open": h.d.ApplicationsOpen()})
}

// POST /applications
func (h *Handler) create(c *gin.Context) {
	var dto ApplicationDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	app, result, err := h.d.AddApplication(c.Request.Context(), domain.JoinInput{
		Name:       dto.Name,
		Email:      dto.Email,
		Role:       dto.Role,
		Portfolio:  dto.Portfolio,
		Motivation: dto.Motivation,
	})
	if err != nil {
		if errors.Is(err, domain.ErrApplicationsClosed) {
			response.ForbiddenMsg(c, "applications are currently closed")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, gin.H{"application": app, "persisted": result.Persisted})
}

// GET /applications
func (h *Handler) list(c *gin.Context) {
	apps, err := h.d.Applications(c.Request.Context(), middleware.CurrentIdentity(c))
	if err != nil {
		response.Forbidden(c)
		return
	}
	if apps == nil {
		apps = []models.JobApplication{}
	}
	if pagination.Requested(c) {
		page, meta := pagination.Slice(apps, pagination.FromContext(c))
		response.OK(c, gin.H{"data": page, "pagination": meta})
		return
	}
	response.OK(c, apps)
}

// PATCH /applications/:id/status
func (h *Handler) updateStatus(c *gin.Context) {
	var dto StatusDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	result, err := h.d.UpdateApplicationStatus(
		c.Request.Context(),
		middleware.CurrentIdentity(c),
		c.Param("id"),
		models.ApplicationStatus(dto.Status),
	)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			response.Forbidden(c)
		case errors.Is(err, domain.ErrNotFound):
			response.NotFound(c)
		case errors.Is(err, domain.ErrInvalidTransition):
			response.UnprocessableEntity(c, err.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.OK(c, gin.H{"persisted": result.Persisted})
}
