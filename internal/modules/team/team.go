package team

import (
	"errors"

	"github.com/gigspace/core/internal/access"
	"github.com/gigspace/core/internal/domain"
	"github.com/gigspace/core/internal/middleware"
	"github.com/gigspace/core/internal/models"
	"github.com/gigspace/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type AdminDTO struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	AccessCode string `json:"access_code" binding:"required"`
	Role       string `json:"role" binding:"required"`
}

// adminResponse hides access codes from roster listings.
type adminResponse struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  access.Role `json:"role"`
}

func toResponse(a models.AdminUser) adminResponse {
	return adminResponse{ID: a.ID, Name: a.Name, Email: a.Email, Role: a.Role}
}

type Handler struct {
	d *domain.Store
}

func NewHandler(d *domain.Store) *Handler { return &Handler{d: d} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/admins", authMW)
	g.GET("", h.list)
	g.POST("", h.create)
	g.DELETE("/:id", h.delete)
}

// GET /admins
func (h *Handler) list(c *gin.Context) {
	admins, err := h.d.Admins(c.Request.Context(), middleware.CurrentIdentity(c))
	if err != nil {
		response.Forbidden(c)
		return
	}
	out := make([]adminResponse, len(admins))
	for i, a := range admins {
		out[i] = toResponse(a)
	}
	response.OK(c, out)
}

// POST /admins
func (h *Handler) create(c *gin.Context) {
	var dto AdminDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	role, err := access.ParseRole(dto.Role)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	admin, result, err := h.d.AddAdmin(c.Request.Context(), middleware.CurrentIdentity(c), models.AdminUser{
		Name:       dto.Name,
		Email:      dto.Email,
		AccessCode: dto.AccessCode,
		Role:       role,
	})
	if err != nil {
		response.Forbidden(c)
		return
	}
	response.Created(c, gin.H{"admin": toResponse(admin), "persisted": result.Persisted})
}

// DELETE /admins/:id
func (h *Handler) delete(c *gin.Context) {
	result, err := h.d.DeleteAdmin(c.Request.Context(), middleware.CurrentIdentity(c), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			response.Forbidden(c)
		case errors.Is(err, domain.ErrNotFound):
			response.NotFound(c)
		case errors.Is(err, domain.ErrSelfDelete), errors.Is(err, domain.ErrLastAdmin):
			response.Conflict(c, err.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.OK(c, gin.H{"persisted": result.Persisted})
}
