package auth

import (
	"time"

	"github.com/gigspace/core/internal/domain"
	"github.com/gigspace/core/internal/middleware"
	"github.com/gigspace/core/internal/pkg/jwt"
	"github.com/gigspace/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

const tokenTTL = 24 * time.Hour

type LoginDTO struct {
	Email      string `json:"email" binding:"required"`
	AccessCode string `json:"access_code" binding:"required"`
}

type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type Handler struct {
	d *domain.Store
}

func NewHandler(d *domain.Store) *Handler { return &Handler{d: d} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/auth")
	g.POST("/login", h.login)
	g.GET("/check", h.check)

	a := g.Group("", authMW)
	a.POST("/logout", h.logout)
}

// POST /auth/login
func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	admin, err := h.d.Login(c.Request.Context(), dto.Email, dto.AccessCode)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	token, err := jwt.Sign(admin.ID, admin.Email, admin.Name, string(admin.Role), tokenTTL)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{
		"token": token,
		"user": userResponse{
			ID:    admin.ID,
			Name:  admin.Name,
			Email: admin.Email,
			Role:  string(admin.Role),
		},
	})
}

// GET /auth/check
func (h *Handler) check(c *gin.Context) {
	ident := middleware.CurrentIdentity(c)
	if ident.IsZero() {
		response.OK(c, gin.H{"authenticated": false})
		return
	}
	response.OK(c, gin.H{
		"authenticated": true,
		"user": userResponse{
			ID:    ident.ID,
			Name:  ident.Name,
			Email: ident.Email,
			Role:  string(ident.Role),
		},
	})
}

// POST /auth/logout
func (h *Handler) logout(c *gin.Context) {
	h.d.Logout()
	response.NoContent(c)
}
