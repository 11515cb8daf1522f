package project

import (
	"errors"
	"time"

	"github.com/gigspace/core/internal/domain"
	"github.com/gigspace/core/internal/middleware"
	"github.com/gigspace/core/internal/models"
	"github.com/gigspace/core/internal/pkg/markdown"
	pkgredis "github.com/gigspace/core/internal/pkg/redis"
	"github.com/gigspace/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// viewDedupTTL bounds the per-IP view dedup key.
const viewDedupTTL = 24 * time.Hour

type ProjectDTO struct {
	ID              string            `json:"id"`
	Title           string            `json:"title" binding:"required"`
	Description     string            `json:"description"`
	LongDescription string            `json:"long_description"`
	Client          string            `json:"client"`
	Role            string            `json:"role"`
	ImageURL        string            `json:"image_url"`
	Tags            []string          `json:"tags"`
	Links           []models.LinkItem `json:"links"`
	Link            string            `json:"link"`
	Date            string            `json:"date"`
	Status          string            `json:"status"`
	Views           int               `json:"views"`
}

func (dto *ProjectDTO) toModel() models.Project {
	return models.Project{
		ID:              dto.ID,
		Title:           dto.Title,
		Description:     dto.Description,
		LongDescription: dto.LongDescription,
		Client:          dto.Client,
		Role:            dto.Role,
		ImageURL:        dto.ImageURL,
		Tags:            dto.Tags,
		Links:           dto.Links,
		Link:            dto.Link,
		Date:            dto.Date,
		Status:          models.ProjectStatus(dto.Status),
		Views:           dto.Views,
	}
}

// detailResponse is the public detail payload; the long description is
// rendered to HTML server-side.
type detailResponse struct {
	models.Project
	LongDescriptionHTML string `json:"long_description_html,omitempty"`
}

type Handler struct {
	d   *domain.Store
	rc  *pkgredis.Client
	log *zap.Logger
}

func NewHandler(d *domain.Store, rc *pkgredis.Client, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{d: d, rc: rc, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/projects")
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.POST("/:id/view", h.view)

	a := g.Group("", authMW)
	a.GET("/all", h.listAll)
	a.POST("", h.create)
	a.PUT("/:id", h.update)
	a.DELETE("/:id", h.delete)
}

// GET /projects
func (h *Handler) list(c *gin.Context) {
	projects := h.d.PublishedProjects()
	if projects == nil {
		projects = []models.Project{}
	}
	response.OK(c, projects)
}

// GET /projects/all
func (h *Handler) listAll(c *gin.Context) {
	projects, err := h.d.AllProjects(middleware.CurrentIdentity(c))
	if err != nil {
		response.Forbidden(c)
		return
	}
	response.OK(c, projects)
}

// GET /projects/:id
func (h *Handler) get(c *gin.Context) {
	p, err := h.d.ProjectByID(c.Param("id"), middleware.CurrentIdentity(c))
	if err != nil {
		response.NotFound(c)
		return
	}
	out := detailResponse{Project: p}
	if p.LongDescription != "" {
		out.LongDescriptionHTML = markdown.Render(p.LongDescription)
	}
	response.OK(c, out)
}

// POST /projects/:id/view
func (h *Handler) view(c *gin.Context) {
	id := c.Param("id")
	if !h.shouldCountView(c, id) {
		response.OK(c, gin.H{"counted": false})
		return
	}
	views, result, err := h.d.IncrementProjectViews(c.Request.Context(), id)
	if err != nil {
		response.NotFound(c)
		return
	}
	response.OK(c, gin.H{"counted": true, "views": views, "persisted": result.Persisted})
}

// shouldCountView dedups per IP per project per day when redis is
// around; without redis every hit counts.
func (h *Handler) shouldCountView(c *gin.Context, id string) bool {
	if h.rc == nil {
		return true
	}
	key := "gigspace:view:" + id + ":" + c.ClientIP()
	ok, err := h.rc.SetNX(c.Request.Context(), key, 1, viewDedupTTL)
	if err != nil {
		h.log.Warn("view dedup check failed", zap.Error(err))
		return true
	}
	return ok
}

// POST /projects
func (h *Handler) create(c *gin.Context) {
	var dto ProjectDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	p, result, err := h.d.AddProject(c.Request.Context(), middleware.CurrentIdentity(c), dto.toModel())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	response.Created(c, gin.H{"project": p, "persisted": result.Persisted})
}

// PUT /projects/:id
func (h *Handler) update(c *gin.Context) {
	var dto ProjectDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	p := dto.toModel()
	p.ID = c.Param("id")
	result, err := h.d.UpdateProject(c.Request.Context(), middleware.CurrentIdentity(c), p)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	response.OK(c, gin.H{"project": p, "persisted": result.Persisted})
}

// DELETE /projects/:id
func (h *Handler) delete(c *gin.Context) {
	result, err := h.d.DeleteProject(c.Request.Context(), middleware.CurrentIdentity(c), c.Param("id"))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	response.OK(c, gin.H{"persisted": result.Persisted})
}

func writeDomainError(c *gin.Context, err error) {
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
}
