package app

import (
	"github.com/gigspace/core/internal/middleware"
	"github.com/gigspace/core/internal/modules/auth"
	"github.com/gigspace/core/internal/modules/contact"
	"github.com/gigspace/core/internal/modules/enhance"
	"github.com/gigspace/core/internal/modules/join"
	"github.com/gigspace/core/internal/modules/project"
	"github.com/gigspace/core/internal/modules/settings"
	"github.com/gigspace/core/internal/modules/site"
	"github.com/gigspace/core/internal/modules/team"
	"github.com/gigspace/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

const apiPrefix = "/api/v1"

func (a *App) registerRoutes() {
	r := a.router
	authMW := middleware.Auth()

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	appInfo := gin.H{
		"name":     "gigspace-core",
		"version":  "1.0.0",
		"homepage": "https://gigspace.com",
	}
	r.GET("/", func(c *gin.Context) {
		response.OK(c, appInfo)
	})

	api := r.Group(apiPrefix)
	api.Use(middleware.OptionalAuth())
	if a.rc != nil {
		api.Use(middleware.RateLimit(a.rc.Raw()))
	}

	// Login and session checks stay reachable during maintenance so an
	// operator can turn the mode back off.
	auth.NewHandler(a.domain).RegisterRoutes(api, authMW)
	enhance.NewHandler(a.enhancer).RegisterRoutes(api, authMW)
	settings.NewHandler(a.domain).RegisterRoutes(api, authMW)
	team.NewHandler(a.domain).RegisterRoutes(api, authMW)

	public := api.Group("", middleware.Maintenance(a.domain))
	site.NewHandler(a.domain).RegisterRoutes(public, authMW)
	project.NewHandler(a.domain, a.rc, a.logger).RegisterRoutes(public, authMW)
	contact.NewHandler(a.domain).RegisterRoutes(public, authMW)
	join.NewHandler(a.domain).RegisterRoutes(public, authMW)
}
