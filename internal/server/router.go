package server

import (
	"net/http"

	"employee-management/internal/config"
	"employee-management/internal/handlers"
	"employee-management/internal/middleware"
	"employee-management/internal/models"
	"employee-management/internal/repository"
	"employee-management/internal/service"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

const sessionName = "ems_session"

// Deps are the collaborators the HTTP API is built from.
type Deps struct {
	Projects service.ProjectService
	Users    *repository.UserRepository
	Audit    *repository.AuditRepository
}

func NewRouter(cfg *config.Config, deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.ZLog(), gin.Recovery())

	store := cookie.NewStore([]byte(cfg.Server.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   12 * 60 * 60,
		HttpOnly: true,
		Secure:   cfg.App.Environment == "production",
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(sessionName, store))
	r.Use(middleware.InjectUser(deps.Users))

	h := handlers.New(deps.Projects, deps.Users, deps.Audit)

	r.GET("/", h.Index)
	r.GET("/health", handlers.Health)

	// auth
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())

	editors := middleware.RequireRole(models.RoleAdmin, models.RoleManager)
	admins := middleware.RequireRole(models.RoleAdmin)

	// projects
	auth.GET("/projects", h.ListProjects)
	auth.GET("/projects/:id", h.GetProject)
	auth.GET("/projects/:id/history", h.ProjectHistory)
	auth.POST("/projects", editors, h.CreateProject)
	auth.PUT("/projects/:id", editors, h.UpdateProject)
	auth.PATCH("/projects/:id/status", editors, h.ChangeProjectStatus)
	auth.DELETE("/projects/:id", editors, h.DeleteProject)
	auth.DELETE("/projects", admins, h.DeleteAllProjects)

	auth.GET("/employees", h.ListEmployees)

	// admin
	auth.POST("/users", admins, h.CreateUser)
	auth.GET("/audit", admins, h.ListAuditLogs)

	return r
}
