package handlers

import (
	"net/http"

	"employee-management/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Index tells the caller who they are logged in as, if anyone.
func (h *Handler) Index(c *gin.Context) {
	body := gin.H{"service": "employee-management", "authenticated": false}
	if user, ok := middleware.CurrentUser(c); ok {
		body["authenticated"] = true
		body["username"] = user.Username
		body["role"] = user.Role
	}
	c.JSON(http.StatusOK, body)
}

func Health(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}
