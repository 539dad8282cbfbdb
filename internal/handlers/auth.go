package handlers

import (
	"net/http"
	"strings"

	"employee-management/internal/middleware"
	"employee-management/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

const (
	sessionUserID = middleware.SessionUserID
	sessionRole   = middleware.SessionRole
)

type loginForm struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

func (h *Handler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		badRequest(c, "malformed login request")
		return
	}

	user, err := h.users.FindByUsername(c.Request.Context(), strings.TrimSpace(form.Username))
	if err != nil {
		respondError(c, err)
		return
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
		return
	}

	sess := sessions.Default(c)
	sess.Set(sessionUserID, user.ID)
	sess.Set(sessionRole, string(user.Role))
	if err := sess.Save(); err != nil {
		log.Error().Err(err).Msg("failed to save session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	log.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("user logged in")
	c.JSON(http.StatusOK, gin.H{"username": user.Username, "role": user.Role})
}

func (h *Handler) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.Status(http.StatusNoContent)
}

type userForm struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
	Role     string `form:"role" json:"role"`
}

// CreateUser adds a manager or viewer account. Admins are only created from
// configuration at start up.
func (h *Handler) CreateUser(c *gin.Context) {
	var form userForm
	if err := c.ShouldBind(&form); err != nil {
		badRequest(c, "malformed user request")
		return
	}

	form.Username = strings.TrimSpace(form.Username)
	if len(form.Username) < 3 || len(form.Password) < 6 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "username needs at least 3 characters and password at least 6",
		})
		return
	}

	role := models.UserRole(strings.ToLower(form.Role))
	switch role {
	case models.RoleManager, models.RoleViewer:
	default:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "role must be manager or viewer"})
		return
	}

	ctx := c.Request.Context()
	existing, err := h.users.FindByUsername(ctx, form.Username)
	if err != nil {
		respondError(c, err)
		return
	}
	if existing != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "user already exists"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	user := models.User{Username: form.Username, PasswordHash: string(hash), Role: role}
	if err := h.users.Insert(ctx, &user); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": user.ID, "username": user.Username, "role": user.Role})
}
