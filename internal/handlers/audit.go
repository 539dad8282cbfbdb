package handlers

import (
	"net/http"
	"strconv"

	"employee-management/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	defaultAuditLimit = 200
	maxAuditLimit     = 1000
)

func (h *Handler) ListAuditLogs(c *gin.Context) {
	limit := defaultAuditLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			badRequest(c, "limit must be a positive integer")
			return
		}
		limit = min(n, maxAuditLimit)
	}

	logs, err := h.audit.List(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

// recordAudit journals a project change made by the logged in user. A failed
// write is logged but does not fail the request, the change already happened.
func (h *Handler) recordAudit(c *gin.Context, projectID int, action, details string) {
	uid, ok := sessions.Default(c).Get(sessionUserID).(uint)
	if !ok || uid == 0 {
		return
	}
	entry := models.AuditLog{
		UserID:   uid,
		Entity:   auditEntityProject,
		EntityID: projectID,
		Action:   action,
		Details:  details,
	}
	if err := h.audit.Insert(c.Request.Context(), &entry); err != nil {
		log.Warn().Err(err).Str("action", action).Int("project_id", projectID).Msg("failed to write audit log")
	}
}
