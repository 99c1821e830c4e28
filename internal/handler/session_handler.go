package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/faculty-portal/internal/dto"
	"github.com/noah-isme/faculty-portal/internal/service"
	appErrors "github.com/noah-isme/faculty-portal/pkg/errors"
	"github.com/noah-isme/faculty-portal/pkg/logger"
	"github.com/noah-isme/faculty-portal/pkg/response"
)

// SessionHandler opens and closes portal workspaces.
type SessionHandler struct {
	sessions *service.SessionService
}

// NewSessionHandler constructs a SessionHandler.
func NewSessionHandler(sessions *service.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Create godoc
// @Summary Open a workspace
// @Description Creates a session and loads departments and teachers. Load failures are reported in each list's error field.
// @Tags Sessions
// @Produce json
// @Success 201 {object} response.Envelope
// @Router /sessions [post]
func (h *SessionHandler) Create(c *gin.Context) {
	ws, err := h.sessions.Create(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header(logger.SessionHeader, ws.ID)
	response.Created(c, dto.SessionView{
		SessionID:   ws.ID,
		Departments: ws.Departments.State(),
		Teachers:    ws.Teachers.State(),
	})
}

// Close godoc
// @Summary Close the current workspace
// @Tags Sessions
// @Param X-Session-ID header string true "Session ID"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /sessions/current [delete]
func (h *SessionHandler) Close(c *gin.Context) {
	id := c.GetHeader(logger.SessionHeader)
	if id == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrSessionNotFound, "missing X-Session-ID header"))
		return
	}
	if err := h.sessions.Close(id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Ready reports whether the portal accepts sessions.
func (h *SessionHandler) Ready(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready", "sessions": h.sessions.Count()})
}
