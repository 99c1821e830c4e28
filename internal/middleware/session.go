package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/faculty-portal/internal/service"
	appErrors "github.com/noah-isme/faculty-portal/pkg/errors"
	"github.com/noah-isme/faculty-portal/pkg/logger"
	"github.com/noah-isme/faculty-portal/pkg/response"
)

// ContextWorkspaceKey stores the resolved *service.Workspace in the gin context.
const ContextWorkspaceKey = "workspace"

type workspaceLookup interface {
	Get(id string) (*service.Workspace, error)
}

// Session resolves the X-Session-ID header to an open workspace.
func Session(sessions workspaceLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(logger.SessionHeader))
		if id == "" {
			response.Error(c, appErrors.Clone(appErrors.ErrSessionNotFound, "missing X-Session-ID header"))
			return
		}
		ws, err := sessions.Get(id)
		if err != nil {
			response.Error(c, err)
			return
		}
		c.Header(logger.SessionHeader, id)
		c.Set(ContextWorkspaceKey, ws)
		c.Next()
	}
}
