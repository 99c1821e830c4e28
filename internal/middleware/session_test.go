package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/faculty-portal/internal/service"
	appErrors "github.com/noah-isme/faculty-portal/pkg/errors"
)

type lookupStub struct {
	workspaces map[string]*service.Workspace
}

func (l lookupStub) Get(id string) (*service.Workspace, error) {
	if ws, ok := l.workspaces[id]; ok {
		return ws, nil
	}
	return nil, appErrors.ErrSessionNotFound
}

type observerStub struct {
	path   string
	status int
}

func (o *observerStub) ObserveHTTPRequest(method, path string, status int, _ time.Duration) {
	o.path = path
	o.status = status
}

func newSessionRouter(lookup lookupStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/departments", Session(lookup), func(c *gin.Context) {
		_, ok := c.Get(ContextWorkspaceKey)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusOK)
	})
	return r
}

func TestSessionResolvesWorkspace(t *testing.T) {
	ws := &service.Workspace{ID: "abc"}
	r := newSessionRouter(lookupStub{workspaces: map[string]*service.Workspace{"abc": ws}})

	req := httptest.NewRequest(http.MethodGet, "/departments", nil)
	req.Header.Set("X-Session-ID", "abc")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc", rec.Header().Get("X-Session-ID"))
}

func TestSessionRejectsMissingAndUnknown(t *testing.T) {
	r := newSessionRouter(lookupStub{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/departments", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "SESSION_NOT_FOUND")

	req := httptest.NewRequest(http.MethodGet, "/departments", nil)
	req.Header.Set("X-Session-ID", "nope")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetricsObservesRoutePattern(t *testing.T) {
	gin.SetMode(gin.TestMode)
	obs := &observerStub{}
	r := gin.New()
	r.Use(Metrics(obs))
	r.GET("/departments/:id", func(c *gin.Context) { c.Status(http.StatusAccepted) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/departments/7", nil))
	require.Equal(t, "/departments/:id", obs.path)
	assert.Equal(t, http.StatusAccepted, obs.status)
}
