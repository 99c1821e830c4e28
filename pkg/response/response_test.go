package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/faculty-portal/internal/models"
	appErrors "github.com/noah-isme/faculty-portal/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestJSONIncludesPagination(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	JSON(c, http.StatusOK, []string{"a"}, &models.Pagination{Page: 2, PageSize: 5, PageCount: 3, TotalCount: 12})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	pagination := body["pagination"].(map[string]any)
	assert.Equal(t, float64(3), pagination["page_count"])
}

func TestErrorUsesStatusAndCode(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	Error(c, appErrors.Clone(appErrors.ErrConfirmationRequired, "Are you sure?"))

	assert.Equal(t, http.StatusPreconditionFailed, rec.Code)
	assert.JSONEq(t, `{"error":{"code":"CONFIRMATION_REQUIRED","message":"Are you sure?","status":412}}`, rec.Body.String())
	assert.True(t, c.IsAborted())
}

func TestAttachmentSetsDisposition(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	Attachment(c, "departments.csv", "text/csv", []byte("ID\n"))

	assert.Equal(t, `attachment; filename="departments.csv"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "ID\n", rec.Body.String())
}
