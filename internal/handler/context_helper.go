package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/faculty-portal/internal/dto"
	"github.com/noah-isme/faculty-portal/internal/middleware"
	"github.com/noah-isme/faculty-portal/internal/models"
	"github.com/noah-isme/faculty-portal/internal/service"
	appErrors "github.com/noah-isme/faculty-portal/pkg/errors"
)

func workspaceFromContext(c *gin.Context) (*service.Workspace, error) {
	value, exists := c.Get(middleware.ContextWorkspaceKey)
	if !exists {
		return nil, appErrors.ErrSessionNotFound
	}
	ws, ok := value.(*service.Workspace)
	if !ok || ws == nil {
		return nil, appErrors.ErrSessionNotFound
	}
	return ws, nil
}

func idParam(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, appErrors.Clone(appErrors.ErrValidation, "id must be a positive integer")
	}
	return id, nil
}

func confirmed(c *gin.Context) bool {
	ok, err := strconv.ParseBool(c.DefaultQuery("confirm", "false"))
	return err == nil && ok
}

func paginationOf(meta dto.ListMeta) *models.Pagination {
	return &models.Pagination{
		Page:       meta.Page,
		PageSize:   meta.PageSize,
		PageCount:  meta.PageCount,
		TotalCount: meta.Total,
	}
}
