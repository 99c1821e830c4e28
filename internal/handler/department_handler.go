package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/faculty-portal/internal/dto"
	"github.com/noah-isme/faculty-portal/internal/models"
	"github.com/noah-isme/faculty-portal/internal/service"
	appErrors "github.com/noah-isme/faculty-portal/pkg/errors"
	"github.com/noah-isme/faculty-portal/pkg/response"
)

// DepartmentHandler exposes the department view of the caller's workspace.
type DepartmentHandler struct {
	exports *service.ExportService
}

// NewDepartmentHandler constructs a DepartmentHandler.
func NewDepartmentHandler(exports *service.ExportService) *DepartmentHandler {
	return &DepartmentHandler{exports: exports}
}

func (h *DepartmentHandler) view(c *gin.Context) (*service.DepartmentView, bool) {
	ws, err := workspaceFromContext(c)
	if err != nil {
		response.Error(c, err)
		return nil, false
	}
	return ws.Departments, true
}

func (h *DepartmentHandler) respond(c *gin.Context, state dto.DepartmentListView) {
	response.JSON(c, http.StatusOK, state, paginationOf(state.ListMeta))
}

// List godoc
// @Summary Current department page
// @Tags Departments
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} response.Envelope
// @Router /departments [get]
func (h *DepartmentHandler) List(c *gin.Context) {
	view, ok := h.view(c)
	if !ok {
		return
	}
	h.respond(c, view.State())
}

// Reload godoc
// @Summary Refetch departments
// @Tags Departments
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /departments/reload [post]
func (h *DepartmentHandler) Reload(c *gin.Context) {
	view, ok := h.view(c)
	if !ok {
		return
	}
	if err := view.Load(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	h.respond(c, view.State())
}

// Search godoc
// @Summary Set department search term
// @Tags Departments
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param payload body dto.SearchRequest true "Search term"
// @Success 200 {object} response.Envelope
// @Router /departments/search [put]
func (h *DepartmentHandler) Search(c *gin.Context) {
	view, ok := h.view(c)
	if !ok {
		return
	}
	var req dto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid search payload"))
		return
	}
	h.respond(c, view.Search(req.Term))
}

// Page godoc
// @Summary Move to a department page
// @Tags Departments
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param payload body dto.PageRequest true "Page"
// @Success 200 {object} response.Envelope
// @Router /departments/page [put]
func (h *DepartmentHandler) Page(c *gin.Context) {
	view, ok := h.view(c)
	if !ok {
		return
	}
	var req dto.PageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid page payload"))
		return
	}
	h.respond(c, view.SetPage(req.Page))
}

// Form godoc
// @Summary Department form state
// @Tags Departments
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} response.Envelope
// @Router /departments/form [get]
func (h *DepartmentHandler) Form(c *gin.Context) {
	view, ok := h.view(c)
	if !ok {
		return
	}
	response.JSON(c, http.StatusOK, view.Form(), nil)
}

// UpdateDraft godoc
// @Summary Replace the department draft
// @Tags Departments
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param payload body models.DepartmentRequest true "Draft"
// @Success 200 {object} response.Envelope
// @Router /departments/form [patch]
func (h *DepartmentHandler) UpdateDraft(c *gin.Context) {
	view, ok := h.view(c)
	if !ok {
		return
	}
	var req models.DepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid department payload"))
		return
	}
	response.JSON(c, http.StatusOK, view.SetDraft(req), nil)
}

// StartEdit godoc
// @Summary Edit a department
// @Tags Departments
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param id path int true "Department ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /departments/form/edit/{id} [post]
func (h *DepartmentHandler) StartEdit(c *gin.Context) {
	view, ok := h.view(c)
	if !ok {
		return
	}
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	form, err := view.StartEdit(id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, form, nil)
}

// CancelEdit godoc
// @Summary Reset the department form
// @Tags Departments
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} response.Envelope
// @Router /departments/form/cancel [post]
func (h *DepartmentHandler) CancelEdit(c *gin.Context) {
	view, ok := h.view(c)
	if !ok {
		return
	}
	response.JSON(c, http.StatusOK, view.CancelEdit(), nil)
}

// Submit godoc
// @Summary Save the department draft
// @Tags Departments
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /departments/form/submit [post]
func (h *DepartmentHandler) Submit(c *gin.Context) {
	view, ok := h.view(c)
	if !ok {
		return
	}
	saved, err := view.Submit(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	state := view.State()
	response.JSON(c, http.StatusOK, state, paginationOf(state.ListMeta), map[string]interface{}{"saved": saved})
}

// Delete godoc
// @Summary Delete a department
// @Tags Departments
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param id path int true "Department ID"
// @Param confirm query bool false "Confirm the deletion"
// @Success 200 {object} response.Envelope
// @Failure 412 {object} response.Envelope
// @Router /departments/{id} [delete]
func (h *DepartmentHandler) Delete(c *gin.Context) {
	view, ok := h.view(c)
	if !ok {
		return
	}
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := view.Delete(c.Request.Context(), id, confirmed(c)); err != nil {
		response.Error(c, err)
		return
	}
	h.respond(c, view.State())
}

// Toggle godoc
// @Summary Expand or collapse a department
// @Tags Departments
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param id path int true "Department ID"
// @Success 200 {object} response.Envelope
// @Router /departments/{id}/toggle [post]
func (h *DepartmentHandler) Toggle(c *gin.Context) {
	view, ok := h.view(c)
	if !ok {
		return
	}
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	roster, err := view.Toggle(id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, roster, nil)
}

// Roster godoc
// @Summary Teachers of a department
// @Tags Departments
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param id path int true "Department ID"
// @Success 200 {object} response.Envelope
// @Router /departments/{id}/teachers [get]
func (h *DepartmentHandler) Roster(c *gin.Context) {
	view, ok := h.view(c)
	if !ok {
		return
	}
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	roster, err := view.Roster(id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, roster, nil)
}

// Export godoc
// @Summary Export filtered departments
// @Tags Departments
// @Produce text/csv,application/pdf
// @Param X-Session-ID header string true "Session ID"
// @Param format query string false "csv or pdf"
// @Success 200 {file} file
// @Router /departments/export [get]
func (h *DepartmentHandler) Export(c *gin.Context) {
	view, ok := h.view(c)
	if !ok {
		return
	}
	result, err := h.exports.Export(view.Dataset(), c.Query("format"), "departments")
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, result.Filename, result.ContentType, result.Data)
}
