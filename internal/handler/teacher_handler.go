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

// TeacherHandler exposes the teacher view of the caller's workspace.
type TeacherHandler struct {
	exports *service.ExportService
}

// NewTeacherHandler constructs a new TeacherHandler.
func NewTeacherHandler(exports *service.ExportService) *TeacherHandler {
	return &TeacherHandler{exports: exports}
}

func (h *TeacherHandler) view(c *gin.Context) (*service.TeacherView, bool) {
	ws, err := workspaceFromContext(c)
	if err != nil {
		response.Error(c, err)
		return nil, false
	}
	return ws.Teachers, true
}

func (h *TeacherHandler) respond(c *gin.Context, state dto.TeacherListView) {
	response.JSON(c, http.StatusOK, state, paginationOf(state.ListMeta))
}

// List godoc
// @Summary Current teacher page
// @Tags Teachers
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} response.Envelope
// @Router /teachers [get]
func (h *TeacherHandler) List(c *gin.Context) {
	view, ok := h.view(c)
	if !ok {
		return
	}
	h.respond(c, view.State())
}

// Reload godoc
// @Summary Refetch teachers
// @Tags Teachers
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /teachers/reload [post]
func (h *TeacherHandler) Reload(c *gin.Context) {
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
// @Summary Set teacher search term
// @Tags Teachers
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param payload body dto.SearchRequest true "Search term"
// @Success 200 {object} response.Envelope
// @Router /teachers/search [put]
func (h *TeacherHandler) Search(c *gin.Context) {
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
// @Summary Move to a teacher page
// @Tags Teachers
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param payload body dto.PageRequest true "Page"
// @Success 200 {object} response.Envelope
// @Router /teachers/page [put]
func (h *TeacherHandler) Page(c *gin.Context) {
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
// @Summary Teacher form state with department options
// @Tags Teachers
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} response.Envelope
// @Router /teachers/form [get]
func (h *TeacherHandler) Form(c *gin.Context) {
	view, ok := h.view(c)
	if !ok {
		return
	}
	response.JSON(c, http.StatusOK, view.Form(), nil)
}

// UpdateDraft godoc
// @Summary Replace the teacher draft
// @Tags Teachers
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param payload body models.ProfessorRequest true "Draft"
// @Success 200 {object} response.Envelope
// @Router /teachers/form [patch]
func (h *TeacherHandler) UpdateDraft(c *gin.Context) {
	view, ok := h.view(c)
	if !ok {
		return
	}
	var req models.ProfessorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid teacher payload"))
		return
	}
	response.JSON(c, http.StatusOK, view.SetDraft(req), nil)
}

// StartEdit godoc
// @Summary Edit a teacher
// @Tags Teachers
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param id path int true "Teacher ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /teachers/form/edit/{id} [post]
func (h *TeacherHandler) StartEdit(c *gin.Context) {
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
// @Summary Reset the teacher form
// @Tags Teachers
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} response.Envelope
// @Router /teachers/form/cancel [post]
func (h *TeacherHandler) CancelEdit(c *gin.Context) {
	view, ok := h.view(c)
	if !ok {
		return
	}
	response.JSON(c, http.StatusOK, view.CancelEdit(), nil)
}

// Submit godoc
// @Summary Save the teacher draft
// @Tags Teachers
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /teachers/form/submit [post]
func (h *TeacherHandler) Submit(c *gin.Context) {
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
// @Summary Delete a teacher
// @Tags Teachers
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param id path int true "Teacher ID"
// @Param confirm query bool false "Confirm the deletion"
// @Success 200 {object} response.Envelope
// @Failure 412 {object} response.Envelope
// @Router /teachers/{id} [delete]
func (h *TeacherHandler) Delete(c *gin.Context) {
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

// Export godoc
// @Summary Export filtered teachers
// @Tags Teachers
// @Produce text/csv,application/pdf
// @Param X-Session-ID header string true "Session ID"
// @Param format query string false "csv or pdf"
// @Success 200 {file} file
// @Router /teachers/export [get]
func (h *TeacherHandler) Export(c *gin.Context) {
	view, ok := h.view(c)
	if !ok {
		return
	}
	result, err := h.exports.Export(view.Dataset(), c.Query("format"), "teachers")
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, result.Filename, result.ContentType, result.Data)
}
