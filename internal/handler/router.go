package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/faculty-portal/internal/middleware"
	"github.com/noah-isme/faculty-portal/internal/service"
)

// Register mounts the session, department and teacher routes on api.
func Register(api *gin.RouterGroup, sessions *service.SessionService, exports *service.ExportService) {
	sessionHandler := NewSessionHandler(sessions)
	api.POST("/sessions", sessionHandler.Create)
	api.DELETE("/sessions/current", sessionHandler.Close)

	scoped := api.Group("")
	scoped.Use(middleware.Session(sessions))

	departments := NewDepartmentHandler(exports)
	dept := scoped.Group("/departments")
	dept.GET("", departments.List)
	dept.POST("/reload", departments.Reload)
	dept.PUT("/search", departments.Search)
	dept.PUT("/page", departments.Page)
	dept.GET("/export", departments.Export)
	dept.GET("/form", departments.Form)
	dept.PATCH("/form", departments.UpdateDraft)
	dept.POST("/form/edit/:id", departments.StartEdit)
	dept.POST("/form/cancel", departments.CancelEdit)
	dept.POST("/form/submit", departments.Submit)
	dept.DELETE("/:id", departments.Delete)
	dept.POST("/:id/toggle", departments.Toggle)
	dept.GET("/:id/teachers", departments.Roster)

	teachers := NewTeacherHandler(exports)
	teach := scoped.Group("/teachers")
	teach.GET("", teachers.List)
	teach.POST("/reload", teachers.Reload)
	teach.PUT("/search", teachers.Search)
	teach.PUT("/page", teachers.Page)
	teach.GET("/export", teachers.Export)
	teach.GET("/form", teachers.Form)
	teach.PATCH("/form", teachers.UpdateDraft)
	teach.POST("/form/edit/:id", teachers.StartEdit)
	teach.POST("/form/cancel", teachers.CancelEdit)
	teach.POST("/form/submit", teachers.Submit)
	teach.DELETE("/:id", teachers.Delete)
}
