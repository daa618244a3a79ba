package controller

import (
	"courseware_backend/internal/service"
	"courseware_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	service *service.CourseService
}

func NewCourseController(s *service.CourseService) *CourseController {
	return &CourseController{service: s}
}

// GetCourse godoc
// @Summary 课程详情
// @Tags 课程
// @Produce json
// @Param id path string true "课程ID"
// @Success 200 {object} model.Course
// @Router /courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	actor, ok := actorFrom(ctx)
	if !ok {
		return
	}

	course, err := c.service.Get(ctx.Request.Context(), actor, ctx.Param("id"))
	if err != nil {
		util.Fail(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// ListStudents godoc
// @Summary 课程学生列表
// @Tags 课程
// @Produce json
// @Param id path string true "课程ID"
// @Success 200 {array} model.User
// @Router /courses/{id}/students [get]
func (c *CourseController) ListStudents(ctx *gin.Context) {
	actor, ok := actorFrom(ctx)
	if !ok {
		return
	}

	users, err := c.service.ListStudents(ctx.Request.Context(), actor, ctx.Param("id"))
	if err != nil {
		util.Fail(ctx, err)
		return
	}
	util.Success(ctx, users)
}

type AddStudentRequest struct {
	User string `json:"user" binding:"required"`
}

// AddStudent godoc
// @Summary 添加学生到课程
// @Tags 课程
// @Accept json
// @Param id path string true "课程ID"
// @Param body body AddStudentRequest true "学生"
// @Success 204
// @Router /courses/{id}/students [post]
func (c *CourseController) AddStudent(ctx *gin.Context) {
	actor, ok := actorFrom(ctx)
	if !ok {
		return
	}

	var req AddStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.service.AddStudent(ctx.Request.Context(), actor, ctx.Param("id"), req.User); err != nil {
		util.Fail(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// RemoveStudent godoc
// @Summary 将学生移出课程
// @Tags 课程
// @Param id path string true "课程ID"
// @Param userId path string true "学生ID"
// @Success 204
// @Router /courses/{id}/students/{userId} [delete]
func (c *CourseController) RemoveStudent(ctx *gin.Context) {
	actor, ok := actorFrom(ctx)
	if !ok {
		return
	}

	if err := c.service.RemoveStudent(ctx.Request.Context(), actor, ctx.Param("id"), ctx.Param("userId")); err != nil {
		util.Fail(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ExportProgress godoc
// @Summary 导出课程进度
// @Tags 课程
// @Produce json
// @Param id path string true "课程ID"
// @Success 200 {object} map[string]string
// @Router /courses/{id}/progress/export [post]
func (c *CourseController) ExportProgress(ctx *gin.Context) {
	actor, ok := actorFrom(ctx)
	if !ok {
		return
	}

	url, err := c.service.ExportProgress(ctx.Request.Context(), actor, ctx.Param("id"))
	if err != nil {
		util.Fail(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"url": url})
}
