package controller

import (
	"courseware_backend/internal/model"
	"courseware_backend/internal/service"
	"courseware_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	service *service.ProgressService
}

func NewProgressController(s *service.ProgressService) *ProgressController {
	return &ProgressController{service: s}
}

// ProgressRequest 公共字段 + 各类型的专有字段
type ProgressRequest struct {
	Course  string                 `json:"course" binding:"required"`
	Unit    string                 `json:"unit" binding:"required"`
	User    string                 `json:"user" binding:"required"`
	Done    bool                   `json:"done"`
	Type    model.ProgressType     `json:"type" binding:"required"`
	Code    string                 `json:"code"`
	Answers map[string]interface{} `json:"answers"`
	Text    string                 `json:"text"`
}

func (r *ProgressRequest) toModel() model.Progress {
	return model.Progress{
		Course:  r.Course,
		Unit:    r.Unit,
		User:    r.User,
		Done:    r.Done,
		Type:    r.Type,
		Code:    r.Code,
		Answers: r.Answers,
		Text:    r.Text,
	}
}

// CreateProgress godoc
// @Summary 提交单元进度
// @Description 截止时间已过时返回 400 "Past deadline, no further update possible"
// @Tags 进度
// @Accept json
// @Produce json
// @Param body body ProgressRequest true "进度"
// @Success 200 {object} model.Progress
// @Failure 400 {object} util.HTTPError
// @Router /progress [post]
func (c *ProgressController) CreateProgress(ctx *gin.Context) {
	actor, ok := actorFrom(ctx)
	if !ok {
		return
	}

	var req ProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	progress, err := c.service.Create(ctx.Request.Context(), actor, req.toModel())
	if err != nil {
		util.Fail(ctx, err)
		return
	}

	util.Success(ctx, progress)
}

// UpdateProgress godoc
// @Summary 更新单元进度
// @Description 课程、单元、用户不可更改；截止时间已过时返回 400
// @Tags 进度
// @Accept json
// @Produce json
// @Param id path string true "进度ID"
// @Param body body ProgressRequest true "进度"
// @Success 200 {object} model.Progress
// @Failure 400 {object} util.HTTPError
// @Failure 404 {object} util.HTTPError
// @Router /progress/{id} [put]
func (c *ProgressController) UpdateProgress(ctx *gin.Context) {
	actor, ok := actorFrom(ctx)
	if !ok {
		return
	}

	var req ProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	progress, err := c.service.Update(ctx.Request.Context(), actor, ctx.Param("id"), req.toModel())
	if err != nil {
		util.Fail(ctx, err)
		return
	}

	util.Success(ctx, progress)
}

// GetProgress godoc
// @Summary 获取进度详情
// @Tags 进度
// @Produce json
// @Param id path string true "进度ID"
// @Success 200 {object} model.Progress
// @Router /progress/{id} [get]
func (c *ProgressController) GetProgress(ctx *gin.Context) {
	actor, ok := actorFrom(ctx)
	if !ok {
		return
	}

	progress, err := c.service.Get(ctx.Request.Context(), actor, ctx.Param("id"))
	if err != nil {
		util.Fail(ctx, err)
		return
	}
	util.Success(ctx, progress)
}

// GetUnitProgress godoc
// @Summary 当前用户在单元上的进度
// @Tags 进度
// @Produce json
// @Param unitId path string true "单元ID"
// @Success 200 {object} model.Progress
// @Router /progress/units/{unitId} [get]
func (c *ProgressController) GetUnitProgress(ctx *gin.Context) {
	actor, ok := actorFrom(ctx)
	if !ok {
		return
	}

	progress, err := c.service.GetUnitProgress(ctx.Request.Context(), actor, ctx.Param("unitId"))
	if err != nil {
		util.Fail(ctx, err)
		return
	}
	util.Success(ctx, progress)
}

// GetCourseProgress godoc
// @Summary 课程进度列表
// @Description 教师不带 user 参数时返回全部学生
// @Tags 进度
// @Produce json
// @Param courseId path string true "课程ID"
// @Param user query string false "学生ID"
// @Success 200 {array} model.Progress
// @Router /progress/courses/{courseId} [get]
func (c *ProgressController) GetCourseProgress(ctx *gin.Context) {
	actor, ok := actorFrom(ctx)
	if !ok {
		return
	}

	list, err := c.service.ListCourseProgress(ctx.Request.Context(), actor, ctx.Param("courseId"), ctx.Query("user"))
	if err != nil {
		util.Fail(ctx, err)
		return
	}
	util.Success(ctx, list)
}
