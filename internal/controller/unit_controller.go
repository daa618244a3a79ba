package controller

import (
	"courseware_backend/internal/service"
	"courseware_backend/internal/util"
	"time"

	"github.com/gin-gonic/gin"
)

type UnitController struct {
	service *service.UnitService
}

func NewUnitController(s *service.UnitService) *UnitController {
	return &UnitController{service: s}
}

// GetUnit godoc
// @Summary 单元详情
// @Tags 单元
// @Produce json
// @Param id path string true "单元ID"
// @Success 200 {object} model.Unit
// @Router /units/{id} [get]
func (c *UnitController) GetUnit(ctx *gin.Context) {
	unit, err := c.service.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		util.Fail(ctx, err)
		return
	}
	util.Success(ctx, unit)
}

// DeadlineRequest deadline 为 null 表示取消截止时间
type DeadlineRequest struct {
	Deadline *time.Time `json:"deadline"`
}

// SetDeadline godoc
// @Summary 设置单元截止时间
// @Tags 单元
// @Accept json
// @Produce json
// @Param id path string true "单元ID"
// @Param body body DeadlineRequest true "截止时间 (RFC3339)"
// @Success 200 {object} model.Unit
// @Router /units/{id}/deadline [put]
func (c *UnitController) SetDeadline(ctx *gin.Context) {
	actor, ok := actorFrom(ctx)
	if !ok {
		return
	}

	var req DeadlineRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	unit, err := c.service.SetDeadline(ctx.Request.Context(), actor, ctx.Param("id"), req.Deadline)
	if err != nil {
		util.Fail(ctx, err)
		return
	}
	util.Success(ctx, unit)
}
