package controller

import (
	"context"
	"courseware_backend/internal/util"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger 依赖组件的存活检查
type Pinger func(ctx context.Context) error

type HealthController struct {
	components map[string]Pinger
}

func NewHealthController(components map[string]Pinger) *HealthController {
	return &HealthController{components: components}
}

// @Summary 健康检查
// @Description 检查数据库、Redis 等组件状态
// @Tags 系统
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} util.HTTPError
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	status := gin.H{}
	for name, ping := range c.components {
		if err := ping(pingCtx); err != nil {
			util.Error(ctx, http.StatusServiceUnavailable, name+" unavailable")
			return
		}
		status[name] = "up"
	}

	util.Success(ctx, gin.H{
		"status":     "ok",
		"components": status,
	})
}
