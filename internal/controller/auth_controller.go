package controller

import (
	"courseware_backend/internal/config"
	"courseware_backend/internal/service"
	"courseware_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	service *service.AuthService
	cfg     *config.Config
}

func NewAuthController(s *service.AuthService, cfg *config.Config) *AuthController {
	return &AuthController{service: s, cfg: cfg}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary 登录
// @Description 成功后写入 token cookie
// @Tags 认证
// @Accept json
// @Produce json
// @Param body body LoginRequest true "登录信息"
// @Success 200 {object} model.User
// @Failure 401 {object} util.HTTPError
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, user, err := c.service.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		util.Fail(ctx, err)
		return
	}

	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(util.TokenCookie, token, int(c.cfg.JWT.ExpireTime.Seconds()), "/", "", c.cfg.Server.IsRelease(), true)
	util.Success(ctx, user)
}

// Logout godoc
// @Summary 退出登录
// @Tags 认证
// @Success 204
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.SetCookie(util.TokenCookie, "", -1, "/", "", c.cfg.Server.IsRelease(), true)
	ctx.Status(http.StatusNoContent)
}

// Me godoc
// @Summary 当前用户
// @Tags 认证
// @Produce json
// @Success 200 {object} model.User
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	actor, ok := actorFrom(ctx)
	if !ok {
		return
	}

	user, err := c.service.Me(ctx.Request.Context(), actor)
	if err != nil {
		util.Fail(ctx, err)
		return
	}
	util.Success(ctx, user)
}
