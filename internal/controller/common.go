package controller

import (
	"courseware_backend/internal/service"
	"courseware_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// actorFrom 取当前用户，未登录时已写入 401
func actorFrom(ctx *gin.Context) (service.Actor, bool) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return service.Actor{}, false
	}
	return service.Actor{UserID: claims.UserID, Role: claims.Role}, true
}
