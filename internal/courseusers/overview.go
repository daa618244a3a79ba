// Package courseusers 课程成员列表：选中成员，确认后向上层发出移除请求
package courseusers

import (
	"context"
	"courseware_backend/internal/model"
	"courseware_backend/pkg/logger"
	"sync"

	"go.uber.org/zap"
)

// ResourceCourse 确认框中展示的资源类型
const ResourceCourse = "course"

// Confirmer 确认对话框。返回 false 或 error 均视为取消
type Confirmer interface {
	ConfirmRemove(ctx context.Context, role model.UserRole, email, resourceKind string) (bool, error)
}

// ConfirmFunc 让普通函数满足 Confirmer
type ConfirmFunc func(ctx context.Context, role model.UserRole, email, resourceKind string) (bool, error)

func (f ConfirmFunc) ConfirmRemove(ctx context.Context, role model.UserRole, email, resourceKind string) (bool, error) {
	return f(ctx, role, email, resourceKind)
}

// ListOverview 不修改 users，实际移除由 onUpdate 的调用方完成
type ListOverview struct {
	users     []model.User
	confirmer Confirmer
	onUpdate  func(userID string)

	mu          sync.Mutex
	currentUser *model.User
}

func NewListOverview(users []model.User, confirmer Confirmer, onUpdate func(userID string)) *ListOverview {
	if onUpdate == nil {
		onUpdate = func(string) {}
	}
	return &ListOverview{
		users:     users,
		confirmer: confirmer,
		onUpdate:  onUpdate,
	}
}

// Users 返回调用方提供的列表
func (o *ListOverview) Users() []model.User {
	return o.users
}

// SetCurrentUser 不校验 user 是否在列表中，最后一次调用生效
func (o *ListOverview) SetCurrentUser(user model.User) {
	o.mu.Lock()
	defer o.mu.Unlock()
	u := user
	o.currentUser = &u
}

func (o *ListOverview) CurrentUser() (model.User, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.currentUser == nil {
		return model.User{}, false
	}
	return *o.currentUser, true
}

// RemoveUser 弹出确认框，确认后发出当前成员 ID。
// 未选中成员时直接返回；并发调用不做合并，各自弹框。
func (o *ListOverview) RemoveUser(ctx context.Context) {
	user, ok := o.CurrentUser()
	if !ok {
		return
	}

	type outcome struct {
		ok  bool
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		confirmed, err := o.confirmer.ConfirmRemove(ctx, user.Role, user.Email, ResourceCourse)
		done <- outcome{confirmed, err}
	}()

	select {
	case <-ctx.Done():
		logger.Log.Debug("remove confirmation abandoned", zap.String("user", user.ID), zap.Error(ctx.Err()))
		return
	case res := <-done:
		if res.err != nil {
			logger.Log.Warn("remove confirmation failed", zap.String("user", user.ID), zap.Error(res.err))
			return
		}
		if !res.ok {
			return
		}
		o.onUpdate(user.ID)
	}
}
