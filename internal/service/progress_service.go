package service

import (
	"context"
	"courseware_backend/internal/model"
	"courseware_backend/internal/repository"
	"courseware_backend/internal/util"
	"courseware_backend/pkg/logger"
	"courseware_backend/pkg/monitoring"
	"courseware_backend/pkg/tracing"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

const (
	opCreate = "create"
	opUpdate = "update"
)

// Actor 当前登录用户
type Actor struct {
	UserID string
	Role   model.UserRole
}

type ProgressService struct {
	progress repository.ProgressRepository
	units    repository.UnitRepository
	lectures repository.LectureRepository
	courses  repository.CourseRepository
	notifier Notifier
	now      func() time.Time
}

func NewProgressService(repos *repository.Repositories, notifier Notifier) *ProgressService {
	if notifier == nil {
		notifier = NoopNotifier{}
	}
	return &ProgressService{
		progress: repos.Progress,
		units:    repos.Unit,
		lectures: repos.Lecture,
		courses:  repos.Course,
		notifier: notifier,
		now:      time.Now,
	}
}

// SetClock 测试中固定当前时间
func (s *ProgressService) SetClock(now func() time.Time) {
	s.now = now
}

// Create 新建进度，截止时间已过则拒绝
func (s *ProgressService) Create(ctx context.Context, actor Actor, in model.Progress) (*model.Progress, error) {
	ctx, span := tracing.StartSpan(ctx, "ProgressService.Create",
		tracing.AttrCourse.String(in.Course),
		tracing.AttrUnit.String(in.Unit),
		tracing.AttrUser.String(in.User))

	p, err := s.create(ctx, actor, in)
	tracing.End(span, s.observe(opCreate, err), err)
	return p, err
}

func (s *ProgressService) create(ctx context.Context, actor Actor, in model.Progress) (*model.Progress, error) {
	if _, err := s.checkWritable(ctx, actor, &in); err != nil {
		return nil, err
	}

	p := &model.Progress{}
	p.Apply(&in)
	if err := s.progress.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create progress: %w", err)
	}

	s.publish(ctx, opCreate, p)
	return p, nil
}

// Update 按 ID 覆盖已有进度，ID 与课程/单元/用户不变
func (s *ProgressService) Update(ctx context.Context, actor Actor, id string, in model.Progress) (*model.Progress, error) {
	ctx, span := tracing.StartSpan(ctx, "ProgressService.Update",
		tracing.AttrProgress.String(id),
		tracing.AttrUnit.String(in.Unit),
		tracing.AttrUser.String(in.User))

	p, err := s.update(ctx, actor, id, in)
	tracing.End(span, s.observe(opUpdate, err), err)
	return p, err
}

func (s *ProgressService) update(ctx context.Context, actor Actor, id string, in model.Progress) (*model.Progress, error) {
	course, err := s.checkWritable(ctx, actor, &in)
	if err != nil {
		return nil, err
	}

	existing, err := s.progress.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, util.ErrProgressNotFound)
	}
	// 不能借自己的身份改写别人的记录
	if existing.User != actor.UserID && !course.CanManage(actor.UserID, actor.Role) {
		return nil, util.ErrPermissionDenied
	}
	// 已存记录所属单元截止后同样冻结，请求体里换一个单元也不行
	if existing.Unit != in.Unit {
		if err := s.checkOpen(ctx, existing.Unit, existing.User); err != nil {
			return nil, err
		}
	}
	if existing.Course != in.Course || existing.Unit != in.Unit || existing.User != in.User {
		return nil, util.ErrProgressImmutable
	}

	existing.Apply(&in)
	if err := s.progress.Update(ctx, existing); err != nil {
		return nil, notFound(err, util.ErrProgressNotFound)
	}

	s.publish(ctx, opUpdate, existing)
	return existing, nil
}

// checkWritable 校验单元、课程、选课关系和截止时间。单元每次重新读取，不做缓存
func (s *ProgressService) checkWritable(ctx context.Context, actor Actor, in *model.Progress) (*model.Course, error) {
	if in.Course == "" || in.Unit == "" || in.User == "" || !in.Type.Valid() {
		return nil, util.ErrInvalidProgress
	}

	unit, err := s.units.FindByID(ctx, in.Unit)
	if err != nil {
		return nil, notFound(err, util.ErrUnitNotFound)
	}
	if !unit.Progressable {
		return nil, util.ErrUnitNotProgressable
	}
	if unit.ProgressType() != in.Type {
		return nil, util.ErrTypeMismatch
	}

	lecture, err := s.lectures.FindByID(ctx, unit.LectureID)
	if err != nil {
		return nil, notFound(err, util.ErrUnitNotInCourse)
	}
	if lecture.CourseID != in.Course {
		return nil, util.ErrUnitNotInCourse
	}

	course, err := s.courses.FindByID(ctx, in.Course)
	if err != nil {
		return nil, notFound(err, util.ErrCourseNotFound)
	}
	if !course.HasStudent(in.User) {
		return nil, util.ErrNotEnrolled
	}
	if actor.UserID != in.User && !course.CanManage(actor.UserID, actor.Role) {
		return nil, util.ErrPermissionDenied
	}

	if err := s.deadlineGate(unit, in.User); err != nil {
		return nil, err
	}
	return course, nil
}

// checkOpen 按 ID 重新读取单元并检查截止时间
func (s *ProgressService) checkOpen(ctx context.Context, unitID, userID string) error {
	unit, err := s.units.FindByID(ctx, unitID)
	if err != nil {
		return notFound(err, util.ErrUnitNotFound)
	}
	return s.deadlineGate(unit, userID)
}

func (s *ProgressService) deadlineGate(unit *model.Unit, userID string) error {
	if unit.Closed(s.now()) {
		logger.Log.Debug("progress write after deadline",
			zap.String("unit", unit.ID),
			zap.String("user", userID),
			zap.Timep("deadline", unit.Deadline))
		return util.ErrPastDeadline
	}
	return nil
}

func (s *ProgressService) publish(ctx context.Context, op string, p *model.Progress) {
	event := ProgressEvent{Op: op, Progress: p, At: s.now()}
	if err := s.notifier.Publish(ctx, event); err != nil {
		logger.Log.Warn("publish progress event failed",
			zap.String("op", op),
			zap.String("progress", p.ID),
			zap.Error(err))
	}
}

// observe 计数并返回结果标签
func (s *ProgressService) observe(op string, err error) string {
	result := monitoring.ResultOK
	switch {
	case err == nil:
	case errors.Is(err, util.ErrPastDeadline):
		result = monitoring.ResultPastDeadline
	default:
		if _, _, known := util.Classify(err); known {
			result = monitoring.ResultRejected
		} else {
			result = monitoring.ResultError
		}
	}
	monitoring.ObserveProgressWrite(op, result)
	return result
}

// Get 本人或课程教师可查看
func (s *ProgressService) Get(ctx context.Context, actor Actor, id string) (*model.Progress, error) {
	p, err := s.progress.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, util.ErrProgressNotFound)
	}
	if err := s.canRead(ctx, actor, p.Course, p.User); err != nil {
		return nil, err
	}
	return p, nil
}

// GetUnitProgress 当前用户在某单元上的进度
func (s *ProgressService) GetUnitProgress(ctx context.Context, actor Actor, unitID string) (*model.Progress, error) {
	p, err := s.progress.FindByUnitAndUser(ctx, unitID, actor.UserID)
	if err != nil {
		return nil, notFound(err, util.ErrProgressNotFound)
	}
	return p, nil
}

// ListCourseProgress userID 为空时：教师返回全部学生，学生返回自己的
func (s *ProgressService) ListCourseProgress(ctx context.Context, actor Actor, courseID, userID string) ([]model.Progress, error) {
	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		return nil, notFound(err, util.ErrCourseNotFound)
	}

	manage := course.CanManage(actor.UserID, actor.Role)
	switch {
	case userID == "" && manage:
		return s.progress.ListByCourse(ctx, courseID)
	case userID == "":
		userID = actor.UserID
	case userID != actor.UserID && !manage:
		return nil, util.ErrPermissionDenied
	}
	return s.progress.ListByCourseAndUser(ctx, courseID, userID)
}

func (s *ProgressService) canRead(ctx context.Context, actor Actor, courseID, userID string) error {
	if actor.UserID == userID || actor.Role == model.Admin {
		return nil
	}
	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		return notFound(err, util.ErrCourseNotFound)
	}
	if !course.CanManage(actor.UserID, actor.Role) {
		return util.ErrPermissionDenied
	}
	return nil
}

// notFound 把存储层的 ErrNotFound 换成业务错误，其余原样返回
func notFound(err, domainErr error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return domainErr
	}
	return err
}
