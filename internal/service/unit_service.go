package service

import (
	"context"
	"courseware_backend/internal/model"
	"courseware_backend/internal/repository"
	"courseware_backend/internal/util"
	"courseware_backend/pkg/logger"
	"time"

	"go.uber.org/zap"
)

type UnitService struct {
	units    repository.UnitRepository
	lectures repository.LectureRepository
	courses  repository.CourseRepository
}

func NewUnitService(repos *repository.Repositories) *UnitService {
	return &UnitService{
		units:    repos.Unit,
		lectures: repos.Lecture,
		courses:  repos.Course,
	}
}

func (s *UnitService) Get(ctx context.Context, id string) (*model.Unit, error) {
	unit, err := s.units.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, util.ErrUnitNotFound)
	}
	return unit, nil
}

// SetDeadline 设置或清除截止时间；往后调整会重新开放提交
func (s *UnitService) SetDeadline(ctx context.Context, actor Actor, id string, deadline *time.Time) (*model.Unit, error) {
	unit, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	lecture, err := s.lectures.FindByID(ctx, unit.LectureID)
	if err != nil {
		// 章节已删除时按课程不存在处理
		return nil, notFound(err, util.ErrCourseNotFound)
	}
	course, err := s.courses.FindByID(ctx, lecture.CourseID)
	if err != nil {
		return nil, notFound(err, util.ErrCourseNotFound)
	}
	if !course.CanManage(actor.UserID, actor.Role) {
		return nil, util.ErrPermissionDenied
	}

	unit.Deadline = deadline
	if err := s.units.Save(ctx, unit); err != nil {
		return nil, err
	}

	logger.Log.Info("unit deadline changed",
		zap.String("unit", unit.ID),
		zap.Timep("deadline", deadline),
		zap.String("by", actor.UserID))
	return unit, nil
}
