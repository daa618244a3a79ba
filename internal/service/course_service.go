package service

import (
	"context"
	"courseware_backend/internal/model"
	"courseware_backend/internal/repository"
	"courseware_backend/internal/util"
	"courseware_backend/pkg/logger"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type CourseService struct {
	courses  repository.CourseRepository
	users    repository.UserRepository
	progress repository.ProgressRepository
	storage  *StorageService
}

func NewCourseService(repos *repository.Repositories, storage *StorageService) *CourseService {
	return &CourseService{
		courses:  repos.Course,
		users:    repos.User,
		progress: repos.Progress,
		storage:  storage,
	}
}

func (s *CourseService) find(ctx context.Context, id string) (*model.Course, error) {
	course, err := s.courses.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, util.ErrCourseNotFound)
	}
	return course, nil
}

func (s *CourseService) findManaged(ctx context.Context, actor Actor, id string) (*model.Course, error) {
	course, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !course.CanManage(actor.UserID, actor.Role) {
		return nil, util.ErrPermissionDenied
	}
	return course, nil
}

// Get 选课学生和课程教师可见
func (s *CourseService) Get(ctx context.Context, actor Actor, id string) (*model.Course, error) {
	course, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !course.HasStudent(actor.UserID) && !course.CanManage(actor.UserID, actor.Role) {
		return nil, util.ErrPermissionDenied
	}
	return course, nil
}

func (s *CourseService) ListStudents(ctx context.Context, actor Actor, courseID string) ([]model.User, error) {
	course, err := s.findManaged(ctx, actor, courseID)
	if err != nil {
		return nil, err
	}
	return s.users.FindByIDs(ctx, course.Students)
}

func (s *CourseService) AddStudent(ctx context.Context, actor Actor, courseID, userID string) error {
	if _, err := s.findManaged(ctx, actor, courseID); err != nil {
		return err
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return notFound(err, util.ErrUserNotFound)
	}
	if user.Role != model.Student {
		return fmt.Errorf("%w: only students can be enrolled", util.ErrPermissionDenied)
	}
	return s.courses.AddStudent(ctx, courseID, userID)
}

// RemoveStudent 移出课程，已有进度记录保留
func (s *CourseService) RemoveStudent(ctx context.Context, actor Actor, courseID, userID string) error {
	course, err := s.findManaged(ctx, actor, courseID)
	if err != nil {
		return err
	}
	if !course.HasStudent(userID) {
		return util.ErrNotEnrolled
	}
	if err := s.courses.RemoveStudent(ctx, courseID, userID); err != nil {
		return err
	}

	logger.Log.Info("student removed from course",
		zap.String("course", courseID),
		zap.String("user", userID),
		zap.String("by", actor.UserID))
	return nil
}

type progressExport struct {
	Course     string           `json:"course"`
	ExportedAt time.Time        `json:"exportedAt"`
	Progress   []model.Progress `json:"progress"`
}

// ExportProgress 导出课程全部进度到对象存储，返回访问地址
func (s *CourseService) ExportProgress(ctx context.Context, actor Actor, courseID string) (string, error) {
	if _, err := s.findManaged(ctx, actor, courseID); err != nil {
		return "", err
	}

	list, err := s.progress.ListByCourse(ctx, courseID)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	data, err := json.MarshalIndent(progressExport{
		Course:     courseID,
		ExportedAt: now,
		Progress:   list,
	}, "", "  ")
	if err != nil {
		return "", err
	}

	filename := fmt.Sprintf("exports/progress/%s-%s.json", courseID, now.Format("20060102T150405"))
	url, err := s.storage.UploadBytes(ctx, filename, data, util.MimeJSON)
	if err != nil {
		return "", fmt.Errorf("upload export: %w", err)
	}
	return url, nil
}
