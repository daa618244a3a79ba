package repository

import (
	"context"
	"courseware_backend/internal/model"
	"errors"
)

// ErrNotFound 各存储实现统一的"记录不存在"
var ErrNotFound = errors.New("record not found")

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByIDs(ctx context.Context, ids []string) ([]model.User, error)
}

type CourseRepository interface {
	Create(ctx context.Context, course *model.Course) error
	// FindByID 返回的 Students 已填充
	FindByID(ctx context.Context, id string) (*model.Course, error)
	AddStudent(ctx context.Context, courseID, userID string) error
	RemoveStudent(ctx context.Context, courseID, userID string) error
}

type LectureRepository interface {
	Create(ctx context.Context, lecture *model.Lecture) error
	FindByID(ctx context.Context, id string) (*model.Lecture, error)
}

type UnitRepository interface {
	Create(ctx context.Context, unit *model.Unit) error
	FindByID(ctx context.Context, id string) (*model.Unit, error)
	Save(ctx context.Context, unit *model.Unit) error
}

// ProgressRepository 以 ID 寻址的进度集合，并发写入以最后一次为准
type ProgressRepository interface {
	Create(ctx context.Context, progress *model.Progress) error
	FindByID(ctx context.Context, id string) (*model.Progress, error)
	Update(ctx context.Context, progress *model.Progress) error
	FindByUnitAndUser(ctx context.Context, unitID, userID string) (*model.Progress, error)
	ListByCourse(ctx context.Context, courseID string) ([]model.Progress, error)
	ListByCourseAndUser(ctx context.Context, courseID, userID string) ([]model.Progress, error)
}

// Repositories 一组存储实现，由 database.driver 决定
type Repositories struct {
	User     UserRepository
	Course   CourseRepository
	Lecture  LectureRepository
	Unit     UnitRepository
	Progress ProgressRepository
}
