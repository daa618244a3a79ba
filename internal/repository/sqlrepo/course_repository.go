package sqlrepo

import (
	"context"
	"courseware_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(ctx context.Context, course *model.Course) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(course).Error; err != nil {
			return err
		}
		for _, userID := range course.Students {
			e := model.Enrollment{CourseID: course.ID, UserID: userID}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&e).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *CourseRepository) FindByID(ctx context.Context, id string) (*model.Course, error) {
	var course model.Course
	db := r.DB.WithContext(ctx)
	if err := db.First(&course, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}

	var students []string
	err := db.Model(&model.Enrollment{}).
		Where("course_id = ?", id).
		Pluck("user_id", &students).Error
	if err != nil {
		return nil, err
	}
	course.Students = students
	return &course, nil
}

func (r *CourseRepository) AddStudent(ctx context.Context, courseID, userID string) error {
	e := model.Enrollment{CourseID: courseID, UserID: userID}
	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&e).Error
}

func (r *CourseRepository) RemoveStudent(ctx context.Context, courseID, userID string) error {
	return r.DB.WithContext(ctx).
		Where("course_id = ? AND user_id = ?", courseID, userID).
		Delete(&model.Enrollment{}).Error
}

type LectureRepository struct {
	DB *gorm.DB
}

func NewLectureRepository(db *gorm.DB) *LectureRepository {
	return &LectureRepository{DB: db}
}

func (r *LectureRepository) Create(ctx context.Context, lecture *model.Lecture) error {
	return r.DB.WithContext(ctx).Create(lecture).Error
}

func (r *LectureRepository) FindByID(ctx context.Context, id string) (*model.Lecture, error) {
	var lecture model.Lecture
	if err := r.DB.WithContext(ctx).First(&lecture, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &lecture, nil
}
