// Package sqlrepo gorm/MySQL 存储实现
package sqlrepo

import (
	"courseware_backend/internal/repository"
	"errors"

	"gorm.io/gorm"
)

func New(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		User:     NewUserRepository(db),
		Course:   NewCourseRepository(db),
		Lecture:  NewLectureRepository(db),
		Unit:     NewUnitRepository(db),
		Progress: NewProgressRepository(db),
	}
}

// mustExist MySQL 在值未变化时 RowsAffected 为 0，需要再确认记录是否存在
func mustExist(db *gorm.DB, table interface{}, id string) error {
	var count int64
	if err := db.Model(table).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrNotFound
	}
	return err
}
