package sqlrepo

import (
	"context"
	"courseware_backend/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) Create(ctx context.Context, progress *model.Progress) error {
	return r.DB.WithContext(ctx).Create(progress).Error
}

func (r *ProgressRepository) FindByID(ctx context.Context, id string) (*model.Progress, error) {
	var progress model.Progress
	if err := r.DB.WithContext(ctx).First(&progress, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &progress, nil
}

// Update 整条覆盖（包括零值字段），保留 created_at
func (r *ProgressRepository) Update(ctx context.Context, progress *model.Progress) error {
	res := r.DB.WithContext(ctx).Model(progress).Select("*").Omit("created_at").Updates(progress)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return mustExist(r.DB.WithContext(ctx), &model.Progress{}, progress.ID)
	}
	return nil
}

func (r *ProgressRepository) FindByUnitAndUser(ctx context.Context, unitID, userID string) (*model.Progress, error) {
	var progress model.Progress
	err := r.DB.WithContext(ctx).
		Where("unit_id = ? AND user_id = ?", unitID, userID).
		Order("created_at").
		First(&progress).Error
	if err != nil {
		return nil, translate(err)
	}
	return &progress, nil
}

func (r *ProgressRepository) ListByCourse(ctx context.Context, courseID string) ([]model.Progress, error) {
	var list []model.Progress
	err := r.DB.WithContext(ctx).Where("course_id = ?", courseID).Order("created_at").Find(&list).Error
	return list, err
}

func (r *ProgressRepository) ListByCourseAndUser(ctx context.Context, courseID, userID string) ([]model.Progress, error) {
	var list []model.Progress
	err := r.DB.WithContext(ctx).
		Where("course_id = ? AND user_id = ?", courseID, userID).
		Order("created_at").
		Find(&list).Error
	return list, err
}
