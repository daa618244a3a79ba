package sqlrepo

import (
	"context"
	"courseware_backend/internal/model"

	"gorm.io/gorm"
)

type UnitRepository struct {
	DB *gorm.DB
}

func NewUnitRepository(db *gorm.DB) *UnitRepository {
	return &UnitRepository{DB: db}
}

func (r *UnitRepository) Create(ctx context.Context, unit *model.Unit) error {
	return r.DB.WithContext(ctx).Create(unit).Error
}

func (r *UnitRepository) FindByID(ctx context.Context, id string) (*model.Unit, error) {
	var unit model.Unit
	if err := r.DB.WithContext(ctx).First(&unit, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &unit, nil
}

// Save deadline 为 nil 时也要写入，不能用 Updates
func (r *UnitRepository) Save(ctx context.Context, unit *model.Unit) error {
	res := r.DB.WithContext(ctx).Model(unit).Select("*").Omit("created_at").Updates(unit)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return mustExist(r.DB.WithContext(ctx), &model.Unit{}, unit.ID)
	}
	return nil
}
