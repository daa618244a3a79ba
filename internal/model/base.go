package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base 所有文档/表共用的字段，_id 与前端保持一致
// swagger:model
type Base struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" bson:"_id" json:"_id"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (b *Base) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == "" {
		b.ID = GenerateUUID()
	}
	return
}

// Touch 设置时间戳，文档存储与内存存储没有 gorm 钩子
func (b *Base) Touch(now time.Time) {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}

func GenerateUUID() string {
	return uuid.New().String()
}
