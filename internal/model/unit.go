package model

import "time"

type UnitType string

const (
	UnitCodeKata UnitType = "code-kata"
	UnitTask     UnitType = "task"
	UnitFreeText UnitType = "free-text"
	UnitVideo    UnitType = "video"
)

// swagger:model Unit
type Unit struct {
	Base         `bson:",inline"`
	LectureID    string     `gorm:"column:lecture_id;index;type:varchar(36);not null" bson:"lecture" json:"lecture"`
	Name         string     `gorm:"size:255;not null" bson:"name" json:"name"`
	Type         UnitType   `gorm:"size:20;not null" bson:"type" json:"type"`
	Progressable bool       `gorm:"default:false" bson:"progressable" json:"progressable"`
	Deadline     *time.Time `bson:"deadline,omitempty" json:"deadline,omitempty"`
}

func (Unit) TableName() string {
	return "units"
}

// Closed 截止时间已过（严格早于 now）
func (u *Unit) Closed(now time.Time) bool {
	return u.Deadline != nil && u.Deadline.Before(now)
}

// ProgressType 该类型单元对应的进度类型，空表示无法记录进度
func (u *Unit) ProgressType() ProgressType {
	switch u.Type {
	case UnitCodeKata:
		return ProgressCodeKata
	case UnitTask:
		return ProgressTask
	case UnitFreeText:
		return ProgressFreeText
	}
	return ""
}
