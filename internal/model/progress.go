package model

import "gorm.io/datatypes"

type ProgressType string

const (
	ProgressCodeKata ProgressType = "codeKata"
	ProgressTask     ProgressType = "task"
	ProgressFreeText ProgressType = "freeText"
)

func (t ProgressType) Valid() bool {
	switch t {
	case ProgressCodeKata, ProgressTask, ProgressFreeText:
		return true
	}
	return false
}

// Progress 学生在某课程某单元上的进度
// swagger:model Progress
type Progress struct {
	Base   `bson:",inline"`
	Course string       `gorm:"column:course_id;index;type:varchar(36);not null" bson:"course" json:"course"`
	Unit   string       `gorm:"column:unit_id;index;type:varchar(36);not null" bson:"unit" json:"unit"`
	User   string       `gorm:"column:user_id;index;type:varchar(36);not null" bson:"user" json:"user"`
	Done   bool         `gorm:"default:false" bson:"done" json:"done"`
	Type   ProgressType `gorm:"size:20;not null" bson:"type" json:"type"`

	// codeKata
	Code string `gorm:"type:text" bson:"code,omitempty" json:"code,omitempty"`
	// task: 题目ID -> 答案
	Answers datatypes.JSONMap `gorm:"type:json" bson:"answers,omitempty" json:"answers,omitempty"`
	// freeText
	Text string `gorm:"type:text" bson:"text,omitempty" json:"text,omitempty"`
}

func (Progress) TableName() string {
	return "progresses"
}

// Apply 覆盖可写字段，保留 ID 与创建时间
func (p *Progress) Apply(in *Progress) {
	p.Course = in.Course
	p.Unit = in.Unit
	p.User = in.User
	p.Done = in.Done
	p.Type = in.Type
	p.Code = in.Code
	p.Answers = in.Answers
	p.Text = in.Text
}
