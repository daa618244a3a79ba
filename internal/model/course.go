package model

import "slices"

// swagger:model Course
type Course struct {
	Base        `bson:",inline"`
	Name        string `gorm:"size:255;not null" bson:"name" json:"name"`
	Description string `gorm:"type:text" bson:"description" json:"description"`
	TeacherID   string `gorm:"column:teacher_id;index;type:varchar(36)" bson:"teacher" json:"teacher"`

	// 关系型存储中由 course_enrollments 表维护
	Students []string `gorm:"-" bson:"students" json:"students"`
}

func (Course) TableName() string {
	return "courses"
}

func (c *Course) HasStudent(userID string) bool {
	return slices.Contains(c.Students, userID)
}

// CanManage 课程教师或管理员
func (c *Course) CanManage(userID string, role UserRole) bool {
	return role == Admin || (role == Teacher && c.TeacherID == userID)
}

type Enrollment struct {
	CourseID string `gorm:"primaryKey;type:varchar(36)"`
	UserID   string `gorm:"primaryKey;type:varchar(36);index"`
}

func (Enrollment) TableName() string {
	return "course_enrollments"
}

// swagger:model Lecture
type Lecture struct {
	Base     `bson:",inline"`
	CourseID string `gorm:"column:course_id;index;type:varchar(36);not null" bson:"course" json:"course"`
	Name     string `gorm:"size:255;not null" bson:"name" json:"name"`
	Order    int    `gorm:"default:0" bson:"order" json:"order"`
}

func (Lecture) TableName() string {
	return "lectures"
}
