package model

type UserRole string

const (
	Student UserRole = "student"
	Teacher UserRole = "teacher"
	Admin   UserRole = "admin"
)

// IsStaff 教师和管理员可以代学生操作
func (r UserRole) IsStaff() bool {
	return r == Teacher || r == Admin
}

// swagger:model User
type User struct {
	Base     `bson:",inline"`
	Name     string   `gorm:"size:100;not null" bson:"name" json:"name"`
	Email    string   `gorm:"size:100;unique;not null" bson:"email" json:"email"`
	Password string   `gorm:"size:100;not null" bson:"password" json:"-"`
	Role     UserRole `gorm:"type:enum('student','teacher','admin');default:'student'" bson:"role" json:"role"`
}

func (User) TableName() string {
	return "users"
}
