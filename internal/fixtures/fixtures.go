// Package fixtures 演示/测试数据，memory 驱动启动时和测试中加载
package fixtures

import (
	"context"
	"courseware_backend/internal/model"
	"courseware_backend/internal/repository"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Password 所有演示账号的密码
const Password = "courseware"

type Set struct {
	Admin        *model.User
	Teacher      *model.User
	Student      *model.User
	OtherStudent *model.User
	Outsider     *model.User

	Course  *model.Course
	Lecture *model.Lecture
	// 可提交进度的 code-kata 单元，无截止时间
	CodeKata *model.Unit
	Task     *model.Unit
	// 不可提交进度
	Video *model.Unit

	OtherCourse *model.Course
	OtherUnit   *model.Unit
}

func Load(ctx context.Context, repos *repository.Repositories) (*Set, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(Password), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	user := func(name, email string, role model.UserRole) (*model.User, error) {
		u := &model.User{Name: name, Email: email, Password: string(hashed), Role: role}
		if err := repos.User.Create(ctx, u); err != nil {
			return nil, fmt.Errorf("create user %s: %w", email, err)
		}
		return u, nil
	}

	s := &Set{}
	if s.Admin, err = user("Admin", "admin@test.local", model.Admin); err != nil {
		return nil, err
	}
	if s.Teacher, err = user("Tina Teacher", "teacher@test.local", model.Teacher); err != nil {
		return nil, err
	}
	if s.Student, err = user("Sam Student", "student1@test.local", model.Student); err != nil {
		return nil, err
	}
	if s.OtherStudent, err = user("Kim Student", "student2@test.local", model.Student); err != nil {
		return nil, err
	}
	if s.Outsider, err = user("Olli Outsider", "student3@test.local", model.Student); err != nil {
		return nil, err
	}

	s.Course = &model.Course{
		Name:        "Introduction to Programming",
		Description: "Variables, loops and functions",
		TeacherID:   s.Teacher.ID,
		Students:    []string{s.Student.ID, s.OtherStudent.ID},
	}
	if err := repos.Course.Create(ctx, s.Course); err != nil {
		return nil, err
	}
	s.Lecture = &model.Lecture{CourseID: s.Course.ID, Name: "Getting started", Order: 1}
	if err := repos.Lecture.Create(ctx, s.Lecture); err != nil {
		return nil, err
	}

	unit := func(lectureID, name string, t model.UnitType, progressable bool) (*model.Unit, error) {
		u := &model.Unit{LectureID: lectureID, Name: name, Type: t, Progressable: progressable}
		if err := repos.Unit.Create(ctx, u); err != nil {
			return nil, fmt.Errorf("create unit %s: %w", name, err)
		}
		return u, nil
	}
	if s.CodeKata, err = unit(s.Lecture.ID, "FizzBuzz", model.UnitCodeKata, true); err != nil {
		return nil, err
	}
	if s.Task, err = unit(s.Lecture.ID, "Quiz: loops", model.UnitTask, true); err != nil {
		return nil, err
	}
	if s.Video, err = unit(s.Lecture.ID, "Welcome video", model.UnitVideo, false); err != nil {
		return nil, err
	}

	s.OtherCourse = &model.Course{
		Name:      "Algorithms",
		TeacherID: s.Teacher.ID,
		Students:  []string{s.Student.ID},
	}
	if err := repos.Course.Create(ctx, s.OtherCourse); err != nil {
		return nil, err
	}
	otherLecture := &model.Lecture{CourseID: s.OtherCourse.ID, Name: "Sorting", Order: 1}
	if err := repos.Lecture.Create(ctx, otherLecture); err != nil {
		return nil, err
	}
	if s.OtherUnit, err = unit(otherLecture.ID, "Bubble sort", model.UnitCodeKata, true); err != nil {
		return nil, err
	}

	return s, nil
}
