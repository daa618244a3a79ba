package util

import (
	"errors"
	"net/http"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrCourseNotFound      = errors.New("course not found")
	ErrUnitNotFound        = errors.New("unit not found")
	ErrProgressNotFound    = errors.New("progress not found")
	ErrInvalidProgress     = errors.New("course, unit, user and a valid type are required")
	ErrUnitNotProgressable = errors.New("unit is not progressable")
	ErrUnitNotInCourse     = errors.New("unit does not belong to course")
	ErrTypeMismatch        = errors.New("progress type does not match unit type")
	ErrNotEnrolled         = errors.New("user is not enrolled in course")
	ErrPastDeadline        = errors.New("Past deadline, no further update possible")
	ErrProgressImmutable   = errors.New("course, unit and user of a progress record cannot be changed")
)

// 业务错误 -> HTTP 状态码，按顺序匹配
var errorStatus = []struct {
	err    error
	status int
}{
	{ErrPastDeadline, http.StatusBadRequest},
	{ErrInvalidProgress, http.StatusBadRequest},
	{ErrUnitNotProgressable, http.StatusBadRequest},
	{ErrUnitNotInCourse, http.StatusBadRequest},
	{ErrTypeMismatch, http.StatusBadRequest},
	{ErrProgressImmutable, http.StatusBadRequest},
	{ErrInvalidCredentials, http.StatusUnauthorized},
	{ErrPermissionDenied, http.StatusForbidden},
	{ErrNotEnrolled, http.StatusForbidden},
	{ErrUserNotFound, http.StatusNotFound},
	{ErrCourseNotFound, http.StatusNotFound},
	{ErrUnitNotFound, http.StatusNotFound},
	{ErrProgressNotFound, http.StatusNotFound},
}

// Classify 返回业务错误对应的状态码和对外消息，未知错误返回 false
func Classify(err error) (int, string, bool) {
	for _, e := range errorStatus {
		if errors.Is(err, e.err) {
			return e.status, e.err.Error(), true
		}
	}
	return 0, "", false
}
