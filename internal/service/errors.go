package service

import "errors"

var (
	ErrCourseNotFound    = errors.New("course not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidFieldValue = errors.New("invalid field value")
	ErrInvalidCSV        = errors.New("invalid csv file")
)
