package util

import "errors"

var (
	ErrUserNotFound    = errors.New("User not found")
	ErrUserExists      = errors.New("Username or email already exists")
	ErrSessionNotFound = errors.New("Session not found")
	ErrCourseNotFound  = errors.New("Course not found")
	ErrFileNotFound    = errors.New("File not found")
	ErrNoChoices       = errors.New("AI returned no choices")
)
