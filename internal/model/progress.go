package model

import (
	"time"
)

// UserProgress is one (user, course, lesson) record. The relational row is
// the source of truth; the Redis blob keyed progress:{userId} is a derived
// view rebuilt from these rows.
// swagger:model UserProgress
type UserProgress struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"size:64;index;not null;uniqueIndex:idx_user_course_lesson" json:"userId"`
	CourseID  string    `gorm:"size:100;index;not null;uniqueIndex:idx_user_course_lesson" json:"courseId"`
	LessonID  string    `gorm:"size:100;not null;uniqueIndex:idx_user_course_lesson" json:"lessonId"`
	Progress  int       `gorm:"default:0" json:"progress"`
	Completed bool      `gorm:"default:false" json:"completed"`
	TimeSpent int       `gorm:"default:0" json:"timeSpent"`
	Timestamp time.Time `json:"timestamp"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}

// LessonProgress is the per-lesson entry inside the cached mapping.
type LessonProgress struct {
	Progress  int       `json:"progress"`
	Completed bool      `json:"completed"`
	Timestamp time.Time `json:"timestamp"`
	TimeSpent int       `json:"timeSpent,omitempty"`
}

// ProgressMapping is courseId -> lessonId -> record, the whole-blob shape
// stored in the cache and consumed by the aggregator.
type ProgressMapping map[string]map[string]LessonProgress

// CourseRow is the wire shape of a per-course relational read.
type CourseRow struct {
	LessonID  string    `json:"lesson_id"`
	Progress  int       `json:"progress"`
	Completed bool      `json:"completed"`
	Timestamp time.Time `json:"timestamp"`
}
