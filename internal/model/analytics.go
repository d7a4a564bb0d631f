package model

import (
	"time"
)

// Reserved schema: declared and migrated alongside the exercised tables.
// Only AIInteraction is currently written (best-effort chat logging); the
// rest back future dashboard features.

type CourseCompletion struct {
	ID                uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID            string    `gorm:"size:64;not null;uniqueIndex:idx_user_course_completion" json:"userId"`
	CourseID          string    `gorm:"size:100;not null;uniqueIndex:idx_user_course_completion" json:"courseId"`
	CompletedAt       time.Time `json:"completedAt"`
	FinalScore        int       `json:"finalScore"`
	CertificateIssued bool      `gorm:"default:false" json:"certificateIssued"`
}

func (CourseCompletion) TableName() string {
	return "course_completions"
}

type LearningSession struct {
	ID                 uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID             string     `gorm:"size:64;index;not null" json:"userId"`
	SessionStart       time.Time  `json:"sessionStart"`
	SessionEnd         *time.Time `json:"sessionEnd,omitempty"`
	Duration           int        `json:"duration"`
	CoursesAccessed    string     `gorm:"type:text" json:"coursesAccessed"`
	LessonsCompleted   int        `gorm:"default:0" json:"lessonsCompleted"`
	ExercisesCompleted int        `gorm:"default:0" json:"exercisesCompleted"`
}

func (LearningSession) TableName() string {
	return "learning_sessions"
}

type AIInteraction struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       string    `gorm:"size:64;index;not null" json:"userId"`
	SessionID    string    `gorm:"size:100" json:"sessionId"`
	MessageType  string    `gorm:"size:50" json:"messageType"`
	UserMessage  string    `gorm:"type:text" json:"userMessage"`
	AIResponse   string    `gorm:"type:text" json:"aiResponse"`
	Timestamp    time.Time `json:"timestamp"`
	ResponseTime int       `json:"responseTime"` // milliseconds
}

func (AIInteraction) TableName() string {
	return "ai_interactions"
}

type UserAchievement struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          string    `gorm:"size:64;index;not null" json:"userId"`
	AchievementType string    `gorm:"size:100;not null" json:"achievementType"`
	AchievementData string    `gorm:"type:text" json:"achievementData"`
	EarnedAt        time.Time `json:"earnedAt"`
	Points          int       `gorm:"default:0" json:"points"`
}

func (UserAchievement) TableName() string {
	return "user_achievements"
}
