package repository

import (
	"time"

	"ossu_arabic_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProgressRepository owns the authoritative user_progress rows. The unique
// (user_id, course_id, lesson_id) constraint makes the upsert the
// reconciliation point for concurrent writers.
type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) Upsert(rec *model.UserProgress) error {
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now()
	}
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "course_id"}, {Name: "lesson_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"progress", "completed", "time_spent", "timestamp",
		}),
	}).Create(rec).Error
}

func (r *ProgressRepository) FindByUser(userID string) ([]model.UserProgress, error) {
	var rows []model.UserProgress
	err := r.DB.Where("user_id = ?", userID).Find(&rows).Error
	return rows, err
}

func (r *ProgressRepository) FindByUserAndCourse(userID, courseID string) ([]model.UserProgress, error) {
	var rows []model.UserProgress
	err := r.DB.Where("user_id = ? AND course_id = ?", userID, courseID).
		Order("timestamp DESC").
		Find(&rows).Error
	return rows, err
}

// BuildMapping folds relational rows into the whole-blob cache shape.
func BuildMapping(rows []model.UserProgress) model.ProgressMapping {
	mapping := model.ProgressMapping{}
	for _, row := range rows {
		course, ok := mapping[row.CourseID]
		if !ok {
			course = map[string]model.LessonProgress{}
			mapping[row.CourseID] = course
		}
		course[row.LessonID] = model.LessonProgress{
			Progress:  row.Progress,
			Completed: row.Completed,
			Timestamp: row.Timestamp,
			TimeSpent: row.TimeSpent,
		}
	}
	return mapping
}
