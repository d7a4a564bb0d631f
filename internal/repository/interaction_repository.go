package repository

import (
	"time"

	"ossu_arabic_backend/internal/model"

	"gorm.io/gorm"
)

// InteractionRepository writes the ai_interactions audit rows. Logging is
// best-effort; a nil DB (degraded mode, tests) is a no-op.
type InteractionRepository struct {
	DB *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) *InteractionRepository {
	return &InteractionRepository{DB: db}
}

func (r *InteractionRepository) Log(rec *model.AIInteraction) error {
	if r.DB == nil {
		return nil
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now()
	}
	return r.DB.Create(rec).Error
}
