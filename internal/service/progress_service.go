package service

import (
	"context"

	"ossu_arabic_backend/internal/model"
	"ossu_arabic_backend/internal/repository"
	"ossu_arabic_backend/pkg/logger"

	"go.uber.org/zap"
)

// ProgressService implements the dual-store contract: relational rows are
// the source of truth, the Redis blob a best-effort read accelerator that
// is rebuilt from the rows after every write and on every cache miss.
type ProgressService struct {
	repo  *repository.ProgressRepository
	cache *repository.ProgressCache
}

func NewProgressService(repo *repository.ProgressRepository, cache *repository.ProgressCache) *ProgressService {
	return &ProgressService{repo: repo, cache: cache}
}

// Get returns the whole mapping, preferring the cache and reconstructing
// from relational rows when it is absent.
func (s *ProgressService) Get(ctx context.Context, userID string) (model.ProgressMapping, error) {
	if mapping, ok := s.cache.Get(ctx, userID); ok {
		return mapping, nil
	}
	return s.refreshCache(ctx, userID)
}

// GetCourseRows returns the authoritative per-course rows, newest first.
func (s *ProgressService) GetCourseRows(ctx context.Context, userID, courseID string) ([]model.CourseRow, error) {
	rows, err := s.repo.FindByUserAndCourse(userID, courseID)
	if err != nil {
		return nil, err
	}
	out := make([]model.CourseRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.CourseRow{
			LessonID:  row.LessonID,
			Progress:  row.Progress,
			Completed: row.Completed,
			Timestamp: row.Timestamp,
		})
	}
	return out, nil
}

// Update upserts one (course, lesson) record relationally, then replaces
// the cached blob with the merged view.
func (s *ProgressService) Update(ctx context.Context, rec *model.UserProgress) error {
	if err := s.repo.Upsert(rec); err != nil {
		return err
	}
	if _, err := s.refreshCache(ctx, rec.UserID); err != nil {
		// Cache is soft state; the authoritative write already landed.
		logger.Log.Warn("progress cache refresh failed",
			zap.String("userId", rec.UserID), zap.Error(err))
	}
	return nil
}

// BatchUpdate applies an ordered batch of upserts, rebuilding the cache
// once at the end.
func (s *ProgressService) BatchUpdate(ctx context.Context, userID string, recs []model.UserProgress) (int, error) {
	for i := range recs {
		recs[i].UserID = userID
		if err := s.repo.Upsert(&recs[i]); err != nil {
			return i, err
		}
	}
	if _, err := s.refreshCache(ctx, userID); err != nil {
		logger.Log.Warn("progress cache refresh failed",
			zap.String("userId", userID), zap.Error(err))
	}
	return len(recs), nil
}

// refreshCache is the single reconciliation helper shared by the read and
// write paths: rows -> mapping -> whole-blob overwrite.
func (s *ProgressService) refreshCache(ctx context.Context, userID string) (model.ProgressMapping, error) {
	rows, err := s.repo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	mapping := repository.BuildMapping(rows)
	if err := s.cache.Put(ctx, userID, mapping); err != nil {
		logger.Log.Warn("progress cache write failed",
			zap.String("userId", userID), zap.Error(err))
	}
	return mapping, nil
}
