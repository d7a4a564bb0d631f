package service

import (
	"context"
	"encoding/json"

	"ossu_arabic_backend/internal/curriculum"
	"ossu_arabic_backend/internal/repository"
)

// CatalogService serves the curriculum document: admin override first,
// then the Redis-cached serialization, then the static catalog.
type CatalogService struct {
	repo *repository.CatalogRepository
}

func NewCatalogService(repo *repository.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// Document returns the serialized full catalog.
func (s *CatalogService) Document(ctx context.Context) ([]byte, error) {
	if doc, ok := s.repo.GetOverride(ctx); ok {
		return doc, nil
	}
	if doc, ok := s.repo.GetCached(ctx); ok {
		return doc, nil
	}

	doc, err := json.Marshal(curriculum.All())
	if err != nil {
		return nil, err
	}
	// Soft cache; a write failure only costs the next reader a marshal.
	s.repo.PutCached(ctx, doc)
	return doc, nil
}

// FindCourse looks a course up in the static catalog.
func (s *CatalogService) FindCourse(id string) (curriculum.Course, bool) {
	return curriculum.FindByID(id)
}

// Replace stores an administrative full-document replacement.
func (s *CatalogService) Replace(ctx context.Context, doc interface{}) error {
	return s.repo.PutOverride(ctx, doc)
}
