package document

import (
	"context"
)

// Service is the read side of the document store: listing and lookup. The
// downstream export envelope is built in the export package on top of List.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, id string) (*Document, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Document, error) {
	return s.repo.List(ctx)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

func (s *Service) CountSkipped(ctx context.Context) (int, error) {
	return s.repo.CountSkipped(ctx)
}
