package catalog

import (
	"context"

	"github.com/dmitrijs2005/merchkeeper/internal/common"
)

// Service fronts the catalog repository for the route handlers.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListItems(ctx context.Context, kind string) ([]Item, error) {
	return s.repo.ListItems(ctx, kind)
}

func (s *Service) ListSaved(ctx context.Context, userID int64) ([]Item, error) {
	return s.repo.ListSaved(ctx, userID)
}

// SaveItems saves catalog items for the user and returns the newly inserted
// ids. An empty id list is a validation error; saving only already-saved
// items yields common.ErrorNotFound, mirroring the "nothing inserted" answer
// of the catalog routes.
func (s *Service) SaveItems(ctx context.Context, userID int64, itemIDs []int64) ([]int64, error) {
	if len(itemIDs) == 0 {
		return nil, common.ErrorValidation
	}

	inserted, err := s.repo.SaveItems(ctx, userID, itemIDs)
	if err != nil {
		return nil, err
	}
	if len(inserted) == 0 {
		return nil, common.ErrorNotFound
	}
	return inserted, nil
}

// DeleteSaved removes saved items; deleting nothing yields
// common.ErrorNotFound.
func (s *Service) DeleteSaved(ctx context.Context, userID int64, itemIDs []int64) (int64, error) {
	if len(itemIDs) == 0 {
		return 0, common.ErrorValidation
	}

	deleted, err := s.repo.DeleteSaved(ctx, userID, itemIDs)
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, common.ErrorNotFound
	}
	return deleted, nil
}
