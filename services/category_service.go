package services

import (
	"context"

	"github.com/orgmatch/orgmatch/models"
	"github.com/orgmatch/orgmatch/utils"
)

type CategoryLister interface {
	ListActive(ctx context.Context) ([]models.Category, error)
}

type CategoryService struct {
	store CategoryLister
}

func CreateCategoryService(store CategoryLister) *CategoryService {
	return &CategoryService{store: store}
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	categories, err := s.store.ListActive(ctx)
	if err != nil {
		return nil, utils.WrapAPIError(err, utils.ErrDatabaseQuery)
	}
	return categories, nil
}
