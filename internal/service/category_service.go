package service

import (
	"context"
	"strings"

	"movie-catalog-api/internal/model"
)

type CategoryStore interface {
	List(ctx context.Context) ([]model.Category, error)
	FindByID(ctx context.Context, id int) (model.Category, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, c model.Category) (model.Category, error)
	Update(ctx context.Context, c model.Category) error
	Delete(ctx context.Context, id int) error
}

type CategoryService struct {
	categories CategoryStore
}

func NewCategoryService(categories CategoryStore) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.categories.List(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id int) (model.Category, error) {
	return s.categories.FindByID(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, name string) (model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Category{}, model.ErrInvalidInput
	}

	exists, err := s.categories.ExistsByName(ctx, name)
	if err != nil {
		return model.Category{}, err
	}
	if exists {
		return model.Category{}, model.ErrCategoryAlreadyExists
	}

	return s.categories.Create(ctx, model.Category{Name: name})
}

func (s *CategoryService) Update(ctx context.Context, id int, name string) (model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Category{}, model.ErrInvalidInput
	}

	if err := s.categories.Update(ctx, model.Category{ID: id, Name: name}); err != nil {
		return model.Category{}, err
	}

	return s.categories.FindByID(ctx, id)
}

func (s *CategoryService) Delete(ctx context.Context, id int) error {
	return s.categories.Delete(ctx, id)
}
