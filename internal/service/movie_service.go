package service

import (
	"context"
	"strings"

	"movie-catalog-api/internal/model"
)

type MovieStore interface {
	List(ctx context.Context) ([]model.Movie, error)
	FindByID(ctx context.Context, id int) (model.Movie, error)
	Search(ctx context.Context, term string) ([]model.Movie, error)
	ListByCategory(ctx context.Context, categoryID int) ([]model.Movie, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, m model.Movie) (model.Movie, error)
	Update(ctx context.Context, m model.Movie) error
	Delete(ctx context.Context, id int) error
}

type MovieService struct {
	movies MovieStore
}

func NewMovieService(movies MovieStore) *MovieService {
	return &MovieService{movies: movies}
}

func (s *MovieService) List(ctx context.Context) ([]model.Movie, error) {
	return s.movies.List(ctx)
}

func (s *MovieService) Get(ctx context.Context, id int) (model.Movie, error) {
	return s.movies.FindByID(ctx, id)
}

func (s *MovieService) Search(ctx context.Context, term string) ([]model.Movie, error) {
	if strings.TrimSpace(term) == "" {
		return s.movies.List(ctx)
	}
	return s.movies.Search(ctx, term)
}

func (s *MovieService) ListByCategory(ctx context.Context, categoryID int) ([]model.Movie, error) {
	return s.movies.ListByCategory(ctx, categoryID)
}

func (s *MovieService) Create(ctx context.Context, req model.MovieRequest) (model.Movie, error) {
	movie, err := movieFromRequest(req)
	if err != nil {
		return model.Movie{}, err
	}

	exists, err := s.movies.ExistsByName(ctx, movie.Name)
	if err != nil {
		return model.Movie{}, err
	}
	if exists {
		return model.Movie{}, model.ErrMovieAlreadyExists
	}

	return s.movies.Create(ctx, movie)
}

func (s *MovieService) Update(ctx context.Context, id int, req model.MovieRequest) (model.Movie, error) {
	movie, err := movieFromRequest(req)
	if err != nil {
		return model.Movie{}, err
	}
	movie.ID = id

	if err := s.movies.Update(ctx, movie); err != nil {
		return model.Movie{}, err
	}

	return s.movies.FindByID(ctx, id)
}

func (s *MovieService) Delete(ctx context.Context, id int) error {
	return s.movies.Delete(ctx, id)
}

func movieFromRequest(req model.MovieRequest) (model.Movie, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || req.CategoryID <= 0 || req.Duration < 0 {
		return model.Movie{}, model.ErrInvalidInput
	}
	if !req.Classification.Valid() {
		return model.Movie{}, model.ErrInvalidInput
	}

	return model.Movie{
		Name:           name,
		ImagePath:      strings.TrimSpace(req.ImagePath),
		Description:    req.Description,
		Duration:       req.Duration,
		Classification: req.Classification,
		CategoryID:     req.CategoryID,
	}, nil
}
