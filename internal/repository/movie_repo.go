package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"movie-catalog-api/internal/model"
)

type MovieRepository struct {
	pool *pgxpool.Pool
}

func NewMovieRepository(pool *pgxpool.Pool) *MovieRepository {
	return &MovieRepository{pool: pool}
}

const movieColumns = `id, name, image_path, description, duration, classification, category_id, created_at`

func scanMovie(row pgx.Row) (model.Movie, error) {
	var m model.Movie
	err := row.Scan(&m.ID, &m.Name, &m.ImagePath, &m.Description,
		&m.Duration, &m.Classification, &m.CategoryID, &m.CreatedAt)
	return m, err
}

func (r *MovieRepository) List(ctx context.Context) ([]model.Movie, error) {
	return r.queryMovies(ctx,
		`SELECT `+movieColumns+` FROM movies ORDER BY id`)
}

func (r *MovieRepository) FindByID(ctx context.Context, id int) (model.Movie, error) {
	m, err := scanMovie(r.pool.QueryRow(ctx,
		`SELECT `+movieColumns+` FROM movies WHERE id = $1`, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Movie{}, model.ErrMovieNotFound
	}
	if err != nil {
		return model.Movie{}, fmt.Errorf("find movie by id: %w", err)
	}
	return m, nil
}

// Search matches the term against movie names and descriptions,
// case-insensitively.
func (r *MovieRepository) Search(ctx context.Context, term string) ([]model.Movie, error) {
	pattern := "%" + strings.TrimSpace(term) + "%"
	return r.queryMovies(ctx,
		`SELECT `+movieColumns+` FROM movies
		 WHERE name ILIKE $1 OR description ILIKE $1
		 ORDER BY id`, pattern)
}

func (r *MovieRepository) ListByCategory(ctx context.Context, categoryID int) ([]model.Movie, error) {
	return r.queryMovies(ctx,
		`SELECT `+movieColumns+` FROM movies WHERE category_id = $1 ORDER BY id`,
		categoryID)
}

func (r *MovieRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM movies WHERE lower(name) = lower($1))`,
		strings.TrimSpace(name)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check movie exists: %w", err)
	}
	return exists, nil
}

func (r *MovieRepository) Create(ctx context.Context, m model.Movie) (model.Movie, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO movies (name, image_path, description, duration, classification, category_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		m.Name, m.ImagePath, m.Description, m.Duration, m.Classification, m.CategoryID).
		Scan(&m.ID, &m.CreatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return model.Movie{}, model.ErrMovieAlreadyExists
		case foreignKeyViolation:
			return model.Movie{}, model.ErrCategoryNotFound
		}
	}
	if err != nil {
		return model.Movie{}, fmt.Errorf("create movie: %w", err)
	}
	return m, nil
}

func (r *MovieRepository) Update(ctx context.Context, m model.Movie) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE movies
		 SET name = $2, image_path = $3, description = $4, duration = $5,
		     classification = $6, category_id = $7, created_at = now()
		 WHERE id = $1`,
		m.ID, m.Name, m.ImagePath, m.Description, m.Duration, m.Classification, m.CategoryID)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return model.ErrMovieAlreadyExists
		case foreignKeyViolation:
			return model.ErrCategoryNotFound
		}
	}
	if err != nil {
		return fmt.Errorf("update movie: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrMovieNotFound
	}
	return nil
}

func (r *MovieRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movie: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrMovieNotFound
	}
	return nil
}

func (r *MovieRepository) queryMovies(ctx context.Context, sql string, args ...any) ([]model.Movie, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query movies: %w", err)
	}
	defer rows.Close()

	movies := make([]model.Movie, 0)
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		movies = append(movies, m)
	}
	return movies, rows.Err()
}
