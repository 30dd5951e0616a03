package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"movie-catalog-api/internal/model"
)

// memUserStore mimics the Postgres user repository, including the unique
// index on lower(username): Create is atomic and at most one insert per
// username wins.
type memUserStore struct {
	mu     sync.Mutex
	nextID int
	users  map[string]model.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{nextID: 1, users: map[string]model.User{}}
}

func (s *memUserStore) FindByID(_ context.Context, id int) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, model.ErrUserNotFound
}

func (s *memUserStore) FindByUsername(_ context.Context, username string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[strings.ToLower(strings.TrimSpace(username))]
	if !ok {
		return model.User{}, model.ErrUserNotFound
	}
	return u, nil
}

func (s *memUserStore) ExistsByUsername(_ context.Context, username string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.users[strings.ToLower(strings.TrimSpace(username))]
	return ok, nil
}

func (s *memUserStore) Create(_ context.Context, u model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(u.Username)
	if _, ok := s.users[key]; ok {
		return model.User{}, model.ErrUserAlreadyExists
	}

	u.ID = s.nextID
	u.CreatedAt = time.Now().UTC()
	s.nextID++
	s.users[key] = u
	return u, nil
}

func (s *memUserStore) List(_ context.Context) ([]model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users, nil
}

func (s *memUserStore) count(username string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for key := range s.users {
		if key == strings.ToLower(username) {
			n++
		}
	}
	return n
}

type memCategoryStore struct {
	mu         sync.Mutex
	nextID     int
	categories map[int]model.Category
	movieRefs  map[int]int
}

func newMemCategoryStore() *memCategoryStore {
	return &memCategoryStore{nextID: 1, categories: map[int]model.Category{}, movieRefs: map[int]int{}}
}

func (s *memCategoryStore) List(_ context.Context) ([]model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memCategoryStore) FindByID(_ context.Context, id int) (model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.categories[id]
	if !ok {
		return model.Category{}, model.ErrCategoryNotFound
	}
	return c, nil
}

func (s *memCategoryStore) ExistsByName(_ context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.categories {
		if strings.EqualFold(c.Name, strings.TrimSpace(name)) {
			return true, nil
		}
	}
	return false, nil
}

func (s *memCategoryStore) Create(_ context.Context, c model.Category) (model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.categories {
		if strings.EqualFold(existing.Name, c.Name) {
			return model.Category{}, model.ErrCategoryAlreadyExists
		}
	}

	c.ID = s.nextID
	c.CreatedAt = time.Now().UTC()
	s.nextID++
	s.categories[c.ID] = c
	return c, nil
}

func (s *memCategoryStore) Update(_ context.Context, c model.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.categories[c.ID]
	if !ok {
		return model.ErrCategoryNotFound
	}
	existing.Name = c.Name
	s.categories[c.ID] = existing
	return nil
}

func (s *memCategoryStore) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[id]; !ok {
		return model.ErrCategoryNotFound
	}
	if s.movieRefs[id] > 0 {
		return model.ErrCategoryInUse
	}
	delete(s.categories, id)
	return nil
}

type memMovieStore struct {
	mu         sync.Mutex
	nextID     int
	movies     map[int]model.Movie
	categories *memCategoryStore
}

func newMemMovieStore(categories *memCategoryStore) *memMovieStore {
	return &memMovieStore{nextID: 1, movies: map[int]model.Movie{}, categories: categories}
}

func (s *memMovieStore) List(_ context.Context) ([]model.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedLocked(func(model.Movie) bool { return true }), nil
}

func (s *memMovieStore) FindByID(_ context.Context, id int) (model.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.movies[id]
	if !ok {
		return model.Movie{}, model.ErrMovieNotFound
	}
	return m, nil
}

func (s *memMovieStore) Search(_ context.Context, term string) ([]model.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	needle := strings.ToLower(strings.TrimSpace(term))
	return s.sortedLocked(func(m model.Movie) bool {
		return strings.Contains(strings.ToLower(m.Name), needle) ||
			strings.Contains(strings.ToLower(m.Description), needle)
	}), nil
}

func (s *memMovieStore) ListByCategory(_ context.Context, categoryID int) ([]model.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedLocked(func(m model.Movie) bool { return m.CategoryID == categoryID }), nil
}

func (s *memMovieStore) ExistsByName(_ context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.movies {
		if strings.EqualFold(m.Name, strings.TrimSpace(name)) {
			return true, nil
		}
	}
	return false, nil
}

func (s *memMovieStore) Create(_ context.Context, m model.Movie) (model.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.categories != nil {
		if _, err := s.categories.FindByID(context.Background(), m.CategoryID); err != nil {
			return model.Movie{}, model.ErrCategoryNotFound
		}
	}

	m.ID = s.nextID
	m.CreatedAt = time.Now().UTC()
	s.nextID++
	s.movies[m.ID] = m
	if s.categories != nil {
		s.categories.mu.Lock()
		s.categories.movieRefs[m.CategoryID]++
		s.categories.mu.Unlock()
	}
	return m, nil
}

func (s *memMovieStore) Update(_ context.Context, m model.Movie) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.movies[m.ID]
	if !ok {
		return model.ErrMovieNotFound
	}
	m.CreatedAt = existing.CreatedAt
	s.movies[m.ID] = m
	return nil
}

func (s *memMovieStore) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.movies[id]
	if !ok {
		return model.ErrMovieNotFound
	}
	delete(s.movies, id)
	if s.categories != nil {
		s.categories.mu.Lock()
		s.categories.movieRefs[m.CategoryID]--
		s.categories.mu.Unlock()
	}
	return nil
}

func (s *memMovieStore) sortedLocked(keep func(model.Movie) bool) []model.Movie {
	out := make([]model.Movie, 0, len(s.movies))
	for _, m := range s.movies {
		if keep(m) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
