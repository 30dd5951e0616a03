package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"movie-catalog-api/internal/config"
	"movie-catalog-api/internal/handler"
	"movie-catalog-api/internal/middleware"
	"movie-catalog-api/internal/model"
)

type Handlers struct {
	Auth     *handler.AuthHandler
	User     *handler.UserHandler
	Category *handler.CategoryHandler
	Movie    *handler.MovieHandler
}

// New builds the HTTP surface. Catalog reads are public; every mutation
// goes through the authorization gate with the admin role.
func New(cfg *config.Config, authMiddleware *middleware.AuthMiddleware, h Handlers, health http.HandlerFunc) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.SecurityHeaders)

	r.Get("/health", health)

	r.Route("/api/v1", func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout))

		api.Route("/auth", func(auth chi.Router) {
			auth.Post("/register", h.Auth.Register)
			auth.Post("/login", h.Auth.Login)
			auth.With(authMiddleware.RequireAuth).Get("/me", h.Auth.Me)
		})

		admin := []func(http.Handler) http.Handler{
			authMiddleware.RequireAuth,
			authMiddleware.RequireRoles(model.RoleAdmin),
		}

		api.Route("/users", func(users chi.Router) {
			users.With(admin...).Get("/", h.User.List)
			users.With(admin...).Get("/{userID}", h.User.Get)
		})

		api.Route("/categories", func(categories chi.Router) {
			categories.Get("/", h.Category.List)
			categories.Get("/{categoryID}", h.Category.Get)
			categories.With(admin...).Post("/", h.Category.Create)
			categories.With(admin...).Patch("/{categoryID}", h.Category.Update)
			categories.With(admin...).Delete("/{categoryID}", h.Category.Delete)
		})

		api.Route("/movies", func(movies chi.Router) {
			movies.Get("/", h.Movie.List)
			movies.Get("/search", h.Movie.Search)
			movies.Get("/category/{categoryID}", h.Movie.ListByCategory)
			movies.Get("/{movieID}", h.Movie.Get)
			movies.With(admin...).Post("/", h.Movie.Create)
			movies.With(admin...).Put("/{movieID}", h.Movie.Update)
			movies.With(admin...).Delete("/{movieID}", h.Movie.Delete)
		})
	})

	return r
}
