package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/oseayemenre/readinglist/internal/config"
	"github.com/oseayemenre/readinglist/internal/logger"
	"github.com/oseayemenre/readinglist/internal/models"
	"github.com/oseayemenre/readinglist/internal/ratelimit"
	"github.com/oseayemenre/readinglist/internal/service"
)

type Api struct {
	router  *chi.Mux
	logger  logger.Logger
	books   *service.BookService
	reading *service.ReadingService
	auth    *service.AuthService
	limiter *ratelimit.KeyedRateLimiter
	config  *config.Config
}

func New(
	router *chi.Mux,
	logger logger.Logger,
	books *service.BookService,
	reading *service.ReadingService,
	auth *service.AuthService,
	limiter *ratelimit.KeyedRateLimiter,
	config *config.Config,
) *Api {
	return &Api{
		router:  router,
		logger:  logger,
		books:   books,
		reading: reading,
		auth:    auth,
		limiter: limiter,
		config:  config,
	}
}

func (a *Api) RegisterRoutes() {
	a.router.Group(func(r chi.Router) {
		r.Use(a.LoggingMiddleware)

		r.Route("/auth", func(r chi.Router) {
			r.Use(a.RateLimit)
			r.Post("/register", a.HandleRegister)
			r.Post("/login", a.HandleLogin)
		})

		r.Group(func(r chi.Router) {
			r.Use(a.Authenticate)

			r.Route("/admin/book", func(r chi.Router) {
				r.Use(a.RequireRole(models.RoleAdmin))
				r.Get("/", a.HandleListBooks)
				r.Post("/", a.HandleCreateBook)
				r.Put("/{id}", a.HandleUpdateBook)
				r.Delete("/{id}", a.HandleDeleteBook)
			})

			r.Route("/user/book", func(r chi.Router) {
				r.Use(a.RequireRole(models.RoleUser))
				r.Get("/", a.HandleListBooks)
				r.Get("/top", a.HandleGetTopBooks)
				r.Get("/intervals/{id}", a.HandleGetIntervals)
				r.Post("/interval", a.HandleCreateInterval)
				r.Put("/interval/{id}", a.HandleUpdateInterval)
			})
		})
	})
}
