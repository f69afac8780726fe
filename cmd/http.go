package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/cobra"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/oseayemenre/readinglist/docs"
	"github.com/oseayemenre/readinglist/internal/api"
	"github.com/oseayemenre/readinglist/internal/config"
	"github.com/oseayemenre/readinglist/internal/logger"
	"github.com/oseayemenre/readinglist/internal/ratelimit"
	"github.com/oseayemenre/readinglist/internal/service"
	"github.com/oseayemenre/readinglist/internal/store"
)

type Server struct {
	logger logger.Logger
	store  store.Store
	config *config.Config
}

func NewServer(logger logger.Logger, store store.Store, config *config.Config) *Server {
	return &Server{
		logger: logger,
		store:  store,
		config: config,
	}
}

func (s *Server) Mount() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.config.AllowedOrigins(),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	if s.config.Env == "dev" {
		r.Group(func(r chi.Router) {
			if s.config.Docs_username != "" && s.config.Docs_password != "" {
				r.Use(middleware.BasicAuth("docs", map[string]string{
					s.config.Docs_username: s.config.Docs_password,
				}))
			}
			r.Get("/swagger/*", httpSwagger.WrapHandler)
		})
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("woosh! 🚀🚀\n"))
	})

	api.New(
		r,
		s.logger,
		service.NewBookService(s.store),
		service.NewReadingService(s.store),
		service.NewAuthService(s.store, s.config.Jwt_secret, s.config.Jwt_expires_in),
		ratelimit.New(s.config.Rate_limit_rps, s.config.Rate_limit_burst),
		s.config,
	).RegisterRoutes()

	return r
}

// openStore returns the configured store and a func releasing it.
func openStore(ctx context.Context, kind string, cfg *config.Config) (store.Store, func() error, error) {
	switch kind {
	case "memory":
		return store.NewMemoryStore(), func() error { return nil }, nil
	case "postgres":
		if cfg.Database_url == "" {
			return nil, nil, fmt.Errorf("DATABASE_URL is required for the postgres store")
		}

		db, err := store.NewPostgresStore(ctx, cfg.Database_url)

		if err != nil {
			return nil, nil, err
		}

		return db, db.Close, nil
	default:
		return nil, nil, fmt.Errorf("store can only be postgres or memory")
	}
}

func HTTPCommand(ctx context.Context) *cobra.Command {
	var addr int
	var env string
	var storeKind string

	cmd := &cobra.Command{
		Use:   "http",
		Short: "run readinglist http server",
		RunE: func(cmd *cobra.Command, args []string) error {
			sig := make(chan os.Signal, 1)
			signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

			cfg, err := config.Load()

			if err != nil {
				return err
			}

			if cmd.Flags().Changed("env") || cfg.Env == "" {
				cfg.Env = env
			}

			if cmd.Flags().Changed("addr") {
				cfg.Port = addr
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := logger.New(os.Stderr, cfg.Env)

			if err != nil {
				return err
			}

			db, closeStore, err := openStore(ctx, storeKind, cfg)

			if err != nil {
				return err
			}
			defer closeStore()

			httpServer := &http.Server{
				Addr:        fmt.Sprintf(":%d", cfg.Port),
				Handler:     NewServer(logger, db, cfg).Mount(),
				IdleTimeout: 15 * time.Minute,
			}
			errCh := make(chan error, 1)

			logger.Info("server startup", "status", fmt.Sprintf("server starting on port: %d", cfg.Port), "store", storeKind)
			go func() {
				if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
			}()

			select {
			case err := <-errCh:
				return err

			case <-sig:
				logger.Info("server shutdown", "status", "kill signal received")
				ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return fmt.Errorf("error shutting down server: %v", err)
				}

				logger.Info("server shutdown", "status", "shutdown complete...")
				return nil
			}
		},
	}

	cmd.Flags().IntVarP(&addr, "addr", "a", 8080, "server port, overrides PORT")
	cmd.Flags().StringVarP(&env, "env", "e", "dev", "current working environment, overrides ENV")
	cmd.Flags().StringVarP(&storeKind, "store", "s", "postgres", "storage backend: postgres or memory")

	return cmd
}
