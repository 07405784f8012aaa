package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/goliatone/go-htmx-mvc/internal/config"
	"github.com/goliatone/go-htmx-mvc/internal/controllers"
	"github.com/goliatone/go-htmx-mvc/internal/logging"
	"github.com/goliatone/go-htmx-mvc/internal/reload"
	"github.com/goliatone/go-htmx-mvc/internal/store"
	"github.com/goliatone/go-htmx-mvc/pkg/mvc"
	"github.com/goliatone/go-htmx-mvc/pkg/render"
	"github.com/goliatone/go-htmx-mvc/pkg/validation"
)

// SiteName is shown in the layout.
const SiteName = "HTMX MVC"

// Option customises New.
type Option func(*Server)

// WithPersonStore replaces the sqlite store, mainly for tests.
func WithPersonStore(people controllers.PersonStore) Option {
	return func(s *Server) {
		s.people = people
	}
}

// Server is the assembled application.
type Server struct {
	cfg     config.Config
	logger  *zap.Logger
	views   *Views
	people  controllers.PersonStore
	closers []func() error
	handler http.Handler
	watcher *reload.Watcher
}

// New wires templates, views, storage, controllers and middleware from cfg.
func New(cfg config.Config, logger *zap.Logger, opts ...Option) (_ *Server, err error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{cfg: cfg, logger: logger}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(s)
	}
	defer func() {
		if err != nil {
			_ = s.Close()
		}
	}()

	globals, err := Globals(cfg)
	if err != nil {
		return nil, err
	}
	views, err := BuildViews(cfg.Views, globals)
	if err != nil {
		return nil, err
	}
	s.views = views

	if s.people == nil {
		db, err := store.Open(cfg.Database.Path)
		if err != nil {
			return nil, err
		}
		s.people = db
		s.closers = append(s.closers, db.Close)
	}

	selector, err := render.NewSelector(views.Resolver)
	if err != nil {
		return nil, err
	}
	ctrls, err := controllers.All(controllers.Deps{
		Selector:  selector,
		Validator: validation.New(),
		People:    s.people,
	})
	if err != nil {
		return nil, err
	}
	registry := mvc.NewRegistry()
	if err := controllers.Register(registry, ctrls); err != nil {
		return nil, err
	}

	presenter, err := mvc.NewPresenter(views.Engine, views.Layout)
	if err != nil {
		return nil, err
	}
	router, err := mvc.NewRouter(registry, presenter, mvc.WithErrorHandler(logging.ActionErrors(logger)))
	if err != nil {
		return nil, err
	}

	s.handler = mvc.RequestID(
		logging.Middleware(logger)(
			mvc.StatusPages(router, mvc.WithPanicHandler(logging.Panics(logger))),
		),
	)

	if cfg.Views.Reload && views.WatchDir != "" {
		s.watcher, err = reload.New(views.WatchDir, views.Engine,
			reload.WithLogger(logger),
			reload.WithExtension(views.Locations.Extension()),
		)
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.handler }

// Views returns the view configuration in use.
func (s *Server) Views() *Views { return s.views }

// Run serves HTTP until ctx ends, then shuts down within the configured
// timeout. The view watcher runs alongside when reload is enabled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Server.Addr,
		Handler:      s.handler,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		timeout := s.cfg.Server.ShutdownTimeout
		if timeout <= 0 {
			timeout = 5 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	if s.watcher != nil {
		g.Go(func() error {
			return s.watcher.Run(gctx)
		})
	}

	err := g.Wait()
	return errors.Join(err, s.Close())
}

// Close releases storage owned by the server.
func (s *Server) Close() error {
	var errs []error
	for _, closer := range s.closers {
		errs = append(errs, closer())
	}
	s.closers = nil
	return errors.Join(errs...)
}
