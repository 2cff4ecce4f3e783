package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/interviewdost/backend/internal/repo"
	"github.com/interviewdost/backend/pkg/environment"
	"github.com/interviewdost/backend/pkg/errors"
	"github.com/interviewdost/backend/pkg/logger"
)

type Deps struct {
	Env       environment.Env
	Repo      repo.Client
	Scheduler slotScheduler
	Content   contentService
	Mailer    sender
}

func NewServer(cfg Config, log logger.Logger, deps Deps) Server {
	return newServer(cfg, log, deps)
}

func newServer(cfg Config, log logger.Logger, deps Deps) *server {
	serveLog := log.With("api_http_server")

	fiberCfg := fiber.Config{
		ReadTimeout:             cfg.HTTP.ReadTimeout,
		WriteTimeout:            cfg.HTTP.WriteTimeout,
		IdleTimeout:             cfg.HTTP.IdleTimeout,
		DisableStartupMessage:   true,
		EnableTrustedProxyCheck: len(cfg.Proxy.Trusted) > 0,
		ProxyHeader:             cfg.Proxy.Header,
		TrustedProxies:          cfg.Proxy.Trusted,
		RequestMethods:          []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodOptions, fiber.MethodHead},
	}

	s := &server{
		env:       deps.Env,
		repo:      deps.Repo,
		scheduler: deps.Scheduler,
		content:   deps.Content,
		mailer:    deps.Mailer,
		addr:      cfg.HTTP.Addr,
		log:       serveLog,
	}

	fiberCfg.ErrorHandler = s.handleError
	s.http = fiber.New(fiberCfg)

	s.http.Use(recover.New())
	s.http.Use(cors.New(cors.Config{AllowOrigins: "*"}))
	if cfg.RateLimit.PerMinute > 0 {
		s.http.Use(s.rateLimit(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst))
	}
	if cfg.HTTP.RequestTimeout > 0 {
		s.http.Use(withTimeout(cfg.HTTP.RequestTimeout))
	}

	s.setupRoutes()

	return s
}

type server struct {
	env       environment.Env
	repo      repo.Client
	scheduler slotScheduler
	content   contentService
	mailer    sender

	http *fiber.App
	addr string
	log  logger.Logger
}

func (s *server) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() { errCh <- s.http.Listen(s.addr) }()

	s.log.Infof("listening on %s", s.addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return nil
	}
}

func (s *server) Shutdown(ctx context.Context) error {
	var errs []error

	err := s.http.ShutdownWithContext(ctx)
	if err != nil {
		errs = append(errs, errors.WrapFail(err, "shutdown http server"))
	}

	err = s.repo.Close(ctx)
	if err != nil {
		errs = append(errs, errors.WrapFail(err, "close repo"))
	}

	return errors.Join(errs...)
}

func (s *server) setupRoutes() {
	s.http.Get("/", s.handleHealth)

	api := s.http.Group("/api")

	api.Post("/send-email", s.handleSendEmail)

	api.Get("/tests", s.handleListTests)
	api.Get("/tests/:id", s.handleGetTest)

	api.Get("/profile/:email", s.handleGetProfile)
	api.Post("/profile", s.handleUpsertProfile)

	api.Get("/interviewers", s.handleListInterviewers)
	api.Get("/interviewers/available", s.handleAvailableInterviewers)

	api.Post("/interviews/schedule", s.handleSchedule)
	api.Get("/interviews", s.handleListInterviews)
}

func (s *server) handleError(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return s.sendError(c, fiberErr.Code, fiberErr.Message, "")
	}

	s.log.Error(errors.WrapFailf(err, "handle %s %s", c.Method(), c.Path()))
	return s.sendError(c, http.StatusInternalServerError, "Internal server error", "")
}

func withTimeout(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()

		c.SetUserContext(ctx)
		return c.Next()
	}
}
