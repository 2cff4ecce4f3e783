package api

import (
	"context"

	"github.com/interviewdost/backend/internal/notify"
	"github.com/interviewdost/backend/internal/repo/models"
	"github.com/interviewdost/backend/internal/scheduler"
)

//go:generate mockgen -source=interfaces.go -destination=mocks_test.go -package=api

type Server interface {
	Serve(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

type slotScheduler interface {
	Available(ctx context.Context, date string, clock string) ([]models.Interviewer, error)
	Schedule(ctx context.Context, req scheduler.Request) (*scheduler.Result, error)
}

type contentService interface {
	List(ctx context.Context) ([]models.Test, error)
	Get(ctx context.Context, id string) (*models.Test, error)
}

type sender interface {
	notify.Sender
}
