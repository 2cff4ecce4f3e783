package repo

import (
	"context"

	"github.com/interviewdost/backend/internal/repo/memory"
	"github.com/interviewdost/backend/internal/repo/models"
	"github.com/interviewdost/backend/internal/repo/mongodb"
	"github.com/interviewdost/backend/pkg/errors"
	"github.com/interviewdost/backend/pkg/logger"
)

type Client interface {
	Interviewers() models.InterviewersRepo
	Interviews() models.InterviewsRepo
	Profiles() models.ProfilesRepo
	Tests() models.TestsRepo

	Close(ctx context.Context) error
}

type MongoConfig = mongodb.Config

// NewMongoClient opens the process-wide connection. It is shared by every
// handler and must be closed on shutdown.
func NewMongoClient(ctx context.Context, log logger.Logger, cfg MongoConfig) (Client, error) {
	c, err := mongodb.New(ctx, log, cfg)
	if err != nil {
		return nil, errors.WrapFail(err, "init mongo client")
	}
	return c, nil
}

// NewInMemoryClient keeps everything in process memory; for tests and local runs.
func NewInMemoryClient(tests ...models.Test) Client {
	return &memoryClient{
		interviewers: memory.NewInterviewers(),
		interviews:   memory.NewInterviews(),
		profiles:     memory.NewProfiles(),
		tests:        memory.NewTests(tests...),
	}
}

type memoryClient struct {
	interviewers *memory.Interviewers
	interviews   *memory.Interviews
	profiles     *memory.Profiles
	tests        *memory.Tests
}

func (m *memoryClient) Interviewers() models.InterviewersRepo { return m.interviewers }
func (m *memoryClient) Interviews() models.InterviewsRepo     { return m.interviews }
func (m *memoryClient) Profiles() models.ProfilesRepo         { return m.profiles }
func (m *memoryClient) Tests() models.TestsRepo               { return m.tests }

func (m *memoryClient) Close(context.Context) error { return nil }
