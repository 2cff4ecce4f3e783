package content

import (
	"context"

	"github.com/interviewdost/backend/internal/repo/models"
	"github.com/interviewdost/backend/pkg/errors"
	"github.com/interviewdost/backend/pkg/logger"
)

const (
	keyTests  = "tests:list"
	keyPrefix = "tests:"
)

type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any) error
}

func New(log logger.Logger, tests models.TestsRepo, cache Cache) *Service {
	return &Service{
		tests: tests,
		cache: cache,
		log:   log.With("content"),
	}
}

// Service serves quiz tests, reading through the cache. Cache failures are
// logged and never fail a request.
type Service struct {
	tests models.TestsRepo
	cache Cache
	log   logger.Logger
}

func (s *Service) List(ctx context.Context) ([]models.Test, error) {
	var tests []models.Test
	if s.lookup(ctx, keyTests, &tests) {
		return tests, nil
	}

	tests, err := s.tests.List(ctx)
	if err != nil {
		return nil, errors.WrapFail(err, "list tests")
	}

	s.store(ctx, keyTests, tests)
	return tests, nil
}

// Get returns nil without error when there is no such test.
func (s *Service) Get(ctx context.Context, id string) (*models.Test, error) {
	var test models.Test
	if s.lookup(ctx, keyPrefix+id, &test) {
		return &test, nil
	}

	found, err := s.tests.Get(ctx, id)
	if err != nil {
		return nil, errors.WrapFailf(err, "get test %s", id)
	}

	if found != nil {
		s.store(ctx, keyPrefix+id, found)
	}

	return found, nil
}

func (s *Service) lookup(ctx context.Context, key string, out any) bool {
	if s.cache == nil {
		return false
	}

	hit, err := s.cache.GetJSON(ctx, key, out)
	if err != nil {
		s.log.Debug(err)
		return false
	}

	return hit
}

func (s *Service) store(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}

	err := s.cache.SetJSON(ctx, key, value)
	if err != nil {
		s.log.Debug(err)
	}
}
