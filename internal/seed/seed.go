package seed

import (
	"context"
	"strings"
	"time"

	"github.com/interviewdost/backend/internal/repo/models"
	"github.com/interviewdost/backend/pkg/calendar"
	"github.com/interviewdost/backend/pkg/errors"
	"github.com/interviewdost/backend/pkg/logger"
)

type store interface {
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, interviewers []models.Interviewer) error
}

// Run fills an empty interviewers collection with cfg.Interviewers (or the
// built-in set) having slots for cfg.Days days starting from today.
// A non-empty collection is left untouched.
func Run(ctx context.Context, log logger.Logger, repo store, cfg Config, now time.Time) error {
	log = log.With("seed")

	count, err := repo.Count(ctx)
	if err != nil {
		return errors.WrapFail(err, "count interviewers")
	}

	if count > 0 {
		log.Debugf("%d interviewers found, skip seeding", count)
		return nil
	}

	interviewers, err := Build(cfg, now)
	if err != nil {
		return err
	}

	err = repo.InsertMany(ctx, interviewers)
	if err != nil {
		return errors.WrapFail(err, "insert seed interviewers")
	}

	log.Infof("seeded %d interviewers for %d days", len(interviewers), windowDays(cfg.Days))
	return nil
}

// Build expands the templates into interviewers with concrete slots.
func Build(cfg Config, now time.Time) ([]models.Interviewer, error) {
	given := cfg.Interviewers
	if len(given) == 0 {
		given = fixture
	}

	days := calendar.Days(now, windowDays(cfg.Days))
	created := now.UTC()

	interviewers := make([]models.Interviewer, 0, len(given))
	seen := make(map[string]struct{}, len(given))

	for _, t := range given {
		email := strings.TrimSpace(t.Email)
		if email == "" {
			return nil, errors.Errorf("seed interviewer %q has no email", t.Name)
		}

		if _, dup := seen[email]; dup {
			return nil, errors.Errorf("duplicate seed interviewer %s", email)
		}
		seen[email] = struct{}{}

		templates, err := normalize(t.Slots)
		if err != nil {
			return nil, errors.Wrapf(err, "seed interviewer %s", email)
		}

		slots := make([]models.Slot, 0, len(days)*len(templates))
		for _, day := range days {
			for _, s := range templates {
				slots = append(slots, models.NewSlot(day, s.Start, s.End))
			}
		}

		interviewers = append(interviewers, models.Interviewer{
			Email:     email,
			Name:      t.Name,
			Expertise: t.Expertise,
			Slots:     slots,
			CreatedAt: created,
		})
	}

	return interviewers, nil
}

func normalize(templates []Template) ([]Template, error) {
	normalized := make([]Template, 0, len(templates))
	for _, t := range templates {
		start, err := calendar.ParseClock(t.Start)
		if err != nil {
			return nil, err
		}

		end, err := calendar.ParseClock(t.End)
		if err != nil {
			return nil, err
		}

		if end <= start {
			return nil, errors.Errorf("slot %s-%s ends before it starts", start, end)
		}

		normalized = append(normalized, Template{Start: start, End: end})
	}

	return normalized, nil
}

func windowDays(days int) int {
	if days <= 0 {
		return defaultDays
	}
	return days
}
