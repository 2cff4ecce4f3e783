package scheduler

import (
	"context"
	"strings"
	"time"

	"github.com/interviewdost/backend/internal/notify"
	"github.com/interviewdost/backend/internal/pubsub"
	"github.com/interviewdost/backend/internal/repo/models"
	"github.com/interviewdost/backend/pkg/calendar"
	"github.com/interviewdost/backend/pkg/errors"
	"github.com/interviewdost/backend/pkg/logger"
)

func New(
	log logger.Logger,
	interviewers models.InterviewersRepo,
	interviews models.InterviewsRepo,
	sender notify.Sender,
	events pubsub.Publisher,
) *Scheduler {
	if events == nil {
		events = pubsub.Nop()
	}

	return &Scheduler{
		interviewers: interviewers,
		interviews:   interviews,
		sender:       sender,
		events:       events,
		log:          log.With("scheduler"),
		now:          time.Now,
	}
}

type Scheduler struct {
	interviewers models.InterviewersRepo
	interviews   models.InterviewsRepo
	sender       notify.Sender
	events       pubsub.Publisher
	log          logger.Logger
	now          func() time.Time
}

// Available lists interviewers having a free slot on date that spans clock.
func (s *Scheduler) Available(ctx context.Context, date string, clock string) ([]models.Interviewer, error) {
	day, err := parseDay(date)
	if err != nil {
		return nil, err
	}

	clock = strings.TrimSpace(clock)
	if clock == "" {
		return nil, &ValidationError{Field: "time", Reason: "required"}
	}

	found, err := s.interviewers.FindAvailable(ctx, day, clock)
	if err != nil {
		return nil, errors.WrapFail(err, "find available interviewers")
	}

	return found, nil
}

// Schedule books the slot and records the interview. Errors:
//   - *ValidationError: bad request, nothing changed;
//   - *NoAvailableSlotError: no such free slot, nothing changed;
//   - *RecordError: slot booked, interview not recorded;
//   - *NotificationError: done, but confirmation failed; the result is
//     returned along with the error.
//
// Any other error comes from the store.
func (s *Scheduler) Schedule(ctx context.Context, req Request) (*Result, error) {
	ref, err := req.normalize()
	if err != nil {
		return nil, err
	}

	log := s.log.Fields(
		"student", ref.student,
		"interviewer", ref.interviewer,
		"date", ref.day.Format(calendar.DateLayout),
		"time", ref.clock,
	)

	// match and mutate in one store operation, a concurrent request
	// for the same slot gets ErrSlotNotFound
	booked, err := s.interviewers.BookSlot(ctx, ref.interviewer, ref.day, ref.clock)
	if errors.Is(err, models.ErrSlotNotFound) {
		log.Infof("no available slot")
		return nil, s.noSlot(ctx, ref)
	}

	if err != nil {
		return nil, errors.WrapFail(err, "book slot")
	}

	interview, err := s.interviews.Create(ctx, ref.student, ref.interviewer, ref.day, ref.clock)
	if err != nil {
		log.Error(errors.WrapFail(err, "record interview for booked slot"))
		return nil, &RecordError{Interviewer: *booked, Err: err}
	}

	res := &Result{Interview: *interview, Interviewer: *booked}
	log = log.Fields("interview", interview.ID)

	err = s.events.Publish(ctx, pubsub.Event{
		Type:      pubsub.EventInterviewScheduled,
		Interview: *interview,
		At:        s.now().UTC(),
	})
	if err != nil {
		log.Warn(errors.WrapFail(err, "publish scheduled event"))
	}

	err = s.sender.Send(ctx, req.confirmation(ref, res))
	if err != nil {
		log.Warn(errors.WrapFail(err, "send confirmation"))
		return res, &NotificationError{Err: err}
	}

	log.Infof("interview scheduled")
	return res, nil
}

func (s *Scheduler) noSlot(ctx context.Context, ref slotRef) error {
	noSlot := &NoAvailableSlotError{
		InterviewerEmail: ref.interviewer,
		Date:             ref.day,
		Time:             ref.clock,
		Available:        []models.Slot{},
	}

	interviewer, err := s.interviewers.Get(ctx, ref.interviewer)
	if err != nil {
		s.log.Warn(errors.WrapFail(err, "get interviewer slots for diagnostics"))
		return noSlot
	}

	if interviewer != nil {
		noSlot.Available = interviewer.FreeSlotsOn(ref.day)
	}

	return noSlot
}
