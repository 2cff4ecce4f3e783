package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/interviewdost/backend/internal/repo/models"
	"github.com/interviewdost/backend/pkg/errors"
)

// Interviewers keeps interviewers in process memory. Each interviewer has its
// own lock, so bookings of different interviewers don't contend.
type Interviewers struct {
	mu    sync.RWMutex
	byKey map[string]*interviewerEntry
	order []string
}

type interviewerEntry struct {
	mu sync.Mutex
	i  models.Interviewer
}

func NewInterviewers() *Interviewers {
	return &Interviewers{byKey: make(map[string]*interviewerEntry)}
}

func (s *Interviewers) FindAvailable(_ context.Context, day time.Time, clock string) ([]models.Interviewer, error) {
	found := make([]models.Interviewer, 0)
	s.each(func(i models.Interviewer) {
		if i.Available(day, clock) {
			found = append(found, i)
		}
	})
	return found, nil
}

func (s *Interviewers) BookSlot(_ context.Context, email string, day time.Time, start string) (*models.Interviewer, error) {
	s.mu.RLock()
	e, ok := s.byKey[email]
	s.mu.RUnlock()

	if !ok {
		return nil, models.ErrSlotNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	idx := slices.IndexFunc(e.i.Slots, func(slot models.Slot) bool {
		return slot.Bookable(day, start)
	})
	if idx < 0 {
		return nil, models.ErrSlotNotFound
	}

	e.i.Slots[idx].Booked = true

	booked := e.i.Clone()
	return &booked, nil
}

func (s *Interviewers) Get(_ context.Context, email string) (*models.Interviewer, error) {
	s.mu.RLock()
	e, ok := s.byKey[email]
	s.mu.RUnlock()

	if !ok {
		return nil, nil
	}

	e.mu.Lock()
	i := e.i.Clone()
	e.mu.Unlock()

	return &i, nil
}

func (s *Interviewers) List(_ context.Context) ([]models.Interviewer, error) {
	all := make([]models.Interviewer, 0)
	s.each(func(i models.Interviewer) {
		all = append(all, i)
	})

	slices.SortStableFunc(all, func(a, b models.Interviewer) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return all, nil
}

func (s *Interviewers) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.byKey)), nil
}

func (s *Interviewers) InsertMany(_ context.Context, interviewers []models.Interviewer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, i := range interviewers {
		if _, dup := s.byKey[i.Email]; dup {
			return errors.Errorf("duplicate interviewer %s", i.Email)
		}
	}

	for _, i := range interviewers {
		s.byKey[i.Email] = &interviewerEntry{i: i.Clone()}
		s.order = append(s.order, i.Email)
	}
	return nil
}

// each visits snapshots of interviewers in insertion order.
func (s *Interviewers) each(visit func(models.Interviewer)) {
	s.mu.RLock()
	entries := make([]*interviewerEntry, 0, len(s.order))
	for _, key := range s.order {
		entries = append(entries, s.byKey[key])
	}
	s.mu.RUnlock()

	for _, e := range entries {
		e.mu.Lock()
		i := e.i.Clone()
		e.mu.Unlock()
		visit(i)
	}
}
