package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/interviewdost/backend/internal/repo/models"
)

type Profiles struct {
	mu      sync.RWMutex
	byEmail map[string]models.Profile
}

func NewProfiles() *Profiles {
	return &Profiles{byEmail: make(map[string]models.Profile)}
}

func (s *Profiles) Get(_ context.Context, email string) (*models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byEmail[email]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// Upsert overwrites the fields present in p and keeps the stored rest.
func (s *Profiles) Upsert(_ context.Context, p models.Profile) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := s.byEmail[p.Email]
	stored.Email = p.Email
	stored.Name = cmp.Or(p.Name, stored.Name)
	stored.Phone = cmp.Or(p.Phone, stored.Phone)
	stored.Experience = cmp.Or(p.Experience, stored.Experience)
	stored.TargetRole = cmp.Or(p.TargetRole, stored.TargetRole)
	if p.Skills != nil {
		stored.Skills = slices.Clone(p.Skills)
	}
	stored.UpdatedAt = time.Now().UTC()

	s.byEmail[p.Email] = stored

	stored.Skills = slices.Clone(stored.Skills)
	return &stored, nil
}

type Tests struct {
	mu   sync.RWMutex
	byID map[string]models.Test
}

func NewTests(tests ...models.Test) *Tests {
	s := &Tests{byID: make(map[string]models.Test, len(tests))}
	for _, t := range tests {
		s.byID[t.ID] = t
	}
	return s
}

func (s *Tests) List(_ context.Context) ([]models.Test, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]models.Test, 0, len(s.byID))
	for _, t := range s.byID {
		all = append(all, t)
	}

	slices.SortFunc(all, func(a, b models.Test) int {
		return cmp.Compare(a.Title, b.Title)
	})
	return all, nil
}

func (s *Tests) Get(_ context.Context, id string) (*models.Test, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}
