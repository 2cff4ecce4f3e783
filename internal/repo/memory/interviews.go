package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/interviewdost/backend/internal/repo/models"
	"github.com/interviewdost/backend/pkg/calendar"
)

type Interviews struct {
	mu  sync.Mutex
	all []models.Interview
	now func() time.Time
}

func NewInterviews() *Interviews {
	return &Interviews{now: time.Now}
}

func (s *Interviews) Create(
	_ context.Context,
	studentEmail string,
	interviewerEmail string,
	day time.Time,
	clock string,
) (*models.Interview, error) {
	interview := models.Interview{
		ID:               uuid.NewString(),
		StudentEmail:     studentEmail,
		InterviewerEmail: interviewerEmail,
		Date:             calendar.Day(day),
		Time:             clock,
		Status:           models.InterviewStatusScheduled,
		CreatedAt:        s.now().UTC(),
	}

	s.mu.Lock()
	s.all = append(s.all, interview)
	s.mu.Unlock()

	return &interview, nil
}

func (s *Interviews) FindByUser(_ context.Context, email string) ([]models.Interview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := make([]models.Interview, 0)
	for _, i := range s.all {
		if i.StudentEmail == email || i.InterviewerEmail == email {
			found = append(found, i)
		}
	}
	return found, nil
}

// Len is the number of stored interviews.
func (s *Interviews) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.all)
}
