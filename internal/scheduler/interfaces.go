package scheduler

import (
	"github.com/interviewdost/backend/internal/notify"
	"github.com/interviewdost/backend/internal/pubsub"
	"github.com/interviewdost/backend/internal/repo/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks_test.go -package=scheduler

type interviewersRepo interface {
	models.InterviewersRepo
}

type interviewsRepo interface {
	models.InterviewsRepo
}

type sender interface {
	notify.Sender
}

type publisher interface {
	pubsub.Publisher
}
