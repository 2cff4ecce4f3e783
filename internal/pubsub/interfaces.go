package pubsub

import (
	"context"
	"time"

	"github.com/interviewdost/backend/internal/repo/models"
)

type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

type EventType string

const EventInterviewScheduled EventType = "interview.scheduled"

type Event struct {
	Type      EventType        `json:"type"`
	Interview models.Interview `json:"interview"`
	At        time.Time        `json:"at"`
}

// Key orders events of one interviewer within a partition.
func (e Event) Key() string {
	return e.Interview.InterviewerEmail
}

type nop struct{}

// Nop drops every event; used when no brokers are configured.
func Nop() Publisher {
	return nop{}
}

func (nop) Publish(context.Context, Event) error { return nil }
func (nop) Close() error                         { return nil }
