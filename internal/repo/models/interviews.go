package models

import (
	"context"
	"time"
)

type InterviewsRepo interface {
	// Create registers a scheduled interview. Emails are not checked against
	// profiles or interviewers.
	Create(ctx context.Context, studentEmail, interviewerEmail string, day time.Time, clock string) (*Interview, error)

	// FindByUser returns interviews where email is the student or the interviewer.
	FindByUser(ctx context.Context, email string) ([]Interview, error)
}

type Interview struct {
	ID               string          `json:"id"               bson:"_id"`
	StudentEmail     string          `json:"studentEmail"     bson:"studentEmail"`
	InterviewerEmail string          `json:"interviewerEmail" bson:"interviewerEmail"`
	Date             time.Time       `json:"date"             bson:"date"`
	Time             string          `json:"time"             bson:"time"`
	Status           InterviewStatus `json:"status"           bson:"status"`
	CreatedAt        time.Time       `json:"createdAt"        bson:"createdAt"`
}

const (
	InterviewFieldID               = "_id"
	InterviewFieldStudentEmail     = "studentEmail"
	InterviewFieldInterviewerEmail = "interviewerEmail"
	InterviewFieldDate             = "date"
	InterviewFieldCreatedAt        = "createdAt"
)

type InterviewStatus string

const (
	// InterviewStatusScheduled is set when the slot has been booked
	InterviewStatusScheduled InterviewStatus = "scheduled"

	// InterviewStatusCompleted is set when the interview is done
	InterviewStatusCompleted InterviewStatus = "completed"

	// InterviewStatusCancelled is set when it has been cancelled
	InterviewStatusCancelled InterviewStatus = "cancelled"
)
