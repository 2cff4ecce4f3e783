package models

import (
	"context"
	"time"

	"github.com/interviewdost/backend/pkg/calendar"
	"github.com/interviewdost/backend/pkg/errors"
)

// ErrSlotNotFound means no free slot matched: the interviewer is unknown,
// there is no slot at that day and start time, or it is already booked.
var ErrSlotNotFound = errors.Error("no matching free slot")

type InterviewersRepo interface {
	// FindAvailable returns interviewers having a free slot on day that spans clock.
	FindAvailable(ctx context.Context, day time.Time, clock string) ([]Interviewer, error)

	// BookSlot atomically marks the free slot starting at start on day as booked
	// and returns the interviewer after the update. Fails with ErrSlotNotFound.
	BookSlot(ctx context.Context, email string, day time.Time, start string) (*Interviewer, error)

	// Get returns nil without error when there is no such interviewer.
	Get(ctx context.Context, email string) (*Interviewer, error)
	List(ctx context.Context) ([]Interviewer, error)

	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, interviewers []Interviewer) error
}

type Interviewer struct {
	Email     string    `json:"email"     bson:"email"`
	Name      string    `json:"name"      bson:"name"`
	Expertise []string  `json:"expertise" bson:"expertise"`
	Slots     []Slot    `json:"slots"     bson:"slots"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

const (
	InterviewerFieldEmail     = "email"
	InterviewerFieldName      = "name"
	InterviewerFieldSlots     = "slots"
	InterviewerFieldCreatedAt = "createdAt"
)

type Slot struct {
	Date      time.Time `json:"date"      bson:"date"`
	StartTime string    `json:"startTime" bson:"startTime"`
	EndTime   string    `json:"endTime"   bson:"endTime"`
	Booked    bool      `json:"booked"    bson:"booked"`
}

const (
	SlotFieldDate      = "date"
	SlotFieldStartTime = "startTime"
	SlotFieldEndTime   = "endTime"
	SlotFieldBooked    = "booked"
)

func NewSlot(day time.Time, start, end string) Slot {
	return Slot{
		Date:      calendar.Day(day),
		StartTime: start,
		EndTime:   end,
	}
}

// Covers reports whether the slot is free on day and clock falls within it.
func (s Slot) Covers(day time.Time, clock string) bool {
	return !s.Booked &&
		calendar.SameDay(s.Date, day) &&
		calendar.Within(clock, s.StartTime, s.EndTime)
}

// Bookable reports whether the slot is the free one starting at start on day.
func (s Slot) Bookable(day time.Time, start string) bool {
	return !s.Booked && s.StartTime == start && calendar.SameDay(s.Date, day)
}

func (i Interviewer) Available(day time.Time, clock string) bool {
	for _, s := range i.Slots {
		if s.Covers(day, clock) {
			return true
		}
	}
	return false
}

// FreeSlotsOn lists unbooked slots of the day in insertion order.
func (i Interviewer) FreeSlotsOn(day time.Time) []Slot {
	free := make([]Slot, 0, len(i.Slots))
	for _, s := range i.Slots {
		if !s.Booked && calendar.SameDay(s.Date, day) {
			free = append(free, s)
		}
	}
	return free
}

// Clone copies the interviewer so that callers can't mutate shared slots.
func (i Interviewer) Clone() Interviewer {
	c := i
	c.Expertise = append([]string(nil), i.Expertise...)
	c.Slots = append([]Slot(nil), i.Slots...)
	return c
}
