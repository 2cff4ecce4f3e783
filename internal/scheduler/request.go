package scheduler

import (
	"cmp"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/interviewdost/backend/internal/notify"
	"github.com/interviewdost/backend/internal/repo/models"
	"github.com/interviewdost/backend/pkg/calendar"
)

type Request struct {
	StudentEmail     string `json:"studentEmail"`
	InterviewerEmail string `json:"interviewerEmail"`
	Date             string `json:"date"`
	Time             string `json:"time"`

	// Notification overrides the default confirmation; empty fields are
	// taken from the default.
	Notification *notify.Message `json:"notification,omitempty"`
}

type Result struct {
	Interview   models.Interview   `json:"interview"`
	Interviewer models.Interviewer `json:"interviewer"`
}

type slotRef struct {
	student     string
	interviewer string
	day         time.Time
	clock       string
}

func (r Request) normalize() (slotRef, error) {
	ref := slotRef{
		student:     strings.TrimSpace(r.StudentEmail),
		interviewer: strings.TrimSpace(r.InterviewerEmail),
		clock:       strings.TrimSpace(r.Time),
	}

	err := checkEmail("studentEmail", ref.student)
	if err != nil {
		return slotRef{}, err
	}

	err = checkEmail("interviewerEmail", ref.interviewer)
	if err != nil {
		return slotRef{}, err
	}

	ref.day, err = parseDay(r.Date)
	if err != nil {
		return slotRef{}, err
	}

	// any non-empty time is accepted: a malformed one just matches no slot
	if ref.clock == "" {
		return slotRef{}, &ValidationError{Field: "time", Reason: "required"}
	}

	return ref, nil
}

func checkEmail(field, email string) error {
	if email == "" {
		return &ValidationError{Field: field, Reason: "required"}
	}

	_, err := mail.ParseAddress(email)
	if err != nil {
		return &ValidationError{Field: field, Reason: "malformed email"}
	}

	return nil
}

func parseDay(raw string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return time.Time{}, &ValidationError{Field: "date", Reason: "required"}
	}

	day, err := calendar.ParseDay(raw)
	if err != nil {
		return time.Time{}, &ValidationError{Field: "date", Reason: err.Error()}
	}

	return day, nil
}

func (r Request) confirmation(ref slotRef, res *Result) notify.Message {
	when := fmt.Sprintf("%s at %s UTC", ref.day.Format(calendar.DateLayout), ref.clock)
	name := cmp.Or(res.Interviewer.Name, ref.interviewer)

	def := notify.Message{
		Subject: "Interview scheduled on " + when,
		Text: fmt.Sprintf(
			"Your mock interview with %s is scheduled on %s.\nInterview ID: %s\n",
			name, when, res.Interview.ID,
		),
		HTML: fmt.Sprintf(
			"<p>Your mock interview with <b>%s</b> is scheduled on <b>%s</b>.</p><p>Interview ID: %s</p>",
			name, when, res.Interview.ID,
		),
		Recipients: []string{ref.student, ref.interviewer},
	}

	if r.Notification == nil {
		return def
	}

	msg := *r.Notification
	msg.Subject = cmp.Or(msg.Subject, def.Subject)
	msg.Text = cmp.Or(msg.Text, def.Text)
	msg.HTML = cmp.Or(msg.HTML, def.HTML)
	if len(msg.Recipients) == 0 {
		msg.Recipients = def.Recipients
	}

	return msg
}
