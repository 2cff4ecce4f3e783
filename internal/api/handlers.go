package api

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/interviewdost/backend/internal/notify"
	"github.com/interviewdost/backend/internal/repo/models"
	"github.com/interviewdost/backend/internal/scheduler"
	"github.com/interviewdost/backend/pkg/errors"
)

const serviceName = "InterviewDost backend"

func (s *server) handleHealth(c *fiber.Ctx) error {
	return s.sendData(c, http.StatusOK, serviceName+" is running", fiber.Map{
		"service":     serviceName,
		"environment": s.env.String(),
		"addr":        s.addr,
	})
}

func (s *server) handleSendEmail(c *fiber.Ctx) error {
	var msg notify.Message
	err := c.BodyParser(&msg)
	if err != nil {
		s.log.Warn(errors.WrapFail(err, "parse send-email payload"))
		return s.sendError(c, http.StatusBadRequest, "Bad request", "malformed request body")
	}

	err = msg.Validate()
	if err != nil {
		return s.sendError(c, http.StatusBadRequest, "Bad request", err.Error())
	}

	err = s.mailer.Send(c.UserContext(), msg)
	if err != nil {
		s.log.Error(errors.WrapFail(err, "send email"))
		return s.sendError(c, http.StatusInternalServerError, "Failed to send email", err.Error())
	}

	return s.sendData(c, http.StatusOK, "Email sent successfully to all recipients", nil)
}

func (s *server) handleListTests(c *fiber.Ctx) error {
	tests, err := s.content.List(c.UserContext())
	if err != nil {
		return err
	}

	return s.sendData(c, http.StatusOK, "OK", tests)
}

func (s *server) handleGetTest(c *fiber.Ctx) error {
	id := c.Params("id")

	test, err := s.content.Get(c.UserContext(), id)
	if err != nil {
		return err
	}

	if test == nil {
		return s.sendError(c, http.StatusNotFound, "Test not found", "")
	}

	return s.sendData(c, http.StatusOK, "OK", test)
}

func (s *server) handleGetProfile(c *fiber.Ctx) error {
	email, err := url.PathUnescape(c.Params("email"))
	if err != nil {
		return s.sendError(c, http.StatusBadRequest, "Bad request", "malformed email")
	}

	profile, err := s.repo.Profiles().Get(c.UserContext(), strings.TrimSpace(email))
	if err != nil {
		return errors.WrapFail(err, "get profile")
	}

	if profile == nil {
		return s.sendError(c, http.StatusNotFound, "Profile not found", "")
	}

	return s.sendData(c, http.StatusOK, "OK", profile)
}

func (s *server) handleUpsertProfile(c *fiber.Ctx) error {
	var profile models.Profile
	err := c.BodyParser(&profile)
	if err != nil {
		s.log.Warn(errors.WrapFail(err, "parse profile payload"))
		return s.sendError(c, http.StatusBadRequest, "Bad request", "malformed request body")
	}

	profile.Email = strings.TrimSpace(profile.Email)
	if profile.Email == "" {
		return s.sendError(c, http.StatusBadRequest, "Bad request", "missing required parameter \"email\"")
	}

	saved, err := s.repo.Profiles().Upsert(c.UserContext(), profile)
	if err != nil {
		return errors.WrapFail(err, "upsert profile")
	}

	return s.sendData(c, http.StatusOK, "Profile saved", saved)
}

func (s *server) handleListInterviewers(c *fiber.Ctx) error {
	interviewers, err := s.repo.Interviewers().List(c.UserContext())
	if err != nil {
		return errors.WrapFail(err, "list interviewers")
	}

	return s.sendData(c, http.StatusOK, "OK", interviewers)
}

func (s *server) handleAvailableInterviewers(c *fiber.Ctx) error {
	found, err := s.scheduler.Available(c.UserContext(), c.Query("date"), c.Query("time"))

	var validation *scheduler.ValidationError
	if errors.As(err, &validation) {
		return s.sendError(c, http.StatusBadRequest, "Bad request", validation.Error())
	}

	if err != nil {
		return err
	}

	return s.sendData(c, http.StatusOK, "OK", found)
}

func (s *server) handleSchedule(c *fiber.Ctx) error {
	var req scheduler.Request
	err := c.BodyParser(&req)
	if err != nil {
		s.log.Warn(errors.WrapFail(err, "parse schedule payload"))
		return s.sendError(c, http.StatusBadRequest, "Bad request", "malformed request body")
	}

	res, err := s.scheduler.Schedule(c.UserContext(), req)
	if err == nil {
		return s.sendData(c, http.StatusCreated, "Interview scheduled", res)
	}

	var (
		validation *scheduler.ValidationError
		noSlot     *scheduler.NoAvailableSlotError
		record     *scheduler.RecordError
		notifyErr  *scheduler.NotificationError
	)

	switch {
	case errors.As(err, &validation):
		return s.sendError(c, http.StatusBadRequest, "Bad request", validation.Error())

	case errors.As(err, &noSlot):
		return c.Status(http.StatusConflict).JSON(response{
			Message: "Slot is not available",
			Error:   noSlot.Error(),
			Data:    fiber.Map{"availableSlots": noSlot.Available},
		})

	case errors.As(err, &record):
		return c.Status(http.StatusInternalServerError).JSON(response{
			Message: "Slot booked, but interview is not recorded",
			Booked:  true,
		})

	case errors.As(err, &notifyErr):
		return c.Status(http.StatusMultiStatus).JSON(response{
			Success:      true,
			Message:      "Interview scheduled, confirmation is not sent",
			Data:         res,
			Notification: &notificationStatus{Sent: false, Error: notifyErr.Err.Error()},
		})
	}

	return err
}

func (s *server) handleListInterviews(c *fiber.Ctx) error {
	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		return s.sendError(c, http.StatusBadRequest, "Bad request", "missing required parameter \"email\"")
	}

	interviews, err := s.repo.Interviews().FindByUser(c.UserContext(), email)
	if err != nil {
		return errors.WrapFail(err, "find interviews")
	}

	return s.sendData(c, http.StatusOK, "OK", interviews)
}
