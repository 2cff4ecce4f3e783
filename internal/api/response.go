package api

import (
	"github.com/gofiber/fiber/v2"
)

type response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
	Data    any    `json:"data,omitempty"`

	Notification *notificationStatus `json:"notification,omitempty"`
	Booked       bool                `json:"booked,omitempty"`
}

type notificationStatus struct {
	Sent  bool   `json:"sent"`
	Error string `json:"error,omitempty"`
}

func (s *server) sendData(c *fiber.Ctx, status int, msg string, data any) error {
	return c.Status(status).JSON(response{Success: true, Message: msg, Data: data})
}

func (s *server) sendError(c *fiber.Ctx, status int, msg string, reason string) error {
	return c.Status(status).JSON(response{Message: msg, Error: reason})
}
