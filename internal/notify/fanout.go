package notify

import (
	"context"

	"github.com/interviewdost/backend/pkg/errors"
	"github.com/interviewdost/backend/pkg/logger"
)

// Fanout delivers through the primary sender and then through every copy.
// Only the primary outcome is reported; copy failures are logged.
type Fanout struct {
	primary Sender
	copies  []Sender
	log     logger.Logger
}

func NewFanout(log logger.Logger, primary Sender, copies ...Sender) *Fanout {
	return &Fanout{
		primary: primary,
		copies:  copies,
		log:     log.With("notify_fanout"),
	}
}

func (f *Fanout) Send(ctx context.Context, msg Message) error {
	err := f.primary.Send(ctx, msg)

	for _, c := range f.copies {
		copyErr := c.Send(ctx, msg)
		if copyErr != nil {
			f.log.Warn(errors.WrapFail(copyErr, "send notification copy"))
		}
	}

	return err
}
