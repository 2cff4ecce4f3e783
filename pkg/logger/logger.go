package logger

import (
	"go.uber.org/zap"

	"github.com/interviewdost/backend/pkg/environment"
	"github.com/interviewdost/backend/pkg/errors"
)

type Logger interface {
	// With returns a child logger named after label.
	With(label string) Logger
	// Fields returns a child logger that attaches the key-value pairs to every entry.
	Fields(keysAndValues ...any) Logger

	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	Panicf(format string, args ...any)

	Debug(err error)
	Info(err error)
	Warn(err error)
	Error(err error)
	Panic(err error)

	Sync() error
}

func New(env environment.Env) (Logger, error) {
	var logger *zap.Logger
	var err error

	switch env {
	case environment.Production:
		logger, err = zap.NewProduction()
	default:
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, errors.WrapFail(err, "init logger")
	}

	return FromZap(logger), nil
}

func FromZap(l *zap.Logger) Logger {
	return &wrapper{base: l.Sugar()}
}

type wrapper struct {
	base *zap.SugaredLogger
}

func (w *wrapper) With(label string) Logger {
	return &wrapper{w.base.Named(label)}
}

func (w *wrapper) Fields(keysAndValues ...any) Logger {
	return &wrapper{w.base.With(keysAndValues...)}
}

func (w *wrapper) Sync() error {
	return w.base.Sync()
}

func (w *wrapper) Debug(err error) { w.base.Debugf("%s", err) }
func (w *wrapper) Info(err error)  { w.base.Infof("%s", err) }
func (w *wrapper) Warn(err error)  { w.base.Warnf("%s", err) }
func (w *wrapper) Error(err error) { w.base.Errorf("%s", err) }
func (w *wrapper) Panic(err error) { w.base.Panicf("%s", err) }

func (w *wrapper) Debugf(format string, args ...any) { w.base.Debugf(format, args...) }
func (w *wrapper) Infof(format string, args ...any)  { w.base.Infof(format, args...) }
func (w *wrapper) Warnf(format string, args ...any)  { w.base.Warnf(format, args...) }
func (w *wrapper) Errorf(format string, args ...any) { w.base.Errorf(format, args...) }
func (w *wrapper) Panicf(format string, args ...any) { w.base.Panicf(format, args...) }
