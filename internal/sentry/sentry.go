// Package sentry contains a logrus hook which forwards entries to sentry.
package sentry

import (
	"time"

	sentrygo "github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

type hook struct {
	levels []logrus.Level
}

// NewHook initializes the sentry client and returns a logrus hook firing
// on the given levels.
func NewHook(opts sentrygo.ClientOptions, levels ...logrus.Level) (logrus.Hook, error) {
	if err := sentrygo.Init(opts); err != nil {
		return nil, err
	}

	return hook{levels: levels}, nil
}

func (h hook) Levels() []logrus.Level {
	return h.levels
}

func (h hook) Fire(e *logrus.Entry) error {
	event := sentrygo.NewEvent()
	event.Timestamp = e.Time
	event.Level = toSentryLevel(e.Level)
	event.Message = e.Message

	for k, v := range e.Data {
		if k == logrus.ErrorKey {
			if err, ok := v.(error); ok {
				event.Message = event.Message + ": " + err.Error()
				continue
			}
		}
		event.Extra[k] = v
	}

	sentrygo.CaptureEvent(event)

	if e.Level <= logrus.FatalLevel {
		sentrygo.Flush(2 * time.Second)
	}

	return nil
}

func toSentryLevel(l logrus.Level) sentrygo.Level {
	switch l {
	case logrus.PanicLevel, logrus.FatalLevel:
		return sentrygo.LevelFatal
	case logrus.ErrorLevel:
		return sentrygo.LevelError
	case logrus.WarnLevel:
		return sentrygo.LevelWarning
	case logrus.DebugLevel, logrus.TraceLevel:
		return sentrygo.LevelDebug
	default:
		return sentrygo.LevelInfo
	}
}
