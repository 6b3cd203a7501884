package job

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// asynqLogger routes Asynq's internal logging through zerolog.
type asynqLogger struct {
	logger *zerolog.Logger
}

func (l *asynqLogger) Debug(args ...interface{}) {
	l.logger.Debug().Str("component", "asynq").Msg(fmt.Sprint(args...))
}

func (l *asynqLogger) Info(args ...interface{}) {
	l.logger.Info().Str("component", "asynq").Msg(fmt.Sprint(args...))
}

func (l *asynqLogger) Warn(args ...interface{}) {
	l.logger.Warn().Str("component", "asynq").Msg(fmt.Sprint(args...))
}

func (l *asynqLogger) Error(args ...interface{}) {
	l.logger.Error().Str("component", "asynq").Msg(fmt.Sprint(args...))
}

// Fatal logs and exits, as the asynq.Logger contract requires.
func (l *asynqLogger) Fatal(args ...interface{}) {
	l.logger.WithLevel(zerolog.FatalLevel).Str("component", "asynq").Msg(fmt.Sprint(args...))
	os.Exit(1)
}
