package util

import (
	"io"
	"os"

	"github.com/mpapenbr/lapcompare/log"
	"github.com/mpapenbr/lapcompare/pkg/config"
)

func parseLogLevel(l string, defaultVal log.Level) log.Level {
	level, err := log.ParseLevel(l)
	if err != nil {
		return defaultVal
	}
	return level
}

// SetupLogger replaces the default logger according to the log flags
func SetupLogger() error {
	logger, err := NewLogger(os.Stderr)
	if err != nil {
		return err
	}
	log.ResetDefault(logger)
	return nil
}

func NewLogger(w io.Writer) (*log.Logger, error) {
	var logger *log.Logger
	switch config.LogFormat {
	case "json":
		logger = log.New(
			w,
			parseLogLevel(config.LogLevel, log.InfoLevel),
			log.WithCaller(true),
			log.AddCallerSkip(1))
	default:
		logger = log.DevLogger(
			w,
			parseLogLevel(config.LogLevel, log.DebugLevel),
			log.WithCaller(true),
			log.AddCallerSkip(1))
	}
	return logger.WithFilter(config.LogFilter)
}
