package config

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// NewLogger builds a process logger writing to w. The level comes from
// FISHNET_LOG_LEVEL (debug, info, warn, error); unset or unknown values
// mean info.
func NewLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          prefix,
	})
	if level, err := log.ParseLevel(GetEnv("FISHNET_LOG_LEVEL", "info")); err == nil {
		logger.SetLevel(level)
	}
	return logger
}
