package config

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger returns a timestamped logger writing to w. The level comes from
// LOG_LEVEL (debug, info, warn, error) and defaults to info.
func NewLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{ReportTimestamp: true})

	level, err := log.ParseLevel(GetEnv("LOG_LEVEL", "info"))
	if err != nil {
		logger.Warn("unknown LOG_LEVEL, using info", "err", err)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}
