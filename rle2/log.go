package rle2

import (
	log "github.com/sirupsen/logrus"
)

var logger = log.New()

// SetLogLevel sets the package logger's verbosity. Tests raise it to
// log.TraceLevel to see block-boundary and sub-encoding decisions.
func SetLogLevel(level log.Level) {
	logger.SetLevel(level)
}
