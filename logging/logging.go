// Package logging holds the process-wide structured logger.
package logging

import "go.uber.org/zap"

var logger = zap.NewNop()

// Init replaces the no-op logger. Debug builds a human-readable development logger.
func Init(debug bool) error {
	var (
		l   *zap.Logger
		err error
	)
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	logger = l
	return nil
}

// L returns the current logger.
func L() *zap.Logger {
	return logger
}

// Sync flushes buffered entries. Errors from syncing a terminal are ignored.
func Sync() {
	_ = logger.Sync()
}
