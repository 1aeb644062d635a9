// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// clockFormat stamps log lines with hundredths of a second.
const clockFormat = "15:04:05.00"

// consoleLogger logs to w at info level, or debug when verbose is set.
func consoleLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      clockFormat,
	})
}

// stopwatch reports how long a step took once it finishes.
type stopwatch struct {
	log     *log.Logger
	started time.Time
}

func startStopwatch(l *log.Logger) stopwatch {
	return stopwatch{log: l, started: time.Now()}
}

func (s stopwatch) finish(format string, args ...any) {
	elapsed := time.Since(s.started).Round(time.Millisecond)
	s.log.Info(fmt.Sprintf(format, args...), "took", elapsed)
}

type loggerCtxKey struct{}

func contextWithLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey{}, l)
}

// commandLogger returns the logger installed by the root command, or the
// package default outside a command run.
func commandLogger(ctx context.Context) *log.Logger {
	l, ok := ctx.Value(loggerCtxKey{}).(*log.Logger)
	if !ok {
		return log.Default()
	}
	return l
}
