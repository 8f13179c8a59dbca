// logger.go: a minimal cliapp.Logger that writes one line per call to an
// io.Writer, used as the default --verbose-free logging backend so a run
// reports what it touched without pulling in an external log sink.
//
package main

import (
	"context"
	"fmt"
	"io"

	"github.com/kestrelmd/transclude/internal/cliapp"
)

// lineLogger writes "level: msg key=value ..." lines to w. It always
// ignores Trace/Debug, since the front-end has nothing at those levels
// worth surfacing on stderr during ordinary use.
type lineLogger struct {
	w      io.Writer
	fields []cliapp.Field
}

func newLineLogger(w io.Writer) *lineLogger {
	return &lineLogger{w: w}
}

func (l *lineLogger) Trace(ctx context.Context, msg string, fields ...cliapp.Field) {}
func (l *lineLogger) Debug(ctx context.Context, msg string, fields ...cliapp.Field) {}

func (l *lineLogger) Info(ctx context.Context, msg string, fields ...cliapp.Field) {
	l.write("info", msg, fields)
}

func (l *lineLogger) Warn(ctx context.Context, msg string, fields ...cliapp.Field) {
	l.write("warn", msg, fields)
}

func (l *lineLogger) Error(ctx context.Context, msg string, fields ...cliapp.Field) {
	l.write("error", msg, fields)
}

func (l *lineLogger) WithFields(fields ...cliapp.Field) cliapp.Logger {
	return &lineLogger{w: l.w, fields: append(append([]cliapp.Field{}, l.fields...), fields...)}
}

func (l *lineLogger) write(level, msg string, fields []cliapp.Field) {
	fmt.Fprintf(l.w, "%s: %s", level, msg)
	for _, f := range l.fields {
		fmt.Fprintf(l.w, " %s=%v", f.Key, f.Value)
	}
	for _, f := range fields {
		fmt.Fprintf(l.w, " %s=%v", f.Key, f.Value)
	}
	fmt.Fprintln(l.w)
}
