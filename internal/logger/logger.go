// Package logger contains a leveled console logger. All the messages are written to the standard error, so the
// standard output stays clean for the command results.
package logger

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
)

type Logger interface {
	// Debug logs a message at DebugLevel.
	Debug(msg string, v ...any)

	// Info logs a message at InfoLevel.
	Info(msg string, v ...any)

	// Warn logs a message at WarnLevel.
	Warn(msg string, v ...any)

	// Error logs a message at ErrorLevel.
	Error(msg string, v ...any)
}

// LogOption is a function that can be used to modify a Log.
type LogOption func(*Log)

// WithOutput sets the writer for all the levels (colorable stderr by default).
func WithOutput(w io.Writer) LogOption { return func(l *Log) { l.to = w } }

// WithoutTimestamps disables timestamps in the message prefixes.
func WithoutTimestamps() LogOption { return func(l *Log) { l.noTime = true } }

// Log is a logger that logs messages at specified level.
type Log struct {
	mu     sync.Mutex
	to     io.Writer
	lvl    Level
	noTime bool
}

var _ Logger = (*Log)(nil) // ensure interface is implemented

// New creates a new Logger with specified level.
func New(lvl Level, opts ...LogOption) *Log {
	var log = &Log{to: colorable.NewColorableStderr(), lvl: lvl}

	for _, opt := range opts {
		opt(log)
	}

	return log
}

// NewNop creates a no-op Logger.
func NewNop() *Log { return &Log{to: io.Discard, lvl: noLevel} }

// Level returns the current logging level.
func (l *Log) Level() Level { return l.lvl }

const (
	debugPrefix = " debug "
	infoPrefix  = "  info "
	warnPrefix  = "  warn "
	errorPrefix = " error "
)

var (
	debugColor     = color.New(color.FgMagenta)              //nolint:gochecknoglobals
	infoColor      = color.New(color.FgBlue)                 //nolint:gochecknoglobals
	warnColor      = color.New(color.FgHiYellow, color.Bold) //nolint:gochecknoglobals
	errorColor     = color.New(color.FgHiRed, color.Bold)    //nolint:gochecknoglobals
	sourceColor    = color.New(color.Underline)              //nolint:gochecknoglobals
	extraInfoColor = color.New(color.FgWhite)                //nolint:gochecknoglobals

	debugMarker = color.New(color.BgMagenta, color.FgHiMagenta) //nolint:gochecknoglobals
	infoMarker  = color.New(color.BgBlue, color.FgHiBlue)       //nolint:gochecknoglobals
	warnMarker  = color.New(color.BgHiYellow, color.FgBlack)    //nolint:gochecknoglobals
	errorMarker = color.New(color.BgHiRed, color.FgHiWhite)     //nolint:gochecknoglobals
)

func (l *Log) write(prefix, msg string, extra ...any) {
	var buf bytes.Buffer

	buf.Grow(len(prefix) + len(msg) + len(extra)*32 + 4) //nolint:mnd
	buf.WriteString(prefix)
	buf.WriteRune(' ')
	buf.WriteString(msg)

	if len(extra) > 0 {
		var e bytes.Buffer

		e.WriteRune('(')

		for i, v := range extra {
			if i > 0 {
				e.WriteRune(' ')
			}

			e.WriteString(fmt.Sprint(v))
		}

		e.WriteRune(')')

		buf.WriteRune(' ')
		_, _ = extraInfoColor.Fprint(&buf, e.String())
	}

	buf.WriteRune('\n')

	l.mu.Lock()
	_, _ = buf.WriteTo(l.to)
	l.mu.Unlock()
}

func (l *Log) prefix(marker, ts *color.Color, s string) string {
	var p = marker.Sprint(s)

	if !l.noTime {
		p += " " + ts.Sprint(time.Now().Format("15:04:05.000"))
	}

	return p
}

// Debug logs a message at DebugLevel. The caller location is attached to the prefix.
func (l *Log) Debug(msg string, v ...any) {
	if DebugLevel >= l.lvl {
		var p = l.prefix(debugMarker, debugColor, debugPrefix)

		if _, file, line, ok := runtime.Caller(1); ok {
			p += " " + sourceColor.Sprintf("%s:%d", filepath.Base(file), line)
		}

		l.write(p, msg, v...)
	}
}

// Info logs a message at InfoLevel.
func (l *Log) Info(msg string, v ...any) {
	if InfoLevel >= l.lvl {
		l.write(l.prefix(infoMarker, infoColor, infoPrefix), msg, v...)
	}
}

// Warn logs a message at WarnLevel.
func (l *Log) Warn(msg string, v ...any) {
	if WarnLevel >= l.lvl {
		l.write(l.prefix(warnMarker, warnColor, warnPrefix), msg, v...)
	}
}

// Error logs a message at ErrorLevel.
func (l *Log) Error(msg string, v ...any) {
	if ErrorLevel >= l.lvl {
		l.write(l.prefix(errorMarker, errorColor, errorPrefix), msg, v...)
	}
}
