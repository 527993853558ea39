package stagecraft

import (
	"fmt"
	"sync"
	"time"
)

// LogLevel is the severity of a captured log message. Grounded on
// germtb-goli/log_capture.go, kept under its original level names.
type LogLevel string

const (
	LogDebug LogLevel = "DEBUG"
	LogInfo  LogLevel = "INFO"
	LogWarn  LogLevel = "WARN"
	LogError LogLevel = "ERROR"
)

// LogMessage is one captured log entry.
type LogMessage struct {
	Timestamp time.Time
	Level     LogLevel
	Text      string
}

// Logger is a small ring-buffered structured logger for
// recoverable-but-noteworthy conditions. The Player, the Driver, and the
// widget toolkit do not write to it; its messages come only from code
// that calls its methods directly. Adapted from
// germtb-goli/log_capture.go.
type Logger struct {
	mu       sync.Mutex
	messages []LogMessage
	cap      int
	subs     []func(LogMessage)
}

// NewLogger creates a Logger retaining at most capacity messages.
func NewLogger(capacity int) *Logger {
	if capacity <= 0 {
		capacity = 256
	}
	return &Logger{cap: capacity}
}

func (l *Logger) log(level LogLevel, format string, args ...any) {
	msg := LogMessage{Timestamp: time.Now(), Level: level, Text: fmt.Sprintf(format, args...)}
	l.mu.Lock()
	l.messages = append(l.messages, msg)
	if len(l.messages) > l.cap {
		l.messages = l.messages[len(l.messages)-l.cap:]
	}
	subs := append([]func(LogMessage){}, l.subs...)
	l.mu.Unlock()

	for _, s := range subs {
		s(msg)
	}
}

func (l *Logger) Debugf(format string, args ...any) { l.log(LogDebug, format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.log(LogInfo, format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.log(LogWarn, format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.log(LogError, format, args...) }

// Messages returns a snapshot of the retained log messages, oldest first.
func (l *Logger) Messages() []LogMessage {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]LogMessage, len(l.messages))
	copy(out, l.messages)
	return out
}

// Subscribe registers a callback invoked for every future message.
func (l *Logger) Subscribe(fn func(LogMessage)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.subs = append(l.subs, fn)
}
