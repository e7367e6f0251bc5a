package main

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"
)

// logTimeFormat is the timestamp layout of every log line.
const logTimeFormat = "2006-01-02 15:04:05"

// gameLogger writes "<time> <LEVEL padded to 8> [<session>] <message>"
// lines. The session ID tells games apart in an appended log file.
type gameLogger struct {
	l       *log.Logger
	session string
	now     func() time.Time
}

// newGameLogger creates a logger on w with a fresh session ID.
func newGameLogger(w io.Writer) *gameLogger {
	return &gameLogger{
		l:       log.New(w, "", 0),
		session: uuid.New().String(),
		now:     time.Now,
	}
}

// newSession starts a new session ID, used when a game is restarted.
func (g *gameLogger) newSession() {
	g.session = uuid.New().String()
}

func (g *gameLogger) write(level, format string, args ...interface{}) {
	g.l.Printf("%s %-8s [%s] %s", g.now().Format(logTimeFormat), level, g.session, fmt.Sprintf(format, args...))
}

func (g *gameLogger) Info(format string, args ...interface{}) {
	g.write("INFO", format, args...)
}

func (g *gameLogger) Warning(format string, args ...interface{}) {
	g.write("WARNING", format, args...)
}

func (g *gameLogger) Error(format string, args ...interface{}) {
	g.write("ERROR", format, args...)
}
