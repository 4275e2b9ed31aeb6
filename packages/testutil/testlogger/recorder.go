package testlogger

import (
	"fmt"
	"sync"
)

// Level of a recorded line.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

type Line struct {
	Level Level
	Text  string
}

// Recorder captures everything written to the program diagnostic channel.
// It optionally forwards each line to another logger.
type Recorder struct {
	mu      sync.Mutex
	lines   []Line
	forward interface {
		LogInfof(format string, param ...interface{})
		LogDebugf(format string, param ...interface{})
		LogErrorf(format string, param ...interface{})
	}
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// NewRecorderFor records lines and also prints them through a test logger.
func NewRecorderFor(t TestingT) *Recorder {
	return &Recorder{forward: NewLogger(t)}
}

func (r *Recorder) record(level Level, format string, param ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, Line{Level: level, Text: fmt.Sprintf(format, param...)})
}

func (r *Recorder) LogDebugf(format string, param ...interface{}) {
	r.record(LevelDebug, format, param...)
	if r.forward != nil {
		r.forward.LogDebugf(format, param...)
	}
}

func (r *Recorder) LogInfof(format string, param ...interface{}) {
	r.record(LevelInfo, format, param...)
	if r.forward != nil {
		r.forward.LogInfof(format, param...)
	}
}

func (r *Recorder) LogErrorf(format string, param ...interface{}) {
	r.record(LevelError, format, param...)
	if r.forward != nil {
		r.forward.LogErrorf(format, param...)
	}
}

// Lines returns the text of every line above debug level.
func (r *Recorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ret []string
	for _, l := range r.lines {
		if l.Level != LevelDebug {
			ret = append(ret, l.Text)
		}
	}
	return ret
}

// All returns every recorded line, debug included.
func (r *Recorder) All() []Line {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Line(nil), r.lines...)
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = nil
}
