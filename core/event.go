package core

import (
	"context"
	"path/filepath"
	"runtime"
	"time"
)

// Event is a snapshot of a single log call.
//
// The owner of an Event may change Logger, Level and Data until the
// event is rendered. Formatters only read it.
type Event struct {
	Logger string
	Level  Level
	Data   interface{}

	// CallerTracing records whether the call site was captured.
	CallerTracing bool
	Caller        CallerInfo

	Time time.Time

	// Thread is the identity of the producing task. A nil Thread is
	// treated as MainThread.
	Thread *Thread
}

// CallerInfo contains information about the caller
type CallerInfo struct {
	File      string
	ShortFile string
	Line      int
	Function  string
	Defined   bool
}

// NewEvent creates an event stamped with the current time and owned by
// MainThread. When trace is true the caller of NewEvent is recorded.
func NewEvent(logger string, level Level, data interface{}, trace bool) *Event {
	e := &Event{
		Logger:        logger,
		Level:         level,
		Data:          data,
		CallerTracing: trace,
		Time:          time.Now(),
		Thread:        MainThread(),
	}
	if trace {
		e.Caller = GetCaller(2)
	}
	return e
}

// NewEventContext is like NewEvent but takes the thread identity from ctx.
func NewEventContext(ctx context.Context, logger string, level Level, data interface{}, trace bool) *Event {
	e := &Event{
		Logger:        logger,
		Level:         level,
		Data:          data,
		CallerTracing: trace,
		Time:          time.Now(),
		Thread:        ThreadFromContext(ctx),
	}
	if trace {
		e.Caller = GetCaller(2)
	}
	return e
}

// Message returns the event payload coerced to display text.
func (e *Event) Message() string {
	return PayloadOf(e.Data).String()
}

// GetCaller retrieves caller information
func GetCaller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return CallerInfo{}
	}

	fn := runtime.FuncForPC(pc)
	var funcName string
	if fn != nil {
		funcName = fn.Name()
	}

	return CallerInfo{
		File:      file,
		ShortFile: filepath.Base(file),
		Line:      line,
		Function:  funcName,
		Defined:   true,
	}
}
