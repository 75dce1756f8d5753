package core

import (
	"context"
	"sync/atomic"
)

// Thread identifies the goroutine or task that produced an event. Go does
// not expose goroutine identity, so tasks that want their own name in the
// output create a Thread and carry it in a context.
type Thread struct {
	id   int64
	name atomic.Pointer[string]
}

var (
	lastThreadID atomic.Int64
	mainThread   = NewThread("")
)

// NewThread allocates a Thread with a process-unique ID.
func NewThread(name string) *Thread {
	t := &Thread{id: lastThreadID.Add(1)}
	if name != "" {
		t.name.Store(&name)
	}
	return t
}

// MainThread returns the identity used for events created without one.
func MainThread() *Thread {
	return mainThread
}

// ID returns the numeric identifier of the thread
func (t *Thread) ID() int64 {
	return t.id
}

// Name returns the current name, or "" when unset.
func (t *Thread) Name() string {
	if p := t.name.Load(); p != nil {
		return *p
	}
	return ""
}

// SetName replaces the thread name. An empty name unsets it.
func (t *Thread) SetName(name string) {
	if name == "" {
		t.name.Store(nil)
		return
	}
	t.name.Store(&name)
}

type threadKey struct{}

// WithThread returns a copy of ctx carrying t.
func WithThread(ctx context.Context, t *Thread) context.Context {
	return context.WithValue(ctx, threadKey{}, t)
}

// ThreadFromContext returns the Thread stored in ctx, or MainThread.
func ThreadFromContext(ctx context.Context) *Thread {
	if ctx != nil {
		if t, ok := ctx.Value(threadKey{}).(*Thread); ok && t != nil {
			return t
		}
	}
	return mainThread
}
