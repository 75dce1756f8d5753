// Package core defines the shared types used across the layouts.
//
// It provides the Level type for severity, the Event type that
// represents a single log call, the Thread type that identifies the
// producing task, and the Payload type that turns an event's data into
// message text.
//
// An Event carries arbitrary data. Payload classifies it once into one
// of four variants (text, sequence, error, other object) and renders
// each with a fixed rule, so formatters never inspect the data
// themselves:
//
//	"log message"        -> log message
//	[]int{1, 2, 3, 4}    -> <Array> [1, 2, 3, 4]
//	errors.New("")       -> <*errors.errorString> *errors.errorString
//	struct{ A int }{1}   -> <struct { A int }> {1}
//
// Thread names are read when an event is rendered, not when it is
// created. A Thread travels with a task through its context.Context;
// events created without one belong to MainThread.
package core
