package formatter

import (
	"os"
	"strconv"
	"time"

	"github.com/philipp01105/nlayout/core"
	"github.com/pkg/errors"
)

// Item names one field a layout can emit
type Item uint8

const (
	// TimestampItem is the event time in the configured format and zone
	TimestampItem Item = iota
	// LevelItem is the uppercase level name
	LevelItem
	// LoggerItem is the logger name
	LoggerItem
	// MessageItem is the event data rendered as a string
	MessageItem
	// FileItem is the caller's file, empty when caller tracing is off
	FileItem
	// LineItem is the caller's line number, empty when caller tracing is off
	LineItem
	// MethodItem is the caller's function, empty when caller tracing is off
	MethodItem
	// PIDItem is the process ID at render time
	PIDItem
	// MillisItem is the millisecond part of the event time
	MillisItem
	// ThreadItem is the thread name, empty when unnamed
	ThreadItem
	// ThreadIDItem is the numeric thread ID
	ThreadIDItem

	numItems
)

var itemNames = [numItems]string{
	TimestampItem: "timestamp",
	LevelItem:     "level",
	LoggerItem:    "logger",
	MessageItem:   "message",
	FileItem:      "file",
	LineItem:      "line",
	MethodItem:    "method",
	PIDItem:       "pid",
	MillisItem:    "millis",
	ThreadItem:    "thread",
	ThreadIDItem:  "thread_id",
}

// String returns the item name as it appears in output
func (i Item) String() string {
	if i < numItems {
		return itemNames[i]
	}
	return "item(" + strconv.Itoa(int(i)) + ")"
}

// ParseItem looks up an item by name
func ParseItem(name string) (Item, error) {
	for i, n := range itemNames {
		if n == name {
			return Item(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownItem, "item %q", name)
}

// ItemNames returns every known item name in registry order
func ItemNames() []string {
	names := make([]string, len(itemNames))
	copy(names, itemNames[:])
	return names
}

// ValueKind represents the type of a resolved item value
type ValueKind uint8

const (
	// NullValue marks an absent value, such as file when the call site
	// was not traced.
	NullValue ValueKind = iota
	StringValue
	IntValue
)

// Value is the resolved value of one item for one event
type Value struct {
	Kind ValueKind
	Str  string
	Int  int64
}

// String returns the textual form of the value; "" for NullValue
func (v Value) String() string {
	switch v.Kind {
	case StringValue:
		return v.Str
	case IntValue:
		return strconv.FormatInt(v.Int, 10)
	default:
		return ""
	}
}

func stringValue(s string) Value { return Value{Kind: StringValue, Str: s} }

func intValue(n int64) Value { return Value{Kind: IntValue, Int: n} }

// resolvers maps each item to the function producing its value.
var resolvers = [numItems]func(l *layout, e *core.Event) Value{
	TimestampItem: func(l *layout, e *core.Event) Value {
		return stringValue(e.Time.In(l.location).Format(l.timestampFormat))
	},
	LevelItem: func(_ *layout, e *core.Event) Value {
		return stringValue(e.Level.String())
	},
	LoggerItem: func(_ *layout, e *core.Event) Value {
		return stringValue(e.Logger)
	},
	MessageItem: func(_ *layout, e *core.Event) Value {
		return stringValue(e.Message())
	},
	FileItem: func(_ *layout, e *core.Event) Value {
		if !e.Caller.Defined {
			return Value{}
		}
		return stringValue(e.Caller.File)
	},
	LineItem: func(_ *layout, e *core.Event) Value {
		if !e.Caller.Defined {
			return Value{}
		}
		return intValue(int64(e.Caller.Line))
	},
	MethodItem: func(_ *layout, e *core.Event) Value {
		if !e.Caller.Defined {
			return Value{}
		}
		return stringValue(e.Caller.Function)
	},
	PIDItem: func(_ *layout, _ *core.Event) Value {
		return intValue(int64(os.Getpid()))
	},
	MillisItem: func(_ *layout, e *core.Event) Value {
		return intValue(int64(e.Time.Nanosecond() / int(time.Millisecond)))
	},
	ThreadItem: func(_ *layout, e *core.Event) Value {
		name := eventThread(e).Name()
		if name == "" {
			return Value{}
		}
		return stringValue(name)
	},
	ThreadIDItem: func(_ *layout, e *core.Event) Value {
		return intValue(eventThread(e).ID())
	},
}

func eventThread(e *core.Event) *core.Thread {
	if e.Thread != nil {
		return e.Thread
	}
	return core.MainThread()
}

// layout holds the state shared by the parseable formatters: the item
// selection and the timestamp settings.
type layout struct {
	items           ItemSelector
	timestampFormat string
	location        *time.Location
}

func (l *layout) init(cfg Config) error {
	loc, err := cfg.location()
	if err != nil {
		return err
	}
	if cfg.Items != nil {
		if err := l.items.Set(cfg.Items...); err != nil {
			return err
		}
	}
	l.location = loc
	l.timestampFormat = cfg.TimestampFormat
	if l.timestampFormat == "" {
		l.timestampFormat = DefaultTimestampFormat
	}
	return nil
}

// Items returns the active item names in output order
func (l *layout) Items() []string {
	return l.items.Names()
}

// SetItems replaces the active items. On error the previous selection
// stays in effect.
func (l *layout) SetItems(names ...string) error {
	return l.items.Set(names...)
}

// Resolve returns the value of a single item for e
func (l *layout) Resolve(it Item, e *core.Event) Value {
	if it >= numItems {
		return Value{}
	}
	return resolvers[it](l, e)
}
