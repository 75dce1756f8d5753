package core

import (
	"fmt"
	"reflect"
	"strings"
)

// PayloadKind represents the variant of an event payload
type PayloadKind uint8

const (
	// TextPayload for strings, string-kinded types and []byte, rendered verbatim
	TextPayload PayloadKind = iota
	// SequencePayload for slices and arrays, rendered as "<Array> [e1, e2]"
	SequencePayload
	// ErrorPayload for errors, rendered as "<Type> message"
	ErrorPayload
	// ObjectPayload for any other value, rendered as "<Type> %v"
	ObjectPayload
)

// Payload is event data classified once into one of the PayloadKind
// variants. Text holds the rendered body and Type the concrete Go type
// name used in the tag prefix.
type Payload struct {
	Kind PayloadKind
	Type string
	Text string
}

// PayloadOf classifies data.
func PayloadOf(data interface{}) Payload {
	if data == nil {
		return Payload{Kind: TextPayload}
	}

	typeName := fmt.Sprintf("%T", data)
	v := reflect.ValueOf(data)
	if v.Kind() == reflect.Ptr && v.IsNil() {
		return Payload{Kind: ObjectPayload, Type: typeName, Text: "<nil>"}
	}

	switch d := data.(type) {
	case string:
		return Payload{Kind: TextPayload, Type: typeName, Text: d}
	case []byte:
		return Payload{Kind: TextPayload, Type: typeName, Text: string(d)}
	case error:
		msg, ok := errorText(d)
		if !ok {
			return Payload{Kind: ObjectPayload, Type: typeName, Text: fmt.Sprintf("%v", data)}
		}
		if msg == "" {
			msg = typeName
		}
		return Payload{Kind: ErrorPayload, Type: typeName, Text: msg}
	}

	switch v.Kind() {
	case reflect.String:
		return Payload{Kind: TextPayload, Type: typeName, Text: v.String()}
	case reflect.Slice, reflect.Array:
		var sb strings.Builder
		writeSequence(&sb, v)
		return Payload{Kind: SequencePayload, Type: typeName, Text: sb.String()}
	}

	return Payload{Kind: ObjectPayload, Type: typeName, Text: fmt.Sprintf("%v", data)}
}

// String returns the message text for the payload
func (p Payload) String() string {
	switch p.Kind {
	case TextPayload:
		return p.Text
	case SequencePayload:
		return "<Array> " + p.Text
	default:
		return "<" + p.Type + "> " + p.Text
	}
}

// errorText calls err.Error, reporting false if it panicked.
func errorText(err error) (msg string, ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return err.Error(), true
}

// writeSequence writes v as "[e1, e2, ...]"; nested sequences use the
// same form.
func writeSequence(sb *strings.Builder, v reflect.Value) {
	sb.WriteByte('[')
	for i := 0; i < v.Len(); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		elem := v.Index(i)
		for elem.Kind() == reflect.Interface && !elem.IsNil() {
			elem = elem.Elem()
		}
		if k := elem.Kind(); k == reflect.Slice || k == reflect.Array {
			writeSequence(sb, elem)
			continue
		}
		fmt.Fprintf(sb, "%v", elem.Interface())
	}
	sb.WriteByte(']')
}
