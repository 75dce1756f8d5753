package formatter

import (
	"bytes"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/philipp01105/nlayout/core"
)

// JSONFormatter renders each event as a single-line JSON object with one
// member per selected item, in item order.
type JSONFormatter struct {
	layout
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(cfg Config) (*JSONFormatter, error) {
	f := &JSONFormatter{}
	if err := f.init(cfg); err != nil {
		return nil, err
	}
	return f, nil
}

// Format renders an event as JSON
func (f *JSONFormatter) Format(e *core.Event) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatJSONToBuffer(e, buf)
	return copyBuffer(buf), nil
}

// FormatTo renders an event as JSON and writes it directly to the writer
func (f *JSONFormatter) FormatTo(e *core.Event, w io.Writer) error {
	buf := getBuffer()

	f.formatJSONToBuffer(e, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatEntry renders an event as JSON into the given buffer (implements BufferFormatter).
func (f *JSONFormatter) FormatEntry(e *core.Event, buf *bytes.Buffer) {
	f.formatJSONToBuffer(e, buf)
}

// formatJSONToBuffer builds JSON manually into the buffer without allocations
func (f *JSONFormatter) formatJSONToBuffer(e *core.Event, buf *bytes.Buffer) {
	buf.WriteByte('{')
	for i, it := range f.items.load() {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(it.String())
		buf.WriteString(`":`)
		appendJSONValue(buf, f.Resolve(it, e))
	}
	buf.WriteString("}\n")
}

// appendJSONValue writes a JSON-encoded item value to the buffer
func appendJSONValue(buf *bytes.Buffer, v Value) {
	switch v.Kind {
	case StringValue:
		buf.WriteByte('"')
		appendJSONString(buf, v.Str)
		buf.WriteByte('"')
	case IntValue:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), v.Int, 10))
	default:
		buf.WriteString("null")
	}
}

// appendJSONString writes a JSON-escaped string (without surrounding quotes) to the buffer.
// Bytes that are not valid UTF-8 are written as \ufffd.
func appendJSONString(buf *bytes.Buffer, s string) {
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= utf8.RuneSelf {
			r, size := utf8.DecodeRuneInString(s[i:])
			if r == utf8.RuneError && size == 1 {
				buf.WriteString(s[start:i])
				buf.WriteString(`\ufffd`)
				start = i + 1
				continue
			}
			i += size - 1
			continue
		}
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		if start < i {
			buf.WriteString(s[start:i])
		}
		switch c {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			buf.WriteString(`\u00`)
			buf.WriteByte(hexChars[c>>4])
			buf.WriteByte(hexChars[c&0x0f])
		}
		start = i + 1
	}
	if start < len(s) {
		buf.WriteString(s[start:])
	}
}

var hexChars = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}
