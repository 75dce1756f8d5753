package formatter

import (
	"bytes"
	"io"
	"strconv"

	"github.com/philipp01105/nlayout/core"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter renders each event as a YAML document holding one
// mapping entry per selected item:
//
//	---
//	timestamp: '2024-01-01 12:00:00'
//	level: INFO
//	logger: ArrayLogger
//	message: log message
type YAMLFormatter struct {
	layout
}

// NewYAMLFormatter creates a new YAML formatter
func NewYAMLFormatter(cfg Config) (*YAMLFormatter, error) {
	f := &YAMLFormatter{}
	if err := f.init(cfg); err != nil {
		return nil, err
	}
	return f, nil
}

// Format renders an event as a YAML document. The error is always nil.
func (f *YAMLFormatter) Format(e *core.Event) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatYAMLToBuffer(e, buf)
	return copyBuffer(buf), nil
}

// FormatTo renders an event and writes it directly to the writer
func (f *YAMLFormatter) FormatTo(e *core.Event, w io.Writer) error {
	buf := getBuffer()

	f.formatYAMLToBuffer(e, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatEntry renders an event into the given buffer (implements BufferFormatter).
func (f *YAMLFormatter) FormatEntry(e *core.Event, buf *bytes.Buffer) {
	f.formatYAMLToBuffer(e, buf)
}

// Render returns the YAML document for e
func (f *YAMLFormatter) Render(e *core.Event) string {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatYAMLToBuffer(e, buf)
	return buf.String()
}

func (f *YAMLFormatter) formatYAMLToBuffer(e *core.Event, buf *bytes.Buffer) {
	items := f.items.load()
	if len(items) == 0 {
		buf.WriteString("--- {}\n")
		return
	}

	buf.WriteString("---\n")
	for _, it := range items {
		appendYAMLEntry(buf, it.String(), f.Resolve(it, e))
	}
}

// appendYAMLEntry writes "key: value\n". Strings go through the yaml
// encoder so that quoting and block style follow YAML rules.
func appendYAMLEntry(buf *bytes.Buffer, key string, v Value) {
	switch v.Kind {
	case NullValue:
		buf.WriteString(key)
		buf.WriteString(": \n")
		return
	case IntValue:
		buf.WriteString(key)
		buf.WriteString(": ")
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), v.Int, 10))
		buf.WriteByte('\n')
		return
	}

	scratch := getBuffer()
	defer putBuffer(scratch)

	err := encodeYAMLEntry(scratch, key, v.Str, 0)
	if err == nil && bytes.HasPrefix(scratch.Bytes()[len(key):], []byte(`: "`)) {
		// yaml.v3 double-quotes strings that would otherwise resolve to
		// another type (timestamps, numbers, booleans). Ask for single
		// quotes instead; the emitter keeps double quotes if the value
		// needs escapes.
		scratch.Reset()
		err = encodeYAMLEntry(scratch, key, v.Str, yaml.SingleQuotedStyle)
	}
	if err != nil {
		// The encoder refuses invalid UTF-8; a Go-quoted string is a
		// valid YAML double-quoted scalar.
		buf.WriteString(key)
		buf.WriteString(": ")
		buf.WriteString(strconv.Quote(v.Str))
		buf.WriteByte('\n')
		return
	}
	buf.Write(scratch.Bytes())
}

// encodeYAMLEntry encodes a one-entry mapping {key: value} into w.
func encodeYAMLEntry(w io.Writer, key, value string, style yaml.Style) error {
	enc := yaml.NewEncoder(w)
	err := enc.Encode(&yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: key},
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: value, Style: style},
		},
	})
	if err != nil {
		return err
	}
	return enc.Close()
}
