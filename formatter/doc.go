// Package formatter renders events as parseable documents.
//
// A layout emits a fixed set of named items (timestamp, level, logger,
// message, file, line, method, pid, millis, thread, thread_id), chosen
// and ordered through an ItemSelector. The default selection is
// timestamp, level, logger, message. Each item resolves through a
// static table, so a bad item name is rejected when the selection is
// set and never at render time.
//
// YAMLFormatter writes one YAML document per event, starting with
// "---". String values are emitted through gopkg.in/yaml.v3 so quoting,
// escaping and literal blocks for multi-line messages follow YAML
// rules; numeric items stay plain integers and absent values are left
// empty. JSONFormatter writes the same items as a single-line JSON
// object.
//
// Both formatters implement Formatter, WriterFormatter and
// BufferFormatter and use a pooled bytes.Buffer internally. Buffers
// larger than 64 KiB are not returned to the pool.
//
// NewZapEncoder plugs either layout into a go.uber.org/zap core.
package formatter
