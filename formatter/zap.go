package formatter

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/philipp01105/nlayout/core"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

var zapBufferPool = buffer.NewPool()

// zapEncoder adapts a Formatter to zapcore.Encoder so a zap logger can
// emit parseable documents. Context and call fields are collected by the
// embedded MapObjectEncoder and appended to the message as key=value.
type zapEncoder struct {
	*zapcore.MapObjectEncoder
	formatter Formatter

	// open namespaces, outermost first
	namespaces []string
}

// NewZapEncoder returns a zapcore.Encoder that renders entries with f:
//
//	core := zapcore.NewCore(formatter.NewZapEncoder(f), zapcore.AddSync(w), zapcore.InfoLevel)
//	log := zap.New(core, zap.AddCaller())
func NewZapEncoder(f Formatter) zapcore.Encoder {
	return &zapEncoder{
		MapObjectEncoder: zapcore.NewMapObjectEncoder(),
		formatter:        f,
	}
}

// Clone copies the encoder along with its accumulated context fields
func (z *zapEncoder) Clone() zapcore.Encoder {
	return z.clone()
}

// OpenNamespace nests all fields added afterwards under key
func (z *zapEncoder) OpenNamespace(key string) {
	z.MapObjectEncoder.OpenNamespace(key)
	z.namespaces = append(z.namespaces, key)
}

// clone copies the fields level by level and reopens every namespace, so
// fields added to the copy land in the same namespace and never in the
// original's maps.
func (z *zapEncoder) clone() *zapEncoder {
	m := zapcore.NewMapObjectEncoder()
	src, dst := z.Fields, m.Fields
	for _, ns := range z.namespaces {
		for k, v := range src {
			if k != ns {
				dst[k] = v
			}
		}
		m.OpenNamespace(ns)
		next, ok := src[ns].(map[string]interface{})
		if !ok {
			break
		}
		src, dst = next, dst[ns].(map[string]interface{})
	}
	for k, v := range src {
		if _, nested := dst[k]; !nested {
			dst[k] = v
		}
	}

	return &zapEncoder{
		MapObjectEncoder: m,
		formatter:        z.formatter,
		namespaces:       append([]string(nil), z.namespaces...),
	}
}

// EncodeEntry converts a zap entry into an event and renders it
func (z *zapEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	enc := z.clone()
	for _, f := range fields {
		f.AddTo(enc)
	}

	msg := zapMessage(ent.Message, enc.Fields)
	if ent.Stack != "" {
		msg += "\n" + ent.Stack
	}

	e := &core.Event{
		Logger: ent.LoggerName,
		Level:  zapLevelToCore(ent.Level),
		Data:   msg,
		Time:   ent.Time,
		Thread: core.MainThread(),
	}
	if ent.Caller.Defined {
		e.CallerTracing = true
		e.Caller = core.CallerInfo{
			File:      ent.Caller.File,
			ShortFile: filepath.Base(ent.Caller.File),
			Line:      ent.Caller.Line,
			Function:  ent.Caller.Function,
			Defined:   true,
		}
	}

	out := zapBufferPool.Get()
	if wf, ok := z.formatter.(WriterFormatter); ok {
		if err := wf.FormatTo(e, out); err != nil {
			out.Free()
			return nil, err
		}
		return out, nil
	}

	data, err := z.formatter.Format(e)
	if err != nil {
		out.Free()
		return nil, err
	}
	_, _ = out.Write(data)
	return out, nil
}

// zapMessage appends fields to msg as sorted key=value pairs
func zapMessage(msg string, fields map[string]interface{}) string {
	if len(fields) == 0 {
		return msg
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(msg)
	for _, k := range keys {
		sb.WriteByte(' ')
		sb.WriteString(k)
		sb.WriteByte('=')
		fmt.Fprintf(&sb, "%v", fields[k])
	}
	return sb.String()
}

// zapLevelToCore converts a zapcore.Level to a core.Level.
func zapLevelToCore(l zapcore.Level) core.Level {
	switch {
	case l >= zapcore.FatalLevel:
		return core.FatalLevel
	case l >= zapcore.DPanicLevel:
		return core.PanicLevel
	case l >= zapcore.ErrorLevel:
		return core.ErrorLevel
	case l >= zapcore.WarnLevel:
		return core.WarnLevel
	case l >= zapcore.InfoLevel:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}
