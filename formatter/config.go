package formatter

import (
	"bytes"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultTimestampFormat renders timestamps as "2006-01-02 15:04:05"
const DefaultTimestampFormat = time.DateTime

// Config holds layout configuration
type Config struct {
	// Style selects the output format for New: "yaml" (default) or "json"
	Style string `yaml:"style"`
	// Items lists the emitted items in order (nil for DefaultItems)
	Items []string `yaml:"items"`
	// TimestampFormat is a time layout (empty for DefaultTimestampFormat)
	TimestampFormat string `yaml:"timestamp_format"`
	// TimeZone is an IANA zone name such as "UTC" (empty for local time)
	TimeZone string `yaml:"time_zone"`
	// Location overrides TimeZone when set
	Location *time.Location `yaml:"-"`
}

// LoadConfig parses a YAML layout configuration:
//
//	style: yaml
//	items: [timestamp, level, logger, message, thread]
//	time_zone: UTC
//
// Unknown keys are rejected. Empty input yields the zero Config.
func LoadConfig(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "parse layout config")
	}
	return cfg, nil
}

func (c Config) location() (*time.Location, error) {
	if c.Location != nil {
		return c.Location, nil
	}
	if c.TimeZone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, errors.Wrapf(err, "time zone %q", c.TimeZone)
	}
	return loc, nil
}

// Layout is a Formatter whose items can be changed after construction
type Layout interface {
	Formatter
	Items() []string
	SetItems(names ...string) error
}

// New creates the layout named by cfg.Style
func New(cfg Config) (Layout, error) {
	switch strings.ToLower(cfg.Style) {
	case "", "yaml":
		f, err := NewYAMLFormatter(cfg)
		if err != nil {
			return nil, err
		}
		return f, nil
	case "json":
		f, err := NewJSONFormatter(cfg)
		if err != nil {
			return nil, err
		}
		return f, nil
	default:
		return nil, errors.Wrapf(ErrUnknownStyle, "style %q", cfg.Style)
	}
}
