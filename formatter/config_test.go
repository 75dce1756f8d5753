package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig([]byte(`
style: json
items: [level, logger, thread]
timestamp_format: "15:04:05"
time_zone: UTC
`))
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Style)
	assert.Equal(t, []string{"level", "logger", "thread"}, cfg.Items)
	assert.Equal(t, "15:04:05", cfg.TimestampFormat)
	assert.Equal(t, "UTC", cfg.TimeZone)

	_, err = LoadConfig([]byte("items: {not: a list}"))
	assert.Error(t, err)
}

func TestLoadConfig_UnknownKey(t *testing.T) {
	cfg, err := LoadConfig([]byte("item: [pid]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse layout config")
	assert.Contains(t, err.Error(), "item")
	assert.Equal(t, Config{}, cfg)
}

func TestLoadConfig_Empty(t *testing.T) {
	cfg, err := LoadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)

	cfg, err = LoadConfig([]byte("\n"))
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
}

func TestNew(t *testing.T) {
	testCases := []struct {
		name        string
		cfg         Config
		wantYAML    bool
		expectError error
	}{
		{name: "DefaultToYAML", cfg: Config{}, wantYAML: true},
		{name: "YAML", cfg: Config{Style: "YAML"}, wantYAML: true},
		{name: "JSON", cfg: Config{Style: "json"}},
		{name: "UnknownStyle", cfg: Config{Style: "xml"}, expectError: ErrUnknownStyle},
		{name: "UnknownItem", cfg: Config{Items: []string{"foo"}}, expectError: ErrUnknownItem},
		{name: "DuplicateItem", cfg: Config{Style: "json", Items: []string{"pid", "pid"}}, expectError: ErrDuplicateItem},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l, err := New(tc.cfg)
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, l)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, l)

			_, isYAML := l.(*YAMLFormatter)
			assert.Equal(t, tc.wantYAML, isYAML)
		})
	}
}

func TestNew_BadTimeZone(t *testing.T) {
	l, err := New(Config{TimeZone: "Not/AZone"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Not/AZone")
	assert.Nil(t, l)
}

func TestNew_FromLoadedConfig(t *testing.T) {
	cfg, err := LoadConfig([]byte("items: [level, message]\n"))
	require.NoError(t, err)

	l, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"level", "message"}, l.Items())

	out, err := l.Format(newTestEvent("TestLogger", "configured"))
	require.NoError(t, err)
	assert.Equal(t, "---\nlevel: INFO\nmessage: configured\n", string(out))
}
