package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestParseDefaultsWithoutFile(t *testing.T) {
	t.Parallel()
	cfg, err := NewManager("").Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	d, err := PollInterval(cfg)
	require.NoError(t, err)
	assert.Equal(t, 600*time.Second, d)
	assert.True(t, HTTP2Enabled(cfg))
}

func TestParseYAMLMergesDefaults(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "hwbot.yaml")
	writeFile(t, path, `
poll:
  interval: 15m
practicum:
  timeout: 5s
  http2: false
logging:
  level: debug
  telegram:
    enabled: false
`)

	cfg, err := NewManager(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "15m", cfg.Poll.Interval)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Console, "omitted fields keep defaults")
	assert.False(t, cfg.Logging.Telegram.Enabled)
	assert.Equal(t, "ERROR", cfg.Logging.Telegram.MinLevel)
	assert.False(t, HTTP2Enabled(cfg))
}

func TestParseRejectsInvalid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "unknown field", file: "c.json", content: `{"poll":{"every":"1m"}}`},
		{name: "trailing data", file: "c.json", content: `{} {}`},
		{name: "bad duration", file: "c.json", content: `{"poll":{"interval":"soon"}}`},
		{name: "interval too short", file: "c.json", content: `{"poll":{"interval":"10ms"}}`},
		{name: "bad level", file: "c.yml", content: "logging:\n  level: loud\n"},
		{name: "bad endpoint", file: "c.yml", content: "practicum:\n  endpoint: not a url\n"},
		{name: "negative from_date", file: "c.json", content: `{"poll":{"from_date":-1}}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			writeFile(t, path, tt.content)
			_, err := NewManager(path).Parse()
			assert.Error(t, err)
		})
	}
}

func TestWatchPublishesChanges(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "hwbot.json")
	writeFile(t, path, `{"logging":{"level":"INFO"}}`)

	m := NewManager(path)
	m.debounce = 10 * time.Millisecond
	_, err := m.Load()
	require.NoError(t, err)
	sub := m.Subscribe(1)
	defer m.Unsubscribe(sub)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.Watch(ctx) }()
	defer func() {
		cancel()
		require.NoError(t, <-done)
	}()

	// The watcher may start after the first write; keep writing until an
	// update arrives.
	deadline := time.After(5 * time.Second)
	for {
		writeFile(t, path, `{"logging":{"level":"DEBUG"}}`)
		select {
		case cfg := <-sub:
			assert.Equal(t, "DEBUG", cfg.Logging.Level)
			assert.Equal(t, "DEBUG", m.Get().Logging.Level)
			return
		case <-time.After(100 * time.Millisecond):
		case <-deadline:
			t.Fatal("no config update published")
		}
	}
}

func TestWatchWithoutPathReturns(t *testing.T) {
	t.Parallel()
	assert.NoError(t, NewManager("").Watch(context.Background()))
}

func TestSummarizeConfigChange(t *testing.T) {
	t.Parallel()
	a := Default()
	b := Default()
	b.Logging.Level = "DEBUG"

	changed, fields := SummarizeConfigChange(a, b)
	assert.Equal(t, []string{"logging"}, changed)
	assert.NotEmpty(t, fields)
	assert.False(t, RestartRequired(changed))

	b.Poll.Interval = "1m"
	changed, _ = SummarizeConfigChange(a, b)
	assert.Equal(t, []string{"poll", "logging"}, changed)
	assert.True(t, RestartRequired(changed))
}

func TestParseEmptyYAML(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "hwbot.yml")
	writeFile(t, path, "# nothing configured\n")

	cfg, err := NewManager(path).Parse()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
