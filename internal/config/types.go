package config

// Config is the optional file configuration. Every field has a default, so
// running without a config file is valid. Credentials never live here; see
// Credentials.
//
// All durations are Go duration strings (e.g. "500ms", "10s", "10m").
type Config struct {
	Poll      PollConfig      `json:"poll"`
	Practicum PracticumConfig `json:"practicum"`
	Telegram  TelegramConfig  `json:"telegram"`
	Logging   LoggingConfig   `json:"logging"`
}

// PollConfig controls the polling cadence.
//
// Defaults:
//   - interval: "600s"
//   - from_date: 0 (start from the current time)
//
// Changes take effect on restart.
type PollConfig struct {
	Interval string `json:"interval,omitempty"`
	FromDate int64  `json:"from_date,omitempty" validate:"gte=0"`
}

type PracticumConfig struct {
	// Endpoint overrides the homework statuses URL.
	Endpoint string `json:"endpoint,omitempty" validate:"omitempty,url"`
	// Timeout bounds one fetch. Default "30s".
	Timeout string `json:"timeout,omitempty"`
	// HTTP2 enables the HTTP/2 transport (default true).
	HTTP2 *bool `json:"http2,omitempty"`
}

type TelegramConfig struct {
	// Timeout bounds one send. Default "10s".
	Timeout string `json:"timeout,omitempty"`
	// APIURL overrides the Bot API base URL.
	APIURL string `json:"api_url,omitempty" validate:"omitempty,url"`
}

type LoggingConfig struct {
	Level    string          `json:"level" validate:"loglevel"`
	Console  bool            `json:"console"`
	File     LoggingFile     `json:"file"`
	Telegram LoggingTelegram `json:"telegram"`
}

type LoggingFile struct {
	Enabled    bool   `json:"enabled"`
	Path       string `json:"path"`
	MaxSizeMB  int    `json:"max_size_mb,omitempty" validate:"gte=0"`
	MaxBackups int    `json:"max_backups,omitempty" validate:"gte=0"`
}

// LoggingTelegram forwards log records to the notification chat.
type LoggingTelegram struct {
	Enabled    bool   `json:"enabled"`
	MinLevel   string `json:"min_level" validate:"loglevel"`
	RatePerSec int    `json:"rate_per_sec" validate:"gte=0"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Poll: PollConfig{Interval: "600s"},
		Logging: LoggingConfig{
			Level:   "INFO",
			Console: true,
			File: LoggingFile{
				Enabled:    true,
				Path:       "./main.log",
				MaxSizeMB:  10,
				MaxBackups: 3,
			},
			Telegram: LoggingTelegram{
				Enabled:    false,
				MinLevel:   "ERROR",
				RatePerSec: 1,
			},
		},
	}
}
