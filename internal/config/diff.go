package config

import (
	"strings"

	logx "hwbot/pkg/logx"
)

// SummarizeConfigChange returns the changed sections and safe structured
// fields for logging them.
func SummarizeConfigChange(oldCfg, newCfg *Config) ([]string, []logx.Field) {
	if oldCfg == nil {
		oldCfg = &Config{}
	}
	if newCfg == nil {
		newCfg = &Config{}
	}

	changed := make([]string, 0, 4)
	fields := make([]logx.Field, 0, 12)

	if oldCfg.Poll != newCfg.Poll {
		changed = append(changed, "poll")
		fields = append(fields,
			logx.String("poll.interval", strings.TrimSpace(newCfg.Poll.Interval)),
			logx.Int64("poll.from_date", newCfg.Poll.FromDate),
		)
	}

	if strings.TrimSpace(oldCfg.Practicum.Endpoint) != strings.TrimSpace(newCfg.Practicum.Endpoint) ||
		strings.TrimSpace(oldCfg.Practicum.Timeout) != strings.TrimSpace(newCfg.Practicum.Timeout) ||
		boolOr(oldCfg.Practicum.HTTP2, true) != boolOr(newCfg.Practicum.HTTP2, true) {
		changed = append(changed, "practicum")
		fields = append(fields,
			logx.String("practicum.endpoint", strings.TrimSpace(newCfg.Practicum.Endpoint)),
			logx.String("practicum.timeout", strings.TrimSpace(newCfg.Practicum.Timeout)),
		)
	}

	if oldCfg.Telegram != newCfg.Telegram {
		changed = append(changed, "telegram")
		fields = append(fields, logx.String("telegram.timeout", strings.TrimSpace(newCfg.Telegram.Timeout)))
	}

	if oldCfg.Logging != newCfg.Logging {
		changed = append(changed, "logging")
		fields = append(fields,
			logx.String("logging.level", newCfg.Logging.Level),
			logx.Bool("logging.console", newCfg.Logging.Console),
			logx.Bool("logging.file_enabled", newCfg.Logging.File.Enabled),
			logx.Bool("logging.telegram_enabled", newCfg.Logging.Telegram.Enabled),
		)
	}

	return changed, fields
}

// RestartRequired reports whether any of the changed sections only take
// effect on restart.
func RestartRequired(changed []string) bool {
	for _, s := range changed {
		if s != "logging" {
			return true
		}
	}
	return false
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

// HTTP2Enabled reports practicum.http2, defaulting to true.
func HTTP2Enabled(cfg *Config) bool { return boolOr(cfg.Practicum.HTTP2, true) }
