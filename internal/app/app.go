package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"hwbot/internal/config"
	"hwbot/internal/notify"
	"hwbot/internal/poller"
	"hwbot/internal/practicum"
	"hwbot/internal/runtime/supervisor"
	"hwbot/internal/transport/telegram"
	logx "hwbot/pkg/logx"
)

// Options configure App construction. Zero values mean production defaults.
type Options struct {
	ConfigPath string
	// EnvFiles are loaded into the environment before credentials are read.
	// Nil means ".env"; an empty non-nil slice disables loading.
	EnvFiles []string
	// LookupEnv replaces os.LookupEnv.
	LookupEnv func(string) (string, bool)

	// HTTPClient replaces the Practicum API client.
	HTTPClient *http.Client
	// PollOptions are passed to the poll loop.
	PollOptions []poller.Option
	// SdNotify replaces the systemd notification call.
	SdNotify func(state string) (bool, error)
}

type App struct {
	creds config.Credentials
	cfgm  *config.Manager

	log  logx.Logger
	logs *logx.Service

	sender   *telegram.Sender
	notifier *notify.Notifier
	loop     *poller.Loop
	sd       *systemd

	sup *supervisor.Supervisor
}

// New checks credentials, loads the config and wires the components.
// Missing credentials are reported as *config.ConfigError before anything
// touches the network.
func New(opts Options) (*App, error) {
	if opts.EnvFiles == nil {
		opts.EnvFiles = []string{".env"}
	}
	if len(opts.EnvFiles) > 0 {
		if err := config.LoadDotEnv(opts.EnvFiles...); err != nil {
			return nil, err
		}
	}
	creds, err := config.CredentialsFromEnv(opts.LookupEnv)
	if err != nil {
		return nil, err
	}

	cfgm := config.NewManager(opts.ConfigPath)
	cfg, err := cfgm.Load()
	if err != nil {
		return nil, err
	}

	tgTimeout, err := config.ParseDurationOrDefault("telegram.timeout", cfg.Telegram.Timeout, 10*time.Second)
	if err != nil {
		return nil, err
	}
	sender, err := telegram.New(telegram.Config{
		Token:   creds.TelegramToken,
		Timeout: tgTimeout,
		APIURL:  strings.TrimSpace(cfg.Telegram.APIURL),
	}, logx.Nop())
	if err != nil {
		return nil, err
	}

	logSvc, log := logx.New(mapLogging(cfg), sender, creds.TelegramChatID)
	sender.SetLogger(log.With(logx.String("comp", "telegram")))
	cfgm.SetLogger(log.With(logx.String("comp", "config")))

	apiTimeout, err := config.ParseDurationOrDefault("practicum.timeout", cfg.Practicum.Timeout, 30*time.Second)
	if err != nil {
		return nil, err
	}
	pcfg := practicum.Config{
		Endpoint: strings.TrimSpace(cfg.Practicum.Endpoint),
		Token:    creds.PracticumToken,
		Timeout:  apiTimeout,
		HTTP2:    config.HTTP2Enabled(cfg),
	}
	apiLog := log.With(logx.String("comp", "practicum"))
	hc := opts.HTTPClient
	if hc == nil {
		hc = practicum.NewHTTPClient(pcfg, apiLog)
	}
	api := practicum.New(pcfg, hc, apiLog)

	notifier := notify.New(sender, creds.TelegramChatID, log.With(logx.String("comp", "notifier")))

	interval, err := config.PollInterval(cfg)
	if err != nil {
		return nil, err
	}

	a := &App{
		creds:    creds,
		cfgm:     cfgm,
		log:      log.With(logx.String("comp", "app")),
		logs:     logSvc,
		sender:   sender,
		notifier: notifier,
		sd:       newSystemd(opts.SdNotify, log.With(logx.String("comp", "systemd"))),
	}

	pollOpts := append([]poller.Option{poller.WithTickHook(a.sd.tickStatus)}, opts.PollOptions...)
	a.loop = poller.New(poller.Config{
		Interval: interval,
		FromDate: cfg.Poll.FromDate,
	}, api, notifier, log.With(logx.String("comp", "poller")), pollOpts...)

	return a, nil
}

// Run starts the poll loop and the config watcher and blocks until ctx is
// canceled or a supervised goroutine fails.
func (a *App) Run(ctx context.Context) error {
	a.sup = supervisor.New(ctx,
		supervisor.WithLogger(a.log.With(logx.String("comp", "supervisor"))),
		supervisor.WithCancelOnError(true),
	)

	sub := a.cfgm.Subscribe(8)
	a.sup.Go0("config.reload", func(c context.Context) {
		defer a.cfgm.Unsubscribe(sub)
		a.reloadLoop(c, sub)
	})
	a.sup.Go("config.watch", a.cfgm.Watch)
	a.sup.Go("poller", a.loop.Run)
	a.sup.Go0("systemd.watchdog", a.sd.watchdog)

	a.sd.ready()
	a.log.Info("started", logx.String("config", a.cfgm.Path()))

	<-a.sup.Context().Done()
	return a.stop()
}

func (a *App) stop() error {
	a.sd.stopping()
	a.log.Info("stopping")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := a.sup.Stop(ctx)
	if errors.Is(err, context.DeadlineExceeded) {
		a.log.Warn("shutdown timed out", logx.Err(err))
	}
	_ = a.logs.Close()
	return err
}

func (a *App) reloadLoop(ctx context.Context, sub <-chan *config.Config) {
	lastApplied := a.cfgm.Get()
	for {
		select {
		case <-ctx.Done():
			return
		case newCfg, ok := <-sub:
			if !ok {
				return
			}
			sections, fields := config.SummarizeConfigChange(lastApplied, newCfg)
			lastApplied = newCfg
			if len(sections) == 0 {
				a.log.Debug("config reload received, but no effective changes detected")
				continue
			}
			a.log.Info("config changed", append([]logx.Field{logx.String("changed", strings.Join(sections, ","))}, fields...)...)
			a.logs.Apply(mapLogging(newCfg))
			if config.RestartRequired(sections) {
				a.log.Warn("config changed outside logging; restart required for changes to take effect")
			}
		}
	}
}

func mapLogging(cfg *config.Config) logx.Config {
	return logx.Config{
		Level:   cfg.Logging.Level,
		Console: cfg.Logging.Console,
		File: logx.FileConfig{
			Enabled:    cfg.Logging.File.Enabled,
			Path:       cfg.Logging.File.Path,
			MaxSizeMB:  cfg.Logging.File.MaxSizeMB,
			MaxBackups: cfg.Logging.File.MaxBackups,
		},
		Telegram: logx.TelegramConfig{
			Enabled:    cfg.Logging.Telegram.Enabled,
			MinLevel:   cfg.Logging.Telegram.MinLevel,
			RatePerSec: cfg.Logging.Telegram.RatePerSec,
		},
	}
}
