package poller

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	logx "hwbot/pkg/logx"
)

// DefaultInterval is the fixed delay between iterations.
const DefaultInterval = 600 * time.Second

// Notifier delivers text and reports whether it was accepted.
type Notifier interface {
	Send(ctx context.Context, text string) bool
}

type Config struct {
	// Interval between the end of one iteration and the start of the next.
	// Zero means DefaultInterval.
	Interval time.Duration
	// FromDate is the initial timestamp; zero means "now".
	FromDate int64
}

type Option func(*Loop)

// WithClock replaces the wall clock and the timer used between ticks.
func WithClock(now func() time.Time, after func(time.Duration) <-chan time.Time) Option {
	return func(l *Loop) {
		if now != nil {
			l.now = now
		}
		if after != nil {
			l.after = after
		}
	}
}

// WithTickHook registers fn to run after every iteration. Hooks run in
// registration order.
func WithTickHook(fn func(Decision)) Option {
	return func(l *Loop) {
		if fn != nil {
			l.onTick = append(l.onTick, fn)
		}
	}
}

// Loop owns State and is not safe for concurrent use.
type Loop struct {
	fetcher  Fetcher
	notifier Notifier
	log      logx.Logger
	schedule cron.Schedule

	now    func() time.Time
	after  func(time.Duration) <-chan time.Time
	onTick []func(Decision)

	state State
}

func New(cfg Config, f Fetcher, n Notifier, log logx.Logger, opts ...Option) *Loop {
	if log.IsZero() {
		log = logx.Nop()
	}
	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	l := &Loop{
		fetcher:  f,
		notifier: n,
		log:      log,
		schedule: cron.Every(interval),
		now:      time.Now,
		after:    time.After,
	}
	for _, o := range opts {
		o(l)
	}
	l.state.Timestamp = cfg.FromDate
	if l.state.Timestamp <= 0 {
		l.state.Timestamp = l.now().Unix()
	}
	return l
}

// State returns the current loop state.
func (l *Loop) State() State { return l.state }

// Tick runs one iteration.
func (l *Loop) Tick(ctx context.Context) Decision {
	res := Stage(ctx, l.fetcher, l.state.Timestamp)
	next, d := Step(l.state, res)

	delivered := false
	switch {
	case d.Kind == ResultQuiet:
		l.log.Warn("no homeworks in response; skipping", logx.Err(d.Err), logx.Int64("from_date", l.state.Timestamp))
	case d.Notify:
		if d.Kind == ResultFailure {
			l.log.Error("poll iteration failed", logx.Err(d.Err))
		}
		delivered = l.notifier.Send(ctx, d.Message)
	default:
		if d.Kind == ResultFailure {
			l.log.Warn("poll iteration failed (already reported)", logx.Err(d.Err))
		} else {
			l.log.Debug("no new statuses in response")
		}
	}

	if next.Timestamp != l.state.Timestamp {
		l.log.Debug("timestamp updated", logx.Int64("from", l.state.Timestamp), logx.Int64("to", next.Timestamp))
	}
	l.state = next.Commit(d, delivered)
	return d
}

// Run announces startup and polls until ctx is canceled.
func (l *Loop) Run(ctx context.Context) error {
	l.notifier.Send(ctx, StartupMessage)
	l.log.Info("polling started", logx.Int64("from_date", l.state.Timestamp))

	for {
		if ctx.Err() != nil {
			return nil
		}
		d := l.Tick(ctx)
		for _, fn := range l.onTick {
			fn(d)
		}

		now := l.now()
		wait := l.schedule.Next(now).Sub(now)
		select {
		case <-ctx.Done():
			l.log.Info("polling stopped")
			return nil
		case <-l.after(wait):
		}
	}
}
