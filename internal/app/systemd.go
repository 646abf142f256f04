package app

import (
	"context"
	"fmt"
	"time"

	"github.com/coreos/go-systemd/v22/daemon"

	"hwbot/internal/poller"
	logx "hwbot/pkg/logx"
)

// systemd reports readiness, status and watchdog pings when the process runs
// as a Type=notify unit. Outside systemd every call is a no-op.
type systemd struct {
	notify func(state string) (bool, error)
	log    logx.Logger
}

func newSystemd(notify func(string) (bool, error), log logx.Logger) *systemd {
	if notify == nil {
		notify = func(state string) (bool, error) { return daemon.SdNotify(false, state) }
	}
	return &systemd{notify: notify, log: log}
}

func (s *systemd) send(state string) {
	if _, err := s.notify(state); err != nil {
		s.log.Debug("sd_notify failed", logx.String("state", state), logx.Err(err))
	}
}

func (s *systemd) ready()    { s.send(daemon.SdNotifyReady) }
func (s *systemd) stopping() { s.send(daemon.SdNotifyStopping) }

func (s *systemd) tickStatus(d poller.Decision) {
	status := fmt.Sprintf("STATUS=last poll: %s, notified: %t", d.Kind, d.Notify)
	s.send(status)
}

// watchdog pings systemd at half the configured WatchdogSec until ctx ends.
func (s *systemd) watchdog(ctx context.Context) {
	interval, err := daemon.SdWatchdogEnabled(false)
	if err != nil || interval <= 0 {
		return
	}
	t := time.NewTicker(interval / 2)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.send(daemon.SdNotifyWatchdog)
		}
	}
}
