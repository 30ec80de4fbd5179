package postgres

import (
	"context"
	"log/slog"
	"time"

	"logistics/internal/adapters/out/postgres/migrations"
	"logistics/internal/core/ports"

	"github.com/lib/pq"
)

const (
	listenerMinReconnect = 10 * time.Second
	listenerMaxReconnect = time.Minute
	listenerPingInterval = 90 * time.Second
)

// ChangeListener turns PostgreSQL change notifications into coverage refresh triggers.
// Notifications from one transaction arrive separately; the orchestrator coalesces them.
type ChangeListener struct {
	dsn     string
	trigger ports.RefreshTrigger
	logger  *slog.Logger
}

func NewChangeListener(dsn string, trigger ports.RefreshTrigger, logger *slog.Logger) *ChangeListener {
	return &ChangeListener{
		dsn:     dsn,
		trigger: trigger,
		logger:  logger.With("component", "pg-change-listener"),
	}
}

// Run listens until ctx is done. A lost connection triggers a poll refresh once
// it is re-established, since notifications sent meanwhile are gone.
func (l *ChangeListener) Run(ctx context.Context) error {
	listener := pq.NewListener(l.dsn, listenerMinReconnect, listenerMaxReconnect, l.onEvent)
	defer func() {
		_ = listener.Close()
	}()

	for _, channel := range []string{migrations.OrdersChangedChannel, migrations.DriverStatusChangedChannel} {
		if err := listener.Listen(channel); err != nil {
			return err
		}
	}
	l.logger.InfoContext(ctx, "listening for store changes")

	ticker := time.NewTicker(listenerPingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case n := <-listener.Notify:
			l.trigger.Trigger(reasonFor(n))
		case <-ticker.C:
			if err := listener.Ping(); err != nil {
				l.logger.WarnContext(ctx, "listener ping failed", "error", err)
			}
		}
	}
}

func (l *ChangeListener) onEvent(ev pq.ListenerEventType, err error) {
	switch ev {
	case pq.ListenerEventConnectionAttemptFailed, pq.ListenerEventDisconnected:
		l.logger.Warn("listener connection problem", "event", ev, "error", err)
	case pq.ListenerEventReconnected:
		l.logger.Info("listener reconnected")
	}
}

// reasonFor maps a notification to a refresh reason. A nil notification is
// delivered by pq after a reconnect.
func reasonFor(n *pq.Notification) ports.RefreshReason {
	if n == nil {
		return ports.RefreshPoll
	}
	switch n.Channel {
	case migrations.OrdersChangedChannel:
		return ports.RefreshOrderChanged
	case migrations.DriverStatusChangedChannel:
		return ports.RefreshDriverChanged
	default:
		return ports.RefreshPoll
	}
}
