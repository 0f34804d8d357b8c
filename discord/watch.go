package discord

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// DefaultReconnectGrace is how long the gateway may stay down before
// WatchConnection gives up.
const DefaultReconnectGrace = 5 * time.Minute

// WatchConnection follows gateway state changes (true for connected, false
// for disconnected). It returns nil when ctx is done or states is closed, and
// an error once a disconnect lasts longer than grace. A non-positive grace
// selects DefaultReconnectGrace.
func WatchConnection(ctx context.Context, states <-chan bool, grace time.Duration, logger *slog.Logger) error {
	if grace <= 0 {
		grace = DefaultReconnectGrace
	}

	var timer *time.Timer
	var expired <-chan time.Time
	stop := func() {
		if timer != nil {
			timer.Stop()
			timer, expired = nil, nil
		}
	}
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case up, ok := <-states:
			if !ok {
				return nil
			}
			if up {
				if timer != nil {
					logger.Info("reconnected to discord")
				}
				stop()
				continue
			}
			if timer == nil {
				logger.Warn("disconnected from discord", "grace", grace)
				timer = time.NewTimer(grace)
				expired = timer.C
			}

		case <-expired:
			return fmt.Errorf("disconnected from discord for more than %s", grace)
		}
	}
}
