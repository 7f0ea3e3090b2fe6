package services

import (
	"context"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/parkwise/parking-service/internal/utils"
)

const listenerRetryDelay = 5 * time.Second

// ChangeListener subscribes to one of the pg_notify channels the schema
// triggers publish on, and invokes a callback whenever that collection
// changes. The overdue sweep hangs off the payments channel so the
// "payment list changed" trigger is an explicit, testable entry point
// rather than a rendering side effect.
type ChangeListener struct {
	pool     *pgxpool.Pool
	channel  string
	onChange func(ctx context.Context)
	status   *utils.StatusSlot
}

func NewChangeListener(
	pool *pgxpool.Pool,
	channel string,
	onChange func(ctx context.Context),
	status *utils.StatusSlot,
) *ChangeListener {
	return &ChangeListener{
		pool:     pool,
		channel:  channel,
		onChange: onChange,
		status:   status,
	}
}

// Run blocks until ctx is canceled, reconnecting with a fixed delay
// when the listening connection drops. A dropped connection only delays
// callbacks; nothing is lost because the callback re-reads state.
func (l *ChangeListener) Run(ctx context.Context) {
	for {
		if err := l.listen(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			utils.Logger.WithError(err).Warnf("Change listener on %q dropped; reconnecting in %v", l.channel, listenerRetryDelay)
			l.status.Record("change_listener", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(listenerRetryDelay):
		}
	}
}

func (l *ChangeListener) listen(ctx context.Context) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+l.channel); err != nil {
		return err
	}
	utils.Logger.Infof("Listening for %s notifications", l.channel)

	for {
		if _, err := conn.Conn().WaitForNotification(ctx); err != nil {
			return err
		}
		l.onChange(ctx)
	}
}
