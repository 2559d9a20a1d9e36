package syncer

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

// Dispatcher pushes mutated collections to the sink asynchronously.
// Dispatch never blocks the caller and never surfaces errors; a failed
// push is logged and dropped, not retried.
type Dispatcher struct {
	sink    Sink
	timeout time.Duration
}

// NewDispatcher creates a Dispatcher over the given sink.
func NewDispatcher(sink Sink) *Dispatcher {
	return &Dispatcher{sink: sink, timeout: 30 * time.Second}
}

// Dispatch starts the push in a goroutine and returns a channel that
// closes when the push has finished (successfully or not). Callers may
// ignore the channel for true fire-and-forget, or wait on it in tests.
func (d *Dispatcher) Dispatch(userID, collection string, data []byte) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()
		if err := d.sink.Push(ctx, userID, collection, data); err != nil {
			log.WithError(err).WithFields(log.Fields{
				"collection": collection,
				"userID":     userID,
			}).Error("sync push failed")
		}
	}()
	return done
}

// Pull reads a remote snapshot synchronously; used by the load path.
func (d *Dispatcher) Pull(ctx context.Context, userID, collection string) ([]byte, error) {
	return d.sink.Pull(ctx, userID, collection)
}
