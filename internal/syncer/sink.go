// Package syncer mirrors mutated collections to a remote store on a
// best-effort basis. The remote is an opaque sink: pushes are
// unconfirmed, failures are logged and never retried, and no conflict
// resolution happens on either side.
package syncer

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoSnapshot is returned by Pull when the remote holds no snapshot
// for the requested collection.
var ErrNoSnapshot = errors.New("no remote snapshot")

// Sink receives full-collection snapshots keyed by user identity.
type Sink interface {
	// Push uploads the JSON serialization of one full collection.
	Push(ctx context.Context, userID, collection string, data []byte) error
	// Pull fetches the last pushed snapshot, ErrNoSnapshot if absent.
	Pull(ctx context.Context, userID, collection string) ([]byte, error)
}

// snapshotID builds the remote document id for a (user, collection) pair,
// mirroring the local key namespacing.
func snapshotID(userID, collection string) string {
	if userID == "" {
		return collection
	}
	return fmt.Sprintf("user_%s_%s", userID, collection)
}

// NoopSink is the sink for remote-less configurations: pushes vanish,
// pulls report no snapshot.
type NoopSink struct{}

func (NoopSink) Push(context.Context, string, string, []byte) error {
	return nil
}

func (NoopSink) Pull(context.Context, string, string) ([]byte, error) {
	return nil, ErrNoSnapshot
}
