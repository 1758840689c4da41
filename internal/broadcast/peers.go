package broadcast

import (
	"context"
)

// StaticPeers reports a fixed peer count, used when the node runs without an
// upstream connection and its emulated miners are the only peers.
type StaticPeers int

// WaitForPeers returns at once when enough peers exist and otherwise blocks until ctx ends.
func (p StaticPeers) WaitForPeers(ctx context.Context, minPeers int) error {
	if int(p) >= minPeers {
		return nil
	}
	<-ctx.Done()
	return ctx.Err()
}
