package broadcast

import (
	"context"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/nimblecoin-miner/internal/clock"
)

// DefaultPeerPoll is how often WaitForPeers asks the node for its peer count.
const DefaultPeerPoll = 2 * time.Second

// RPC submits mined blocks to an upstream node.
type RPC struct {
	node     Node
	peerPoll time.Duration
	logger   *zap.Logger
	sleep    func(ctx context.Context, d time.Duration) error
}

// NewRPC submits blocks to node and polls its peer count every peerPoll.
func NewRPC(node Node, peerPoll time.Duration, logger *zap.Logger) *RPC {
	if peerPoll <= 0 {
		peerPoll = DefaultPeerPoll
	}
	return &RPC{
		node:     node,
		peerPoll: peerPoll,
		logger:   logger,
		sleep:    clock.SleepWithContext,
	}
}

func (r *RPC) BroadcastMinedBlock(ctx context.Context, block *btcutil.Block) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := r.node.SubmitBlock(block); err != nil {
		return fmt.Errorf("submitblock %s: %w", block.Hash(), err)
	}
	r.logger.Debug("block submitted upstream", zap.Stringer("hash", block.Hash()))
	return nil
}

// WaitForPeers polls the node until it reports at least minPeers connections.
func (r *RPC) WaitForPeers(ctx context.Context, minPeers int) error {
	for {
		count, err := r.node.GetConnectionCount()
		switch {
		case err != nil:
			r.logger.Warn("peer count unavailable", zap.Error(err))
		case count >= int64(minPeers):
			return nil
		default:
			r.logger.Debug("waiting for peers", zap.Int64("peers", count), zap.Int("min_peers", minPeers))
		}

		if err := r.sleep(ctx, r.peerPoll); err != nil {
			return err
		}
	}
}
