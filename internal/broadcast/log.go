// Package broadcast announces mined blocks to the outside world.
package broadcast

import (
	"context"

	"github.com/btcsuite/btcd/btcutil"
	"go.uber.org/zap"
)

// Log only reports mined blocks. It is the broadcaster of a standalone node.
type Log struct {
	logger *zap.Logger
}

// NewLog returns a Broadcaster that only logs mined blocks.
func NewLog(logger *zap.Logger) *Log {
	return &Log{logger: logger}
}

func (l *Log) BroadcastMinedBlock(_ context.Context, block *btcutil.Block) error {
	l.logger.Debug("block announced",
		zap.Stringer("hash", block.Hash()),
		zap.Stringer("prev", &block.MsgBlock().Header.PrevBlock),
		zap.Int("txs", len(block.MsgBlock().Transactions)),
	)
	return nil
}
