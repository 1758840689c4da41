package mining

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/nimblecoin-miner/internal/model"
)

const (
	eventNewHeader    = "new_header"
	eventNewBestBlock = "new_best_block"
	eventReorganize   = "reorganize"
)

var _ Listener = (*Controller)(nil)

// OnNewHeader interrupts the search when a foreign header extends the chain
// beyond the current tip. The header becomes a header-only tip.
func (c *Controller) OnNewHeader(tip model.Tip) {
	foreign := !c.isOwnHash(tip.Hash)
	c.metrics.ObserveChainEvent(eventNewHeader, foreign)
	if !foreign {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if current := c.state.Load(); current != nil && tip.Height <= current.tip.Height {
		c.logger.Debug("ignoring header behind current tip",
			zap.Stringer("hash", &tip.Hash),
			zap.Int32("height", tip.Height),
		)
		return
	}
	c.interrupt(tip, true, eventNewHeader)
}

// OnNewBestBlock interrupts the search when a foreign block becomes the best block.
func (c *Controller) OnNewBestBlock(tip model.Tip) {
	foreign := !c.isOwnBlock(tip.Hash)
	c.metrics.ObserveChainEvent(eventNewBestBlock, foreign)
	if !foreign {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.interrupt(tip, false, eventNewBestBlock)
}

// OnReorganize interrupts the search when the chain switches to a branch not
// headed by one of this controller's blocks.
func (c *Controller) OnReorganize(r model.Reorganize) {
	head, ok := r.NewTip()
	if !ok {
		return
	}
	foreign := !c.isOwnBlock(head.Hash)
	c.metrics.ObserveChainEvent(eventReorganize, foreign)
	if !foreign {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger.Info("chain reorganized",
		zap.Stringer("split", &r.SplitPoint.Hash),
		zap.Int("old_blocks", len(r.OldBlocks)),
		zap.Int("new_blocks", len(r.NewBlocks)),
	)
	c.interrupt(head, false, eventReorganize)
}

// interrupt records the new tip and raises the abandon flag. Callers hold c.mu.
func (c *Controller) interrupt(tip model.Tip, headerOnly bool, reason string) {
	c.state.Store(&tipState{tip: tip, headerOnly: headerOnly})
	c.abandon.Store(true)
	c.logger.Info("mining interrupted",
		zap.String("reason", reason),
		zap.Stringer("tip", &tip.Hash),
		zap.Int32("height", tip.Height),
		zap.Bool("header_only", headerOnly),
	)
}

// isOwnBlock reports whether the block was produced by this controller. A
// block whose coinbase cannot be loaded is treated as foreign.
func (c *Controller) isOwnBlock(hash chainhash.Hash) bool {
	if c.isOwnHash(hash) {
		return true
	}
	coinbase, err := c.chain.Coinbase(hash)
	if err != nil {
		c.logger.Warn("load coinbase failed, treating block as foreign",
			zap.Stringer("hash", &hash),
			zap.Error(err),
		)
		return false
	}
	if coinbase == nil {
		return false
	}
	for _, out := range coinbase.TxOut {
		if c.wallet.IsMine(out.PkScript) {
			return true
		}
	}
	return false
}
