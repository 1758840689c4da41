package broadcast

import (
	"context"
	"errors"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/goodnatureofminers/nimblecoin-miner/internal/mining"
)

// Multi hands every block to all broadcasters, even when one of them fails.
type Multi []mining.Broadcaster

func (m Multi) BroadcastMinedBlock(ctx context.Context, block *btcutil.Block) error {
	var errs []error
	for _, b := range m {
		if err := b.BroadcastMinedBlock(ctx, block); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
