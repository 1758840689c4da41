package consensus

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/nimblecoin-miner/internal/model"
)

// ErrMissingAncestor means the local chain lacks a block inside the retarget window.
var ErrMissingAncestor = errors.New("missing ancestor in retarget window")

// HeaderLookup resolves stored headers by hash.
type HeaderLookup interface {
	HeaderByHash(hash chainhash.Hash) (wire.BlockHeader, bool)
}

// HeaderLookupFunc adapts a function to HeaderLookup.
type HeaderLookupFunc func(hash chainhash.Hash) (wire.BlockHeader, bool)

// HeaderByHash implements HeaderLookup.
func (f HeaderLookupFunc) HeaderByHash(hash chainhash.Hash) (wire.BlockHeader, bool) {
	return f(hash)
}

// NextRequiredTarget returns the compact target required for the block
// following prev, using the network's retarget settings.
func (p *Params) NextRequiredTarget(prev model.Tip, lookup HeaderLookup) (uint32, error) {
	return NextRequiredTarget(prev, lookup, p.RetargetInterval, p.TargetTimespanSeconds(), p.PowLimit)
}

// NextRequiredTarget computes the compact target for the block after prev.
// Outside a retarget boundary the previous target is returned unchanged.
func NextRequiredTarget(
	prev model.Tip,
	lookup HeaderLookup,
	interval int32,
	targetTimespan int64,
	powLimit *big.Int,
) (uint32, error) {
	if interval <= 0 || targetTimespan <= 0 {
		return 0, fmt.Errorf("invalid retarget settings: interval %d, timespan %d", interval, targetTimespan)
	}
	if (prev.Height+1)%interval != 0 {
		return prev.Header.Bits, nil
	}

	cursor := prev.Header
	for i := int32(0); i < interval-1; i++ {
		parent, ok := lookup.HeaderByHash(cursor.PrevBlock)
		if !ok {
			return 0, fmt.Errorf("%w: %s at depth %d below height %d", ErrMissingAncestor, cursor.PrevBlock, i+1, prev.Height)
		}
		cursor = parent
	}

	timespan := prev.Header.Timestamp.Unix() - cursor.Timestamp.Unix()
	if minSpan := targetTimespan / 4; timespan < minSpan {
		timespan = minSpan
	}
	if maxSpan := targetTimespan * 4; timespan > maxSpan {
		timespan = maxSpan
	}

	next := blockchain.CompactToBig(prev.Header.Bits)
	next.Mul(next, big.NewInt(timespan))
	next.Div(next, big.NewInt(targetTimespan))
	if next.Cmp(powLimit) > 0 {
		next.Set(powLimit)
	}
	return blockchain.BigToCompact(next), nil
}
