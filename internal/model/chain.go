// Package model defines domain models shared between the chain, mining and storage layers.
package model

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// Tip is an immutable snapshot of a stored block (or a header-only stub).
type Tip struct {
	Hash   chainhash.Hash
	Height int32
	Header wire.BlockHeader
}

// NewTip builds a Tip from a header and its height.
func NewTip(header wire.BlockHeader, height int32) Tip {
	return Tip{Hash: header.BlockHash(), Height: height, Header: header}
}

// ChainSnapshot is the best tip together with the headers whose transactions
// have not arrived yet, read atomically.
type ChainSnapshot struct {
	Best                 Tip
	AwaitingTransactions map[chainhash.Hash]Tip
}

// SyncAheadTip returns the header-only tip that directly extends the best
// block, if one is known.
func (s ChainSnapshot) SyncAheadTip() (Tip, bool) {
	var (
		found Tip
		ok    bool
	)
	for _, tip := range s.AwaitingTransactions {
		if tip.Header.PrevBlock != s.Best.Hash {
			continue
		}
		// Prefer the lowest hash so concurrent stubs resolve deterministically.
		if !ok || CompareHashes(tip.Hash, found.Hash) < 0 {
			found, ok = tip, true
		}
	}
	return found, ok
}

// Reorganize describes a best-chain switch. OldBlocks and NewBlocks are
// ordered from the split point upwards.
type Reorganize struct {
	SplitPoint Tip
	OldBlocks  []Tip
	NewBlocks  []Tip
}

// NewTip returns the head of the new branch.
func (r Reorganize) NewTip() (Tip, bool) {
	if len(r.NewBlocks) == 0 {
		return Tip{}, false
	}
	return r.NewBlocks[len(r.NewBlocks)-1], true
}

// UnconfirmedTx is a mempool entry.
type UnconfirmedTx struct {
	Tx      *btcutil.Tx
	Arrived time.Time
}

// Hash returns the transaction id.
func (u *UnconfirmedTx) Hash() chainhash.Hash {
	return *u.Tx.Hash()
}

// OutputInfo describes an unspent output on the best chain.
type OutputInfo struct {
	Height   int32
	Value    btcutil.Amount
	PkScript []byte
	Coinbase bool
}

// OwnedOutput is an unspent output paying to one of the node's own scripts.
type OwnedOutput struct {
	OutPoint wire.OutPoint
	OutputInfo
}

// CompareHashes orders hashes as 256-bit unsigned integers, the same
// interpretation used by the proof-of-work comparison.
func CompareHashes(a, b chainhash.Hash) int {
	for i := chainhash.HashSize - 1; i >= 0; i-- {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}
