package mining

import (
	"slices"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/nimblecoin-miner/internal/model"
)

// DefaultMaxBlockTransactions bounds the non-coinbase transactions in a template.
const DefaultMaxBlockTransactions = 1000

// Select returns the pending transactions to include in a block built on top
// of prevHeight, ordered by arrival time and then by hash. A transaction is
// kept only when every input spends an existing, mature output that no earlier
// selected transaction already spends.
func Select(
	pool []*model.UnconfirmedTx,
	view OutputView,
	prevHeight int32,
	maturity int32,
	maxCount int,
) []*model.UnconfirmedTx {
	if maxCount <= 0 || len(pool) == 0 {
		return nil
	}

	candidates := make([]*model.UnconfirmedTx, 0, len(pool))
	for _, utx := range pool {
		if utx == nil || utx.Tx == nil {
			continue
		}
		msg := utx.Tx.MsgTx()
		if blockchain.IsCoinBaseTx(msg) {
			continue
		}
		// Already on the best chain.
		if view.HasUnspentOutputs(*utx.Tx.Hash(), len(msg.TxOut)) {
			continue
		}
		candidates = append(candidates, utx)
	}
	slices.SortFunc(candidates, compareUnconfirmed)

	nextHeight := prevHeight + 1
	claimed := make(map[wire.OutPoint]struct{})
	selected := make([]*model.UnconfirmedTx, 0, min(len(candidates), maxCount))
	for _, utx := range candidates {
		inputs := utx.Tx.MsgTx().TxIn
		if !spendable(inputs, view, claimed, nextHeight, maturity) {
			continue
		}
		for _, in := range inputs {
			claimed[in.PreviousOutPoint] = struct{}{}
		}
		selected = append(selected, utx)
		if len(selected) == maxCount {
			break
		}
	}
	return selected
}

func spendable(
	inputs []*wire.TxIn,
	view OutputView,
	claimed map[wire.OutPoint]struct{},
	nextHeight, maturity int32,
) bool {
	seen := make(map[wire.OutPoint]struct{}, len(inputs))
	for _, in := range inputs {
		op := in.PreviousOutPoint
		if _, dup := claimed[op]; dup {
			return false
		}
		if _, dup := seen[op]; dup {
			return false
		}
		seen[op] = struct{}{}

		out, ok := view.Output(op)
		if !ok {
			return false
		}
		if out.Coinbase && nextHeight-out.Height < maturity {
			return false
		}
	}
	return true
}

func compareUnconfirmed(a, b *model.UnconfirmedTx) int {
	if c := a.Arrived.Compare(b.Arrived); c != 0 {
		return c
	}
	return model.CompareHashes(*a.Tx.Hash(), *b.Tx.Hash())
}
