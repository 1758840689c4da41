package memchain

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/nimblecoin-miner/internal/consensus"
	"github.com/goodnatureofminers/nimblecoin-miner/internal/mining"
	"github.com/goodnatureofminers/nimblecoin-miner/internal/model"
)

var _ mining.OutputView = (*Chain)(nil)

type utxoSet map[wire.OutPoint]model.OutputInfo

type spentOutput struct {
	outPoint wire.OutPoint
	info     model.OutputInfo
}

// check verifies every input of block against the set without changing it.
func (s utxoSet) check(block *btcutil.Block, height int32, p *consensus.Params) error {
	created := make(map[wire.OutPoint]model.OutputInfo)
	used := make(map[wire.OutPoint]struct{})

	var fees int64
	for i, tx := range block.Transactions() {
		if i == 0 {
			continue
		}
		var in int64
		for _, txIn := range tx.MsgTx().TxIn {
			op := txIn.PreviousOutPoint
			if _, dup := used[op]; dup {
				return fmt.Errorf("%w: %s spent twice in block", ErrMissingInput, op)
			}
			info, ok := created[op]
			if !ok {
				info, ok = s[op]
			}
			if !ok {
				return fmt.Errorf("%w: %s", ErrMissingInput, op)
			}
			if info.Coinbase && height-info.Height < p.CoinbaseMaturity {
				return fmt.Errorf("%w: %s created at %d, spent at %d", ErrImmatureSpend, op, info.Height, height)
			}
			used[op] = struct{}{}
			in += int64(info.Value)
		}

		var out int64
		for idx, txOut := range tx.MsgTx().TxOut {
			out += txOut.Value
			created[wire.OutPoint{Hash: *tx.Hash(), Index: uint32(idx)}] = model.OutputInfo{
				Height:   height,
				Value:    btcutil.Amount(txOut.Value),
				PkScript: txOut.PkScript,
			}
		}
		if out > in {
			return fmt.Errorf("%w: tx %s spends %d of %d", ErrValueOverflow, tx.Hash(), out, in)
		}
		fees += in - out
	}

	var reward int64
	for _, txOut := range block.MsgBlock().Transactions[0].TxOut {
		reward += txOut.Value
	}
	if reward > int64(p.Subsidy)+fees {
		return fmt.Errorf("%w: pays %d, allowed %d", ErrBadCoinbase, reward, int64(p.Subsidy)+fees)
	}
	return nil
}

// connect applies n's block to the set and records the undo data.
func (s utxoSet) connect(n *node, p *consensus.Params) error {
	height := n.tip.Height
	if err := s.check(n.block, height, p); err != nil {
		return err
	}

	n.spent = n.spent[:0]
	for i, tx := range n.block.Transactions() {
		if i > 0 {
			for _, txIn := range tx.MsgTx().TxIn {
				op := txIn.PreviousOutPoint
				n.spent = append(n.spent, spentOutput{outPoint: op, info: s[op]})
				delete(s, op)
			}
		}
		for idx, txOut := range tx.MsgTx().TxOut {
			s[wire.OutPoint{Hash: *tx.Hash(), Index: uint32(idx)}] = model.OutputInfo{
				Height:   height,
				Value:    btcutil.Amount(txOut.Value),
				PkScript: txOut.PkScript,
				Coinbase: i == 0,
			}
		}
	}
	return nil
}

// disconnect reverts connect.
func (s utxoSet) disconnect(n *node) {
	txs := n.block.Transactions()
	for i := len(txs) - 1; i >= 0; i-- {
		for idx := range txs[i].MsgTx().TxOut {
			delete(s, wire.OutPoint{Hash: *txs[i].Hash(), Index: uint32(idx)})
		}
	}
	for i := len(n.spent) - 1; i >= 0; i-- {
		s[n.spent[i].outPoint] = n.spent[i].info
	}
	n.spent = nil
}

// Output returns an unspent output of the best chain.
func (c *Chain) Output(op wire.OutPoint) (model.OutputInfo, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	info, ok := c.utxos[op]
	return info, ok
}

// HasUnspentOutputs reports whether any of the first outputCount outputs of
// txHash is unspent on the best chain.
func (c *Chain) HasUnspentOutputs(txHash chainhash.Hash, outputCount int) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := 0; i < outputCount; i++ {
		if _, ok := c.utxos[wire.OutPoint{Hash: txHash, Index: uint32(i)}]; ok {
			return true
		}
	}
	return false
}

// OwnedOutputs lists unspent outputs whose script satisfies isMine.
func (c *Chain) OwnedOutputs(isMine func(pkScript []byte) bool) []model.OwnedOutput {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []model.OwnedOutput
	for op, info := range c.utxos {
		if isMine(info.PkScript) {
			out = append(out, model.OwnedOutput{OutPoint: op, OutputInfo: info})
		}
	}
	return out
}
