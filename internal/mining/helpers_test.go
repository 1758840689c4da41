package mining

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/golang/mock/gomock"

	"github.com/goodnatureofminers/nimblecoin-miner/internal/model"
)

var (
	baseTime    = time.Unix(1700000000, 0)
	payoutToMe  = []byte{0x51}
	payoutOther = []byte{0x52}
)

func outpoint(seed byte, index uint32) wire.OutPoint {
	var h chainhash.Hash
	h[0] = seed
	h[31] = 0xaa
	return wire.OutPoint{Hash: h, Index: index}
}

// pendingTx spends inputs and is made unique by lockTime.
func pendingTx(arrived time.Time, lockTime uint32, inputs ...wire.OutPoint) *model.UnconfirmedTx {
	msg := wire.NewMsgTx(wire.TxVersion)
	for i := range inputs {
		msg.AddTxIn(wire.NewTxIn(&inputs[i], nil, nil))
	}
	msg.AddTxOut(wire.NewTxOut(1000, []byte{0x51}))
	msg.LockTime = lockTime
	return &model.UnconfirmedTx{Tx: btcutil.NewTx(msg), Arrived: arrived}
}

func hashes(txs []*model.UnconfirmedTx) []chainhash.Hash {
	out := make([]chainhash.Hash, 0, len(txs))
	for _, tx := range txs {
		out = append(out, tx.Hash())
	}
	return out
}

// mapView answers output lookups from outputs and reports confirmed for the listed hashes.
func mapView(ctrl *gomock.Controller, outputs map[wire.OutPoint]model.OutputInfo, confirmed ...chainhash.Hash) *MockOutputView {
	view := NewMockOutputView(ctrl)
	view.EXPECT().Output(gomock.Any()).DoAndReturn(func(op wire.OutPoint) (model.OutputInfo, bool) {
		out, ok := outputs[op]
		return out, ok
	}).AnyTimes()
	view.EXPECT().HasUnspentOutputs(gomock.Any(), gomock.Any()).DoAndReturn(func(hash chainhash.Hash, _ int) bool {
		for _, c := range confirmed {
			if c == hash {
				return true
			}
		}
		return false
	}).AnyTimes()
	return view
}

func tipAt(height int32, bits uint32, nonce uint32) model.Tip {
	return model.NewTip(wire.BlockHeader{
		Version:   1,
		Timestamp: baseTime,
		Bits:      bits,
		Nonce:     nonce,
	}, height)
}

func coinbasePaying(pkScript []byte) *wire.MsgTx {
	tx := wire.NewMsgTx(wire.TxVersion)
	tx.AddTxIn(&wire.TxIn{
		PreviousOutPoint: *wire.NewOutPoint(&chainhash.Hash{}, wire.MaxPrevOutIndex),
		SignatureScript:  []byte{0x01, 0x02},
	})
	tx.AddTxOut(wire.NewTxOut(50, pkScript))
	return tx
}
