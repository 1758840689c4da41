package consensus

import (
	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

// NewGenesisCoinbase builds the genesis coinbase paying the subsidy to pubKey.
// The input script carries GenesisMessage, one byte per character.
func NewGenesisCoinbase(subsidy btcutil.Amount, pubKey []byte) (*wire.MsgTx, error) {
	pkScript, err := txscript.NewScriptBuilder().
		AddData(pubKey).
		AddOp(txscript.OP_CHECKSIG).
		Script()
	if err != nil {
		return nil, err
	}

	message := []rune(GenesisMessage)
	sigScript := make([]byte, len(message))
	for i, r := range message {
		sigScript[i] = byte(r)
	}

	tx := wire.NewMsgTx(wire.TxVersion)
	tx.AddTxIn(&wire.TxIn{
		PreviousOutPoint: *wire.NewOutPoint(&chainhash.Hash{}, wire.MaxPrevOutIndex),
		SignatureScript:  sigScript,
		Sequence:         wire.MaxTxInSequenceNum,
	})
	tx.AddTxOut(wire.NewTxOut(int64(subsidy), pkScript))
	return tx, nil
}

// NewGenesisBlock returns the genesis block of the network. Its proof of work
// is taken from the parameters and not re-checked.
func NewGenesisBlock(p *Params) (*wire.MsgBlock, error) {
	coinbase, err := NewGenesisCoinbase(p.Subsidy, p.GenesisPubKey)
	if err != nil {
		return nil, err
	}

	header := wire.BlockHeader{
		Version:    1,
		PrevBlock:  chainhash.Hash{},
		MerkleRoot: blockchain.CalcMerkleRoot([]*btcutil.Tx{btcutil.NewTx(coinbase)}, false),
		Timestamp:  p.GenesisTime,
		Bits:       p.GenesisBits,
		Nonce:      p.GenesisNonce,
	}
	block := wire.NewMsgBlock(&header)
	if err := block.AddTransaction(coinbase); err != nil {
		return nil, err
	}
	return block, nil
}
