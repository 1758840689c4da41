package mining

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/nimblecoin-miner/internal/consensus"
	"github.com/goodnatureofminers/nimblecoin-miner/internal/model"
)

// DefaultCoinbaseMessage prefixes the unix milliseconds written into every coinbase.
const DefaultCoinbaseMessage = "Mining NimbleCoin"

const blockVersion = 1

// ErrCoinbaseScriptSize is returned when the coinbase payload does not fit consensus limits.
var ErrCoinbaseScriptSize = errors.New("coinbase script size out of range")

// Template is a candidate block. Only the header nonce changes during the
// search; the block is assembled once a solution is found.
type Template struct {
	Header       wire.BlockHeader
	Height       int32
	Coinbase     *wire.MsgTx
	Transactions []*model.UnconfirmedTx
	// Empty marks a coinbase-only block built on a header whose
	// transactions are not known locally.
	Empty bool
}

// Target returns the decoded proof-of-work target.
func (t *Template) Target() *big.Int {
	return blockchain.CompactToBig(t.Header.Bits)
}

// TxCount returns the number of transactions including the coinbase.
func (t *Template) TxCount() int {
	return len(t.Transactions) + 1
}

// Block promotes the template to a full block carrying the solved header.
func (t *Template) Block(solved wire.BlockHeader) *btcutil.Block {
	msg := wire.NewMsgBlock(&solved)
	msg.Transactions = make([]*wire.MsgTx, 0, t.TxCount())
	msg.Transactions = append(msg.Transactions, t.Coinbase)
	for _, utx := range t.Transactions {
		msg.Transactions = append(msg.Transactions, utx.Tx.MsgTx())
	}
	block := btcutil.NewBlock(msg)
	block.SetHeight(t.Height)
	return block
}

// Builder assembles templates on top of a chosen tip.
type Builder struct {
	params     *consensus.Params
	headers    consensus.HeaderLookup
	view       OutputView
	pool       Pool
	wallet     Wallet
	maxTxs     int
	message    string
	extraNonce uint64
}

// NewBuilder returns a Builder; maxTxs <= 0 selects DefaultMaxBlockTransactions.
func NewBuilder(
	params *consensus.Params,
	headers consensus.HeaderLookup,
	view OutputView,
	pool Pool,
	wallet Wallet,
	maxTxs int,
	message string,
) *Builder {
	if maxTxs <= 0 {
		maxTxs = DefaultMaxBlockTransactions
	}
	if message == "" {
		message = DefaultCoinbaseMessage
	}
	return &Builder{
		params:  params,
		headers: headers,
		view:    view,
		pool:    pool,
		wallet:  wallet,
		maxTxs:  maxTxs,
		message: message,
	}
}

// Build creates a template extending tip. When headerOnly is set the
// template carries only the coinbase and no selection is attempted.
func (b *Builder) Build(tip model.Tip, headerOnly bool, now time.Time) (*Template, error) {
	height := tip.Height + 1

	bits, err := b.params.NextRequiredTarget(tip, b.headers)
	if err != nil {
		return nil, fmt.Errorf("retarget at height %d: %w", height, err)
	}

	b.extraNonce++
	coinbase, err := b.coinbase(height, now)
	if err != nil {
		return nil, err
	}

	var selected []*model.UnconfirmedTx
	if !headerOnly {
		selected = Select(b.pool.AllPending(), b.view, tip.Height, b.params.CoinbaseMaturity, b.maxTxs)
	}

	txs := make([]*btcutil.Tx, 0, len(selected)+1)
	txs = append(txs, btcutil.NewTx(coinbase))
	for _, utx := range selected {
		txs = append(txs, utx.Tx)
	}

	return &Template{
		Header: wire.BlockHeader{
			Version:    blockVersion,
			PrevBlock:  tip.Hash,
			MerkleRoot: blockchain.CalcMerkleRoot(txs, false),
			Timestamp:  time.Unix(now.Unix(), 0),
			Bits:       bits,
		},
		Height:       height,
		Coinbase:     coinbase,
		Transactions: selected,
		Empty:        headerOnly,
	}, nil
}

func (b *Builder) coinbase(height int32, now time.Time) (*wire.MsgTx, error) {
	sigScript, err := txscript.NewScriptBuilder().
		AddInt64(int64(height)).
		AddInt64(int64(b.extraNonce)).
		AddData([]byte(b.message + strconv.FormatInt(now.UnixMilli(), 10))).
		Script()
	if err != nil {
		return nil, fmt.Errorf("coinbase script: %w", err)
	}
	if len(sigScript) < blockchain.MinCoinbaseScriptLen || len(sigScript) > blockchain.MaxCoinbaseScriptLen {
		return nil, fmt.Errorf("%w: %d bytes", ErrCoinbaseScriptSize, len(sigScript))
	}

	pkScript, err := b.wallet.CoinbaseScript()
	if err != nil {
		return nil, fmt.Errorf("payout script: %w", err)
	}

	tx := wire.NewMsgTx(wire.TxVersion)
	tx.AddTxIn(&wire.TxIn{
		PreviousOutPoint: *wire.NewOutPoint(&chainhash.Hash{}, wire.MaxPrevOutIndex),
		SignatureScript:  sigScript,
		Sequence:         wire.MaxTxInSequenceNum,
	})
	tx.AddTxOut(wire.NewTxOut(int64(b.params.Subsidy), pkScript))
	return tx, nil
}
