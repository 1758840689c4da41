package relay

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"go.uber.org/zap"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Chain interface {
		AddHeader(header wire.BlockHeader) error
		HeaderByHash(hash chainhash.Hash) (wire.BlockHeader, bool)
		Append(block *btcutil.Block) error
	}
	TxPool interface {
		Get(hash chainhash.Hash) (*btcutil.Tx, bool)
		Remove(hash chainhash.Hash)
	}
)

var (
	// ErrUnknownHeader is returned for a transaction list whose header was never pushed.
	ErrUnknownHeader = errors.New("transaction list for unknown header")
	// ErrCoinbaseMismatch is returned when the first listed hash is not the carried coinbase.
	ErrCoinbaseMismatch = errors.New("coinbase does not match transaction list")
	// ErrMissingTransactions is returned when listed transactions are not in the pool.
	ErrMissingTransactions = errors.New("transactions missing from pool")
)

// Receiver applies relay frames from peers: headers go to the chain at once
// so miners can switch to the new tip, blocks are rebuilt from the pool when
// their transaction list arrives.
type Receiver struct {
	chain  Chain
	pool   TxPool
	net    wire.BitcoinNet
	logger *zap.Logger
}

// NewReceiver returns a Receiver for frames carrying net's magic.
func NewReceiver(chain Chain, pool TxPool, net wire.BitcoinNet, logger *zap.Logger) *Receiver {
	return &Receiver{chain: chain, pool: pool, net: net, logger: logger}
}

// HandleFrame decodes and applies one framed message.
func (r *Receiver) HandleFrame(frame []byte) error {
	msg, err := ReadFrame(bytes.NewReader(frame), r.net)
	if err != nil {
		return err
	}
	switch m := msg.(type) {
	case *MsgPushHeader:
		hash := m.Header.BlockHash()
		if err := r.chain.AddHeader(m.Header); err != nil {
			return fmt.Errorf("pushheader %s: %w", hash, err)
		}
		r.logger.Debug("header received", zap.Stringer("hash", hash))
		return nil
	case *MsgPushTxList:
		return r.connect(m)
	case *MsgPushHeaderAck:
		r.logger.Debug("header acknowledged", zap.Stringer("hash", m.Hash))
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, msg.Command())
	}
}

func (r *Receiver) connect(m *MsgPushTxList) error {
	block, err := r.Assemble(m)
	if err != nil {
		return err
	}
	if err := r.chain.Append(block); err != nil {
		return fmt.Errorf("pushtxlist %s: %w", m.BlockHash, err)
	}
	for _, hash := range m.TxHashes[1:] {
		r.pool.Remove(hash)
	}
	r.logger.Info("relayed block connected",
		zap.Stringer("hash", m.BlockHash),
		zap.Int("txs", len(m.TxHashes)))
	return nil
}

// Assemble rebuilds the block described by m from its pushed header, the
// carried coinbase and pooled transactions.
func (r *Receiver) Assemble(m *MsgPushTxList) (*btcutil.Block, error) {
	header, ok := r.chain.HeaderByHash(m.BlockHash)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownHeader, m.BlockHash)
	}
	if m.Coinbase == nil || len(m.TxHashes) == 0 || m.Coinbase.TxHash() != m.TxHashes[0] {
		return nil, fmt.Errorf("%w: block %s", ErrCoinbaseMismatch, m.BlockHash)
	}

	block := wire.NewMsgBlock(&header)
	if err := block.AddTransaction(m.Coinbase); err != nil {
		return nil, err
	}
	var missing int
	for _, hash := range m.TxHashes[1:] {
		tx, ok := r.pool.Get(hash)
		if !ok {
			missing++
			continue
		}
		if err := block.AddTransaction(tx.MsgTx()); err != nil {
			return nil, err
		}
	}
	if missing > 0 {
		return nil, fmt.Errorf("%w: %d of %d in block %s", ErrMissingTransactions, missing, len(m.TxHashes)-1, m.BlockHash)
	}
	return btcutil.NewBlock(block), nil
}
