// Package relay implements the block announcement messages miners exchange:
// a pushed header, its acknowledgement and the transaction list that lets a
// peer rebuild the block from its mempool.
package relay

import (
	"errors"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

const (
	CmdPushHeader    = "pushheader"
	CmdPushHeaderAck = "pushheadack"
	CmdPushTxList    = "pushtxlist"

	// MaxTxListItems bounds the hash list of a pushtxlist message.
	MaxTxListItems = 50000
)

var (
	// ErrHeaderTerminator is returned when a pushed header is not followed by a zero byte.
	ErrHeaderTerminator = errors.New("block header does not end with a null byte")
	// ErrTooManyItems is returned when a pushtxlist announces more than MaxTxListItems hashes.
	ErrTooManyItems = errors.New("too many items in pushtxlist message")
)

var (
	_ wire.Message = (*MsgPushHeader)(nil)
	_ wire.Message = (*MsgPushHeaderAck)(nil)
	_ wire.Message = (*MsgPushTxList)(nil)
)

// MsgPushHeader announces a freshly mined header ahead of its transactions.
type MsgPushHeader struct {
	Header wire.BlockHeader
}

// NewMsgPushHeader returns a pushheader message for header.
func NewMsgPushHeader(header wire.BlockHeader) *MsgPushHeader {
	return &MsgPushHeader{Header: header}
}

func (m *MsgPushHeader) BtcDecode(r io.Reader, _ uint32, _ wire.MessageEncoding) error {
	if err := m.Header.Deserialize(r); err != nil {
		return err
	}
	var terminator [1]byte
	if _, err := io.ReadFull(r, terminator[:]); err != nil {
		return err
	}
	if terminator[0] != 0 {
		return ErrHeaderTerminator
	}
	return nil
}

func (m *MsgPushHeader) BtcEncode(w io.Writer, _ uint32, _ wire.MessageEncoding) error {
	if err := m.Header.Serialize(w); err != nil {
		return err
	}
	_, err := w.Write([]byte{0})
	return err
}

func (m *MsgPushHeader) Command() string { return CmdPushHeader }

func (m *MsgPushHeader) MaxPayloadLength(uint32) uint32 { return wire.MaxBlockHeaderPayload + 1 }

// MsgPushHeaderAck acknowledges a pushed header by hash.
type MsgPushHeaderAck struct {
	Hash chainhash.Hash
}

// NewMsgPushHeaderAck returns a pushheadack message for hash.
func NewMsgPushHeaderAck(hash chainhash.Hash) *MsgPushHeaderAck {
	return &MsgPushHeaderAck{Hash: hash}
}

func (m *MsgPushHeaderAck) BtcDecode(r io.Reader, _ uint32, _ wire.MessageEncoding) error {
	_, err := io.ReadFull(r, m.Hash[:])
	return err
}

func (m *MsgPushHeaderAck) BtcEncode(w io.Writer, _ uint32, _ wire.MessageEncoding) error {
	_, err := w.Write(m.Hash[:])
	return err
}

func (m *MsgPushHeaderAck) Command() string { return CmdPushHeaderAck }

func (m *MsgPushHeaderAck) MaxPayloadLength(uint32) uint32 { return chainhash.HashSize }

// MsgPushTxList carries a block's coinbase and the hashes of all of its
// transactions in block order, coinbase first.
type MsgPushTxList struct {
	BlockHash chainhash.Hash
	Coinbase  *wire.MsgTx
	TxHashes  []chainhash.Hash
}

// NewMsgPushTxList describes block.
func NewMsgPushTxList(block *btcutil.Block) (*MsgPushTxList, error) {
	txs := block.Transactions()
	if len(txs) == 0 {
		return nil, fmt.Errorf("block %s has no transactions", block.Hash())
	}
	if len(txs) > MaxTxListItems {
		return nil, fmt.Errorf("%w: %d", ErrTooManyItems, len(txs))
	}
	m := &MsgPushTxList{
		BlockHash: *block.Hash(),
		Coinbase:  txs[0].MsgTx(),
		TxHashes:  make([]chainhash.Hash, 0, len(txs)),
	}
	for _, tx := range txs {
		m.TxHashes = append(m.TxHashes, *tx.Hash())
	}
	return m, nil
}

func (m *MsgPushTxList) BtcDecode(r io.Reader, pver uint32, enc wire.MessageEncoding) error {
	if _, err := io.ReadFull(r, m.BlockHash[:]); err != nil {
		return err
	}
	m.Coinbase = new(wire.MsgTx)
	if err := m.Coinbase.BtcDecode(r, pver, enc); err != nil {
		return fmt.Errorf("decode coinbase: %w", err)
	}
	count, err := wire.ReadVarInt(r, pver)
	if err != nil {
		return err
	}
	if count > MaxTxListItems {
		return fmt.Errorf("%w: %d", ErrTooManyItems, count)
	}
	m.TxHashes = make([]chainhash.Hash, count)
	for i := range m.TxHashes {
		if _, err := io.ReadFull(r, m.TxHashes[i][:]); err != nil {
			return fmt.Errorf("read hash %d of %d: %w", i, count, err)
		}
	}
	return nil
}

func (m *MsgPushTxList) BtcEncode(w io.Writer, pver uint32, enc wire.MessageEncoding) error {
	if m.Coinbase == nil {
		return errors.New("pushtxlist without coinbase")
	}
	if len(m.TxHashes) > MaxTxListItems {
		return fmt.Errorf("%w: %d", ErrTooManyItems, len(m.TxHashes))
	}
	if _, err := w.Write(m.BlockHash[:]); err != nil {
		return err
	}
	if err := m.Coinbase.BtcEncode(w, pver, enc); err != nil {
		return err
	}
	if err := wire.WriteVarInt(w, pver, uint64(len(m.TxHashes))); err != nil {
		return err
	}
	for i := range m.TxHashes {
		if _, err := w.Write(m.TxHashes[i][:]); err != nil {
			return err
		}
	}
	return nil
}

func (m *MsgPushTxList) Command() string { return CmdPushTxList }

func (m *MsgPushTxList) MaxPayloadLength(uint32) uint32 { return wire.MaxMessagePayload }

// Encode serializes msg as a bare payload.
func Encode(w io.Writer, msg wire.Message) error {
	return msg.BtcEncode(w, wire.ProtocolVersion, wire.BaseEncoding)
}
