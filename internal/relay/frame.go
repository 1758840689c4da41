package relay

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

const frameHeaderLen = 4 + wire.CommandSize + 4 + 4

var (
	// ErrWrongNetwork is returned for frames carrying another network's magic.
	ErrWrongNetwork = errors.New("frame for another network")
	// ErrUnknownCommand is returned for frames that are not relay messages.
	ErrUnknownCommand = errors.New("unknown relay command")
	// ErrChecksum is returned when the payload does not match the frame checksum.
	ErrChecksum = errors.New("payload checksum mismatch")
)

// WriteFrame writes msg with the standard message header for net.
func WriteFrame(w io.Writer, msg wire.Message, net wire.BitcoinNet) error {
	return wire.WriteMessage(w, msg, wire.ProtocolVersion, net)
}

// ReadFrame reads one relay message framed by WriteFrame.
func ReadFrame(r io.Reader, net wire.BitcoinNet) (wire.Message, error) {
	var hdr [frameHeaderLen]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, err
	}
	if magic := wire.BitcoinNet(binary.LittleEndian.Uint32(hdr[0:4])); magic != net {
		return nil, fmt.Errorf("%w: %s", ErrWrongNetwork, magic)
	}
	command := string(bytes.TrimRight(hdr[4:4+wire.CommandSize], "\x00"))
	length := binary.LittleEndian.Uint32(hdr[16:20])

	var msg wire.Message
	switch command {
	case CmdPushHeader:
		msg = &MsgPushHeader{}
	case CmdPushHeaderAck:
		msg = &MsgPushHeaderAck{}
	case CmdPushTxList:
		msg = &MsgPushTxList{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
	if length > msg.MaxPayloadLength(wire.ProtocolVersion) {
		return nil, fmt.Errorf("%s payload of %d bytes exceeds limit", command, length)
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, err
	}
	if sum := chainhash.DoubleHashB(payload); !bytes.Equal(sum[:4], hdr[20:24]) {
		return nil, fmt.Errorf("%w: %s", ErrChecksum, command)
	}
	if err := msg.BtcDecode(bytes.NewReader(payload), wire.ProtocolVersion, wire.BaseEncoding); err != nil {
		return nil, fmt.Errorf("decode %s: %w", command, err)
	}
	return msg, nil
}
