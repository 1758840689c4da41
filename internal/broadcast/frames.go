package broadcast

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/nimblecoin-miner/internal/relay"
)

// Frame is one relay message ready to publish.
type Frame struct {
	Command string
	Payload []byte
}

// BlockFrames encodes the announcement of block: its header first, then its transaction list.
func BlockFrames(block *btcutil.Block, net wire.BitcoinNet) ([]Frame, error) {
	txList, err := relay.NewMsgPushTxList(block)
	if err != nil {
		return nil, err
	}

	msgs := []wire.Message{
		relay.NewMsgPushHeader(block.MsgBlock().Header),
		txList,
	}
	frames := make([]Frame, 0, len(msgs))
	for _, msg := range msgs {
		var buf bytes.Buffer
		if err := relay.WriteFrame(&buf, msg, net); err != nil {
			return nil, fmt.Errorf("frame %s: %w", msg.Command(), err)
		}
		frames = append(frames, Frame{Command: msg.Command(), Payload: buf.Bytes()})
	}
	return frames, nil
}
