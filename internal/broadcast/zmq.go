//go:build zmq

package broadcast

import (
	"context"
	"fmt"
	"sync"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/wire"
	"github.com/pebbe/zmq4"
	"go.uber.org/zap"
)

// ZMQ publishes relay frames on a PUB socket. Each frame is a two part
// message: the relay command as topic, then the framed payload.
type ZMQ struct {
	mu     sync.Mutex
	sock   *zmq4.Socket
	net    wire.BitcoinNet
	logger *zap.Logger
}

// NewZMQ binds a PUB socket on addr.
func NewZMQ(addr string, net wire.BitcoinNet, logger *zap.Logger) (*ZMQ, error) {
	sock, err := zmq4.NewSocket(zmq4.PUB)
	if err != nil {
		return nil, fmt.Errorf("zmq socket: %w", err)
	}
	if err := sock.Bind(addr); err != nil {
		sock.Close()
		return nil, fmt.Errorf("zmq bind %s: %w", addr, err)
	}
	return &ZMQ{sock: sock, net: net, logger: logger}, nil
}

func (z *ZMQ) BroadcastMinedBlock(ctx context.Context, block *btcutil.Block) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	frames, err := BlockFrames(block, z.net)
	if err != nil {
		return err
	}

	// zmq sockets are not safe for concurrent use
	z.mu.Lock()
	defer z.mu.Unlock()
	for _, f := range frames {
		if _, err := z.sock.SendMessage(f.Command, f.Payload); err != nil {
			return fmt.Errorf("zmq publish %s: %w", f.Command, err)
		}
	}
	z.logger.Debug("block published", zap.Stringer("hash", block.Hash()), zap.Int("frames", len(frames)))
	return nil
}

func (z *ZMQ) Close() error {
	z.mu.Lock()
	defer z.mu.Unlock()
	return z.sock.Close()
}
