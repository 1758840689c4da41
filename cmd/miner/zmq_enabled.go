//go:build zmq

package main

import (
	"context"
	"fmt"
	"syscall"
	"time"

	"github.com/pebbe/zmq4"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/nimblecoin-miner/internal/broadcast"
	"github.com/goodnatureofminers/nimblecoin-miner/internal/consensus"
	"github.com/goodnatureofminers/nimblecoin-miner/internal/mining"
	"github.com/goodnatureofminers/nimblecoin-miner/internal/relay"
)

const (
	zmqSupported   = true
	zmqRecvTimeout = time.Second
)

func newZMQBroadcaster(addr string, params *consensus.Params, logger *zap.Logger) (mining.Broadcaster, func(), error) {
	pub, err := broadcast.NewZMQ(addr, params.Net.Net, logger)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("publishing relay frames", zap.String("addr", addr))
	return pub, func() {
		if err := pub.Close(); err != nil {
			logger.Warn("close zmq publisher", zap.Error(err))
		}
	}, nil
}

// startRelaySubscriber hands every relay frame published by addrs to handle
// until ctx ends.
func startRelaySubscriber(ctx context.Context, addrs []string, handle func(frame []byte), logger *zap.Logger) error {
	sub, err := newSubscriber(addrs, relay.CmdPushHeader, relay.CmdPushTxList, relay.CmdPushHeaderAck)
	if err != nil {
		return fmt.Errorf("connect zmq: %w", err)
	}
	logger.Info("subscribed to relay frames", zap.Strings("peers", addrs))

	go func() {
		defer sub.Close()
		for {
			if ctx.Err() != nil {
				return
			}

			msgParts, err := sub.RecvMessageBytes(0)
			if err != nil {
				if zmq4.AsErrno(err) == zmq4.Errno(syscall.EAGAIN) {
					continue
				}
				logger.Warn("zmq recv failed", zap.Error(err))
				time.Sleep(time.Second)
				continue
			}
			if len(msgParts) < 2 {
				logger.Warn("skip malformed zmq message", zap.Int("parts", len(msgParts)))
				continue
			}
			handle(msgParts[1])
		}
	}()
	return nil
}

func newSubscriber(addrs []string, topics ...string) (*zmq4.Socket, error) {
	sub, err := zmq4.NewSocket(zmq4.SUB)
	if err != nil {
		return nil, err
	}
	if err := sub.SetRcvtimeo(zmqRecvTimeout); err != nil {
		sub.Close()
		return nil, err
	}
	for _, topic := range topics {
		if err := sub.SetSubscribe(topic); err != nil {
			sub.Close()
			return nil, err
		}
	}
	for _, addr := range addrs {
		if err := sub.Connect(addr); err != nil {
			sub.Close()
			return nil, fmt.Errorf("%s: %w", addr, err)
		}
	}
	return sub, nil
}
