//go:build !zmq

package main

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/nimblecoin-miner/internal/consensus"
	"github.com/goodnatureofminers/nimblecoin-miner/internal/mining"
)

const zmqSupported = false

var errNoZMQ = errors.New("zmq requires a build with -tags zmq")

func newZMQBroadcaster(string, *consensus.Params, *zap.Logger) (mining.Broadcaster, func(), error) {
	return nil, nil, errNoZMQ
}

func startRelaySubscriber(context.Context, []string, func([]byte), *zap.Logger) error {
	return errNoZMQ
}
