package main

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/nimblecoin-miner/internal/broadcast"
	"github.com/goodnatureofminers/nimblecoin-miner/internal/consensus"
	"github.com/goodnatureofminers/nimblecoin-miner/internal/memchain"
	"github.com/goodnatureofminers/nimblecoin-miner/internal/metrics"
	"github.com/goodnatureofminers/nimblecoin-miner/internal/mining"
	"github.com/goodnatureofminers/nimblecoin-miner/internal/pkg/btcd/rpcclient"
	"github.com/goodnatureofminers/nimblecoin-miner/internal/recorder"
	"github.com/goodnatureofminers/nimblecoin-miner/internal/relay"
	"github.com/goodnatureofminers/nimblecoin-miner/internal/repository/clickhouse"
	"github.com/goodnatureofminers/nimblecoin-miner/internal/txgen"
	"github.com/goodnatureofminers/nimblecoin-miner/internal/wallet"
	"github.com/goodnatureofminers/nimblecoin-miner/pkg/workerpool"
)

// node owns every long-lived component of the process.
type node struct {
	logger     *zap.Logger
	params     *consensus.Params
	chain      *memchain.Chain
	pool       *memchain.Mempool
	service    *mining.Service
	generators []*txgen.Generator
	recorder   *recorder.Recorder
	receiver   *relay.Receiver
	zmqPeers   []string

	closers []func()
}

func newNode(cfg config, logger *zap.Logger) (n *node, err error) {
	params, err := consensus.ParamsForNetwork(cfg.Network)
	if err != nil {
		return nil, err
	}
	payout, err := wallet.DecodePayoutAddress(cfg.PayoutAddress, params.Net)
	if err != nil {
		return nil, err
	}
	keys, err := wallet.NewKeyring(cfg.Miners, payout)
	if err != nil {
		return nil, err
	}

	n = &node{logger: logger, params: params, pool: memchain.NewMempool()}
	created := n
	defer func() {
		if err != nil {
			created.close()
		}
	}()

	n.chain, err = memchain.New(params, logger.Named("chain"))
	if err != nil {
		return nil, fmt.Errorf("chain: %w", err)
	}
	n.closers = append(n.closers, n.chain.Close)

	if len(cfg.ZMQPeers) > 0 {
		if !zmqSupported {
			return nil, errors.New("zmq peers require a build with -tags zmq")
		}
		n.receiver = relay.NewReceiver(n.chain, n.pool, params.Net.Net, logger.Named("relay"))
		n.zmqPeers = cfg.ZMQPeers
	}

	broadcaster, peers, err := n.outputs(cfg)
	if err != nil {
		return nil, err
	}
	if err := n.openRecorder(cfg); err != nil {
		return nil, err
	}

	controllers := make([]*mining.Controller, 0, keys.Len())
	for i := 0; i < keys.Len(); i++ {
		account := keys.Account(i)
		var observer mining.BlockObserver
		if n.recorder != nil {
			if observer, err = n.recorder.ForInstance(i); err != nil {
				return nil, err
			}
		}

		builder := mining.NewBuilder(params, n.chain, n.chain, n.pool, account, cfg.MaxBlockTxs, cfg.CoinbaseMessage)
		c, err := mining.NewController(n.chain, builder, n.pool, account, broadcaster,
			metrics.NewMiner(params.Name, i), observer,
			mining.ControllerConfig{
				Instance:     i,
				PollEvery:    cfg.PollNonces,
				AttemptDelay: cfg.AttemptDelay,
				MaxJitter:    cfg.MaxJitter,
			}, logger)
		if err != nil {
			return nil, fmt.Errorf("controller %d: %w", i, err)
		}
		controllers = append(controllers, c)

		n.generators = append(n.generators, txgen.New(peers, n.chain, n.pool, account, txgen.Config{
			RatePerSecond: cfg.TxRate,
			MinPeers:      cfg.MinPeers,
			Maturity:      params.CoinbaseMaturity,
		}, logger.With(zap.Int("instance", i))))
	}

	if n.service, err = mining.NewService(controllers, logger); err != nil {
		return nil, err
	}
	return n, nil
}

// outputs picks where mined blocks go and who counts as a peer.
func (n *node) outputs(cfg config) (mining.Broadcaster, txgen.Peers, error) {
	broadcasters := broadcast.Multi{broadcast.NewLog(n.logger.Named("broadcast"))}
	var peers txgen.Peers = broadcast.StaticPeers(cfg.Miners - 1)

	if cfg.RPCURL != "" {
		client, err := rpcclient.Dial(rpcclient.Config{
			Host:       cfg.RPCURL,
			User:       cfg.RPCUser,
			Password:   cfg.RPCPassword,
			DisableTLS: !cfg.RPCTLS,
		}, metrics.NewRPCClient(n.params.Name))
		if err != nil {
			return nil, nil, err
		}
		n.closers = append(n.closers, client.Shutdown)

		rpc := broadcast.NewRPC(client, cfg.PeerPoll, n.logger.Named("rpc"))
		broadcasters = append(broadcasters, rpc)
		peers = rpc
	}

	if cfg.ZMQAddr != "" {
		pub, closeFn, err := newZMQBroadcaster(cfg.ZMQAddr, n.params, n.logger.Named("zmq"))
		if err != nil {
			return nil, nil, err
		}
		n.closers = append(n.closers, closeFn)
		broadcasters = append(broadcasters, pub)
	}

	if cfg.TxRate > 0 && cfg.RPCURL == "" && cfg.Miners-1 < cfg.MinPeers {
		n.logger.Warn("transaction generation will wait forever: not enough emulated peers",
			zap.Int("miners", cfg.Miners), zap.Int("min_peers", cfg.MinPeers))
	}
	return broadcasters, peers, nil
}

func (n *node) openRecorder(cfg config) error {
	if cfg.ClickhouseDSN == "" {
		return nil
	}
	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return err
	}
	n.closers = append(n.closers, func() {
		if err := repo.Close(); err != nil {
			n.logger.Warn("close clickhouse", zap.Error(err))
		}
	})

	n.recorder = recorder.New(repo, metrics.NewRecorder(n.params.Name), n.params.Name,
		recorder.Config{}, n.logger.Named("recorder"))
	return nil
}

// run mines until ctx ends or every miner exits, then stops in dependency order.
func (n *node) run(ctx context.Context) error {
	if n.recorder != nil {
		// the recorder outlives ctx so the final batch is written after the miners stop
		n.recorder.Start(context.WithoutCancel(ctx))
	}

	genCtx, stopGenerators := context.WithCancel(ctx)
	genDone := make(chan error, 1)
	go func() {
		genDone <- workerpool.Run(genCtx, len(n.generators), func(ctx context.Context, i int) error {
			return n.generators[i].Run(ctx)
		}, nil)
	}()

	if n.receiver != nil {
		if err := startRelaySubscriber(ctx, n.zmqPeers, n.handleRelayFrame, n.logger.Named("zmq")); err != nil {
			stopGenerators()
			<-genDone
			if n.recorder != nil {
				n.recorder.Stop()
			}
			return err
		}
	}

	n.service.Start(ctx)
	n.logger.Info("node started",
		zap.String("network", n.params.Name),
		zap.Stringer("genesis", n.chain.Genesis().Hash))

	select {
	case <-ctx.Done():
	case <-n.service.Done():
		n.logger.Warn("all miners exited")
	}

	stopGenerators()
	genErr := <-genDone
	if errors.Is(genErr, context.Canceled) {
		genErr = nil
	}
	minerErr := n.service.Stop()
	if n.recorder != nil {
		n.recorder.Stop()
	}
	return errors.Join(minerErr, genErr)
}

// handleRelayFrame applies a peer's frame. Frames are best effort: failures are logged.
func (n *node) handleRelayFrame(frame []byte) {
	err := n.receiver.HandleFrame(frame)
	switch {
	case err == nil:
	case errors.Is(err, memchain.ErrDuplicateBlock):
		n.logger.Debug("relayed block already known", zap.Error(err))
	case errors.Is(err, relay.ErrMissingTransactions), errors.Is(err, relay.ErrUnknownHeader):
		n.logger.Info("relayed block not rebuilt", zap.Error(err))
	default:
		n.logger.Warn("relay frame rejected", zap.Error(err))
	}
}

func (n *node) close() {
	for i := len(n.closers) - 1; i >= 0; i-- {
		n.closers[i]()
	}
	n.closers = nil
}

// status is served on /status.
type status struct {
	Network    string          `json:"network"`
	Genesis    string          `json:"genesis"`
	BestHash   string          `json:"best_hash"`
	BestHeight int32           `json:"best_height"`
	Mempool    int             `json:"mempool"`
	Miners     []mining.Status `json:"miners"`
}

func (n *node) status() status {
	best := n.chain.BestTip()
	return status{
		Network:    n.params.Name,
		Genesis:    n.chain.Genesis().Hash.String(),
		BestHash:   best.Hash.String(),
		BestHeight: best.Height,
		Mempool:    n.pool.Len(),
		Miners:     n.service.Status(),
	}
}
