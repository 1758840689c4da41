// Command miner runs a set of competing miners on an in-process chain.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type config struct {
	Network         string        `long:"network" env:"MINER_NETWORK" default:"regtest" description:"network: regtest, testnet3 or netbox"`
	Miners          int           `long:"miners" env:"MINER_MINERS" default:"2" description:"number of miners emulated in parallel"`
	MaxBlockTxs     int           `long:"max-block-txs" env:"MINER_MAX_BLOCK_TXS" default:"1000" description:"max non-coinbase transactions per block"`
	PollNonces      uint32        `long:"poll-nonces" env:"MINER_POLL_NONCES" default:"4096" description:"nonces tried between abandon checks"`
	AttemptDelay    time.Duration `long:"attempt-delay" env:"MINER_ATTEMPT_DELAY" default:"1s" description:"pause between mining attempts"`
	MaxJitter       time.Duration `long:"max-jitter" env:"MINER_MAX_JITTER" default:"500ms" description:"random extra pause between attempts"`
	CoinbaseMessage string        `long:"coinbase-message" env:"MINER_COINBASE_MESSAGE" default:"Mining NimbleCoin" description:"message written into every coinbase"`
	PayoutAddress   string        `long:"payout-address" env:"MINER_PAYOUT_ADDRESS" description:"address receiving block rewards instead of the miner keys"`
	MinPeers        int           `long:"min-peers" env:"MINER_MIN_PEERS" default:"1" description:"peers required before generating transactions"`
	TxRate          float64       `long:"tx-rate" env:"MINER_TX_RATE" default:"0" description:"generated transactions per second per miner, 0 disables"`

	RPCURL      string        `long:"rpc-url" env:"MINER_RPC_URL" description:"upstream node host:port for submitblock"`
	RPCUser     string        `long:"rpc-user" env:"MINER_RPC_USER" description:"upstream node rpc user"`
	RPCPassword string        `long:"rpc-password" env:"MINER_RPC_PASSWORD" description:"upstream node rpc password"`
	RPCTLS      bool          `long:"rpc-tls" env:"MINER_RPC_TLS" description:"use tls for the upstream node"`
	PeerPoll    time.Duration `long:"peer-poll" env:"MINER_PEER_POLL" default:"2s" description:"peer count poll interval"`
	ZMQAddr     string        `long:"zmq-addr" env:"MINER_ZMQ_ADDR" description:"zmq endpoint to publish relay frames on"`
	ZMQPeers    []string      `long:"zmq-peer" env:"MINER_ZMQ_PEERS" env-delim:"," description:"zmq endpoints of peers whose relay frames are applied"`

	ClickhouseDSN string `long:"clickhouse-dsn" env:"MINER_CLICKHOUSE_DSN" description:"clickhouse dsn for mined block history"`

	HTTPAddr      string `long:"http-addr" env:"MINER_HTTP_ADDR" default:":8080" description:"metrics and status listen address"`
	GRPCAddr      string `long:"grpc-addr" env:"MINER_GRPC_ADDR" default:":9090" description:"grpc health listen address"`
	LogProduction bool   `long:"log-production" env:"MINER_LOG_PRODUCTION" description:"json logs"`
}

func main() {
	var cfg config
	if _, err := flags.Parse(&cfg); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		os.Exit(2)
	}

	logger, err := newLogger(cfg.LogProduction)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("miner stopped with error", zap.Error(err))
	}
	logger.Info("miner stopped")
}

func newLogger(production bool) (*zap.Logger, error) {
	if production {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	n, err := newNode(cfg, logger)
	if err != nil {
		return err
	}
	defer n.close()

	srv, err := newServers(cfg, n, logger)
	if err != nil {
		return err
	}
	srv.start()
	defer srv.shutdown()

	return n.run(ctx)
}
