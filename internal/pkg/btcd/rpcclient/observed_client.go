// Package rpcclient wraps the btcd RPC client with per-call metrics.
package rpcclient

import (
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/rpcclient"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
	// Client is the subset of *rpcclient.Client the miner calls.
	Client interface {
		SubmitBlock(block *btcutil.Block, options *btcjson.SubmitBlockOptions) error
		GetConnectionCount() (int64, error)
		Shutdown()
	}
)

// Config addresses an upstream node over HTTP POST.
type Config struct {
	Host       string
	User       string
	Password   string
	DisableTLS bool
}

type ObservedClient struct {
	client     Client
	rpcMetrics RPCMetrics
}

// Dial connects to the node described by cfg.
func Dial(cfg Config, rpcMetrics RPCMetrics) (*ObservedClient, error) {
	client, err := rpcclient.New(&rpcclient.ConnConfig{
		Host:         cfg.Host,
		User:         cfg.User,
		Pass:         cfg.Password,
		HTTPPostMode: true,
		DisableTLS:   cfg.DisableTLS,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("rpc client %s: %w", cfg.Host, err)
	}
	return NewObservedClient(client, rpcMetrics), nil
}

// NewObservedClient wraps client, reporting every call to rpcMetrics.
func NewObservedClient(client Client, rpcMetrics RPCMetrics) *ObservedClient {
	return &ObservedClient{
		client:     client,
		rpcMetrics: rpcMetrics,
	}
}

func (r *ObservedClient) SubmitBlock(block *btcutil.Block) (err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("submit_block", err, started)
	}()
	return r.client.SubmitBlock(block, nil)
}

func (r *ObservedClient) GetConnectionCount() (count int64, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_connection_count", err, started)
	}()
	return r.client.GetConnectionCount()
}

func (r *ObservedClient) Shutdown() {
	r.client.Shutdown()
}
