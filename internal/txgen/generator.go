// Package txgen feeds the mempool with transactions spending the miner's
// matured outputs at a Poisson rate.
package txgen

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"sync"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/nimblecoin-miner/internal/clock"
	"github.com/goodnatureofminers/nimblecoin-miner/internal/model"
)

// DefaultAmount is the value sent by each generated transaction.
const DefaultAmount = btcutil.Amount(btcutil.SatoshiPerBitcoin / 100)

// ErrNoSpendableOutputs is returned when no matured, unspent output is available.
var ErrNoSpendableOutputs = errors.New("no spendable outputs")

// Config tunes a Generator.
type Config struct {
	RatePerSecond float64
	Amount        btcutil.Amount
	MinPeers      int
	Maturity      int32
}

// Generator spends the signer's outputs one at a time.
type Generator struct {
	logger  *zap.Logger
	peers   Peers
	outputs Outputs
	pool    Pool
	signer  Signer
	cfg     Config

	rng   *rand.Rand
	sleep func(context.Context, time.Duration) error
	// recipient builds the script each payment goes to.
	recipient func() ([]byte, error)

	mu   sync.Mutex
	used map[wire.OutPoint]struct{}
}

// New returns a Generator. peers may be nil when no readiness check is needed.
func New(peers Peers, outputs Outputs, pool Pool, signer Signer, cfg Config, logger *zap.Logger) *Generator {
	if cfg.Amount <= 0 {
		cfg.Amount = DefaultAmount
	}
	if cfg.MinPeers <= 0 {
		cfg.MinPeers = 1
	}
	return &Generator{
		logger:    logger.Named("txgen"),
		peers:     peers,
		outputs:   outputs,
		pool:      pool,
		signer:    signer,
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		sleep:     clock.SleepWithContext,
		recipient: throwawayScript,
		used:      make(map[wire.OutPoint]struct{}),
	}
}

// Run generates transactions until ctx is canceled. Failures are logged and
// the loop continues.
func (g *Generator) Run(ctx context.Context) error {
	if g.cfg.RatePerSecond <= 0 {
		g.logger.Info("transaction generation disabled")
		<-ctx.Done()
		return ctx.Err()
	}

	for {
		if g.peers != nil {
			if err := g.peers.WaitForPeers(ctx, g.cfg.MinPeers); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				g.logger.Warn("waiting for peers failed", zap.Error(err))
			}
		}

		if _, err := g.Generate(); err != nil {
			if errors.Is(err, ErrNoSpendableOutputs) {
				g.logger.Debug("nothing to spend yet")
			} else {
				g.logger.Error("generate transaction failed", zap.Error(err))
			}
		}

		if err := g.sleep(ctx, clock.ExponentialDelay(g.rng, g.cfg.RatePerSecond)); err != nil {
			return err
		}
	}
}

// Generate builds, signs and pools one transaction paying Amount to a
// throwaway key with the change returned to the signer.
func (g *Generator) Generate() (*btcutil.Tx, error) {
	out, err := g.pick()
	if err != nil {
		return nil, err
	}

	recipient, err := g.recipient()
	if err != nil {
		return nil, fmt.Errorf("recipient script: %w", err)
	}

	msg := wire.NewMsgTx(wire.TxVersion)
	msg.AddTxIn(wire.NewTxIn(&out.OutPoint, nil, nil))
	amount := g.cfg.Amount
	if out.Value <= amount {
		g.logger.Info("emptying output, recipient gets less than requested",
			zap.Stringer("outpoint", out.OutPoint),
			zap.Int64("value", int64(out.Value)),
		)
		amount = out.Value
	}
	msg.AddTxOut(wire.NewTxOut(int64(amount), recipient))
	if change := out.Value - amount; change > 0 {
		msg.AddTxOut(wire.NewTxOut(int64(change), g.signer.SpendScript()))
	}
	if err := g.signer.SignP2PK(msg, 0, out.PkScript); err != nil {
		return nil, err
	}

	g.track(out.OutPoint)
	tx := btcutil.NewTx(msg)
	if _, added := g.pool.Add(tx); !added {
		return nil, fmt.Errorf("transaction %s already pooled", tx.Hash())
	}
	g.logger.Info("generated transaction",
		zap.Stringer("hash", tx.Hash()),
		zap.Stringer("spends", out.OutPoint),
		zap.Int64("amount", int64(amount)),
	)
	return tx, nil
}

// pick returns the oldest matured output not spent by a pooled transaction.
func (g *Generator) pick() (model.OwnedOutput, error) {
	pending := make(map[wire.OutPoint]struct{})
	for _, utx := range g.pool.AllPending() {
		for _, in := range utx.Tx.MsgTx().TxIn {
			pending[in.PreviousOutPoint] = struct{}{}
		}
	}

	nextHeight := g.outputs.BestTip().Height + 1
	candidates := g.outputs.OwnedOutputs(g.signer.CanSpend)
	slices.SortFunc(candidates, func(a, b model.OwnedOutput) int {
		if c := cmp.Compare(a.Height, b.Height); c != 0 {
			return c
		}
		if c := model.CompareHashes(a.OutPoint.Hash, b.OutPoint.Hash); c != 0 {
			return c
		}
		return cmp.Compare(a.OutPoint.Index, b.OutPoint.Index)
	})
	for _, c := range candidates {
		if _, ok := pending[c.OutPoint]; ok {
			continue
		}
		if c.Coinbase && nextHeight-c.Height < g.cfg.Maturity {
			continue
		}
		return c, nil
	}
	return model.OwnedOutput{}, ErrNoSpendableOutputs
}

// track remembers op; spending it twice points at a lost transaction or a
// broken output view.
func (g *Generator) track(op wire.OutPoint) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.used[op]; ok {
		g.logger.Error("double spend", zap.Stringer("outpoint", op))
		return
	}
	g.used[op] = struct{}{}
}

func throwawayScript() ([]byte, error) {
	key, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, err
	}
	return txscript.NewScriptBuilder().
		AddData(key.PubKey().SerializeCompressed()).
		AddOp(txscript.OP_CHECKSIG).
		Script()
}
