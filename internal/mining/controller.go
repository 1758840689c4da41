package mining

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/nimblecoin-miner/internal/clock"
	"github.com/goodnatureofminers/nimblecoin-miner/internal/consensus"
	"github.com/goodnatureofminers/nimblecoin-miner/internal/model"
)

var (
	// ErrTemplateInvalid wraps a chain rejection of a locally built block.
	ErrTemplateInvalid = errors.New("self-built block rejected")
	// ErrStaleTip is returned by Chain.ExtendTip when the block's parent is
	// no longer the tip to mine on.
	ErrStaleTip = errors.New("block does not extend the current tip")
)

const ownBlockMemory = 1024

// ControllerConfig tunes a Controller.
type ControllerConfig struct {
	Instance     int
	PollEvery    uint32
	AttemptDelay time.Duration
	// MaxJitter adds a random extra pause between attempts.
	MaxJitter time.Duration
}

// tipState is swapped as a unit so the hash loop never sees a torn tip.
type tipState struct {
	tip        model.Tip
	headerOnly bool
}

// Controller builds templates, searches for a nonce and submits solutions,
// abandoning a search as soon as a foreign header, block or reorganization
// makes it obsolete.
type Controller struct {
	instance    int
	logger      *zap.Logger
	chain       Chain
	builder     *Builder
	pool        Pool
	wallet      Wallet
	broadcaster Broadcaster
	metrics     Metrics
	observer    BlockObserver
	pollEvery   uint32
	delay       func() time.Duration
	sleep       func(context.Context, time.Duration) error
	now         func() time.Time

	// mu orders tip updates, abandon writes and submissions.
	mu      sync.Mutex
	state   atomic.Pointer[tipState]
	abandon atomic.Bool

	ownMu    sync.Mutex
	own      map[chainhash.Hash]struct{}
	ownOrder []chainhash.Hash

	attempts  atomic.Uint64
	mined     atomic.Uint64
	abandoned atomic.Uint64
	searching atomic.Bool
}

// NewController wires a Controller. observer may be nil.
func NewController(
	chain Chain,
	builder *Builder,
	pool Pool,
	wallet Wallet,
	broadcaster Broadcaster,
	metrics Metrics,
	observer BlockObserver,
	cfg ControllerConfig,
	logger *zap.Logger,
) (*Controller, error) {
	switch {
	case chain == nil:
		return nil, errors.New("controller chain is required")
	case builder == nil:
		return nil, errors.New("controller template builder is required")
	case pool == nil:
		return nil, errors.New("controller pool is required")
	case wallet == nil:
		return nil, errors.New("controller wallet is required")
	case broadcaster == nil:
		return nil, errors.New("controller broadcaster is required")
	case metrics == nil:
		return nil, errors.New("controller metrics is required")
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano() + int64(cfg.Instance)))
	attemptDelay, maxJitter := cfg.AttemptDelay, cfg.MaxJitter

	return &Controller{
		instance:    cfg.Instance,
		logger:      logger.Named("controller").With(zap.Int("instance", cfg.Instance)),
		chain:       chain,
		builder:     builder,
		pool:        pool,
		wallet:      wallet,
		broadcaster: broadcaster,
		metrics:     metrics,
		observer:    observer,
		pollEvery:   cfg.PollEvery,
		delay: func() time.Duration {
			return attemptDelay + clock.Jitter(rng, maxJitter)
		},
		sleep: clock.SleepWithContext,
		now:   time.Now,
		own:   make(map[chainhash.Hash]struct{}),
	}, nil
}

// Run mines until ctx is canceled. Attempt failures are logged and retried.
func (c *Controller) Run(ctx context.Context) error {
	c.chain.AddListener(c)
	defer func() {
		c.mu.Lock()
		c.chain.RemoveListener(c)
		c.mu.Unlock()
	}()

	c.logger.Info("miner started")
	for {
		if err := ctx.Err(); err != nil {
			c.logger.Info("miner stopped", zap.Uint64("mined", c.mined.Load()))
			return err
		}
		if err := c.attempt(ctx); err != nil && ctx.Err() == nil {
			if errors.Is(err, ErrTemplateInvalid) || errors.Is(err, consensus.ErrMissingAncestor) {
				c.logger.Error("mining attempt failed", zap.Error(err))
			} else {
				c.logger.Warn("mining attempt failed", zap.Error(err))
			}
		}
		if err := c.sleep(ctx, c.delay()); err != nil {
			c.logger.Info("miner stopped", zap.Uint64("mined", c.mined.Load()))
			return err
		}
	}
}

func (c *Controller) attempt(ctx context.Context) error {
	c.attempts.Add(1)
	current := c.beginSearch()

	started := time.Now()
	tmpl, err := c.builder.Build(current.tip, current.headerOnly, c.now())
	if err != nil {
		c.metrics.ObserveTemplate(err, current.headerOnly, 0, started)
		c.resetTip()
		return fmt.Errorf("build template on %s: %w", current.tip.Hash, err)
	}
	c.metrics.ObserveTemplate(nil, tmpl.Empty, tmpl.TxCount(), started)
	c.logger.Debug("template built",
		zap.Int32("height", tmpl.Height),
		zap.Stringer("prev", &tmpl.Header.PrevBlock),
		zap.Int("txs", tmpl.TxCount()),
		zap.Bool("empty", tmpl.Empty),
	)

	started = time.Now()
	c.searching.Store(true)
	solved, found, hashes, err := search(ctx, tmpl.Header, c.pollEvery, c.abandon.Load)
	c.searching.Store(false)
	switch {
	case errors.Is(err, ErrNonceSpaceExhausted):
		c.metrics.ObserveSearch(searchExhausted, hashes, started)
		c.logger.Info("nonce space exhausted, rebuilding", zap.Int32("height", tmpl.Height))
		return nil
	case err != nil:
		c.metrics.ObserveSearch(searchCanceled, hashes, started)
		return err
	case !found:
		c.metrics.ObserveSearch(searchAbandoned, hashes, started)
		c.abandoned.Add(1)
		c.logger.Info("search abandoned", zap.Int32("height", tmpl.Height), zap.Uint64("hashes", hashes))
		return nil
	}
	c.metrics.ObserveSearch(searchSolved, hashes, started)

	return c.submit(ctx, tmpl, solved)
}

// beginSearch picks the tip to mine on and clears the abandon flag.
func (c *Controller) beginSearch() tipState {
	c.mu.Lock()
	defer c.mu.Unlock()

	candidate := c.tipFromChain()
	current := c.state.Load()
	if current == nil || candidate.tip.Height > current.tip.Height {
		current = &candidate
		c.state.Store(current)
	}
	c.abandon.Store(false)
	return *current
}

func (c *Controller) tipFromChain() tipState {
	snapshot := c.chain.Snapshot()
	if ahead, ok := snapshot.SyncAheadTip(); ok {
		return tipState{tip: ahead, headerOnly: true}
	}
	return tipState{tip: snapshot.Best}
}

func (c *Controller) resetTip() {
	c.mu.Lock()
	c.state.Store(nil)
	c.mu.Unlock()
}

func (c *Controller) submit(ctx context.Context, tmpl *Template, solved wire.BlockHeader) error {
	started := time.Now()
	block := tmpl.Block(solved)
	hash := *block.Hash()

	c.mu.Lock()
	if c.abandon.Load() {
		c.mu.Unlock()
		c.abandoned.Add(1)
		c.logger.Info("solution discarded, tip changed during search", zap.Stringer("hash", &hash))
		return nil
	}

	c.markOwn(hash)
	if err := c.commit(block); err != nil {
		c.forgetOwn(hash)
		c.state.Store(nil)
		c.mu.Unlock()
		if errors.Is(err, ErrStaleTip) {
			// the chain moved before its notification reached this controller
			c.abandoned.Add(1)
			c.logger.Info("solution discarded, chain moved during search",
				zap.Stringer("hash", &hash),
				zap.Stringer("prev", &solved.PrevBlock),
			)
			return nil
		}
		c.metrics.ObserveSubmit(err, started)
		return err
	}
	if tmpl.Empty {
		// a block on a header-only tip waits for its parent's transactions;
		// the next template follows whatever the chain offers
		c.state.Store(nil)
	} else {
		c.state.Store(&tipState{tip: model.NewTip(solved, tmpl.Height)})
	}
	c.mu.Unlock()
	c.metrics.ObserveSubmit(nil, started)
	c.mined.Add(1)

	for _, utx := range tmpl.Transactions {
		c.pool.Remove(utx.Hash())
	}
	if err := c.broadcaster.BroadcastMinedBlock(ctx, block); err != nil {
		c.logger.Warn("broadcast mined block failed", zap.Stringer("hash", &hash), zap.Error(err))
	}
	if c.observer != nil {
		c.observer.ObserveMinedBlock(block, tmpl.Height, tmpl.Empty)
	}

	c.logger.Info("mined block",
		zap.Stringer("hash", &hash),
		zap.Int32("height", tmpl.Height),
		zap.Int("txs", tmpl.TxCount()),
		zap.Bool("empty", tmpl.Empty),
	)
	return nil
}

func (c *Controller) commit(block *btcutil.Block) error {
	if err := c.chain.Validate(block); err != nil {
		return fmt.Errorf("%w: validate %s: %v", ErrTemplateInvalid, block.Hash(), err)
	}
	if err := c.chain.ExtendTip(block); err != nil {
		if errors.Is(err, ErrStaleTip) {
			return err
		}
		return fmt.Errorf("%w: append %s: %v", ErrTemplateInvalid, block.Hash(), err)
	}
	return nil
}

func (c *Controller) markOwn(hash chainhash.Hash) {
	c.ownMu.Lock()
	defer c.ownMu.Unlock()
	if _, ok := c.own[hash]; ok {
		return
	}
	c.own[hash] = struct{}{}
	c.ownOrder = append(c.ownOrder, hash)
	if len(c.ownOrder) > ownBlockMemory {
		delete(c.own, c.ownOrder[0])
		c.ownOrder = c.ownOrder[1:]
	}
}

func (c *Controller) forgetOwn(hash chainhash.Hash) {
	c.ownMu.Lock()
	defer c.ownMu.Unlock()
	delete(c.own, hash)
}

func (c *Controller) isOwnHash(hash chainhash.Hash) bool {
	c.ownMu.Lock()
	defer c.ownMu.Unlock()
	_, ok := c.own[hash]
	return ok
}

// Status is a point-in-time view of a controller.
type Status struct {
	Instance   int    `json:"instance"`
	TipHash    string `json:"tip_hash"`
	TipHeight  int32  `json:"tip_height"`
	HeaderOnly bool   `json:"header_only"`
	Searching  bool   `json:"searching"`
	Attempts   uint64 `json:"attempts"`
	Mined      uint64 `json:"mined"`
	Abandoned  uint64 `json:"abandoned"`
}

// Status reports the controller's current tip and counters.
func (c *Controller) Status() Status {
	s := Status{
		Instance:  c.instance,
		Searching: c.searching.Load(),
		Attempts:  c.attempts.Load(),
		Mined:     c.mined.Load(),
		Abandoned: c.abandoned.Load(),
	}
	if st := c.state.Load(); st != nil {
		s.TipHash = st.tip.Hash.String()
		s.TipHeight = st.tip.Height
		s.HeaderOnly = st.headerOnly
	}
	return s
}
