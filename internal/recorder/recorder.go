// Package recorder keeps a history of the blocks mined by this process.
package recorder

import (
	"context"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/nimblecoin-miner/internal/mining"
	"github.com/goodnatureofminers/nimblecoin-miner/internal/model"
	"github.com/goodnatureofminers/nimblecoin-miner/pkg/batcher"
	"github.com/goodnatureofminers/nimblecoin-miner/pkg/safe"
)

const (
	DefaultBatchSize     = 64
	DefaultFlushInterval = 5 * time.Second
	DefaultFlushRPS      = 2
)

// Config tunes batching of mined block records.
type Config struct {
	BatchSize     int
	FlushInterval time.Duration
	FlushRPS      int
}

// Recorder queues mined blocks and writes them to the repository in batches.
// Queueing never blocks the miner: a full queue drops the record.
type Recorder struct {
	repo    Repository
	metrics Metrics
	network string
	logger  *zap.Logger
	batch   *batcher.Batcher[model.MinedBlock]
	now     func() time.Time
}

// New returns a Recorder writing to repo. Zero Config fields take the defaults.
func New(repo Repository, metrics Metrics, network string, cfg Config, logger *zap.Logger) *Recorder {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = DefaultFlushInterval
	}
	if cfg.FlushRPS <= 0 {
		cfg.FlushRPS = DefaultFlushRPS
	}

	r := &Recorder{
		repo:    repo,
		metrics: metrics,
		network: network,
		logger:  logger,
		now:     time.Now,
	}
	r.batch = batcher.New[model.MinedBlock](
		logger.Named("batcher"),
		r.flush,
		batcher.Config{
			Size:     cfg.BatchSize,
			Interval: cfg.FlushInterval,
			RPS:      cfg.FlushRPS,
			OnFlush:  metrics.ObserveFlush,
		},
	)
	return r
}

func (r *Recorder) Start(ctx context.Context) {
	r.batch.Start(ctx)
}

// Stop writes what is still queued.
func (r *Recorder) Stop() {
	r.batch.Stop()
}

// ForInstance returns the observer handed to the controller with the given instance number.
func (r *Recorder) ForInstance(instance int) (mining.BlockObserver, error) {
	n, err := safe.Uint16(instance)
	if err != nil {
		return nil, fmt.Errorf("instance: %w", err)
	}
	return instanceObserver{recorder: r, instance: n}, nil
}

// ObserveMinedBlock queues a record of a block mined by the given instance.
func (r *Recorder) ObserveMinedBlock(instance uint16, block *btcutil.Block, height int32, empty bool) {
	record, err := r.record(instance, block, height, empty)
	if err != nil {
		r.logger.Error("mined block not recorded", zap.Stringer("hash", block.Hash()), zap.Error(err))
		return
	}
	if !r.batch.Offer(record) {
		r.metrics.ObserveDropped()
		r.logger.Warn("mined block record dropped",
			zap.Uint16("instance", instance),
			zap.Int32("height", height),
			zap.String("hash", record.Hash))
	}
}

func (r *Recorder) record(instance uint16, block *btcutil.Block, height int32, empty bool) (model.MinedBlock, error) {
	h, err := safe.Uint64(height)
	if err != nil {
		return model.MinedBlock{}, fmt.Errorf("height: %w", err)
	}
	txs, err := safe.Uint32(len(block.MsgBlock().Transactions))
	if err != nil {
		return model.MinedBlock{}, fmt.Errorf("tx count: %w", err)
	}

	header := block.MsgBlock().Header
	return model.MinedBlock{
		Network:    r.network,
		Instance:   instance,
		Height:     h,
		Hash:       block.Hash().String(),
		PrevHash:   header.PrevBlock.String(),
		Timestamp:  header.Timestamp.UTC(),
		Bits:       header.Bits,
		Nonce:      header.Nonce,
		TXCount:    txs,
		EmptyBlock: empty,
		MinedAt:    r.now().UTC(),
	}, nil
}

func (r *Recorder) flush(ctx context.Context, blocks []model.MinedBlock) error {
	return r.repo.InsertMinedBlocks(ctx, blocks)
}

type instanceObserver struct {
	recorder *Recorder
	instance uint16
}

func (o instanceObserver) ObserveMinedBlock(block *btcutil.Block, height int32, empty bool) {
	o.recorder.ObserveMinedBlock(o.instance, block, height, empty)
}
