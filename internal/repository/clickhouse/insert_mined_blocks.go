package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/nimblecoin-miner/internal/model"
)

const insertMinedBlocksQuery = `
INSERT INTO mined_blocks (
	network,
	instance,
	height,
	hash,
	prev_hash,
	timestamp,
	bits,
	nonce,
	tx_count,
	empty_block,
	mined_at
) VALUES`

// InsertMinedBlocks stores mined block rows in ClickHouse.
func (r *Repository) InsertMinedBlocks(ctx context.Context, blocks []model.MinedBlock) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_mined_blocks", firstNetwork(blocks), err, start)
	}()

	if len(blocks) == 0 {
		return nil
	}

	batch, err := r.prepare(ctx, insertMinedBlocksQuery)
	if err != nil {
		return fmt.Errorf("prepare mined blocks batch: %w", err)
	}

	for _, block := range blocks {
		if err = batch.Append(
			block.Network,
			block.Instance,
			block.Height,
			block.Hash,
			block.PrevHash,
			block.Timestamp,
			block.Bits,
			block.Nonce,
			block.TXCount,
			block.EmptyBlock,
			block.MinedAt,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append mined block %s: %w", block.Hash, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert mined blocks: %w", err)
	}
	return nil
}

func firstNetwork(blocks []model.MinedBlock) string {
	if len(blocks) == 0 {
		return ""
	}
	return blocks[0].Network
}
