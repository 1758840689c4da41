package recorder

import (
	"context"
	"time"

	"github.com/goodnatureofminers/nimblecoin-miner/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		InsertMinedBlocks(ctx context.Context, blocks []model.MinedBlock) error
	}
	Metrics interface {
		ObserveFlush(items int, err error, started time.Time)
		ObserveDropped()
	}
)
