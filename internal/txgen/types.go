package txgen

import (
	"context"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/nimblecoin-miner/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Peers interface {
		WaitForPeers(ctx context.Context, minPeers int) error
	}
	Outputs interface {
		BestTip() model.Tip
		OwnedOutputs(isMine func(pkScript []byte) bool) []model.OwnedOutput
	}
	Pool interface {
		Add(tx *btcutil.Tx) (*model.UnconfirmedTx, bool)
		AllPending() []*model.UnconfirmedTx
	}
	Signer interface {
		CanSpend(pkScript []byte) bool
		SpendScript() []byte
		SignP2PK(tx *wire.MsgTx, idx int, prevScript []byte) error
	}
)
