package mining

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/nimblecoin-miner/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Chain interface {
		Snapshot() model.ChainSnapshot
		HeaderByHash(hash chainhash.Hash) (wire.BlockHeader, bool)
		Validate(block *btcutil.Block) error
		// ExtendTip appends block only while its parent is still the tip to
		// mine on: the best block or a header-only tip directly on it. Any
		// other parent fails with ErrStaleTip and nothing is stored.
		ExtendTip(block *btcutil.Block) error
		Coinbase(hash chainhash.Hash) (*wire.MsgTx, error)
		AddListener(l Listener)
		RemoveListener(l Listener)
	}
	// Listener receives chain notifications. The chain invokes it without
	// holding its own lock.
	Listener interface {
		OnNewHeader(tip model.Tip)
		OnNewBestBlock(tip model.Tip)
		OnReorganize(r model.Reorganize)
	}
	OutputView interface {
		HasUnspentOutputs(txHash chainhash.Hash, outputCount int) bool
		Output(op wire.OutPoint) (model.OutputInfo, bool)
	}
	Pool interface {
		AllPending() []*model.UnconfirmedTx
		Remove(hash chainhash.Hash)
	}
	Broadcaster interface {
		BroadcastMinedBlock(ctx context.Context, block *btcutil.Block) error
	}
	Wallet interface {
		CoinbaseScript() ([]byte, error)
		IsMine(pkScript []byte) bool
	}
	BlockObserver interface {
		ObserveMinedBlock(block *btcutil.Block, height int32, empty bool)
	}
	Metrics interface {
		ObserveTemplate(err error, empty bool, txs int, started time.Time)
		ObserveSearch(outcome string, hashes uint64, started time.Time)
		ObserveSubmit(err error, started time.Time)
		ObserveChainEvent(kind string, foreign bool)
	}
)
