package broadcast

import (
	"github.com/btcsuite/btcd/btcutil"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Node is the upstream node reached over RPC.
	Node interface {
		SubmitBlock(block *btcutil.Block) error
		GetConnectionCount() (int64, error)
	}
)
