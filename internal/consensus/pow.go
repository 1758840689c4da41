package consensus

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

var (
	// ErrTargetOutOfRange is returned for non-positive targets or targets above the network floor.
	ErrTargetOutOfRange = errors.New("target out of range")
	// ErrHighHash is returned when a header hash exceeds its target.
	ErrHighHash = errors.New("block hash above target")
)

// HashMeetsTarget reports whether hash, read as an unsigned integer, is at most target.
func HashMeetsTarget(hash chainhash.Hash, target *big.Int) bool {
	return blockchain.HashToBig(&hash).Cmp(target) <= 0
}

// CheckProofOfWork verifies that bits encodes a sane target and that hash satisfies it.
func CheckProofOfWork(hash chainhash.Hash, bits uint32, powLimit *big.Int) error {
	target := blockchain.CompactToBig(bits)
	if target.Sign() <= 0 {
		return fmt.Errorf("%w: %08x is not positive", ErrTargetOutOfRange, bits)
	}
	if target.Cmp(powLimit) > 0 {
		return fmt.Errorf("%w: %08x above limit %064x", ErrTargetOutOfRange, bits, powLimit)
	}
	if !HashMeetsTarget(hash, target) {
		return fmt.Errorf("%w: %s > %064x", ErrHighHash, hash, target)
	}
	return nil
}
