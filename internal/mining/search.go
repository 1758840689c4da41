package mining

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"math"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// DefaultPollEvery is how many nonces are tried between abandon checks.
const DefaultPollEvery = 4096

const nonceOffset = 76

// ErrNonceSpaceExhausted is returned when every nonce was tried without a solution.
var ErrNonceSpaceExhausted = errors.New("nonce space exhausted")

const (
	searchSolved    = "solved"
	searchAbandoned = "abandoned"
	searchExhausted = "exhausted"
	searchCanceled  = "canceled"
)

// Solve probes nonces starting at header.Nonce until the header hash is at
// most the target encoded in header.Bits. abandoned and ctx are checked every
// pollEvery attempts; an abandoned search returns false with a nil error.
func Solve(
	ctx context.Context,
	header wire.BlockHeader,
	pollEvery uint32,
	abandoned func() bool,
) (wire.BlockHeader, bool, error) {
	solved, found, _, err := search(ctx, header, pollEvery, abandoned)
	return solved, found, err
}

func search(
	ctx context.Context,
	header wire.BlockHeader,
	pollEvery uint32,
	abandoned func() bool,
) (wire.BlockHeader, bool, uint64, error) {
	if pollEvery == 0 {
		pollEvery = DefaultPollEvery
	}
	target := blockchain.CompactToBig(header.Bits)

	var buf bytes.Buffer
	buf.Grow(wire.MaxBlockHeaderPayload)
	if err := header.Serialize(&buf); err != nil {
		return header, false, 0, err
	}
	raw := buf.Bytes()

	var hashes uint64
	for nonce := uint64(header.Nonce); nonce <= math.MaxUint32; nonce++ {
		if hashes%uint64(pollEvery) == 0 {
			if err := ctx.Err(); err != nil {
				return header, false, hashes, err
			}
			if abandoned != nil && abandoned() {
				return header, false, hashes, nil
			}
		}

		binary.LittleEndian.PutUint32(raw[nonceOffset:], uint32(nonce))
		hash := chainhash.DoubleHashH(raw)
		hashes++
		if blockchain.HashToBig(&hash).Cmp(target) <= 0 {
			header.Nonce = uint32(nonce)
			return header, true, hashes, nil
		}
	}
	return header, false, hashes, ErrNonceSpaceExhausted
}
