// Package consensus holds network parameters and the consensus arithmetic
// (difficulty retargeting, proof-of-work) used to build and check blocks.
package consensus

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
)

const (
	// NetworkRegTest is the regression test network where blocks are trivially solvable.
	NetworkRegTest = "regtest"
	// NetworkTestNet3 is the public test network.
	NetworkTestNet3 = "testnet3"
	// NetworkNetbox is the net-in-a-box simulation network.
	NetworkNetbox = "netbox"

	// BaseNetboxPort is the first port used by netbox nodes; node N listens on BaseNetboxPort+N.
	BaseNetboxPort = 19000

	defaultRetargetInterval = 2016
	defaultTargetTimespan   = 14 * 24 * time.Hour
	defaultCoinbaseMaturity = 100
	defaultSubsidy          = 50 * btcutil.SatoshiPerBitcoin

	// GenesisMessage is embedded in the genesis coinbase input.
	GenesisMessage = "Life is what happens to you while you’re busy making other plans"
)

// ErrUnknownNetwork is returned by ParamsForNetwork for unsupported names.
var ErrUnknownNetwork = errors.New("unknown network")

// Params is the explicit set of network constants consumed by chain and mining code.
type Params struct {
	Name string
	// Net supplies address encoding for payout scripts.
	Net  *chaincfg.Params
	Port uint16

	PowLimit         *big.Int
	PowLimitBits     uint32
	RetargetInterval int32
	TargetTimespan   time.Duration
	CoinbaseMaturity int32
	Subsidy          btcutil.Amount

	GenesisPubKey []byte
	GenesisTime   time.Time
	GenesisBits   uint32
	GenesisNonce  uint32
}

// TargetTimespanSeconds returns the retarget window length in whole seconds.
func (p *Params) TargetTimespanSeconds() int64 {
	return int64(p.TargetTimespan / time.Second)
}

// RegTest returns the regression test network parameters.
func RegTest() *Params {
	return &Params{
		Name:             NetworkRegTest,
		Net:              &chaincfg.RegressionNetParams,
		Port:             18555,
		PowLimit:         blockchain.CompactToBig(0x200fffff),
		PowLimitBits:     0x200fffff,
		RetargetInterval: defaultRetargetInterval,
		TargetTimespan:   defaultTargetTimespan,
		CoinbaseMaturity: defaultCoinbaseMaturity,
		Subsidy:          defaultSubsidy,
		GenesisPubKey:    mustDecodeHex("02a7f0ac3beff38e7c330df79f68b6e7c30ce46246781071929a9351c036d4aa13"),
		GenesisTime:      time.Unix(1405357765, 0),
		GenesisBits:      0x200fffff,
		GenesisNonce:     8,
	}
}

// TestNet3 returns the public test network parameters.
func TestNet3() *Params {
	return &Params{
		Name:             NetworkTestNet3,
		Net:              &chaincfg.TestNet3Params,
		Port:             18335,
		PowLimit:         blockchain.CompactToBig(0x1f00ffff),
		PowLimitBits:     0x1f00ffff,
		RetargetInterval: defaultRetargetInterval,
		TargetTimespan:   defaultTargetTimespan,
		CoinbaseMaturity: defaultCoinbaseMaturity,
		Subsidy:          defaultSubsidy,
		GenesisPubKey:    mustDecodeHex("02e92d6e2419abde2b53d6340781eec734eeecae7debdf5074311db60c5537dcce"),
		GenesisTime:      time.Unix(1398701303, 0),
		GenesisBits:      0x1f00ffff,
		GenesisNonce:     61715,
	}
}

// Netbox returns the simulation network parameters. They share the regtest
// consensus rules and listen from BaseNetboxPort.
func Netbox() *Params {
	p := RegTest()
	p.Name = NetworkNetbox
	p.Port = BaseNetboxPort
	return p
}

// ParamsForNetwork resolves a network name into its parameters.
func ParamsForNetwork(name string) (*Params, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NetworkRegTest:
		return RegTest(), nil
	case NetworkTestNet3, "testnet":
		return TestNet3(), nil
	case NetworkNetbox:
		return Netbox(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownNetwork, name)
	}
}

func mustDecodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}
