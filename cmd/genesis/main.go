// Command genesis mines a genesis block for a fresh key and prints the
// parameters a network needs to adopt it.
package main

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/goccy/go-json"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/nimblecoin-miner/internal/consensus"
	"github.com/goodnatureofminers/nimblecoin-miner/internal/mining"
	"github.com/goodnatureofminers/nimblecoin-miner/internal/wallet"
)

type config struct {
	Network string `long:"network" env:"GENESIS_NETWORK" default:"regtest" description:"network whose rules the genesis block follows"`
	Bits    string `long:"bits" env:"GENESIS_BITS" description:"compact target in hex, defaults to the network pow limit"`
}

type result struct {
	Network    string `json:"network"`
	Hash       string `json:"hash"`
	MerkleRoot string `json:"merkle_root"`
	Time       int64  `json:"time"`
	Bits       string `json:"bits"`
	Nonce      uint32 `json:"nonce"`
	PubKey     string `json:"pub_key"`
	WIF        string `json:"wif"`
}

func main() {
	var cfg config
	if _, err := flags.Parse(&cfg); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		os.Exit(2)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	params, err := consensus.ParamsForNetwork(cfg.Network)
	if err != nil {
		logger.Fatal("Unknown network", zap.Error(err))
	}
	if cfg.Bits != "" {
		if params.GenesisBits, err = parseBits(cfg.Bits); err != nil {
			logger.Fatal("Invalid bits", zap.Error(err))
		}
	}
	account, err := wallet.GenerateAccount(nil)
	if err != nil {
		logger.Fatal("Generate key", zap.Error(err))
	}

	started := time.Now()
	res, err := generate(ctx, params, account, started)
	if err != nil {
		logger.Fatal("Genesis not mined", zap.Error(err))
	}
	logger.Info("Genesis mined", zap.String("hash", res.Hash), zap.Duration("took", time.Since(started)))

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		logger.Fatal("Write result", zap.Error(err))
	}
}

// generate mines the genesis block of params paid to account.
func generate(ctx context.Context, params *consensus.Params, account *wallet.Account, now time.Time) (result, error) {
	p := *params
	p.GenesisPubKey = account.PubKey()
	p.GenesisTime = time.Unix(now.Unix(), 0)
	p.GenesisNonce = 0

	block, err := consensus.NewGenesisBlock(&p)
	if err != nil {
		return result{}, err
	}
	header, found, err := mining.Solve(ctx, block.Header, 0, nil)
	if err != nil {
		return result{}, err
	}
	if !found {
		return result{}, errors.New("search stopped without a solution")
	}

	wif, err := account.WIF(p.Net)
	if err != nil {
		return result{}, err
	}
	return result{
		Network:    p.Name,
		Hash:       header.BlockHash().String(),
		MerkleRoot: header.MerkleRoot.String(),
		Time:       header.Timestamp.Unix(),
		Bits:       fmt.Sprintf("%08x", header.Bits),
		Nonce:      header.Nonce,
		PubKey:     hex.EncodeToString(p.GenesisPubKey),
		WIF:        wif,
	}, nil
}

func parseBits(s string) (uint32, error) {
	parsed, err := strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 32)
	if err != nil {
		return 0, fmt.Errorf("bits %q: %w", s, err)
	}
	bits := uint32(parsed)
	if blockchain.CompactToBig(bits).Sign() <= 0 {
		return 0, fmt.Errorf("bits %q encode a non-positive target", s)
	}
	return bits, nil
}
