// Package memchain is an in-memory block chain used by the miner process and
// by tests: it tracks the best chain by cumulative work, headers whose
// transactions have not arrived, blocks waiting on such headers, and the
// unspent output set of the best chain.
package memchain

import (
	"errors"
	"fmt"
	"math/big"
	"slices"
	"sync"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/nimblecoin-miner/internal/consensus"
	"github.com/goodnatureofminers/nimblecoin-miner/internal/mining"
	"github.com/goodnatureofminers/nimblecoin-miner/internal/model"
)

var (
	// ErrUnknownParent is returned for blocks and headers whose parent is not known.
	ErrUnknownParent = errors.New("unknown parent")
	// ErrUnknownBlock is returned when a block body is not stored.
	ErrUnknownBlock = errors.New("unknown block")
	// ErrDuplicateBlock is returned when a block body is already stored.
	ErrDuplicateBlock = errors.New("duplicate block")
	// ErrBadMerkleRoot is returned when the header does not commit to the transactions.
	ErrBadMerkleRoot = errors.New("bad merkle root")
	// ErrBadCoinbase is returned for a missing, misplaced or overpaying coinbase.
	ErrBadCoinbase = errors.New("bad coinbase")
	// ErrBadTarget is returned when the header target differs from the required one.
	ErrBadTarget = errors.New("unexpected target")
	// ErrMissingInput is returned when a transaction spends an unknown or spent output.
	ErrMissingInput = errors.New("missing or spent input")
	// ErrImmatureSpend is returned when a coinbase output is spent too early.
	ErrImmatureSpend = errors.New("immature coinbase spend")
	// ErrValueOverflow is returned when outputs exceed inputs.
	ErrValueOverflow = errors.New("outputs exceed inputs")
)

var _ mining.Chain = (*Chain)(nil)

type node struct {
	tip    model.Tip
	block  *btcutil.Block
	parent *node
	work   *big.Int
	// spent holds the outputs this block consumed while connected.
	spent []spentOutput
}

// Chain is safe for concurrent use. Listeners are notified in order on a
// separate goroutine, never while the chain lock is held.
type Chain struct {
	params *consensus.Params
	logger *zap.Logger

	mu      sync.RWMutex
	nodes   map[chainhash.Hash]*node
	headers map[chainhash.Hash]model.Tip
	orphans map[chainhash.Hash]*btcutil.Block
	waiting map[chainhash.Hash][]chainhash.Hash
	best    *node
	utxos   utxoSet

	notifier *notifier
}

// New returns a chain holding only the network's genesis block.
func New(params *consensus.Params, logger *zap.Logger) (*Chain, error) {
	genesis, err := consensus.NewGenesisBlock(params)
	if err != nil {
		return nil, fmt.Errorf("build genesis: %w", err)
	}
	block := btcutil.NewBlock(genesis)
	block.SetHeight(0)

	root := &node{
		tip:   model.NewTip(genesis.Header, 0),
		block: block,
		work:  blockchain.CalcWork(genesis.Header.Bits),
	}
	c := &Chain{
		params:  params,
		logger:  logger.Named("memchain"),
		nodes:   map[chainhash.Hash]*node{root.tip.Hash: root},
		headers: make(map[chainhash.Hash]model.Tip),
		orphans: make(map[chainhash.Hash]*btcutil.Block),
		waiting: make(map[chainhash.Hash][]chainhash.Hash),
		best:    root,
		utxos:   make(utxoSet),
	}
	if err := c.utxos.connect(root, params); err != nil {
		return nil, fmt.Errorf("connect genesis: %w", err)
	}
	c.notifier = newNotifier()
	return c, nil
}

// Genesis returns the genesis tip.
func (c *Chain) Genesis() model.Tip {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := c.best
	for n.parent != nil {
		n = n.parent
	}
	return n.tip
}

// Snapshot reads the best tip and the headers awaiting transactions atomically.
func (c *Chain) Snapshot() model.ChainSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return model.ChainSnapshot{
		Best:                 c.best.tip,
		AwaitingTransactions: c.awaitingLocked(),
	}
}

// BestTip returns the head of the best chain.
func (c *Chain) BestTip() model.Tip {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.best.tip
}

// HeadersAwaitingTransactions returns the header-only tips.
func (c *Chain) HeadersAwaitingTransactions() map[chainhash.Hash]model.Tip {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.awaitingLocked()
}

func (c *Chain) awaitingLocked() map[chainhash.Hash]model.Tip {
	out := make(map[chainhash.Hash]model.Tip, len(c.headers))
	for hash, tip := range c.headers {
		out[hash] = tip
	}
	return out
}

// HeaderByHash returns any known header: stored blocks, header-only tips and
// blocks waiting for their parent's transactions.
func (c *Chain) HeaderByHash(hash chainhash.Hash) (wire.BlockHeader, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	tip, ok := c.tipLocked(hash)
	return tip.Header, ok
}

func (c *Chain) tipLocked(hash chainhash.Hash) (model.Tip, bool) {
	if n, ok := c.nodes[hash]; ok {
		return n.tip, true
	}
	if tip, ok := c.headers[hash]; ok {
		return tip, true
	}
	if b, ok := c.orphans[hash]; ok {
		return model.NewTip(b.MsgBlock().Header, b.Height()), true
	}
	return model.Tip{}, false
}

func (c *Chain) lookupLocked() consensus.HeaderLookup {
	return consensus.HeaderLookupFunc(func(hash chainhash.Hash) (wire.BlockHeader, bool) {
		tip, ok := c.tipLocked(hash)
		return tip.Header, ok
	})
}

// Coinbase returns the coinbase transaction of a stored block.
func (c *Chain) Coinbase(hash chainhash.Hash) (*wire.MsgTx, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	block, ok := c.blockLocked(hash)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBlock, hash)
	}
	return block.MsgBlock().Transactions[0], nil
}

// Block returns a stored block body.
func (c *Chain) Block(hash chainhash.Hash) (*btcutil.Block, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	block, ok := c.blockLocked(hash)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBlock, hash)
	}
	return block, nil
}

func (c *Chain) blockLocked(hash chainhash.Hash) (*btcutil.Block, bool) {
	if n, ok := c.nodes[hash]; ok {
		return n.block, true
	}
	b, ok := c.orphans[hash]
	return b, ok
}

// AddListener registers l for chain notifications.
func (c *Chain) AddListener(l mining.Listener) {
	c.notifier.add(l)
}

// RemoveListener unregisters l. An event already being delivered may still
// reach it.
func (c *Chain) RemoveListener(l mining.Listener) {
	c.notifier.remove(l)
}

// Flush waits until every pending notification has been delivered.
func (c *Chain) Flush() {
	c.notifier.flush()
}

// Close stops notification delivery after the queued events.
func (c *Chain) Close() {
	c.notifier.close()
}

// AddHeader records a header whose transactions have not arrived yet.
func (c *Chain) AddHeader(header wire.BlockHeader) error {
	hash := header.BlockHash()
	tip, added, err := c.addHeader(header, hash)
	if err != nil || !added {
		return err
	}
	c.notifier.publish([]event{func(l mining.Listener) { l.OnNewHeader(tip) }})
	return nil
}

func (c *Chain) addHeader(header wire.BlockHeader, hash chainhash.Hash) (model.Tip, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, known := c.tipLocked(hash); known {
		return model.Tip{}, false, nil
	}
	parent, ok := c.tipLocked(header.PrevBlock)
	if !ok {
		return model.Tip{}, false, fmt.Errorf("%w: header %s parent %s", ErrUnknownParent, hash, header.PrevBlock)
	}
	if err := consensus.CheckProofOfWork(hash, header.Bits, c.params.PowLimit); err != nil {
		return model.Tip{}, false, fmt.Errorf("header %s: %w", hash, err)
	}
	tip := model.NewTip(header, parent.Height+1)
	c.headers[hash] = tip
	return tip, true, nil
}

// Validate checks a block against the current chain without storing it.
// Inputs are checked only for blocks extending the best block; other blocks
// are checked when they are connected.
func (c *Chain) Validate(block *btcutil.Block) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	hash := *block.Hash()
	if _, ok := c.blockLocked(hash); ok {
		return fmt.Errorf("%w: %s", ErrDuplicateBlock, hash)
	}
	parent, ok := c.tipLocked(block.MsgBlock().Header.PrevBlock)
	if !ok {
		return fmt.Errorf("%w: block %s", ErrUnknownParent, hash)
	}
	if err := c.checkBlockLocked(block, parent); err != nil {
		return err
	}
	if parent.Hash != c.best.tip.Hash {
		return nil
	}
	return c.utxos.check(block, parent.Height+1, c.params)
}

func (c *Chain) checkBlockLocked(block *btcutil.Block, parent model.Tip) error {
	msg := block.MsgBlock()
	hash := *block.Hash()

	if err := consensus.CheckProofOfWork(hash, msg.Header.Bits, c.params.PowLimit); err != nil {
		return fmt.Errorf("block %s: %w", hash, err)
	}
	want, err := c.params.NextRequiredTarget(parent, c.lookupLocked())
	if err != nil {
		return fmt.Errorf("block %s: %w", hash, err)
	}
	if msg.Header.Bits != want {
		return fmt.Errorf("%w: block %s has %08x, want %08x", ErrBadTarget, hash, msg.Header.Bits, want)
	}
	if len(msg.Transactions) == 0 || !blockchain.IsCoinBaseTx(msg.Transactions[0]) {
		return fmt.Errorf("%w: block %s does not start with a coinbase", ErrBadCoinbase, hash)
	}
	for i, tx := range msg.Transactions[1:] {
		if blockchain.IsCoinBaseTx(tx) {
			return fmt.Errorf("%w: block %s has a second coinbase at %d", ErrBadCoinbase, hash, i+1)
		}
	}
	if root := blockchain.CalcMerkleRoot(block.Transactions(), false); root != msg.Header.MerkleRoot {
		return fmt.Errorf("%w: block %s", ErrBadMerkleRoot, hash)
	}
	return nil
}

// Append stores a block. Blocks whose parent is known only by header are
// kept until the parent's transactions arrive. The best chain follows the
// most cumulative work.
func (c *Chain) Append(block *btcutil.Block) error {
	events, err := c.append(block, false)
	c.notifier.publish(events)
	return err
}

// ExtendTip appends block only if its parent is the best block or a
// header-only tip directly on it, checked under the same lock as the append.
func (c *Chain) ExtendTip(block *btcutil.Block) error {
	events, err := c.append(block, true)
	c.notifier.publish(events)
	return err
}

func (c *Chain) append(block *btcutil.Block, onTip bool) ([]event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	hash := *block.Hash()
	if _, ok := c.blockLocked(hash); ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateBlock, hash)
	}
	prev := block.MsgBlock().Header.PrevBlock
	if onTip && !c.isMiningTipLocked(prev) {
		return nil, fmt.Errorf("%w: block %s builds on %s, best is %s", mining.ErrStaleTip, hash, prev, c.best.tip.Hash)
	}
	parentTip, ok := c.tipLocked(prev)
	if !ok {
		return nil, fmt.Errorf("%w: block %s", ErrUnknownParent, hash)
	}
	if err := c.checkBlockLocked(block, parentTip); err != nil {
		return nil, err
	}
	block.SetHeight(parentTip.Height + 1)
	delete(c.headers, hash)

	parent, ok := c.nodes[prev]
	if !ok {
		c.orphans[hash] = block
		c.waiting[prev] = append(c.waiting[prev], hash)
		c.logger.Debug("block waiting for parent transactions",
			zap.Stringer("hash", &hash),
			zap.Stringer("parent", &prev),
		)
		return nil, nil
	}

	oldBest := c.best
	c.attach(block, parent)
	c.attachWaiting(hash)
	return c.selectBestLocked(oldBest)
}

func (c *Chain) isMiningTipLocked(hash chainhash.Hash) bool {
	if hash == c.best.tip.Hash {
		return true
	}
	header, ok := c.headers[hash]
	return ok && header.Header.PrevBlock == c.best.tip.Hash
}

func (c *Chain) attach(block *btcutil.Block, parent *node) *node {
	n := &node{
		tip:    model.NewTip(block.MsgBlock().Header, parent.tip.Height+1),
		block:  block,
		parent: parent,
		work:   new(big.Int).Add(parent.work, blockchain.CalcWork(block.MsgBlock().Header.Bits)),
	}
	c.nodes[n.tip.Hash] = n
	return n
}

// attachWaiting links blocks that were waiting on hash, recursively.
func (c *Chain) attachWaiting(hash chainhash.Hash) {
	queue := []chainhash.Hash{hash}
	for len(queue) > 0 {
		parentHash := queue[0]
		queue = queue[1:]
		for _, childHash := range c.waiting[parentHash] {
			child, ok := c.orphans[childHash]
			if !ok {
				continue
			}
			delete(c.orphans, childHash)
			c.attach(child, c.nodes[parentHash])
			queue = append(queue, childHash)
		}
		delete(c.waiting, parentHash)
	}
}

// selectBestLocked moves the best chain to the node with the most work.
func (c *Chain) selectBestLocked(oldBest *node) ([]event, error) {
	candidate := c.best
	for _, n := range c.nodes {
		switch cmp := n.work.Cmp(candidate.work); {
		case cmp > 0:
			candidate = n
		case cmp == 0 && candidate != c.best && model.CompareHashes(n.tip.Hash, candidate.tip.Hash) < 0:
			// The best block keeps its place against equal work. Challengers
			// resolve among themselves by hash so map order does not matter.
			candidate = n
		}
	}
	if candidate == oldBest {
		return nil, nil
	}

	fork := findFork(oldBest, candidate)
	detached := pathFrom(fork, oldBest)
	attached := pathFrom(fork, candidate)

	for i := len(detached) - 1; i >= 0; i-- {
		c.utxos.disconnect(detached[i])
	}
	for i, n := range attached {
		if err := c.utxos.connect(n, c.params); err != nil {
			c.rollback(attached[:i], detached)
			c.dropBranch(n)
			return nil, fmt.Errorf("connect %s: %w", n.tip.Hash, err)
		}
	}
	c.best = candidate

	newTip := candidate.tip
	if len(detached) == 0 {
		c.logger.Debug("best block", zap.Stringer("hash", &newTip.Hash), zap.Int32("height", newTip.Height))
		return []event{func(l mining.Listener) { l.OnNewBestBlock(newTip) }}, nil
	}

	reorg := model.Reorganize{
		SplitPoint: fork.tip,
		OldBlocks:  tips(detached),
		NewBlocks:  tips(attached),
	}
	c.logger.Info("reorganize",
		zap.Stringer("split", &reorg.SplitPoint.Hash),
		zap.Int("old_blocks", len(detached)),
		zap.Int("new_blocks", len(attached)),
	)
	return []event{func(l mining.Listener) { l.OnReorganize(reorg) }}, nil
}

// rollback restores the previous best chain after a failed connect.
func (c *Chain) rollback(connected, detached []*node) {
	for i := len(connected) - 1; i >= 0; i-- {
		c.utxos.disconnect(connected[i])
	}
	for _, n := range detached {
		if err := c.utxos.connect(n, c.params); err != nil {
			c.logger.Error("restore previous best chain failed", zap.Stringer("hash", &n.tip.Hash), zap.Error(err))
		}
	}
}

// dropBranch forgets n and every stored descendant.
func (c *Chain) dropBranch(n *node) {
	doomed := map[*node]struct{}{n: {}}
	changed := true
	for changed {
		changed = false
		for _, other := range c.nodes {
			if _, gone := doomed[other]; gone || other.parent == nil {
				continue
			}
			if _, parentGone := doomed[other.parent]; parentGone {
				doomed[other] = struct{}{}
				changed = true
			}
		}
	}
	for d := range doomed {
		delete(c.nodes, d.tip.Hash)
	}
}

func findFork(a, b *node) *node {
	for a.tip.Height > b.tip.Height {
		a = a.parent
	}
	for b.tip.Height > a.tip.Height {
		b = b.parent
	}
	for a != b {
		a, b = a.parent, b.parent
	}
	return a
}

// pathFrom returns the nodes after fork up to and including head, oldest first.
func pathFrom(fork, head *node) []*node {
	var path []*node
	for n := head; n != fork; n = n.parent {
		path = append(path, n)
	}
	slices.Reverse(path)
	return path
}

func tips(nodes []*node) []model.Tip {
	out := make([]model.Tip, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.tip)
	}
	return out
}
