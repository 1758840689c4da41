package memchain

import (
	"sync"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/nimblecoin-miner/internal/mining"
	"github.com/goodnatureofminers/nimblecoin-miner/internal/model"
)

var _ mining.Pool = (*Mempool)(nil)

// Mempool holds unconfirmed transactions keyed by hash.
type Mempool struct {
	mu  sync.RWMutex
	txs map[chainhash.Hash]*model.UnconfirmedTx
	now func() time.Time
}

// NewMempool returns an empty pool.
func NewMempool() *Mempool {
	return &Mempool{
		txs: make(map[chainhash.Hash]*model.UnconfirmedTx),
		now: time.Now,
	}
}

// Add stores tx stamped with the current time. Re-adding a known
// transaction keeps its original arrival time and reports false.
func (m *Mempool) Add(tx *btcutil.Tx) (*model.UnconfirmedTx, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.txs[*tx.Hash()]; ok {
		return existing, false
	}
	utx := &model.UnconfirmedTx{Tx: tx, Arrived: m.now()}
	m.txs[*tx.Hash()] = utx
	return utx, true
}

// AllPending returns every pending transaction in no particular order.
func (m *Mempool) AllPending() []*model.UnconfirmedTx {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*model.UnconfirmedTx, 0, len(m.txs))
	for _, utx := range m.txs {
		out = append(out, utx)
	}
	return out
}

// Remove drops a transaction.
func (m *Mempool) Remove(hash chainhash.Hash) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.txs, hash)
}

// Len returns the number of pending transactions.
func (m *Mempool) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.txs)
}

// Get returns the pending transaction with the given hash.
func (m *Mempool) Get(hash chainhash.Hash) (*btcutil.Tx, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	utx, ok := m.txs[hash]
	if !ok {
		return nil, false
	}
	return utx.Tx, true
}
