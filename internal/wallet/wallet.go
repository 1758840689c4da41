// Package wallet holds the keys miners are paid to and spends from.
package wallet

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/nimblecoin-miner/internal/mining"
)

// ErrNotSpendable is returned when asked to sign an output this account cannot unlock.
var ErrNotSpendable = errors.New("output not spendable by account")

var _ mining.Wallet = (*Account)(nil)

// Account pays coinbases either to its own key or to a configured address.
type Account struct {
	key    *btcec.PrivateKey
	p2pk   []byte
	payout []byte
}

// NewAccount wraps key. payout, when non-nil, receives coinbase rewards
// instead of the key's P2PK script.
func NewAccount(key *btcec.PrivateKey, payout btcutil.Address) (*Account, error) {
	p2pk, err := txscript.NewScriptBuilder().
		AddData(key.PubKey().SerializeCompressed()).
		AddOp(txscript.OP_CHECKSIG).
		Script()
	if err != nil {
		return nil, fmt.Errorf("p2pk script: %w", err)
	}

	a := &Account{key: key, p2pk: p2pk}
	if payout != nil {
		if a.payout, err = txscript.PayToAddrScript(payout); err != nil {
			return nil, fmt.Errorf("payout script for %s: %w", payout, err)
		}
	}
	return a, nil
}

// GenerateAccount creates an account with a fresh key.
func GenerateAccount(payout btcutil.Address) (*Account, error) {
	key, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}
	return NewAccount(key, payout)
}

// AccountFromWIF restores an account from a WIF-encoded key.
func AccountFromWIF(encoded string, payout btcutil.Address) (*Account, error) {
	w, err := btcutil.DecodeWIF(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode wif: %w", err)
	}
	return NewAccount(w.PrivKey, payout)
}

// WIF encodes the account key for net.
func (a *Account) WIF(net *chaincfg.Params) (string, error) {
	w, err := btcutil.NewWIF(a.key, net, true)
	if err != nil {
		return "", err
	}
	return w.String(), nil
}

// PubKey returns the compressed public key.
func (a *Account) PubKey() []byte {
	return a.key.PubKey().SerializeCompressed()
}

// Address returns the pay-to-pubkey-hash address of the key on net.
func (a *Account) Address(net *chaincfg.Params) (btcutil.Address, error) {
	return btcutil.NewAddressPubKeyHash(btcutil.Hash160(a.PubKey()), net)
}

// CoinbaseScript returns the script coinbase rewards are paid to.
func (a *Account) CoinbaseScript() ([]byte, error) {
	if a.payout != nil {
		return a.payout, nil
	}
	return a.p2pk, nil
}

// IsMine reports whether pkScript pays this account's own key. A payout
// address may be shared by several accounts, so it never identifies one.
func (a *Account) IsMine(pkScript []byte) bool {
	return bytes.Equal(pkScript, a.p2pk)
}

// CanSpend reports whether the account holds the key unlocking pkScript.
func (a *Account) CanSpend(pkScript []byte) bool {
	return bytes.Equal(pkScript, a.p2pk)
}

// SpendScript is the P2PK script spendable outputs should pay to.
func (a *Account) SpendScript() []byte {
	return a.p2pk
}

// SignP2PK fills the signature script of input idx spending prevScript.
func (a *Account) SignP2PK(tx *wire.MsgTx, idx int, prevScript []byte) error {
	if !a.CanSpend(prevScript) {
		return ErrNotSpendable
	}
	sig, err := txscript.RawTxInSignature(tx, idx, prevScript, txscript.SigHashAll, a.key)
	if err != nil {
		return fmt.Errorf("sign input %d: %w", idx, err)
	}
	script, err := txscript.NewScriptBuilder().AddData(sig).Script()
	if err != nil {
		return err
	}
	tx.TxIn[idx].SignatureScript = script
	return nil
}

// Keyring holds one account per emulated miner.
type Keyring struct {
	accounts []*Account
}

// NewKeyring generates n accounts sharing the optional payout address.
func NewKeyring(n int, payout btcutil.Address) (*Keyring, error) {
	if n <= 0 {
		return nil, fmt.Errorf("keyring needs at least one account, got %d", n)
	}
	k := &Keyring{accounts: make([]*Account, 0, n)}
	for i := 0; i < n; i++ {
		a, err := GenerateAccount(payout)
		if err != nil {
			return nil, err
		}
		k.accounts = append(k.accounts, a)
	}
	return k, nil
}

// Account returns the account of miner i.
func (k *Keyring) Account(i int) *Account {
	return k.accounts[i]
}

// Len returns the number of accounts.
func (k *Keyring) Len() int {
	return len(k.accounts)
}

// Spender returns the account able to spend pkScript.
func (k *Keyring) Spender(pkScript []byte) (*Account, bool) {
	for _, a := range k.accounts {
		if a.CanSpend(pkScript) {
			return a, true
		}
	}
	return nil, false
}

// DecodePayoutAddress parses addr for net; an empty string yields nil.
func DecodePayoutAddress(addr string, net *chaincfg.Params) (btcutil.Address, error) {
	if addr == "" {
		return nil, nil
	}
	decoded, err := btcutil.DecodeAddress(addr, net)
	if err != nil {
		return nil, fmt.Errorf("decode payout address %q: %w", addr, err)
	}
	if !decoded.IsForNet(net) {
		return nil, fmt.Errorf("payout address %q is not for %s", addr, net.Name)
	}
	return decoded, nil
}
