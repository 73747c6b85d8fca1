// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/vechain/rewardproof/trie"
)

// Account is the consensus representation of an account.
// RLP encoded objects are stored in the accounts trie.
type Account struct {
	Nonce       uint64
	Balance     *uint256.Int
	StorageRoot common.Hash // merkle root of the storage trie
	CodeHash    common.Hash // hash of code
}

var (
	_ json.Marshaler   = (*Account)(nil)
	_ json.Unmarshaler = (*Account)(nil)
)

// EmptyAccount returns the account every address has before it's touched:
// zero nonce and balance, empty storage trie and empty code.
func EmptyAccount() *Account {
	return &Account{
		Balance:     new(uint256.Int),
		StorageRoot: types.EmptyRootHash,
		CodeHash:    types.EmptyCodeHash,
	}
}

// Copy returns a deep copy.
func (a *Account) Copy() *Account {
	cpy := *a
	cpy.Balance = new(uint256.Int)
	if a.Balance != nil {
		cpy.Balance.Set(a.Balance)
	}
	return &cpy
}

// Encode returns the RLP encoding of (nonce, balance, storageRoot, codeHash).
func (a *Account) Encode() ([]byte, error) {
	return rlp.EncodeToBytes(a)
}

// DecodeAccount decodes an account. Truncated input, trailing bytes, wrong field
// count and non-canonical integers all fail with ErrMalformedAccount.
func DecodeAccount(data []byte) (*Account, error) {
	var a Account
	if err := rlp.DecodeBytes(data, &a); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedAccount, err)
	}
	if a.Balance == nil {
		a.Balance = new(uint256.Int)
	}
	return &a, nil
}

type accountJSON struct {
	Nonce       uint64       `json:"nonce"`
	Balance     *hexutil.Big `json:"balance"`
	StorageHash common.Hash  `json:"storage_hash"`
	CodeHash    common.Hash  `json:"code_hash"`
}

// MarshalJSON implements json.Marshaler.
func (a *Account) MarshalJSON() ([]byte, error) {
	var balance uint256.Int
	if a.Balance != nil {
		balance.Set(a.Balance)
	}
	return json.Marshal(&accountJSON{
		Nonce:       a.Nonce,
		Balance:     (*hexutil.Big)(balance.ToBig()),
		StorageHash: a.StorageRoot,
		CodeHash:    a.CodeHash,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Account) UnmarshalJSON(data []byte) error {
	var v accountJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v.Balance == nil {
		return errors.New("account: missing balance")
	}
	balance, overflow := uint256.FromBig(v.Balance.ToInt())
	if overflow {
		return errors.New("account: balance exceeds 256 bits")
	}
	*a = Account{
		Nonce:       v.Nonce,
		Balance:     balance,
		StorageRoot: v.StorageHash,
		CodeHash:    v.CodeHash,
	}
	return nil
}

// loadAccount loads an account by address in trie.
// It returns an empty account if no account found at the address.
func loadAccount(tr *trie.Trie, addr common.Address) (*Account, error) {
	data, err := tr.Get(accountKey(addr))
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return EmptyAccount(), nil
	}
	return DecodeAccount(data)
}

// saveAccount saves account into trie at given address.
// Unlike a full state, an empty account is kept: a reward-only replay never deletes.
func saveAccount(tr *trie.Trie, addr common.Address, a *Account) error {
	data, err := a.Encode()
	if err != nil {
		return err
	}
	return tr.Update(accountKey(addr), data)
}

func accountKey(addr common.Address) []byte {
	return trie.Keccak256(addr[:]).Bytes()
}
