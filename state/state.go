// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"fmt"
	"slices"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/vechain/rewardproof/block"
	"github.com/vechain/rewardproof/trie"
)

var logger = log.New("pkg", "state")

// Addresses is a list of addresses sorted in ascending byte order.
type Addresses []common.Address

func sortedAddresses(set map[common.Address]struct{}) Addresses {
	addrs := make(Addresses, 0, len(set))
	for addr := range set {
		addrs = append(addrs, addr)
	}
	slices.SortFunc(addrs, common.Address.Cmp)
	return addrs
}

// State owns the accounts trie of one replay run.
//
// It's mutated by exactly one owner: ProcessBlock must not run concurrently
// with any other method.
type State struct {
	trie     *trie.Trie
	accounts map[common.Address]struct{} // every address ever written, never shrinks
	next     uint64                       // number of the next block to process
	fault    error
}

// New builds the genesis state from the allocation and checks it against the
// expected root. The returned state expects block 0 next.
func New(alloc map[common.Address]*uint256.Int, root common.Hash) (*State, error) {
	s := &State{
		trie:     trie.New(),
		accounts: make(map[common.Address]struct{}, len(alloc)),
	}

	for addr, balance := range alloc {
		acc := EmptyAccount()
		if balance != nil {
			acc.Balance.Set(balance)
		}
		if err := saveAccount(s.trie, addr, acc); err != nil {
			return nil, errors.Wrapf(err, "alloc %v", addr)
		}
		s.accounts[addr] = struct{}{}
	}

	if computed := s.trie.Hash(); computed != root {
		return nil, &RootError{Kind: ErrGenesisRootMismatch, Expected: root, Computed: computed}
	}

	metricKnownAccounts().Set(int64(len(s.accounts)))
	logger.Debug("genesis state built", "accounts", len(s.accounts), "root", root)
	return s, nil
}

// ProcessBlock applies the block rewards and checks the resulting root against
// the block state root. It returns the credited addresses, possibly none.
//
// Any error leaves the state faulted. An out of order block is refused before
// mutation; a root mismatch leaves the rewards applied with no way back.
func (s *State) ProcessBlock(b *block.Block) (Addresses, error) {
	if s.fault != nil {
		return nil, fmt.Errorf("%w: %w", ErrFaulted, s.fault)
	}

	if b.Number() != s.next {
		return nil, s.setFault("order", errors.Wrapf(ErrOutOfOrderBlock,
			"expected block %d, received %d", s.next, b.Number()))
	}

	touched := make(map[common.Address]struct{})
	for _, reward := range b.Rewards() {
		acc, err := loadAccount(s.trie, reward.Recipient)
		if err != nil {
			return nil, s.setFault("account", errors.Wrapf(err, "block %d: load %v", b.Number(), reward.Recipient))
		}

		balance, overflow := new(uint256.Int).AddOverflow(acc.Balance, reward.Value)
		if overflow {
			return nil, s.setFault("overflow", errors.Wrapf(ErrInvariantViolation,
				"block %d: balance overflow crediting %v to %v", b.Number(), reward.Value, reward.Recipient))
		}
		acc.Balance = balance

		if err := saveAccount(s.trie, reward.Recipient, acc); err != nil {
			return nil, s.setFault("account", errors.Wrapf(err, "block %d: save %v", b.Number(), reward.Recipient))
		}
		s.accounts[reward.Recipient] = struct{}{}
		touched[reward.Recipient] = struct{}{}

		metricRewardsApplied().Add(1)
		logger.Trace("reward credited", "block", b.Number(), "recipient", reward.Recipient, "value", reward.Value, "balance", balance)
	}

	if computed := s.trie.Hash(); computed != b.StateRoot() {
		return nil, s.setFault("root", &RootError{
			Kind:     ErrStateRootMismatch,
			Block:    b.Number(),
			Expected: b.StateRoot(),
			Computed: computed,
		})
	}

	s.next++
	metricKnownAccounts().Set(int64(len(s.accounts)))
	return sortedAddresses(touched), nil
}

func (s *State) setFault(kind string, err error) error {
	s.fault = err
	metricStateFaults().AddWithLabel(1, map[string]string{"kind": kind})
	logger.Error("state faulted", "next", s.next, "err", err)
	return err
}

// Root returns the current root hash.
func (s *State) Root() common.Hash {
	return s.trie.Hash()
}

// Next returns the number of the block ProcessBlock expects.
func (s *State) Next() uint64 {
	return s.next
}

// Fault returns the error that faulted the state, or nil.
func (s *State) Fault() error {
	return s.fault
}

// Accounts returns every known address in sorted order.
func (s *State) Accounts() Addresses {
	return sortedAddresses(s.accounts)
}

// AccountCount returns the number of known addresses.
func (s *State) AccountCount() int {
	return len(s.accounts)
}

// Has returns whether the address is known.
func (s *State) Has(addr common.Address) bool {
	_, ok := s.accounts[addr]
	return ok
}

// GetAccount returns the account at addr, or the empty account if absent.
func (s *State) GetAccount(addr common.Address) (*Account, error) {
	return loadAccount(s.trie, addr)
}

// GetBalance returns balance for the given address.
func (s *State) GetBalance(addr common.Address) (*uint256.Int, error) {
	acc, err := s.GetAccount(addr)
	if err != nil {
		return nil, err
	}
	return acc.Balance, nil
}
