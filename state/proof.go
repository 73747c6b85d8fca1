// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"bytes"
	"slices"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"

	"github.com/vechain/rewardproof/trie"
)

// AccountProof is the merkle proof of one account.
// Proof holds raw trie nodes from the root down to the account leaf, or down to
// the node proving absence.
type AccountProof struct {
	Address common.Address  `json:"address"`
	State   *Account        `json:"state"`
	Proof   []hexutil.Bytes `json:"proof"`
}

// Nodes returns the proof nodes as plain byte slices.
func (p *AccountProof) Nodes() [][]byte {
	nodes := make([][]byte, len(p.Proof))
	for i, n := range p.Proof {
		nodes[i] = n
	}
	return nodes
}

// GetProof returns the proof of addr against the current root.
// An unknown address gets an exclusion proof paired with the empty account.
func (s *State) GetProof(addr common.Address) (*AccountProof, error) {
	acc, err := s.GetAccount(addr)
	if err != nil {
		return nil, err
	}
	nodes, err := s.trie.Prove(accountKey(addr))
	if err != nil {
		return nil, errors.Wrapf(err, "prove %v", addr)
	}

	proof := make([]hexutil.Bytes, len(nodes))
	for i, n := range nodes {
		proof[i] = n
	}
	return &AccountProof{
		Address: addr,
		State:   acc,
		Proof:   proof,
	}, nil
}

// GetProofs returns one proof per distinct address, sorted by address.
func (s *State) GetProofs(addrs []common.Address) ([]*AccountProof, error) {
	sorted := slices.Clone(addrs)
	slices.SortFunc(sorted, common.Address.Cmp)
	sorted = slices.Compact(sorted)

	proofs := make([]*AccountProof, 0, len(sorted))
	for _, addr := range sorted {
		p, err := s.GetProof(addr)
		if err != nil {
			return nil, err
		}
		proofs = append(proofs, p)
	}
	return proofs, nil
}

// VerifyProof checks the proof against root on its own, without access to any state.
// The proven leaf must encode exactly p.State; a proven absence must pair with the
// empty account.
func VerifyProof(root common.Hash, p *AccountProof) error {
	if p.State == nil {
		return errors.Wrapf(ErrInvalidProof, "%v: missing state", p.Address)
	}

	val, err := trie.VerifyProof(root, accountKey(p.Address), p.Nodes())
	if err != nil {
		return errors.Wrapf(ErrInvalidProof, "%v: %v", p.Address, err)
	}

	want, err := p.State.Encode()
	if err != nil {
		return err
	}
	if val == nil {
		empty, _ := EmptyAccount().Encode()
		if !bytes.Equal(want, empty) {
			return errors.Wrapf(ErrInvalidProof, "%v: absent account paired with non-empty state", p.Address)
		}
		return nil
	}
	if !bytes.Equal(val, want) {
		return errors.Wrapf(ErrInvalidProof, "%v: leaf doesn't match state", p.Address)
	}
	return nil
}
