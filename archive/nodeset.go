// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package archive

import (
	"bytes"
	"encoding/json"
	"slices"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"

	"github.com/vechain/rewardproof/state"
	"github.com/vechain/rewardproof/trie"
)

// NodeSet is a content addressed set of trie nodes, keyed by the digest of the
// node bytes. An entry is never replaced once added.
type NodeSet struct {
	nodes map[common.Hash][]byte
}

// NewNodeSet creates an empty node set.
func NewNodeSet() *NodeSet {
	return &NodeSet{nodes: make(map[common.Hash][]byte)}
}

// Add adds node and reports whether it was absent.
func (s *NodeSet) Add(node []byte) (bool, error) {
	key := trie.Keccak256(node)
	if existing, ok := s.nodes[key]; ok {
		if !bytes.Equal(existing, node) {
			return false, errors.Wrapf(ErrNodeConflict, "digest %v", key)
		}
		return false, nil
	}
	s.nodes[key] = common.CopyBytes(node)
	return true, nil
}

// Merge adds every node of the proofs and returns the number of new nodes.
func (s *NodeSet) Merge(proofs []*state.AccountProof) (int, error) {
	added := 0
	for _, p := range proofs {
		for _, node := range p.Proof {
			ok, err := s.Add(node)
			if err != nil {
				return added, errors.Wrapf(err, "proof of %v", p.Address)
			}
			if ok {
				added++
			}
		}
	}
	return added, nil
}

// Len returns the number of nodes.
func (s *NodeSet) Len() int {
	return len(s.nodes)
}

// Has returns whether a node with the digest exists.
func (s *NodeSet) Has(key common.Hash) bool {
	_, ok := s.nodes[key]
	return ok
}

// Get returns the node with the digest.
func (s *NodeSet) Get(key common.Hash) ([]byte, bool) {
	node, ok := s.nodes[key]
	return node, ok
}

// Keys returns the digests in ascending order.
func (s *NodeSet) Keys() []common.Hash {
	keys := make([]common.Hash, 0, len(s.nodes))
	for k := range s.nodes {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, common.Hash.Cmp)
	return keys
}

// MarshalJSON encodes the set as an object of digest to node, ordered by digest.
func (s *NodeSet) MarshalJSON() ([]byte, error) {
	m := make(map[common.Hash]hexutil.Bytes, len(s.nodes))
	for k, v := range s.nodes {
		m[k] = v
	}
	return json.Marshal(m)
}

// UnmarshalJSON decodes the set, checking every digest against its node.
func (s *NodeSet) UnmarshalJSON(data []byte) error {
	var m map[common.Hash]hexutil.Bytes
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	nodes := make(map[common.Hash][]byte, len(m))
	for k, v := range m {
		if digest := trie.Keccak256(v); digest != k {
			return errors.Errorf("node %v has digest %v", k, digest)
		}
		nodes[k] = v
	}
	s.nodes = nodes
	return nil
}
