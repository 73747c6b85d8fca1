// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package trie wraps the Ethereum Merkle Patricia Trie as an in-memory key-value
// commitment with proof generation.
//
// Keys are used as given. Callers who want a secure trie hash their keys first.
package trie

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/rawdb"
	ethtrie "github.com/ethereum/go-ethereum/trie"
	"github.com/ethereum/go-ethereum/triedb"
	"github.com/pkg/errors"
)

// Trie is an in-memory Merkle Patricia Trie. The root hash depends only on the
// stored key-value set, never on insertion order.
//
// Trie is not safe for concurrent use.
type Trie struct {
	trie *ethtrie.Trie
}

// New creates an empty trie.
func New() *Trie {
	db := triedb.NewDatabase(rawdb.NewMemoryDatabase(), nil)
	return &Trie{ethtrie.NewEmpty(db)}
}

// Get returns the value stored at key, or nil if the key is absent.
func (t *Trie) Get(key []byte) ([]byte, error) {
	val, err := t.trie.Get(key)
	if err != nil {
		return nil, errors.Wrap(err, "trie get")
	}
	return val, nil
}

// Update associates key with value. An empty value removes the key.
func (t *Trie) Update(key, value []byte) error {
	if err := t.trie.Update(key, value); err != nil {
		return errors.Wrap(err, "trie update")
	}
	return nil
}

// Hash returns the root hash. The empty trie hashes to types.EmptyRootHash.
func (t *Trie) Hash() common.Hash {
	return t.trie.Hash()
}

// Prove returns the ordered root-to-leaf node path for key.
// For an absent key the path ends at the node proving the absence.
func (t *Trie) Prove(key []byte) ([][]byte, error) {
	var list ProofList
	if err := t.trie.Prove(key, &list); err != nil {
		return nil, errors.Wrap(err, "trie prove")
	}
	return list, nil
}
