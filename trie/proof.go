// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package trie

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethdb/memorydb"
	ethtrie "github.com/ethereum/go-ethereum/trie"
	"github.com/pkg/errors"
)

// ProofList collects proof nodes in the order they are written.
// It implements ethdb.KeyValueWriter.
type ProofList [][]byte

// Put appends a copy of value. The key (node hash) is implied by the value.
func (l *ProofList) Put(_ []byte, value []byte) error {
	*l = append(*l, common.CopyBytes(value))
	return nil
}

// Delete is not supported.
func (l *ProofList) Delete([]byte) error {
	return errors.New("proof list: delete not supported")
}

// VerifyProof checks proof against root for key and returns the proven value.
// A nil value with nil error means the proof shows key is absent.
func VerifyProof(root common.Hash, key []byte, proof [][]byte) ([]byte, error) {
	// the empty trie proves any absence with no node at all
	if root == types.EmptyRootHash && len(proof) == 0 {
		return nil, nil
	}
	db := memorydb.New()
	for _, node := range proof {
		if err := db.Put(Keccak256(node).Bytes(), node); err != nil {
			return nil, err
		}
	}
	return ethtrie.VerifyProof(root, key, db)
}
