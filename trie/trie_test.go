// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package trie

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeccak256(t *testing.T) {
	assert.Equal(t, crypto.Keccak256Hash(nil), Keccak256())
	assert.Equal(t, types.EmptyCodeHash, Keccak256([]byte{}))
	assert.Equal(t, crypto.Keccak256Hash([]byte("foobar")), Keccak256([]byte("foo"), []byte("bar")))
}

func TestEmptyTrie(t *testing.T) {
	tr := New()
	assert.Equal(t, types.EmptyRootHash, tr.Hash())

	val, err := tr.Get([]byte("missing"))
	assert.Nil(t, err)
	assert.Nil(t, val)

	proof, err := tr.Prove([]byte("missing"))
	require.NoError(t, err)
	assert.Empty(t, proof)

	val, err = VerifyProof(types.EmptyRootHash, []byte("missing"), proof)
	assert.NoError(t, err)
	assert.Nil(t, val)
}

func TestInsertionOrder(t *testing.T) {
	keys := make([][]byte, 0, 64)
	for i := range 64 {
		keys = append(keys, Keccak256([]byte(fmt.Sprintf("key%d", i))).Bytes())
	}

	build := func(order []int) *Trie {
		tr := New()
		for _, i := range order {
			require.NoError(t, tr.Update(keys[i], []byte(fmt.Sprintf("value%d", i))))
		}
		return tr
	}

	forward := make([]int, len(keys))
	for i := range forward {
		forward[i] = i
	}
	shuffled := rand.New(rand.NewSource(1)).Perm(len(keys))

	a, b := build(forward), build(shuffled)
	assert.Equal(t, a.Hash(), b.Hash())

	for _, k := range keys {
		pa, err := a.Prove(k)
		require.NoError(t, err)
		pb, err := b.Prove(k)
		require.NoError(t, err)
		assert.Equal(t, pa, pb)
	}
}

func TestProveAndVerify(t *testing.T) {
	tr := New()
	for i := range 32 {
		key := Keccak256([]byte{byte(i)})
		require.NoError(t, tr.Update(key[:], []byte(fmt.Sprintf("v%d", i))))
	}
	root := tr.Hash()

	key := Keccak256([]byte{7})
	proof, err := tr.Prove(key[:])
	require.NoError(t, err)
	require.NotEmpty(t, proof)
	assert.Equal(t, root, Keccak256(proof[0]), "first node should be the root")

	val, err := VerifyProof(root, key[:], proof)
	assert.Nil(t, err)
	assert.Equal(t, []byte("v7"), val)

	// absent key gets an exclusion proof
	absent := Keccak256([]byte("absent"))
	proof, err = tr.Prove(absent[:])
	require.NoError(t, err)
	require.NotEmpty(t, proof)
	val, err = VerifyProof(root, absent[:], proof)
	assert.Nil(t, err)
	assert.Nil(t, val)

	// a proof for another root fails
	require.NoError(t, tr.Update(key[:], []byte("changed")))
	_, err = VerifyProof(tr.Hash(), key[:], proof)
	assert.NotNil(t, err)
}

func TestProofListDelete(t *testing.T) {
	var l ProofList
	assert.Nil(t, l.Put([]byte{1}, []byte{2}))
	assert.Equal(t, ProofList{{2}}, l)
	assert.NotNil(t, l.Delete([]byte{1}))
}
