// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package sink

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/rewardproof/archive"
	"github.com/vechain/rewardproof/block"
	"github.com/vechain/rewardproof/state"
)

var addrA = common.HexToAddress("0x000000000000000000000000000000000000000a")

func readJSON(t *testing.T, d *Dir, name string, v any) {
	data, err := os.ReadFile(d.Path(name))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, v))
}

func keys(m map[string]any) []string {
	ks := make([]string, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	return ks
}

// genesisProof returns the block 0 proof of a single account state.
func genesisProof(t *testing.T) (*archive.BlockProof, *archive.NodeSet) {
	st, err := state.New(nil, types.EmptyRootHash)
	require.NoError(t, err)

	proofs, err := st.GetProofs([]common.Address{addrA})
	require.NoError(t, err)

	nodes := archive.NewNodeSet()
	_, err = nodes.Merge(proofs)
	require.NoError(t, err)

	b := block.New(block.NewHeader(0, common.HexToHash("0xd4e5"), types.EmptyRootHash), nil)
	return archive.NewBlockProof(b, proofs), nodes
}

func TestFileNames(t *testing.T) {
	assert.Equal(t, "proofs.partial.block.7.json", BlockProofName(archive.KindPartial, 7))
	assert.Equal(t, "proofs.full.block.7.json", BlockProofName(archive.KindFull, 7))
	assert.Equal(t, "tree.block.7.json", BlockNodesName(7))
	assert.Equal(t, "archive.proofs.100.json", ArchiveProofsName(100))
	assert.Equal(t, "archive.tree.100.json", ArchiveNodesName(100))
}

func TestPutBlockProof(t *testing.T) {
	d, err := NewDir(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)

	proof, _ := genesisProof(t)
	require.NoError(t, d.PutBlockProof(archive.KindPartial, proof))

	var raw map[string]any
	readJSON(t, d, "proofs.partial.block.0.json", &raw)
	assert.ElementsMatch(t, []string{"block", "block_hash", "state_root", "proofs"}, keys(raw))
	assert.Equal(t, float64(0), raw["block"])
	assert.Equal(t, "0x000000000000000000000000000000000000000000000000000000000000d4e5", raw["block_hash"])
	assert.Equal(t, types.EmptyRootHash.Hex(), raw["state_root"])

	proofs := raw["proofs"].([]any)
	require.Len(t, proofs, 1)
	entry := proofs[0].(map[string]any)
	assert.ElementsMatch(t, []string{"address", "state", "proof"}, keys(entry))
	assert.Equal(t, addrA.Hex(), common.HexToAddress(entry["address"].(string)).Hex())
	assert.Equal(t, map[string]any{
		"nonce":        float64(0),
		"balance":      "0x0",
		"storage_hash": types.EmptyRootHash.Hex(),
		"code_hash":    types.EmptyCodeHash.Hex(),
	}, entry["state"])

	var decoded archive.BlockProof
	readJSON(t, d, "proofs.partial.block.0.json", &decoded)
	assert.Equal(t, proof, &decoded)
	assert.NoError(t, decoded.Verify())
}

func TestPutArchive(t *testing.T) {
	d, err := NewDir(t.TempDir())
	require.NoError(t, err)

	proof, nodes := genesisProof(t)
	require.NoError(t, d.PutBlockNodes(0, nodes))
	require.NoError(t, d.PutArchive(3, []*archive.BlockProof{proof}, nodes))

	var tree archive.NodeSet
	readJSON(t, d, "tree.block.0.json", &tree)
	assert.Equal(t, nodes.Keys(), tree.Keys())

	readJSON(t, d, "archive.tree.3.json", &tree)
	assert.Equal(t, nodes.Keys(), tree.Keys())

	var partials []*archive.BlockProof
	readJSON(t, d, "archive.proofs.3.json", &partials)
	assert.Equal(t, []*archive.BlockProof{proof}, partials)

	// nothing but the artifacts is left behind
	entries, err := os.ReadDir(d.Path(""))
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestPutArchiveEmpty(t *testing.T) {
	d, err := NewDir(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, d.PutArchive(0, nil, archive.NewNodeSet()))

	data, err := os.ReadFile(d.Path("archive.proofs.0.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))

	data, err = os.ReadFile(d.Path("archive.tree.0.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(data))
}

func TestOverwrite(t *testing.T) {
	d, err := NewDir(t.TempDir())
	require.NoError(t, err)

	proof, _ := genesisProof(t)
	require.NoError(t, d.PutBlockProof(archive.KindFull, proof))

	proof.Proofs[0].State.Balance = uint256.NewInt(9)
	require.NoError(t, d.PutBlockProof(archive.KindFull, proof))

	var decoded archive.BlockProof
	readJSON(t, d, "proofs.full.block.0.json", &decoded)
	assert.Equal(t, uint256.NewInt(9), decoded.Proofs[0].State.Balance)
}
