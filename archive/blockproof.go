// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package archive

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/vechain/rewardproof/block"
	"github.com/vechain/rewardproof/state"
)

// Kind tells a partial block proof (touched accounts) from a full one (every
// known account).
type Kind string

const (
	// KindPartial proves the accounts credited by the block.
	KindPartial Kind = "partial"
	// KindFull proves every account known after the block.
	KindFull Kind = "full"
)

// BlockProof is the account proofs of one block, against its state root.
type BlockProof struct {
	Block     uint64                `json:"block"`
	BlockHash common.Hash           `json:"block_hash"`
	StateRoot common.Hash           `json:"state_root"`
	Proofs    []*state.AccountProof `json:"proofs"`
}

// NewBlockProof creates a block proof of b.
func NewBlockProof(b *block.Block, proofs []*state.AccountProof) *BlockProof {
	if proofs == nil {
		proofs = []*state.AccountProof{}
	}
	return &BlockProof{
		Block:     b.Number(),
		BlockHash: b.Hash(),
		StateRoot: b.StateRoot(),
		Proofs:    proofs,
	}
}

// Verify checks every account proof against the state root.
func (p *BlockProof) Verify() error {
	for _, ap := range p.Proofs {
		if err := state.VerifyProof(p.StateRoot, ap); err != nil {
			return errors.Wrapf(err, "block %d", p.Block)
		}
	}
	return nil
}
