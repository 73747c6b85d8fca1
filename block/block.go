// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package block

import (
	"io"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rlp"
)

// Block is an immutable block type holding a header and the reward events
// credited by it.
type Block struct {
	header  *Header
	rewards Rewards
}

// New creates a block instance.
func New(header *Header, rewards Rewards) *Block {
	return &Block{
		header,
		rewards.Copy(),
	}
}

// Header returns the block header.
func (b *Block) Header() *Header {
	return b.header
}

// Rewards returns a copy of reward events.
func (b *Block) Rewards() Rewards {
	return b.rewards.Copy()
}

// Number is a shortcut of Header().Number().
func (b *Block) Number() uint64 {
	return b.header.Number()
}

// Hash is a shortcut of Header().Hash().
func (b *Block) Hash() common.Hash {
	return b.header.Hash()
}

// StateRoot is a shortcut of Header().StateRoot().
func (b *Block) StateRoot() common.Hash {
	return b.header.StateRoot()
}

// EncodeRLP implements rlp.Encoder.
func (b *Block) EncodeRLP(w io.Writer) error {
	return rlp.Encode(w, []any{
		b.header,
		b.rewards,
	})
}

// DecodeRLP implements rlp.Decoder.
func (b *Block) DecodeRLP(s *rlp.Stream) error {
	payload := struct {
		Header  Header
		Rewards Rewards
	}{}

	if err := s.Decode(&payload); err != nil {
		return err
	}
	*b = Block{
		header:  &payload.Header,
		rewards: payload.Rewards,
	}
	return nil
}
