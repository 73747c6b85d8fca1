// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package block

import (
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rlp"
)

// Header carries the parts of a chain header the replay needs.
// It's immutable.
type Header struct {
	body headerBody
}

type headerBody struct {
	Number    uint64
	Hash      common.Hash
	StateRoot common.Hash
}

// NewHeader creates a header.
func NewHeader(number uint64, hash, stateRoot common.Hash) *Header {
	return &Header{headerBody{number, hash, stateRoot}}
}

// Number returns the block number.
func (h *Header) Number() uint64 {
	return h.body.Number
}

// Hash returns the block hash as reported by the chain.
func (h *Header) Hash() common.Hash {
	return h.body.Hash
}

// StateRoot returns the state root declared by the block.
func (h *Header) StateRoot() common.Hash {
	return h.body.StateRoot
}

// EncodeRLP implements rlp.Encoder.
func (h *Header) EncodeRLP(w io.Writer) error {
	return rlp.Encode(w, &h.body)
}

// DecodeRLP implements rlp.Decoder.
func (h *Header) DecodeRLP(s *rlp.Stream) error {
	var body headerBody

	if err := s.Decode(&body); err != nil {
		return err
	}
	*h = Header{body: body}
	return nil
}

func (h *Header) String() string {
	return fmt.Sprintf(`Header(%v):
	Number:		%v
	StateRoot:	%v`, h.body.Hash, h.body.Number, h.body.StateRoot)
}
