// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

var (
	// ErrGenesisRootMismatch is returned when the genesis allocation doesn't reproduce the declared root.
	ErrGenesisRootMismatch = errors.New("genesis root mismatch")
	// ErrStateRootMismatch is returned when the root after a block differs from the block's state root.
	ErrStateRootMismatch = errors.New("state root mismatch")
	// ErrOutOfOrderBlock is returned when a block other than the next expected one is processed.
	ErrOutOfOrderBlock = errors.New("out of order block")
	// ErrMalformedAccount is returned when trie content fails to decode as an account.
	ErrMalformedAccount = errors.New("malformed account")
	// ErrInvariantViolation is returned when balance arithmetic leaves the 256-bit range.
	ErrInvariantViolation = errors.New("invariant violation")
	// ErrInvalidProof is returned when an account proof doesn't verify.
	ErrInvalidProof = errors.New("invalid account proof")
	// ErrFaulted is returned by every mutation once the state has faulted.
	ErrFaulted = errors.New("state faulted")
)

// RootError reports a root check failure with both roots.
// It unwraps to ErrGenesisRootMismatch or ErrStateRootMismatch.
type RootError struct {
	Kind     error
	Block    uint64
	Expected common.Hash
	Computed common.Hash
}

func (e *RootError) Error() string {
	if e.Kind == ErrGenesisRootMismatch {
		return fmt.Sprintf("%v: expected %v, computed %v", e.Kind, e.Expected, e.Computed)
	}
	return fmt.Sprintf("block %d: %v: expected %v, computed %v", e.Block, e.Kind, e.Expected, e.Computed)
}

func (e *RootError) Unwrap() error {
	return e.Kind
}
