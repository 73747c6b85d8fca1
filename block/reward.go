// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package block

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Reward is a block-level balance credit, such as a miner or uncle reward.
// It's not a transaction; no sender is debited.
type Reward struct {
	Recipient common.Address
	Value     *uint256.Int
}

// Rewards is a list of rewards in block order.
type Rewards []*Reward

// Copy returns a shallow copy.
func (rs Rewards) Copy() Rewards {
	return append(Rewards(nil), rs...)
}

// Total sums all reward values. The second return is true if the sum overflows.
func (rs Rewards) Total() (*uint256.Int, bool) {
	var (
		sum      uint256.Int
		overflow bool
	)
	for _, r := range rs {
		if _, o := sum.AddOverflow(&sum, r.Value); o {
			overflow = true
		}
	}
	return &sum, overflow
}
