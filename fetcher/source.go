// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package fetcher retrieves blocks and their reward events from an Ethereum
// JSON-RPC endpoint, with a persistent cache in front.
package fetcher

import (
	"context"

	"github.com/ethereum/go-ethereum/log"
	"github.com/pkg/errors"

	"github.com/vechain/rewardproof/block"
)

var logger = log.New("pkg", "fetcher")

// ErrBlockNotFound is returned when the endpoint doesn't know the block.
var ErrBlockNotFound = errors.New("block not found")

// Source provides blocks by number.
type Source interface {
	GetBlock(ctx context.Context, num uint64) (*block.Block, error)
}
