// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package fetcher

import (
	"context"
	"encoding/json"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/vechain/rewardproof/block"
)

// RPC fetches blocks from an archive node exposing the parity trace API.
type RPC struct {
	client *rpc.Client
	eth    *ethclient.Client
}

var _ Source = (*RPC)(nil)

// NewRPC dials the endpoint at url.
func NewRPC(ctx context.Context, url string) (*RPC, error) {
	client, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "dial %v", url)
	}
	return &RPC{
		client: client,
		eth:    ethclient.NewClient(client),
	}, nil
}

// Close closes the underlying connection.
func (r *RPC) Close() {
	r.client.Close()
}

// Head returns the number of the most recent block.
func (r *RPC) Head(ctx context.Context) (uint64, error) {
	n, err := r.eth.BlockNumber(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "block number")
	}
	return n, nil
}

// GetBlock fetches the header and the reward traces of block num.
func (r *RPC) GetBlock(ctx context.Context, num uint64) (*block.Block, error) {
	start := time.Now()

	header, err := r.eth.HeaderByNumber(ctx, new(big.Int).SetUint64(num))
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return nil, errors.Wrapf(ErrBlockNotFound, "block %d", num)
		}
		return nil, errors.Wrapf(err, "header of block %d", num)
	}

	var traces []json.RawMessage
	if err := r.client.CallContext(ctx, &traces, "trace_block", hexutil.EncodeUint64(num)); err != nil {
		return nil, errors.Wrapf(err, "traces of block %d", num)
	}
	rewards, err := parseRewards(traces)
	if err != nil {
		return nil, errors.Wrapf(err, "traces of block %d", num)
	}

	metricFetchDuration().Observe(time.Since(start).Milliseconds())
	logger.Trace("block fetched", "number", num, "rewards", len(rewards), "elapsed", time.Since(start))

	return block.New(block.NewHeader(header.Number.Uint64(), header.Hash(), header.Root), rewards), nil
}

type traceJSON struct {
	Type   string          `json:"type"`
	Action json.RawMessage `json:"action"`
}

type rewardActionJSON struct {
	Author *common.Address `json:"author"`
	Value  *hexutil.Big    `json:"value"`
}

// parseRewards keeps the reward traces, in trace order.
func parseRewards(traces []json.RawMessage) (block.Rewards, error) {
	var rewards block.Rewards
	for i, raw := range traces {
		var trace traceJSON
		if err := json.Unmarshal(raw, &trace); err != nil {
			return nil, errors.Wrapf(err, "trace %d", i)
		}
		if trace.Type != "reward" {
			continue
		}

		var action rewardActionJSON
		if err := json.Unmarshal(trace.Action, &action); err != nil {
			return nil, errors.Wrapf(err, "reward trace %d", i)
		}
		if action.Author == nil || action.Value == nil {
			return nil, errors.Errorf("reward trace %d: missing author or value", i)
		}
		value, overflow := uint256.FromBig(action.Value.ToInt())
		if overflow {
			return nil, errors.Errorf("reward trace %d: value exceeds 256 bits", i)
		}
		rewards = append(rewards, &block.Reward{Recipient: *action.Author, Value: value})
	}
	return rewards, nil
}
