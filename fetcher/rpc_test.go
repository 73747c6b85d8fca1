// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package fetcher

import (
	"context"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rpcRequest struct {
	ID     json.RawMessage   `json:"id"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

type rpcResponse struct {
	Version string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  any             `json:"result"`
	Error   any             `json:"error,omitempty"`
}

// newNode serves eth_getBlockByNumber, eth_blockNumber and trace_block from
// the given headers and traces.
func newNode(t *testing.T, headers map[uint64]*types.Header, traces map[uint64]string) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		resp := rpcResponse{Version: "2.0", ID: req.ID}
		switch req.Method {
		case "eth_blockNumber":
			resp.Result = hexutil.Uint64(len(headers) - 1)
		case "eth_getBlockByNumber":
			var num hexutil.Uint64
			require.NoError(t, json.Unmarshal(req.Params[0], &num))
			if h, ok := headers[uint64(num)]; ok {
				resp.Result = h
			}
		case "trace_block":
			var num hexutil.Uint64
			require.NoError(t, json.Unmarshal(req.Params[0], &num))
			if tr, ok := traces[uint64(num)]; ok {
				resp.Result = json.RawMessage(tr)
			} else {
				resp.Result = json.RawMessage("[]")
			}
		default:
			resp.Error = map[string]any{"code": -32601, "message": "method not found"}
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newHeader(num uint64, root common.Hash) *types.Header {
	return &types.Header{
		Number:     new(big.Int).SetUint64(num),
		Root:       root,
		Difficulty: big.NewInt(17179869184),
		GasLimit:   5000,
		Time:       num * 15,
		Extra:      []byte{},
	}
}

const block1Traces = `[
	{"action": {"callType": "call", "from": "0x00000000000000000000000000000000000000f1", "to": "0x00000000000000000000000000000000000000f2", "value": "0x1"}, "type": "call"},
	{"action": {"author": "0x05a56e2d52c817161883f50c441c3228cfe54d9f", "rewardType": "block", "value": "0x4563918244f40000"}, "type": "reward"},
	{"action": {"author": "0x00000000000000000000000000000000000000aa", "rewardType": "uncle", "value": "0x3"}, "type": "reward"}
]`

func TestRPCGetBlock(t *testing.T) {
	headers := map[uint64]*types.Header{
		0: newHeader(0, types.EmptyRootHash),
		1: newHeader(1, common.HexToHash("0x01")),
	}
	node := newNode(t, headers, map[uint64]string{1: block1Traces})

	src, err := NewRPC(context.Background(), node.URL)
	require.NoError(t, err)
	defer src.Close()

	head, err := src.Head(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(1), head)

	b, err := src.GetBlock(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), b.Number())
	assert.Equal(t, headers[1].Hash(), b.Hash())
	assert.Equal(t, common.HexToHash("0x01"), b.StateRoot())

	rewards := b.Rewards()
	require.Len(t, rewards, 2)
	assert.Equal(t, common.HexToAddress("0x05a56e2d52c817161883f50c441c3228cfe54d9f"), rewards[0].Recipient)
	assert.Equal(t, uint256.NewInt(5000000000000000000), rewards[0].Value)
	assert.Equal(t, common.HexToAddress("0xaa"), rewards[1].Recipient)
	assert.Equal(t, uint256.NewInt(3), rewards[1].Value)

	genesis, err := src.GetBlock(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, genesis.Rewards())

	_, err = src.GetBlock(context.Background(), 2)
	assert.ErrorIs(t, err, ErrBlockNotFound)
}

func TestParseRewards(t *testing.T) {
	tests := []struct {
		name    string
		traces  string
		want    int
		wantErr bool
	}{
		{"empty", `[]`, 0, false},
		{"no reward", `[{"action": {"from": "0x00000000000000000000000000000000000000f1"}, "type": "create"}]`, 0, false},
		{"rewards", block1Traces, 2, false},
		{"missing value", `[{"action": {"author": "0x00000000000000000000000000000000000000aa"}, "type": "reward"}]`, 0, true},
		{"bad value", `[{"action": {"author": "0x00000000000000000000000000000000000000aa", "value": "12"}, "type": "reward"}]`, 0, true},
		{"too large", `[{"action": {"author": "0x00000000000000000000000000000000000000aa", "value": "0x10000000000000000000000000000000000000000000000000000000000000000"}, "type": "reward"}]`, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var traces []json.RawMessage
			require.NoError(t, json.Unmarshal([]byte(tt.traces), &traces))

			rewards, err := parseRewards(traces)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, rewards, tt.want)
		})
	}
}
