// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package genesis loads the initial allocation a replay starts from.
package genesis

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/log"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/vechain/rewardproof/state"
)

var logger = log.New("pkg", "genesis")

// Genesis is the funded accounts at block 0 and the root they must hash to.
type Genesis struct {
	Alloc     map[common.Address]*uint256.Int
	StateRoot common.Hash
}

type allocJSON struct {
	Balance *math.HexOrDecimal256 `json:"balance"`
}

type genesisJSON struct {
	Alloc     map[string]allocJSON `json:"alloc"`
	StateRoot *common.Hash         `json:"stateRoot"`
}

// Decode parses a genesis document. Fields other than alloc balances and the
// state root are ignored.
func Decode(r io.Reader) (*Genesis, error) {
	var gen genesisJSON
	if err := json.NewDecoder(r).Decode(&gen); err != nil {
		return nil, errors.Wrap(err, "decode genesis")
	}
	if gen.StateRoot == nil {
		return nil, errors.New("genesis: missing stateRoot")
	}

	alloc := make(map[common.Address]*uint256.Int, len(gen.Alloc))
	for key, acc := range gen.Alloc {
		if !common.IsHexAddress(key) {
			return nil, fmt.Errorf("genesis: invalid address %q", key)
		}
		addr := common.HexToAddress(key)
		if _, dup := alloc[addr]; dup {
			return nil, fmt.Errorf("genesis: duplicated address %v", addr)
		}

		balance := new(uint256.Int)
		if acc.Balance != nil {
			b := (*big.Int)(acc.Balance)
			if b.Sign() < 0 {
				return nil, fmt.Errorf("genesis: %v: negative balance", addr)
			}
			if overflow := balance.SetFromBig(b); overflow {
				return nil, fmt.Errorf("genesis: %v: balance exceeds 256 bits", addr)
			}
		}
		alloc[addr] = balance
	}

	return &Genesis{
		Alloc:     alloc,
		StateRoot: *gen.StateRoot,
	}, nil
}

// Load reads the genesis document from a file path or an http(s) URL.
func Load(ctx context.Context, location string) (*Genesis, error) {
	r, err := open(ctx, location)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	gen, err := Decode(r)
	if err != nil {
		return nil, errors.Wrapf(err, "load %v", location)
	}
	logger.Debug("genesis loaded", "location", location, "accounts", len(gen.Alloc), "root", gen.StateRoot)
	return gen, nil
}

func open(ctx context.Context, location string) (io.ReadCloser, error) {
	if !strings.HasPrefix(location, "http://") && !strings.HasPrefix(location, "https://") {
		f, err := os.Open(location)
		if err != nil {
			return nil, errors.Wrap(err, "open genesis file")
		}
		return f, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, errors.Wrap(err, "genesis request")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetch genesis")
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch genesis: %v", resp.Status)
	}
	return resp.Body, nil
}

// Build creates the genesis state, verified against StateRoot.
func (g *Genesis) Build() (*state.State, error) {
	return state.New(g.Alloc, g.StateRoot)
}
