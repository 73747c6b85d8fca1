// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package fetcher

import (
	"context"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/rewardproof/block"
	"github.com/vechain/rewardproof/lvldb"
)

// countingSource builds blocks on demand and counts requests per number.
type countingSource struct {
	mu    sync.Mutex
	calls map[uint64]int
	head  uint64
	shift uint64
}

func newCountingSource(head uint64) *countingSource {
	return &countingSource{calls: make(map[uint64]int), head: head}
}

func testBlock(num uint64) *block.Block {
	return block.New(
		block.NewHeader(num, common.BytesToHash([]byte{0xbb, byte(num)}), common.BytesToHash([]byte{0x5e, byte(num)})),
		block.Rewards{{Recipient: common.BytesToAddress([]byte{byte(num)}), Value: uint256.NewInt(num + 1)}},
	)
}

func (s *countingSource) GetBlock(_ context.Context, num uint64) (*block.Block, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[num]++
	if num > s.head {
		return nil, errors.Wrapf(ErrBlockNotFound, "block %d", num)
	}
	return testBlock(num + s.shift), nil
}

func (s *countingSource) count(num uint64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[num]
}

func TestCachedGetBlock(t *testing.T) {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	defer db.Close()

	src := newCountingSource(10)
	cached, err := NewCached(src, db, 4)
	require.NoError(t, err)

	for range 3 {
		b, err := cached.GetBlock(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, testBlock(3).Hash(), b.Hash())
		assert.Equal(t, testBlock(3).Rewards(), b.Rewards())
	}
	assert.Equal(t, 1, src.count(3), "source hit once")

	has, err := cached.Has(3)
	require.NoError(t, err)
	assert.True(t, has)

	// a fresh cache over the same store serves from disk
	again, err := NewCached(src, db, 4)
	require.NoError(t, err)
	b, err := again.GetBlock(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, testBlock(3).Header().String(), b.Header().String())
	assert.Equal(t, testBlock(3).Rewards(), b.Rewards())
	assert.Equal(t, 1, src.count(3))
}

func TestCachedErrors(t *testing.T) {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	defer db.Close()

	src := newCountingSource(1)
	cached, err := NewCached(src, db, 4)
	require.NoError(t, err)

	_, err = cached.GetBlock(context.Background(), 5)
	assert.ErrorIs(t, err, ErrBlockNotFound)
	has, err := cached.Has(5)
	require.NoError(t, err)
	assert.False(t, has, "failures are not cached")

	src.shift = 1
	_, err = cached.GetBlock(context.Background(), 0)
	assert.ErrorContains(t, err, "source returned block 1 for 0")
	has, err = cached.Has(0)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestCachedCorruptedStore(t *testing.T) {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Put(append([]byte(blockBucket), blockKey(2)...), []byte("garbage")))

	cached, err := NewCached(newCountingSource(10), db, 4)
	require.NoError(t, err)
	_, err = cached.GetBlock(context.Background(), 2)
	assert.ErrorContains(t, err, "cached block 2")
}

func TestPrefetch(t *testing.T) {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	defer db.Close()

	src := newCountingSource(100)
	cached, err := NewCached(src, db, 16)
	require.NoError(t, err)

	require.NoError(t, Prefetch(context.Background(), cached, 0, 100, 8))
	for num := uint64(0); num <= 100; num++ {
		has, err := cached.Has(num)
		require.NoError(t, err)
		assert.True(t, has, "block %d", num)
		assert.Equal(t, 1, src.count(num))
	}

	assert.NoError(t, Prefetch(context.Background(), cached, 5, 4, 8), "empty range")

	// a fresh cache over the same store skips persisted blocks entirely
	reopened, err := NewCached(src, db, 16)
	require.NoError(t, err)
	require.NoError(t, Prefetch(context.Background(), reopened, 0, 100, 8))
	assert.Equal(t, 0, reopened.mem.Len(), "persisted blocks should not be loaded")
	assert.Equal(t, 1, src.count(100))

	err = Prefetch(context.Background(), cached, 90, 120, 4)
	assert.ErrorIs(t, err, ErrBlockNotFound)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, Prefetch(ctx, newCountingSource(10), 0, 10, 2), context.Canceled)
}
