// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package fetcher

import (
	"context"
	"encoding/binary"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/golang/snappy"
	"github.com/pkg/errors"

	"github.com/vechain/rewardproof/block"
	"github.com/vechain/rewardproof/cache"
	"github.com/vechain/rewardproof/kv"
)

const blockBucket = kv.Bucket("b")

// Cached serves blocks from memory, then from the store, and only then from
// the wrapped source. Fetched blocks are persisted, so later runs are offline.
// It is safe for concurrent use.
type Cached struct {
	src         Source
	store       kv.GetPutter
	mem         *cache.LRU[uint64, *block.Block]
	lastLogTime atomic.Int64
}

var _ Source = (*Cached)(nil)

// NewCached wraps src. memSize is the number of blocks kept in memory.
func NewCached(src Source, store kv.GetPutter, memSize int) (*Cached, error) {
	mem, err := cache.NewLRU[uint64, *block.Block](max(memSize, 1))
	if err != nil {
		return nil, err
	}
	c := &Cached{
		src:   src,
		store: blockBucket.NewGetPutter(store),
		mem:   mem,
	}
	c.lastLogTime.Store(time.Now().UnixNano())
	return c, nil
}

func blockKey(num uint64) []byte {
	return binary.BigEndian.AppendUint64(nil, num)
}

// GetBlock implements Source.
func (c *Cached) GetBlock(ctx context.Context, num uint64) (*block.Block, error) {
	defer c.log()

	loaded := false
	b, err := c.mem.GetOrLoad(num, func(num uint64) (*block.Block, error) {
		loaded = true
		return c.load(ctx, num)
	})
	if err != nil {
		return nil, err
	}
	if !loaded {
		metricCacheCount().AddWithLabel(1, map[string]string{"result": "mem"})
	}
	return b, nil
}

// Has returns whether block num is persisted.
func (c *Cached) Has(num uint64) (bool, error) {
	return c.store.Has(blockKey(num))
}

func (c *Cached) load(ctx context.Context, num uint64) (*block.Block, error) {
	b, err := c.loadStored(num)
	if err != nil {
		return nil, err
	}
	if b != nil {
		metricCacheCount().AddWithLabel(1, map[string]string{"result": "disk"})
		return b, nil
	}

	metricCacheCount().AddWithLabel(1, map[string]string{"result": "miss"})
	if b, err = c.src.GetBlock(ctx, num); err != nil {
		return nil, err
	}
	if b.Number() != num {
		return nil, errors.Errorf("source returned block %d for %d", b.Number(), num)
	}
	if err := c.saveStored(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (c *Cached) loadStored(num uint64) (*block.Block, error) {
	data, err := c.store.Get(blockKey(num))
	if err != nil {
		if c.store.IsNotFound(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "read cached block %d", num)
	}
	raw, err := snappy.Decode(nil, data)
	if err != nil {
		return nil, errors.Wrapf(err, "decompress cached block %d", num)
	}
	var b block.Block
	if err := rlp.DecodeBytes(raw, &b); err != nil {
		return nil, errors.Wrapf(err, "decode cached block %d", num)
	}
	return &b, nil
}

func (c *Cached) saveStored(b *block.Block) error {
	raw, err := rlp.EncodeToBytes(b)
	if err != nil {
		return errors.Wrapf(err, "encode block %d", b.Number())
	}
	if err := c.store.Put(blockKey(b.Number()), snappy.Encode(nil, raw)); err != nil {
		return errors.Wrapf(err, "write cached block %d", b.Number())
	}
	return nil
}

func (c *Cached) log() {
	now := time.Now().UnixNano()
	last := c.lastLogTime.Swap(now)

	if now-last > int64(time.Second*20) {
		// only log when the hit rate changed, to avoid too many logs
		if changed, hit, miss := c.mem.Stats().Stats(); changed {
			logger.Debug("block cache stats", "hit", hit, "miss", miss, "hitrate", c.mem.Stats().HitRate())
		}
	} else {
		c.lastLogTime.CompareAndSwap(now, last)
	}
}
