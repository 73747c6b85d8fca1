// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package fetcher

import (
	"context"
	"sync/atomic"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// persister is a Source that tells whether a block is already stored.
type persister interface {
	Has(num uint64) (bool, error)
}

// Prefetch fetches blocks [from, to] with up to parallel concurrent requests,
// for a caching src to persist them. Blocks src already stores are skipped.
// The first failure cancels the rest.
func Prefetch(ctx context.Context, src Source, from, to uint64, parallel int) error {
	if from > to {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(parallel, 1))

	p, _ := src.(persister)
	var done, skipped atomic.Uint64
	for num := from; num <= to; num++ {
		if gctx.Err() != nil {
			break
		}
		if p != nil {
			has, err := p.Has(num)
			if err != nil {
				g.Go(func() error { return errors.Wrapf(err, "prefetch block %d", num) })
				break
			}
			if has {
				skipped.Add(1)
				if num == to {
					break
				}
				continue
			}
		}
		g.Go(func() error {
			if _, err := src.GetBlock(gctx, num); err != nil {
				return errors.Wrapf(err, "prefetch block %d", num)
			}
			if n := done.Add(1); n%1000 == 0 {
				logger.Info("prefetching blocks", "done", n, "total", to-from+1)
			}
			return nil
		})
		if num == to {
			break
		}
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if n := skipped.Load(); n > 0 {
		logger.Info("blocks already cached", "skipped", n, "total", to-from+1)
	}
	return ctx.Err()
}
