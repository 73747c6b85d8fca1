// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package fetcher

import "github.com/vechain/rewardproof/metrics"

var (
	metricCacheCount    = metrics.LazyLoadCounterVec("fetcher_cache_count", []string{"result"})
	metricFetchDuration = metrics.LazyLoadHistogram("fetcher_rpc_duration_ms", metrics.Bucket10s)
)
