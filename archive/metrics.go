// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package archive

import "github.com/vechain/rewardproof/metrics"

var (
	metricBlocksProcessed      = metrics.LazyLoadCounter("blocks_processed_count")
	metricBlockProcessDuration = metrics.LazyLoadHistogram("block_process_duration_ms", metrics.Bucket10s)
	metricArchiveNodes         = metrics.LazyLoadGauge("archive_nodes")
	metricProofsEmitted        = metrics.LazyLoadCounterVec("proofs_emitted_count", []string{"kind"})
)
