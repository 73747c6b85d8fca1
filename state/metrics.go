// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import "github.com/vechain/rewardproof/metrics"

var (
	metricRewardsApplied = metrics.LazyLoadCounter("rewards_applied_count")
	metricKnownAccounts  = metrics.LazyLoadGauge("known_accounts")
	metricStateFaults    = metrics.LazyLoadCounterVec("state_fault_count", []string{"kind"})
)
