// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	cli "gopkg.in/urfave/cli.v1"
)

var (
	configFlag = cli.StringFlag{
		Name:  "config",
		Usage: "YAML file of flag values, used for flags not given on the command line",
	}
	blocksFlag = cli.Uint64Flag{
		Name:  "blocks",
		Usage: "number of the last block to replay (required)",
	}
	outputDirFlag = cli.StringFlag{
		Name:  "output-dir",
		Value: "output",
		Usage: "directory for proof files",
	}
	genesisFlag = cli.StringFlag{
		Name:  "genesis",
		Value: "genesis.json",
		Usage: "path or URL of the genesis file",
	}
	rpcURLFlag = cli.StringFlag{
		Name:  "rpc-url",
		Value: "https://rpc.ankr.com/eth",
		Usage: "JSON-RPC endpoint serving blocks and trace_block",
	}
	disableFullProofsFlag = cli.BoolFlag{
		Name:  "disable-full-state-proof-per-block",
		Usage: "don't write the proofs of every account and the node tree for each block",
	}
	cacheDirFlag = cli.StringFlag{
		Name:  "cache-dir",
		Usage: "directory of the fetched blocks cache (default: <output-dir>/blocks)",
	}
	cacheSizeFlag = cli.IntFlag{
		Name:  "cache-size",
		Value: 1024,
		Usage: "number of fetched blocks kept in memory",
	}
	prefetchFlag = cli.IntFlag{
		Name:  "prefetch",
		Value: 64,
		Usage: "number of blocks fetched ahead of processing",
	}
	fetchParallelFlag = cli.IntFlag{
		Name:  "fetch-parallel",
		Usage: "fetch all blocks with this many concurrent requests before replaying (0 to disable)",
	}
	verifyProofsFlag = cli.BoolFlag{
		Name:  "verify-proofs",
		Usage: "verify every proof against the block state root before writing it",
	}
	verbosityFlag = cli.IntFlag{
		Name:  "verbosity",
		Value: 3,
		Usage: "log verbosity (0-5)",
	}
	jsonLogsFlag = cli.BoolFlag{
		Name:  "log-json",
		Usage: "output logs in JSON format",
	}
	enableMetricsFlag = cli.BoolFlag{
		Name:  "enable-metrics",
		Usage: "enables metrics collection",
	}
	metricsAddrFlag = cli.StringFlag{
		Name:  "metrics-addr",
		Value: "localhost:2112",
		Usage: "metrics service listening address",
	}
	progressFlag = cli.BoolFlag{
		Name:  "progress",
		Usage: "show a progress bar when attached to a terminal",
	}
)
