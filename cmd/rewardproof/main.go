// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/pkg/errors"
	"gopkg.in/cheggaaa/pb.v1"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/vechain/rewardproof/archive"
	"github.com/vechain/rewardproof/fetcher"
	"github.com/vechain/rewardproof/genesis"
	"github.com/vechain/rewardproof/lvldb"
	"github.com/vechain/rewardproof/metrics"
	"github.com/vechain/rewardproof/sink"
)

var (
	version   string
	gitCommit string
	gitTag    string

	flags = []cli.Flag{
		configFlag,
		blocksFlag,
		outputDirFlag,
		genesisFlag,
		rpcURLFlag,
		disableFullProofsFlag,
		cacheDirFlag,
		cacheSizeFlag,
		prefetchFlag,
		fetchParallelFlag,
		verifyProofsFlag,
		verbosityFlag,
		jsonLogsFlag,
		enableMetricsFlag,
		metricsAddrFlag,
		progressFlag,
	}
)

func fullVersion() string {
	versionMeta := "release"
	if gitTag == "" {
		versionMeta = "dev"
	}
	return fmt.Sprintf("%s-%s-%s", version, gitCommit, versionMeta)
}

func main() {
	app := cli.App{
		Version: fullVersion(),
		Name:    "rewardproof",
		Usage:   "Replays block rewards over the account trie and exports per block account proofs",
		Flags:   flags,
		Action:  defaultAction,
	}

	if err := app.Run(os.Args); err != nil {
		fatal(err)
	}
}

func defaultAction(ctx *cli.Context) error {
	if err := applyConfigFile(ctx, flags); err != nil {
		return err
	}
	opts, err := parseOptions(ctx)
	if err != nil {
		return err
	}

	initLogger(ctx)
	defer func() { log.Info("exited") }()

	if ctx.Bool(enableMetricsFlag.Name) {
		metrics.InitializePrometheusMetrics()
		url, closeFunc, err := startMetricsServer(ctx.String(metricsAddrFlag.Name))
		if err != nil {
			return err
		}
		defer func() { log.Info("stopping metrics server..."); closeFunc() }()
		log.Info("metrics server started", "url", url)
	}

	exitSignal := handleExitSignal()

	gene, err := genesis.Load(exitSignal, opts.genesis)
	if err != nil {
		return err
	}
	st, err := gene.Build()
	if err != nil {
		return err
	}

	rpcSrc, err := fetcher.NewRPC(exitSignal, opts.rpcURL)
	if err != nil {
		return err
	}
	defer rpcSrc.Close()
	checkHead(exitSignal, rpcSrc, opts.target)

	cacheDB, err := lvldb.New(opts.cacheDir, lvldb.Options{})
	if err != nil {
		return errors.Wrap(err, "open block cache")
	}
	defer func() { log.Info("closing block cache..."); cacheDB.Close() }()

	src, err := fetcher.NewCached(rpcSrc, cacheDB, opts.cacheSize)
	if err != nil {
		return err
	}
	if opts.fetchParallel > 0 {
		log.Info("fetching blocks", "to", opts.target, "parallel", opts.fetchParallel)
		if err := fetcher.Prefetch(exitSignal, src, 0, opts.target, opts.fetchParallel); err != nil {
			return err
		}
	}

	out, err := sink.NewDir(opts.outputDir)
	if err != nil {
		return err
	}

	archiveOpts := archive.Options{
		Prefetch:     opts.prefetch,
		FullProofs:   opts.fullProofs,
		VerifyProofs: opts.verifyProofs,
	}
	if opts.progress && isTerminal() {
		bar := pb.New64(int64(opts.target) + 1).
			SetMaxWidth(90).
			Start()
		defer func() { bar.NotPrint = true }()
		archiveOpts.OnProcessed = func(num uint64) {
			bar.Increment()
			if num == opts.target {
				bar.Finish()
			}
		}
	}

	return archive.New(st, src, out, archiveOpts).Run(exitSignal, opts.target)
}

// checkHead only warns, the blocks may all be cached while the endpoint is down.
func checkHead(ctx context.Context, src *fetcher.RPC, target uint64) {
	head, err := src.Head(ctx)
	if err != nil {
		log.Warn("unable to query chain head", "err", err)
		return
	}
	if target > head {
		log.Warn("target is beyond chain head", "target", target, "head", head)
	}
}
