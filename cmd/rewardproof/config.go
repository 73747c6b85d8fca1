// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"
	"gopkg.in/yaml.v3"
)

// applyConfigFile sets the flags found in the --config file, unless already
// given on the command line.
func applyConfigFile(ctx *cli.Context, flags []cli.Flag) error {
	path := ctx.String(configFlag.Name)
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read config file")
	}

	var values map[string]any
	if err := yaml.Unmarshal(data, &values); err != nil {
		return errors.Wrapf(err, "parse config file %v", path)
	}

	known := make(map[string]bool, len(flags))
	for _, f := range flags {
		known[f.GetName()] = true
	}

	// decide before setting anything, Set marks flags as set
	var toSet []string
	for name := range values {
		if !known[name] || name == configFlag.Name {
			return fmt.Errorf("config file %v: unknown option %q", path, name)
		}
		if !ctx.IsSet(name) {
			toSet = append(toSet, name)
		}
	}
	for _, name := range toSet {
		if err := ctx.Set(name, fmt.Sprint(values[name])); err != nil {
			return errors.Wrapf(err, "config file %v: option %q", path, name)
		}
	}
	return nil
}

type options struct {
	target        uint64
	outputDir     string
	genesis       string
	rpcURL        string
	fullProofs    bool
	cacheDir      string
	cacheSize     int
	prefetch      int
	fetchParallel int
	verifyProofs  bool
	progress      bool
}

func parseOptions(ctx *cli.Context) (*options, error) {
	if !ctx.IsSet(blocksFlag.Name) {
		return nil, fmt.Errorf("missing required flag --%s", blocksFlag.Name)
	}
	opts := &options{
		target:        ctx.Uint64(blocksFlag.Name),
		outputDir:     ctx.String(outputDirFlag.Name),
		genesis:       ctx.String(genesisFlag.Name),
		rpcURL:        ctx.String(rpcURLFlag.Name),
		fullProofs:    !ctx.Bool(disableFullProofsFlag.Name),
		cacheDir:      ctx.String(cacheDirFlag.Name),
		cacheSize:     ctx.Int(cacheSizeFlag.Name),
		prefetch:      ctx.Int(prefetchFlag.Name),
		fetchParallel: ctx.Int(fetchParallelFlag.Name),
		verifyProofs:  ctx.Bool(verifyProofsFlag.Name),
		progress:      ctx.Bool(progressFlag.Name),
	}
	if opts.cacheDir == "" {
		opts.cacheDir = filepath.Join(opts.outputDir, "blocks")
	}
	if opts.cacheSize < 1 {
		return nil, fmt.Errorf("--%s must be positive", cacheSizeFlag.Name)
	}
	if opts.prefetch < 0 || opts.fetchParallel < 0 {
		return nil, fmt.Errorf("--%s and --%s must not be negative", prefetchFlag.Name, fetchParallelFlag.Name)
	}
	return opts, nil
}
