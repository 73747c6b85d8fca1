// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package archive replays blocks over the state and exports per-block account
// proofs with a deduplicated archive of every proof node.
package archive

//go:generate mockgen -source archiver.go -destination mocks.go -package archive

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/log"
	"github.com/pkg/errors"

	"github.com/vechain/rewardproof/block"
	"github.com/vechain/rewardproof/co"
	"github.com/vechain/rewardproof/state"
)

var logger = log.New("pkg", "archive")

var (
	// ErrUnexpectedBlock is returned when the source delivers a block other than the one requested.
	ErrUnexpectedBlock = errors.New("unexpected block")
	// ErrNodeConflict is returned when two different nodes share one digest.
	ErrNodeConflict = errors.New("node conflict")
)

// Source provides blocks by number. A number must always yield the same block.
type Source interface {
	GetBlock(ctx context.Context, num uint64) (*block.Block, error)
}

// Sink receives the artifacts of a run.
type Sink interface {
	PutBlockProof(kind Kind, proof *BlockProof) error
	PutBlockNodes(num uint64, nodes *NodeSet) error
	PutArchive(target uint64, partials []*BlockProof, nodes *NodeSet) error
}

// Options options for running the archiver.
type Options struct {
	// Prefetch is the number of blocks fetched ahead of processing.
	Prefetch int
	// FullProofs enables the full block proof and node tree of every block.
	FullProofs bool
	// VerifyProofs verifies every proof before it's emitted.
	VerifyProofs bool
	// OnProcessed, if set, is called after each block.
	OnProcessed func(num uint64)
}

// Archiver drives the state through blocks and collects proofs.
type Archiver struct {
	st       *state.State
	src      Source
	sink     Sink
	opts     Options
	nodes    *NodeSet
	partials []*BlockProof
}

// New creates an archiver starting at the next block of st.
func New(st *state.State, src Source, sink Sink, opts Options) *Archiver {
	return &Archiver{
		st:    st,
		src:   src,
		sink:  sink,
		opts:  opts,
		nodes: NewNodeSet(),
	}
}

// Nodes returns the run wide node archive.
func (a *Archiver) Nodes() *NodeSet {
	return a.nodes
}

// Partials returns the partial block proofs collected so far.
func (a *Archiver) Partials() []*BlockProof {
	return a.partials
}

// Run processes every block up to target inclusive, then writes the archive.
// Any failure aborts the run; the state is then unusable.
func (a *Archiver) Run(ctx context.Context, target uint64) error {
	from := a.st.Next()
	if from > target {
		return errors.Errorf("target %d already processed, next block is %d", target, from)
	}
	logger.Info("start replaying", "from", from, "to", target, "fullProofs", a.opts.FullProofs)

	var (
		goes   co.Goes
		ch     = make(chan *block.Block, max(a.opts.Prefetch, 0))
		cancel func()
	)

	ctx, cancel = context.WithCancel(ctx)
	defer goes.Wait()
	goes.GoErr(func() error {
		defer close(ch)
		return pumpBlocks(ctx, a.src, from, target, ch)
	})

	defer cancel()

	startTime := time.Now()
	for b := range ch {
		if err := a.processBlock(b); err != nil {
			return err
		}
		if a.opts.OnProcessed != nil {
			a.opts.OnProcessed(b.Number())
		}
		if n := b.Number(); n%1000 == 0 && n != target {
			logger.Info("replaying", "number", n, "accounts", a.st.AccountCount(), "nodes", a.nodes.Len(), "elapsed", time.Since(startTime))
		}
	}
	if err := goes.Wait(); err != nil {
		return err
	}

	if err := a.sink.PutArchive(target, a.partials, a.nodes); err != nil {
		return errors.Wrap(err, "write archive")
	}
	logger.Info("replay completed", "target", target, "accounts", a.st.AccountCount(), "nodes", a.nodes.Len(),
		"root", a.st.Root(), "elapsed", time.Since(startTime))
	return nil
}

func pumpBlocks(ctx context.Context, src Source, from, to uint64, ch chan<- *block.Block) error {
	for num := from; ; num++ {
		b, err := src.GetBlock(ctx, num)
		if err != nil {
			return errors.Wrapf(err, "fetch block %d", num)
		}
		select {
		case ch <- b:
		case <-ctx.Done():
			return ctx.Err()
		}
		if num == to {
			return nil
		}
	}
}

func (a *Archiver) processBlock(b *block.Block) error {
	num := a.st.Next()
	if b.Number() != num {
		return errors.Wrapf(ErrUnexpectedBlock, "requested block %d, received %d", num, b.Number())
	}
	start := time.Now()

	touched, err := a.st.ProcessBlock(b)
	if err != nil {
		return errors.Wrapf(err, "process block %d", num)
	}

	full, err := a.st.GetProofs(a.st.Accounts())
	if err != nil {
		return errors.Wrapf(err, "full proofs of block %d", num)
	}
	partial := full
	// genesis accounts are archived with block 0
	if num > 0 {
		if partial, err = a.st.GetProofs(touched); err != nil {
			return errors.Wrapf(err, "partial proofs of block %d", num)
		}
	}

	partialProof := NewBlockProof(b, partial)
	fullProof := NewBlockProof(b, full)
	if a.opts.VerifyProofs {
		if err := partialProof.Verify(); err != nil {
			return err
		}
		if err := fullProof.Verify(); err != nil {
			return err
		}
	}

	if _, err := a.nodes.Merge(full); err != nil {
		return errors.Wrapf(err, "archive block %d", num)
	}
	if _, err := a.nodes.Merge(partial); err != nil {
		return errors.Wrapf(err, "archive block %d", num)
	}
	a.partials = append(a.partials, partialProof)

	if err := a.sink.PutBlockProof(KindPartial, partialProof); err != nil {
		return errors.Wrapf(err, "write partial proofs of block %d", num)
	}
	metricProofsEmitted().AddWithLabel(int64(len(partial)), map[string]string{"kind": string(KindPartial)})

	if a.opts.FullProofs {
		blockNodes := NewNodeSet()
		if _, err := blockNodes.Merge(full); err != nil {
			return errors.Wrapf(err, "node tree of block %d", num)
		}
		if err := a.sink.PutBlockProof(KindFull, fullProof); err != nil {
			return errors.Wrapf(err, "write full proofs of block %d", num)
		}
		if err := a.sink.PutBlockNodes(num, blockNodes); err != nil {
			return errors.Wrapf(err, "write node tree of block %d", num)
		}
		metricProofsEmitted().AddWithLabel(int64(len(full)), map[string]string{"kind": string(KindFull)})
	}

	metricBlocksProcessed().Add(1)
	metricBlockProcessDuration().Observe(time.Since(start).Milliseconds())
	metricArchiveNodes().Set(int64(a.nodes.Len()))
	if logger.Enabled(context.Background(), log.LevelDebug) {
		rewarded := "overflow"
		if total, overflow := b.Rewards().Total(); !overflow {
			rewarded = total.Dec()
		}
		logger.Debug("processed block", "number", num, "touched", len(touched), "rewarded", rewarded,
			"accounts", a.st.AccountCount(), "nodes", a.nodes.Len(), "root", b.StateRoot())
	}
	return nil
}
