// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package sink writes replay artifacts as JSON files.
package sink

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/log"
	"github.com/pkg/errors"

	"github.com/vechain/rewardproof/archive"
)

var logger = log.New("pkg", "sink")

// Dir writes every artifact as an indented JSON file into a directory.
type Dir struct {
	dir string
}

var _ archive.Sink = (*Dir)(nil)

// NewDir creates dir if needed.
func NewDir(dir string) (*Dir, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, errors.Wrap(err, "create output dir")
	}
	return &Dir{dir: dir}, nil
}

// Path returns the path of the named artifact.
func (d *Dir) Path(name string) string {
	return filepath.Join(d.dir, name)
}

func BlockProofName(kind archive.Kind, num uint64) string {
	return fmt.Sprintf("proofs.%s.block.%d.json", kind, num)
}

func BlockNodesName(num uint64) string {
	return fmt.Sprintf("tree.block.%d.json", num)
}

func ArchiveProofsName(target uint64) string {
	return fmt.Sprintf("archive.proofs.%d.json", target)
}

func ArchiveNodesName(target uint64) string {
	return fmt.Sprintf("archive.tree.%d.json", target)
}

// PutBlockProof implements archive.Sink.
func (d *Dir) PutBlockProof(kind archive.Kind, proof *archive.BlockProof) error {
	return d.write(BlockProofName(kind, proof.Block), proof)
}

// PutBlockNodes implements archive.Sink.
func (d *Dir) PutBlockNodes(num uint64, nodes *archive.NodeSet) error {
	return d.write(BlockNodesName(num), nodes)
}

// PutArchive implements archive.Sink.
func (d *Dir) PutArchive(target uint64, partials []*archive.BlockProof, nodes *archive.NodeSet) error {
	if partials == nil {
		partials = []*archive.BlockProof{}
	}
	if err := d.write(ArchiveProofsName(target), partials); err != nil {
		return err
	}
	return d.write(ArchiveNodesName(target), nodes)
}

// write replaces the file atomically, so a crashed run never leaves a
// truncated artifact behind.
func (d *Dir) write(name string, v any) (err error) {
	path := d.Path(name)
	f, err := os.CreateTemp(d.dir, name+".*.tmp")
	if err != nil {
		return errors.Wrapf(err, "create %v", name)
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err = enc.Encode(v); err != nil {
		return errors.Wrapf(err, "encode %v", name)
	}
	if err = w.Flush(); err != nil {
		return errors.Wrapf(err, "write %v", name)
	}
	if err = f.Close(); err != nil {
		return errors.Wrapf(err, "close %v", name)
	}
	if err = os.Rename(f.Name(), path); err != nil {
		return errors.Wrapf(err, "rename %v", name)
	}
	logger.Trace("artifact written", "path", path)
	return nil
}
