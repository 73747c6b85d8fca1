// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package co

import (
	"sync"
)

// Goes runs go routines and waits for them to exit.
// The first error returned by a routine started with GoErr is kept for Wait.
type Goes struct {
	wg  sync.WaitGroup
	mu  sync.Mutex
	err error
}

// Go runs f in a go routine.
func (g *Goes) Go(f func()) {
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		f()
	}()
}

// GoErr runs f in a go routine and records its error, if it's the first one.
func (g *Goes) GoErr(f func() error) {
	g.Go(func() {
		if err := f(); err != nil {
			g.mu.Lock()
			if g.err == nil {
				g.err = err
			}
			g.mu.Unlock()
		}
	})
}

// Wait blocks until every routine has exited, and returns the first recorded error.
func (g *Goes) Wait() error {
	g.wg.Wait()

	g.mu.Lock()
	defer g.mu.Unlock()
	return g.err
}
