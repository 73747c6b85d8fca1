// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package state manages the accounts trie of a reward-only replay.
//
// It follows the flow as below:
//
//	[ genesis alloc ] -> New -> Ready(0)
//	                              |
//	  [ block n rewards ] -> ProcessBlock -> [ root check ] -> Ready(n+1)
//	                              |
//	                           Faulted (root mismatch, out of order block)
//
// The trie keeps no undo log. Once a block fails its root check the state is
// faulted for good, and a new replay has to start from genesis.
package state
