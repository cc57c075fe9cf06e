//
// cheapgo - bitboard chess position analyzer
//
// MIT License
//
// Copyright (c) 2026 cheapgo contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package transpositiontable is the search's hash -> (score, remaining
// plies) cache. Unlike the source's unordered_map (effectively collision
// free at 64 bits), slots here are addressed by truncating the hash to a
// power-of-two index, so two positions can collide on one slot; Insert
// resolves that with a replace-if-not-shallower policy instead of growing
// the table unboundedly, the open design choice the source leaves open.
package transpositiontable

import (
	"math"
	"unsafe"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/negamaxgo/cheapgo/internal/logging"
	"github.com/negamaxgo/cheapgo/internal/types"
	"github.com/negamaxgo/cheapgo/internal/util"
)

var out = message.NewPrinter(language.English)

// MB is one megabyte in bytes.
const MB = 1024 * 1024

// MaxSizeMB bounds how large a single table may grow.
const MaxSizeMB = 4096

// Entry is one slot's content: the score cheapshot stored for Hash,
// valid for positions reachable in at least RemainingPlies more plies.
// A zero-value Entry (Hash BbZero) is "empty"; that makes the
// all-zero-bitboard hash indistinguishable from "never written", the
// same corner case the teacher's TtEntry accepts for Key 0.
type Entry struct {
	Hash           types.Hash
	Score          types.Score
	RemainingPlies int
}

func (e *Entry) empty() bool { return e.Hash == 0 }

// Stats mirrors the teacher's TtStats: a handful of running counters
// surfaced through String() for diagnostics, never consulted by search
// logic itself.
type Stats struct {
	Probes      uint64
	Hits        uint64
	Misses      uint64
	Inserts     uint64
	Collisions  uint64
	Overwrites  uint64
	ShallowHits uint64
}

// Table is the transposition cache. Not safe for concurrent use, same
// as the teacher's TtTable: the engine owns one table per search tree.
type Table struct {
	log         *logging.Logger
	data        []Entry
	sizeInBytes uint64
	mask        uint64
	capacity    uint64
	liveEntries uint64
	Stats       Stats
}

// entrySize is the per-slot cost used to size the table from a MB budget.
const entrySize = uint64(unsafe.Sizeof(Entry{}))

// NewTable builds a Table sized to fit within sizeMB of memory, rounded
// down to the nearest power of two entry count for cheap masked addressing.
func NewTable(sizeMB int) *Table {
	t := &Table{log: myLogging.GetLog("transpositiontable")}
	t.Resize(sizeMB)
	return t
}

// Resize rebuilds the table for a new memory budget, discarding all
// entries. Not safe to call concurrently with an in-progress search.
func (t *Table) Resize(sizeMB int) {
	if sizeMB > MaxSizeMB {
		t.log.Warning(out.Sprintf("requested TT size %d MB reduced to max %d MB", sizeMB, MaxSizeMB))
		sizeMB = MaxSizeMB
	}
	if sizeMB < 0 {
		sizeMB = 0
	}
	budget := uint64(sizeMB) * MB
	var numEntries uint64
	if budget >= entrySize {
		numEntries = uint64(1) << uint(math.Floor(math.Log2(float64(budget/entrySize))))
	}
	t.data = make([]Entry, numEntries)
	t.capacity = numEntries
	t.liveEntries = 0
	if numEntries > 0 {
		t.mask = numEntries - 1
	} else {
		t.mask = 0
	}
	t.sizeInBytes = numEntries * entrySize
	t.Stats = Stats{}
	t.log.Info(out.Sprintf("TT size %d MB, capacity %d entries of %d bytes (requested %d MB)",
		t.sizeInBytes/MB, t.capacity, entrySize, sizeMB))
	t.log.Debug(util.MemStat())
}

func (t *Table) slot(hash types.Hash) *Entry {
	return &t.data[uint64(hash)&t.mask]
}

// InsertInfo is the result of a cache lookup-or-seed for one node: the
// live slot and whether this call is the one that just seeded it.
type InsertInfo struct {
	entry *Entry
	isNew bool
}

// HitCheck reports whether e's slot already carries a usable score for
// a node that still needs remainingPlies more plies: the entry must
// not be freshly seeded by this very call and must cover at least as
// many plies as still needed. An entry holding the Repeat sentinel (an
// in-progress recursion reaching the same position) is a hit scored as
// a stalemate draw for s. On a hit, the returned score is the one to use.
func (info InsertInfo) HitCheck(s types.Side, remainingPlies int) (score types.Score, hit bool) {
	if info.entry == nil || info.isNew {
		return 0, false
	}
	if remainingPlies > info.entry.RemainingPlies {
		return 0, false // shallow: this node needs to look deeper than what's stored
	}
	if info.entry.Score == types.Repeat {
		return types.StalemateFor(s), true
	}
	return info.entry.Score, true
}

// Insert looks up hash, seeding a fresh Repeat-valued entry when the
// slot is empty, holds a different hash that this insert is allowed to
// evict (not shallower than the incumbent), or already holds this exact
// hash (refreshed in place so a later WriteBack has somewhere to land).
// A collision against a deeper incumbent entry returns an ephemeral,
// unstored slot: this node's result is simply not cached.
func (t *Table) Insert(hash types.Hash, remainingPlies int) InsertInfo {
	t.Stats.Probes++
	if t.capacity == 0 {
		return InsertInfo{entry: &Entry{Hash: hash, Score: types.Repeat, RemainingPlies: remainingPlies}, isNew: true}
	}
	e := t.slot(hash)
	switch {
	case e.empty():
		t.Stats.Misses++
		t.Stats.Inserts++
		t.liveEntries++
		*e = Entry{Hash: hash, Score: types.Repeat, RemainingPlies: remainingPlies}
		return InsertInfo{entry: e, isNew: true}
	case e.Hash == hash:
		t.Stats.Hits++
		return InsertInfo{entry: e, isNew: false}
	case remainingPlies >= e.RemainingPlies:
		t.Stats.Collisions++
		t.Stats.Overwrites++
		*e = Entry{Hash: hash, Score: types.Repeat, RemainingPlies: remainingPlies}
		return InsertInfo{entry: e, isNew: true}
	default:
		t.Stats.Collisions++
		t.Stats.ShallowHits++
		return InsertInfo{entry: &Entry{Hash: hash, Score: types.Repeat, RemainingPlies: remainingPlies}, isNew: true}
	}
}

// WriteBack stores score into info's slot provided this node searched
// at least as deep as the slot's current depth, mirroring cache_update's
// destructor condition (remaining_plies>=insert_val.val.remaining_plies).
// A no-op for the ephemeral entries Insert returns on a losing collision.
func (info InsertInfo) WriteBack(remainingPlies int, score types.Score) {
	if info.entry == nil {
		return
	}
	if remainingPlies >= info.entry.RemainingPlies {
		info.entry.Score = score
	}
}

// Clear empties every slot without changing the table's size.
func (t *Table) Clear() {
	t.data = make([]Entry, len(t.data))
	t.liveEntries = 0
	t.Stats = Stats{}
}

// Hashfull reports how full the table is, in permille, UCI-hashfull style.
func (t *Table) Hashfull() int {
	if t.capacity == 0 {
		return 0
	}
	return int((1000 * t.liveEntries) / t.capacity)
}

func (t *Table) String() string {
	return out.Sprintf("TT: %d MB, %d entries of %d bytes, %d%% full, probes %d hits %d misses %d collisions %d overwrites %d",
		t.sizeInBytes/MB, len(t.data), entrySize, t.Hashfull()/10,
		t.Stats.Probes, t.Stats.Hits, t.Stats.Misses, t.Stats.Collisions, t.Stats.Overwrites)
}
