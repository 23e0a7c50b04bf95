//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
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

// Package transpositiontable implements a transposition table (cache)
// data structure shared by search and perft.
// The TtTable class is not thread safe and needs to be synchronized
// externally if used from multiple threads. Is especially relevant
// for Resize and Clear which should not be called in parallel
// while searching.
package transpositiontable

import (
	"math"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/frankkopp/corvid/internal/logging"
	. "github.com/frankkopp/corvid/internal/types"
	"github.com/frankkopp/corvid/internal/util"
)

var out = message.NewPrinter(language.German)

const (
	// MB is one Megabyte in bytes.
	MB = 1024 * 1024
	// MaxSizeInMB maximal memory usage of tt
	MaxSizeInMB = 65_536
)

// TtTable is a direct-mapped transposition table: each Zobrist key maps to
// exactly one slot and every Put always replaces whatever occupies it -
// there is no aging or bucketing.
// Create with NewTtTable()
type TtTable struct {
	log                *logging.Logger
	data               []TtEntry
	sizeInByte         uint64
	hashKeyMask        uint64
	maxNumberOfEntries uint64
	numberOfEntries    uint64
	Stats              TtStats
}

// TtStats holds statistical data on tt usage
type TtStats struct {
	numberOfPuts       uint64
	numberOfCollisions uint64
	numberOfProbes     uint64
	numberOfHits       uint64
	numberOfMisses     uint64
}

// NewTtTable creates a new TtTable with the given number of bytes
// as a maximum of memory usage. actual size will be determined
// by the number of elements fitting into this size which need
// to be a power of 2 for efficient hashing/addressing via bit
// masks.
func NewTtTable(sizeInMByte int) *TtTable {
	tt := TtTable{log: myLogging.GetLog()}
	tt.Resize(sizeInMByte)
	return &tt
}

// Resize resizes the tt table. All entries will be cleared.
// The TtTable class is not thread safe and needs to be synchronized
// externally if used from multiple threads. Is especially relevant
// for Resize and Clear which should not be called in parallel
// while searching.
func (tt *TtTable) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		tt.log.Error(out.Sprintf("Requested size for TT of %d MB reduced to max of %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}

	// calculate the maximum power of 2 of entries fitting into the given size in MB
	tt.sizeInByte = uint64(sizeInMByte) * MB
	if tt.sizeInByte == 0 {
		tt.maxNumberOfEntries = 0
	} else {
		tt.maxNumberOfEntries = 1 << uint64(math.Floor(math.Log2(float64(tt.sizeInByte/uint64(TtEntrySize)))))
	}
	tt.hashKeyMask = 0
	if tt.maxNumberOfEntries > 0 {
		tt.hashKeyMask = tt.maxNumberOfEntries - 1 // --> 0x0001111....111
	}

	// calculate the real memory usage
	tt.sizeInByte = tt.maxNumberOfEntries * uint64(TtEntrySize)

	// Create new slice/array - garbage collections takes care of cleanup
	tt.data = make([]TtEntry, tt.maxNumberOfEntries)
	tt.numberOfEntries = 0
	tt.Stats = TtStats{}

	tt.log.Info(out.Sprintf("TT Size %d MByte, Capacity %d entries (size=%d Byte) (Requested were %d MBytes)",
		tt.sizeInByte/MB, tt.maxNumberOfEntries, TtEntrySize, sizeInMByte))
	tt.log.Debug(util.MemStat())
}

// GetEntry returns a pointer to the corresponding tt entry.
// Given key is checked against the entry's key. When
// equal pointer to entry will be returned. Otherwise
// nil will be returned.
// Does not change statistics.
func (tt *TtTable) GetEntry(key Key) *TtEntry {
	if tt.maxNumberOfEntries == 0 {
		return nil
	}
	e := &tt.data[tt.hash(key)]
	if e.Key == key {
		return e
	}
	return nil
}

// Probe returns a pointer to the corresponding tt entry
// or nil if it was not found.
func (tt *TtTable) Probe(key Key) *TtEntry {
	if tt.maxNumberOfEntries == 0 {
		return nil
	}
	tt.Stats.numberOfProbes++
	e := &tt.data[tt.hash(key)]
	if e.Key == key {
		tt.Stats.numberOfHits++
		return e
	}
	tt.Stats.numberOfMisses++
	return nil
}

// Put stores a search result for key, always replacing whatever
// previously occupied the slot - win or lose, newest wins.
func (tt *TtTable) Put(key Key, move Move, depth int8, value Value, valueType ValueType) {
	if tt.maxNumberOfEntries == 0 {
		return
	}
	e := tt.slotFor(key)
	e.Key = key
	e.Move = move
	e.Value = value
	e.Depth = depth
	e.Type = valueType
	e.Nodes = 0
}

// PutPerft stores a perft node count for key at depth, always replacing
// whatever previously occupied the slot.
func (tt *TtTable) PutPerft(key Key, depth int8, nodes uint64) {
	if tt.maxNumberOfEntries == 0 {
		return
	}
	e := tt.slotFor(key)
	e.Key = key
	e.Move = MoveNone
	e.Value = ValueNA
	e.Depth = depth
	e.Type = VtPerft
	e.Nodes = nodes
}

func (tt *TtTable) slotFor(key Key) *TtEntry {
	e := &tt.data[tt.hash(key)]
	tt.Stats.numberOfPuts++
	switch {
	case e.Key == 0:
		tt.numberOfEntries++
	case e.Key != key:
		tt.Stats.numberOfCollisions++
	}
	return e
}

// Clear clears all entries of the tt
// The TtTable class is not thread safe and needs to be synchronized
// externally if used from multiple threads. Is especially relevant
// for Resize and Clear which should not be called in parallel
// while searching.
func (tt *TtTable) Clear() {
	// Create new slice/array - garbage collections takes care of cleanup
	tt.data = make([]TtEntry, tt.maxNumberOfEntries)
	tt.numberOfEntries = 0
	tt.Stats = TtStats{}
}

// Hashfull returns how full the transposition table is in permill as per UCI
func (tt *TtTable) Hashfull() int {
	if tt.maxNumberOfEntries == 0 {
		return 0
	}
	return int((1000 * tt.numberOfEntries) / tt.maxNumberOfEntries)
}

// String returns a string representation of this TtTable instance
func (tt *TtTable) String() string {
	return out.Sprintf("TT: size %d MB max entries %d of size %d Bytes entries %d (%d%%) puts %d "+
		"collisions %d probes %d hits %d (%d%%) misses %d (%d%%)",
		tt.sizeInByte/MB, tt.maxNumberOfEntries, TtEntrySize, tt.numberOfEntries, tt.Hashfull()/10,
		tt.Stats.numberOfPuts, tt.Stats.numberOfCollisions, tt.Stats.numberOfProbes,
		tt.Stats.numberOfHits, (tt.Stats.numberOfHits*100)/(1+tt.Stats.numberOfProbes),
		tt.Stats.numberOfMisses, (tt.Stats.numberOfMisses*100)/(1+tt.Stats.numberOfProbes))
}

// Len returns the number of non empty entries in the tt
func (tt *TtTable) Len() uint64 {
	return tt.numberOfEntries
}

// hash generates the internal index into data for the given Zobrist key.
func (tt *TtTable) hash(key Key) uint64 {
	return uint64(key) & tt.hashKeyMask
}
