/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package transpositiontable

import (
	"os"
	"path"
	"runtime"
	"testing"

	logging2 "github.com/op/go-logging"
	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/corvid/internal/config"
	"github.com/frankkopp/corvid/internal/logging"
	"github.com/frankkopp/corvid/internal/position"
	. "github.com/frankkopp/corvid/internal/types"
)

var logTest *logging2.Logger

// make tests run in the projects root directory
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

func TestMain(m *testing.M) {
	config.Setup()
	logTest = logging.GetTestLog()
	code := m.Run()
	os.Exit(code)
}

func TestNew(t *testing.T) {
	tt := NewTtTable(2)
	assert.Equal(t, uint64(65_536), tt.maxNumberOfEntries)
	assert.Equal(t, 65_536, cap(tt.data))
	logTest.Debug(tt.String())

	tt = NewTtTable(64)
	assert.Equal(t, uint64(2_097_152), tt.maxNumberOfEntries)
	assert.Equal(t, 2_097_152, cap(tt.data))
}

func TestGetAndProbe(t *testing.T) {
	tt := NewTtTable(64)
	pos := position.NewPosition()
	move := CreateMove(SqE2, SqE4, Quiet, PtNone)

	tt.Put(pos.ZobristKey(), move, 5, Value(17), VtExact)

	e := tt.GetEntry(pos.ZobristKey())
	assert.Equal(t, pos.ZobristKey(), e.Key)
	assert.Equal(t, move, e.Move)
	assert.EqualValues(t, 5, e.Depth)
	assert.Equal(t, VtExact, e.Type)

	e = tt.Probe(pos.ZobristKey())
	assert.NotNil(t, e)
	assert.EqualValues(t, 1, tt.Stats.numberOfHits)

	pos.DoMove(move)
	e = tt.Probe(pos.ZobristKey())
	assert.Nil(t, e)
	assert.EqualValues(t, 1, tt.Stats.numberOfMisses)
}

func TestClear(t *testing.T) {
	tt := NewTtTable(1)
	pos := position.NewPosition()
	move := CreateMove(SqE2, SqE4, Quiet, PtNone)

	tt.Put(pos.ZobristKey(), move, 5, Value(17), VtExact)
	assert.EqualValues(t, 1, tt.Len())

	tt.Clear()
	assert.EqualValues(t, 0, tt.Len())
	assert.Nil(t, tt.Probe(pos.ZobristKey()))
}

func TestPutAlwaysReplaces(t *testing.T) {
	tt := NewTtTable(4)
	move := CreateMove(SqE2, SqE4, Quiet, PtNone)

	tt.Put(111, move, 4, Value(111), VtAlpha)
	assert.EqualValues(t, 1, tt.Len())
	e := tt.Probe(111)
	assert.EqualValues(t, 111, e.Key)
	assert.EqualValues(t, 4, e.Depth)
	assert.Equal(t, VtAlpha, e.Type)

	// same key, updates in place
	tt.Put(111, move, 2, Value(99), VtBeta)
	assert.EqualValues(t, 1, tt.Len())
	e = tt.Probe(111)
	assert.EqualValues(t, 2, e.Depth)
	assert.Equal(t, VtBeta, e.Type)

	// colliding key at the same slot always overwrites, even at lower depth
	collisionKey := Key(111 + tt.maxNumberOfEntries)
	tt.Put(collisionKey, move, 1, Value(3), VtExact)
	assert.EqualValues(t, 1, tt.Len())
	assert.EqualValues(t, 1, tt.Stats.numberOfCollisions)
	assert.Nil(t, tt.Probe(111))
	e = tt.Probe(collisionKey)
	assert.NotNil(t, e)
	assert.EqualValues(t, 1, e.Depth)
	assert.Equal(t, VtExact, e.Type)
}

func TestPutPerft(t *testing.T) {
	tt := NewTtTable(4)
	tt.PutPerft(222, 3, 8_902)
	e := tt.Probe(222)
	assert.NotNil(t, e)
	assert.Equal(t, VtPerft, e.Type)
	assert.EqualValues(t, 8_902, e.Nodes)
	assert.Equal(t, MoveNone, e.Move)
}

func TestHashfull(t *testing.T) {
	tt := NewTtTable(1)
	assert.EqualValues(t, 0, tt.Hashfull())
	for i := Key(0); i < 100; i++ {
		tt.Put(i, MoveNone, 1, ValueZero, VtExact)
	}
	assert.Greater(t, tt.Hashfull(), 0)
}
