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

package transpositiontable

import (
	"unsafe"

	. "github.com/frankkopp/corvid/internal/types"
)

// TtEntry is one slot of the transposition table. It is dual purpose: a
// perft run fills Nodes and Type==VtPerft and stores Move as MoveNone and
// Value as ValueNA; a search fills Move/Value/Type (VtAlpha/VtBeta/VtExact) and
// leaves Nodes at zero. A zero Key means the slot is empty.
type TtEntry struct {
	Key   Key
	Nodes uint64
	Move  Move
	Value Value
	Depth int8
	Type  ValueType
}

// TtEntrySize is the size in bytes of a single TtEntry slot.
const TtEntrySize = int(unsafe.Sizeof(TtEntry{}))
