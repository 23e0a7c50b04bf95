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

package types

// ValueType flags what a stored transposition table value means: a search
// score bound, or a perft node count. There is no "exact score from a
// shallower search" ambiguity to resolve here - a stored Exact entry is
// only ever reused at the depth it was stored at or deeper.
type ValueType uint8

const (
	// VtNone marks an empty or not-yet-classified entry.
	VtNone ValueType = iota
	// VtAlpha means the stored value is an upper bound (search failed low).
	VtAlpha
	// VtBeta means the stored value is a lower bound (search failed high).
	VtBeta
	// VtExact means the stored value is the exact minimax score.
	VtExact
	// VtPerft marks an entry holding a perft node count rather than a score.
	VtPerft
)

// String renders the value type the way search trace logs do.
func (v ValueType) String() string {
	switch v {
	case VtAlpha:
		return "ALPHA"
	case VtBeta:
		return "BETA"
	case VtExact:
		return "EXACT"
	case VtPerft:
		return "PERFT"
	default:
		return "NONE"
	}
}
