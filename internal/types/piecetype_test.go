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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPieceTypeValueOf(t *testing.T) {
	tests := []struct {
		pt       PieceType
		expected Value
	}{
		{PtNone, 0},
		{King, 10000},
		{Pawn, 100},
		{Knight, 300},
		{Bishop, 300},
		{Rook, 500},
		{Queen, 900},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.pt.ValueOf())
	}
}

func TestPieceTypeIsValid(t *testing.T) {
	assert.True(t, Queen.IsValid())
	assert.False(t, PtLength.IsValid())
}

func TestPieceTypeCharString(t *testing.T) {
	assert.Equal(t, "Q", Queen.Char())
	assert.Equal(t, "Queen", Queen.String())
	assert.Equal(t, "-", PtNone.Char())
}
