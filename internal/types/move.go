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
	"fmt"
	"strings"

	"github.com/frankkopp/corvid/internal/assert"
)

// Move is a 32-bit unsigned int encoding a chess move as a primitive value:
// 16 bits of move identity, 16 bits of transient sort value.
//  MoveNone Move = 0
//  BITMAP 32-bit
//  |-value ------------------------|-Move -------------------------|
//  3 3 2 2 2 2 2 2 2 2 2 2 1 1 1 1 | 1 1 1 1 1 1 0 0 0 0 0 0 0 0 0 0
//  1 0 9 8 7 6 5 4 3 2 1 0 9 8 7 6 | 5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0
//  --------------------------------|--------------------------------
//                                  |                     1 1 1 1 1 1  from
//                                  |         1 1 1 1 1 1              to
//                                  |     1 1                          move kind
//                                  | 1 1                              flag (ep bit, or promotion piece)
//  1 1 1 1 1 1 1 1 1 1 1 1 1 1 1 1 |                                  move sort value
//
// flag is read two different ways depending on kind: for Capture it is a
// single en-passant bit (bit 14; bit 15 unused); for Promotion it selects
// the promotion piece type (Knight=0 .. Queen=3). It is always zero for
// Quiet and Castle moves.
type Move uint32

const (
	// MoveNone is the empty, invalid move
	MoveNone Move = 0

	enPassantFlag Move = 1
)

// MaxMoves is the maximum number of half moves (plies) expected in a game;
// used to size history arrays and move buffers.
const MaxMoves = 512

// CreateMove returns an encoded Move for Quiet, Capture or Castle kinds.
// promType is ignored for anything but Promotion - use CreateMove with
// kind Promotion, or the dedicated helpers below, to encode a promotion.
func CreateMove(from Square, to Square, kind MoveType, promType PieceType) Move {
	m := Move(from) | Move(to)<<toShift | Move(kind)<<kindShift
	if kind == Promotion {
		if promType < Knight {
			promType = Knight
		}
		m |= Move(promType-Knight) << flagShift
	}
	return m
}

// CreateMoveValue is CreateMove plus an encoded sort value.
func CreateMoveValue(from Square, to Square, kind MoveType, promType PieceType, value Value) Move {
	return CreateMove(from, to, kind, promType) | Move(value-ValueNA)<<valueShift
}

// CreateEnPassantMove returns an encoded en-passant capture.
func CreateEnPassantMove(from Square, to Square) Move {
	return Move(from) | Move(to)<<toShift | Move(Capture)<<kindShift | enPassantFlag<<flagShift
}

// CreateEnPassantMoveValue is CreateEnPassantMove plus an encoded sort value.
func CreateEnPassantMoveValue(from Square, to Square, value Value) Move {
	return CreateEnPassantMove(from, to) | Move(value-ValueNA)<<valueShift
}

// From returns the from-Square of the move
func (m Move) From() Square {
	return Square(m & squareMask)
}

// To returns the to-Square of the move
func (m Move) To() Square {
	return Square((m & toMask) >> toShift)
}

// MoveType returns the move's kind: Quiet, Capture, Castle or Promotion
func (m Move) MoveType() MoveType {
	return MoveType((m & kindMask) >> kindShift)
}

// PromotionType returns the piece type to promote to. Only meaningful when
// MoveType() == Promotion.
func (m Move) PromotionType() PieceType {
	return PieceType((m&flagMask)>>flagShift) + Knight
}

// IsEnPassant reports whether this move is an en-passant capture. Only
// meaningful when MoveType() == Capture.
func (m Move) IsEnPassant() bool {
	return m.MoveType() == Capture && (m&flagMask)>>flagShift == enPassantFlag
}

// MoveOf returns the move stripped of any sort value (the low 16 bits)
func (m Move) MoveOf() Move {
	return m & moveMask
}

// ValueOf returns the sort value encoded in the high 16 bits
func (m Move) ValueOf() Value {
	return Value((m&valueMask)>>valueShift) + ValueNA
}

// SetValue encodes the given value into the high 16 bits of the move
func (m *Move) SetValue(v Value) Move {
	if assert.DEBUG {
		assert.Assert(v == ValueNA || v.IsValid(), "invalid move sort value: %d", v)
	}
	if *m == MoveNone {
		return *m
	}
	*m = *m&moveMask | Move(v-ValueNA)<<valueShift
	return *m
}

// IsValid checks that the move has valid squares, kind and (if applicable)
// promotion type. MoveNone is never valid.
func (m Move) IsValid() bool {
	return m != MoveNone &&
		m.From().IsValid() &&
		m.To().IsValid() &&
		m.MoveType().IsValid() &&
		(m.MoveType() != Promotion || m.PromotionType().IsValid()) &&
		(m.ValueOf() == ValueNA || m.ValueOf().IsValid())
}

// String is a verbose representation of the move, useful for debugging
func (m Move) String() string {
	if m == MoveNone {
		return "Move: { MoveNone }"
	}
	return fmt.Sprintf("Move: { %-5s  kind:%-9s  value:%-6d  (%d) }",
		m.StringUci(), m.MoveType().String(), m.ValueOf(), m)
}

// StringUci returns the UCI long algebraic representation of the move,
// e.g. "e2e4" or "e7e8q"
func (m Move) StringUci() string {
	if m == MoveNone {
		return "0000"
	}
	var os strings.Builder
	os.WriteString(m.From().String())
	os.WriteString(m.To().String())
	if m.MoveType() == Promotion {
		os.WriteString(strings.ToLower(m.PromotionType().Char()))
	}
	return os.String()
}

// StringBits returns a string with the bit-level breakdown of the move
func (m Move) StringBits() string {
	return fmt.Sprintf(
		"Move { From[%-0.6b](%s) To[%-0.6b](%s) Kind[%-0.2b](%s) Flag[%-0.2b] value[%-0.16b](%d) (%d)}",
		m.From(), m.From().String(),
		m.To(), m.To().String(),
		m.MoveType(), m.MoveType().String(),
		(m&flagMask)>>flagShift,
		m.ValueOf(), m.ValueOf(),
		m)
}

const (
	toShift   uint = 6
	kindShift uint = 12
	flagShift uint = 14
	valueShift uint = 16

	squareMask Move = 0x3F
	toMask     Move = squareMask << toShift
	kindMask   Move = 3 << kindShift
	flagMask   Move = 3 << flagShift
	moveMask   Move = 0xFFFF               // low 16 bits: move identity
	valueMask  Move = 0xFFFF << valueShift // high 16 bits: sort value
)
