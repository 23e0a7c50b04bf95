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

func TestCreateMove(t *testing.T) {
	type args struct {
		from     Square
		to       Square
		kind     MoveType
		promType PieceType
	}
	tests := []struct {
		name string
		args args
	}{
		{"e2e4 quiet", args{SqE2, SqE4, Quiet, PtNone}},
		{"e1g1 castle", args{SqE1, SqG1, Castle, PtNone}},
		{"d7d8Q promotion", args{SqD7, SqD8, Promotion, Queen}},
		{"e5d6 capture", args{SqE5, SqD6, Capture, PtNone}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := CreateMove(tt.args.from, tt.args.to, tt.args.kind, tt.args.promType)
			assert.Equal(t, tt.args.from, m.From())
			assert.Equal(t, tt.args.to, m.To())
			assert.Equal(t, tt.args.kind, m.MoveType())
			if tt.args.kind == Promotion {
				assert.Equal(t, tt.args.promType, m.PromotionType())
			}
			assert.True(t, m.IsValid())
		})
	}
}

func TestCreateEnPassantMove(t *testing.T) {
	m := CreateEnPassantMove(SqE5, SqD6)
	assert.Equal(t, SqE5, m.From())
	assert.Equal(t, SqD6, m.To())
	assert.Equal(t, Capture, m.MoveType())
	assert.True(t, m.IsEnPassant())
	assert.True(t, m.IsValid())

	normalCapture := CreateMove(SqE5, SqD6, Capture, PtNone)
	assert.False(t, normalCapture.IsEnPassant())
}

func TestMoveSetValueGetValue(t *testing.T) {
	m := CreateMove(SqE2, SqE4, Quiet, PtNone)
	m.SetValue(999)
	assert.Equal(t, Value(999), m.ValueOf())

	m = CreateMove(SqD7, SqD8, Promotion, Queen)
	m.SetValue(ValueMax)
	assert.Equal(t, ValueMax, m.ValueOf())

	// the identity bits must survive the sort value round trip
	assert.Equal(t, SqD7, m.From())
	assert.Equal(t, SqD8, m.To())
	assert.Equal(t, Queen, m.PromotionType())
}

func TestMoveOfStripsValue(t *testing.T) {
	m := CreateMoveValue(SqE2, SqE4, Quiet, PtNone, 500)
	assert.NotEqual(t, CreateMove(SqE2, SqE4, Quiet, PtNone), m)
	assert.Equal(t, CreateMove(SqE2, SqE4, Quiet, PtNone), m.MoveOf())
}

func TestMoveStringUci(t *testing.T) {
	assert.Equal(t, "e2e4", CreateMove(SqE2, SqE4, Quiet, PtNone).StringUci())
	assert.Equal(t, "e7e5", CreateMove(SqE7, SqE5, Quiet, PtNone).StringUci())
	assert.Equal(t, "a7a8q", CreateMove(SqA7, SqA8, Promotion, Queen).StringUci())
	assert.Equal(t, "0000", MoveNone.StringUci())
}

func TestMoveNoneInvalid(t *testing.T) {
	assert.False(t, MoveNone.IsValid())
}
