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

// Package evaluator contains the static evaluation function used by search:
// pure material balance, from the view of the side to move. There are no
// piece-square tables, no game-phase blending and no mobility or king
// safety terms - those are out of scope.
package evaluator

import (
	"strings"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/frankkopp/corvid/internal/logging"
	"github.com/frankkopp/corvid/internal/position"
	. "github.com/frankkopp/corvid/internal/types"
)

var out = message.NewPrinter(language.German)

// Evaluator holds the logger used while evaluating. It carries no other
// state: material is tracked incrementally on Position itself, so there is
// nothing to cache or initialize per position.
type Evaluator struct {
	log *logging.Logger
}

// NewEvaluator creates a new instance of an Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{log: myLogging.GetLog()}
}

// Evaluate returns the material balance of p, from the view of the side to
// move. Pawn=100, Knight=300, Bishop=300, Rook=500, Queen=900, King=10000;
// kings are included in the sum so the value stays well defined even for
// positions reached only by search (e.g. one side's king missing never
// happens, but including it keeps the formula uniform).
func (e *Evaluator) Evaluate(p *position.Position) Value {
	if p.HasInsufficientMaterial() {
		return ValueDraw
	}
	balance := p.Material(White) - p.Material(Black)
	return balance * Value(p.NextPlayer().Direction())
}

// Report prints a short human readable report about the evaluation of p.
// Used in debugging and the "eval" style UCI extension commands.
func (e *Evaluator) Report(p *position.Position) string {
	var report strings.Builder
	report.WriteString("Evaluation Report\n")
	report.WriteString("=============================================\n")
	report.WriteString(out.Sprintf("Position: %s\n", p.StringFen()))
	report.WriteString(out.Sprintf("%s\n", p.StringBoard()))
	report.WriteString(out.Sprintf("Material White: %d  Black: %d\n", p.Material(White), p.Material(Black)))
	report.WriteString(out.Sprintf("Eval value  : %s (from the view of %s)\n", e.Evaluate(p).String(), p.NextPlayer().String()))
	return report.String()
}
