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

package evaluator

import (
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/corvid/internal/config"
	"github.com/frankkopp/corvid/internal/position"
	. "github.com/frankkopp/corvid/internal/types"
)

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
	os.Exit(m.Run())
}

func TestEvaluateStartPosIsBalanced(t *testing.T) {
	e := NewEvaluator()
	p := position.NewPosition()
	assert.EqualValues(t, ValueZero, e.Evaluate(p))
}

func TestEvaluateIsFromSideToMoveView(t *testing.T) {
	e := NewEvaluator()
	// white missing a knight - bad for white, black to move should see a plus
	p, err := position.NewPositionFen("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/R1BQKBNR b KQkq - 0 1")
	assert.NoError(t, err)
	v := e.Evaluate(p)
	assert.Greater(t, v, ValueZero)
	assert.EqualValues(t, Knight.ValueOf(), v)
}

func TestEvaluateInsufficientMaterialIsDraw(t *testing.T) {
	e := NewEvaluator()
	p, err := position.NewPositionFen("8/8/4k3/8/8/4K3/8/8 w - - 0 1")
	assert.NoError(t, err)
	assert.EqualValues(t, ValueDraw, e.Evaluate(p))
}
