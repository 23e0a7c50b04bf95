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

package search

import (
	golog "log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/op/go-logging"

	. "github.com/frankkopp/corvid/internal/config"
	"github.com/frankkopp/corvid/internal/movegen"
	"github.com/frankkopp/corvid/internal/moveslice"
	"github.com/frankkopp/corvid/internal/position"
	. "github.com/frankkopp/corvid/internal/types"
	"github.com/frankkopp/corvid/internal/util"
)

var trace = false

// rootSearch searches all legal moves of the root position at the given
// depth with a full alpha/beta window and records the best move found in
// pv[0]. Root moves are treated separately from search() because they
// carry their value in s.rootMoves; the root moves are not re-sorted
// between iterations.
func (s *Search) rootSearch(position *position.Position, depth int, alpha Value, beta Value) {
	if trace {
		s.slog.Debugf("Ply %-2.d Depth %-2.d start: %s", 0, depth, s.statistics.CurrentVariation.StringUci())
		defer s.slog.Debugf("Ply %-2.d Depth %-2.d end: %s", 0, depth, s.statistics.CurrentVariation.StringUci())
	}

	bestNodeValue := ValueNA
	var value Value

	for i, m := range *s.rootMoves {
		position.DoMove(m)
		s.nodesVisited++
		s.statistics.CurrentVariation.PushBack(m)
		s.statistics.CurrentRootMoveIndex = i
		s.statistics.CurrentRootMove = m

		if s.checkDrawRepAnd50(position, 2) {
			value = ValueDraw
		} else {
			value = -s.search(position, depth-1, 1, -beta, -alpha)
		}

		s.statistics.CurrentVariation.PopBack()
		position.UndoMove()

		// At least one complete search at depth 1 is required before we
		// honor a stop - otherwise we might not have any move at all.
		if s.stopConditions() && depth > 1 {
			return
		}

		s.rootMoves.Set(i, m.SetValue(value))

		if value > bestNodeValue {
			bestNodeValue = value
			savePV(m, s.pv[1], s.pv[0])
		}
	}
}

// search is the negamax alpha-beta search below the root (ply > 0). It is
// called recursively until depth reaches zero, at which point it hands off
// to quiescence search.
func (s *Search) search(p *position.Position, depth int, ply int, alpha Value, beta Value) Value {
	if trace {
		s.slog.Debugf("%0*s Ply %-2.d Depth %-2.d a:%-6.d b:%-6.d start:  %s", ply, "", ply, depth, alpha, beta, s.statistics.CurrentVariation.StringUci())
		defer s.slog.Debugf("%0*s Ply %-2.d Depth %-2.d a:%-6.d b:%-6.d end  :  %s", ply, "", ply, depth, alpha, beta, s.statistics.CurrentVariation.StringUci())
	}

	if s.stopConditions() {
		return ValueNA
	}

	if depth == 0 || ply >= MaxDepth {
		return s.qsearch(p, ply, alpha, beta)
	}

	bestNodeValue := ValueNA
	bestNodeMove := MoveNone
	ttMove := MoveNone
	ttType := VtAlpha

	// TT Lookup. A hit with sufficient depth gives us a usable score
	// (exact, or a bound that already cuts); in any case the stored move
	// becomes the principal-variation hint for move ordering below.
	if Settings.Search.UseTT {
		ttEntry := s.tt.Probe(p.ZobristKey())
		if ttEntry != nil {
			s.statistics.TTHit++
			ttMove = ttEntry.Move.MoveOf()
			if int(ttEntry.Depth) >= depth {
				ttValue := valueFromTT(ttEntry.Value, ply)
				cut := false
				switch {
				case !ttValue.IsValid():
					cut = false
				case ttEntry.Type == VtExact:
					cut = true
				case ttEntry.Type == VtAlpha && ttValue <= alpha:
					cut = true
				case ttEntry.Type == VtBeta && ttValue >= beta:
					cut = true
				}
				if cut {
					s.statistics.TTCuts++
					return ttValue
				}
				s.statistics.TTNoCuts++
			}
		} else {
			s.statistics.TTMiss++
		}
	}

	myMg := s.mg[ply]
	myMg.ResetOnDemand()
	s.pv[ply].Clear()
	if ttMove != MoveNone {
		s.statistics.TTMoveUsed++
		myMg.SetPvMove(ttMove)
	} else {
		s.statistics.NoTTMove++
	}

	var value Value
	movesSearched := 0

	for move := myMg.GetNextMove(p, movegen.GenAll); move != MoveNone; move = myMg.GetNextMove(p, movegen.GenAll) {
		p.DoMove(move)

		if !p.WasLegalMove() {
			p.UndoMove()
			continue
		}

		s.nodesVisited++
		s.statistics.CurrentVariation.PushBack(move)
		s.sendSearchUpdateToUci()

		if s.checkDrawRepAnd50(p, 2) {
			value = ValueDraw
		} else {
			value = -s.search(p, depth-1, ply+1, -beta, -alpha)
		}

		movesSearched++
		s.statistics.CurrentVariation.PopBack()
		p.UndoMove()

		if s.stopConditions() {
			return ValueNA
		}

		if value > bestNodeValue {
			bestNodeValue = value
			bestNodeMove = move
			if value > alpha {
				savePV(move, s.pv[ply+1], s.pv[ply])
				if value >= beta {
					s.statistics.BetaCuts++
					if movesSearched == 1 {
						s.statistics.BetaCuts1st++
					}
					if Settings.Search.UseTT {
						s.storeTT(p, depth, ply, bestNodeMove, bestNodeValue, VtBeta)
					}
					return beta
				}
				alpha = value
				ttType = VtExact
			}
		}
	}

	if movesSearched == 0 && !s.stopConditions() {
		if p.HasCheck() {
			s.statistics.Checkmates++
			bestNodeValue = -ValueCheckMate + Value(ply)
		} else {
			s.statistics.Stalemates++
			bestNodeValue = ValueDraw
		}
		ttType = VtExact
	}

	if Settings.Search.UseTT {
		s.storeTT(p, depth, ply, bestNodeMove, bestNodeValue, ttType)
	}

	return bestNodeValue
}

// qsearch continues the search along capturing lines beyond the nominal
// depth limit to avoid the horizon effect. It has no depth limit of its
// own; termination relies on the finite number of captures available in
// any position.
func (s *Search) qsearch(p *position.Position, ply int, alpha Value, beta Value) Value {
	if trace {
		s.slog.Debugf("%0*s Ply %-2.d QSearch     a:%-6.d b:%-6.d start:  %s", ply, "", ply, alpha, beta, s.statistics.CurrentVariation.StringUci())
		defer s.slog.Debugf("%0*s Ply %-2.d QSearch     a:%-6.d b:%-6.d end  :  %s", ply, "", ply, alpha, beta, s.statistics.CurrentVariation.StringUci())
	}

	if s.statistics.CurrentExtraSearchDepth < ply {
		s.statistics.CurrentExtraSearchDepth = ply
	}

	if ply >= MaxDepth {
		return s.evaluate(p)
	}

	// Stand-pat: the side to move is never forced to capture, so the
	// static evaluation is a lower bound on the position's value.
	staticEval := s.evaluate(p)
	if staticEval >= beta {
		s.statistics.StandpatCuts++
		return beta
	}
	if staticEval > alpha {
		alpha = staticEval
	}
	bestNodeValue := staticEval

	myMg := s.mg[ply]
	myMg.ResetOnDemand()
	s.pv[ply].Clear()

	var value Value
	movesSearched := 0

	for move := myMg.GetNextMove(p, movegen.GenCap); move != MoveNone; move = myMg.GetNextMove(p, movegen.GenCap) {
		p.DoMove(move)

		if !p.WasLegalMove() {
			p.UndoMove()
			continue
		}

		s.nodesVisited++
		s.statistics.CurrentVariation.PushBack(move)
		s.sendSearchUpdateToUci()

		value = -s.qsearch(p, ply+1, -beta, -alpha)

		movesSearched++
		s.statistics.CurrentVariation.PopBack()
		p.UndoMove()

		if s.stopConditions() {
			return ValueNA
		}

		if value > bestNodeValue {
			bestNodeValue = value
			if value > alpha {
				savePV(move, s.pv[ply+1], s.pv[ply])
				if value >= beta {
					s.statistics.BetaCuts++
					if movesSearched == 1 {
						s.statistics.BetaCuts1st++
					}
					return beta
				}
				alpha = value
			}
		}
	}

	return bestNodeValue
}

// evaluate returns the static material evaluation of the position from
// the view of the side to move.
func (s *Search) evaluate(position *position.Position) Value {
	s.statistics.LeafPositionsEvaluated++
	s.statistics.Evaluations++
	return s.eval.Evaluate(position)
}

// savePV prepends move to src and stores the result in dest.
func savePV(move Move, src *moveslice.MoveSlice, dest *moveslice.MoveSlice) {
	dest.Clear()
	dest.PushBack(move)
	*dest = append(*dest, *src...)
}

// storeTT stores a search result into the transposition table, adjusting
// the value for mate distance relative to the root.
func (s *Search) storeTT(p *position.Position, depth int, ply int, move Move, value Value, valueType ValueType) {
	s.tt.Put(p.ZobristKey(), move, int8(depth), valueToTT(value, ply), valueType)
}

// getPVLine fills pv with the principal variation found in the TT starting
// from the current position, up to depth moves.
func (s *Search) getPVLine(p *position.Position, pv *moveslice.MoveSlice, depth int) {
	pv.Clear()
	counter := 0
	ttMatch := s.tt.GetEntry(p.ZobristKey())
	for ttMatch != nil && ttMatch.Move != MoveNone && counter < depth {
		pv.PushBack(ttMatch.Move.MoveOf())
		p.DoMove(ttMatch.Move.MoveOf())
		counter++
		ttMatch = s.tt.GetEntry(p.ZobristKey())
	}
	for i := 0; i < counter; i++ {
		p.UndoMove()
	}
}

// valueToTT adjusts a mate score away from the root by ply before storing
// it, so that mate-in-N stays consistent regardless of where in the tree
// the mating line was found.
func valueToTT(value Value, ply int) Value {
	if value.IsCheckMateValue() {
		if value > 0 {
			value += Value(ply)
		} else {
			value -= Value(ply)
		}
	}
	return value
}

// valueFromTT reverses valueToTT's adjustment when reading a stored score
// back from the probing ply.
func valueFromTT(value Value, ply int) Value {
	if value.IsCheckMateValue() {
		if value > 0 {
			value -= Value(ply)
		} else {
			value += Value(ply)
		}
	}
	return value
}

// getSearchTraceLog returns a Logger for tracing the search itself,
// separate from the engine log. It logs to stdout, or only to the search
// log file once that file could be opened.
func getSearchTraceLog() *logging.Logger {
	searchLog := logging.MustGetLogger("search")

	searchLogFormat := logging.MustStringFormatter(`%{time:15:04:05.000} %{level:-7.7s}:  %{message}`)

	backend1 := logging.NewLogBackend(os.Stdout, "", golog.Lmsgprefix)
	backend1Formatter := logging.NewBackendFormatter(backend1, searchLogFormat)
	searchBackEnd := logging.AddModuleLevel(backend1Formatter)
	searchBackEnd.SetLevel(logging.Level(SearchLogLevel), "")
	searchLog.SetBackend(searchBackEnd)

	programName, _ := os.Executable()
	exeName := strings.TrimSuffix(filepath.Base(programName), ".exe")

	logPath, err := util.ResolveFolder(Settings.Log.LogPath)
	if err != nil {
		golog.Println("Log folder could not be found:", err)
		return searchLog
	}
	searchLogFilePath := filepath.Join(logPath, exeName+"_search.log")

	searchLogFile, err := os.OpenFile(searchLogFilePath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		golog.Println("Logfile could not be created:", err)
		return searchLog
	}
	backend2 := logging.NewLogBackend(searchLogFile, "", golog.Lmsgprefix)
	backend2Formatter := logging.NewBackendFormatter(backend2, searchLogFormat)
	searchBackEnd2 := logging.AddModuleLevel(backend2Formatter)
	searchBackEnd2.SetLevel(logging.DEBUG, "")
	searchLog.SetBackend(searchBackEnd2)
	searchLog.Infof("Log %s started at %s:", searchLogFile.Name(), time.Now().String())
	return searchLog
}
