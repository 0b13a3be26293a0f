/*
 * Synacore - Execution engine: fetch-decode-execute loop.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package vm implements the Synacor-architecture execution engine: word
// memory, registers, stack, operand codec, opcode dispatch, and the
// cross-cutting trace recorder that rides along with decoding.
package vm

import (
	"io"
	"log/slog"
)

// InputSource feeds ASCII bytes to the in opcode, one per call.
type InputSource interface {
	NextByte() (byte, error)
}

// Engine holds all observable state of one running program: memory,
// registers, stack, code pointer, and the run flag, plus the trace
// recorder and breakpoint set the debugger inspects.
type Engine struct {
	Mem     *Memory
	Reg     [RegCount]Word
	Stack   []Word
	CP      Word
	Running bool

	In     InputSource
	Stdout io.Writer

	Trace       *Trace
	Breakpoints *Breakpoints

	cur []token

	log *slog.Logger
}

// NewEngine builds an Engine ready to Run mem. stdout receives out bytes;
// in feeds the in opcode; logger receives operational log records (a nil
// logger falls back to slog.Default()).
func NewEngine(mem *Memory, stdout io.Writer, in InputSource, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		Mem:         mem,
		Stdout:      stdout,
		In:          in,
		Trace:       NewTrace(defaultTraceSize),
		Breakpoints: NewBreakpoints(),
		log:         logger,
	}
}

// BreakHook is invoked by Run with the engine paused at cp, immediately
// before the instruction at cp is fetched, whenever an enabled breakpoint
// matches. The input multiplexer's debugger escape uses its own callback,
// not a BreakHook. A non-nil error from the hook aborts Run.
type BreakHook func(e *Engine) error

// Run executes the fetch-decode-execute loop until halt or a fatal
// fault. onBreak, if non-nil, is called whenever an enabled breakpoint
// matches cp before that instruction's fetch.
func (e *Engine) Run(onBreak BreakHook) error {
	e.Running = true
	for e.Running {
		if e.Breakpoints.Enabled() && e.Breakpoints.Has(e.CP) {
			e.log.Info("breakpoint hit", "cp", e.CP)
			if onBreak != nil {
				if err := onBreak(e); err != nil {
					e.Running = false
					return err
				}
			}
			if !e.Running {
				break
			}
		}
		if err := e.step(); err != nil {
			e.Running = false
			e.log.Error("fatal trap", "error", err)
			return err
		}
	}
	return nil
}

// step fetches, decodes, and executes exactly one instruction.
func (e *Engine) step() error {
	addr := e.CP
	e.emitAddress(addr)

	opWord, err := e.fetch()
	if err != nil {
		return err
	}
	if opWord > opNoop {
		return newFault(UnexpectedOpcode, int(opWord))
	}
	e.emitOpcode(opWord)

	if err := e.dispatch(opWord); err != nil {
		return err
	}

	e.Trace.finish()
	return nil
}

func (e *Engine) emitAddress(addr Word) {
	e.Trace.push(token{kind: tokAddress, addr: addr})
}

func (e *Engine) emitOpcode(op Word) {
	e.Trace.push(token{kind: tokOpcode, op: op})
}

func (e *Engine) emitValue(v Word, hasReg bool, idx int) {
	e.Trace.push(token{kind: tokValue, value: v, hasReg: hasReg, regIdx: idx})
}

func (e *Engine) emitRegIdx(idx int) {
	e.Trace.push(token{kind: tokRegIdx, regIdx: idx})
}

func (e *Engine) emitComment(text string) {
	e.Trace.push(token{kind: tokComment, comment: text})
}
