/*
 * Synacore - Debugger command execution against a running engine.
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

package debugger

import (
	"fmt"
	"io"
	"strings"

	"github.com/rcornwell/synacore/internal/vm"
)

// Session binds the command grammar to one running engine and an output
// sink; Run is invoked by the multiplexer's debugger escape and by
// breakpoint hits.
type Session struct {
	Engine *vm.Engine
	Out    io.Writer
}

// Execute parses and runs one REPL line, writing its response to s.Out.
// It returns true when the line requests that execution resume (cnt).
func (s *Session) Execute(line string) (resume bool) {
	cmd := parseLine(line)
	switch cmd.act {
	case actBpList:
		s.printBreakpoints()
	case actBpAdd:
		s.Engine.Breakpoints.Add(vm.Word(cmd.nums[0]))
	case actBpRem:
		s.Engine.Breakpoints.Remove(vm.Word(cmd.nums[0]))
	case actBpEnable:
		s.Engine.Breakpoints.SetEnabled(cmd.bool)
	case actRegList:
		s.printRegisters()
	case actRegWrite:
		idx, val := cmd.nums[0], cmd.nums[1]
		if int(idx) < len(s.Engine.Reg) {
			s.Engine.Reg[idx] = vm.Word(val % 32768)
		}
	case actStack:
		s.printStack()
	case actStackSize:
		fmt.Fprintf(s.Out, "%d\n", len(s.Engine.Stack))
	case actTrace:
		s.printTrace()
	case actTraceSize:
		fmt.Fprintf(s.Out, "%d\n", s.Engine.Trace.Len())
	case actTraceSetSize:
		s.Engine.Trace.Resize(int(cmd.nums[0]))
	case actTraceClear:
		s.Engine.Trace.Clear()
	case actTraceEnable:
		s.Engine.Trace.SetEnabled(cmd.bool)
	case actCP:
		fmt.Fprintf(s.Out, "%d\n", s.Engine.CP)
	case actCPWrite:
		s.Engine.CP = vm.Word(cmd.nums[0])
	case actClear:
		fmt.Fprint(s.Out, strings.Repeat("\n", 24))
	case actCont:
		return true
	default:
		fmt.Fprintln(s.Out, "Unknown command")
	}
	return false
}

func (s *Session) printBreakpoints() {
	for _, addr := range s.Engine.Breakpoints.List() {
		fmt.Fprintf(s.Out, "%d\n", addr)
	}
}

func (s *Session) printRegisters() {
	for i, r := range s.Engine.Reg {
		fmt.Fprintf(s.Out, "r%d = %d\n", i, r)
	}
}

func (s *Session) printStack() {
	for _, w := range s.Engine.Stack {
		fmt.Fprintf(s.Out, "%d\n", w)
	}
}

func (s *Session) printTrace() {
	for _, line := range s.Engine.Trace.Lines() {
		fmt.Fprintln(s.Out, line)
	}
}
