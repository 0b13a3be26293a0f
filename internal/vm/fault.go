/*
 * Synacore - Fault taxonomy for the execution engine.
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

package vm

import "fmt"

// Kind tags the variant of a Fault, mirroring the fatal/expected error
// taxonomy the architecture spec assigns names to.
type Kind int

const (
	UnexpectedOpcode Kind = iota
	MemoryAccessViolation
	RegisterAccessViolation
	InvalidNumber
	PopOnEmptyStack
	EmptyInputBuffer
	InputBufferError
	NotEnoughMemory
	InvalidProgramSize
	// DivideByZero is not named in the architecture's error taxonomy, but
	// the mod opcode is specified to fail when its divisor is zero, so a
	// Kind has to exist for it.
	DivideByZero
)

func (k Kind) String() string {
	switch k {
	case UnexpectedOpcode:
		return "UnexpectedOpcode"
	case MemoryAccessViolation:
		return "MemoryAccessViolation"
	case RegisterAccessViolation:
		return "RegisterAccessViolation"
	case InvalidNumber:
		return "InvalidNumber"
	case PopOnEmptyStack:
		return "PopOnEmptyStack"
	case EmptyInputBuffer:
		return "EmptyInputBuffer"
	case InputBufferError:
		return "InputBufferError"
	case NotEnoughMemory:
		return "NotEnoughMemory"
	case InvalidProgramSize:
		return "InvalidProgramSize"
	case DivideByZero:
		return "DivideByZero"
	default:
		return "Unknown"
	}
}

// Fault is a fatal condition that halts the engine. Value carries the
// offending address, cell, or byte length depending on Kind; Err carries
// the wrapped cause for InputBufferError.
type Fault struct {
	Kind  Kind
	Value int
	Err   error
}

func (f *Fault) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("%s(%d): %v", f.Kind, f.Value, f.Err)
	}
	return fmt.Sprintf("%s(%d)", f.Kind, f.Value)
}

func (f *Fault) Unwrap() error {
	return f.Err
}

func newFault(kind Kind, value int) *Fault {
	return &Fault{Kind: kind, Value: value}
}

func newInputFault(err error) *Fault {
	return &Fault{Kind: InputBufferError, Err: err}
}
