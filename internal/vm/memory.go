/*
 * Synacore - Low level memory
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

// Word is the machine's native 16-bit unit: a memory cell, a register
// value, or (in the range [RegBase, RegLimit)) a register reference.
type Word uint16

const (
	// MemSize is the number of addressable words. Never resized.
	MemSize = 32768

	// RegCount is the number of general-purpose registers.
	RegCount = 8

	// RegBase is the first value that denotes a register reference
	// rather than a literal.
	RegBase Word = 32768

	// RegLimit is one past the last value that denotes a register
	// reference. Cells at or above this value are invalid operands.
	RegLimit Word = RegBase + RegCount

	// maxImageBytes is the largest binary image the loader accepts.
	maxImageBytes = MemSize * 2
)

// Memory is the machine's word-addressable store.
type Memory [MemSize]Word

// LoadProgram converts a little-endian byte image into a fully sized
// Memory, zero-filling anything past the image's length.
func LoadProgram(data []byte) (*Memory, error) {
	if len(data)%2 != 0 {
		return nil, newFault(InvalidProgramSize, len(data))
	}
	if len(data) > maxImageBytes {
		return nil, newFault(NotEnoughMemory, len(data))
	}

	mem := &Memory{}
	for i := 0; i < len(data); i += 2 {
		mem[i/2] = Word(data[i]) | Word(data[i+1])<<8
	}
	return mem, nil
}
