/*
 * Synacore - Memory loader tests.
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

import "testing"

func TestLoadProgramPacksLittleEndian(t *testing.T) {
	mem, err := LoadProgram([]byte{0x41, 0x00, 0x13, 0x80})
	if err != nil {
		t.Fatalf("LoadProgram: %v", err)
	}
	if mem[0] != 0x0041 {
		t.Errorf("mem[0] = %#04x, want 0x0041", mem[0])
	}
	if mem[1] != 0x8013 {
		t.Errorf("mem[1] = %#04x, want 0x8013", mem[1])
	}
	if mem[2] != 0 {
		t.Errorf("mem[2] = %#04x, want 0 (zero-filled tail)", mem[2])
	}
}

func TestLoadProgramOddLength(t *testing.T) {
	_, err := LoadProgram([]byte{1, 2, 3})
	var f *Fault
	if !asFault(err, &f) || f.Kind != InvalidProgramSize {
		t.Fatalf("err = %v, want InvalidProgramSize", err)
	}
}

func TestLoadProgramTooLarge(t *testing.T) {
	_, err := LoadProgram(make([]byte, maxImageBytes+2))
	var f *Fault
	if !asFault(err, &f) || f.Kind != NotEnoughMemory {
		t.Fatalf("err = %v, want NotEnoughMemory", err)
	}
}

// asFault is a tiny errors.As helper kept local to the test file so the
// VM tests don't need to import errors just for this one assertion.
func asFault(err error, target **Fault) bool {
	f, ok := err.(*Fault)
	if !ok {
		return false
	}
	*target = f
	return true
}
