/*
 * Synacore - Input multiplexer tests.
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

import (
	"errors"
	"testing"
)

type fakeLines struct {
	lines []string
	pos   int
}

func (f *fakeLines) ReadLine() (string, error) {
	if f.pos >= len(f.lines) {
		return "", errors.New("no more lines")
	}
	line := f.lines[f.pos]
	f.pos++
	return line, nil
}

// P8: multiplexer determinism with a fixed script and no terminal input.
func TestMultiplexerScriptBeforeInteractive(t *testing.T) {
	mux := NewMultiplexer([]string{"north", "take lamp"}, nil, nil)

	want := "north\ntake lamp\n"
	for i := 0; i < len(want); i++ {
		b, err := mux.NextByte()
		if err != nil {
			t.Fatalf("NextByte(%d): %v", i, err)
		}
		if b != want[i] {
			t.Fatalf("byte %d = %q, want %q", i, b, want[i])
		}
	}
}

func TestMultiplexerFallsBackToTerminal(t *testing.T) {
	term := &fakeLines{lines: []string{"look"}}
	mux := NewMultiplexer([]string{"north"}, term, nil)

	want := "north\nlook\n"
	for i := 0; i < len(want); i++ {
		b, err := mux.NextByte()
		if err != nil {
			t.Fatalf("NextByte(%d): %v", i, err)
		}
		if b != want[i] {
			t.Fatalf("byte %d = %q, want %q", i, b, want[i])
		}
	}
}

func TestMultiplexerDebugEscapeNotDelivered(t *testing.T) {
	term := &fakeLines{lines: []string{"dbg", "look"}}
	entered := false
	mux := NewMultiplexer(nil, term, func() error {
		entered = true
		return nil
	})

	want := "look\n"
	for i := 0; i < len(want); i++ {
		b, err := mux.NextByte()
		if err != nil {
			t.Fatalf("NextByte(%d): %v", i, err)
		}
		if b != want[i] {
			t.Fatalf("byte %d = %q, want %q", i, b, want[i])
		}
	}
	if !entered {
		t.Error("debugger escape was never invoked")
	}
}

func TestMultiplexerScriptedDbgLineIsLiteral(t *testing.T) {
	entered := false
	mux := NewMultiplexer([]string{"dbg"}, nil, func() error {
		entered = true
		return nil
	})

	want := "dbg\n"
	for i := 0; i < len(want); i++ {
		b, err := mux.NextByte()
		if err != nil {
			t.Fatalf("NextByte(%d): %v", i, err)
		}
		if b != want[i] {
			t.Fatalf("byte %d = %q, want %q", i, b, want[i])
		}
	}
	if entered {
		t.Error("a scripted \"dbg\" line must not trigger the debugger escape")
	}
}
