/*
 * Synacore - Debugger command grammar tests.
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

import "testing"

func TestParseLineBreakpoints(t *testing.T) {
	cases := []struct {
		line string
		want action
	}{
		{"bp", actBpList},
		{"bp add 10", actBpAdd},
		{"bp rem 10", actBpRem},
		{"bp true", actBpEnable},
		{"bp false", actBpEnable},
	}
	for _, c := range cases {
		got := parseLine(c.line)
		if got.act != c.want {
			t.Errorf("parseLine(%q).act = %v, want %v", c.line, got.act, c.want)
		}
	}
}

func TestParseLineBpAddCapturesNumber(t *testing.T) {
	cmd := parseLine("bp add 42")
	if len(cmd.nums) != 1 || cmd.nums[0] != 42 {
		t.Errorf("nums = %v, want [42]", cmd.nums)
	}
}

func TestParseLineRegWrite(t *testing.T) {
	cmd := parseLine("reg write 3 4242")
	if cmd.act != actRegWrite {
		t.Fatalf("act = %v, want actRegWrite", cmd.act)
	}
	if len(cmd.nums) != 2 || cmd.nums[0] != 3 || cmd.nums[1] != 4242 {
		t.Errorf("nums = %v, want [3 4242]", cmd.nums)
	}
}

func TestParseLineStackVariants(t *testing.T) {
	if parseLine("stack").act != actStack {
		t.Error("\"stack\" did not match actStack")
	}
	if parseLine("stack size").act != actStackSize {
		t.Error("\"stack size\" did not match actStackSize")
	}
}

func TestParseLineTraceVariants(t *testing.T) {
	cases := map[string]action{
		"trace":         actTrace,
		"trace size":    actTraceSize,
		"trace size 50": actTraceSetSize,
		"trace clear":   actTraceClear,
		"trace true":    actTraceEnable,
		"trace false":   actTraceEnable,
	}
	for line, want := range cases {
		if got := parseLine(line).act; got != want {
			t.Errorf("parseLine(%q).act = %v, want %v", line, got, want)
		}
	}
}

func TestParseLineCPAndClearAndCnt(t *testing.T) {
	if parseLine("cp").act != actCP {
		t.Error("\"cp\" did not match actCP")
	}
	if parseLine("cp write 100").act != actCPWrite {
		t.Error("\"cp write 100\" did not match actCPWrite")
	}
	if parseLine("clear").act != actClear {
		t.Error("\"clear\" did not match actClear")
	}
	if parseLine("cnt").act != actCont {
		t.Error("\"cnt\" did not match actCont")
	}
}

func TestParseLineUnknown(t *testing.T) {
	cases := []string{"", "frobnicate", "bp add", "bp add abc", "reg write 1"}
	for _, line := range cases {
		if got := parseLine(line).act; got != actUnknown {
			t.Errorf("parseLine(%q).act = %v, want actUnknown", line, got)
		}
	}
}
