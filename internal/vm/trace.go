/*
 * Synacore - Instruction trace recorder and formatter.
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

import "strings"

// tokenKind tags what a trace token carries.
type tokenKind int

const (
	tokAddress tokenKind = iota
	tokOpcode
	tokValue
	tokRegIdx
	tokComment
)

// token is one tagged piece of a single instruction's trace record.
type token struct {
	kind    tokenKind
	addr    Word
	op      Word
	value   Word
	hasReg  bool
	regIdx  int
	comment string
}

// defaultTraceSize is the ring capacity used when none is configured.
const defaultTraceSize = 1024

// Trace accumulates the tokens of the instruction currently executing and
// holds a bounded ring of already-formatted lines.
type Trace struct {
	enabled bool
	limit   int
	cur     []token
	lines   []string
}

// NewTrace builds a Trace with the given ring capacity. A non-positive
// limit falls back to defaultTraceSize.
func NewTrace(limit int) *Trace {
	if limit <= 0 {
		limit = defaultTraceSize
	}
	return &Trace{enabled: true, limit: limit}
}

func (t *Trace) Enabled() bool       { return t.enabled }
func (t *Trace) SetEnabled(on bool)  { t.enabled = on }
func (t *Trace) Len() int            { return len(t.lines) }
func (t *Trace) Lines() []string     { return t.lines }
func (t *Trace) Clear()              { t.lines = nil }

// Resize changes the ring capacity, trimming the oldest lines if the new
// limit is smaller than the current contents.
func (t *Trace) Resize(limit int) {
	if limit <= 0 {
		limit = defaultTraceSize
	}
	t.limit = limit
	if len(t.lines) > t.limit {
		t.lines = t.lines[len(t.lines)-t.limit:]
	}
}

func (t *Trace) push(tok token) {
	if !t.enabled {
		return
	}
	t.cur = append(t.cur, tok)
}

// finish formats the tokens accumulated for the instruction that just
// completed and appends the formatted line to the ring, evicting the
// oldest line if the ring is full. It always clears the token buffer,
// even when tracing is disabled.
func (t *Trace) finish() {
	if t.enabled {
		line := formatTrace(t.cur)
		t.lines = append(t.lines, line)
		if len(t.lines) > t.limit {
			t.lines = t.lines[len(t.lines)-t.limit:]
		}
	}
	t.cur = t.cur[:0]
}

const (
	addressColumn = 9
	opcodeColumn  = 7
)

var mnemonics = [...]string{
	"halt", "set", "push", "pop", "eq", "gt", "jmp", "jt", "jf", "add",
	"mult", "mod", "and", "or", "not", "rmem", "wmem", "call", "ret",
	"out", "in", "noop",
}

func mnemonic(op Word) string {
	if int(op) < len(mnemonics) {
		return mnemonics[op]
	}
	return "???"
}

func formatTrace(tokens []token) string {
	var instr strings.Builder
	var comments strings.Builder

	first := true
	for _, tok := range tokens {
		switch tok.kind {
		case tokAddress:
			writeSpaced(&instr, first)
			padRight(&instr, wordString(uint64(tok.addr)), addressColumn)
		case tokOpcode:
			writeSpaced(&instr, first)
			padLeft(&instr, mnemonic(tok.op), opcodeColumn)
		case tokValue:
			writeSpaced(&instr, first)
			text := ""
			if tok.hasReg {
				text = regRef(tok.regIdx)
			}
			text += wordString(uint64(tok.value))
			padRight(&instr, text, addressColumn)
		case tokRegIdx:
			writeSpaced(&instr, first)
			padRight(&instr, regRef(tok.regIdx), addressColumn)
		case tokComment:
			if comments.Len() > 0 {
				comments.WriteString(", ")
			}
			comments.WriteString(tok.comment)
		}
		if tok.kind != tokComment {
			first = false
		}
	}

	line := instr.String()
	if comments.Len() > 0 {
		line += "; " + comments.String()
	}
	return line
}

func writeSpaced(b *strings.Builder, first bool) {
	if !first {
		b.WriteByte(' ')
	}
}

func regRef(idx int) string {
	return "[" + wordString(uint64(idx)) + "]"
}

func padRight(b *strings.Builder, s string, width int) {
	b.WriteString(s)
	for i := len(s); i < width; i++ {
		b.WriteByte(' ')
	}
}

func padLeft(b *strings.Builder, s string, width int) {
	for i := len(s); i < width; i++ {
		b.WriteByte(' ')
	}
	b.WriteString(s)
}

func wordString(v uint64) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}
