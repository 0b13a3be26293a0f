/*
 * Synacore - Input multiplexer: scripted + interactive lines feeding `in`.
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

// LineSource supplies one blocking terminal line read at a time. The
// returned string never includes the trailing newline.
type LineSource interface {
	ReadLine() (string, error)
}

// dbgEscape is the terminal line that hands control to the debugger
// instead of being delivered to `in`.
const dbgEscape = "dbg"

// Multiplexer feeds the in opcode one ASCII byte at a time, drawing from
// a pre-loaded script until it is exhausted and then from a LineSource.
// It recognizes the debugger escape line on its own, independent of `in`,
// so it can be unit tested without a running engine.
type Multiplexer struct {
	script []string
	queue  []byte
	term   LineSource

	// onDebugEscape is invoked whenever a terminal line equal to "dbg" is
	// read. It must not return until the debugger session is done; the
	// multiplexer then reads a fresh line to replace the swallowed one.
	onDebugEscape func() error
}

// NewMultiplexer builds a Multiplexer. scriptLines are consumed in order
// before any terminal read happens. term may be nil if no interactive
// input is expected (a script-only run); onDebugEscape may be nil to
// disable the debugger escape entirely.
func NewMultiplexer(scriptLines []string, term LineSource, onDebugEscape func() error) *Multiplexer {
	return &Multiplexer{
		script:        append([]string(nil), scriptLines...),
		term:          term,
		onDebugEscape: onDebugEscape,
	}
}

// NextByte implements InputSource.
func (m *Multiplexer) NextByte() (byte, error) {
	for len(m.queue) == 0 {
		if err := m.fill(); err != nil {
			return 0, err
		}
	}
	b := m.queue[0]
	m.queue = m.queue[1:]
	return b, nil
}

// fill obtains the next whole line and enqueues its bytes, including the
// terminating newline. Scripted lines are never treated as the debugger
// escape — only a literal interactive "dbg" line triggers it.
func (m *Multiplexer) fill() error {
	if len(m.script) > 0 {
		line := m.script[0]
		m.script = m.script[1:]
		m.enqueue(line)
		return nil
	}

	if m.term == nil {
		return newFault(EmptyInputBuffer, 0)
	}
	line, err := m.term.ReadLine()
	if err != nil {
		return newInputFault(err)
	}

	if line == dbgEscape {
		if m.onDebugEscape != nil {
			if err := m.onDebugEscape(); err != nil {
				return err
			}
		}
		return m.fill()
	}

	m.enqueue(line)
	return nil
}

func (m *Multiplexer) enqueue(line string) {
	m.queue = append(m.queue, []byte(line)...)
	m.queue = append(m.queue, '\n')
}
