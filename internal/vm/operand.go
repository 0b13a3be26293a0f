/*
 * Synacore - Operand codec: classify and resolve a raw cell.
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

// classify reports whether a raw cell is a register reference and, if so,
// which register index it names. invalid is set for cells >= RegLimit.
func classify(cell Word) (isReg bool, idx int, invalid bool) {
	switch {
	case cell < RegBase:
		return false, 0, false
	case cell < RegLimit:
		return true, int(cell - RegBase), false
	default:
		return false, 0, true
	}
}

// fetch reads the cell at cp, advances cp by one, and bounds-checks the
// read against the architectural memory limit.
func (e *Engine) fetch() (Word, error) {
	if e.CP >= MemSize {
		return 0, newFault(MemoryAccessViolation, int(e.CP))
	}
	v := e.Mem[e.CP]
	e.CP++
	return v, nil
}

// resolveValue fetches the next cell and dereferences it if it names a
// register, emitting a Value trace token either way.
func (e *Engine) resolveValue() (Word, error) {
	cell, err := e.fetch()
	if err != nil {
		return 0, err
	}
	isReg, idx, invalid := classify(cell)
	if invalid {
		return 0, newFault(InvalidNumber, int(cell))
	}
	if isReg {
		v := e.Reg[idx]
		e.emitValue(v, true, idx)
		return v, nil
	}
	e.emitValue(cell, false, 0)
	return cell, nil
}

// resolveAddress resolves a jump/call target the same way as any other
// operand, accepting either a literal address or a register reference.
func (e *Engine) resolveAddress() (Word, error) {
	return e.resolveValue()
}

// resolveRegisterIdx fetches the next cell and requires it to name a
// register, failing with RegisterAccessViolation otherwise.
func (e *Engine) resolveRegisterIdx() (int, error) {
	cell, err := e.fetch()
	if err != nil {
		return 0, err
	}
	isReg, idx, invalid := classify(cell)
	if invalid || !isReg {
		return 0, newFault(RegisterAccessViolation, int(cell))
	}
	e.emitRegIdx(idx)
	return idx, nil
}
