/*
 * Synacore - Opcode semantics.
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

const (
	opHalt Word = iota
	opSet
	opPush
	opPop
	opEq
	opGt
	opJmp
	opJt
	opJf
	opAdd
	opMult
	opMod
	opAnd
	opOr
	opNot
	opRmem
	opWmem
	opCall
	opRet
	opOut
	opIn
	opNoop
)

func (e *Engine) dispatch(op Word) error {
	switch op {
	case opHalt:
		e.Running = false
		return nil
	case opSet:
		return e.opSet()
	case opPush:
		return e.opPush()
	case opPop:
		return e.opPop()
	case opEq:
		return e.opEq()
	case opGt:
		return e.opGt()
	case opJmp:
		return e.opJmp()
	case opJt:
		return e.opJt()
	case opJf:
		return e.opJf()
	case opAdd:
		return e.opAdd()
	case opMult:
		return e.opMult()
	case opMod:
		return e.opMod()
	case opAnd:
		return e.opAnd()
	case opOr:
		return e.opOr()
	case opNot:
		return e.opNot()
	case opRmem:
		return e.opRmem()
	case opWmem:
		return e.opWmem()
	case opCall:
		return e.opCall()
	case opRet:
		return e.opRet()
	case opOut:
		return e.opOut()
	case opIn:
		return e.opIn()
	case opNoop:
		return nil
	default:
		return newFault(UnexpectedOpcode, int(op))
	}
}

// writeRegister commits a register write and records its comment token.
func (e *Engine) writeRegister(idx int, value Word) {
	e.Reg[idx] = value
	e.emitComment(fmt.Sprintf("reg[%d] = %d", idx, value))
}

// unaryRegArg decodes a (destination register, value) operand pair, the
// shape shared by set, not, rmem.
func (e *Engine) unaryRegArg() (int, Word, error) {
	a, err := e.resolveRegisterIdx()
	if err != nil {
		return 0, 0, err
	}
	b, err := e.resolveValue()
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

// binaryRegArgs decodes a (destination register, value, value) operand
// triple, the shape shared by eq, gt, add, mult, mod, and, or.
func (e *Engine) binaryRegArgs() (int, Word, Word, error) {
	a, b, err := e.unaryRegArg()
	if err != nil {
		return 0, 0, 0, err
	}
	c, err := e.resolveValue()
	if err != nil {
		return 0, 0, 0, err
	}
	return a, b, c, nil
}

func (e *Engine) opSet() error {
	a, b, err := e.unaryRegArg()
	if err != nil {
		return err
	}
	e.writeRegister(a, b)
	return nil
}

func (e *Engine) opPush() error {
	b, err := e.resolveValue()
	if err != nil {
		return err
	}
	e.Stack = append(e.Stack, b)
	return nil
}

func (e *Engine) opPop() error {
	a, err := e.resolveRegisterIdx()
	if err != nil {
		return err
	}
	if len(e.Stack) == 0 {
		return newFault(PopOnEmptyStack, 0)
	}
	top := len(e.Stack) - 1
	value := e.Stack[top]
	e.Stack = e.Stack[:top]
	e.writeRegister(a, value)
	return nil
}

func (e *Engine) opEq() error {
	a, b, c, err := e.binaryRegArgs()
	if err != nil {
		return err
	}
	e.writeRegister(a, boolWord(b == c))
	return nil
}

func (e *Engine) opGt() error {
	a, b, c, err := e.binaryRegArgs()
	if err != nil {
		return err
	}
	e.writeRegister(a, boolWord(b > c))
	return nil
}

func (e *Engine) opJmp() error {
	addr, err := e.resolveAddress()
	if err != nil {
		return err
	}
	e.CP = addr
	return nil
}

func (e *Engine) opJt() error {
	b, err := e.resolveValue()
	if err != nil {
		return err
	}
	addr, err := e.resolveAddress()
	if err != nil {
		return err
	}
	if b != 0 {
		e.CP = addr
	}
	return nil
}

func (e *Engine) opJf() error {
	b, err := e.resolveValue()
	if err != nil {
		return err
	}
	addr, err := e.resolveAddress()
	if err != nil {
		return err
	}
	if b == 0 {
		e.CP = addr
	}
	return nil
}

// regModulus is the modulus for add/mult, equal to RegBase, the first
// non-literal cell value.
const regModulus = uint32(RegBase)

func (e *Engine) opAdd() error {
	a, b, c, err := e.binaryRegArgs()
	if err != nil {
		return err
	}
	// b and c are both <= 32767, so the sum fits in 16 bits (max 65534)
	// before the modulus is applied; no wider intermediate is needed here,
	// unlike mult.
	e.writeRegister(a, Word((uint32(b)+uint32(c))%regModulus))
	return nil
}

func (e *Engine) opMult() error {
	a, b, c, err := e.binaryRegArgs()
	if err != nil {
		return err
	}
	e.writeRegister(a, Word((uint32(b)*uint32(c))%regModulus))
	return nil
}

func (e *Engine) opMod() error {
	a, b, c, err := e.binaryRegArgs()
	if err != nil {
		return err
	}
	if c == 0 {
		return newFault(DivideByZero, int(c))
	}
	e.writeRegister(a, b%c)
	return nil
}

func (e *Engine) opAnd() error {
	a, b, c, err := e.binaryRegArgs()
	if err != nil {
		return err
	}
	e.writeRegister(a, b&c)
	return nil
}

func (e *Engine) opOr() error {
	a, b, c, err := e.binaryRegArgs()
	if err != nil {
		return err
	}
	e.writeRegister(a, b|c)
	return nil
}

func (e *Engine) opNot() error {
	a, b, err := e.unaryRegArg()
	if err != nil {
		return err
	}
	e.writeRegister(a, (^b)&0x7FFF)
	return nil
}

// rmem/wmem addresses come back from resolveValue/resolveAddress, which
// only ever yield a literal cell (< RegBase) or a register's contents
// (invariantly <= 32767), so both are always valid memory indices.

func (e *Engine) opRmem() error {
	a, b, err := e.unaryRegArg()
	if err != nil {
		return err
	}
	e.writeRegister(a, e.Mem[b])
	return nil
}

func (e *Engine) opWmem() error {
	addr, err := e.resolveAddress()
	if err != nil {
		return err
	}
	b, err := e.resolveValue()
	if err != nil {
		return err
	}
	e.Mem[addr] = b
	return nil
}

func (e *Engine) opCall() error {
	addr, err := e.resolveAddress()
	if err != nil {
		return err
	}
	e.Stack = append(e.Stack, e.CP)
	e.CP = addr
	e.emitComment(fmt.Sprintf("jump to %d", addr))
	return nil
}

func (e *Engine) opRet() error {
	if len(e.Stack) == 0 {
		e.Running = false
		return nil
	}
	top := len(e.Stack) - 1
	addr := e.Stack[top]
	e.Stack = e.Stack[:top]
	e.CP = addr
	return nil
}

func (e *Engine) opOut() error {
	b, err := e.resolveValue()
	if err != nil {
		return err
	}
	ch := byte(b & 0xFF)
	if e.Stdout != nil {
		if _, err := e.Stdout.Write([]byte{ch}); err != nil {
			return newInputFault(err)
		}
	}
	if ch > ' ' && ch < 0x7F {
		e.emitComment(fmt.Sprintf("%q", rune(ch)))
	}
	return nil
}

func (e *Engine) opIn() error {
	a, err := e.resolveRegisterIdx()
	if err != nil {
		return err
	}
	if e.In == nil {
		return newFault(EmptyInputBuffer, 0)
	}
	b, err := e.In.NextByte()
	if err != nil {
		return newInputFault(err)
	}
	e.writeRegister(a, Word(b))
	e.emitComment(fmt.Sprintf("%q", rune(b)))
	return nil
}

func boolWord(cond bool) Word {
	if cond {
		return 1
	}
	return 0
}
