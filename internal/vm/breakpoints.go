/*
 * Synacore - Breakpoint set checked once per fetch.
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

import "sort"

// Breakpoints is a small hash set of code-pointer addresses, checked only
// when enabled.
type Breakpoints struct {
	set     map[Word]struct{}
	enabled bool
}

func NewBreakpoints() *Breakpoints {
	return &Breakpoints{set: make(map[Word]struct{})}
}

func (b *Breakpoints) Add(addr Word)    { b.set[addr] = struct{}{} }
func (b *Breakpoints) Remove(addr Word) { delete(b.set, addr) }
func (b *Breakpoints) Has(addr Word) bool {
	_, ok := b.set[addr]
	return ok
}

func (b *Breakpoints) Enabled() bool      { return b.enabled }
func (b *Breakpoints) SetEnabled(on bool) { b.enabled = on }

// List returns the registered addresses in ascending order.
func (b *Breakpoints) List() []Word {
	out := make([]Word, 0, len(b.set))
	for addr := range b.set {
		out = append(out, addr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
