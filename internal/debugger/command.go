/*
 * Synacore - Debugger command grammar.
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

// Package debugger implements the interactive REPL: a rule-table command
// parser driving breakpoint, register, stack, trace, and code-pointer
// inspection against a running vm.Engine.
package debugger

import (
	"strconv"
	"strings"
)

// action identifies which handler a matched rule invokes.
type action int

const (
	actBpList action = iota
	actBpAdd
	actBpRem
	actBpEnable
	actRegList
	actRegWrite
	actStack
	actStackSize
	actTrace
	actTraceSize
	actTraceSetSize
	actTraceClear
	actTraceEnable
	actCP
	actCPWrite
	actClear
	actCont
	actUnknown
)

// tokKind tags one grammar primitive within a rule.
type tokKind int

const (
	tokEqualStr tokKind = iota
	tokAnyNumber
	tokAnyBool
)

type gramTok struct {
	kind tokKind
	str  string // literal text for tokEqualStr
}

func eq(s string) gramTok   { return gramTok{kind: tokEqualStr, str: s} }
var anyNumber = gramTok{kind: tokAnyNumber}
var anyBool = gramTok{kind: tokAnyBool}

type rule struct {
	toks []gramTok
	act  action
}

// rules is ordered; the first rule whose arity and tokens all match wins.
var rules = []rule{
	{toks: []gramTok{eq("bp")}, act: actBpList},
	{toks: []gramTok{eq("bp"), eq("add"), anyNumber}, act: actBpAdd},
	{toks: []gramTok{eq("bp"), eq("rem"), anyNumber}, act: actBpRem},
	{toks: []gramTok{eq("bp"), anyBool}, act: actBpEnable},
	{toks: []gramTok{eq("reg")}, act: actRegList},
	{toks: []gramTok{eq("reg"), eq("write"), anyNumber, anyNumber}, act: actRegWrite},
	{toks: []gramTok{eq("stack"), eq("size")}, act: actStackSize},
	{toks: []gramTok{eq("stack")}, act: actStack},
	{toks: []gramTok{eq("trace"), eq("size"), anyNumber}, act: actTraceSetSize},
	{toks: []gramTok{eq("trace"), eq("size")}, act: actTraceSize},
	{toks: []gramTok{eq("trace"), eq("clear")}, act: actTraceClear},
	{toks: []gramTok{eq("trace"), anyBool}, act: actTraceEnable},
	{toks: []gramTok{eq("trace")}, act: actTrace},
	{toks: []gramTok{eq("cp"), eq("write"), anyNumber}, act: actCPWrite},
	{toks: []gramTok{eq("cp")}, act: actCP},
	{toks: []gramTok{eq("clear")}, act: actClear},
	{toks: []gramTok{eq("cnt")}, act: actCont},
}

// command is a matched rule with its parsed parameters.
type command struct {
	act  action
	nums []uint64
	bool bool
}

// parseLine tokenizes line on whitespace and matches it against the rule
// table in order, returning the first rule whose arity and tokens all
// match. An unmatched line yields actUnknown.
func parseLine(line string) command {
	fields := strings.Fields(line)
	for _, r := range rules {
		if len(r.toks) != len(fields) {
			continue
		}
		cmd, ok := matchRule(r, fields)
		if ok {
			return cmd
		}
	}
	return command{act: actUnknown}
}

func matchRule(r rule, fields []string) (command, bool) {
	cmd := command{act: r.act}
	for i, tok := range r.toks {
		field := fields[i]
		switch tok.kind {
		case tokEqualStr:
			if field != tok.str {
				return command{}, false
			}
		case tokAnyNumber:
			n, err := strconv.ParseUint(field, 10, 32)
			if err != nil {
				return command{}, false
			}
			cmd.nums = append(cmd.nums, n)
		case tokAnyBool:
			switch field {
			case "true":
				cmd.bool = true
			case "false":
				cmd.bool = false
			default:
				return command{}, false
			}
		}
	}
	return cmd, true
}
