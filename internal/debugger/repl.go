/*
 * Synacore - Interactive REPL loop for the debugger.
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

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/peterh/liner"
)

// commandNames feeds the liner completer; kept in sync with the leading
// literal of each rule in the grammar table.
var commandNames = []string{
	"bp", "reg", "stack", "trace", "cp", "clear", "cnt",
}

// Run drives an interactive REPL against s until the operator types cnt
// or aborts with Ctrl-C/EOF. It is the onDebugEscape callback handed to
// vm.Multiplexer and doubles as the vm.BreakHook for Engine.Run.
func (s *Session) Run() error {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(partial string) []string {
		matches := make([]string, 0)
		for _, name := range commandNames {
			if len(partial) <= len(name) && name[:len(partial)] == partial {
				matches = append(matches, name)
			}
		}
		return matches
	})

	fmt.Fprintln(s.Out, "* interactive debugger")
	defer fmt.Fprintln(s.Out, "* resuming execution")

	for {
		input, err := line.Prompt("synacore> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				return nil
			}
			slog.Error("error reading debugger line", "error", err)
			return err
		}
		line.AppendHistory(input)
		if s.Execute(input) {
			return nil
		}
	}
}
