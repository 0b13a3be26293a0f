/*
 * Synacore - Machine configuration file parser.
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

// Package machineconfig parses the optional startup configuration file:
// trace ring size, a default breakpoint list, and a script path to feed
// the input multiplexer before the terminal takes over.
//
// Format:
//
//	# comment, rest of line ignored
//	tracesize <n>
//	breakpoint <address>
//	script <path>
package machineconfig

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
)

// Config holds the directives collected from a configuration file.
type Config struct {
	TraceSize   int
	Breakpoints []uint16
	Script      string
}

// directiveLine is a cursor over one line of the file, mirroring the
// skip-space / end-of-line idiom used across the command parsers.
type directiveLine struct {
	line string
	pos  int
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	cfg := &Config{TraceSize: 0}
	reader := bufio.NewReader(file)
	lineNumber := 0
	for {
		raw, err := reader.ReadString('\n')
		lineNumber++
		if len(raw) == 0 && err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		dl := directiveLine{line: raw}
		if perr := dl.apply(cfg); perr != nil {
			return nil, fmt.Errorf("line %d: %w", lineNumber, perr)
		}
	}
	return cfg, nil
}

func (l *directiveLine) apply(cfg *Config) error {
	name := l.word()
	if name == "" {
		return nil
	}
	switch strings.ToLower(name) {
	case "tracesize":
		n, err := l.number()
		if err != nil {
			return fmt.Errorf("tracesize requires a number: %w", err)
		}
		cfg.TraceSize = n
	case "breakpoint":
		n, err := l.number()
		if err != nil {
			return fmt.Errorf("breakpoint requires a number: %w", err)
		}
		cfg.Breakpoints = append(cfg.Breakpoints, uint16(n))
	case "script":
		path := l.rest()
		if path == "" {
			return errors.New("script requires a path")
		}
		cfg.Script = path
	default:
		return fmt.Errorf("unknown directive: %s", name)
	}
	return nil
}

func (l *directiveLine) skipSpace() {
	for l.pos < len(l.line) && unicode.IsSpace(rune(l.line[l.pos])) {
		l.pos++
	}
}

func (l *directiveLine) isEOL() bool {
	if l.pos >= len(l.line) {
		return true
	}
	return l.line[l.pos] == '#'
}

// word reads one alphabetic token, or "" if the line is blank/a comment.
func (l *directiveLine) word() string {
	l.skipSpace()
	if l.isEOL() {
		return ""
	}
	start := l.pos
	for l.pos < len(l.line) && unicode.IsLetter(rune(l.line[l.pos])) {
		l.pos++
	}
	return l.line[start:l.pos]
}

// number reads one unsigned decimal token following the directive name.
func (l *directiveLine) number() (int, error) {
	l.skipSpace()
	start := l.pos
	for l.pos < len(l.line) && unicode.IsDigit(rune(l.line[l.pos])) {
		l.pos++
	}
	if start == l.pos {
		return 0, errors.New("expected a number")
	}
	n, err := strconv.Atoi(l.line[start:l.pos])
	if err != nil {
		return 0, err
	}
	return n, nil
}

// rest returns the remainder of the line, trimmed of surrounding space
// and any trailing comment.
func (l *directiveLine) rest() string {
	l.skipSpace()
	if l.isEOL() {
		return ""
	}
	text := l.line[l.pos:]
	if idx := strings.IndexByte(text, '#'); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}
