/*
 * Synacore - Machine configuration parser tests.
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

package machineconfig

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "synacore.cfg")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadParsesAllDirectives(t *testing.T) {
	path := writeConfig(t, "# a comment line\n"+
		"tracesize 2048\n"+
		"breakpoint 10\n"+
		"breakpoint 20\n"+
		"script testdata/walkthrough.txt\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TraceSize != 2048 {
		t.Errorf("TraceSize = %d, want 2048", cfg.TraceSize)
	}
	want := []uint16{10, 20}
	if !reflect.DeepEqual(cfg.Breakpoints, want) {
		t.Errorf("Breakpoints = %v, want %v", cfg.Breakpoints, want)
	}
	if cfg.Script != "testdata/walkthrough.txt" {
		t.Errorf("Script = %q, want %q", cfg.Script, "testdata/walkthrough.txt")
	}
}

func TestLoadIgnoresBlankAndCommentOnlyLines(t *testing.T) {
	path := writeConfig(t, "\n   \n# just a comment\ntracesize 10\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TraceSize != 10 {
		t.Errorf("TraceSize = %d, want 10", cfg.TraceSize)
	}
}

func TestLoadRejectsUnknownDirective(t *testing.T) {
	path := writeConfig(t, "bogus 1\n")
	if _, err := Load(path); err == nil {
		t.Fatal("Load succeeded on an unknown directive, want error")
	}
}

func TestLoadRejectsMissingNumber(t *testing.T) {
	path := writeConfig(t, "tracesize\n")
	if _, err := Load(path); err == nil {
		t.Fatal("Load succeeded on tracesize with no argument, want error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.cfg")); err == nil {
		t.Fatal("Load succeeded on a nonexistent file, want error")
	}
}
