/*
 * Synacore - Main process.
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

package main

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"strings"

	getopt "github.com/pborman/getopt/v2"

	"github.com/rcornwell/synacore/internal/debugger"
	"github.com/rcornwell/synacore/internal/machineconfig"
	"github.com/rcornwell/synacore/internal/synacorlog"
	"github.com/rcornwell/synacore/internal/vm"
)

var Logger *slog.Logger

// stdinSource adapts bufio.Reader to vm.LineSource, stripping the
// trailing newline that ReadString leaves on each line.
type stdinSource struct {
	reader *bufio.Reader
}

func (s *stdinSource) ReadLine() (string, error) {
	line, err := s.reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func main() {
	optConfig := getopt.StringLong("config", 'c', "", "Configuration file")
	optScript := getopt.StringLong("script", 's', "", "Script file of input lines")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optDebug := getopt.BoolLong("debug", 'd', "Start paused in the debugger")
	optTraceSize := getopt.IntLong("trace-size", 't', 1024, "Trace ring capacity")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	args := getopt.Args()
	if len(args) != 1 {
		Logger, _ = newLogger("", false)
		slog.SetDefault(Logger)
		Logger.Error("usage: synacore [options] <program.bin>")
		os.Exit(1)
	}

	var err error
	Logger, err = newLogger(*optLogFile, *optDebug)
	if err != nil {
		os.Exit(1)
	}
	slog.SetDefault(Logger)

	cfg := &machineconfig.Config{TraceSize: *optTraceSize}
	if *optConfig != "" {
		cfg, err = machineconfig.Load(*optConfig)
		if err != nil {
			Logger.Error("loading configuration", "error", err)
			os.Exit(1)
		}
		if cfg.TraceSize == 0 {
			cfg.TraceSize = *optTraceSize
		}
	}

	scriptPath := *optScript
	if scriptPath == "" {
		scriptPath = cfg.Script
	}
	var script []string
	if scriptPath != "" {
		script, err = loadScript(scriptPath)
		if err != nil {
			Logger.Error("loading script", "error", err)
			os.Exit(1)
		}
	}

	image, err := os.ReadFile(args[0])
	if err != nil {
		Logger.Error("reading program image", "error", err)
		os.Exit(1)
	}
	mem, err := vm.LoadProgram(image)
	if err != nil {
		Logger.Error("loading program", "error", err)
		os.Exit(1)
	}

	engine := vm.NewEngine(mem, os.Stdout, nil, Logger)
	engine.Trace.Resize(cfg.TraceSize)
	for _, addr := range cfg.Breakpoints {
		engine.Breakpoints.Add(vm.Word(addr))
	}
	if len(cfg.Breakpoints) > 0 {
		engine.Breakpoints.SetEnabled(true)
	}

	session := &debugger.Session{Engine: engine, Out: os.Stdout}
	term := &stdinSource{reader: bufio.NewReader(os.Stdin)}
	engine.In = vm.NewMultiplexer(script, term, session.Run)

	onBreak := vm.BreakHook(func(e *vm.Engine) error {
		return session.Run()
	})

	if *optDebug {
		if err := session.Run(); err != nil {
			Logger.Error("debugger", "error", err)
			os.Exit(1)
		}
	}

	if err := engine.Run(onBreak); err != nil {
		Logger.Error("fatal trap", "error", err)
		os.Exit(1)
	}
}

func newLogger(logFile string, debug bool) (*slog.Logger, error) {
	// file stays a nil io.Writer (not a typed *os.File nil) when no log
	// file was requested, so Handler's nil check in synacorlog works.
	var file io.Writer
	if logFile != "" {
		f, err := os.Create(logFile)
		if err != nil {
			return nil, err
		}
		file = f
	}
	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelInfo)
	handler := synacorlog.NewHandler(file, &slog.HandlerOptions{Level: programLevel}, debug)
	return slog.New(handler), nil
}

func loadScript(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil, nil
	}
	return lines, nil
}
