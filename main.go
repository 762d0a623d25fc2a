//
// Copyright 2025 apstndb
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package main is the command line front end of the simulation.
// It resolves the simulation parameters from the command line and reports them.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/apstndb/simargs/internal/parser"
	"github.com/apstndb/simargs/internal/parser/cmdline"
	"github.com/apstndb/simargs/internal/simparam"
)

const (
	programName = "simargs"
	logLevelEnv = "SIMARGS_LOG_LEVEL"
)

var logLevelParser = parser.NewEnumParser(map[string]slog.Level{
	"DEBUG": slog.LevelDebug,
	"INFO":  slog.LevelInfo,
	"WARN":  slog.LevelWarn,
	"ERROR": slog.LevelError,
})

func main() {
	if err := run(os.Args, os.Stdout, os.Stderr); err != nil {
		var exitCodeErr *ExitCodeError
		if !errors.As(err, &exitCodeErr) {
			fmt.Fprintf(os.Stderr, "%s: %v\n", programName, err)
		}
		os.Exit(GetExitCode(err))
	}
}

// run is main without the process exit, so that it can be tested.
func run(args []string, stdout, stderr io.Writer) error {
	logger, err := newLogger(stderr, os.Getenv(logLevelEnv))
	if err != nil {
		fmt.Fprintf(stderr, "%s: invalid %s: %v\n", programName, logLevelEnv, err)
		return NewExitCodeError(exitCodeError)
	}

	params := simparam.Default()

	d := cmdline.New(
		cmdline.WithProgramName(programName),
		cmdline.WithOutput(stdout, stderr),
		cmdline.WithHelp(simparam.ShortHelp, simparam.DetailedHelp),
		cmdline.WithLogger(logger),
	)
	if err := simparam.Bind(d, &params); err != nil {
		return fmt.Errorf("failed to set up options: %w", err)
	}

	err = d.Parse(args)
	switch {
	case errors.Is(err, cmdline.ErrHelp):
		return nil
	case err != nil:
		d.Report(args, err)
		return NewExitCodeError(cmdline.ExitCode(err))
	}

	if err := params.Validate(); err != nil {
		d.Report(args, err)
		return NewExitCodeError(exitCodeError)
	}

	logger.Debug("parameters resolved", "params", params)

	if err := yaml.NewEncoder(stdout).Encode(params); err != nil {
		return fmt.Errorf("failed to write parameters: %w", err)
	}
	return nil
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	lvl := slog.LevelWarn
	if level != "" {
		var err error
		if lvl, err = logLevelParser.ParseAndValidate(level); err != nil {
			return nil, err
		}
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
