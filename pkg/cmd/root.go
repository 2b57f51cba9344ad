// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package cmd wires up the lambda CLI: flag registration, terminal-action
// dispatch, and the glue between pkg/source, pkg/syntax, pkg/ast and
// pkg/types that the three terminal actions are built from.
package cmd

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// rootCmd represents the lambda command. It has no subcommands: every
// invocation is one of the three terminal actions below, chosen by flag.
var rootCmd = &cobra.Command{
	Use:   "lambda",
	Short: "Parse, De-Bruijn-convert and type-check an untyped lambda-calculus program read from stdin.",
	Long: `lambda reads an untyped lambda-calculus program from standard input, parses
it, converts it to De Bruijn form, and either prints its canonical textual
form (--unparse, the default) or the types inferred for it (--type).`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "verbose") {
			setupLogging()
		}

		action, err := selectAction(cmd)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		run(action)
	},
}

// setupLogging raises logrus to debug level and colorises its output when
// stderr is attached to a terminal, mirroring how a --verbose flag is
// wired up for any other command in this toolbox.
func setupLogging() {
	log.SetLevel(log.DebugLevel)
	log.SetOutput(os.Stderr)

	isTerminal := term.IsTerminal(int(os.Stderr.Fd()))
	log.SetFormatter(&log.TextFormatter{ForceColors: isTerminal, DisableColors: !isTerminal})
}

// action identifies which of the three mutually-exclusive terminal
// actions a run performs.
type action int

const (
	actionUnparse action = iota
	actionType
	actionTestSourceRead
)

// selectAction implements §4.5: at most one of --test-source-read,
// --unparse and --type may be explicitly selected; selecting more than
// one is a fatal CLI error. With none explicitly selected, --unparse is
// the default.
func selectAction(cmd *cobra.Command) (action, error) {
	type candidate struct {
		name   string
		action action
	}

	candidates := []candidate{
		{"test-source-read", actionTestSourceRead},
		{"unparse", actionUnparse},
		{"type", actionType},
	}

	var selected []candidate

	for _, c := range candidates {
		if cmd.Flags().Lookup(c.name).Changed && GetFlag(cmd, c.name) {
			selected = append(selected, c)
		}
	}

	if len(selected) > 1 {
		names := make([]string, len(selected))
		for i, c := range selected {
			names[i] = "--" + c.name
		}

		return 0, fmt.Errorf("--test-source-read means only one of %s can be selected: conflicting actions", strings.Join(names, ", "))
	}

	if len(selected) == 1 {
		return selected[0].action, nil
	}

	return actionUnparse, nil
}

// rewriteNoFlags rewrites the `--no-<name>` convenience syntax (explicit
// disable of a boolean flag) into the form pflag understands natively,
// before cobra ever sees the argument list.
func rewriteNoFlags(args []string) []string {
	out := make([]string, 0, len(args))

	for _, a := range args {
		if strings.HasPrefix(a, "--no-") && !strings.Contains(a, "=") {
			out = append(out, "--"+strings.TrimPrefix(a, "--no-")+"=false")
			continue
		}

		out = append(out, a)
	}

	return out
}

// Execute runs the root command against the process's own argument list.
// It is called once by main.main.
func Execute() {
	rootCmd.SetArgs(rewriteNoFlags(os.Args[1:]))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "unrecognized option: %s\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Bool("test-source-read", false, "echo stdin verbatim, prefixed with its byte length")
	rootCmd.Flags().Bool("unparse", false, "print the canonical textual form of each top-level expression (default)")
	rootCmd.Flags().Bool("type", false, "print the inferred type of each top-level expression")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
}
