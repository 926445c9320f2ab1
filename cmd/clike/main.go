/*
File    : C-Like/cmd/clike/main.go
*/

// Command clike is the CLIKE host: it wires the lexer, parser,
// semantic analyzer, and interpreter into a `run` subcommand for
// executing `.clike` files and a `repl` subcommand for the
// interactive shell, built around spf13/cobra for flag and subcommand
// handling.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/carb0ned0/C-Like/clikeerr"
	"github.com/carb0ned0/C-Like/config"
	"github.com/carb0ned0/C-Like/interpreter"
	"github.com/carb0ned0/C-Like/parser"
	"github.com/carb0ned0/C-Like/repl"
	"github.com/carb0ned0/C-Like/sema"
	"github.com/carb0ned0/C-Like/source"
	"github.com/carb0ned0/C-Like/trace"
)

const (
	version = "v1.0.0"
	banner  = `
 ▄████▄  ██▓     ██▓ ██ ▄█▀▓█████
▒██▀ ▀█ ▓██▒    ▓██▒ ██▄█▒ ▓█   ▀
▒▓█    ▄▒██░    ▒██▒▓███▄░ ▒███
▒▓▓▄ ▄██▒██░    ░██░▓██ █▄ ▒▓█  ▄
▒ ▓███▀ ░██████▒░██░▒██▒ █▄░▒████▒
░ ░▒ ▒  ░ ▒░▓  ░░▓  ▒ ▒▒ ▓▒░░ ▒░ ░
  ░  ▒  ░ ░ ▒  ░ ▒ ░░ ░▒ ▒░ ░ ░  ░
░         ░ ░    ▒ ░░ ░░ ░    ░
░ ░         ░  ░ ░  ░  ░      ░  ░
░
`
)

var (
	redColor = color.New(color.FgRed)
)

var (
	debugFlag      bool
	scopeFlag      bool
	stackFlag      bool
	configPathFlag string
)

func main() {
	root := &cobra.Command{
		Use:     "clike",
		Short:   "CLIKE language interpreter",
		Version: version,
	}
	root.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable the debug trace channel (one record per visited AST node)")
	root.PersistentFlags().BoolVar(&scopeFlag, "scope", false, "enable the scope trace channel (one record per analyzed scope)")
	root.PersistentFlags().BoolVar(&stackFlag, "stack", false, "enable the stack trace channel (one record per call push/pop)")
	root.PersistentFlags().StringVar(&configPathFlag, "config", ".clike.yml", "path to a CLIKE config file")

	root.AddCommand(newRunCmd())
	root.AddCommand(newReplCmd())

	if err := root.Execute(); err != nil {
		redColor.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <input.clike>",
		Short: "Run a CLIKE source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFile(args[0], resolveTrace(cmd))
		},
	}
}

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive CLIKE session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := repl.New(banner, version, "clike> ", os.Stdout, resolveTrace(cmd))
			return r.Start(os.Stdout)
		},
	}
}

// resolveTrace layers the .clike.yml config underneath explicitly-set
// --debug/--scope/--stack flags: a flag the user actually passed wins
// over the config file, per config.ResolveBool.
func resolveTrace(cmd *cobra.Command) trace.Trace {
	cfg, err := config.Load(configPathFlag)
	if err != nil {
		cfg = &config.Config{}
	}
	flags := cmd.Flags()
	wt := trace.NewWriterTrace(os.Stderr)
	wt.Debug = config.ResolveBool(cfg.Debug, flags.Changed("debug"), debugFlag)
	wt.Scope = config.ResolveBool(cfg.Scope, flags.Changed("scope"), scopeFlag)
	wt.Stack = config.ResolveBool(cfg.Stack, flags.Changed("stack"), stackFlag)
	return wt
}

func runFile(path string, tr trace.Trace) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	p, err := parser.New(string(src), path, source.NewOSLoader())
	if err != nil {
		return reportDiagnostic(err)
	}
	prog, err := p.Parse()
	if err != nil {
		return reportDiagnostic(err)
	}

	if err := sema.New(tr).Analyze(prog); err != nil {
		return reportDiagnostic(err)
	}

	it := interpreter.New(os.Stdout, tr)
	if err := it.Run(prog); err != nil {
		return reportDiagnostic(err)
	}
	return nil
}

func reportDiagnostic(err error) error {
	if ce, ok := err.(*clikeerr.Error); ok {
		return fmt.Errorf("%s: %s (%s)", ce.Kind, ce.Message, ce.Pos)
	}
	return err
}
