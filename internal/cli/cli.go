// Package cli provides command-line interface functionality for neartest.
package cli

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/AndreyAkinshin/neartest/internal/config"
	"github.com/AndreyAkinshin/neartest/internal/errors"
	"github.com/AndreyAkinshin/neartest/internal/output"
	"github.com/AndreyAkinshin/neartest/pkg/neartest"
)

// Version is set at build time.
var Version = "dev"

// wantsHelp returns true if args contain -h or --help before any -- separator.
func wantsHelp(args []string) bool {
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			return true
		}
		if arg == "--" {
			return false
		}
	}
	return false
}

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	return run(args, output.New())
}

// run is Run with an explicit output writer.
func run(args []string, w *output.Writer) int {
	if len(args) == 0 {
		printUsage(w)
		return errors.ExitSuccess
	}

	switch args[0] {
	case "-h", "--help", "help":
		printUsage(w)
		return errors.ExitSuccess
	case "--version", "version":
		w.Println("neartest %s", Version)
		return errors.ExitSuccess
	}

	opts, remaining, err := parseGlobalFlags(args)
	if err != nil {
		w.ErrorPrefix("%v", err)
		return errors.ExitConfigError
	}
	applyGlobalOptions(w, opts)

	if len(remaining) == 0 {
		printUsage(w)
		return errors.ExitSuccess
	}
	cmd := remaining[0]
	cmdArgs := remaining[1:]

	switch cmd {
	case "check":
		err = cmdCheck(w, cmdArgs, opts)
	case "validate":
		err = cmdValidate(w, cmdArgs, opts)
	case "config":
		err = cmdConfig(w, cmdArgs, opts)
	case "help":
		printUsage(w)
		return errors.ExitSuccess
	case "version":
		w.Println("neartest %s", Version)
		return errors.ExitSuccess
	default:
		w.ErrorPrefix("unknown command %q", cmd)
		w.Hint("Run 'neartest help' for usage.")
		return errors.ExitConfigError
	}

	return report(w, err)
}

// report prints err (unless it is a plain check failure, whose diagnostics
// have already been written) and maps it to an exit code.
func report(w *output.Writer, err error) int {
	if err != nil && !stderrors.Is(err, neartest.ErrTestFailed) {
		w.ErrorPrefix("%v", err)
	}
	return errors.GetExitCode(err)
}

// GlobalOptions holds parsed global flags.
type GlobalOptions struct {
	Quiet      bool
	Verbose    bool
	NoColor    bool
	ConfigPath string
}

// parseGlobalFlags manually parses global flags from arguments.
//
// Manual parsing is used instead of stdlib flag package because:
// - Flags can appear anywhere in the argument list, not just before the command
// - Command flags (--tolerance, --locations) must pass through untouched
// - Custom error messages with usage hints are needed
func parseGlobalFlags(args []string) (*GlobalOptions, []string, error) {
	opts := &GlobalOptions{}
	var remaining []string

	i := 0
	for i < len(args) {
		arg := args[i]

		switch {
		case arg == "-q" || arg == "--quiet":
			opts.Quiet = true
			i++
		case arg == "-v" || arg == "--verbose":
			opts.Verbose = true
			i++
		case arg == "--no-color":
			opts.NoColor = true
			i++
		case arg == "--config":
			if i+1 >= len(args) {
				return nil, nil, fmt.Errorf("--config requires a value")
			}
			opts.ConfigPath = args[i+1]
			i += 2
		case strings.HasPrefix(arg, "--config="):
			opts.ConfigPath = strings.TrimPrefix(arg, "--config=")
			if opts.ConfigPath == "" {
				return nil, nil, fmt.Errorf("--config requires a value")
			}
			i++
		case arg == "--":
			remaining = append(remaining, args[i:]...)
			i = len(args)
		default:
			remaining = append(remaining, arg)
			i++
		}
	}

	if opts.Quiet && opts.Verbose {
		return nil, nil, fmt.Errorf("--quiet and --verbose are mutually exclusive")
	}

	return opts, remaining, nil
}

// applyGlobalOptions configures the output writer from global flags.
func applyGlobalOptions(w *output.Writer, opts *GlobalOptions) {
	w.SetQuiet(opts.Quiet)
	w.SetVerbose(opts.Verbose)
	if opts.NoColor {
		w.SetColor(false)
	}
}

func printUsage(w *output.Writer) {
	w.HelpTitle("neartest - numeric near-equality checks for test fixtures")

	w.HelpSection("Usage:")
	w.HelpUsage("neartest [global options] <command> [args]")

	w.HelpSection("Commands:")
	w.HelpCommand("check <actual> [paths...]", "Compare an actual JSON document against fixtures", 26)
	w.HelpCommand("validate [paths...]", "Validate fixture files against the fixture schema", 26)
	w.HelpCommand("config", "Print the effective configuration", 26)
	w.HelpCommand("version", "Print the version", 26)
	w.HelpCommand("help", "Show this help", 26)

	w.HelpSection("Global Options:")
	w.HelpFlag("-q, --quiet", "Only print failures and errors", 16)
	w.HelpFlag("-v, --verbose", "Print debug output", 16)
	w.HelpFlag("--config <path>", "Configuration file (default: "+config.DefaultFileName+")", 16)
	w.HelpFlag("--no-color", "Disable coloured output", 16)

	w.HelpSection("Examples:")
	w.HelpExample("neartest check out/result.json", "Check against every fixture in the fixtures directory")
	w.HelpExample("neartest check out/result.json fixtures/energy.json --tolerance 1e-6", "Check one fixture with a looser default tolerance")
	w.HelpExample("neartest validate fixtures", "Validate every fixture file")
}

func printCheckUsage(w *output.Writer) {
	w.HelpTitle("neartest check - compare results against fixtures")

	w.HelpSection("Usage:")
	w.HelpUsage("neartest check <actual.json> [fixture-file|dir ...] [flags]")

	w.HelpSection("Flags:")
	w.HelpFlag("--tolerance <x>", "Default absolute tolerance for fixtures without their own", 16)
	w.HelpFlag("--locations", "Report the index of the first mismatching element", 16)

	w.HelpSection("Exit Codes:")
	w.HelpCommand("0", "Every fixture passed", 2)
	w.HelpCommand("1", "At least one fixture failed", 2)
	w.HelpCommand("2", "Configuration or usage error", 2)
	w.HelpCommand("3", "Unreadable or invalid input", 2)
}

func printValidateUsage(w *output.Writer) {
	w.HelpTitle("neartest validate - check fixture files against the schema")

	w.HelpSection("Usage:")
	w.HelpUsage("neartest validate [fixture-file|dir ...]")
	w.Println("")
	w.Hint("  Without arguments, the configured fixtures directory is validated.")
}

func printConfigUsage(w *output.Writer) {
	w.HelpTitle("neartest config - print the effective configuration")

	w.HelpSection("Usage:")
	w.HelpUsage("neartest [--config <path>] config")
}
