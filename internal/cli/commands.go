package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/AndreyAkinshin/neartest/internal/config"
	"github.com/AndreyAkinshin/neartest/internal/errors"
	"github.com/AndreyAkinshin/neartest/internal/fixture"
	"github.com/AndreyAkinshin/neartest/internal/output"
	"github.com/AndreyAkinshin/neartest/pkg/neartest"
)

// loadConfig loads the configuration named by --config, or the default file
// in the working directory when present, then applies NEARTEST_* environment
// overrides. Warnings are printed, and the configured colour mode is applied
// to w unless --no-color was given.
func loadConfig(w *output.Writer, opts *GlobalOptions) (*config.Config, error) {
	path := opts.ConfigPath
	var (
		cfg      *config.Config
		warnings []string
		err      error
	)
	if path != "" {
		cfg, warnings, err = config.LoadAndValidate(path)
	} else {
		path = config.DefaultFileName
		cfg, warnings, err = config.LoadOptional(path)
	}
	for _, warning := range warnings {
		w.Warning("%s: %s", path, warning)
	}
	if err != nil {
		return nil, &errors.Error{Kind: errors.KindConfig, Message: "invalid configuration", File: path, Cause: err}
	}
	if err := config.ApplyEnv(cfg); err != nil {
		return nil, &errors.Error{Kind: errors.KindConfig, Message: "invalid environment", Cause: err}
	}

	if !opts.NoColor {
		switch cfg.Color {
		case config.ColorAlways:
			w.SetColor(true)
		case config.ColorNever:
			w.SetColor(false)
		}
	}
	return cfg, nil
}

// checkFlags holds the flags accepted by the check command.
type checkFlags struct {
	tolerance *float64
	locations bool
}

// parseCheckArgs separates check flags from positional arguments.
func parseCheckArgs(args []string) (*checkFlags, []string, error) {
	flags := &checkFlags{}
	var positional []string

	i := 0
	for i < len(args) {
		arg := args[i]

		switch {
		case arg == "--locations":
			flags.locations = true
			i++
		case arg == "--tolerance":
			if i+1 >= len(args) {
				return nil, nil, errors.Config("--tolerance requires a value")
			}
			tol, err := parseTolerance(args[i+1])
			if err != nil {
				return nil, nil, err
			}
			flags.tolerance = &tol
			i += 2
		case strings.HasPrefix(arg, "--tolerance="):
			tol, err := parseTolerance(strings.TrimPrefix(arg, "--tolerance="))
			if err != nil {
				return nil, nil, err
			}
			flags.tolerance = &tol
			i++
		case arg == "--":
			positional = append(positional, args[i+1:]...)
			i = len(args)
		case strings.HasPrefix(arg, "-") && arg != "-":
			return nil, nil, errors.Configf("check: unknown flag %q", arg)
		default:
			positional = append(positional, arg)
			i++
		}
	}

	return flags, positional, nil
}

func parseTolerance(s string) (float64, error) {
	tol, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Configf("invalid --tolerance value %q\n  example: neartest check result.json --tolerance 1e-6", s)
	}
	return tol, nil
}

// cmdCheck compares an actual JSON document against fixtures.
func cmdCheck(w *output.Writer, args []string, opts *GlobalOptions) error {
	if wantsHelp(args) {
		printCheckUsage(w)
		return nil
	}

	flags, positional, err := parseCheckArgs(args)
	if err != nil {
		return err
	}
	if len(positional) == 0 {
		return errors.Config("check: actual document required\n  usage: neartest check <actual.json> [fixture-file|dir ...]")
	}

	cfg, err := loadConfig(w, opts)
	if err != nil {
		return err
	}

	tolerance := *cfg.Tolerance
	if flags.tolerance != nil {
		tolerance = *flags.tolerance
	}
	locations := cfg.Locations || flags.locations

	doc, err := readActual(positional[0])
	if os.IsNotExist(err) {
		return errors.NotFound("actual document", positional[0])
	}
	if err != nil {
		return errors.Input(positional[0], err)
	}

	paths := positional[1:]
	if len(paths) == 0 {
		paths = []string{cfg.Fixtures.Directory}
	}
	fixtures, err := fixture.LoadPaths(paths, cfg.Fixtures.Pattern)
	if err != nil {
		return &errors.Error{Kind: errors.KindInput, Message: "failed to load fixtures", Cause: err}
	}
	if len(fixtures) == 0 {
		w.Warning("no fixtures found in %s", strings.Join(paths, ", "))
		return nil
	}

	c := neartest.New[float64](
		neartest.WithWriter(w.Out()),
		neartest.WithLocations(locations),
		neartest.WithColor(w.Color()),
	)

	w.Section("Fixtures")

	var failed []string
	skipped := 0
	for i := range fixtures {
		f := &fixtures[i]
		if f.Skip {
			skipped++
			w.Debug("skip %s", f.Name)
			continue
		}

		actual, err := fixture.Extract(doc, f.ActualQuery())
		if err != nil {
			return errors.FixtureError(f.Name, "cannot read actual value", err)
		}
		w.Debug("check %s: %s at %q, tolerance %g", f.Name, f.Expected.Kind(), f.ActualQuery(), f.ToleranceOr(tolerance))

		c.Reset()
		fixture.Run(c, f, actual, tolerance)
		passed := c.Err() == nil
		if !passed {
			failed = append(failed, f.Name)
		}
		w.FixtureResult(f.Name, passed)
	}

	checked := len(fixtures) - skipped
	if !opts.Quiet {
		printCheckSummary(w, checked, skipped, failed)
	}

	if len(failed) > 0 {
		return fmt.Errorf("%d of %d fixtures failed: %w", len(failed), checked, neartest.ErrTestFailed)
	}
	return nil
}

// readActual reads the actual document from path, or from stdin for "-".
func readActual(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func printCheckSummary(w *output.Writer, checked, skipped int, failed []string) {
	label := cases.Title(language.English).String

	w.SummaryHeader("Summary")
	w.SummaryItem(label("checked"), strconv.Itoa(checked))
	if skipped > 0 {
		w.SummaryItem(label("skipped"), strconv.Itoa(skipped))
	}
	w.SummaryPassed(label("passed"), strconv.Itoa(checked-len(failed)))
	if len(failed) > 0 {
		w.SummaryFailed(label("failed"), strconv.Itoa(len(failed)))
		w.List(failed)
		w.FinalFailure("%d of %d fixtures failed.", len(failed), checked)
		return
	}
	w.FinalSuccess("All %d fixtures passed.", checked)
}

// cmdValidate checks fixture files against the fixture schema.
func cmdValidate(w *output.Writer, args []string, opts *GlobalOptions) error {
	if wantsHelp(args) {
		printValidateUsage(w)
		return nil
	}
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") {
			return errors.Configf("validate: unknown flag %q", arg)
		}
	}

	cfg, err := loadConfig(w, opts)
	if err != nil {
		return err
	}

	paths := args
	if len(paths) == 0 {
		paths = []string{cfg.Fixtures.Directory}
	}
	files, err := fixture.ListFiles(paths, cfg.Fixtures.Pattern)
	if err != nil {
		return &errors.Error{Kind: errors.KindInput, Message: "failed to list fixtures", Cause: err}
	}
	if len(files) == 0 {
		w.Warning("no fixture files found in %s", strings.Join(paths, ", "))
		return nil
	}

	invalid := 0
	for _, file := range files {
		if _, err := fixture.Load(file); err != nil {
			w.ValidationFailure("%s: %v", file, err)
			invalid++
			continue
		}
		if !opts.Quiet {
			w.ValidationSuccess("%s", file)
		}
	}

	if invalid > 0 {
		return &errors.Error{
			Kind:    errors.KindInput,
			Message: fmt.Sprintf("%d of %d fixture files are invalid", invalid, len(files)),
		}
	}
	return nil
}

// cmdConfig prints the effective configuration as JSON.
func cmdConfig(w *output.Writer, args []string, opts *GlobalOptions) error {
	if wantsHelp(args) {
		printConfigUsage(w)
		return nil
	}
	if len(args) > 0 {
		return errors.Configf("config: unexpected argument %q", args[0])
	}

	cfg, err := loadConfig(w, opts)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return errors.Newf("failed to encode configuration: %v", err)
	}
	w.Println("%s", data)
	return nil
}
