// Package cli turns a command line into a run of the app and a process exit
// code. Nothing in here reads process-global state except where noted: the
// arguments, output streams and build info are all handed in.
package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/go-errors/errors"
	"github.com/integrii/flaggy"
	"github.com/jesseduffield/pathcheck/pkg/app"
	"github.com/jesseduffield/pathcheck/pkg/config"
	"github.com/jesseduffield/pathcheck/pkg/errchain"
	"github.com/jesseduffield/pathcheck/pkg/i18n"
	"github.com/jesseduffield/yaml"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

const (
	name = "pathcheck"

	// DefaultInpath is used when no inpath is given
	DefaultInpath = "."

	backtraceEnvVar = "PATHCHECK_BACKTRACE"
)

// BuildInfo is stamped in at build time
type BuildInfo struct {
	Version     string
	Commit      string
	Date        string
	BuildSource string
}

func (info BuildInfo) String() string {
	return fmt.Sprintf(
		"%s\nDate: %s\nBuildSource: %s\nCommit: %s\nOS: %s\nArch: %s",
		info.Version,
		info.Date,
		info.BuildSource,
		info.Commit,
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// Flag describes one command line flag
type Flag struct {
	Short       string
	Long        string
	Description string
	// TakesValue is set when the flag consumes the following argument
	TakesValue bool
}

// Flags lists the command line flags in the order help shows them
func Flags(tr *i18n.TranslationSet) []Flag {
	return []Flag{
		{Short: "c", Long: "config", Description: tr.ConfigFlagHelp},
		{Short: "d", Long: "debug", Description: tr.DebugFlagHelp},
		{Short: "k", Long: "kind", Description: tr.KindFlagHelp, TakesValue: true},
		{Short: "x", Long: "fail-fast", Description: tr.FailFastFlagHelp},
		{Short: "n", Long: "no-precheck", Description: tr.NoPrecheckHelp},
		{Short: "b", Long: "backtrace", Description: tr.BacktraceHelp},
	}
}

// ArgumentsHelp describes the positional arguments
func ArgumentsHelp(tr *i18n.TranslationSet) string {
	return fmt.Sprintf("inpath...  %s (default: %s)", tr.InpathHelp, DefaultInpath)
}

type options struct {
	printConfig bool
	debug       bool
	kind        string
	failFast    bool
	noPrecheck  bool
	backtrace   bool
	inpaths     []string
}

type command struct {
	stdout    io.Writer
	stderr    io.Writer
	info      BuildInfo
	getwd     func() (string, error)
	backtrace bool
}

// Execute runs pathcheck with the given arguments (not including the program
// name) and returns the process exit code: 0 on success, 1 after printing the
// error chain to stderr.
func Execute(args []string, stdout io.Writer, stderr io.Writer, info BuildInfo) int {
	cmd := &command{
		stdout:    stdout,
		stderr:    stderr,
		info:      info,
		getwd:     os.Getwd,
		backtrace: os.Getenv(backtraceEnvVar) == "1",
	}
	return cmd.execute(args)
}

func (c *command) execute(args []string) int {
	err := c.run(args)
	if err == nil {
		return 0
	}

	// nothing more we can do if writing to stderr fails
	_ = errchain.Fprint(c.stderr, err, c.backtrace)
	return 1
}

func (c *command) run(args []string) error {
	tr := defaultTranslationSet()

	opts, err := parseArgs(args, tr, c.info)
	if err != nil {
		return err
	}
	c.backtrace = c.backtrace || opts.backtrace

	if opts.printConfig {
		return c.printDefaultConfig()
	}

	// the only lookup of the working directory; everything downstream gets it from AppConfig
	workDir, err := c.getwd()
	if err != nil {
		return errchain.WrapError(fmt.Errorf("cannot determine working directory: %w", err))
	}

	appConfig, err := config.NewAppConfig(name, c.info.Version, c.info.Commit, c.info.Date, c.info.BuildSource, opts.debug, workDir)
	if err != nil {
		return errchain.WrapError(fmt.Errorf("cannot load config: %w", err))
	}

	overrides := config.UserConfig{
		Inspect: config.InspectConfig{
			Kind:         opts.kind,
			FailFast:     opts.failFast,
			SkipPrecheck: opts.noPrecheck,
		},
		Output: config.OutputConfig{
			Backtrace: opts.backtrace,
		},
	}
	if err := appConfig.ApplyOverrides(overrides); err != nil {
		return errchain.WrapError(fmt.Errorf("invalid options: %w", err))
	}
	c.backtrace = c.backtrace || appConfig.UserConfig.Output.Backtrace

	pathcheck, err := app.NewApp(appConfig, c.stdout, c.stderr)
	if err != nil {
		if pathcheck != nil {
			_ = pathcheck.Close()
		}
		return errchain.WrapError(err)
	}
	defer pathcheck.Close()

	pathcheck.Log.WithField("inpaths", opts.inpaths).Debug("starting")

	return pathcheck.Run(opts.inpaths)
}

func (c *command) printDefaultConfig() error {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	if err := encoder.Encode(config.GetDefaultConfig()); err != nil {
		return errchain.WrapError(err)
	}
	_, err := fmt.Fprintf(c.stdout, "%v\n", buf.String())
	return err
}

func parseArgs(args []string, tr *i18n.TranslationSet, info BuildInfo) (*options, error) {
	opts := &options{}

	parser := flaggy.NewParser(name)
	parser.Description = tr.Description
	parser.AdditionalHelpPrepend = "https://github.com/jesseduffield/pathcheck"
	parser.AdditionalHelpAppend = fmt.Sprintf("\n  %s:\n    %s", tr.ArgumentsTitle, ArgumentsHelp(tr))
	parser.Version = info.String()
	// bare arguments are inpaths, so they must not be treated as errors
	parser.ShowHelpOnUnexpected = false

	boolTargets := map[string]*bool{
		"config":      &opts.printConfig,
		"debug":       &opts.debug,
		"fail-fast":   &opts.failFast,
		"no-precheck": &opts.noPrecheck,
		"backtrace":   &opts.backtrace,
	}
	stringTargets := map[string]*string{
		"kind": &opts.kind,
	}
	flags := Flags(tr)
	for _, flag := range flags {
		if flag.TakesValue {
			parser.String(stringTargets[flag.Long], flag.Short, flag.Long, flag.Description)
		} else {
			parser.Bool(boolTargets[flag.Long], flag.Short, flag.Long, flag.Description)
		}
	}

	// flaggy cannot record an empty positional and lets an unknown flag swallow
	// the argument after it, so both are caught up front
	if err := prescanArgs(args, flags, tr); err != nil {
		return nil, err
	}

	if err := parser.ParseArgs(args); err != nil {
		return nil, errchain.WrapError(err)
	}

	inpaths, err := collectInpaths(append(positionalArgs(parser), parser.TrailingArguments...), tr)
	if err != nil {
		return nil, err
	}
	opts.inpaths = inpaths

	return opts, nil
}

// positionalArgs returns the bare arguments flaggy saw before any "--". flaggy
// records the parser's own name (and short name) as the first positionals, so
// those are dropped.
func positionalArgs(parser *flaggy.Parser) []string {
	ownNames := []string{}
	if parser.Name != "" {
		ownNames = append(ownNames, parser.Name)
	}
	if parser.ShortName != "" {
		ownNames = append(ownNames, parser.ShortName)
	}

	positionals := []string{}
	for _, value := range parser.ParsedValues {
		if !value.IsPositional {
			continue
		}
		if len(ownNames) > 0 && value.Value == ownNames[0] {
			ownNames = ownNames[1:]
			continue
		}
		ownNames = nil
		positionals = append(positionals, value.Value)
	}
	return positionals
}

// prescanArgs checks the arguments before any "--": an empty argument must be
// the value of a flag, and every flag must be one we define
func prescanArgs(args []string, flags []Flag, tr *i18n.TranslationSet) error {
	known := []string{"h", "help", "version"}
	valueFlags := []string{}
	for _, flag := range flags {
		known = append(known, flag.Short, flag.Long)
		if flag.TakesValue {
			valueFlags = append(valueFlags, flag.Short, flag.Long)
		}
	}

	takesNext := false
	for _, arg := range args {
		if arg == "--" {
			return nil
		}
		if takesNext {
			takesNext = false
			continue
		}
		if arg == "" {
			return errors.New(tr.EmptyInpathError)
		}
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		flagName := strings.TrimLeft(arg, "-")
		flagName, _, hasValue := strings.Cut(flagName, "=")
		if !lo.Contains(known, flagName) {
			return errors.Errorf(tr.UnknownFlagError, arg)
		}
		takesNext = !hasValue && lo.Contains(valueFlags, flagName)
	}
	return nil
}

// collectInpaths applies the default and rejects empty values. An empty
// invocation yields exactly one inpath: the current directory marker.
func collectInpaths(args []string, tr *i18n.TranslationSet) ([]string, error) {
	if len(args) == 0 {
		return []string{DefaultInpath}, nil
	}

	inpaths := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == "" {
			return nil, errors.New(tr.EmptyInpathError)
		}
		inpaths = append(inpaths, arg)
	}
	return inpaths, nil
}

// defaultTranslationSet is used for help text, before the config (and with it
// the configured language) has been loaded
func defaultTranslationSet() *i18n.TranslationSet {
	log := logrus.New()
	log.Out = io.Discard
	tr, _ := i18n.NewTranslationSetFromConfig(logrus.NewEntry(log), "auto")
	return tr
}
