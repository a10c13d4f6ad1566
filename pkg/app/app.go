package app

import (
	"fmt"
	"io"

	"github.com/jesseduffield/pathcheck/pkg/config"
	"github.com/jesseduffield/pathcheck/pkg/errchain"
	"github.com/jesseduffield/pathcheck/pkg/i18n"
	"github.com/jesseduffield/pathcheck/pkg/inputs"
	"github.com/jesseduffield/pathcheck/pkg/inspect"
	"github.com/jesseduffield/pathcheck/pkg/log"
	"github.com/jesseduffield/pathcheck/pkg/utils"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// App struct
type App struct {
	closers []io.Closer

	Config    *config.AppConfig
	Log       *logrus.Entry
	Tr        *i18n.TranslationSet
	Validator *inputs.Validator
	Inspector *inspect.Inspector
	Stdout    io.Writer
	Stderr    io.Writer
}

// NewApp bootstrap a new application
func NewApp(config *config.AppConfig, stdout io.Writer, stderr io.Writer) (*App, error) {
	app := &App{
		closers: []io.Closer{},
		Config:  config,
		Stdout:  stdout,
		Stderr:  stderr,
	}

	logger, logCloser, err := log.NewLogger(config)
	if err != nil {
		return app, err
	}
	app.Log = logger
	app.closers = append(app.closers, logCloser)

	app.Tr, err = i18n.NewTranslationSetFromConfig(app.Log, config.UserConfig.Language)
	if err != nil {
		return app, err
	}

	kind, err := inputs.ParseKind(config.UserConfig.Inspect.Kind)
	if err != nil {
		return app, err
	}

	app.Validator = inputs.NewValidator(app.Log, config.WorkDir)
	app.Inspector = inspect.NewInspector(app.Log, app.Validator, app.Tr, kind, !config.UserConfig.Inspect.SkipLineCount)

	return app, nil
}

// Run processes each input in order. Every input is opened and checked at the
// moment it is used; the optional precheck pass only exists to reject an
// obviously bad argument before we start.
func (app *App) Run(inpaths []string) error {
	inspectConfig := app.Config.UserConfig.Inspect

	snapshots := make([]*inputs.Snapshot, len(inpaths))
	if !inspectConfig.SkipPrecheck {
		for i, inpath := range inpaths {
			snapshot, err := app.Validator.Precheck(inpath, app.Inspector.Kind)
			if err != nil {
				return errchain.WrapError(fmt.Errorf(app.Tr.PrecheckFailed+": %w", inpath, err))
			}
			snapshots[i] = snapshot
		}
	}

	rows := [][]string{}
	failures := []error{}
	for i, inpath := range inpaths {
		report, err := app.Inspector.Inspect(inpath, snapshots[i])
		if err != nil {
			failure := fmt.Errorf(app.Tr.InputFailed+": %w", inpath, err)
			app.Log.WithField("input", inpath).Error(failure.Error())
			// the first failure is reported as the cause of the final error
			if len(failures) > 0 {
				fmt.Fprintln(app.Stderr, "warning: "+failure.Error())
			}
			failures = append(failures, failure)
			if inspectConfig.FailFast {
				break
			}
			continue
		}
		rows = append(rows, report.GetDisplayStrings(app.Tr))
	}

	if err := app.renderReports(rows); err != nil {
		return errchain.WrapError(err)
	}

	if len(failures) > 0 {
		return errchain.WrapError(fmt.Errorf(app.Tr.InputsFailed+": %w", len(failures), len(inpaths), failures[0]))
	}

	return nil
}

func (app *App) renderReports(rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}

	header := []string{app.Tr.PathColumn, app.Tr.KindColumn, app.Tr.SizeColumn, app.Tr.DetailColumn}
	if !app.Config.UserConfig.Output.NoColor && len(app.Config.UserConfig.Output.HeaderColor) > 0 {
		attributes := utils.GetColorAttributes(app.Config.UserConfig.Output.HeaderColor)
		header = lo.Map(header, func(column string, _ int) string {
			return utils.MultiColoredString(column, attributes...)
		})
	}

	table, err := utils.RenderTable(append([][]string{header}, rows...))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(app.Stdout, table)
	return err
}

// Close releases anything the app opened
func (app *App) Close() error {
	return utils.CloseMany(app.closers)
}
