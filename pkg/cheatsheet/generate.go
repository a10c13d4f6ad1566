// This "script" generates a file called Usage_{{.LANG}}.md for each supported
// language in docs/usage.
//
// The content of this generated file is a cheatsheet of the command line.
//
// To generate the cheatsheets run:
//   go run scripts/cheatsheet/main.go generate

package cheatsheet

import (
	"fmt"
	"io"
	"log"

	"github.com/jesseduffield/pathcheck/pkg/cli"
	"github.com/jesseduffield/pathcheck/pkg/i18n"
	"github.com/jesseduffield/pathcheck/pkg/inputs"
	"github.com/sirupsen/logrus"
)

const (
	generateCheatsheetCmd = "go run scripts/cheatsheet/main.go generate"
)

func Generate() {
	if err := generateAtDir(GetUsageDir()); err != nil {
		log.Fatalf("Error occurred while generating cheatsheets: %v", err)
	}
}

func generateAtDir(dir string) error {
	validator := inputs.NewValidator(nil, dir)

	for lang := range i18n.GetTranslationSets() {
		tr := i18n.NewTranslationSet(discardLog(), lang)

		content := fmt.Sprintf(
			"_This file is auto-generated. To update, make the changes in the "+
				"pkg/i18n directory and then run `%s` from the project root._\n\n%s",
			generateCheatsheetCmd,
			formatSections(tr),
		)
		if err := validator.WriteFile(usageFilename(lang), []byte(content), 0o644); err != nil {
			return err
		}
	}

	return nil
}

func usageFilename(lang string) string {
	return "Usage_" + lang + ".md"
}

func formatTitle(title string) string {
	return fmt.Sprintf("\n## %s\n\n", title)
}

func formatFlag(flag cli.Flag) string {
	usage := fmt.Sprintf("-%s, --%s", flag.Short, flag.Long)
	if flag.TakesValue {
		usage += " VALUE"
	}
	return fmt.Sprintf("  <kbd>%s</kbd>: %s\n", usage, flag.Description)
}

func formatSections(tr *i18n.TranslationSet) string {
	content := fmt.Sprintf("# Pathcheck %s\n\n%s\n", tr.UsageTitle, tr.Description)

	content += formatTitle(tr.ArgumentsTitle)
	content += "<pre>\n"
	content += "  " + cli.ArgumentsHelp(tr) + "\n"
	content += "</pre>\n"

	content += formatTitle(tr.FlagsTitle)
	content += "<pre>\n"
	for _, flag := range cli.Flags(tr) {
		content += formatFlag(flag)
	}
	content += "</pre>\n"

	return content
}

func discardLog() *logrus.Entry {
	logger := logrus.New()
	logger.Out = io.Discard
	return logrus.NewEntry(logger)
}
