package cheatsheet

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/jesseduffield/lazycore/pkg/utils"
	"github.com/jesseduffield/pathcheck/pkg/inputs"
	"github.com/pmezard/go-difflib/difflib"
)

var usageFileRegexp = regexp.MustCompile(`^Usage_\w+\.md$`)

func Check() {
	dir := GetUsageDir()
	tmpDir := filepath.Join(os.TempDir(), "pathcheck_cheatsheet")

	err := os.RemoveAll(tmpDir)
	if err != nil {
		log.Fatalf("Error occurred while checking if cheatsheets are up to date: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	if err = os.Mkdir(tmpDir, 0o700); err != nil {
		log.Fatalf("Error occurred while checking if cheatsheets are up to date: %v", err)
	}

	if err := generateAtDir(tmpDir); err != nil {
		log.Fatalf("Error occurred while checking if cheatsheets are up to date: %v", err)
	}

	actualContent, err := obtainContent(dir)
	if err != nil && !inputs.HasCode(err, inputs.NotFound) {
		log.Fatalf("Error occurred while checking if cheatsheets are up to date: %v", err)
	}
	expectedContent, err := obtainContent(tmpDir)
	if err != nil {
		log.Fatalf("Error occurred while checking if cheatsheets are up to date: %v", err)
	}

	if expectedContent == "" {
		log.Fatal("empty expected content")
	}

	diff, err := diffContent(expectedContent, actualContent)
	if err != nil {
		log.Fatalf("Error occurred while checking if cheatsheets are up to date: %v", err)
	}

	if diff != "" {
		fmt.Print(diff)
		fmt.Printf(
			"\nCheatsheets are out of date. Please run `%s` at the project root and commit the changes. "+
				"If you run the script and no usage files are updated as a result, try rebasing onto master "+
				"and trying again.\n",
			generateCheatsheetCmd,
		)
		os.Exit(1)
	}

	fmt.Println("\nCheatsheets are up to date")
}

func GetUsageDir() string {
	return utils.GetLazyRootDirectory() + "/docs/usage"
}

// diffContent returns a unified diff of the two contents, or an empty string
// if they are the same
func diffContent(expected string, actual string) (string, error) {
	if expected == actual {
		return "", nil
	}

	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: "Expected",
		ToFile:   "Actual",
		Context:  1,
	})
}

// obtainContent concatenates every usage file in dir, in name order
func obtainContent(dir string) (string, error) {
	validator := inputs.NewValidator(nil, dir)

	entries, err := validator.ReadDir(".")
	if err != nil {
		return "", err
	}

	names := []string{}
	for _, entry := range entries {
		if usageFileRegexp.MatchString(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	content := ""
	for _, name := range names {
		bytes, err := validator.ReadFile(name)
		if err != nil {
			return "", err
		}
		content += fmt.Sprintf("\n%s\n\n", name)
		content += string(bytes)
	}

	return content, nil
}
