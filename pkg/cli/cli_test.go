package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jesseduffield/pathcheck/pkg/config"
	"github.com/jesseduffield/pathcheck/pkg/i18n"
	"github.com/jesseduffield/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func englishTr(t *testing.T) *i18n.TranslationSet {
	t.Helper()
	t.Setenv("LC_ALL", "en_US.UTF-8")
	return defaultTranslationSet()
}

type testCommand struct {
	*command
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newTestCommand(t *testing.T, workDir string) *testCommand {
	t.Helper()
	t.Setenv("LC_ALL", "en_US.UTF-8")
	t.Setenv("CONFIG_DIR", t.TempDir())
	t.Setenv("DEBUG", "")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &testCommand{
		command: &command{
			stdout: stdout,
			stderr: stderr,
			info:   BuildInfo{Version: "test-version"},
			getwd:  func() (string, error) { return workDir, nil },
		},
		stdout: stdout,
		stderr: stderr,
	}
}

func newWorkDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hello\n"), 0o644))
	return dir
}

func TestCollectInpaths(t *testing.T) {
	tr := englishTr(t)

	tests := []struct {
		name     string
		args     []string
		expected []string
		err      string
	}{
		{name: "no arguments", args: nil, expected: []string{"."}},
		{name: "empty slice", args: []string{}, expected: []string{"."}},
		{name: "one", args: []string{"a"}, expected: []string{"a"}},
		{name: "order is kept", args: []string{"b", "a", "b"}, expected: []string{"b", "a", "b"}},
		{name: "empty value", args: []string{"a", ""}, err: "inpath must not be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inpaths, err := collectInpaths(tt.args, tr)
			if tt.err != "" {
				assert.EqualError(t, err, tt.err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, inpaths)
		})
	}
}

func TestParseArgs(t *testing.T) {
	tr := englishTr(t)

	tests := []struct {
		name     string
		args     []string
		expected options
		err      string
	}{
		{
			name:     "defaults",
			args:     []string{},
			expected: options{inpaths: []string{"."}},
		},
		{
			name:     "positional inpaths",
			args:     []string{"a.txt", "b.txt"},
			expected: options{inpaths: []string{"a.txt", "b.txt"}},
		},
		{
			name: "flags",
			args: []string{"-x", "-n", "-b", "--kind", "file", "a.txt"},
			expected: options{
				failFast:   true,
				noPrecheck: true,
				backtrace:  true,
				kind:       "file",
				inpaths:    []string{"a.txt"},
			},
		},
		{
			name:     "everything after a double dash is an inpath",
			args:     []string{"-d", "--", "-weird-name"},
			expected: options{debug: true, inpaths: []string{"-weird-name"}},
		},
		{
			name:     "positionals on both sides of a double dash",
			args:     []string{"a.txt", "-x", "--", "b.txt"},
			expected: options{failFast: true, inpaths: []string{"a.txt", "b.txt"}},
		},
		{
			name:     "an empty flag value is not an inpath",
			args:     []string{"-k", "", "a.txt"},
			expected: options{inpaths: []string{"a.txt"}},
		},
		{
			name:     "flag with an equals sign",
			args:     []string{"--kind=file", "a.txt"},
			expected: options{kind: "file", inpaths: []string{"a.txt"}},
		},
		{
			name:     "flag value that looks like a flag",
			args:     []string{"-k", "-weird", "a.txt"},
			expected: options{kind: "-weird", inpaths: []string{"a.txt"}},
		},
		{
			name:     "an inpath named after the program",
			args:     []string{"pathcheck"},
			expected: options{inpaths: []string{"pathcheck"}},
		},
		{
			name: "unknown long flag",
			args: []string{"--bogus", "a.txt"},
			err:  "unknown flag --bogus",
		},
		{
			name: "unknown short flag",
			args: []string{"a.txt", "-z"},
			err:  "unknown flag -z",
		},
		{
			name: "empty inpath",
			args: []string{"a.txt", ""},
			err:  "inpath must not be empty",
		},
		{
			name: "empty inpath after a double dash",
			args: []string{"--", ""},
			err:  "inpath must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := parseArgs(tt.args, tr, BuildInfo{})
			if tt.err != "" {
				assert.EqualError(t, err, tt.err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, *opts)
		})
	}
}

func TestExecuteSuccess(t *testing.T) {
	cmd := newTestCommand(t, newWorkDir(t))

	code := cmd.execute([]string{"a.txt"})

	assert.Equal(t, 0, code)
	assert.Empty(t, cmd.stderr.String())
	assert.Contains(t, cmd.stdout.String(), "a.txt")
	assert.Contains(t, cmd.stdout.String(), "1 lines")
}

func TestExecuteDefaultsToCurrentDirectory(t *testing.T) {
	cmd := newTestCommand(t, newWorkDir(t))

	code := cmd.execute([]string{})

	assert.Equal(t, 0, code)
	assert.Empty(t, cmd.stderr.String())
	lines := strings.Split(strings.TrimSpace(cmd.stdout.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], ". "), "got %q", lines[1])
	assert.Contains(t, lines[1], "directory")
}

func TestExecuteFailure(t *testing.T) {
	workDir := newWorkDir(t)
	cmd := newTestCommand(t, workDir)

	code := cmd.execute([]string{"a.txt", "missing.txt"})

	assert.Equal(t, 1, code)
	assert.Empty(t, cmd.stdout.String())

	lines := strings.Split(strings.TrimSpace(cmd.stderr.String()), "\n")
	require.Len(t, lines, 4, "stderr: %s", cmd.stderr.String())
	assert.Equal(t, []string{
		"error: input missing.txt failed the early check",
		"caused by: cannot stat missing.txt: not found",
		"caused by: stat " + filepath.Join(workDir, "missing.txt"),
		"caused by: no such file or directory",
	}, lines)
}

func TestExecuteUnknownFlag(t *testing.T) {
	cmd := newTestCommand(t, newWorkDir(t))

	code := cmd.execute([]string{"--bogus", "a.txt"})

	assert.Equal(t, 1, code)
	assert.Empty(t, cmd.stdout.String())
	assert.Equal(t, "error: unknown flag --bogus\n", cmd.stderr.String())
}

func TestExecuteBacktrace(t *testing.T) {
	cmd := newTestCommand(t, newWorkDir(t))

	code := cmd.execute([]string{"-b", "missing.txt"})

	assert.Equal(t, 1, code)
	assert.True(t, strings.HasPrefix(cmd.stderr.String(), "error: "))
	assert.Contains(t, cmd.stderr.String(), "\nbacktrace: ")
}

func TestExecuteInvalidKind(t *testing.T) {
	cmd := newTestCommand(t, newWorkDir(t))

	code := cmd.execute([]string{"-k", "socket"})

	assert.Equal(t, 1, code)
	assert.True(t, strings.HasPrefix(cmd.stderr.String(), "error: invalid options\ncaused by: Unrecognized kind 'socket'"), "got %s", cmd.stderr.String())
}

func TestExecuteWorkingDirectoryUnavailable(t *testing.T) {
	cmd := newTestCommand(t, "")
	cmd.getwd = func() (string, error) { return "", errors.New("getwd: no such file or directory") }

	code := cmd.execute([]string{"a.txt"})

	assert.Equal(t, 1, code)
	assert.Equal(t, "error: cannot determine working directory\ncaused by: getwd: no such file or directory\n", cmd.stderr.String())
}

func TestExecutePrintConfig(t *testing.T) {
	cmd := newTestCommand(t, newWorkDir(t))

	code := cmd.execute([]string{"--config"})

	assert.Equal(t, 0, code)

	printed := config.UserConfig{}
	assert.NoError(t, yaml.Unmarshal(cmd.stdout.Bytes(), &printed))
	assert.Equal(t, config.GetDefaultConfig(), printed)
}

func TestBuildInfoString(t *testing.T) {
	info := BuildInfo{Version: "1.2.3", Commit: "abc", Date: "today", BuildSource: "source"}
	str := info.String()
	assert.True(t, strings.HasPrefix(str, "1.2.3\nDate: today\nBuildSource: source\nCommit: abc\nOS: "))
}
