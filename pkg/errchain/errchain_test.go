package errchain

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/go-errors/errors"
	"github.com/stretchr/testify/assert"
)

type customError struct {
	message string
	cause   error
}

func (e *customError) Error() string {
	if e.cause == nil {
		return e.message
	}
	return e.message + ": " + e.cause.Error()
}

func (e *customError) Unwrap() error {
	return e.cause
}

func TestLinks(t *testing.T) {
	root := fmt.Errorf("no such file or directory")

	tests := []struct {
		name     string
		err      error
		expected []string
	}{
		{
			name:     "single error",
			err:      root,
			expected: []string{"no such file or directory"},
		},
		{
			name:     "fmt wrapping",
			err:      fmt.Errorf("loading config: %w", fmt.Errorf("open config.yml: %w", root)),
			expected: []string{"loading config", "open config.yml", "no such file or directory"},
		},
		{
			name:     "stack wrapper adds no line",
			err:      errors.Wrap(fmt.Errorf("top: %w", root), 0),
			expected: []string{"top", "no such file or directory"},
		},
		{
			name:     "custom unwrapper",
			err:      &customError{message: "outer", cause: &customError{message: "inner"}},
			expected: []string{"outer", "inner"},
		},
		{
			name:     "wrapper that does not repeat its cause",
			err:      &customError{message: "outer"},
			expected: []string{"outer"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Links(tt.err))
		})
	}
}

func TestFprintLineCount(t *testing.T) {
	for causes := 0; causes < 5; causes++ {
		t.Run(fmt.Sprintf("%d causes", causes), func(t *testing.T) {
			err := fmt.Errorf("cause %d", causes)
			for i := causes - 1; i >= 0; i-- {
				err = fmt.Errorf("cause %d: %w", i, err)
			}

			buf := &bytes.Buffer{}
			assert.NoError(t, Fprint(buf, err, false))

			lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
			assert.Len(t, lines, 1+causes)
			assert.Equal(t, "error: cause 0", lines[0])
			for i, line := range lines[1:] {
				assert.Equal(t, fmt.Sprintf("caused by: cause %d", i+1), line)
			}
		})
	}
}

func TestFprintBacktrace(t *testing.T) {
	err := errors.Wrap(fmt.Errorf("boom"), 0)

	buf := &bytes.Buffer{}
	assert.NoError(t, Fprint(buf, err, true))
	output := buf.String()
	assert.True(t, strings.HasPrefix(output, "error: boom\nbacktrace: "))
	assert.Contains(t, output, "TestFprintBacktrace")

	buf.Reset()
	assert.NoError(t, Fprint(buf, err, false))
	assert.Equal(t, "error: boom\n", buf.String())

	buf.Reset()
	assert.NoError(t, Fprint(buf, fmt.Errorf("plain"), true))
	assert.Equal(t, "error: plain\n", buf.String())
}

func TestFprintNil(t *testing.T) {
	buf := &bytes.Buffer{}
	assert.NoError(t, Fprint(buf, nil, true))
	assert.Empty(t, buf.String())
}

func TestBacktrace(t *testing.T) {
	_, ok := Backtrace(fmt.Errorf("plain"))
	assert.False(t, ok)

	trace, ok := Backtrace(fmt.Errorf("outer: %w", errors.New("inner")))
	assert.True(t, ok)
	assert.NotEmpty(t, trace)
}

func TestWrapError(t *testing.T) {
	assert.Nil(t, WrapError(nil))

	err := WrapError(fmt.Errorf("boom"))
	assert.EqualError(t, err, "boom")
	assert.Equal(t, []string{"boom"}, Links(err))

	trace, ok := Backtrace(err)
	assert.True(t, ok)
	assert.Contains(t, trace, "TestWrapError")
}
