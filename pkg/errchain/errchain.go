// Package errchain prints an error the way we want users to see it: the top
// message first, then one line per underlying cause, then optionally the
// stack trace recorded when the error was wrapped.
//
//	error: input missing.txt failed the early check
//	caused by: cannot stat missing.txt: not found
//	caused by: stat /work/missing.txt
//	caused by: no such file or directory
package errchain

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-errors/errors"
	"golang.org/x/xerrors"
)

const (
	errorPrefix     = "error: "
	causedByPrefix  = "caused by: "
	backtracePrefix = "backtrace: "
)

// WrapError wraps an error for the sake of showing a stack trace at the top level
// the go-errors package, for some reason, does not return nil when you try to wrap
// a non-error, so we're just doing it here
func WrapError(err error) error {
	if err == nil {
		return err
	}

	return errors.Wrap(err, 1)
}

// Links returns the message of each error in the chain, outermost first. Go
// errors conventionally repeat their cause's text after a colon, so each link
// only keeps the part its cause did not already say. Wrappers that add nothing
// (e.g. the stack-carrying go-errors wrapper) do not get a line of their own.
func Links(err error) []string {
	links := []string{}
	for err != nil {
		next := xerrors.Unwrap(err)
		message := ownMessage(err, next)
		if message != "" && (len(links) == 0 || links[len(links)-1] != message) {
			links = append(links, message)
		}
		err = next
	}
	return links
}

func ownMessage(err error, next error) string {
	message := err.Error()
	if next == nil {
		return message
	}
	nextMessage := next.Error()
	if message == nextMessage {
		return ""
	}
	return strings.TrimSuffix(message, ": "+nextMessage)
}

// Backtrace returns the stack trace of the outermost go-errors error in the
// chain, if there is one
func Backtrace(err error) (string, bool) {
	var stackErr *errors.Error
	if !xerrors.As(err, &stackErr) {
		return "", false
	}
	stack := strings.TrimRight(string(stackErr.Stack()), "\n")
	if stack == "" {
		return "", false
	}
	return stack, true
}

// Fprint writes the error chain to w. A chain with N underlying causes takes
// exactly 1 + N message lines, followed by the backtrace when withBacktrace is
// set and a trace is available.
func Fprint(w io.Writer, err error, withBacktrace bool) error {
	if err == nil {
		return nil
	}

	links := Links(err)
	if len(links) == 0 {
		links = []string{fmt.Sprintf("%T", err)}
	}

	if _, writeErr := fmt.Fprintln(w, errorPrefix+links[0]); writeErr != nil {
		return writeErr
	}
	for _, link := range links[1:] {
		if _, writeErr := fmt.Fprintln(w, causedByPrefix+link); writeErr != nil {
			return writeErr
		}
	}

	if !withBacktrace {
		return nil
	}
	if backtrace, ok := Backtrace(err); ok {
		if _, writeErr := fmt.Fprintln(w, backtracePrefix+backtrace); writeErr != nil {
			return writeErr
		}
	}
	return nil
}
