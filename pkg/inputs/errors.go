package inputs

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"

	"golang.org/x/xerrors"
)

// Code classifies why an operation on a path could not complete
type Code int

const (
	// Unknown is for failures we have no better name for
	Unknown Code = iota
	// NotFound means the path did not exist at the moment of use
	NotFound
	// PermissionDenied means the operation itself was refused
	PermissionDenied
	// WrongKind means the path exists but is not the kind of object the operation needs
	WrongKind
	// Raced means the object behind the path changed between an early check and its use
	Raced
	// Invalid means the path value itself is unusable (empty, NUL byte)
	Invalid
)

func (c Code) String() string {
	switch c {
	case NotFound:
		return "not found"
	case PermissionDenied:
		return "permission denied"
	case WrongKind:
		return "wrong kind"
	case Raced:
		return "changed since it was checked"
	case Invalid:
		return "invalid path"
	}
	return "unknown failure"
}

// PathError is returned by every Validator operation. It carries the code so
// that calling code can react to the cause without string matching.
// adapted from https://medium.com/yakka/better-go-error-handling-with-xerrors-1987650e0c79
type PathError struct {
	Op    Op
	Path  string
	Code  Code
	Err   error
	frame xerrors.Frame
}

func newPathError(op Op, path string, code Code, err error) *PathError {
	return &PathError{
		Op:    op,
		Path:  path,
		Code:  code,
		Err:   err,
		frame: xerrors.Caller(1),
	}
}

// NewPathError classifies err, which must be the error an operation on path
// returned, and wraps it
func NewPathError(op Op, path string, err error) *PathError {
	return &PathError{
		Op:    op,
		Path:  path,
		Code:  classify(err),
		Err:   err,
		frame: xerrors.Caller(1),
	}
}

// FormatError is for xerrors' %+v output
func (e *PathError) FormatError(p xerrors.Printer) error {
	p.Printf("cannot %s %s: %s", e.Op, e.Path, e.Code)
	e.frame.Format(p)
	return e.Err
}

// Format is a function
func (e *PathError) Format(f fmt.State, c rune) {
	xerrors.FormatError(e, f, c)
}

func (e *PathError) Error() string {
	return fmt.Sprint(e)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// HasCode tells us whether any PathError in err's chain carries the given code
func HasCode(err error, code Code) bool {
	var pathErr *PathError
	if xerrors.As(err, &pathErr) {
		return pathErr.Code == code
	}
	return false
}

// classify maps the error of a failed filesystem call onto a Code. We only look
// at the error the operation itself produced.
func classify(err error) Code {
	switch {
	case err == nil:
		return Unknown
	case errors.Is(err, fs.ErrNotExist):
		return NotFound
	case errors.Is(err, fs.ErrPermission):
		return PermissionDenied
	case errors.Is(err, syscall.ENOTDIR), errors.Is(err, syscall.EISDIR), errors.Is(err, syscall.ELOOP):
		return WrongKind
	// opening a FIFO to write when nothing is reading it
	case errors.Is(err, syscall.ENXIO):
		return WrongKind
	}
	return Unknown
}
