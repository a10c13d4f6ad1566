// Package inputs gates every use of a filesystem path on the outcome of that
// use. A path is never trusted because an earlier check passed: each
// operation opens the path and inspects the open descriptor, so the thing that
// was checked is the thing that gets used.
//
// Prechecks made while parsing arguments are allowed, but only to catch an
// obviously bad argument early. Their result is never a licence to skip the
// real check.
package inputs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Op names the operation being performed on a path
type Op string

const (
	OpStat   Op = "stat"
	OpRead   Op = "read"
	OpList   Op = "list"
	OpWrite  Op = "write"
	OpAppend Op = "append to"
	OpCreate Op = "create"
)

// Validator performs check-and-use operations on paths. Relative paths are
// resolved against Base, which is worked out once at startup and passed in
// rather than looked up from the process on every call.
type Validator struct {
	Log  *logrus.Entry
	Base string

	openFile func(name string, flag int, perm os.FileMode) (*os.File, error)
	stat     func(name string) (os.FileInfo, error)
}

// Handle is an open path along with what the open descriptor says about it
type Handle struct {
	*os.File

	// Path is the resolved path that was opened
	Path string
	// Info comes from the descriptor (fstat), not from a second lookup of Path
	Info os.FileInfo
}

// Snapshot is what an early check saw. It is only good for failing fast and
// for noticing that a path now points at something else.
type Snapshot struct {
	Path string
	Info os.FileInfo
}

// NewValidator returns a validator resolving relative paths against base
func NewValidator(log *logrus.Entry, base string) *Validator {
	return &Validator{
		Log:      log,
		Base:     base,
		openFile: os.OpenFile,
		stat:     os.Stat,
	}
}

// SetOpenFile sets the function used to open files.
// To be used for testing only
func (v *Validator) SetOpenFile(openFile func(string, int, os.FileMode) (*os.File, error)) {
	v.openFile = openFile
}

// Resolve turns an argument into the path we will actually operate on. It does
// not touch the filesystem.
func (v *Validator) Resolve(path string) (string, error) {
	if path == "" {
		return "", newPathError(OpStat, path, Invalid, fmt.Errorf("path is empty"))
	}
	if strings.ContainsRune(path, 0) {
		return "", newPathError(OpStat, path, Invalid, fmt.Errorf("path contains a NUL byte"))
	}
	if filepath.IsAbs(path) || v.Base == "" {
		return filepath.Clean(path), nil
	}
	return filepath.Join(v.Base, path), nil
}

// Precheck is the optimistic early check used while parsing arguments. Passing
// it says nothing about whether a later operation on the path will succeed.
func (v *Validator) Precheck(path string, kind Kind) (*Snapshot, error) {
	info, err := v.Stat(path)
	if err != nil {
		return nil, err
	}
	if !kind.Matches(info) {
		return nil, v.fail(newPathError(OpStat, path, WrongKind, kindMismatch(info, kind)))
	}
	return &Snapshot{Path: path, Info: info}, nil
}

// Stat stats the path. The returned info describes the path at the moment of
// the call and nothing more.
func (v *Validator) Stat(path string) (os.FileInfo, error) {
	resolved, err := v.Resolve(path)
	if err != nil {
		return nil, v.fail(err)
	}
	info, err := v.stat(resolved)
	if err != nil {
		return nil, v.fail(newPathError(OpStat, path, classify(err), err))
	}
	return info, nil
}

// Open opens the path read-only and checks its kind on the open descriptor
func (v *Validator) Open(path string, kind Kind) (*Handle, error) {
	return v.open(OpRead, path, kind, nil)
}

// OpenSnapshot opens the path an early check looked at. If the path now refers
// to a different object than the one the check saw, we fail with Raced rather
// than use whatever took its place.
func (v *Validator) OpenSnapshot(snapshot *Snapshot, kind Kind) (*Handle, error) {
	return v.open(OpRead, snapshot.Path, kind, snapshot)
}

func (v *Validator) open(op Op, path string, kind Kind, snapshot *Snapshot) (*Handle, error) {
	resolved, err := v.Resolve(path)
	if err != nil {
		return nil, v.fail(err)
	}

	file, err := v.openFile(resolved, os.O_RDONLY|nonblockFlag, 0)
	if err != nil {
		return nil, v.fail(newPathError(op, path, classify(err), err))
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, v.fail(newPathError(op, path, classify(err), err))
	}

	if !kind.Matches(info) {
		file.Close()
		return nil, v.fail(newPathError(op, path, WrongKind, kindMismatch(info, kind)))
	}

	if snapshot != nil && snapshot.Info != nil && !os.SameFile(snapshot.Info, info) {
		file.Close()
		return nil, v.fail(newPathError(op, path, Raced, fmt.Errorf("path was replaced after it was checked")))
	}

	// only pipes, sockets and devices care whether the descriptor blocks
	if !info.Mode().IsRegular() && !info.IsDir() {
		if err := clearNonblock(file); err != nil {
			file.Close()
			return nil, v.fail(newPathError(op, path, classify(err), err))
		}
	}

	return &Handle{File: file, Path: resolved, Info: info}, nil
}

// ReadFile reads a regular file through a handle that has already been checked
func (v *Validator) ReadFile(path string) ([]byte, error) {
	handle, err := v.Open(path, KindFile)
	if err != nil {
		return nil, err
	}
	defer handle.Close()

	content, err := io.ReadAll(handle)
	if err != nil {
		return nil, v.fail(newPathError(OpRead, path, classify(err), err))
	}
	return content, nil
}

// ReadDir lists a directory through a handle that has already been checked
func (v *Validator) ReadDir(path string) ([]os.DirEntry, error) {
	handle, err := v.open(OpList, path, KindDirectory, nil)
	if err != nil {
		return nil, err
	}
	defer handle.Close()

	entries, err := handle.ReadDir(-1)
	if err != nil {
		return nil, v.fail(newPathError(OpList, path, classify(err), err))
	}
	return entries, nil
}

// WriteFile truncates or creates the file and writes data to it. Whether the
// path is writable is only ever learned from the open itself.
func (v *Validator) WriteFile(path string, data []byte, perm os.FileMode) error {
	file, err := v.openRegular(OpWrite, path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}

	if _, err := file.Write(data); err != nil {
		file.Close()
		return v.fail(newPathError(OpWrite, path, classify(err), err))
	}
	if err := file.Close(); err != nil {
		return v.fail(newPathError(OpWrite, path, classify(err), err))
	}
	return nil
}

// OpenAppend opens the file for appending, creating it if need be
func (v *Validator) OpenAppend(path string, perm os.FileMode) (*os.File, error) {
	return v.openRegular(OpAppend, path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, perm)
}

// EnsureFile creates the file if it does not exist yet, and fails if the path
// holds something other than a regular file
func (v *Validator) EnsureFile(path string, perm os.FileMode) error {
	file, err := v.openRegular(OpCreate, path, os.O_RDONLY|os.O_CREATE, perm)
	if err != nil {
		return err
	}
	return file.Close()
}

func (v *Validator) openRegular(op Op, path string, flag int, perm os.FileMode) (*os.File, error) {
	resolved, err := v.Resolve(path)
	if err != nil {
		return nil, v.fail(err)
	}

	file, err := v.openFile(resolved, flag|nonblockFlag, perm)
	if err != nil {
		return nil, v.fail(newPathError(op, path, classify(err), err))
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, v.fail(newPathError(op, path, classify(err), err))
	}
	if !KindFile.Matches(info) {
		file.Close()
		return nil, v.fail(newPathError(op, path, WrongKind, kindMismatch(info, KindFile)))
	}
	return file, nil
}

func (v *Validator) fail(err error) error {
	if v.Log != nil {
		fields := logrus.Fields{}
		if pathErr, ok := err.(*PathError); ok {
			fields["op"] = string(pathErr.Op)
			fields["path"] = pathErr.Path
			fields["code"] = pathErr.Code.String()
		}
		v.Log.WithFields(fields).Debug(err.Error())
	}
	return err
}
