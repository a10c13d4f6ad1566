package inputs

import (
	"fmt"
	"os"

	"github.com/samber/lo"
)

// Kind is the kind of filesystem object an operation expects
type Kind string

const (
	KindAny       Kind = "any"
	KindFile      Kind = "file"
	KindDirectory Kind = "directory"
)

// Kinds lists every kind accepted by ParseKind
func Kinds() []Kind {
	return []Kind{KindAny, KindFile, KindDirectory}
}

// ParseKind parses a kind as written in the config or on the command line.
// An empty string means any.
func ParseKind(str string) (Kind, error) {
	if str == "" {
		return KindAny, nil
	}
	if str == "dir" {
		return KindDirectory, nil
	}
	kind := Kind(str)
	if !lo.Contains(Kinds(), kind) {
		return KindAny, fmt.Errorf("Unrecognized kind '%s'. Expected one of: %v", str, Kinds())
	}
	return kind, nil
}

// Matches tells us whether info describes an object of this kind. Regular
// files and directories are the only kinds we name, so anything else (devices,
// sockets, pipes) only matches KindAny.
func (k Kind) Matches(info os.FileInfo) bool {
	switch k {
	case KindFile:
		return info.Mode().IsRegular()
	case KindDirectory:
		return info.IsDir()
	}
	return true
}

// KindOf describes what info actually is
func KindOf(info os.FileInfo) string {
	mode := info.Mode()
	switch {
	case mode.IsRegular():
		return string(KindFile)
	case mode.IsDir():
		return string(KindDirectory)
	case mode&os.ModeSymlink != 0:
		return "symlink"
	case mode&os.ModeNamedPipe != 0:
		return "named pipe"
	case mode&os.ModeSocket != 0:
		return "socket"
	case mode&os.ModeDevice != 0:
		return "device"
	}
	return "other"
}

func kindMismatch(info os.FileInfo, expected Kind) error {
	return fmt.Errorf("is a %s, expected a %s", KindOf(info), expected)
}
