//go:build !windows

package inputs

import (
	"os"
	"syscall"
)

// a FIFO with no writer (or no reader, when opening to write) would otherwise
// block in open(2) before we get to look at what the path is
const nonblockFlag = syscall.O_NONBLOCK

func clearNonblock(file *os.File) error {
	return syscall.SetNonblock(int(file.Fd()), false)
}
