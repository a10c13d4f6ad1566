package inputs

import "os"

const nonblockFlag = 0

func clearNonblock(*os.File) error {
	return nil
}
