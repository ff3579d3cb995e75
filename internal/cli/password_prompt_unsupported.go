//go:build !windows && !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly

package cli

import (
	"errors"
	"os"
)

func disableEcho(*os.File) (func(), error) {
	return nil, errors.New("hidden password input is not supported on this platform")
}
