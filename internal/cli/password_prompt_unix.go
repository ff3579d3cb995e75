//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package cli

import (
	"os"

	"golang.org/x/sys/unix"
)

func disableEcho(stdin *os.File) (func(), error) {
	fd := int(stdin.Fd())
	current, err := unix.IoctlGetTermios(fd, getTermiosRequest)
	if err != nil {
		return nil, err
	}
	original := *current
	silent := original
	silent.Lflag &^= unix.ECHO

	if err := unix.IoctlSetTermios(fd, setTermiosRequest, &silent); err != nil {
		return nil, err
	}
	return func() {
		_ = unix.IoctlSetTermios(fd, setTermiosRequest, &original)
	}, nil
}
