//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package term

import "golang.org/x/sys/unix"

const (
	ioctlReadTermios  = unix.TIOCGETA
	ioctlWriteTermios = unix.TIOCSETA
)

func flush(fd int) error {
	return unix.IoctlSetPointerInt(fd, unix.TIOCFLUSH, unix.FREAD|unix.FWRITE)
}
