//go:build !windows

package driver

import "golang.org/x/sys/unix"

// sizeFallback asks the kernel directly via TIOCGWINSZ when
// term.GetSize fails (e.g. stdout redirected but FORCE_TTY set),
// grounded on germtb-goli/term_linux.go's own TIOCGWINSZ ioctl, routed
// through x/sys/unix instead of a hand-rolled syscall number table so
// it also covers Darwin/BSD.
func sizeFallback(fd int) (width, height int, err error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}
