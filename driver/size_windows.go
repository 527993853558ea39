//go:build windows

package driver

import "errors"

// sizeFallback has no ioctl equivalent on Windows; term.GetSize already
// covers the console API there, so this just signals "no fallback".
func sizeFallback(fd int) (width, height int, err error) {
	return 0, 0, errors.New("no size fallback on windows")
}
