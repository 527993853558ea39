package driver

import (
	"os"
	"strings"

	"github.com/gostagecraft/stagecraft"
)

// xterm256Palette reproduces the standard xterm 256-colour cube and
// greyscale ramp (indices 16-231 a 6x6x6 cube, 232-255 greyscale),
// matching the table original_source/asciimatics/parsers.py's
// `nearestXterm256` matching assumes exists. The low 16 entries use the
// classic VGA-derived values most terminal emulators ship.
func xterm256Palette() stagecraft.Palette {
	p := make(stagecraft.Palette, 256)
	vga := [16][3]uint8{
		{0, 0, 0}, {205, 0, 0}, {0, 205, 0}, {205, 205, 0},
		{0, 0, 238}, {205, 0, 205}, {0, 205, 205}, {229, 229, 229},
		{127, 127, 127}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
		{92, 92, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
	}
	for i, rgb := range vga {
		p[stagecraft.Color(i)] = rgb
	}
	steps := [6]uint8{0, 95, 135, 175, 215, 255}
	idx := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				p[stagecraft.Color(idx)] = [3]uint8{steps[r], steps[g], steps[b]}
				idx++
			}
		}
	}
	for i := 0; i < 24; i++ {
		v := uint8(8 + i*10)
		p[stagecraft.Color(232+i)] = [3]uint8{v, v, v}
	}
	return p
}

// isUnicodeLocale reports whether the environment's locale claims a
// UTF-8 character set, the same signal
// original_source/asciimatics/screen.py uses to decide `_unicode_aware`.
func isUnicodeLocale() bool {
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if v := os.Getenv(key); v != "" {
			return strings.Contains(strings.ToUpper(v), "UTF-8") || strings.Contains(strings.ToUpper(v), "UTF8")
		}
	}
	return false
}
