package renderers

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/gostagecraft/stagecraft"
)

// AnsiArtPlayer plays back an ANSI-art text file a fixed number of lines
// per call (spec.md §4.4, grounded on
// original_source/asciimatics/renderers/players.py's AnsiArtPlayer). The
// caller is responsible for closing it via Close when done.
type AnsiArtPlayer struct {
	screenPlayer
	reader *bufio.Reader
	file   *os.File
	strip  bool
	rate   int
	done   bool
}

// NewAnsiArtPlayer opens filename and returns a player rendering it into a
// height x width canvas, reading rate lines per RenderedText call.
func NewAnsiArtPlayer(filename string, height, width int, strip bool, rate int) (*AnsiArtPlayer, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	if rate <= 0 {
		rate = 2
	}
	return &AnsiArtPlayer{
		screenPlayer: newScreenPlayer(height, width),
		reader:       bufio.NewReader(f),
		file:         f,
		strip:        strip,
		rate:         rate,
	}, nil
}

// Close releases the underlying file handle.
func (a *AnsiArtPlayer) Close() error { return a.file.Close() }

func (a *AnsiArtPlayer) Images() []Image { return []Image{a.render()} }

func (a *AnsiArtPlayer) RenderedText() ([]string, [][]stagecraft.Style) {
	im := a.render()
	return im.Lines, im.StyleMap
}

func (a *AnsiArtPlayer) render() Image {
	for i := 0; i < a.rate && !a.done; i++ {
		line, err := a.reader.ReadString('\n')
		if a.strip {
			line = strings.TrimRight(line, "\r\n")
		}
		if line != "" {
			a.playContent(line)
		}
		if err == io.EOF {
			a.done = true
		}
	}
	return a.snapshot()
}
