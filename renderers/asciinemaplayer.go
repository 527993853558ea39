package renderers

import (
	"bufio"
	"encoding/json"
	"io"
	"os"

	"github.com/gostagecraft/stagecraft"
)

// asciinemaHeader is the first JSON line of a v2 asciicast file.
type asciinemaHeader struct {
	Version int `json:"version"`
	Width   int `json:"width"`
	Height  int `json:"height"`
}

// AsciinemaPlayer plays back a v2 asciicast recording against a virtual
// clock that advances by a fixed 0.05s per call, clamping gaps longer than
// maxDelay (spec.md §4.4 and §6 "Asciinema file format"; grounded on
// original_source/asciimatics/renderers/players.py's AsciinemaPlayer).
// Only the version-2 format is supported; any other version is a
// stagecraft.MalformedInputError.
type AsciinemaPlayer struct {
	screenPlayer
	reader    *bufio.Reader
	file      *os.File
	maxDelay  float64
	counter   float64
	next      float64
	buffered  string
	havePending bool
	done      bool
}

// NewAsciinemaPlayer opens filename, validates the v2 header, and returns
// a player. height/width of 0 default to the header's values; maxDelay of
// 0 disables gap-clamping.
func NewAsciinemaPlayer(filename string, height, width int, maxDelay float64) (*AsciinemaPlayer, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	reader := bufio.NewReader(f)
	headerLine, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		f.Close()
		return nil, err
	}
	var header asciinemaHeader
	if jsonErr := json.Unmarshal([]byte(headerLine), &header); jsonErr != nil {
		f.Close()
		return nil, &stagecraft.MalformedInputError{Context: "asciinema header is not valid JSON"}
	}
	if header.Version != 2 {
		f.Close()
		return nil, &stagecraft.MalformedInputError{Context: "unsupported asciinema file format"}
	}
	if height <= 0 {
		height = header.Height
	}
	if width <= 0 {
		width = header.Width
	}
	return &AsciinemaPlayer{
		screenPlayer: newScreenPlayer(height, width),
		reader:       reader,
		file:         f,
		maxDelay:     maxDelay,
	}, nil
}

// Close releases the underlying file handle.
func (a *AsciinemaPlayer) Close() error { return a.file.Close() }

func (a *AsciinemaPlayer) Images() []Image { return []Image{a.render()} }

func (a *AsciinemaPlayer) RenderedText() ([]string, [][]stagecraft.Style) {
	im := a.render()
	return im.Lines, im.StyleMap
}

// asciinemaEvent is one [time, kind, data] event record.
type asciinemaEvent struct {
	Time float64
	Kind string
	Data string
}

func (e *asciinemaEvent) UnmarshalJSON(b []byte) error {
	var raw [3]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if err := json.Unmarshal(raw[0], &e.Time); err != nil {
		return err
	}
	if err := json.Unmarshal(raw[1], &e.Kind); err != nil {
		return err
	}
	return json.Unmarshal(raw[2], &e.Data)
}

func (a *AsciinemaPlayer) render() Image {
	a.counter += 0.05
	if a.counter >= a.next {
		if a.havePending {
			a.playContent(a.buffered)
			a.havePending = false
		}
		for {
			line, err := a.reader.ReadString('\n')
			if len(line) == 0 && err != nil {
				a.done = true
				break
			}
			var ev asciinemaEvent
			if jsonErr := json.Unmarshal([]byte(line), &ev); jsonErr != nil {
				break
			}
			a.next = ev.Time
			a.buffered = ev.Data
			a.havePending = true
			if a.next > a.counter {
				if a.maxDelay > 0 && a.next-a.counter > a.maxDelay {
					a.counter = a.next - a.maxDelay
				}
				break
			}
			a.playContent(a.buffered)
			a.havePending = false
			if err == io.EOF {
				a.done = true
				break
			}
		}
	}
	return a.snapshot()
}
