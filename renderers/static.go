package renderers

import (
	"strings"

	"github.com/gostagecraft/stagecraft"
)

// Static is a Renderer that can create all its images in advance; after
// construction the images never change but can be cycled (or indexed by
// an Animation function) for simple animation sequences. It parses the
// `${fg,attr,bg}` markup dialect once, lazily, on first access. Grounded
// on original_source/asciimatics/renderers/base.py's StaticRenderer.
type Static struct {
	raw       []string
	Animation func() int // optional: picks which parsed image to return next

	parsed     []Image
	index      int
	maxW, maxH int
}

// NewStatic creates a Static renderer over the given raw (possibly
// markup-bearing) images.
func NewStatic(images []string, animation func() int) *Static {
	return &Static{raw: images, Animation: animation}
}

func (s *Static) ensureParsed() {
	if s.parsed != nil {
		return
	}
	s.parsed = make([]Image, len(s.raw))
	parser := stagecraft.NewMarkupParser()
	for i, img := range s.raw {
		lines := strings.Split(img, "\n")
		im := Image{Lines: make([]string, len(lines)), StyleMap: make([][]stagecraft.Style, len(lines))}
		for j, line := range lines {
			st := stagecraft.NewStyledText(line, parser, &stagecraft.DefaultStyle)
			im.Lines[j] = string(st.Plain)
			im.StyleMap[j] = st.Styles
			if w := lineWidth(im.Lines[j]); w > s.maxW {
				s.maxW = w
			}
		}
		if len(im.Lines) > s.maxH {
			s.maxH = len(im.Lines)
		}
		s.parsed[i] = im
	}
}

func (s *Static) MaxWidth() int {
	s.ensureParsed()
	return s.maxW
}

func (s *Static) MaxHeight() int {
	s.ensureParsed()
	return s.maxH
}

// RenderedText returns the next image in sequence (spec.md §4.4); the
// Animation function, if set, picks the index instead of cycling.
func (s *Static) RenderedText() ([]string, [][]stagecraft.Style) {
	s.ensureParsed()
	if len(s.parsed) == 0 {
		return nil, nil
	}
	idx := s.index
	if s.Animation != nil {
		idx = s.Animation()
	} else {
		s.index++
		if s.index >= len(s.parsed) {
			s.index = 0
		}
	}
	idx = ((idx % len(s.parsed)) + len(s.parsed)) % len(s.parsed)
	im := s.parsed[idx]
	return im.Lines, im.StyleMap
}

// Images returns every parsed frame (spec.md §4.4).
func (s *Static) Images() []Image {
	s.ensureParsed()
	return s.parsed
}
