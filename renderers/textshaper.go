package renderers

// TextShaper is the seam a FigletText-style renderer would implement:
// given a string and a font name, produce the lines of a large block-
// letter rendering of that string (SPEC_FULL.md §6.3). stagecraft ships
// no implementation — the original's FigletText renderer depends on the
// pyfiglet font corpus, which has no equivalent in the example corpus —
// but any caller supplying a TextShaper can plug it into a Static
// renderer via ShapeToStatic.
type TextShaper interface {
	Shape(text, font string) ([]string, error)
}

// ShapeToStatic renders text via shaper and wraps the result as a Static
// renderer, the same seam a real FigletText implementation would feed
// through (spec.md §4.4 "chained/derived renderers").
func ShapeToStatic(shaper TextShaper, text, font string) (*Static, error) {
	lines, err := shaper.Shape(text, font)
	if err != nil {
		return nil, err
	}
	image := ""
	for i, l := range lines {
		if i > 0 {
			image += "\n"
		}
		image += l
	}
	return NewStatic([]string{image}, nil), nil
}
