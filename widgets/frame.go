package widgets

import "github.com/gostagecraft/stagecraft"

// Frame is a full window Effect composed of Layouts (spec.md §4.8, C10).
// It satisfies stagecraft.Effect so it can be added directly to a Scene.
type Frame struct {
	Name    string
	Title   string
	Border  BorderStyle
	Shadow  bool
	Modal   bool
	HoverFocus bool
	Palette Palette
	OnLoad  func(*Frame)
	// OnClaimFocus is called when a mouse click inside the Frame claims
	// focus, so an owning Player/Scene can move this Frame to the top of
	// the z-order (spec.md §4.8 "moving this Frame to the top of the scene
	// stack"). Optional.
	OnClaimFocus func()

	Data map[string]any

	x, y, w, h int
	canvas     *stagecraft.Canvas

	layouts     []*Layout
	liveLayout  int

	stopFrame   int
	updateEvery int
}

// NewFrame creates a Frame at (x,y) with the given outer size (including
// border, if any). h is the visible height; the content height (set by
// Fix) may exceed the inner area, triggering a scrollbar.
func NewFrame(x, y, w, h int, title string, border BorderStyle, modal bool) *Frame {
	f := &Frame{
		Name: title, Title: title, Border: border, Modal: modal,
		Palette: DefaultPalette(), Data: map[string]any{},
		x: x, y: y, w: w, h: h,
		liveLayout:  0,
		updateEvery: 1,
	}
	f.canvas = stagecraft.NewCanvas(f.innerWidth(), f.innerHeight(), f.innerHeight(), true)
	return f
}

func (f *Frame) innerWidth() int {
	if f.Border == BorderNone {
		return f.w
	}
	return f.w - 2
}

func (f *Frame) innerHeight() int {
	if f.Border == BorderNone {
		return f.h
	}
	return f.h - 2
}

// AddLayout appends a Layout, stacked below the previous ones.
func (f *Frame) AddLayout(l *Layout) { f.layouts = append(f.layouts, l) }

// Fix lays out every Layout top to bottom inside the Frame's inner area,
// reserving the height the other Layouts leave (at least one row) for a
// Layout marked FillFrame and placing the Layouts after it below that
// reservation; the widgets inside the fill Layout keep the heights
// Layout.Fix gives them. It then reallocates the content canvas to the resulting total (spec.md
// §4.8). Panics (Highlander) if more than one Layout is marked FillFrame.
func (f *Frame) Fix() {
	width := f.innerWidth()
	fixedTotal := 0
	fillIdx := -1
	for i, l := range f.layouts {
		if l.FillFrame {
			if fillIdx >= 0 {
				highlanderPanic("Frame")
			}
			fillIdx = i
			continue
		}
	}
	// First pass: size non-fill layouts to learn fixedTotal.
	y := 0
	heights := make([]int, len(f.layouts))
	for i, l := range f.layouts {
		if i == fillIdx {
			continue
		}
		h := l.Fix(0, y, width)
		heights[i] = h
		fixedTotal += h
		y += h
	}
	contentHeight := fixedTotal
	if fillIdx >= 0 {
		fillHeight := f.innerHeight() - fixedTotal
		if fillHeight < 1 {
			fillHeight = 1
		}
		fy := 0
		for i := 0; i < fillIdx; i++ {
			fy += heights[i]
		}
		heights[fillIdx] = f.layouts[fillIdx].Fix(0, fy, width)
		// Reserve the remaining height for the fill layout; its widgets
		// keep the geometry Layout.Fix gave them.
		if heights[fillIdx] < fillHeight {
			heights[fillIdx] = fillHeight
		}
		// Re-place the layouts after the fill layout below its slot.
		ly := fy + heights[fillIdx]
		for i := fillIdx + 1; i < len(f.layouts); i++ {
			f.layouts[i].Fix(0, ly, width)
			ly += heights[i]
		}
		contentHeight = fixedTotal + heights[fillIdx]
	}
	if contentHeight < f.innerHeight() {
		contentHeight = f.innerHeight()
	}
	f.canvas.Resize(width, f.innerHeight(), contentHeight)
}

// SetData assigns the Frame's persistent data map and pushes every value
// down into its named widget (spec.md §4.7 "On construction and on any
// explicit data= assignment, every Layout calls update_widgets").
func (f *Frame) SetData(data map[string]any) {
	f.Data = data
	f.updateWidgets()
}

func (f *Frame) updateWidgets() {
	for _, l := range f.layouts {
		for _, w := range l.Widgets() {
			v, ok := w.(Valuer)
			if !ok {
				continue
			}
			if val, present := f.Data[w.Name()]; present {
				v.SetAnyValue(val)
			} else {
				v.SetAnyValue(v.ZeroValue())
			}
		}
	}
}

// Save writes every named widget's current value back into Data (spec.md
// §4.7). When validate is set, widgets whose validator rejects the current
// value are collected into InvalidFieldsError and the save is rolled back
// (Data is left unchanged).
func (f *Frame) Save(validate bool) error {
	next := map[string]any{}
	for k, v := range f.Data {
		next[k] = v
	}
	var invalid []string
	for _, l := range f.layouts {
		for _, w := range l.Widgets() {
			v, ok := w.(Valuer)
			if !ok {
				continue
			}
			if validate && !v.ValidateValue() {
				invalid = append(invalid, w.Name())
				continue
			}
			next[w.Name()] = v.AnyValue()
		}
	}
	if len(invalid) > 0 {
		return &stagecraft.InvalidFieldsError{Names: invalid}
	}
	f.Data = next
	return nil
}

// Reset restarts every Layout, focuses the first eligible widget, and
// calls OnLoad if set (spec.md §4.6 Scene entry / §4.8 Frame construction).
func (f *Frame) Reset() {
	for _, l := range f.layouts {
		l.Reset()
	}
	f.liveLayout = 0
	for i, l := range f.layouts {
		if l.FocusFirst() {
			f.liveLayout = i
			break
		}
	}
	if f.OnLoad != nil {
		f.OnLoad(f)
	}
}

// StopFrame/FrameUpdateCount satisfy stagecraft.Effect; a Frame runs
// forever and redraws every tick by default.
func (f *Frame) StopFrame() int        { return f.stopFrame }
func (f *Frame) FrameUpdateCount() int { return f.updateEvery }

// Update draws the border/title/shadow, every Layout, and a scrollbar if
// the laid-out content exceeds the visible height, then composites the
// Frame's own canvas onto the Scene's canvas at the Frame's origin
// (spec.md §4.8).
func (f *Frame) Update(canvas *stagecraft.Canvas, frameNo int) {
	pal := f.Palette
	bg := pal.Get("background")
	f.canvas.ClearBuffer(bg, 0, 0, f.canvas.Width(), f.canvas.BufferHeight())
	for _, l := range f.layouts {
		l.Update(f.canvas, frameNo, pal)
	}
	if f.canvas.BufferHeight() > f.canvas.Height() {
		sb := NewScrollBar(f.canvas.Width()-1, 0, f.canvas.Height(), func() float64 {
			maxStart := f.canvas.BufferHeight() - f.canvas.Height()
			if maxStart <= 0 {
				return 0
			}
			return float64(f.canvas.StartLine()) / float64(maxStart)
		}, func(p float64) {
			f.canvas.ScrollTo(int(p * float64(f.canvas.BufferHeight()-f.canvas.Height())))
		})
		sb.Update(f.canvas, pal)
	}

	if f.Shadow {
		canvas.Highlight(f.x+1, f.y+f.h, f.w, 1, pal.Get("shadow").FG, pal.Get("shadow").BG, 100)
		canvas.Highlight(f.x+f.w, f.y+1, 1, f.h, pal.Get("shadow").FG, pal.Get("shadow").BG, 100)
	}
	if f.Border != BorderNone {
		f.drawBorder(canvas, pal)
	}
	dx, dy := f.x, f.y
	if f.Border != BorderNone {
		dx, dy = f.x+1, f.y+1
	}
	canvas.BlitFrom(f.canvas, dx, dy)
}

func (f *Frame) drawBorder(canvas *stagecraft.Canvas, pal Palette) {
	chars := BorderCharSets[f.Border]
	style := pal.Get("borders")
	canvas.PrintAt(string(chars.TopLeft), f.x, f.y, style, false)
	canvas.PrintAt(string(chars.TopRight), f.x+f.w-1, f.y, style, false)
	canvas.PrintAt(string(chars.BottomLeft), f.x, f.y+f.h-1, style, false)
	canvas.PrintAt(string(chars.BottomRight), f.x+f.w-1, f.y+f.h-1, style, false)
	hLine := repeatRune(chars.Horizontal, f.w-2)
	canvas.PrintAt(hLine, f.x+1, f.y, style, false)
	canvas.PrintAt(hLine, f.x+1, f.y+f.h-1, style, false)
	for y := f.y + 1; y < f.y+f.h-1; y++ {
		canvas.PrintAt(string(chars.Vertical), f.x, y, style, false)
		canvas.PrintAt(string(chars.Vertical), f.x+f.w-1, y, style, false)
	}
	if f.Title != "" {
		titleStyle := pal.Get("title")
		canvas.PrintAt(" "+f.Title+" ", f.x+2, f.y, titleStyle, false)
	}
}

func repeatRune(r rune, n int) string {
	if n <= 0 {
		return ""
	}
	out := make([]rune, n)
	for i := range out {
		out[i] = r
	}
	return string(out)
}

// ProcessEvent routes input to the Frame (spec.md §4.8): mouse events are
// rebased to Frame-local coordinates, a click inside claims focus and
// dispatches to the Layout/Widget under the cursor (clicks outside a modal
// Frame are swallowed); keyboard events go to the focused Layout/Widget,
// with Tab/Shift-Tab/arrow keys driving focus traversal.
func (f *Frame) ProcessEvent(ev stagecraft.Event) stagecraft.Event {
	switch e := ev.(type) {
	case stagecraft.MouseEvent:
		local := stagecraft.MouseEvent{X: e.X - f.x, Y: e.Y - f.y, Buttons: e.Buttons}
		inside := local.X >= 0 && local.X < f.w && local.Y >= 0 && local.Y < f.h
		if !inside {
			if f.Modal {
				return nil // swallow clicks outside a modal Frame
			}
			return ev
		}
		if e.Buttons != 0 && f.OnClaimFocus != nil {
			f.OnClaimFocus()
		}
		if f.Border != BorderNone {
			local.X--
			local.Y--
		}
		for i, l := range f.layouts {
			for _, w := range l.Widgets() {
				if w.IsTabStop() && !w.IsDisabled() && w.IsMouseOver(local, false, 0) {
					f.liveLayout = i
					f.focusWidgetInLayout(l, w)
				}
			}
		}
		for _, l := range f.layouts {
			if rest := l.dispatchEvent(local); rest == nil {
				return nil
			}
		}
		return nil
	case stagecraft.KeyboardEvent:
		switch e.Key {
		case stagecraft.KeyTab:
			f.tabFocus(1)
			return nil
		case stagecraft.KeyBackTab:
			f.tabFocus(-1)
			return nil
		case stagecraft.KeyUp, stagecraft.KeyDown, stagecraft.KeyLeft, stagecraft.KeyRight:
			if f.arrowFocus(e.Key) {
				return nil
			}
		}
		if l := f.currentLayout(); l != nil {
			if w := l.CurrentWidget(); w != nil {
				return w.ProcessEvent(ev)
			}
		}
		return ev
	}
	return ev
}

func (f *Frame) currentLayout() *Layout {
	if f.liveLayout < 0 || f.liveLayout >= len(f.layouts) {
		return nil
	}
	return f.layouts[f.liveLayout]
}

func (f *Frame) focusWidgetInLayout(l *Layout, target Widget) {
	for c, col := range l.columns {
		for i, w := range col {
			if w == target {
				l.FocusExact(c, i)
				return
			}
		}
	}
}

func (l *Layout) dispatchEvent(ev stagecraft.Event) stagecraft.Event {
	for _, w := range l.Widgets() {
		if w.IsMouseOver(ev, false, 0) {
			return w.ProcessEvent(ev)
		}
	}
	return ev
}

func (f *Frame) tabFocus(direction int) {
	l := f.currentLayout()
	if l != nil && l.FindNext(direction, false) {
		return
	}
	n := len(f.layouts)
	if n == 0 {
		return
	}
	for step := 1; step <= n; step++ {
		idx := ((f.liveLayout+direction*step)%n + n) % n
		cand := f.layouts[idx]
		ok := false
		if direction > 0 {
			ok = cand.FocusFirst()
		} else {
			ok = cand.FocusLast()
		}
		if ok {
			f.liveLayout = idx
			return
		}
	}
}

func (f *Frame) arrowFocus(key stagecraft.KeyCode) bool {
	l := f.currentLayout()
	if l == nil {
		return false
	}
	var dir Direction
	switch key {
	case stagecraft.KeyUp:
		dir = DirUp
	case stagecraft.KeyDown:
		dir = DirDown
	case stagecraft.KeyLeft:
		dir = DirLeft
	case stagecraft.KeyRight:
		dir = DirRight
	}
	if l.FindNearestHorizontal(dir) {
		return true
	}
	for i, cand := range f.layouts {
		if i == f.liveLayout {
			continue
		}
		if cand.FindNearestHorizontal(dir) {
			f.liveLayout = i
			return true
		}
	}
	return false
}
