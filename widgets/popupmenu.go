package widgets

// MenuItem is one PopupMenu entry: the label shown and the callback
// invoked when it's chosen.
type MenuItem struct {
	Label  string
	Action func()
}

// NewPopupMenu builds a borderless modal Frame listing menu items at
// (x, y), clamped so it stays on screen (spec.md §4.8, SPEC_FULL.md
// §6.5, grounded on
// original_source/asciimatics/widgets/popupmenu.py). Selecting an item
// (or it being clicked) calls onDismiss and then the item's Action; the
// Frame does not remove itself.
func NewPopupMenu(screenWidth, screenHeight int, items []MenuItem, x, y int, onDismiss func()) *Frame {
	w := 0
	for _, i := range items {
		if len(i.Label)+4 > w {
			w = len(i.Label) + 4
		}
	}
	h := len(items)
	if x+w >= screenWidth {
		x -= w - 1
	}
	if y+h >= screenHeight {
		y -= h - 1
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	f := NewFrame(x, y, w, h, "", BorderNone, true)
	f.HoverFocus = true
	layout := NewLayout([]int{1}, true)
	f.AddLayout(layout)
	for _, item := range items {
		action := item.Action
		btn := NewButton(item.Label, func() {
			if onDismiss != nil {
				onDismiss()
			}
			if action != nil {
				action()
			}
		})
		layout.AddWidget(btn, 0)
	}
	f.Fix()
	return f
}
