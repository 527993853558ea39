package widgets

import "strings"

// NewPopUpDialog builds a modal message-box Frame (spec.md §4.8,
// SPEC_FULL.md §6.5, grounded on
// original_source/asciimatics/widgets/popupdialog.py +
// temppopup.py's shared "modal Frame that removes itself on close"
// shape). width is the longest message line (or the button row) plus
// border, capped at two thirds of screenWidth; onClose receives the index
// of the button pressed. Escape is not handled, and the Frame does not
// remove itself.
func NewPopUpDialog(screenWidth, screenHeight int, text string, buttons []string, onClose func(selected int)) *Frame {
	lines := strings.Split(text, "\n")
	width := 0
	for _, l := range lines {
		if len(l) > width {
			width = len(l)
		}
	}
	width += 2
	if len(buttons) > 0 {
		buttonsWidth := 0
		for _, b := range buttons {
			buttonsWidth += len(b) + 4
		}
		buttonsWidth += len(buttons) + 1
		if buttonsWidth > width {
			width = buttonsWidth
		}
	}
	if max := screenWidth * 2 / 3; width > max {
		width = max
	}

	deltaH := 2
	if len(buttons) > 0 {
		deltaH = 4
	}
	height := len(lines) + deltaH
	if max := screenHeight - 2; height > max {
		height = max
	}

	x := (screenWidth - width) / 2
	y := (screenHeight - height) / 2
	f := NewFrame(x, y, width, height, "", BorderSingle, true)

	msgLayout := NewLayout([]int{1}, true)
	f.AddLayout(msgLayout)
	message := NewTextBox("message", lines)
	message.SetDisabled(true)
	msgLayout.AddWidget(message, 0)

	if len(buttons) > 0 {
		proportions := make([]int, len(buttons))
		for i := range proportions {
			proportions[i] = 1
		}
		btnLayout := NewLayout(proportions, false)
		f.AddLayout(btnLayout)
		for i, label := range buttons {
			idx := i
			btn := NewButton(label, func() {
				if onClose != nil {
					onClose(idx)
				}
			})
			btnLayout.AddWidget(btn, i)
		}
	}
	f.Fix()
	return f
}
