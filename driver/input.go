package driver

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/gostagecraft/stagecraft"
)

// escSequences maps the byte sequence that follows ESC to a named key,
// the mirror image of phroun-purfecterm/cli/input.go's keyToBytesMap
// (which goes the other direction, key name -> bytes, for sending
// synthetic input to a child PTY; here we decode real bytes arriving
// from the user's terminal).
var escSequences = map[string]stagecraft.KeyCode{
	"[A": stagecraft.KeyUp,
	"[B": stagecraft.KeyDown,
	"[C": stagecraft.KeyRight,
	"[D": stagecraft.KeyLeft,
	"[H": stagecraft.KeyHome,
	"[F": stagecraft.KeyEnd,
	"OP": stagecraft.KeyF1,
	"OQ": stagecraft.KeyF2,
	"OR": stagecraft.KeyF3,
	"OS": stagecraft.KeyF4,
	"[Z": stagecraft.KeyBackTab,
	"[3~": stagecraft.KeyDelete,
	"[5~": stagecraft.KeyPageUp,
	"[6~": stagecraft.KeyPageDown,
	"[15~": stagecraft.KeyF5,
	"[17~": stagecraft.KeyF6,
	"[18~": stagecraft.KeyF7,
	"[19~": stagecraft.KeyF8,
	"[20~": stagecraft.KeyF9,
	"[21~": stagecraft.KeyF10,
	"[23~": stagecraft.KeyF11,
	"[24~": stagecraft.KeyF12,
}

// readLoop decodes raw stdin bytes into KeyboardEvent/MouseEvent values
// and feeds the driver's event queue, until Close shuts down reading.
func (d *ANSIDriver) readLoop() {
	r := bufio.NewReader(d.in)
	for {
		b, err := r.ReadByte()
		if err != nil {
			return
		}
		select {
		case <-d.done:
			return
		default:
		}

		switch {
		case b == 0x1b:
			d.decodeEscape(r)
		case b == 127 || b == 8:
			d.emit(stagecraft.KeyboardEvent{Key: stagecraft.KeyBack})
		case b == '\r' || b == '\n':
			d.emit(stagecraft.KeyboardEvent{Key: stagecraft.KeyEnter})
		case b == '\t':
			d.emit(stagecraft.KeyboardEvent{Key: stagecraft.KeyTab})
		case b < 0x80:
			d.emit(stagecraft.KeyboardEvent{Key: stagecraft.KeyCode(b)})
		default:
			d.decodeUTF8Rune(r, b)
		}
	}
}

func (d *ANSIDriver) emit(ev stagecraft.Event) {
	select {
	case d.events <- ev:
	default:
		// Queue full: drop rather than block the reader goroutine.
	}
}

// decodeEscape reads the bytes following a lone ESC (0x1b), handling
// CSI (`[`) and SS3 (`O`) introducers, the SGR mouse protocol
// (`\x1b[<b;x;yM`/`m`), and a bare ESC keypress (nothing follows).
func (d *ANSIDriver) decodeEscape(r *bufio.Reader) {
	first, err := r.Peek(1)
	if err != nil || len(first) == 0 {
		d.emit(stagecraft.KeyboardEvent{Key: stagecraft.KeyEscape})
		return
	}
	if first[0] != '[' && first[0] != 'O' {
		d.emit(stagecraft.KeyboardEvent{Key: stagecraft.KeyEscape})
		return
	}
	intro, _ := r.ReadByte()

	if intro == '[' {
		b2, err := r.Peek(1)
		if err == nil && len(b2) > 0 && b2[0] == '<' {
			r.ReadByte()
			if d.decodeSGRMouse(r) {
				return
			}
		}
	}

	var seq strings.Builder
	seq.WriteByte(intro)
	for {
		c, err := r.ReadByte()
		if err != nil {
			break
		}
		seq.WriteByte(c)
		if (c >= '0' && c <= '9') || c == ';' {
			continue
		}
		break
	}
	if key, ok := escSequences[seq.String()]; ok {
		d.emit(stagecraft.KeyboardEvent{Key: key})
	}
}

// decodeSGRMouse parses the remainder of an SGR mouse report
// (`b;x;yM` for press, `b;x;ym` for release) into a MouseEvent.
func (d *ANSIDriver) decodeSGRMouse(r *bufio.Reader) bool {
	var body strings.Builder
	var final byte
	for {
		c, err := r.ReadByte()
		if err != nil {
			return false
		}
		if c == 'M' || c == 'm' {
			final = c
			break
		}
		body.WriteByte(c)
	}
	parts := strings.Split(body.String(), ";")
	if len(parts) != 3 {
		return false
	}
	btn, err1 := strconv.Atoi(parts[0])
	x, err2 := strconv.Atoi(parts[1])
	y, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return false
	}
	var buttons stagecraft.MouseButton
	if final == 'M' {
		switch btn & 3 {
		case 0:
			buttons = stagecraft.MouseLeft
		case 1:
			buttons = stagecraft.MouseRight
		}
		if btn&64 != 0 {
			buttons |= stagecraft.MouseDouble
		}
	}
	d.emit(stagecraft.MouseEvent{X: x - 1, Y: y - 1, Buttons: buttons})
	return true
}

// decodeUTF8Rune reassembles a multi-byte UTF-8 sequence (the ASCII
// fast path above handles 7-bit input directly).
func (d *ANSIDriver) decodeUTF8Rune(r *bufio.Reader, first byte) {
	n := 0
	switch {
	case first&0xE0 == 0xC0:
		n = 1
	case first&0xF0 == 0xE0:
		n = 2
	case first&0xF8 == 0xF0:
		n = 3
	default:
		return
	}
	buf := []byte{first}
	for i := 0; i < n; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return
		}
		buf = append(buf, b)
	}
	runes := []rune(string(buf))
	if len(runes) == 1 {
		d.emit(stagecraft.KeyboardEvent{Key: stagecraft.KeyCode(runes[0])})
	}
}
