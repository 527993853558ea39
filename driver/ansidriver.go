// Package driver provides the one concrete, shippable stagecraft.Driver
// implementation: a real ANSI terminal reached through stdin/stdout
// (spec.md §6, SPEC_FULL.md §8). It is optional — tests and embedders
// construct stagecraft.Screen with a fake Driver directly.
package driver

import (
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/gostagecraft/stagecraft"
)

// ANSIDriver drives a real terminal via ANSI/VT100 escape sequences,
// grounded on phroun-purfecterm/cli/terminal.go's raw-mode/alt-screen/
// SIGWINCH lifecycle and germtb-goli/term_linux.go's termios fallback
// for platforms x/term doesn't cover directly.
type ANSIDriver struct {
	in  *os.File
	out *os.File

	oldState *term.State
	mouse    bool

	mu     sync.Mutex
	width  int
	height int
	resized atomic.Bool

	sigwinch chan os.Signal
	done     chan struct{}

	events   chan stagecraft.Event
	colours  int
	unicode  bool
}

// Open puts the terminal into raw mode, switches to the alternate
// screen, hides the native cursor, and starts the SIGWINCH watcher and
// input decode loop. mouseTracking enables SGR (1006) mouse reporting.
func Open(mouseTracking bool) (*ANSIDriver, error) {
	in, out := os.Stdin, os.Stdout
	state, err := term.MakeRaw(int(in.Fd()))
	if err != nil {
		return nil, err
	}

	d := &ANSIDriver{
		in: in, out: out, oldState: state, mouse: mouseTracking,
		sigwinch: make(chan os.Signal, 1),
		done:     make(chan struct{}),
		events:   make(chan stagecraft.Event, 256),
		colours:  256,
		unicode:  isUnicodeLocale(),
	}
	if os.Getenv("COLORTERM") == "truecolor" || os.Getenv("COLORTERM") == "24bit" {
		d.colours = 1 << 24
	}

	w, h, err := term.GetSize(int(out.Fd()))
	if err != nil {
		if w2, h2, ferr := sizeFallback(int(out.Fd())); ferr == nil {
			w, h = w2, h2
		} else {
			w, h = 80, 24
		}
	}
	d.width, d.height = w, h

	d.write("\x1b[?25l")   // hide cursor
	d.write("\x1b[?1049h") // alternate screen
	d.write("\x1b[2J\x1b[H")
	if mouseTracking {
		d.write("\x1b[?1000h\x1b[?1006h")
	}

	signal.Notify(d.sigwinch, syscall.SIGWINCH)
	go d.watchResize()
	go d.readLoop()

	return d, nil
}

// isInteractive reports whether stdin is a real terminal, honouring the
// FORCE_TTY override spec.md §6 requires for scripted/recorded runs.
func isInteractive(f *os.File) bool {
	if v := os.Getenv("FORCE_TTY"); v != "" && v != "0" {
		return true
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// IsInteractive reports whether stdin looks like a live terminal.
func (d *ANSIDriver) IsInteractive() bool { return isInteractive(d.in) }

func (d *ANSIDriver) write(s string) { d.out.WriteString(s) }

func (d *ANSIDriver) watchResize() {
	for {
		select {
		case <-d.sigwinch:
			w, h, err := term.GetSize(int(d.out.Fd()))
			if err != nil {
				w, h, err = sizeFallback(int(d.out.Fd()))
				if err != nil {
					continue
				}
			}
			d.mu.Lock()
			changed := w != d.width || h != d.height
			d.width, d.height = w, h
			d.mu.Unlock()
			if changed {
				d.resized.Store(true)
			}
		case <-d.done:
			return
		}
	}
}

func (d *ANSIDriver) Size() (int, int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.width, d.height
}

func (d *ANSIDriver) ResizedSinceLastCall() bool {
	return d.resized.Swap(false)
}

func (d *ANSIDriver) ColourCount() int { return d.colours }

func (d *ANSIDriver) UnicodeAware() bool { return d.unicode }

func (d *ANSIDriver) Palette() stagecraft.Palette { return xterm256Palette() }

func (d *ANSIDriver) SetCursorVisible(visible bool) {
	if visible {
		d.write("\x1b[?25h")
	} else {
		d.write("\x1b[?25l")
	}
}

func (d *ANSIDriver) Bell() { d.write("\a") }

// ReadInput drains whatever keyboard/mouse events the decode loop has
// queued since the last call, never blocking (spec.md §6).
func (d *ANSIDriver) ReadInput() []stagecraft.Event {
	var out []stagecraft.Event
	for {
		select {
		case ev := <-d.events:
			out = append(out, ev)
		default:
			return out
		}
	}
}

// Close restores the terminal: disables mouse tracking, shows the
// cursor, leaves the alternate screen, and resets the termios state
// (spec.md §7 "terminal restoration must occur even on abnormal exit").
func (d *ANSIDriver) Close() error {
	select {
	case <-d.done:
	default:
		close(d.done)
	}
	signal.Stop(d.sigwinch)
	if d.mouse {
		d.write("\x1b[?1006l\x1b[?1000l")
	}
	d.write("\x1b[?25h")
	d.write("\x1b[?1049l")
	if d.oldState != nil {
		return term.Restore(int(d.in.Fd()), d.oldState)
	}
	return nil
}
