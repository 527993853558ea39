package stagecraft

// Options configures a Play run end to end, grounded on germtb-goli's
// renderer.go Options struct, generalised from a single render target to
// the Scene/Player lifecycle (SPEC_FULL.md §2 "Configuration").
type Options struct {
	// FPS is the fixed frame rate Player.Run ticks at. <=0 defaults to 30.
	FPS int

	// StartScene names the Scene Play should enter first. Empty means the
	// first entry of the Scenes slice passed to Play.
	StartScene string

	// ReduceCPU throttles effects with a FrameUpdateCount of 1 that
	// implement ReduceCPUAware up to every other frame, trading animation smoothness for lower idle CPU
	// on battery-constrained terminals (spec.md §4.6 "reduce_cpu").
	ReduceCPU bool

	// ForceTTY overrides driver interactivity detection, letting a
	// scripted or recorded run proceed against a non-tty stdin/stdout
	// (spec.md §6 "FORCE_TTY"). Play does not read this field: the Driver
	// is opened before Play runs and consults only the FORCE_TTY
	// environment variable.
	ForceTTY bool

	// MouseTracking records whether SGR mouse reporting is wanted. Play
	// does not read this field; mouse reporting is chosen when the Driver
	// is opened.
	MouseTracking bool

	// BufferHeight records the scroll-back capacity wanted on the root
	// Canvas. Play does not read this field; the capacity is the
	// bufferHeight passed to NewScreen.
	BufferHeight int

	// Logger records the Logger in use. Play does not read this field;
	// the Screen's Logger is the one passed to NewScreen.
	Logger *Logger
}

// DefaultOptions returns the zero-value-safe baseline Play falls back to
// when called with a nil *Options.
func DefaultOptions() Options {
	return Options{FPS: 30}
}

// startIndex resolves StartScene against scenes, defaulting to 0 when
// StartScene is empty or names no Scene in the slice.
func (o Options) startIndex(scenes []*Scene) int {
	if o.StartScene == "" {
		return 0
	}
	for i, s := range scenes {
		if s.Name == o.StartScene {
			return i
		}
	}
	return 0
}

// Play is the one-call convenience entry point spec.md §4.6 describes:
// build a Player over screen and scenes per opts and run it to
// completion. A nil opts uses DefaultOptions.
func Play(screen *Screen, scenes []*Scene, opts *Options) error {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	p := NewPlayer(screen, scenes, o.FPS)
	p.sceneIndex = o.startIndex(scenes)
	if o.ReduceCPU {
		for _, s := range scenes {
			for _, e := range s.Effects {
				if e.FrameUpdateCount() <= 1 {
					if ru, ok := e.(ReduceCPUAware); ok {
						ru.SetFrameUpdateCount(2)
					}
				}
			}
		}
	}
	return p.Run()
}

// ReduceCPUAware is implemented by effects that can be told to halve their
// redraw rate under Options.ReduceCPU. Effects that don't implement it
// simply keep their normal cadence.
type ReduceCPUAware interface {
	SetFrameUpdateCount(n int)
}
