package stagecraft

import "fmt"

// ResizeError unwinds the Player loop when the driver reports a new size
// mid-play. It carries the Scene that was active so the caller can rebuild
// the Screen and resume it (spec.md §7 "ScreenResized").
type ResizeError struct {
	Scene *Scene
}

func (e *ResizeError) Error() string {
	name := "<unnamed>"
	if e.Scene != nil && e.Scene.Name != "" {
		name = e.Scene.Name
	}
	return fmt.Sprintf("stagecraft: screen resized while scene %q was active", name)
}

// StopRequestError is an error carrying a stop message (spec.md §7
// "StopRequested"). Player.Run neither returns nor handles it; Run stops
// only through OutcomeStop from its FrameCallback.
type StopRequestError struct {
	Message string
}

func (e *StopRequestError) Error() string {
	if e.Message == "" {
		return "stagecraft: application stopped"
	}
	return "stagecraft: application stopped: " + e.Message
}

// InvalidFieldsError is raised by Frame.Save(validate=true) when one or
// more widgets fail validation (spec.md §7 "InvalidFields").
type InvalidFieldsError struct {
	Names []string
}

func (e *InvalidFieldsError) Error() string {
	return fmt.Sprintf("stagecraft: invalid fields: %v", e.Names)
}

// MalformedInputError wraps an I/O-backed renderer's construction-time or
// lazy-open failure (spec.md §7 "MalformedInput"), e.g. an asciinema file
// with an unsupported version or a missing image file.
type MalformedInputError struct {
	Context string
	Err     error
}

func (e *MalformedInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("stagecraft: malformed input (%s): %v", e.Context, e.Err)
	}
	return fmt.Sprintf("stagecraft: malformed input: %s", e.Context)
}

func (e *MalformedInputError) Unwrap() error { return e.Err }

// DriverError wraps an underlying terminal read/write failure, propagated
// verbatim while terminal restoration still runs (spec.md §7 "DriverError").
type DriverError struct {
	Err error
}

func (e *DriverError) Error() string { return "stagecraft: driver error: " + e.Err.Error() }

func (e *DriverError) Unwrap() error { return e.Err }

// Highlander panics when two fill-widgets or fill-layouts compete for the
// same space. This is a programming error caught at `Layout.Fix()` time,
// not a runtime error a caller is expected to recover from (spec.md §7
// "Highlander" — Design Note §9 treats exceptions-as-control-flow as
// result values, but a Highlander conflict is a genuine bug, not a
// control-flow signal, so it stays a panic rather than becoming another
// error return every Fix caller would have to check).
func highlanderPanic(where string) {
	panic("stagecraft: Highlander: two fill widgets/layouts in " + where)
}
