package stagecraft

// fakeDriver is a minimal in-memory Driver used across the root package's
// tests, grounded on the same "construct Screen over a fake Driver
// directly" pattern ansidriver.go's package doc calls out.
type fakeDriver struct {
	width, height int
	writes        [][]CellRun
	writeErr      error
	resized       bool
	events        []Event
}

func newFakeDriver(w, h int) *fakeDriver {
	return &fakeDriver{width: w, height: h}
}

func (d *fakeDriver) ReadInput() []Event {
	out := d.events
	d.events = nil
	return out
}

func (d *fakeDriver) WriteCells(runs []CellRun) error {
	if d.writeErr != nil {
		return d.writeErr
	}
	cp := make([]CellRun, len(runs))
	copy(cp, runs)
	d.writes = append(d.writes, cp)
	return nil
}

func (d *fakeDriver) Size() (int, int) { return d.width, d.height }

func (d *fakeDriver) ResizedSinceLastCall() bool {
	r := d.resized
	d.resized = false
	return r
}

func (d *fakeDriver) ColourCount() int   { return 256 }
func (d *fakeDriver) UnicodeAware() bool { return true }
func (d *fakeDriver) Palette() Palette   { return Palette{} }
func (d *fakeDriver) SetCursorVisible(bool) {}
func (d *fakeDriver) Bell()                 {}
func (d *fakeDriver) Close() error          { return nil }
