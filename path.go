package stagecraft

import "math"

// Point is an (x, y) position, recorded in Canvas/Screen cell units.
type Point struct{ X, Y float64 }

// pathStep is one recorded position, emitted by NextPos for a single
// frame (Wait produces a run of steps repeating the current position).
type pathStep struct {
	X, Y float64
}

// Path is a finite, pre-recorded sequence of positions with a restart
// cursor (spec.md §3/§4.5, C9). Dynamic paths (spec.md "compute position
// from external events") are modelled as a user-supplied PathFunc instead
// of a recorded sequence; see DynamicPath below.
type Path struct {
	steps  []pathStep
	cursor int
	curX, curY float64
}

// NewPath creates an empty Path starting at the origin.
func NewPath() *Path { return &Path{} }

// JumpTo immediately repositions the path cursor's reference point,
// without recording any interpolated steps (spec.md §4.5).
func (p *Path) JumpTo(x, y float64) *Path {
	p.curX, p.curY = x, y
	p.steps = append(p.steps, pathStep{X: x, Y: y})
	return p
}

// Wait appends n steps that hold the current position (spec.md §4.5).
func (p *Path) Wait(n int) *Path {
	for i := 0; i < n; i++ {
		p.steps = append(p.steps, pathStep{X: p.curX, Y: p.curY})
	}
	return p
}

// MoveStraightTo appends `steps` linearly interpolated positions from the
// current position to (x,y), integer-rounded, ending exactly at (x,y)
// (spec.md §4.5, Testable Property 5).
func (p *Path) MoveStraightTo(x, y float64, steps int) *Path {
	if steps <= 0 {
		return p.JumpTo(x, y)
	}
	x0, y0 := p.curX, p.curY
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p.steps = append(p.steps, pathStep{
			X: math.Round(x0 + t*(x-x0)),
			Y: math.Round(y0 + t*(y-y0)),
		})
	}
	p.curX, p.curY = x, y
	return p
}

// MoveRoundTo appends `steps` positions per segment along a Catmull-Rom
// spline through `points`, with the endpoints duplicated so the curve
// passes through the first and last control point (spec.md §4.5).
func (p *Path) MoveRoundTo(points [][2]float64, steps int) *Path {
	if len(points) == 0 || steps <= 0 {
		return p
	}
	pts := make([][2]float64, 0, len(points)+2)
	pts = append(pts, [2]float64{p.curX, p.curY})
	pts = append(pts, points...)
	pts = append(pts, points[len(points)-1])
	// Duplicate the first control point too, so Catmull-Rom has a P0 for
	// the first real segment.
	full := append([][2]float64{pts[0]}, pts...)

	for seg := 0; seg+3 < len(full); seg++ {
		p0, p1, p2, p3 := full[seg], full[seg+1], full[seg+2], full[seg+3]
		for i := 1; i <= steps; i++ {
			t := float64(i) / float64(steps)
			x, y := catmullRom(p0[0], p1[0], p2[0], p3[0], t), catmullRom(p0[1], p1[1], p2[1], p3[1], t)
			p.steps = append(p.steps, pathStep{X: math.Round(x), Y: math.Round(y)})
		}
	}
	last := points[len(points)-1]
	p.curX, p.curY = last[0], last[1]
	return p
}

func catmullRom(p0, p1, p2, p3, t float64) float64 {
	t2 := t * t
	t3 := t2 * t
	return 0.5 * ((2 * p1) +
		(-p0+p2)*t +
		(2*p0-5*p1+4*p2-p3)*t2 +
		(-p0+3*p1-3*p2+p3)*t3)
}

// NextPos returns the next position in the sequence and advances the
// cursor, or (0,0,false) once the path is exhausted (spec.md §3).
func (p *Path) NextPos() (Point, bool) {
	if p.IsFinished() {
		return Point{}, false
	}
	s := p.steps[p.cursor]
	p.cursor++
	return Point{X: s.X, Y: s.Y}, true
}

// IsFinished reports whether the cursor has reached the end of the
// recorded sequence (spec.md §3).
func (p *Path) IsFinished() bool { return p.cursor >= len(p.steps) }

// Reset restarts the cursor from the beginning (spec.md §4.5).
func (p *Path) Reset() { p.cursor = 0 }

// Len is the number of recorded positions.
func (p *Path) Len() int { return len(p.steps) }

// PathFunc computes a dynamic path's next position from the current
// frame number, for paths driven by external events rather than a
// recorded sequence (spec.md §3 "Dynamic paths").
type PathFunc func(frameNo int) (Point, bool)

// DynamicPath wraps a PathFunc behind the Path-like NextPos/IsFinished/
// Reset contract.
type DynamicPath struct {
	fn      PathFunc
	frameNo int
	done    bool
}

// NewDynamicPath creates a DynamicPath from a position function.
func NewDynamicPath(fn PathFunc) *DynamicPath { return &DynamicPath{fn: fn} }

func (d *DynamicPath) NextPos() (Point, bool) {
	if d.done {
		return Point{}, false
	}
	pt, ok := d.fn(d.frameNo)
	d.frameNo++
	if !ok {
		d.done = true
	}
	return pt, ok
}

func (d *DynamicPath) IsFinished() bool { return d.done }

func (d *DynamicPath) Reset() { d.frameNo = 0; d.done = false }
