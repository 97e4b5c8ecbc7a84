// Implements an abstract representation of
// svg paths, which can then be consumed
// by painting or meshing drivers.
package svgpath

import (
	"strconv"
	"strings"

	"github.com/jbeda/geom"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// Point is an absolute position in user space.
type Point = geom.Coord

type pathCommand uint8

// Human readable path constants
const (
	pathMoveTo pathCommand = iota
	pathLineTo
	pathQuadTo
	pathCubicTo
	pathClose
)

// Segment groups the different drawing operations of a subpath.
// Every coordinate is absolute.
type Segment interface {
	command() pathCommand
}

type MoveTo Point

type LineTo Point

// QuadTo stores the control point then the end point.
type QuadTo [2]Point

// CubicTo stores the two control points then the end point.
type CubicTo [3]Point

type Close struct{}

func (MoveTo) command() pathCommand  { return pathMoveTo }
func (LineTo) command() pathCommand  { return pathLineTo }
func (QuadTo) command() pathCommand  { return pathQuadTo }
func (CubicTo) command() pathCommand { return pathCubicTo }
func (Close) command() pathCommand   { return pathClose }

// Subpath is one connected run of segments.
// Its first segment is always a MoveTo, and a Close, if any, is the last one.
type Subpath []Segment

// Start returns the point of the leading MoveTo.
func (s Subpath) Start() Point {
	if len(s) == 0 {
		return Point{}
	}
	return Point(s[0].(MoveTo))
}

// End returns the pen position after the last segment.
func (s Subpath) End() Point {
	if len(s) == 0 {
		return Point{}
	}
	switch op := s[len(s)-1].(type) {
	case MoveTo:
		return Point(op)
	case LineTo:
		return Point(op)
	case QuadTo:
		return op[1]
	case CubicTo:
		return op[2]
	default: // Close
		return s.Start()
	}
}

// Closed returns true once a Close segment has been appended.
func (s Subpath) Closed() bool {
	if len(s) == 0 {
		return false
	}
	_, ok := s[len(s)-1].(Close)
	return ok
}

// Path describes a sequence of subpaths.
// Higher-level shapes may be reduced to a path.
type Path []Subpath

// Empty returns true if p has no subpath.
func (p Path) Empty() bool { return len(p) == 0 }

// Len returns the total number of segments.
func (p Path) Len() int {
	n := 0
	for _, sp := range p {
		n += len(sp)
	}
	return n
}

// Segments returns the segments of all the subpaths, in order.
func (p Path) Segments() []Segment {
	out := make([]Segment, 0, p.Len())
	for _, sp := range p {
		out = append(out, sp...)
	}
	return out
}

// Clone returns a deep copy of p.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	for i, sp := range p {
		out[i] = append(Subpath(nil), sp...)
	}
	return out
}

func formatPoint(b *strings.Builder, pts ...Point) {
	for i, pt := range pts {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(pt.X, 'f', -1, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(pt.Y, 'f', -1, 64))
	}
}

// ToSVGPath returns a string representation of the path,
// using only absolute commands. Parsing it back yields the same segments.
func (p Path) ToSVGPath() string {
	var b strings.Builder
	for _, sp := range p {
		for _, op := range sp {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			switch op := op.(type) {
			case MoveTo:
				b.WriteByte('M')
				formatPoint(&b, Point(op))
			case LineTo:
				b.WriteByte('L')
				formatPoint(&b, Point(op))
			case QuadTo:
				b.WriteByte('Q')
				formatPoint(&b, op[0], op[1])
			case CubicTo:
				b.WriteByte('C')
				formatPoint(&b, op[0], op[1], op[2])
			case Close:
				b.WriteByte('Z')
			}
		}
	}
	return b.String()
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}

// Clear zeros the path slice
func (p *Path) Clear() {
	*p = (*p)[:0]
}

// pen returns the current position: the end of the last subpath.
func (p Path) pen() Point {
	if len(p) == 0 {
		return Point{}
	}
	return p[len(p)-1].End()
}

// open makes sure the last subpath accepts new segments,
// starting a new one at the pen position if needed.
func (p *Path) open() {
	if n := len(*p); n == 0 || (*p)[n-1].Closed() {
		p.Start(p.pen())
	}
}

func (p *Path) add(op Segment) {
	p.open()
	last := &(*p)[len(*p)-1]
	*last = append(*last, op)
}

// Start starts a new subpath at the given point.
func (p *Path) Start(a Point) {
	*p = append(*p, Subpath{MoveTo(a)})
}

// Line adds a linear segment to the current subpath.
func (p *Path) Line(b Point) {
	p.add(LineTo(b))
}

// QuadBezier adds a quadratic segment to the current subpath.
func (p *Path) QuadBezier(b, c Point) {
	p.add(QuadTo{b, c})
}

// CubeBezier adds a cubic segment to the current subpath.
func (p *Path) CubeBezier(b, c, d Point) {
	p.add(CubicTo{b, c, d})
}

// Stop joins the ends of the current subpath if closeLoop is true,
// adding a line back to its start when the pen is elsewhere.
func (p *Path) Stop(closeLoop bool) {
	if !closeLoop {
		return
	}
	p.open()
	sp := (*p)[len(*p)-1]
	if start := sp.Start(); sp.End() != start {
		p.Line(start)
	}
	p.add(Close{})
}

// points calls f on every point of op, control points included.
func points(op Segment, f func(Point) Point) Segment {
	switch op := op.(type) {
	case MoveTo:
		return MoveTo(f(Point(op)))
	case LineTo:
		return LineTo(f(Point(op)))
	case QuadTo:
		return QuadTo{f(op[0]), f(op[1])}
	case CubicTo:
		return CubicTo{f(op[0]), f(op[1]), f(op[2])}
	}
	return op
}

// Bounds returns the smallest rectangle containing every point of the path,
// control points included. It is the zero Rect for an empty path.
func (p Path) Bounds() geom.Rect {
	var (
		r     geom.Rect
		first = true
	)
	for _, sp := range p {
		for _, op := range sp {
			points(op, func(pt Point) Point {
				if first {
					r = geom.Rect{Min: pt, Max: pt}
					first = false
				} else {
					r.ExpandToContainCoord(pt)
				}
				return pt
			})
		}
	}
	return r
}

// Transform returns a new path with every point mapped by m.
// Bezier curves are preserved by affine maps, so only the
// points are transformed.
func (p Path) Transform(m rasterx.Matrix2D) Path {
	tr := func(pt Point) Point {
		x, y := m.Transform(pt.X, pt.Y)
		return Point{X: x, Y: y}
	}
	out := make(Path, len(p))
	for i, sp := range p {
		out[i] = make(Subpath, len(sp))
		for j, op := range sp {
			out[i][j] = points(op, tr)
		}
	}
	return out
}

// ToFixed converts a point to 26.6 fixed coordinates.
func ToFixed(pt Point) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(pt.X * 64),
		Y: fixed.Int26_6(pt.Y * 64),
	}
}

// AddTo replays the path on q, such as a rasterx.Filler, a rasterx.Dasher
// or a rasterx.Path. Each subpath is sent as Start ... Stop,
// and is closed if it ended with a Close segment.
func (p Path) AddTo(q rasterx.Adder) {
	for _, sp := range p {
		for _, op := range sp {
			switch op := op.(type) {
			case MoveTo:
				q.Start(ToFixed(Point(op)))
			case LineTo:
				q.Line(ToFixed(Point(op)))
			case QuadTo:
				q.QuadBezier(ToFixed(op[0]), ToFixed(op[1]))
			case CubicTo:
				q.CubeBezier(ToFixed(op[0]), ToFixed(op[1]), ToFixed(op[2]))
			}
		}
		q.Stop(sp.Closed())
	}
}
