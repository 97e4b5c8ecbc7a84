package svgpath

import (
	"unicode/utf8"
)

type commandKind uint8

const (
	moveTo commandKind = iota
	lineTo
	horizontalTo
	verticalTo
	cubicTo
	smoothCubicTo
	quadTo
	smoothQuadTo
	closePath
	arcTo
)

// command is a decoded command letter: lower case letters are relative.
type command struct {
	kind     commandKind
	relative bool
}

var commandKinds = [...]commandKind{
	'm': moveTo, 'l': lineTo, 'h': horizontalTo, 'v': verticalTo,
	'c': cubicTo, 's': smoothCubicTo, 'q': quadTo, 't': smoothQuadTo,
	'z': closePath, 'a': arcTo,
}

func decodeCommand(c byte) (command, bool) {
	lower := c | 0x20
	if c < 'A' || lower < 'a' || lower > 'z' || (lower != 'm' && commandKinds[lower] == moveTo) {
		return command{}, false
	}
	return command{kind: commandKinds[lower], relative: c == lower}, true
}

type curveFamily uint8

const (
	noCurve curveFamily = iota
	cubicCurve
	quadCurve
)

// control is the last control point, only meaningful
// right after a curve of the same family.
type control struct {
	family curveFamily
	pt     Point
}

// interpreter holds the whole state of one parse.
type interpreter struct {
	scanner
	cmd     command
	current Point
	start   Point // of the current subpath
	last    control
	path    Path
}

// Parse interprets SVG path data (the 'd' attribute of a <path> element)
// and returns the resulting subpaths with absolute coordinates.
// Elliptical arcs are not supported: any 'A' or 'a' command fails with an
// *UnsupportedError. On error, no path is returned.
// Data made only of delimiters gives an empty path.
func Parse(d string) (Path, error) {
	in := interpreter{scanner: scanner{data: d}}
	if err := in.run(); err != nil {
		return nil, err
	}
	return in.path, nil
}

// MustParse is like Parse but panics on error.
func MustParse(d string) Path {
	p, err := Parse(d)
	if err != nil {
		panic(err)
	}
	return p
}

func (in *interpreter) run() error {
	for {
		in.skipDelimiters()
		if in.done() {
			return nil
		}
		if err := in.readCommand(); err != nil {
			return err
		}
		for {
			if err := in.dispatch(); err != nil {
				return err
			}
			// a command letter may be omitted when repeated
			if in.cmd.kind == closePath || !in.nextIsNumber() {
				break
			}
		}
	}
}

func (in *interpreter) readCommand() error {
	cmd, ok := decodeCommand(in.data[in.pos])
	if !ok {
		r, _ := utf8.DecodeRuneInString(in.data[in.pos:])
		return &CommandError{Char: r, Pos: in.pos}
	}
	in.pos++
	in.cmd = cmd
	return nil
}

// readCoord reads one coordinate, offset by origin for relative commands.
func (in *interpreter) readCoord(origin float64) (float64, error) {
	v, err := in.readNumber()
	if err != nil {
		return 0, err
	}
	if in.cmd.relative {
		v += origin
	}
	return v, nil
}

// readPoint reads a coordinate pair, relative to the current point
// for relative commands.
func (in *interpreter) readPoint() (Point, error) {
	x, err := in.readCoord(in.current.X)
	if err != nil {
		return Point{}, err
	}
	y, err := in.readCoord(in.current.Y)
	if err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: y}, nil
}

// firstControl returns the first control point of a curve of the given family.
// Plain curves read it from the input. Smooth curves mirror the previous
// control point through the current point, or use the current point itself
// when the previous segment is not a curve of the same family.
func (in *interpreter) firstControl(family curveFamily, smooth bool) (Point, error) {
	if !smooth {
		return in.readPoint()
	}
	if in.last.family != family {
		return in.current, nil
	}
	return Point{
		X: 2*in.current.X - in.last.pt.X,
		Y: 2*in.current.Y - in.last.pt.Y,
	}, nil
}

func (in *interpreter) dispatch() error {
	switch in.cmd.kind {
	case moveTo:
		p, err := in.readPoint()
		if err != nil {
			return err
		}
		in.path.Start(p)
		in.start, in.current = p, p
		in.last = control{}
		// following pairs are implicit lines
		in.cmd.kind = lineTo
	case lineTo, horizontalTo, verticalTo:
		p := in.current
		var err error
		switch in.cmd.kind {
		case horizontalTo:
			p.X, err = in.readCoord(in.current.X)
		case verticalTo:
			p.Y, err = in.readCoord(in.current.Y)
		default:
			p, err = in.readPoint()
		}
		if err != nil {
			return err
		}
		in.lineTo(p)
	case cubicTo, smoothCubicTo:
		return in.cubic(in.cmd.kind == smoothCubicTo)
	case quadTo, smoothQuadTo:
		return in.quad(in.cmd.kind == smoothQuadTo)
	case closePath:
		in.path.Stop(true)
		in.current = in.start
		in.last = control{}
	case arcTo:
		return &UnsupportedError{Command: "elliptical arc"}
	}
	return nil
}

func (in *interpreter) lineTo(p Point) {
	in.openSubpath()
	in.path.Line(p)
	in.current = p
	in.last = control{}
}

func (in *interpreter) cubic(smooth bool) error {
	c1, err := in.firstControl(cubicCurve, smooth)
	if err != nil {
		return err
	}
	c2, err := in.readPoint()
	if err != nil {
		return err
	}
	end, err := in.readPoint()
	if err != nil {
		return err
	}
	in.openSubpath()
	in.path.CubeBezier(c1, c2, end)
	in.current = end
	in.last = control{family: cubicCurve, pt: c2}
	return nil
}

func (in *interpreter) quad(smooth bool) error {
	c, err := in.firstControl(quadCurve, smooth)
	if err != nil {
		return err
	}
	end, err := in.readPoint()
	if err != nil {
		return err
	}
	in.openSubpath()
	in.path.QuadBezier(c, end)
	in.current = end
	in.last = control{family: quadCurve, pt: c}
	return nil
}

// openSubpath records the start of the implicit subpath
// the path opens when drawing after a close, or before any move.
func (in *interpreter) openSubpath() {
	if n := len(in.path); n == 0 || in.path[n-1].Closed() {
		in.start = in.current
	}
}
