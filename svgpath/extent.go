package svgpath

import (
	"math"

	"github.com/jbeda/geom"
)

// compute the tight bounding box of a path, where curves
// are bounded by their extrema instead of their control points

type bezier interface {
	// compute the t zeroing the derivative
	criticalPoints() (tX, tY []float64)
	// compute the point a time t
	evaluateCurve(t float64) Point
}

type line [2]Point

func (l line) criticalPoints() (tX, tY []float64) { return nil, nil }

func (l line) evaluateCurve(t float64) Point {
	return Point{X: bezierLine(l[0].X, l[1].X, t), Y: bezierLine(l[0].Y, l[1].Y, t)}
}

func bezierLine(p0, p1, t float64) float64 {
	return (p1-p0)*t + p0
}

type quadBezier [3]Point

// quadratic polynomial
// x = At^2 + Bt + C
// where
// A = p0 + p2 - 2p1
// B = 2(p1 - p0)
// C = p0
func bezierQuad(p0, p1, p2, t float64) float64 {
	return (p0+p2-2*p1)*t*t + 2*(p1-p0)*t + p0
}

// derivative as at + b where a,b :
func quadraticDerivative(p0, p1, p2 float64) (a, b float64) {
	return 2 * (p2 - p1 - (p1 - p0)), 2 * (p1 - p0)
}

// handle the case where a = 0
func linearRoots(a, b float64) []float64 {
	if a == 0 {
		return nil
	}
	return []float64{-b / a}
}

func (cu quadBezier) criticalPoints() (tX, tY []float64) {
	aX, bX := quadraticDerivative(cu[0].X, cu[1].X, cu[2].X)
	aY, bY := quadraticDerivative(cu[0].Y, cu[1].Y, cu[2].Y)
	return linearRoots(aX, bX), linearRoots(aY, bY)
}

func (cu quadBezier) evaluateCurve(t float64) Point {
	return Point{
		X: bezierQuad(cu[0].X, cu[1].X, cu[2].X, t),
		Y: bezierQuad(cu[0].Y, cu[1].Y, cu[2].Y, t),
	}
}

type cubicBezier [4]Point

func (cu cubicBezier) criticalPoints() (tX, tY []float64) {
	aX, bX, cX := cubicDerivative(cu[0].X, cu[1].X, cu[2].X, cu[3].X)
	aY, bY, cY := cubicDerivative(cu[0].Y, cu[1].Y, cu[2].Y, cu[3].Y)
	return quadraticRoots(aX, bX, cX), quadraticRoots(aY, bY, cY)
}

func (cu cubicBezier) evaluateCurve(t float64) Point {
	return Point{
		X: bezierSpline(cu[0].X, cu[1].X, cu[2].X, cu[3].X, t),
		Y: bezierSpline(cu[0].Y, cu[1].Y, cu[2].Y, cu[3].Y, t),
	}
}

// cubic polynomial
// x = At^3 + Bt^2 + Ct + D
// where A,B,C,D:
// A = p3 -3 * p2 + 3 * p1 - p0
// B = 3 * p2 - 6 * p1 +3 * p0
// C = 3 * p1 - 3 * p0
// D = p0
func bezierSpline(p0, p1, p2, p3, t float64) float64 {
	return (p3-3*p2+3*p1-p0)*t*t*t +
		(3*p2-6*p1+3*p0)*t*t +
		(3*p1-3*p0)*t +
		(p0)
}

// X' = (3*p3-9*p2+9*p1-3*p0)t^2 + (6*p2-12*p1+6*p0)t + (3*p1-3*p0)
// taken as aX^2 + bX + c  a,b and c are:
func cubicDerivative(p0, p1, p2, p3 float64) (a, b, c float64) {
	return 3*p3 - 9*p2 + 9*p1 - 3*p0, 6*p2 - 12*p1 + 6*p0, 3*p1 - 3*p0
}

func quadraticRoots(a, b, c float64) []float64 {
	if a == 0 {
		// bX + c, a simple line
		return linearRoots(b, c)
	}
	d := b*b - 4*a*c
	switch {
	case d < 0:
		return nil
	case d == 0:
		return []float64{-b / (2 * a)}
	default:
		sq := math.Sqrt(d)
		return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
	}
}

// extent returns the tight bounding box of the curve
func extent(curve bezier) geom.Rect {
	start := curve.evaluateCurve(0)
	r := geom.Rect{Min: start, Max: start}
	r.ExpandToContainCoord(curve.evaluateCurve(1))

	resX, resY := curve.criticalPoints()
	for _, t := range append(resX, resY...) {
		// filter invalid value
		if !(0 < t && t < 1) {
			continue
		}
		r.ExpandToContainCoord(curve.evaluateCurve(t))
	}
	return r
}

// Extent returns the smallest rectangle containing the drawn
// outline. Unlike Bounds, curves are bounded by their extrema
// rather than by their control points.
// The zero Rect is returned for an empty path.
func (p Path) Extent() geom.Rect {
	var (
		r     geom.Rect
		first = true
	)
	add := func(b geom.Rect) {
		if first {
			r, first = b, false
			return
		}
		r.ExpandToContainCoord(b.Min)
		r.ExpandToContainCoord(b.Max)
	}
	for _, sp := range p {
		var current Point
		for _, op := range sp {
			switch op := op.(type) {
			case MoveTo:
				current = Point(op)
				add(geom.Rect{Min: current, Max: current})
			case LineTo:
				add(extent(line{current, Point(op)}))
				current = Point(op)
			case QuadTo:
				add(extent(quadBezier{current, op[0], op[1]}))
				current = op[1]
			case CubicTo:
				add(extent(cubicBezier{current, op[0], op[1], op[2]}))
				current = op[2]
			}
		}
	}
	return r
}
