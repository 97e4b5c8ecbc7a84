package svgpath

import (
	"math"
)

// This file implements the transformation from
// high level shapes to their path equivalent

// maxDx is the maximum radians a cubic splice is allowed to span
// when approximating an ellipse.
const maxDx float64 = math.Pi / 2

// Line returns the path of the segment [a, b].
func Line(a, b Point) Path {
	var p Path
	p.Start(a)
	p.Line(b)
	return p
}

// Polyline returns an open path through pts.
// It is empty if pts has less than two points.
func Polyline(pts []Point) Path {
	if len(pts) < 2 {
		return nil
	}
	var p Path
	p.Start(pts[0])
	for _, pt := range pts[1:] {
		p.Line(pt)
	}
	return p
}

// Polygon is like Polyline, but closes the path.
func Polygon(pts []Point) Path {
	p := Polyline(pts)
	if p != nil {
		p.Stop(true)
	}
	return p
}

// Rect returns the closed outline of a rectangle.
func Rect(minX, minY, maxX, maxY float64) Path {
	return Polygon([]Point{
		{X: minX, Y: minY}, {X: maxX, Y: minY},
		{X: maxX, Y: maxY}, {X: minX, Y: maxY},
	})
}

// RoundRect returns the closed outline of a rectangle
// with elliptical corners of radius rx in the x axis and ry in the y axis.
// The radii are clamped to half the width and height.
func RoundRect(minX, minY, maxX, maxY, rx, ry float64) Path {
	if rx <= 0 || ry <= 0 {
		return Rect(minX, minY, maxX, maxY)
	}
	if w := maxX - minX; w < rx*2 {
		rx = w / 2
	}
	if h := maxY - minY; h < ry*2 {
		ry = h / 2
	}
	var p Path
	p.Start(Point{X: minX + rx, Y: minY})
	p.Line(Point{X: maxX - rx, Y: minY})
	p.addArc(maxX-rx, minY+ry, rx, ry, -math.Pi/2, 0, Point{X: maxX, Y: minY + ry})
	p.Line(Point{X: maxX, Y: maxY - ry})
	p.addArc(maxX-rx, maxY-ry, rx, ry, 0, math.Pi/2, Point{X: maxX - rx, Y: maxY})
	p.Line(Point{X: minX + rx, Y: maxY})
	p.addArc(minX+rx, maxY-ry, rx, ry, math.Pi/2, math.Pi, Point{X: minX, Y: maxY - ry})
	p.Line(Point{X: minX, Y: minY + ry})
	p.addArc(minX+rx, minY+ry, rx, ry, math.Pi, 3*math.Pi/2, Point{X: minX + rx, Y: minY})
	p.Stop(true)
	return p
}

// Ellipse returns the closed outline of an axis aligned ellipse,
// approximated by cubic bezier curves.
func Ellipse(cx, cy, rx, ry float64) Path {
	var p Path
	start := Point{X: cx + rx, Y: cy}
	p.Start(start)
	p.addArc(cx, cy, rx, ry, 0, 2*math.Pi, start)
	p.Stop(true)
	return p
}

// addArc appends the part of the ellipse of center (cx, cy) and radii rx, ry
// between the parameters etaStart and etaEnd, the pen being
// at the point of parameter etaStart. end is the exact point of parameter etaEnd.
func (p *Path) addArc(cx, cy, rx, ry, etaStart, etaEnd float64, end Point) {
	deltaEta := etaEnd - etaStart
	// Round up to determine number of cubic splines to approximate the curve
	segs := int(math.Ceil(math.Abs(deltaEta)/maxDx - 1e-9))
	if segs < 1 {
		segs = 1
	}
	dEta := deltaEta / float64(segs) // span of each segment
	// Approximate the ellipse using a set of cubic bezier curves by the method of
	// L. Maisonobe, "Drawing an elliptical arc using polylines, quadratic
	// or cubic Bezier curves", 2003
	// https://www.spaceroots.org/documents/elllipse/elliptical-arc.pdf
	tde := math.Tan(dEta / 2)
	alpha := math.Sin(dEta) * (math.Sqrt(4+3*tde*tde) - 1) / 3
	lx, ly := ellipsePointAt(rx, ry, etaStart, cx, cy)
	ldx, ldy := ellipsePrime(rx, ry, etaStart)
	for i := 1; i <= segs; i++ {
		eta := etaStart + dEta*float64(i)
		px, py := end.X, end.Y // no roundoff error on the last point
		if i < segs {
			px, py = ellipsePointAt(rx, ry, eta, cx, cy)
		}
		dx, dy := ellipsePrime(rx, ry, eta)
		p.CubeBezier(Point{X: lx + alpha*ldx, Y: ly + alpha*ldy},
			Point{X: px - alpha*dx, Y: py - alpha*dy}, Point{X: px, Y: py})
		lx, ly, ldx, ldy = px, py, dx, dy
	}
}

// ellipsePrime gives tangent vectors for parameterized ellipse; a, b, radii, eta parameter
func ellipsePrime(a, b, eta float64) (px, py float64) {
	return -a * math.Sin(eta), b * math.Cos(eta)
}

// ellipsePointAt gives points for parameterized ellipse; a, b, radii, eta parameter, center cx, cy
func ellipsePointAt(a, b, eta, cx, cy float64) (px, py float64) {
	return cx + a*math.Cos(eta), cy + b*math.Sin(eta)
}
