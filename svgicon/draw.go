package svgicon

import (
	"github.com/srwiley/rasterx"
)

// Given a parsed SVG document, implements how to
// send its outlines to a backend, such as a rasterizer.
// Element transformations are already applied to the paths, so that
// only the icon wide Transform is applied when drawing.

// SetTarget sets the Transform matrix to draw within the bounds of the rectangle arguments
func (s *SvgIcon) SetTarget(x, y, w, h float64) {
	scaleW, scaleH := 1., 1.
	if s.ViewBox.W != 0 {
		scaleW = w / s.ViewBox.W
	}
	if s.ViewBox.H != 0 {
		scaleH = h / s.ViewBox.H
	}
	s.Transform = rasterx.Identity.Translate(x, y).Scale(scaleW, scaleH).Translate(-s.ViewBox.X, -s.ViewBox.Y)
}

// Draw sends every outline of the icon to `d`, after applying
// the icon Transform. Each subpath ends with a call to d.Stop.
func (s *SvgIcon) Draw(d rasterx.Adder) {
	adder := &rasterx.MatrixAdder{Adder: d, M: s.Transform}
	for _, svgp := range s.SVGPaths {
		svgp.Path.AddTo(adder)
	}
}
