package svgicon

import (
	"encoding/xml"
	"errors"
	"strings"

	"github.com/benoitkugler/shapepath/svgpath"
)

type svgFunc func(c *iconCursor, attrs []xml.Attr) error

var drawFuncs = map[string]svgFunc{
	"svg":      svgF,
	"g":        gF,
	"line":     lineF,
	"rect":     rectF,
	"circle":   circleF,
	"ellipse":  circleF, //circleF handles ellipse also
	"polyline": polylineF,
	"polygon":  polygonF,
	"path":     pathF,
	"desc":     descF,
	"defs":     defsF,
	"title":    titleF,
}

func svgF(c *iconCursor, attrs []xml.Attr) error {
	c.icon.ViewBox = Bounds{}
	var width, height float64
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "viewBox":
			points, err := svgpath.ParseNumbers(attr.Value)
			if err != nil {
				return err
			}
			if len(points) != 4 {
				return errParamMismatch
			}
			c.icon.ViewBox = Bounds{X: points[0], Y: points[1], W: points[2], H: points[3]}
		case "width":
			c.icon.Width = attr.Value
			// other units are kept as text only
			width, _ = parseBasicFloat(strings.TrimSuffix(strings.TrimSpace(attr.Value), "px"))
		case "height":
			c.icon.Height = attr.Value
			height, _ = parseBasicFloat(strings.TrimSuffix(strings.TrimSpace(attr.Value), "px"))
		}
	}
	if c.icon.ViewBox.W == 0 {
		c.icon.ViewBox.W = width
	}
	if c.icon.ViewBox.H == 0 {
		c.icon.ViewBox.H = height
	}
	return nil
}

func gF(*iconCursor, []xml.Attr) error { return nil } // g does nothing but push the transform

func rectF(c *iconCursor, attrs []xml.Attr) error {
	var (
		x, y, w, h, rx, ry float64
		rxSet, rySet       bool
		err                error
	)
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "x":
			x, err = c.parseUnit(attr.Value, widthPercentage)
		case "y":
			y, err = c.parseUnit(attr.Value, heightPercentage)
		case "width":
			w, err = c.parseUnit(attr.Value, widthPercentage)
		case "height":
			h, err = c.parseUnit(attr.Value, heightPercentage)
		case "rx":
			rx, err = c.parseUnit(attr.Value, widthPercentage)
			rxSet = true
		case "ry":
			ry, err = c.parseUnit(attr.Value, heightPercentage)
			rySet = true
		}
		if err != nil {
			return err
		}
	}
	if w < 0 || h < 0 {
		return errors.New("negative rect size")
	}
	if w == 0 || h == 0 { // not drawn, but not an error
		return nil
	}
	// a single radius applies to both axis
	if rxSet && !rySet {
		ry = rx
	} else if rySet && !rxSet {
		rx = ry
	}
	c.path = svgpath.RoundRect(x, y, x+w, y+h, rx, ry)
	return nil
}

func circleF(c *iconCursor, attrs []xml.Attr) error {
	var cx, cy, rx, ry float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "cx":
			cx, err = c.parseUnit(attr.Value, widthPercentage)
		case "cy":
			cy, err = c.parseUnit(attr.Value, heightPercentage)
		case "r":
			rx, err = c.parseUnit(attr.Value, diagPercentage)
			ry = rx
		case "rx":
			rx, err = c.parseUnit(attr.Value, widthPercentage)
		case "ry":
			ry, err = c.parseUnit(attr.Value, heightPercentage)
		}
		if err != nil {
			return err
		}
	}
	if rx == 0 || ry == 0 { // not drawn, but not an error
		return nil
	}
	c.path = svgpath.Ellipse(cx, cy, rx, ry)
	return nil
}

func lineF(c *iconCursor, attrs []xml.Attr) error {
	var x1, x2, y1, y2 float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "x1":
			x1, err = c.parseUnit(attr.Value, widthPercentage)
		case "x2":
			x2, err = c.parseUnit(attr.Value, widthPercentage)
		case "y1":
			y1, err = c.parseUnit(attr.Value, heightPercentage)
		case "y2":
			y2, err = c.parseUnit(attr.Value, heightPercentage)
		}
		if err != nil {
			return err
		}
	}
	c.path = svgpath.Line(svgpath.Point{X: x1, Y: y1}, svgpath.Point{X: x2, Y: y2})
	return nil
}

// readPoints returns the pairs of the points attribute
func readPoints(attrs []xml.Attr) ([]svgpath.Point, error) {
	for _, attr := range attrs {
		if attr.Name.Local != "points" {
			continue
		}
		coords, err := svgpath.ParseNumbers(attr.Value)
		if err != nil {
			return nil, err
		}
		if len(coords)%2 != 0 {
			return nil, errors.New("odd number of coordinates in points")
		}
		pts := make([]svgpath.Point, len(coords)/2)
		for i := range pts {
			pts[i] = svgpath.Point{X: coords[2*i], Y: coords[2*i+1]}
		}
		return pts, nil
	}
	return nil, nil
}

func polylineF(c *iconCursor, attrs []xml.Attr) error {
	pts, err := readPoints(attrs)
	if err != nil {
		return err
	}
	c.path = svgpath.Polyline(pts)
	return nil
}

func polygonF(c *iconCursor, attrs []xml.Attr) error {
	pts, err := readPoints(attrs)
	if err != nil {
		return err
	}
	c.path = svgpath.Polygon(pts)
	return nil
}

func pathF(c *iconCursor, attrs []xml.Attr) error {
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "d":
			path, err := svgpath.Parse(attr.Value)
			if err != nil {
				return err
			}
			c.path = path
		}
	}
	return nil
}

func descF(c *iconCursor, attrs []xml.Attr) error {
	c.inDescText = true
	c.icon.Descriptions = append(c.icon.Descriptions, "")
	return nil
}

func titleF(c *iconCursor, attrs []xml.Attr) error {
	c.inTitleText = true
	c.icon.Titles = append(c.icon.Titles, "")
	return nil
}

// defsF starts skipping: definitions are only drawn when referenced,
// which is not supported.
func defsF(c *iconCursor, attrs []xml.Attr) error {
	c.defsDepth = 1
	return nil
}
