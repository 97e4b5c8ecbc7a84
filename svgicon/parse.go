package svgicon

import (
	"encoding/xml"
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/benoitkugler/shapepath/svgpath"
	"github.com/srwiley/rasterx"
)

// ErrorMode is the for setting how the parser reacts to unparsed elements
// and invalid attribute values.
type ErrorMode uint8

const (
	// IgnoreErrorMode skips unparsed SVG elements
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode outputs a warning when an unparsed SVG element is found
	WarnErrorMode
	// StrictErrorMode causes a error when an unparsed SVG element is found
	StrictErrorMode
)

var errParamMismatch = errors.New("param mismatch")

type percentageReference uint8

const (
	widthPercentage percentageReference = iota
	heightPercentage
	diagPercentage
)

// iconCursor is used while parsing SVG files
type iconCursor struct {
	icon       *SvgIcon
	errorMode  ErrorMode
	transforms []rasterx.Matrix2D // one entry per open element, plus the identity at the bottom

	path svgpath.Path // outline of the current element, in local coordinates

	inTitleText, inDescText bool
	defsDepth               int // > 0 inside a defs element
}

// handleError applies the error mode: the error is returned
// only in strict mode.
func (c *iconCursor) handleError(err error) error {
	switch c.errorMode {
	case StrictErrorMode:
		return err
	case WarnErrorMode:
		log.Println(err)
	}
	return nil
}

func (c *iconCursor) transform() rasterx.Matrix2D {
	return c.transforms[len(c.transforms)-1]
}

func readTransformAttr(m1 rasterx.Matrix2D, k string, points []float64) (rasterx.Matrix2D, error) {
	ln := len(points)
	switch k {
	case "rotate":
		if ln == 1 {
			m1 = m1.Rotate(points[0] * math.Pi / 180)
		} else if ln == 3 {
			m1 = m1.Translate(points[1], points[2]).
				Rotate(points[0]*math.Pi/180).
				Translate(-points[1], -points[2])
		} else {
			return m1, errParamMismatch
		}
	case "translate":
		if ln == 1 {
			m1 = m1.Translate(points[0], 0)
		} else if ln == 2 {
			m1 = m1.Translate(points[0], points[1])
		} else {
			return m1, errParamMismatch
		}
	case "skewx":
		if ln == 1 {
			m1 = m1.SkewX(points[0] * math.Pi / 180)
		} else {
			return m1, errParamMismatch
		}
	case "skewy":
		if ln == 1 {
			m1 = m1.SkewY(points[0] * math.Pi / 180)
		} else {
			return m1, errParamMismatch
		}
	case "scale":
		if ln == 1 {
			m1 = m1.Scale(points[0], points[0])
		} else if ln == 2 {
			m1 = m1.Scale(points[0], points[1])
		} else {
			return m1, errParamMismatch
		}
	case "matrix":
		if ln == 6 {
			m1 = m1.Mult(rasterx.Matrix2D{
				A: points[0],
				B: points[1],
				C: points[2],
				D: points[3],
				E: points[4],
				F: points[5]})
		} else {
			return m1, errParamMismatch
		}
	default:
		return m1, fmt.Errorf("unknown transform %s", k)
	}
	return m1, nil
}

// parseTransform composes the transformations listed in v,
// starting from m1.
func parseTransform(m1 rasterx.Matrix2D, v string) (rasterx.Matrix2D, error) {
	ts := strings.Split(v, ")")
	for _, t := range ts {
		t = strings.TrimSpace(t)
		if len(t) == 0 {
			continue
		}
		d := strings.Split(t, "(")
		if len(d) != 2 || len(d[1]) < 1 {
			return m1, errParamMismatch // badly formed transformation
		}
		points, err := svgpath.ParseNumbers(d[1])
		if err != nil {
			return m1, err
		}
		m1, err = readTransformAttr(m1, strings.ToLower(strings.Trim(d[0], " ,\t\n\r")), points)
		if err != nil {
			return m1, err
		}
	}
	return m1, nil
}

// pushTransform reads the transform attribute of an element
// and pushes the resulting matrix on the stack.
// An invalid transform is reported and replaced by the parent one.
func (c *iconCursor) pushTransform(attrs []xml.Attr) error {
	m := c.transform()
	for _, attr := range attrs {
		if attr.Name.Local != "transform" {
			continue
		}
		mt, err := parseTransform(m, attr.Value)
		if err != nil {
			if err = c.handleError(fmt.Errorf("invalid transform %q: %s", attr.Value, err)); err != nil {
				return err
			}
			continue
		}
		m = mt
	}
	c.transforms = append(c.transforms, m)
	return nil
}

func parseBasicFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// parseUnit converts a length, possibly expressed as a percentage
// of the view box, to user units.
func (c *iconCursor) parseUnit(s string, asPerc percentageReference) (float64, error) {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "%") {
		f, err := parseBasicFloat(strings.TrimSuffix(s, "%"))
		if err != nil {
			return 0, err
		}
		vb := c.icon.ViewBox
		switch asPerc {
		case widthPercentage:
			return f / 100 * vb.W, nil
		case heightPercentage:
			return f / 100 * vb.H, nil
		default:
			return f / 100 * math.Sqrt(vb.W*vb.W+vb.H*vb.H) / math.Sqrt2, nil
		}
	}
	return parseBasicFloat(strings.TrimSuffix(s, "px"))
}

func (c *iconCursor) readStartElement(se xml.StartElement) error {
	df, ok := drawFuncs[se.Name.Local]
	if !ok {
		return c.handleError(fmt.Errorf("cannot process svg element %s", se.Name.Local))
	}
	c.path = nil
	if err := df(c, se.Attr); err != nil {
		// no partial outline is kept
		c.path = nil
		return c.handleError(fmt.Errorf("invalid %s element: %w", se.Name.Local, err))
	}
	if c.path.Empty() {
		return nil
	}
	// the cursor parsed a path from the xml element
	var id string
	for _, attr := range se.Attr {
		if attr.Name.Local == "id" {
			id = attr.Value
		}
	}
	c.icon.SVGPaths = append(c.icon.SVGPaths, SvgPath{
		ID:   id,
		Tag:  se.Name.Local,
		Path: c.path.Transform(c.transform()),
	})
	c.path = nil
	return nil
}
