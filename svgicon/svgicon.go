// Provides parsing of SVG images into geometry.
// SVG files are parsed into a list of outlines, one per drawable element,
// expressed as svgpath.Path in absolute user space coordinates.
// Styles and painting are left to the consumer.
package svgicon

import (
	"encoding/xml"
	"errors"
	"io"
	"os"

	"github.com/benoitkugler/shapepath/svgpath"
	"github.com/jbeda/geom"
	"github.com/srwiley/rasterx"
	"golang.org/x/net/html/charset"
)

// SvgPath binds an outline to the element it comes from
type SvgPath struct {
	ID   string // id attribute, possibly empty
	Tag  string // name of the element, such as "path" or "rect"
	Path svgpath.Path
}

// Bounds defines a bounding box, such as a viewport
type Bounds struct{ X, Y, W, H float64 }

// SvgIcon holds data from parsed SVGs.
type SvgIcon struct {
	ViewBox      Bounds
	Titles       []string // Title elements collect here
	Descriptions []string // Description elements collect here
	SVGPaths     []SvgPath

	Width, Height string // top level width and height attributes

	// Transform is applied by Draw, on top of the element transforms.
	// It defaults to the identity, see SetTarget.
	Transform rasterx.Matrix2D
}

// Bounds returns the smallest rectangle containing all the outlines,
// control points included.
func (s *SvgIcon) Bounds() geom.Rect {
	var (
		r     geom.Rect
		first = true
	)
	for _, svgp := range s.SVGPaths {
		if svgp.Path.Empty() {
			continue
		}
		b := svgp.Path.Bounds()
		if first {
			r, first = b, false
		} else {
			r.ExpandToContainCoord(b.Min)
			r.ExpandToContainCoord(b.Max)
		}
	}
	return r
}

// ReadIconStream reads the Icon from the given io.Reader
// This only supports a sub-set of SVG, but
// is enough to extract the geometry of many icons. errMode determines if the icon ignores, errors out, or logs a warning
// if it does not handle an element found in the icon file, or if a path data is invalid.
func ReadIconStream(stream io.Reader, errMode ErrorMode) (*SvgIcon, error) {
	icon := &SvgIcon{Transform: rasterx.Identity}
	cursor := &iconCursor{transforms: []rasterx.Matrix2D{rasterx.Identity}, icon: icon, errorMode: errMode}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	seenTag := false
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if !seenTag {
					return nil, errors.New("invalid svg xml icon")
				}
				break
			}
			return icon, err
		}
		// Inspect the type of the XML token
		switch se := t.(type) {
		case xml.StartElement:
			seenTag = true
			if cursor.defsDepth > 0 { // definitions are not drawn
				cursor.defsDepth++
				continue
			}
			// Reads the transform attribute of the start element
			// and places the resulting matrix on top of the stack
			err = cursor.pushTransform(se.Attr)
			if err != nil {
				return icon, err
			}
			err = cursor.readStartElement(se)
			if err != nil {
				return icon, err
			}
		case xml.EndElement:
			if cursor.defsDepth > 1 {
				cursor.defsDepth--
				continue
			}
			cursor.defsDepth = 0
			// pop transform
			cursor.transforms = cursor.transforms[:len(cursor.transforms)-1]
			switch se.Name.Local {
			case "title":
				cursor.inTitleText = false
			case "desc":
				cursor.inDescText = false
			}
		case xml.CharData:
			if cursor.inTitleText {
				icon.Titles[len(icon.Titles)-1] += string(se)
			}
			if cursor.inDescText {
				icon.Descriptions[len(icon.Descriptions)-1] += string(se)
			}
		}
	}
	return icon, nil
}

// ReadIcon reads the Icon from the named file
// This only supports a sub-set of SVG, but
// is enough to extract the geometry of many icons. errMode determines if the icon ignores, errors out, or logs a warning
// if it does not handle an element found in the icon file.
func ReadIcon(iconFile string, errMode ErrorMode) (*SvgIcon, error) {
	fin, errf := os.Open(iconFile)
	if errf != nil {
		return nil, errf
	}
	defer fin.Close()
	return ReadIconStream(fin, errMode)
}
