package brushmask

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/gogpu/brushmask/curve"
)

// ElementName is the element MarshalGenerator writes.
const ElementName = "MaskGenerator"

// Attribute names of the serialized form.
const (
	attrDiameter      = "diameter"
	attrRadius        = "radius" // legacy, half the diameter
	attrRatio         = "ratio"
	attrHFade         = "hfade"
	attrVFade         = "vfade"
	attrSpikes        = "spikes"
	attrType          = "type"
	attrAntialias     = "antialiasEdges"
	attrID            = "id"
	attrSoftnessCurve = "softness_curve"
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}

// Attributes returns the serialized shape parameters of g.
func Attributes(g Generator) []xml.Attr {
	aa := "0"
	if g.AntialiasEdges() {
		aa = "1"
	}
	attrs := []xml.Attr{
		attr(attrDiameter, formatFloat(g.Diameter())),
		attr(attrRatio, formatFloat(g.Ratio())),
		attr(attrHFade, formatFloat(g.HorizontalFade())),
		attr(attrVFade, formatFloat(g.VerticalFade())),
		attr(attrSpikes, strconv.Itoa(g.Spikes())),
		attr(attrType, g.Shape().String()),
		attr(attrAntialias, aa),
		attr(attrID, g.Kind().String()),
	}
	if s := g.CurveString(); s != "" {
		attrs = append(attrs, attr(attrSoftnessCurve, s))
	}
	return attrs
}

// FromAttributes rebuilds a generator from its serialized attributes.
// Missing attributes take their defaults. An unknown id falls back to the
// default kind.
func FromAttributes(attrs []xml.Attr) (Generator, error) {
	p := DefaultParameters()
	curveString := DefaultSoftCurve
	id := KindDefault.String()
	hasDiameter := false
	radius := -1.0

	for _, a := range attrs {
		var err error
		switch a.Name.Local {
		case attrDiameter:
			p.Diameter, err = parseFloatAttr(a)
			hasDiameter = true
		case attrRadius:
			radius, err = parseFloatAttr(a)
		case attrRatio:
			p.Ratio, err = parseFloatAttr(a)
		case attrHFade:
			p.HorizontalFade, err = parseFloatAttr(a)
		case attrVFade:
			p.VerticalFade, err = parseFloatAttr(a)
		case attrSpikes:
			p.Spikes, err = strconv.Atoi(a.Value)
			if err != nil {
				err = fmt.Errorf("%w: %s: %w", ErrInvalidAttribute, a.Name.Local, err)
			}
		case attrType:
			p.Shape, err = ParseShape(a.Value)
			if err != nil {
				err = fmt.Errorf("%w: %w", ErrInvalidAttribute, err)
			}
		case attrAntialias:
			p.AntialiasEdges, err = parseBoolAttr(a)
		case attrID:
			id = a.Value
		case attrSoftnessCurve:
			curveString = a.Value
		}
		if err != nil {
			return nil, err
		}
	}
	if !hasDiameter && radius >= 0 {
		p.Diameter = 2 * radius
	}

	kind, err := ParseKind(id)
	if err != nil {
		Logger().Warn("brushmask: unknown mask generator id, using default", "id", id)
		kind = KindDefault
	}
	p.Kind = kind

	if kind == KindSoft {
		c, err := curve.Parse(curveString)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidAttribute, attrSoftnessCurve, err)
		}
		p.Curve = c
	}
	return NewGenerator(p)
}

func parseFloatAttr(a xml.Attr) (float64, error) {
	v, err := strconv.ParseFloat(a.Value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrInvalidAttribute, a.Name.Local, err)
	}
	return v, nil
}

func parseBoolAttr(a xml.Attr) (bool, error) {
	switch a.Value {
	case "1", "true":
		return true, nil
	case "0", "false", "":
		return false, nil
	}
	return false, fmt.Errorf("%w: %s: %q", ErrInvalidAttribute, a.Name.Local, a.Value)
}

// MarshalGenerator writes g as a single <MaskGenerator .../> element.
func MarshalGenerator(g Generator) ([]byte, error) {
	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	start := xml.StartElement{Name: xml.Name{Local: ElementName}, Attr: Attributes(g)}
	if err := enc.EncodeToken(start); err != nil {
		return nil, err
	}
	if err := enc.EncodeToken(start.End()); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalGenerator reads the first <MaskGenerator> element of data.
func UnmarshalGenerator(data []byte) (Generator, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil, ErrNoElement
		}
		if err != nil {
			return nil, err
		}
		if start, ok := tok.(xml.StartElement); ok && start.Name.Local == ElementName {
			return FromAttributes(start.Attr)
		}
	}
}

// Element embeds a generator in a larger XML document. The element name
// comes from the enclosing field tag:
//
//	type Preset struct {
//	    Name string            `xml:"name,attr"`
//	    Mask brushmask.Element `xml:"MaskGenerator"`
//	}
type Element struct {
	Generator Generator
}

// MarshalXML implements xml.Marshaler.
func (e Element) MarshalXML(enc *xml.Encoder, start xml.StartElement) error {
	if e.Generator == nil {
		return nil
	}
	start.Attr = append(start.Attr, Attributes(e.Generator)...)
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	return enc.EncodeToken(start.End())
}

// UnmarshalXML implements xml.Unmarshaler.
func (e *Element) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	g, err := FromAttributes(start.Attr)
	if err != nil {
		return err
	}
	e.Generator = g
	return dec.Skip()
}
