package easel

import (
	"strconv"
	"strings"
)

// Property names an editable field of a shape, as exposed by a host's
// property panel.
type Property uint8

const (
	PropX Property = iota
	PropY
	PropWidth
	PropHeight
	PropColor
	PropText      // TextBox only
	PropFontColor // TextBox only
)

var propertyNames = map[string]Property{
	"x":         PropX,
	"y":         PropY,
	"width":     PropWidth,
	"w":         PropWidth,
	"height":    PropHeight,
	"h":         PropHeight,
	"color":     PropColor,
	"text":      PropText,
	"fontcolor": PropFontColor,
	"font":      PropFontColor,
}

// ParseProperty looks up a property by its panel name (case-insensitive).
func ParseProperty(name string) (Property, bool) {
	p, ok := propertyNames[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

func (p Property) numeric() bool {
	switch p {
	case PropX, PropY, PropWidth, PropHeight:
		return true
	default:
		return false
	}
}

// ApplyProperty returns a copy of s with prop set from the raw field text.
//
// Numeric fields accept anything strconv.ParseFloat does after trimming
// spaces; an empty field reads as zero. Input that does not parse, or parses
// to NaN or an infinity, is rejected. Text fields on kinds without text, and
// CircleBox extents below zero, are rejected as well. A rejected edit returns
// s unchanged and false.
func ApplyProperty(s Shape, prop Property, raw string) (Shape, bool) {
	c := s.Clone()
	if prop.numeric() {
		v, ok := parseNumber(raw)
		if !ok {
			return s, false
		}
		var accepted bool
		switch prop {
		case PropX:
			c.SetX(v)
			accepted = true
		case PropY:
			c.SetY(v)
			accepted = true
		case PropWidth:
			accepted = c.SetWidth(v)
		case PropHeight:
			accepted = c.SetHeight(v)
		}
		if !accepted {
			return s, false
		}
		return c, true
	}

	switch prop {
	case PropColor:
		c.SetColor(raw)
		return c, true
	case PropText:
		if !c.SetText(raw) {
			return s, false
		}
		return c, true
	case PropFontColor:
		if !c.SetFontColor(raw) {
			return s, false
		}
		return c, true
	}
	return s, false
}

func parseNumber(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || !finite(v) {
		return 0, false
	}
	return v, true
}
