package easel

import (
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// SelectionColor is the stroke and handle color of the activated shape.
var SelectionColor = color.RGBA{R: 0x1e, G: 0x90, B: 0xff, A: 0xff}

// ParseColor resolves a fill style token into a color. It understands CSS
// color names, "transparent", and hex "#rgb" / "#rrggbb". The second result is
// false for unknown tokens, in which case the returned color is black.
func ParseColor(token string) (color.RGBA, bool) {
	t := strings.ToLower(strings.TrimSpace(token))
	if t == "transparent" {
		return color.RGBA{}, true
	}
	if strings.HasPrefix(t, "#") {
		c, err := colorful.Hex(t)
		if err != nil {
			return color.RGBA{A: 0xff}, false
		}
		r, g, b := c.Clamped().RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 0xff}, true
	}
	if c, ok := colornames.Map[t]; ok {
		return c, true
	}
	return color.RGBA{A: 0xff}, false
}

// resolveColor is ParseColor without the validity flag, for rendering.
func resolveColor(token string) color.RGBA {
	c, _ := ParseColor(token)
	return c
}
