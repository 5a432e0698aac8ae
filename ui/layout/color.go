package layout

import (
	"fmt"
	"image/color"
	"strings"
)

// ParseHexColor accepts #RRGGBB and #RRGGBBAA.
func ParseHexColor(value string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(value), "#")
	c := color.RGBA{A: 0xFF}

	var err error
	switch len(hex) {
	case 6:
		_, err = fmt.Sscanf(hex, "%2x%2x%2x", &c.R, &c.G, &c.B)
	case 8:
		_, err = fmt.Sscanf(hex, "%2x%2x%2x%2x", &c.R, &c.G, &c.B, &c.A)
	default:
		err = fmt.Errorf("expected 6 or 8 hex digits")
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color '%s': %w", value, err)
	}
	return c, nil
}
