package mirror

import (
	"fmt"
	"math"
)

// Scale maps a value range onto colors by hue: minimum renders blue-violet,
// maximum red. A degenerate range yields no color.
type Scale struct {
	Min float64
	Max float64
}

// Color returns the #rrggbb color of a value on the scale, empty string when
// the range is degenerate.
func (s Scale) Color(value float64) string {
	if s.Min == s.Max {
		return ""
	}
	hue := 1 - (value-s.Min)/(s.Max-s.Min)
	return hueColor(hue)
}

// hueColor converts a 0-1 "hue" to #rrggbb, compressing the hue wheel to 0.7
// of a turn and washing out saturation towards the violet end.
func hueColor(hue float64) string {
	h := hue * 0.7
	sat := math.Min(1, 1.5-hue)
	r, g, b := hsvToRGB(h, sat, 1)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func hsvToRGB(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(math.Max(h, 0), 1) * 6
	i := int(h)
	f := h - float64(i)
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	var r, g, b float64
	switch i % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}
	return uint8(math.Round(r * 255)), uint8(math.Round(g * 255)), uint8(math.Round(b * 255))
}
