package graphics

// Color is a packed 24-bit RGB color in 0xRRGGBB form. Opacity is
// carried separately as an alpha value in [0, 1], matching the style
// commands in the log.
type Color uint32

// Common colors.
const (
	Black Color = 0x000000
	White Color = 0xFFFFFF
)

// R returns the red component.
func (c Color) R() uint8 {
	return uint8(c >> 16)
}

// G returns the green component.
func (c Color) G() uint8 {
	return uint8(c >> 8)
}

// B returns the blue component.
func (c Color) B() uint8 {
	return uint8(c)
}

// RGB packs three 8-bit components into a Color.
func RGB(r, g, b uint8) Color {
	return Color(r)<<16 | Color(g)<<8 | Color(b)
}

// Hex parses a color from a hex string in "RGB" or "RRGGBB" form, with
// an optional leading '#'. Invalid input yields black.
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32
	switch len(hex) {
	case 3:
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 6:
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	default:
		return Black
	}
	return Color(r)<<16 | Color(g)<<8 | Color(b)
}

// parseHex is a helper for hex parsing.
func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		}
	}
}
