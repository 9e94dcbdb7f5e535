// Package color implements the xterm-256 quantized color space used by
// the renderer: 16 base palette colors (0-15), a 6x6x6 RGB cube (16-231)
// and a 24-step grayscale ramp (232-255), packed into a single code.
// All arithmetic is total and clamps at subspace boundaries, so a Color
// emitted to the terminal is always a legal attribute value.
package color

// Color is a terminal color attribute. The low 8 bits hold the palette
// code; the Default and Reverse bits live above the code so they can be
// set independently of it.
type Color uint16

const (
	// Default is the "use the terminal's own default" sentinel. It lies
	// outside the three subspaces and is exempt from arithmetic.
	Default Color = 1 << 8

	// Reverse swaps foreground and background when the color is used as
	// a cell attribute. It never alters the subspace code.
	Reverse Color = 1 << 9
)

// Subspace boundaries within the 256-entry palette.
const (
	cubeStart = 16  // first RGB cube index
	grayStart = 232 // first grayscale ramp index

	cubeLevels = 6  // channel levels per cube axis
	grayLevels = 24 // shades in the grayscale ramp
)

// attrs is the set of non-code bits a Color can carry.
const attrs = Default | Reverse

// code returns the low 8 palette bits.
func (c Color) code() int {
	return int(c & 0xFF)
}

// withCode replaces the palette code, keeping attribute bits.
func (c Color) withCode(code int) Color {
	return (c & attrs) | Color(code&0xFF)
}

// FromPalette returns a fixed-palette color, clamping i to [0,16).
func FromPalette(i int) Color {
	return Color(clampInt(i, 0, 15))
}

// FromRGB quantizes three 0-255 channel bytes to the 6x6x6 cube.
// Each channel maps to a level 0-5 via level = c*6/256.
func FromRGB(r, g, b int) Color {
	return fromLevels(
		clampInt(r, 0, 255)*cubeLevels/256,
		clampInt(g, 0, 255)*cubeLevels/256,
		clampInt(b, 0, 255)*cubeLevels/256,
	)
}

// FromGray returns a grayscale ramp color, clamping s to [0,24).
func FromGray(s int) Color {
	return Color(grayStart + clampInt(s, 0, grayLevels-1))
}

// fromLevels encodes cube levels already known to be in [0,5].
func fromLevels(r, g, b int) Color {
	return Color(cubeStart + 36*r + 6*g + b)
}

// IsDefault reports whether c is the terminal-default sentinel.
func (c Color) IsDefault() bool {
	return c&Default != 0
}

// IsFixed reports whether c is one of the 16 base palette colors.
func (c Color) IsFixed() bool {
	return !c.IsDefault() && c.code() < cubeStart
}

// IsRGB reports whether c lies in the 6x6x6 cube.
func (c Color) IsRGB() bool {
	return !c.IsDefault() && c.code() >= cubeStart && c.code() < grayStart
}

// IsGray reports whether c lies on the grayscale ramp.
func (c Color) IsGray() bool {
	return !c.IsDefault() && c.code() >= grayStart
}

// IsReversed reports whether the reverse-video attribute is set.
func (c Color) IsReversed() bool {
	return c&Reverse != 0
}

// Code returns the raw palette index in [0,256). Only meaningful when
// the color is not Default.
func (c Color) Code() int {
	return c.code()
}

// Add shifts the color by n steps within its subspace, saturating at
// the subspace boundaries. Fixed-palette colors step through the 16
// base entries, grayscale colors step along the ramp. RGB cube colors
// have no scalar step order, so Add is an identity for them, as it is
// for Default.
func (c Color) Add(n int) Color {
	switch {
	case c.IsFixed():
		return c.withCode(clampInt(c.code()+n, 0, cubeStart-1))
	case c.IsGray():
		return c.withCode(clampInt(c.code()+n, grayStart, grayStart+grayLevels-1))
	default:
		return c
	}
}

// Sub shifts the color by -n steps. See Add.
func (c Color) Sub(n int) Color {
	return c.Add(-n)
}

// Incr is Add(1).
func (c Color) Incr() Color {
	return c.Add(1)
}

// Decr is Sub(1).
func (c Color) Decr() Color {
	return c.Sub(1)
}

// AddColor adds other to c when both occupy the same subspace: RGB
// colors add channel-wise with clamping, grayscale colors add ramp
// levels with clamping. For any other pairing the right-hand operand is
// returned unchanged, so painting over Default replaces it.
func (c Color) AddColor(other Color) Color {
	switch {
	case c.IsRGB() && other.IsRGB():
		a, _ := RGBOf(c)
		b, _ := RGBOf(other)
		return c.withCode(a.Add(b).Color().code())
	case c.IsGray() && other.IsGray():
		return c.withCode(clampInt(c.code()+other.code()-grayStart, grayStart, grayStart+grayLevels-1))
	default:
		return other
	}
}

// SubColor subtracts other from c under the same pairing rules as
// AddColor, returning the right-hand operand for mismatched subspaces.
func (c Color) SubColor(other Color) Color {
	switch {
	case c.IsRGB() && other.IsRGB():
		a, _ := RGBOf(c)
		b, _ := RGBOf(other)
		return c.withCode(a.Sub(b).Color().code())
	case c.IsGray() && other.IsGray():
		return c.withCode(clampInt(c.code()-(other.code()-grayStart), grayStart, grayStart+grayLevels-1))
	default:
		return other
	}
}

// Scale multiplies the color's intensity by factor. RGB colors scale
// each cube level, grayscale colors scale the ramp level; the result is
// truncated and clamped back into the subspace. Fixed-palette colors
// and Default are unaffected.
func (c Color) Scale(factor float64) Color {
	switch {
	case c.IsRGB():
		t, _ := RGBOf(c)
		return c.withCode(t.Mul(factor).Color().code())
	case c.IsGray():
		level := int(float64(c.code()-grayStart) * factor)
		return c.withCode(grayStart + clampInt(level, 0, grayLevels-1))
	default:
		return c
	}
}

// Div divides the color's intensity by divisor. A zero divisor is an
// identity, matching the no-failure contract of the color space.
func (c Color) Div(divisor float64) Color {
	if divisor == 0 {
		return c
	}
	switch {
	case c.IsRGB():
		t, _ := RGBOf(c)
		return c.withCode(t.Div(divisor).Color().code())
	case c.IsGray():
		level := int(float64(c.code()-grayStart) / divisor)
		return c.withCode(grayStart + clampInt(level, 0, grayLevels-1))
	default:
		return c
	}
}

// Reversed returns the color with the reverse-video attribute set.
func (c Color) Reversed() Color {
	return c | Reverse
}

// BlackToDefault substitutes def when c is exactly cube black (0,0,0)
// or ramp black (level 0). Coverage blending drives colors toward
// black near zero weight; rendering that as true black leaves dark
// smears on a default background, so callers degrade it to def instead.
func (c Color) BlackToDefault(def Color) Color {
	if c.IsDefault() {
		return c
	}
	switch c.code() {
	case cubeStart, grayStart:
		return def
	}
	return c
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
