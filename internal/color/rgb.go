package color

// TermRGB is a color cube triple with channel levels in [0,5]. It is a
// working representation for cube arithmetic and always round-trips
// losslessly through the RGB subspace of Color.
type TermRGB struct {
	R, G, B int
}

// FromChannels builds a TermRGB, clamping each level to [0,5].
func FromChannels(r, g, b int) TermRGB {
	return TermRGB{
		R: clampInt(r, 0, cubeLevels-1),
		G: clampInt(g, 0, cubeLevels-1),
		B: clampInt(b, 0, cubeLevels-1),
	}
}

// RGBOf decodes a Color's cube levels. The second return is false when
// the color is not in the RGB subspace.
func RGBOf(c Color) (TermRGB, bool) {
	if !c.IsRGB() {
		return TermRGB{}, false
	}
	n := c.code() - cubeStart
	return TermRGB{R: n / 36, G: n / 6 % 6, B: n % 6}, true
}

// Color encodes the triple into the RGB subspace.
func (t TermRGB) Color() Color {
	return fromLevels(t.R, t.G, t.B)
}

// Add returns the channel-wise sum, clamped.
func (t TermRGB) Add(other TermRGB) TermRGB {
	return FromChannels(t.R+other.R, t.G+other.G, t.B+other.B)
}

// Sub returns the channel-wise difference, clamped.
func (t TermRGB) Sub(other TermRGB) TermRGB {
	return FromChannels(t.R-other.R, t.G-other.G, t.B-other.B)
}

// Mul scales each channel by factor, truncating toward zero.
func (t TermRGB) Mul(factor float64) TermRGB {
	return FromChannels(
		int(float64(t.R)*factor),
		int(float64(t.G)*factor),
		int(float64(t.B)*factor),
	)
}

// Div divides each channel by divisor. Division by zero is an identity.
func (t TermRGB) Div(divisor float64) TermRGB {
	if divisor == 0 {
		return t
	}
	return FromChannels(
		int(float64(t.R)/divisor),
		int(float64(t.G)/divisor),
		int(float64(t.B)/divisor),
	)
}
