package color

import "testing"

func TestFromRGBStaysInCube(t *testing.T) {
	// Sweep the byte space on a coarse grid plus the extremes.
	values := []int{0, 1, 42, 95, 127, 128, 200, 254, 255, -10, 300}
	for _, r := range values {
		for _, g := range values {
			for _, b := range values {
				c := FromRGB(r, g, b)
				if c.Code() < 16 || c.Code() >= 232 {
					t.Fatalf("FromRGB(%d,%d,%d) = %d, outside cube range", r, g, b, c.Code())
				}
				if !c.IsRGB() {
					t.Fatalf("FromRGB(%d,%d,%d) not classified as RGB", r, g, b)
				}
			}
		}
	}
}

func TestFromRGBArithmeticIdentity(t *testing.T) {
	c := FromRGB(200, 100, 50)
	if got := c.Add(0); got != c {
		t.Errorf("Add(0) = %v, expected %v", got, c)
	}
	if got := c.Scale(1); got != c {
		t.Errorf("Scale(1) = %v, expected %v", got, c)
	}
	if got := c.Div(1); got != c {
		t.Errorf("Div(1) = %v, expected %v", got, c)
	}
}

func TestFromGrayRoundTrip(t *testing.T) {
	for s := 0; s < 24; s++ {
		c := FromGray(s)
		if !c.IsGray() {
			t.Fatalf("FromGray(%d) not classified as gray", s)
		}
		if got := c.Code() - 232; got != s {
			t.Errorf("FromGray(%d) decodes to level %d", s, got)
		}
	}
}

func TestFromGrayClamps(t *testing.T) {
	if got := FromGray(-5); got != FromGray(0) {
		t.Errorf("FromGray(-5) = %v, expected ramp minimum", got)
	}
	if got := FromGray(99); got != FromGray(23) {
		t.Errorf("FromGray(99) = %v, expected ramp maximum", got)
	}
}

func TestFromPaletteClamps(t *testing.T) {
	if got := FromPalette(-1); got != Black {
		t.Errorf("FromPalette(-1) = %v, expected Black", got)
	}
	if got := FromPalette(100); got != BrightWhite {
		t.Errorf("FromPalette(100) = %v, expected BrightWhite", got)
	}
}

func TestSubspacesPartition(t *testing.T) {
	for code := 0; code < 256; code++ {
		c := Color(code)
		count := 0
		if c.IsFixed() {
			count++
		}
		if c.IsRGB() {
			count++
		}
		if c.IsGray() {
			count++
		}
		if count != 1 {
			t.Fatalf("code %d matched %d subspaces, expected exactly 1", code, count)
		}
	}
	if Default.IsFixed() || Default.IsRGB() || Default.IsGray() {
		t.Error("Default must not belong to any subspace")
	}
}

func TestScalarAddSaturates(t *testing.T) {
	if got := BrightWhite.Add(10); got != BrightWhite {
		t.Errorf("palette add past top = %v, expected saturation at BrightWhite", got)
	}
	if got := Black.Sub(3); got != Black {
		t.Errorf("palette sub past bottom = %v, expected saturation at Black", got)
	}
	if got := FromGray(20).Add(100); got != FromGray(23) {
		t.Errorf("gray add past top = %v, expected ramp maximum", got)
	}
	if got := FromGray(2).Sub(100); got != FromGray(0) {
		t.Errorf("gray sub past bottom = %v, expected ramp minimum", got)
	}
}

func TestScalarAddIsIdentityOutsideSteppedSubspaces(t *testing.T) {
	rgb := FromRGB(100, 100, 100)
	if got := rgb.Add(5); got != rgb {
		t.Errorf("RGB scalar add = %v, expected no-op", got)
	}
	if got := Default.Add(1); got != Default {
		t.Errorf("Default scalar add = %v, expected no-op", got)
	}
}

func TestIncrDecr(t *testing.T) {
	if got := Red.Incr(); got != Green {
		t.Errorf("Red.Incr() = %v, expected Green", got)
	}
	if got := Green.Decr(); got != Red {
		t.Errorf("Green.Decr() = %v, expected Red", got)
	}
}

func TestAddColorSameSubspace(t *testing.T) {
	a := FromRGB(255, 0, 0)
	b := FromRGB(0, 255, 0)
	sum := a.AddColor(b)
	levels, ok := RGBOf(sum)
	if !ok {
		t.Fatal("RGB+RGB left the cube")
	}
	if levels.R != 5 || levels.G != 5 || levels.B != 0 {
		t.Errorf("red+green = %+v, expected levels {5 5 0}", levels)
	}

	// Saturation, not wraparound.
	white := FromRGB(255, 255, 255)
	if got := white.AddColor(white); got != white {
		t.Errorf("white+white = %v, expected white", got)
	}

	g := FromGray(20).AddColor(FromGray(10))
	if g != FromGray(23) {
		t.Errorf("gray 20+10 = %v, expected ramp maximum", g)
	}
}

func TestSubColorSameSubspace(t *testing.T) {
	a := FromRGB(255, 255, 255)
	b := FromRGB(0, 255, 0)
	diff := a.SubColor(b)
	levels, ok := RGBOf(diff)
	if !ok {
		t.Fatal("RGB-RGB left the cube")
	}
	if levels.R != 5 || levels.G != 0 || levels.B != 5 {
		t.Errorf("white-green = %+v, expected levels {5 0 5}", levels)
	}

	if got := FromGray(5).SubColor(FromGray(10)); got != FromGray(0) {
		t.Errorf("gray 5-10 = %v, expected ramp minimum", got)
	}
}

func TestCrossSubspaceReturnsRightOperand(t *testing.T) {
	rgb := FromRGB(128, 128, 128)
	gray := FromGray(12)

	if got := rgb.AddColor(gray); got != gray {
		t.Errorf("rgb+gray = %v, expected right operand %v", got, gray)
	}
	if got := gray.AddColor(rgb); got != rgb {
		t.Errorf("gray+rgb = %v, expected right operand %v", got, rgb)
	}
	if got := Default.AddColor(rgb); got != rgb {
		t.Errorf("default+rgb = %v, expected right operand %v", got, rgb)
	}
	if got := rgb.SubColor(Red); got != Red {
		t.Errorf("rgb-fixed = %v, expected right operand %v", got, Red)
	}
}

func TestScaleZeroYieldsSubspaceMinimum(t *testing.T) {
	if got := FromRGB(255, 200, 100).Scale(0); got != CubeBlack {
		t.Errorf("RGB scale by 0 = %v, expected cube black", got)
	}
	if got := FromGray(23).Scale(0); got != FromGray(0) {
		t.Errorf("gray scale by 0 = %v, expected ramp minimum", got)
	}
}

func TestScaleClampsAtTop(t *testing.T) {
	if got := FromRGB(255, 255, 255).Scale(10); got != CubeWhite {
		t.Errorf("scale past top = %v, expected cube white", got)
	}
	if got := FromGray(20).Scale(100); got != FromGray(23) {
		t.Errorf("gray scale past top = %v, expected ramp maximum", got)
	}
}

func TestDivApproachesMinimum(t *testing.T) {
	if got := FromRGB(255, 255, 255).Div(1000); got != CubeBlack {
		t.Errorf("RGB div by 1000 = %v, expected cube black", got)
	}
	if got := FromGray(23).Div(1000); got != FromGray(0) {
		t.Errorf("gray div by 1000 = %v, expected ramp minimum", got)
	}
	// Division by zero must not fault or change the value.
	c := FromRGB(100, 100, 100)
	if got := c.Div(0); got != c {
		t.Errorf("div by 0 = %v, expected identity", got)
	}
}

func TestScaleIsIdentityForFixedAndDefault(t *testing.T) {
	if got := Red.Scale(0.5); got != Red {
		t.Errorf("fixed scale = %v, expected no-op", got)
	}
	if got := Default.Scale(0); got != Default {
		t.Errorf("default scale = %v, expected no-op", got)
	}
}

func TestReversedKeepsCode(t *testing.T) {
	c := FromRGB(255, 0, 0)
	r := c.Reversed()
	if !r.IsReversed() {
		t.Fatal("Reversed() did not set the reverse attribute")
	}
	if r.Code() != c.Code() {
		t.Errorf("Reversed() changed code from %d to %d", c.Code(), r.Code())
	}
	if !r.IsRGB() {
		t.Error("reverse attribute must not change subspace classification")
	}
}

func TestArithmeticPreservesReverseAttribute(t *testing.T) {
	c := FromGray(10).Reversed()
	if got := c.Add(2); !got.IsReversed() || got != FromGray(12).Reversed() {
		t.Errorf("reversed gray add = %v, expected reversed gray 12", got)
	}
}

func TestBlackToDefault(t *testing.T) {
	bg := Default
	if got := FromRGB(0, 0, 0).BlackToDefault(bg); got != bg {
		t.Errorf("cube black = %v, expected default", got)
	}
	if got := FromGray(0).BlackToDefault(bg); got != bg {
		t.Errorf("ramp black = %v, expected default", got)
	}
	c := FromRGB(255, 0, 0)
	if got := c.BlackToDefault(bg); got != c {
		t.Errorf("non-black %v replaced by default", c)
	}
	// Fixed-palette black is a real palette entry, not a blend artifact.
	if got := Black.BlackToDefault(bg); got != Black {
		t.Errorf("palette black = %v, expected unchanged", got)
	}
}

func TestByName(t *testing.T) {
	if got := ByName("white"); got != CubeWhite {
		t.Errorf("ByName(white) = %v, expected cube white", got)
	}
	if got := ByName("no-such-color"); got != Default {
		t.Errorf("ByName(unknown) = %v, expected Default", got)
	}
}
