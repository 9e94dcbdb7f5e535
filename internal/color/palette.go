package color

// The 16 base palette entries, in ANSI order.
const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

// Common cube and ramp colors, built once at startup through the
// clamping constructors rather than written as raw codes.
var (
	CubeBlack   = FromRGB(0, 0, 0)
	CubeRed     = FromRGB(255, 0, 0)
	CubeGreen   = FromRGB(0, 255, 0)
	CubeBlue    = FromRGB(0, 0, 255)
	CubeYellow  = FromRGB(255, 255, 0)
	CubeMagenta = FromRGB(255, 0, 255)
	CubeCyan    = FromRGB(0, 255, 255)
	CubeWhite   = FromRGB(255, 255, 255)
	CubeOrange  = FromRGB(255, 135, 0)

	GrayDark  = FromGray(4)
	GrayMid   = FromGray(12)
	GrayLight = FromGray(20)
)

// names maps config color names to palette values. Cube entries are
// preferred over the base 16 so scenes get arithmetic-capable colors.
var names = map[string]Color{
	"default": Default,
	"black":   CubeBlack,
	"red":     CubeRed,
	"green":   CubeGreen,
	"blue":    CubeBlue,
	"yellow":  CubeYellow,
	"magenta": CubeMagenta,
	"cyan":    CubeCyan,
	"white":   CubeWhite,
	"orange":  CubeOrange,
	"gray":    GrayMid,
}

// ByName resolves a config color name. Unknown names fall back to
// Default so a bad config never produces an illegal attribute.
func ByName(name string) Color {
	if c, ok := names[name]; ok {
		return c
	}
	return Default
}
