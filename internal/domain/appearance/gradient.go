package appearance

import "fmt"

// GradientToken identifies a tailwind gradient from the palette the UI renders.
// Tokens carry the full class fragment so the UI can interpolate them directly.
type GradientToken string

const (
	GradientEmeraldTeal GradientToken = "from-emerald-500 to-teal-500"
	GradientAmberYellow GradientToken = "from-amber-500 to-yellow-500"
	GradientRedPink     GradientToken = "from-red-500 to-pink-500"
	GradientPurplePink  GradientToken = "from-purple-500 to-pink-500"
	GradientBlueCyan    GradientToken = "from-blue-500 to-cyan-500"

	GradientPinkRose     GradientToken = "from-pink-400 to-rose-500"
	GradientBlueCyanSoft GradientToken = "from-blue-400 to-cyan-500"
	GradientAmberGold    GradientToken = "from-amber-400 to-yellow-500"
	GradientGreenEmerald GradientToken = "from-green-400 to-emerald-500"
	GradientIndigoPurple GradientToken = "from-indigo-400 to-purple-500"
	GradientRedOrange    GradientToken = "from-red-400 to-orange-500"
	GradientGraySoft     GradientToken = "from-gray-400 to-gray-500"

	GradientGrayLight     GradientToken = "from-gray-100 to-gray-200"
	GradientGoldHighlight GradientToken = "from-amber-400 via-yellow-400 to-amber-500"
	GradientPurpleGlow    GradientToken = "from-purple-500 via-pink-500 to-purple-600"
)

var validGradients = map[GradientToken]bool{
	GradientEmeraldTeal: true, GradientAmberYellow: true, GradientRedPink: true,
	GradientPurplePink: true, GradientBlueCyan: true, GradientPinkRose: true,
	GradientBlueCyanSoft: true, GradientAmberGold: true, GradientGreenEmerald: true,
	GradientIndigoPurple: true, GradientRedOrange: true, GradientGraySoft: true,
	GradientGrayLight: true, GradientGoldHighlight: true, GradientPurpleGlow: true,
}

// DefaultServiceGradient is applied to services created without a color
const DefaultServiceGradient = GradientGraySoft

// DefaultPlanGradient is applied to pricing plans created without a gradient
const DefaultPlanGradient = GradientGrayLight

// IsValid checks if the token belongs to the closed gradient palette
func (g GradientToken) IsValid() bool {
	return validGradients[g]
}

// String returns the string representation of the gradient token
func (g GradientToken) String() string {
	return string(g)
}

// NewGradientToken creates a GradientToken from a string
func NewGradientToken(s string, fallback GradientToken) (GradientToken, error) {
	if s == "" {
		return fallback, nil
	}
	g := GradientToken(s)
	if !g.IsValid() {
		return "", fmt.Errorf("unknown gradient token: %s", s)
	}
	return g, nil
}

// ButtonStyle is the call-to-action styling string attached to pricing plans.
// Unlike icons and gradients this set is open: custom styles are kept verbatim,
// only the default is modeled here.
type ButtonStyle string

// DefaultButtonStyle is applied to pricing plans created without a style
const DefaultButtonStyle ButtonStyle = "bg-gradient-to-r from-gray-700 to-gray-800 text-white hover:from-gray-600 hover:to-gray-700"

// String returns the string representation of the button style
func (b ButtonStyle) String() string {
	return string(b)
}
