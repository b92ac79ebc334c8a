package render

import (
	"netglobe/internal/geo"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Style definitions for the map chrome
var (
	StyleFrame        = tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
	StyleGrid         = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	StyleGraticule    = tcell.StyleDefault.Foreground(tcell.ColorSteelBlue)
	StyleBorder       = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	StyleCoastline    = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	StyleLabel        = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	StyleListItem     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	StyleListSelected = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	StyleStatus       = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

// Palette colors; blended with go-colorful for shading and the pulse glow
var (
	colorOceanDeep  = mustHex("#06213d")
	colorOceanLight = mustHex("#2a7fc4")
	colorLimb       = mustHex("#0b3a63")
	colorBackground = mustHex("#000000")

	categoryColors = map[geo.Category]colorful.Color{
		geo.CategoryHeadquarters: mustHex("#ffd75f"),
		geo.CategoryDistributor:  mustHex("#5fd7ff"),
		geo.CategoryRetail:       mustHex("#87d787"),
	}
	colorOther = mustHex("#bcbcbc")
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// toTcell converts a go-colorful color into a tcell RGB color
func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// CategoryColor returns the marker color for a category
func CategoryColor(cat geo.Category) colorful.Color {
	if c, ok := categoryColors[cat]; ok {
		return c
	}
	return colorOther
}

// GlyphForCategory returns the marker glyph for a category
func GlyphForCategory(cat geo.Category) rune {
	switch cat {
	case geo.CategoryHeadquarters:
		return '◆'
	case geo.CategoryDistributor:
		return '●'
	case geo.CategoryRetail:
		return '•'
	default:
		return '+'
	}
}

// MarkerStyle returns the glyph style for a marker
func MarkerStyle(cat geo.Category, selected bool) tcell.Style {
	style := tcell.StyleDefault.Foreground(toTcell(CategoryColor(cat))).Bold(true)
	if selected {
		style = style.Reverse(true)
	}
	return style
}

// PulseStyle fades the category color toward the background as the ring
// grows; phase runs from 0 (smallest ring) to 1 (largest).
func PulseStyle(cat geo.Category, phase float64) tcell.Style {
	c := CategoryColor(cat).BlendLab(colorBackground, 0.25+0.5*clamp01(phase))
	return tcell.StyleDefault.Foreground(toTcell(c))
}

// ShadeStyle paints a globe cell's background by how directly it faces the
// viewer; facing runs from 0 at the limb to 1 at the center of the disc.
func ShadeStyle(facing float64) tcell.Style {
	c := colorOceanDeep.BlendLab(colorOceanLight, clamp01(facing))
	return tcell.StyleDefault.Background(toTcell(c))
}

// RegionFillStyle is the background of the regional map area
func RegionFillStyle() tcell.Style {
	return tcell.StyleDefault.Background(toTcell(colorOceanDeep))
}

// LimbStyle is used for the outline of the globe
func LimbStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(toTcell(colorLimb))
}

// GetStyleForFeature returns the appropriate style for an outline feature
func GetStyleForFeature(ftype geo.FeatureType) tcell.Style {
	switch ftype {
	case geo.FeatureBorder:
		return StyleBorder
	case geo.FeatureCoastline:
		return StyleCoastline
	default:
		return StyleFrame
	}
}

// GetCharForFeature returns the character used to draw an outline feature
func GetCharForFeature(ftype geo.FeatureType) rune {
	switch ftype {
	case geo.FeatureBorder:
		return '·'
	case geo.FeatureCoastline:
		return '~'
	default:
		return '-'
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
