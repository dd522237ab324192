package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/brain-trainer/constants"
)

var (
	textDark  = tcell.NewRGBColor(15, 23, 42)
	textLight = tcell.NewRGBColor(248, 250, 252)
)

// HexColor parses #rrggbb, invalid input yields the terminal default
func HexColor(hex string) tcell.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return tcell.ColorDefault
	}
	return toTcell(c)
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Dim blends hex toward base in Lab space, factor 0 keeps hex and 1 yields base
func Dim(hex, base string, factor float64) tcell.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return tcell.ColorDefault
	}
	b, err := colorful.Hex(base)
	if err != nil {
		return toTcell(c)
	}
	if factor <= 0 {
		return toTcell(c)
	}
	if factor >= 1 {
		return toTcell(b)
	}
	return toTcell(c.BlendLab(b, factor))
}

// TextOn picks dark or light text for a background
func TextOn(hex string) tcell.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return textLight
	}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return textDark
	}
	return textLight
}

// Theme holds the resolved styles the renderer draws with
type Theme struct {
	Base      tcell.Style
	Panel     tcell.Style
	Muted     tcell.Style
	Text      tcell.Style
	Accent    tcell.Style
	Focus     tcell.Style
	Warning   tcell.Style
	Trophy    tcell.Style
	Tile      tcell.Style
	TileFound tcell.Style
	CardDown  tcell.Style
	CardUp    tcell.Style
	Matched   tcell.Style
}

// DefaultTheme resolves the slate palette
func DefaultTheme() Theme {
	bg := HexColor(constants.BackgroundHex)
	base := tcell.StyleDefault.Background(bg).Foreground(HexColor(constants.TextHex))

	return Theme{
		Base:      base,
		Panel:     base.Background(HexColor(constants.PanelHex)),
		Muted:     base.Foreground(HexColor(constants.MutedHex)),
		Text:      base,
		Accent:    base.Foreground(HexColor(constants.AccentHex)).Bold(true),
		Focus:     base.Background(HexColor(constants.AccentHex)).Foreground(TextOn(constants.AccentHex)).Bold(true),
		Warning:   base.Foreground(HexColor(constants.WarningHex)).Bold(true),
		Trophy:    base.Foreground(HexColor(constants.TrophyHex)).Bold(true),
		Tile:      base.Background(HexColor(constants.TileHex)).Foreground(TextOn(constants.TileHex)).Bold(true),
		TileFound: base.Background(Dim(constants.TileHex, constants.BackgroundHex, constants.FoundDimFactor)).Foreground(HexColor(constants.MutedHex)),
		CardDown:  base.Background(HexColor(constants.TileHex)).Foreground(HexColor(constants.MemoryHex)),
		CardUp:    base.Background(HexColor(constants.PanelHex)).Foreground(HexColor(constants.MemoryHex)).Bold(true),
		Matched:   base.Background(HexColor(constants.MatchedHex)).Foreground(HexColor(constants.MatchedIcon)),
	}
}
