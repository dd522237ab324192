package board

// Color is one selectable color, identity is Name
type Color struct {
	Name string
	Hex  string
}

// Icon is one memory card face, identity is Name
type Icon struct {
	Name  string
	Glyph rune
}

// DefaultPalette is the six-color palette of the color/word test
var DefaultPalette = []Color{
	{Name: "Röd", Hex: "#ef4444"},
	{Name: "Blå", Hex: "#3b82f6"},
	{Name: "Grön", Hex: "#22c55e"},
	{Name: "Gul", Hex: "#facc15"},
	{Name: "Lila", Hex: "#a855f7"},
	{Name: "Orange", Hex: "#f97316"},
}

// DefaultIcons are the eight card faces of the memory board
var DefaultIcons = []Icon{
	{Name: "star", Glyph: '★'},
	{Name: "heart", Glyph: '♥'},
	{Name: "sun", Glyph: '☀'},
	{Name: "moon", Glyph: '☾'},
	{Name: "cloud", Glyph: '☁'},
	{Name: "lightning", Glyph: 'ϟ'},
	{Name: "diamond", Glyph: '◆'},
	{Name: "smiley", Glyph: '☺'},
}

// FindColor looks up a palette entry by identity
func FindColor(palette []Color, name string) (Color, bool) {
	for _, c := range palette {
		if c.Name == name {
			return c, true
		}
	}
	return Color{}, false
}
