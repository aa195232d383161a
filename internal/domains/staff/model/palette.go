package model

// Palette is the set of shades a staff member's bookings are drawn with on the grid.
type Palette struct {
	Name  string `json:"name"`
	Base  string `json:"bg"`
	Solid string `json:"solid"`
	Light string `json:"light"`
}

const DefaultPalette = "teal"

var palettes = map[string]Palette{
	"indigo":  {Name: "indigo", Base: "#6366f1", Solid: "#4f46e5", Light: "#e0e7ff"},
	"rose":    {Name: "rose", Base: "#f43f5e", Solid: "#e11d48", Light: "#ffe4e6"},
	"amber":   {Name: "amber", Base: "#f59e0b", Solid: "#d97706", Light: "#fef3c7"},
	"emerald": {Name: "emerald", Base: "#10b981", Solid: "#059669", Light: "#d1fae5"},
	"sky":     {Name: "sky", Base: "#0ea5e9", Solid: "#0284c7", Light: "#e0f2fe"},
	"teal":    {Name: "teal", Base: "#14b8a6", Solid: "#0d9488", Light: "#ccfbf1"},
}

// PaletteOf falls back to teal for unknown names.
func PaletteOf(name string) Palette {
	if palette, ok := palettes[name]; ok {
		return palette
	}

	return palettes[DefaultPalette]
}
