package globe

// Theme is the palette the client paints the globe with.
type Theme struct {
	Name       string `json:"name"`
	Ocean      string `json:"ocean"`
	Land       string `json:"land"`
	Stroke     string `json:"stroke"`
	FontFamily string `json:"font_family"`
}

var (
	defaultTheme = Theme{
		Name:       "default",
		Ocean:      "#e7f6f2",
		Land:       "#d2d2d2",
		Stroke:     "#111",
		FontFamily: "inherit",
	}
	retroTheme = Theme{
		Name:       "retro",
		Ocean:      "#dff5f2",
		Land:       "#26d0c9",
		Stroke:     "#0e2a47",
		FontFamily: `"Barlow", "Futura", ui-sans-serif, system-ui`,
	}
)

// ThemeFor returns the palette for the given retro flag.
func ThemeFor(retro bool) Theme {
	if retro {
		return retroTheme
	}
	return defaultTheme
}
