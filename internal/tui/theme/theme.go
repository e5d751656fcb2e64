// Package theme defines the dark and light color themes for the tally TUI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name          string
	Dark          bool
	Background    lipgloss.Color // Main app background
	Surface       lipgloss.Color // Card/panel backgrounds
	SurfaceHover  lipgloss.Color // Selected card
	Border        lipgloss.Color // Subtle borders
	BorderBright  lipgloss.Color // Prominent borders
	BorderAccent  lipgloss.Color // Selected card border
	TextDim       lipgloss.Color // Hints, disabled
	TextMuted     lipgloss.Color // Labels, metadata
	TextPrimary   lipgloss.Color // Primary content text
	Accent        lipgloss.Color // Active tab, key hints
	AccentDim     lipgloss.Color // Progress bar track
	Green         lipgloss.Color // Completed items, interest
	Orange        lipgloss.Color // Warnings
	Red           lipgloss.Color // Debt progress, errors
	Blue          lipgloss.Color // Savings progress
	Yellow        lipgloss.Color
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default theme - warm, paper-inspired dark theme.
var FlexokiDark = Theme{
	Name:         "flexoki-dark",
	Dark:         true,
	Background:   lipgloss.Color("#100F0F"),
	Surface:      lipgloss.Color("#1C1B1A"),
	SurfaceHover: lipgloss.Color("#282726"),
	Border:       lipgloss.Color("#403E3C"),
	BorderBright: lipgloss.Color("#575653"),
	BorderAccent: lipgloss.Color("#3AA99F"),
	TextDim:      lipgloss.Color("#575653"),
	TextMuted:    lipgloss.Color("#878580"),
	TextPrimary:  lipgloss.Color("#FFFCF0"),
	Accent:       lipgloss.Color("#3AA99F"),
	AccentDim:    lipgloss.Color("#1A3533"),
	Green:        lipgloss.Color("#879A39"),
	Orange:       lipgloss.Color("#DA702C"),
	Red:          lipgloss.Color("#D14D41"),
	Blue:         lipgloss.Color("#4385BE"),
	Yellow:       lipgloss.Color("#D0A215"),
}

// FlexokiLight is the paper side of Flexoki.
var FlexokiLight = Theme{
	Name:         "flexoki-light",
	Background:   lipgloss.Color("#FFFCF0"),
	Surface:      lipgloss.Color("#F2F0E5"),
	SurfaceHover: lipgloss.Color("#E6E4D9"),
	Border:       lipgloss.Color("#DAD8CE"),
	BorderBright: lipgloss.Color("#B7B5AC"),
	BorderAccent: lipgloss.Color("#24837B"),
	TextDim:      lipgloss.Color("#B7B5AC"),
	TextMuted:    lipgloss.Color("#6F6E69"),
	TextPrimary:  lipgloss.Color("#100F0F"),
	Accent:       lipgloss.Color("#24837B"),
	AccentDim:    lipgloss.Color("#DDF1E4"),
	Green:        lipgloss.Color("#66800B"),
	Orange:       lipgloss.Color("#BC5215"),
	Red:          lipgloss.Color("#AF3029"),
	Blue:         lipgloss.Color("#205EA6"),
	Yellow:       lipgloss.Color("#AD8301"),
}

// CatppuccinMocha is a warm pastel theme with soft, soothing colors.
var CatppuccinMocha = Theme{
	Name:         "catppuccin-mocha",
	Dark:         true,
	Background:   lipgloss.Color("#1E1E2E"),
	Surface:      lipgloss.Color("#313244"),
	SurfaceHover: lipgloss.Color("#45475A"),
	Border:       lipgloss.Color("#585B70"),
	BorderBright: lipgloss.Color("#7F849C"),
	BorderAccent: lipgloss.Color("#89B4FA"),
	TextDim:      lipgloss.Color("#6C7086"),
	TextMuted:    lipgloss.Color("#A6ADC8"),
	TextPrimary:  lipgloss.Color("#CDD6F4"),
	Accent:       lipgloss.Color("#89B4FA"),
	AccentDim:    lipgloss.Color("#293147"),
	Green:        lipgloss.Color("#A6E3A1"),
	Orange:       lipgloss.Color("#FAB387"),
	Red:          lipgloss.Color("#F38BA8"),
	Blue:         lipgloss.Color("#89B4FA"),
	Yellow:       lipgloss.Color("#F9E2AF"),
}

// CatppuccinLatte is Mocha's light counterpart.
var CatppuccinLatte = Theme{
	Name:         "catppuccin-latte",
	Background:   lipgloss.Color("#EFF1F5"),
	Surface:      lipgloss.Color("#E6E9EF"),
	SurfaceHover: lipgloss.Color("#CCD0DA"),
	Border:       lipgloss.Color("#BCC0CC"),
	BorderBright: lipgloss.Color("#9CA0B0"),
	BorderAccent: lipgloss.Color("#1E66F5"),
	TextDim:      lipgloss.Color("#9CA0B0"),
	TextMuted:    lipgloss.Color("#6C6F85"),
	TextPrimary:  lipgloss.Color("#4C4F69"),
	Accent:       lipgloss.Color("#1E66F5"),
	AccentDim:    lipgloss.Color("#DCE0E8"),
	Green:        lipgloss.Color("#40A02B"),
	Orange:       lipgloss.Color("#FE640B"),
	Red:          lipgloss.Color("#D20F39"),
	Blue:         lipgloss.Color("#1E66F5"),
	Yellow:       lipgloss.Color("#DF8E1D"),
}

// Terminal uses ANSI 16 colors only - maximum compatibility.
var Terminal = Theme{
	Name:         "terminal",
	Dark:         true,
	Background:   lipgloss.Color("0"),
	Surface:      lipgloss.Color("0"),
	SurfaceHover: lipgloss.Color("8"),
	Border:       lipgloss.Color("8"),
	BorderBright: lipgloss.Color("7"),
	BorderAccent: lipgloss.Color("6"),
	TextDim:      lipgloss.Color("8"),
	TextMuted:    lipgloss.Color("7"),
	TextPrimary:  lipgloss.Color("15"),
	Accent:       lipgloss.Color("6"),
	AccentDim:    lipgloss.Color("0"),
	Green:        lipgloss.Color("2"),
	Orange:       lipgloss.Color("3"),
	Red:          lipgloss.Color("1"),
	Blue:         lipgloss.Color("4"),
	Yellow:       lipgloss.Color("3"),
}

// All available themes.
var All = []Theme{FlexokiDark, FlexokiLight, CatppuccinMocha, CatppuccinLatte, Terminal}

// ByName returns a theme by its name, defaulting to FlexokiDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return FlexokiDark
}

// ForMode picks the dark or light theme. A name whose theme has the wrong
// brightness falls back to the Flexoki theme of the requested mode.
func ForMode(dark bool, darkName, lightName string) Theme {
	name, fallback := lightName, FlexokiLight
	if dark {
		name, fallback = darkName, FlexokiDark
	}
	t := ByName(name)
	if t.Name != name || t.Dark != dark {
		return fallback
	}
	return t
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}

// SetMode sets the active theme from a dark/light choice.
func SetMode(dark bool, darkName, lightName string) {
	Active = ForMode(dark, darkName, lightName)
}
