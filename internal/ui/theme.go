package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors for the UI. Each theme is either a light or a dark
// palette; the dark-theme preference picks which of the two configured
// palettes is active.
type Theme struct {
	Name string
	Dark bool

	// Base colors
	Background string // Outermost background
	Surface    string // Calculator body
	SurfaceAlt string // Side panels
	FocusBg    string // Focused panel

	// Selection colors
	SelectionBg   string
	SelectionText string

	// Border colors
	Border      string
	BorderMuted string
	BorderFocus string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Display: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Bold(true).
			Align(lipgloss.Right),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Background(lipgloss.Color(t.Surface)).
			Padding(0, 1),

		FocusedPanel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Background(lipgloss.Color(t.FocusBg)).
			Padding(0, 1),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		Key: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Background(lipgloss.Color(t.SurfaceAlt)).
			Width(5).
			Align(lipgloss.Center),

		OperatorKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Background(lipgloss.Color(t.SurfaceAlt)).
			Bold(true).
			Width(5).
			Align(lipgloss.Center),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	// Text
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	// Components
	Display      lipgloss.Style
	Panel        lipgloss.Style
	FocusedPanel lipgloss.Style
	Selected     lipgloss.Style
	Key          lipgloss.Style
	OperatorKey  lipgloss.Style
}

// Theme definitions

var themes = map[string]Theme{
	"Nightfox": nightfoxTheme(),
	"Kanagawa": kanagawaTheme(),
	"Slate":    slateTheme(),
	"Dawnfox":  dawnfoxTheme(),
	"Lotus":    lotusTheme(),
}

var themeOrder = []string{"Dawnfox", "Lotus", "Nightfox", "Kanagawa", "Slate"}

// ThemeFor returns the named palette when it matches the requested mode,
// otherwise the default palette for that mode.
func ThemeFor(name string, dark bool) Theme {
	if t, ok := themes[name]; ok && t.Dark == dark {
		return t
	}
	if dark {
		return nightfoxTheme()
	}
	return dawnfoxTheme()
}

// NextPalette returns the palette after name among those of the same mode,
// wrapping around.
func NextPalette(name string, dark bool) string {
	var names []string
	for _, n := range themeOrder {
		if themes[n].Dark == dark {
			names = append(names, n)
		}
	}
	current := ThemeFor(name, dark).Name
	for i, n := range names {
		if n == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",
		Dark: true,

		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1
		SurfaceAlt: "#212e3f", // bg2
		FocusBg:    "#29394f", // bg3

		SelectionBg:   "#2b3b51", // sel0
		SelectionText: "#cdcecf", // fg1

		Border:      "#39506d", // bg4
		BorderMuted: "#212e3f", // bg2
		BorderFocus: "#719cd6", // blue

		Text:    "#cdcecf", // fg1
		Muted:   "#738091", // comment
		Faint:   "#71839b", // fg3
		Accent:  "#719cd6", // blue
		Success: "#81b29a", // green
		Warning: "#dbc074", // yellow
		Danger:  "#c94f6d", // red
		Info:    "#63cdcf", // cyan
	}
}

func kanagawaTheme() Theme {
	// Kanagawa palette: https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name: "Kanagawa",
		Dark: true,

		Background: "#16161D", // sumiInk0
		Surface:    "#1F1F28", // sumiInk3
		SurfaceAlt: "#2A2A37", // sumiInk4
		FocusBg:    "#2A2A37", // sumiInk4

		SelectionBg:   "#2D4F67", // waveBlue1
		SelectionText: "#DCD7BA", // fujiWhite

		Border:      "#54546D", // sumiInk6
		BorderMuted: "#2A2A37", // sumiInk4
		BorderFocus: "#7E9CD8", // crystalBlue

		Text:    "#DCD7BA", // fujiWhite
		Muted:   "#C8C093", // oldWhite
		Faint:   "#727169", // fujiGray
		Accent:  "#7E9CD8", // crystalBlue
		Success: "#98BB6C", // springGreen
		Warning: "#E6C384", // carpYellow
		Danger:  "#E46876", // waveRed
		Info:    "#7FB4CA", // springBlue
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",
		Dark: true,

		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900
		SurfaceAlt: "#1e293b", // slate-800
		FocusBg:    "#283548",

		SelectionBg:   "#0284c7", // sky-600
		SelectionText: "#f8fafc", // slate-50

		Border:      "#334155", // slate-700
		BorderMuted: "#1e293b", // slate-800
		BorderFocus: "#38bdf8", // sky-400

		Text:    "#f1f5f9", // slate-100
		Muted:   "#94a3b8", // slate-400
		Faint:   "#64748b", // slate-500
		Accent:  "#38bdf8", // sky-400
		Success: "#22c55e", // green-500
		Warning: "#f59e0b", // amber-500
		Danger:  "#ef4444", // red-500
		Info:    "#06b6d4", // cyan-500
	}
}

func dawnfoxTheme() Theme {
	// Dawnfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Dawnfox",

		Background: "#ebe5df", // bg0
		Surface:    "#faf4ed", // bg1
		SurfaceAlt: "#ebe0df", // bg2
		FocusBg:    "#ebdfe4", // bg3

		SelectionBg:   "#d0d8d8", // sel0
		SelectionText: "#575279", // fg1

		Border:      "#bdbfc9", // bg4
		BorderMuted: "#ebe0df", // bg2
		BorderFocus: "#286983", // blue

		Text:    "#575279", // fg1
		Muted:   "#9893a5", // comment
		Faint:   "#a8a3b3", // fg3
		Accent:  "#286983", // blue
		Success: "#618774", // green
		Warning: "#ea9d34", // yellow
		Danger:  "#b4637a", // red
		Info:    "#56949f", // cyan
	}
}

func lotusTheme() Theme {
	// Kanagawa lotus palette: https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name: "Lotus",

		Background: "#e5ddb0", // lotusWhite2
		Surface:    "#f2ecbc", // lotusWhite3
		SurfaceAlt: "#e7dba0", // lotusWhite4
		FocusBg:    "#e4d794", // lotusWhite5

		SelectionBg:   "#c9cbd1", // lotusViolet3
		SelectionText: "#545464", // lotusInk1

		Border:      "#a09cac", // lotusViolet1
		BorderMuted: "#e7dba0", // lotusWhite4
		BorderFocus: "#4d699b", // lotusBlue4

		Text:    "#545464", // lotusInk1
		Muted:   "#8a8980", // lotusGray3
		Faint:   "#a09cac", // lotusViolet1
		Accent:  "#4d699b", // lotusBlue4
		Success: "#6f894e", // lotusGreen
		Warning: "#77713f", // lotusYellow
		Danger:  "#c84053", // lotusRed
		Info:    "#597b75", // lotusAqua
	}
}
