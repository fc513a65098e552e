package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/chaos-arcade/internal/core"
)

// Palette maps core colors to terminal styles.
type Palette map[core.Color]lipgloss.Style

// Theme contains all visual styles for the shell.
type Theme struct {
	Name    string
	Palette Palette

	// Menu styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style

	// Toast styles
	ToastBorder core.Color
	ToastText   core.Color
	ToastBox    lipgloss.Style

	Help lipgloss.Style
}

func fg(c string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}

// DefaultTheme returns the standard ANSI theme.
func DefaultTheme() Theme {
	return Theme{
		Name: "classic",
		Palette: Palette{
			core.ColorDefault:       lipgloss.NewStyle(),
			core.ColorRed:           fg("1"),
			core.ColorGreen:         fg("2"),
			core.ColorYellow:        fg("3"),
			core.ColorBlue:          fg("4"),
			core.ColorMagenta:       fg("5"),
			core.ColorCyan:          fg("6"),
			core.ColorWhite:         fg("7"),
			core.ColorBrightRed:     fg("9"),
			core.ColorBrightGreen:   fg("10"),
			core.ColorBrightYellow:  fg("11"),
			core.ColorBrightBlue:    fg("12"),
			core.ColorBrightMagenta: fg("13"),
			core.ColorBrightCyan:    fg("14"),
			core.ColorBrightWhite:   fg("15"),
			core.ColorOrange:        fg("208"),
			core.ColorGray:          fg("245"),
		},

		MenuTitle:       fg("51").Bold(true),
		MenuItemNormal:  fg("252"),
		MenuItemActive:  fg("226").Bold(true),
		MenuDescription: fg("245"),

		ToastBorder: core.ColorBrightYellow,
		ToastText:   core.ColorBrightWhite,
		ToastBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("226")).
			Padding(0, 1),

		Help: fg("241"),
	}
}

// ChaosTheme returns the neon palette unlocked from the menu.
func ChaosTheme() Theme {
	t := DefaultTheme()
	t.Name = "chaos"
	t.Palette = Palette{
		core.ColorDefault:       fg("219"),
		core.ColorRed:           fg("199"), // Neon pink
		core.ColorGreen:         fg("118"), // Neon green
		core.ColorYellow:        fg("227"),
		core.ColorBlue:          fg("87"),
		core.ColorMagenta:       fg("171"),
		core.ColorCyan:          fg("51"),
		core.ColorWhite:         fg("231"),
		core.ColorBrightRed:     fg("197"),
		core.ColorBrightGreen:   fg("82"),
		core.ColorBrightYellow:  fg("226"),
		core.ColorBrightBlue:    fg("45"),
		core.ColorBrightMagenta: fg("201"),
		core.ColorBrightCyan:    fg("123"),
		core.ColorBrightWhite:   fg("255"),
		core.ColorOrange:        fg("202"),
		core.ColorGray:          fg("99"),
	}
	t.MenuTitle = fg("201").Bold(true).Blink(true)
	t.MenuItemActive = fg("118").Bold(true)
	t.ToastBorder = core.ColorBrightMagenta
	t.ToastBox = t.ToastBox.BorderForeground(lipgloss.Color("201"))
	return t
}

// ThemeFor returns the chaos theme when enabled, the default otherwise.
func ThemeFor(chaos bool) Theme {
	if chaos {
		return ChaosTheme()
	}
	return DefaultTheme()
}
