package ui

import "github.com/charmbracelet/lipgloss"

// Design centralizes the TUI color palette and common styles.
//
// Palette is based on Vitesse Dark Soft / Vitesse Light:
// https://github.com/antfu/vscode-theme-vitesse
type designTheme struct {
	Name string

	// Core brand/semantic colors
	Primary lipgloss.Color
	Blue    lipgloss.Color
	Yellow  lipgloss.Color
	Magenta lipgloss.Color
	Cyan    lipgloss.Color
	Red     lipgloss.Color

	// Text colors
	Text      lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color

	// Surfaces
	Bg     lipgloss.Color
	BgSoft lipgloss.Color
	Border lipgloss.Color

	// Text on accent backgrounds (e.g., buttons/chips)
	OnAccent lipgloss.Color

	BarFG lipgloss.Color
	BarBG lipgloss.Color
}

var vitesseDark = designTheme{
	Name:    "dark",
	Primary: lipgloss.Color("#4d9375"),
	Blue:    lipgloss.Color("#6394bf"),
	Yellow:  lipgloss.Color("#e6cc77"),
	Magenta: lipgloss.Color("#d9739f"),
	Cyan:    lipgloss.Color("#5eaab5"),
	Red:     lipgloss.Color("#cb7676"),

	Text:      lipgloss.Color("#dbd7caee"),
	Secondary: lipgloss.Color("#bfbaaa"),
	Muted:     lipgloss.Color("#dedcd590"),

	Bg:     lipgloss.Color("#181818"),
	BgSoft: lipgloss.Color("#292929"),
	Border: lipgloss.Color("#3a3a3a"),

	OnAccent: lipgloss.Color("#222"),

	BarFG: lipgloss.Color("#bfbaaa"),
	BarBG: lipgloss.Color("#222"),
}

var vitesseLight = designTheme{
	Name:    "light",
	Primary: lipgloss.Color("#1c6b48"),
	Blue:    lipgloss.Color("#296aa3"),
	Yellow:  lipgloss.Color("#bda437"),
	Magenta: lipgloss.Color("#a13865"),
	Cyan:    lipgloss.Color("#2f798a"),
	Red:     lipgloss.Color("#ab5959"),

	Text:      lipgloss.Color("#393a34"),
	Secondary: lipgloss.Color("#4e4f47"),
	Muted:     lipgloss.Color("#999999"),

	Bg:     lipgloss.Color("#ffffff"),
	BgSoft: lipgloss.Color("#f7f7f7"),
	Border: lipgloss.Color("#d9d9d9"),

	OnAccent: lipgloss.Color("#ffffff"),

	BarFG: lipgloss.Color("#343433"),
	BarBG: lipgloss.Color("#D9DCCF"),
}

// Vitesse is the active theme. Swapped by SetTheme.
var Vitesse = vitesseDark

// SetTheme activates the named theme ("dark" or "light"); unknown names keep dark.
func SetTheme(name string) {
	if name == "light" {
		Vitesse = vitesseLight
		return
	}
	Vitesse = vitesseDark
}

// ToggleTheme flips between dark and light and returns the new name.
func ToggleTheme() string {
	if Vitesse.Name == "dark" {
		SetTheme("light")
	} else {
		SetTheme("dark")
	}
	return Vitesse.Name
}

// BorderStyle returns a style with the standard border color.
func BorderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Vitesse.Border)
}

// AccentBold returns a bold style using the primary accent color.
func AccentBold() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(Vitesse.Primary)
}

func MutedStyle() lipgloss.Style { return lipgloss.NewStyle().Foreground(Vitesse.Muted) }

func OkStyle() lipgloss.Style { return lipgloss.NewStyle().Foreground(Vitesse.Primary) }

func ErrStyle() lipgloss.Style { return lipgloss.NewStyle().Foreground(Vitesse.Red) }

func WarnStyle() lipgloss.Style { return lipgloss.NewStyle().Foreground(Vitesse.Yellow) }

// ChipKeyStyle returns a style for the left-most highlighted chip in the status bar.
func ChipKeyStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Vitesse.OnAccent).
		Background(Vitesse.Primary).
		Padding(0, 1)
}

// ChipStyle returns a style for colored nuggets (right/left segments).
func ChipStyle(bg lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Vitesse.OnAccent).Background(bg).Padding(0, 1)
}

// StatusBarBase returns the base style for the status bar background/foreground.
func StatusBarBase() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Vitesse.BarFG).Background(Vitesse.BarBG)
}

// Button renders an accent button label. Disabled buttons are drawn muted.
func Button(s string, enabled bool) string {
	st := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	if !enabled {
		return st.Foreground(Vitesse.Muted).Background(Vitesse.BgSoft).Render(s)
	}
	return st.Foreground(Vitesse.OnAccent).Background(Vitesse.Primary).Render(s)
}

// DangerButton is Button with the red accent, used for uninstall.
func DangerButton(s string, enabled bool) string {
	if !enabled {
		return Button(s, false)
	}
	return lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(Vitesse.OnAccent).Background(Vitesse.Red).Render(s)
}
