package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
)

// renderBanner creates the welcome banner with additional lines inside the box.
func renderBanner(width int, extra []string) string {
	lines := []string{
		AccentBold().Render("✻ uvctl") + MutedStyle().Render(" · uv & Python version dashboard"),
		"",
	}
	lines = append(lines, extra...)

	// compute max display width (ignore ANSI codes)
	max := 0
	for _, ln := range lines {
		if w := xansi.StringWidth(ln); w > max {
			max = w
		}
	}
	if width > 4 && max < width-4 {
		max = width - 4
	}
	border := BorderStyle()
	var sb strings.Builder
	sb.WriteString(border.Render("╭"+strings.Repeat("─", max+2)+"╮") + "\n")
	for _, ln := range lines {
		if xansi.StringWidth(ln) > max {
			ln = xansi.Truncate(ln, max, "…")
		}
		pad := max - xansi.StringWidth(ln)
		sb.WriteString(border.Render("│") + " ")
		sb.WriteString(ln)
		if pad > 0 {
			sb.WriteString(strings.Repeat(" ", pad))
		}
		sb.WriteString(" " + border.Render("│") + "\n")
	}
	sb.WriteString(border.Render("╰"+strings.Repeat("─", max+2)+"╯") + "\n")
	return sb.String()
}

// renderTabs draws the three-tab bar with clickable zones.
func renderTabs(width int, activeTab tabKind) string {
	active := lipgloss.NewStyle().Bold(true).
		Foreground(Vitesse.OnAccent).
		Background(Vitesse.Primary).
		Padding(0, 1)
	inactive := lipgloss.NewStyle().
		Foreground(Vitesse.Secondary).
		Padding(0, 1)
	sep := BorderStyle().Render("│")
	tabs := []struct {
		kind tabKind
		id   string
		icon string
	}{
		{tabInstall, "tab.install", IconTool()},
		{tabPython, "tab.python", IconPython()},
		{tabHelp, "tab.help", "?"},
	}
	parts := make([]string, 0, len(tabs))
	for i, t := range tabs {
		label := strings.TrimSpace(strconv.Itoa(i+1) + " " + t.icon + " " + t.kind.String())
		st := inactive
		if t.kind == activeTab {
			st = active
		}
		parts = append(parts, zone.Mark(t.id, st.Render(label)))
	}
	line := strings.Join(parts, sep)
	if width > 0 {
		return lipgloss.NewStyle().Width(width).Render(line)
	}
	return line
}

// renderStatusBarStyled renders a status bar with a key chip on the left,
// colored nuggets and a right-aligned group.
func renderStatusBarStyled(width int, leftParts, rightParts []string) string {
	w := width
	if w <= 0 {
		w = 100
	}
	statusBarStyle := StatusBarBase()
	keyStyle := ChipKeyStyle().MarginRight(1)
	nugget := lipgloss.NewStyle().Foreground(Vitesse.OnAccent).Padding(0, 1)
	nuggetBG := []lipgloss.Color{Vitesse.Blue, Vitesse.Yellow, Vitesse.Magenta, Vitesse.Cyan}

	leftItems := make([]string, 0, len(leftParts))
	for i, s := range leftParts {
		if i == 0 {
			leftItems = append(leftItems, keyStyle.Render(s))
			continue
		}
		leftItems = append(leftItems, statusBarStyle.Render(s))
	}
	rightItems := make([]string, 0, len(rightParts))
	for i, s := range rightParts {
		rightItems = append(rightItems, nugget.Background(nuggetBG[i%len(nuggetBG)]).Render(s))
	}
	leftStr := strings.Join(leftItems, "")
	rightStr := strings.Join(rightItems, "")
	lw := xansi.StringWidth(leftStr)
	rw := xansi.StringWidth(rightStr)

	for lw+rw > w && len(rightItems) > 0 {
		rightItems = rightItems[:len(rightItems)-1]
		rightStr = strings.Join(rightItems, "")
		rw = xansi.StringWidth(rightStr)
	}
	if lw+rw > w {
		leftStr = xansi.Truncate(leftStr, maxInt(0, w-rw), "…")
		lw = xansi.StringWidth(leftStr)
	}
	center := statusBarStyle.Width(maxInt(0, w-lw-rw)).Render("")
	return statusBarStyle.Width(w).Render(leftStr + center + rightStr)
}

// renderInputUI draws a single-line bordered input box at the given width.
func renderInputUI(width int, content string, focused bool) string {
	w := width
	if w <= 0 {
		w = 40
	}
	if w < 10 {
		w = 10
	}
	inner := w - 2
	border := BorderStyle()
	if focused {
		border = lipgloss.NewStyle().Foreground(Vitesse.Primary)
	}
	if xansi.StringWidth(content) > inner {
		content = xansi.Truncate(content, inner, "")
	}
	pad := inner - xansi.StringWidth(content)
	var sb strings.Builder
	sb.WriteString(border.Render("╭"+strings.Repeat("─", inner)+"╮") + "\n")
	sb.WriteString(border.Render("│"))
	sb.WriteString(content)
	if pad > 0 {
		sb.WriteString(strings.Repeat(" ", pad))
	}
	sb.WriteString(border.Render("│") + "\n")
	sb.WriteString(border.Render("╰" + strings.Repeat("─", inner) + "╯"))
	return sb.String()
}

// styleDetail colors the detail text by its leading marker.
func styleDetail(s string) string {
	if s == "" {
		return MutedStyle().Render("No output yet.")
	}
	first, rest, hasRest := strings.Cut(s, "\n")
	switch {
	case strings.HasPrefix(first, "✓"):
		first = OkStyle().Bold(true).Render(first)
	case strings.HasPrefix(first, "✗"):
		first = ErrStyle().Bold(true).Render(first)
	case strings.HasPrefix(first, "⚠"):
		first = WarnStyle().Bold(true).Render(first)
	}
	if hasRest {
		return first + "\n" + rest
	}
	return first
}

// helper used locally for layout
func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
