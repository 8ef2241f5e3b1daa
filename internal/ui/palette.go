package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/sahilm/fuzzy"
)

type paletteSource []paletteEntry

func (p paletteSource) String(i int) string { return p[i].title + " " + p[i].desc }
func (p paletteSource) Len() int            { return len(p) }

// filterPalette returns entries matching query, best first. An empty query
// lists everything in declaration order.
func filterPalette(query string) []paletteEntry {
	query = strings.TrimSpace(query)
	if query == "" {
		return append([]paletteEntry(nil), paletteEntries...)
	}
	matches := fuzzy.FindFrom(query, paletteSource(paletteEntries))
	out := make([]paletteEntry, 0, len(matches))
	for _, mt := range matches {
		out = append(out, paletteEntries[mt.Index])
	}
	return out
}

func (m *model) openPalette() {
	m.paletteOpen = true
	m.paletteInput.SetValue("")
	m.paletteInput.Focus()
	m.paletteHits = filterPalette("")
	m.paletteIndex = 0
}

func (m *model) closePalette() {
	m.paletteOpen = false
	m.paletteInput.Blur()
	m.paletteInput.SetValue("")
}

// renderCommandPalette draws the palette overlay: an input echo line and the
// filtered commands list.
func renderCommandPalette(width int, input string, hits []paletteEntry, sel int) string {
	inner := width - 2
	if inner < 30 {
		inner = 30
	}
	nameWidth := 22
	border := BorderStyle()
	hl := lipgloss.NewStyle().Bold(true).Foreground(Vitesse.Primary).Render
	dim := MutedStyle().Render
	row := func(s string) string {
		if xansi.StringWidth(s) > inner {
			s = xansi.Truncate(s, inner, "")
		}
		return border.Render("│") + lipgloss.NewStyle().Width(inner).Render(s) + border.Render("│") + "\n"
	}

	var b strings.Builder
	b.WriteString(border.Render("╭"+strings.Repeat("─", inner)+"╮") + "\n")
	b.WriteString(row(" " + input))
	b.WriteString(border.Render("├"+strings.Repeat("─", inner)+"┤") + "\n")

	maxItems := 10
	if len(hits) > maxItems {
		hits = hits[:maxItems]
		if sel >= maxItems {
			sel = maxItems - 1
		}
	}
	if len(hits) == 0 {
		b.WriteString(row("  no matches"))
	}
	for i, c := range hits {
		name := fmt.Sprintf("%-*s", nameWidth, c.title)
		if i == sel {
			b.WriteString(row(hl("› "+name) + "  " + dim(c.desc)))
			continue
		}
		b.WriteString(row("  " + name + "  " + dim(c.desc)))
	}
	b.WriteString(border.Render("╰"+strings.Repeat("─", inner)+"╯") + "\n")
	b.WriteString(dim("  ↑/↓ select · enter run · esc close") + "\n")
	return b.String()
}
