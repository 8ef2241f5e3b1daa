package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// calcInnerWidths computes inner content widths (excluding the 2 border characters) for n columns.
func calcInnerWidths(totalW, cols, gap int) []int {
	if cols <= 0 {
		return []int{}
	}
	// Each card has outer width = inner + 2. Total gaps = gap*(cols-1)
	avail := totalW - gap*(cols-1) - 2*cols
	if avail < cols*10 {
		avail = cols * 10
	}
	base := avail / cols
	rem := avail % cols
	out := make([]int, cols)
	for i := 0; i < cols; i++ {
		w := base
		if i < rem {
			w++
		}
		if w < 16 {
			w = 16
		}
		out[i] = w
	}
	return out
}

// renderCard draws a card with the title embedded in the top border. When
// fixedLines > 0 the body is padded or clipped to exactly that many lines.
// Focused cards use the accent border.
func renderCard(inner int, title string, lines []string, fixedLines int, focused bool) string {
	if inner < 16 {
		inner = 16
	}
	color := Vitesse.Border
	if focused {
		color = Vitesse.Primary
	}
	return renderTopBorderWithTitle(inner, title, color) + "\n" + renderBodyBox(inner, lines, fixedLines, color)
}

// renderBodyBox renders a box with no top border (left/right/bottom only).
func renderBodyBox(inner int, lines []string, fixedLines int, borderColor lipgloss.Color) string {
	if inner < 1 {
		inner = 1
	}
	padLeft := 1
	cw := inner - padLeft
	if cw < 1 {
		cw = 1
	}
	contentStyle := lipgloss.NewStyle().PaddingLeft(padLeft).Width(cw + padLeft).MaxWidth(inner)
	n := len(lines)
	if fixedLines > 0 {
		n = fixedLines
	}
	if n == 0 {
		n = 1
	}
	rows := make([]string, n)
	for i := 0; i < n; i++ {
		var ln string
		if i < len(lines) {
			ln = lines[i]
		}
		if xansi.StringWidth(ln) > cw {
			ln = xansi.Truncate(ln, cw, "…")
		}
		rows[i] = contentStyle.Render(ln)
	}
	card := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		BorderTop(false).BorderLeft(true).BorderRight(true).BorderBottom(true).
		Width(inner)
	return card.Render(strings.Join(rows, "\n"))
}

// renderTopBorderWithTitle composes the top border line with the title embedded.
func renderTopBorderWithTitle(inner int, title string, color lipgloss.Color) string {
	if inner < 1 {
		inner = 1
	}
	border := lipgloss.NewStyle().Foreground(color)
	t := strings.TrimSpace(title)
	if t == "" {
		return border.Render("╭" + strings.Repeat("─", inner) + "╮")
	}
	tStyled := AccentBold().Render(t)
	tW := xansi.StringWidth(tStyled)
	// Draw at least one dash before the title to make the header obvious.
	leftFill := 1
	maxTitleW := inner - leftFill - 2
	if maxTitleW < 0 {
		maxTitleW = 0
	}
	if tW > maxTitleW {
		tStyled = xansi.Truncate(tStyled, maxTitleW, "")
		tW = xansi.StringWidth(tStyled)
	}
	rightFill := inner - leftFill - tW - 2
	if rightFill < 1 {
		rightFill = 1
	}
	left := border.Render("╭")
	pre := border.Render(strings.Repeat("─", leftFill) + " ")
	post := border.Render(" " + strings.Repeat("─", rightFill) + "╮")
	return left + pre + tStyled + post
}

// joinCols aligns multiple card blocks horizontally with fixed gap.
func joinCols(cols []string, innerWidths []int, gap int) string {
	if len(cols) == 0 {
		return ""
	}
	split := make([][]string, len(cols))
	outerW := make([]int, len(cols))
	maxH := 0
	for i, c := range cols {
		lines := strings.Split(strings.TrimRight(c, "\n"), "\n")
		split[i] = lines
		if len(lines) > maxH {
			maxH = len(lines)
		}
		iw := 16
		if i < len(innerWidths) {
			iw = innerWidths[i]
		}
		outerW[i] = iw + 2
	}
	var b strings.Builder
	for row := 0; row < maxH; row++ {
		for i := range cols {
			var cell string
			if row < len(split[i]) {
				cell = split[i][row]
			}
			if pad := outerW[i] - xansi.StringWidth(cell); pad > 0 {
				cell += strings.Repeat(" ", pad)
			}
			b.WriteString(cell)
			if i != len(cols)-1 {
				b.WriteString(strings.Repeat(" ", gap))
			}
		}
		if row != maxH-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// versionColumns sizes the installed-versions table for an inner width.
// The status column is fixed; the version column takes the rest.
func versionColumns(inner int) []table.Column {
	statusW := runewidth.StringWidth("Installed") + 1
	verW := inner - statusW - 4
	if verW < 10 {
		verW = 10
	}
	return []table.Column{
		{Title: "Version", Width: verW},
		{Title: "Status", Width: statusW},
	}
}

// truncCell shortens a plain cell value to w display columns.
func truncCell(s string, w int) string {
	if runewidth.StringWidth(s) <= w {
		return s
	}
	return runewidth.Truncate(s, w, "…")
}
