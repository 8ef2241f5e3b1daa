package ui

import (
	"fmt"
	"strings"
	"time"

	zone "github.com/lrstanley/bubblezone"

	"uvctl/internal/catalog"
	appver "uvctl/internal/version"
)

func (m model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}
	return zone.Scan(m.render())
}

func (m model) render() string {
	b := &strings.Builder{}
	b.WriteString(renderBanner(m.width, m.bannerLines()))
	b.WriteString(renderTabs(m.width, m.activeTab))
	b.WriteString("\n\n")

	if m.paletteOpen {
		b.WriteString(renderCommandPalette(m.width, m.paletteInput.View(), m.paletteHits, m.paletteIndex))
	} else {
		switch m.activeTab {
		case tabInstall:
			b.WriteString(m.renderInstallTab())
		case tabPython:
			b.WriteString(m.renderPythonTab())
		default:
			b.WriteString(m.helpView.View())
		}
		b.WriteString("\n")
	}

	b.WriteString(" " + m.help.View(contextKeys{k: m.keys, tab: m.activeTab, input: m.ti.Focused()}) + "\n")
	b.WriteString(m.renderStatusBarLine())
	return b.String()
}

func (m model) bannerLines() []string {
	t := m.snap.Tool
	var line string
	switch {
	case !t.Checked:
		line = MutedStyle().Render(m.spin.View() + " Checking for UV...")
	case t.Installed:
		line = OkStyle().Render(t.Line())
	default:
		line = ErrStyle().Render(t.Line())
	}
	lines := []string{line}
	if m.snap.RefreshErr != "" {
		lines = append(lines, WarnStyle().Render(IconWarn()+" "+m.snap.RefreshErr))
	}
	lines = append(lines, MutedStyle().Render(fmt.Sprintf("%d Python version(s) installed · tool: %s", len(m.snap.Versions), m.rec.Catalog().Tool())))
	return lines
}

func (m model) renderInstallTab() string {
	w := m.width
	if w <= 0 {
		w = 80
	}
	busy := m.snap.Busy
	inst := m.rec.Catalog().Installer()
	lines := []string{
		AccentBold().Render("UV Installation"),
		"",
		m.platform.String(),
		"UV is a fast Python package installer and resolver.",
		MutedStyle().Render("Installer: " + inst.Describe()),
		"",
		zone.Mark("btn.installuv", Button(IconInstall()+" Install UV", !busy)) + "  " + MutedStyle().Render("(i)"),
	}
	if m.snap.Tool.Installed {
		lines = append(lines, "", OkStyle().Render("uv is already installed; reinstalling updates it in place."))
	}
	top := renderCard(w-2, "Installation", lines, 0, false)
	return top + "\n" + m.renderDetailCard(w)
}

func (m model) renderPythonTab() string {
	w := m.width
	if w <= 0 {
		w = 80
	}
	widths := calcInnerWidths(w, 2, 2)
	busy := m.snap.Busy

	tableLines := strings.Split(m.table.View(), "\n")
	if len(m.snap.Versions) == 0 {
		tableLines = append(tableLines, MutedStyle().Render("No installed versions found."))
	}
	left := renderCard(widths[0], IconPython()+" Installed", tableLines, 0, m.focus == focusTable)

	right := []string{"Version:"}
	in := zone.Mark("py.input", renderInputUI(widths[1]-2, m.ti.View(), m.ti.Focused()))
	right = append(right, strings.Split(in, "\n")...)
	right = append(right, renderSuggestions(widths[1], m.suggestions, m.suggestIndex)...)
	right = append(right, "")
	var row []string
	for i, btn := range pythonButtons {
		label := btn.label
		var rendered string
		if btn.act == actUninstall {
			rendered = DangerButton(label, !busy)
		} else {
			rendered = Button(label, !busy)
		}
		row = append(row, zone.Mark(btn.id, rendered))
		// two buttons per line keeps narrow terminals readable
		if i%2 == 1 {
			right = append(right, strings.Join(row, " "))
			row = nil
		}
	}
	if len(row) > 0 {
		right = append(right, strings.Join(row, " "))
	}
	rightCard := renderCard(widths[1], "Actions", right, 0, m.focus == focusInput)

	return joinCols([]string{left, rightCard}, widths, 2) + "\n" + m.renderDetailCard(w)
}

func (m model) renderDetailCard(w int) string {
	title := "Output"
	if m.snap.LastOp != nil {
		title = fmt.Sprintf("Output · %s", m.snap.LastOp.Kind)
	}
	return renderCard(w-2, title, strings.Split(m.detail.View(), "\n"), 0, false)
}

// renderStatusBarLine builds the status bar string (one line plus a newline).
func (m model) renderStatusBarLine() string {
	now := m.now
	if now.IsZero() {
		now = time.Now()
	}
	left := []string{"STATUS"}
	switch {
	case m.snap.Busy:
		cur := ""
		if m.snap.Current != nil {
			cur = " [" + m.snap.Current.String() + "]"
		}
		left = append(left, m.spin.View()+" "+m.snap.Status+cur)
	case m.hintText != "" && now.Before(m.hintUntil):
		left = append(left, m.hintText)
	case m.notice != "":
		left = append(left, m.notice+" · "+m.snap.Status)
	default:
		left = append(left, m.snap.Status)
	}
	right := []string{
		IconVersion() + " " + appver.AppVersion,
		IconClock() + " " + now.Format("15:04:05"),
	}
	if m.snap.LastOp != nil && !m.snap.Busy {
		mark := "✓"
		if !m.snap.LastOp.Success {
			mark = "✗"
		}
		right = append([]string{mark + " " + lastOpLabel(m.snap.LastOp.Kind)}, right...)
	}
	return renderStatusBarStyled(m.width, left, right) + "\n"
}

func lastOpLabel(k catalog.Kind) string {
	return strings.ReplaceAll(k.String(), "_", " ")
}
