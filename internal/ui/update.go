package ui

import (
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"uvctl/internal/catalog"
)

// button zones, in render order for the python tab
var pythonButtons = []struct {
	id    string
	label string
	act   action
}{
	{"btn.list", "List Available", actListAvailable},
	{"btn.refresh", "Refresh Installed", actRefresh},
	{"btn.install", "Install", actInstall},
	{"btn.uninstall", "Uninstall", actUninstall},
	{"btn.find", "Find", actFind},
	{"btn.pin", "Pin", actPin},
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case initDoneMsg:
		m.setSnapshot(msg.snap)
		return m, nil
	case snapshotMsg:
		m.setSnapshot(msg.snap)
		return m, waitSnapshotCmd(m.subCh)
	case outcomeMsg:
		return m.handleOutcome(msg)
	case tickMsg:
		m.now = time.Time(msg)
		return m, tickCmd()
	case noticeMsg:
		m.notice = string(msg)
		m.hintText = ""
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case watchStartedMsg:
		m.watchCh = msg.ch
		return m, watchSubscribeCmd(m.watchCh)
	case configChangedMsg:
		return m, tea.Batch(reloadConfigCmd(m.cfg.Path()), watchSubscribeCmd(m.watchCh))
	case configReloadedMsg:
		if msg.err != nil {
			m.logger.Warn("config reload failed", "err", msg.err)
			m.notice = "✗ Config reload failed: " + msg.err.Error()
			return m, nil
		}
		if m.override != nil {
			msg.cfg = m.override(msg.cfg)
		}
		m.cfg = msg.cfg
		m.rec.SetCatalog(catalog.FromConfig(msg.cfg, runtime.GOOS))
		SetTheme(msg.cfg.UI.Theme)
		SetNerdFont(msg.cfg.UI.NerdFont)
		m.applyTheme()
		m.logger.Info("config reloaded", "path", msg.cfg.Path(), "tool", msg.cfg.Tool)
		m.notice = "✓ Config reloaded"
		return m, nil
	}
	return m, nil
}

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		if m.activeTab == tabHelp {
			var cmd tea.Cmd
			m.helpView, cmd = m.helpView.Update(msg)
			return m, cmd
		}
		return m, nil
	}
	switch {
	case zone.Get("tab.install").InBounds(msg):
		return m.perform(actTabInstall)
	case zone.Get("tab.python").InBounds(msg):
		return m.perform(actTabPython)
	case zone.Get("tab.help").InBounds(msg):
		return m.perform(actTabHelp)
	}
	if m.activeTab == tabInstall && zone.Get("btn.installuv").InBounds(msg) {
		return m.perform(actInstallUV)
	}
	if m.activeTab == tabPython {
		if zone.Get("py.input").InBounds(msg) {
			m.focusInput()
			return m, nil
		}
		for _, b := range pythonButtons {
			if zone.Get(b.id).InBounds(msg) {
				m.blurInput()
				return m.perform(b.act)
			}
		}
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c cancels an in-flight operation first; quits when idle
	if key.Matches(msg, m.keys.Cancel) {
		if m.opCancel != nil {
			m.opCancel()
			m.opCancel = nil
			m.notice = "Operation cancelled"
			return m, nil
		}
		return m.quit()
	}
	if m.paletteOpen {
		return m.handlePaletteKey(msg)
	}
	if key.Matches(msg, m.keys.Palette) {
		m.openPalette()
		return m, nil
	}
	if m.ti.Focused() {
		return m.handleInputKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Tab1):
		return m.perform(actTabInstall)
	case key.Matches(msg, m.keys.Tab2):
		return m.perform(actTabPython)
	case key.Matches(msg, m.keys.Help):
		return m.perform(actTabHelp)
	case key.Matches(msg, m.keys.NextTab):
		m.activeTab = (m.activeTab + 1) % 3
		return m, nil
	case key.Matches(msg, m.keys.PrevTab):
		m.activeTab = (m.activeTab + 2) % 3
		return m, nil
	case key.Matches(msg, m.keys.Theme):
		return m.perform(actToggleTheme)
	}

	switch m.activeTab {
	case tabInstall:
		switch {
		case key.Matches(msg, m.keys.InstallUV):
			return m.perform(actInstallUV)
		case key.Matches(msg, m.keys.Check):
			return m.perform(actCheck)
		}
	case tabPython:
		switch {
		case key.Matches(msg, m.keys.Focus):
			m.focusInput()
			return m, nil
		case key.Matches(msg, m.keys.List):
			return m.perform(actListAvailable)
		case key.Matches(msg, m.keys.Refresh):
			return m.perform(actRefresh)
		case key.Matches(msg, m.keys.Install):
			return m.perform(actInstall)
		case key.Matches(msg, m.keys.Uninstall):
			return m.perform(actUninstall)
		case key.Matches(msg, m.keys.Find):
			return m.perform(actFind)
		case key.Matches(msg, m.keys.Pin):
			return m.perform(actPin)
		case msg.Type == tea.KeyEnter:
			// copy the selected row into the version input
			if row := m.table.SelectedRow(); len(row) > 0 {
				m.ti.SetValue(row[0])
				m.notice = "Selected " + row[0]
			}
			return m, nil
		case msg.String() == "pgup" || msg.String() == "pgdown":
			var cmd tea.Cmd
			m.detail, cmd = m.detail.Update(msg)
			return m, cmd
		}
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	case tabHelp:
		var cmd tea.Cmd
		m.helpView, cmd = m.helpView.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.blurInput()
		return m, nil
	case "tab":
		if m.completeSuggestion() {
			return m, nil
		}
		m.blurInput()
		return m, nil
	case "up":
		if n := len(m.suggestions); n > 0 {
			m.suggestIndex = (m.suggestIndex + n - 1) % n
		}
		return m, nil
	case "down":
		if n := len(m.suggestions); n > 0 {
			m.suggestIndex = (m.suggestIndex + 1) % n
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	m.refreshSuggestions()
	return m, cmd
}

func (m model) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePalette()
		return m, nil
	case "up":
		if n := len(m.paletteHits); n > 0 {
			m.paletteIndex = (m.paletteIndex + n - 1) % n
		}
		return m, nil
	case "down", "tab":
		if n := len(m.paletteHits); n > 0 {
			m.paletteIndex = (m.paletteIndex + 1) % n
		}
		return m, nil
	case "enter":
		if len(m.paletteHits) == 0 {
			return m, nil
		}
		a := m.paletteHits[m.paletteIndex].act
		m.closePalette()
		return m.perform(a)
	}
	var cmd tea.Cmd
	m.paletteInput, cmd = m.paletteInput.Update(msg)
	m.paletteHits = filterPalette(m.paletteInput.Value())
	if m.paletteIndex >= len(m.paletteHits) {
		m.paletteIndex = 0
	}
	return m, cmd
}

func (m *model) focusInput() {
	m.activeTab = tabPython
	m.focus = focusInput
	m.ti.Focus()
	m.table.Blur()
	m.refreshSuggestions()
}

func (m *model) blurInput() {
	m.focus = focusTable
	m.ti.Blur()
	m.table.Focus()
	m.suggestions = nil
	m.suggestIndex = 0
	m.ti.SetValue(strings.TrimSpace(m.ti.Value()))
}

// layout sizes widgets for the current window.
func (m *model) layout() {
	w := m.width
	if w <= 0 {
		w = 80
	}
	h := m.height
	if h <= 0 {
		h = 24
	}
	widths := calcInnerWidths(w, 2, 2)
	m.table.SetColumns(versionColumns(widths[0] - 2))
	m.table.SetWidth(widths[0] - 1)
	m.table.SetHeight(maxInt(4, h/2-8))
	m.ti.Width = maxInt(8, widths[1]-6)
	m.detail.Width = maxInt(20, w-6)
	m.detail.Height = maxInt(3, h-h/2-9)
	m.helpView.Width = w
	m.helpView.Height = maxInt(5, h-10)
	m.help.Width = w
	m.renderHelpDoc(false)
}
