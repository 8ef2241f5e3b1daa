package ui

import (
	"context"
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"uvctl/internal/catalog"
	"uvctl/internal/reconcile"
)

type action int

const (
	actInstallUV action = iota
	actCheck
	actListAvailable
	actRefresh
	actInstall
	actUninstall
	actFind
	actPin
	actTabInstall
	actTabPython
	actTabHelp
	actToggleTheme
	actQuit
)

// actionKinds maps operation-backed actions to catalog kinds.
var actionKinds = map[action]catalog.Kind{
	actInstallUV:     catalog.InstallTool,
	actCheck:         catalog.CheckTool,
	actListAvailable: catalog.ListAvailable,
	actRefresh:       catalog.ListInstalled,
	actInstall:       catalog.InstallVersion,
	actUninstall:     catalog.UninstallVersion,
	actFind:          catalog.FindVersion,
	actPin:           catalog.PinVersion,
}

// paletteEntry is one command palette row.
type paletteEntry struct {
	act   action
	title string
	desc  string
}

var paletteEntries = []paletteEntry{
	{actInstallUV, "Install UV", "Run the official uv installer"},
	{actCheck, "Check UV", "uv --version"},
	{actListAvailable, "List Available", "uv python list"},
	{actRefresh, "Refresh Installed", "uv python list --only-installed"},
	{actInstall, "Install Python", "uv python install <version>"},
	{actUninstall, "Uninstall Python", "uv python uninstall <version>"},
	{actFind, "Find Python", "uv python find [version]"},
	{actPin, "Pin Python", "uv python pin <version>"},
	{actTabInstall, "Go to Installation", "tab 1"},
	{actTabPython, "Go to Python Versions", "tab 2"},
	{actTabHelp, "Go to Help", "tab 3"},
	{actToggleTheme, "Toggle Dark Mode", "switch dark/light palette"},
	{actQuit, "Quit", "exit uvctl"},
}

// perform runs a for the current model.
func (m model) perform(a action) (model, tea.Cmd) {
	switch a {
	case actTabInstall:
		m.activeTab = tabInstall
		return m, nil
	case actTabPython:
		m.activeTab = tabPython
		return m, nil
	case actTabHelp:
		m.activeTab = tabHelp
		return m, nil
	case actToggleTheme:
		name := ToggleTheme()
		m.applyTheme()
		return m, noticeCmd("Theme: " + name)
	case actQuit:
		return m.quit()
	}
	kind, ok := actionKinds[a]
	if !ok {
		return m, nil
	}
	if m.snap.Busy || m.opCancel != nil {
		return m, noticeCmd(IconWarn() + " Another operation is still running")
	}
	version := ""
	if kind.NeedsVersion() || kind == catalog.FindVersion {
		version = strings.TrimSpace(m.ti.Value())
	}
	op := catalog.NewOperation(kind, version)
	switch kind {
	case catalog.InstallTool, catalog.CheckTool:
		m.activeTab = tabInstall
	default:
		m.activeTab = tabPython
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.opSeq++
	m.opCancel = cancel
	m.suggestions = nil
	return m, runOpCmd(ctx, cancel, m.opSeq, m.rec, op)
}

func (m model) quit() (model, tea.Cmd) {
	if m.opCancel != nil {
		m.opCancel()
		m.opCancel = nil
	}
	if m.stopWatch != nil {
		m.stopWatch()
	}
	if m.unsub != nil {
		m.unsub()
	}
	m.quitting = true
	return m, tea.Quit
}

// handleOutcome records history and reports errors that do not show up
// in the snapshot.
func (m model) handleOutcome(msg outcomeMsg) (model, tea.Cmd) {
	if msg.cancel != nil {
		msg.cancel()
	}
	if msg.seq == m.opSeq {
		m.opCancel = nil
	}
	switch {
	case errors.Is(msg.err, reconcile.ErrBusy):
		return m, noticeCmd(IconWarn() + " Another operation is still running")
	case errors.Is(msg.err, catalog.ErrVersionRequired):
		m.setSnapshot(msg.out.Snapshot)
		m.focusInput()
		return m, nil
	case msg.err != nil:
		return m, noticeCmd("✗ " + msg.err.Error())
	}
	m.setSnapshot(msg.out.Snapshot)
	res := msg.out.Result
	if res.Success && msg.op.Version != "" {
		var err error
		switch msg.op.Kind {
		case catalog.InstallVersion, catalog.PinVersion, catalog.FindVersion:
			err = m.hist.Add(msg.op.Version)
		case catalog.UninstallVersion:
			err = m.hist.Remove(msg.op.Version)
		}
		if err != nil {
			m.logger.Warn("history save failed", "err", err)
		}
	}
	if msg.op.Kind == catalog.ListAvailable && res.Success {
		m.refreshSuggestions()
	}
	return m, nil
}
