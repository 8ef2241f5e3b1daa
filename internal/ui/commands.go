package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"uvctl/internal/catalog"
	"uvctl/internal/config"
	"uvctl/internal/reconcile"
)

// Commands

func initCmd(rec *reconcile.Reconciler) tea.Cmd {
	return func() tea.Msg {
		return initDoneMsg{snap: rec.Init(context.Background())}
	}
}

// runOpCmd executes op on the reconciler off the UI goroutine. The outcome
// carries the op's own cancel func and sequence number.
func runOpCmd(ctx context.Context, cancel context.CancelFunc, seq int, rec *reconcile.Reconciler, op catalog.Operation) tea.Cmd {
	return func() tea.Msg {
		out, err := rec.Do(ctx, op)
		return outcomeMsg{op: op, out: out, err: err, seq: seq, cancel: cancel}
	}
}

// waitSnapshotCmd blocks for the next published snapshot. Update re-issues
// it after every delivery.
func waitSnapshotCmd(ch <-chan reconcile.Snapshot) tea.Cmd {
	return func() tea.Msg {
		if ch == nil {
			return nil
		}
		s, ok := <-ch
		if !ok {
			return nil
		}
		return snapshotMsg{snap: s}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func startWatchCmd(ctx context.Context, path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return nil
		}
		ch, err := config.Watch(ctx, path)
		if err != nil {
			// directory may not exist yet; hot reload is best-effort
			return nil
		}
		return watchStartedMsg{ch: ch}
	}
}

func watchSubscribeCmd(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if ch == nil {
			return nil
		}
		if _, ok := <-ch; !ok {
			return nil
		}
		return configChangedMsg{}
	}
}

func reloadConfigCmd(path string) tea.Cmd {
	return func() tea.Msg {
		cfg, err := config.Load(path)
		return configReloadedMsg{cfg: cfg, err: err}
	}
}

func noticeCmd(s string) tea.Cmd {
	return func() tea.Msg { return noticeMsg(s) }
}
