package ui

import (
	"context"
	"time"

	"uvctl/internal/catalog"
	"uvctl/internal/config"
	"uvctl/internal/reconcile"
)

// Bubble Tea messages

// snapshotMsg carries a state update published by the reconciler.
type snapshotMsg struct{ snap reconcile.Snapshot }

// initDoneMsg is returned once the startup check and refresh finish.
type initDoneMsg struct{ snap reconcile.Snapshot }

// outcomeMsg is returned when an operation requested from the UI completes.
type outcomeMsg struct {
	op     catalog.Operation
	out    reconcile.Outcome
	err    error
	seq    int
	cancel context.CancelFunc
}

// generic notifications
type noticeMsg string

// periodic tick for status bar time
type tickMsg time.Time

// config file watching
type watchStartedMsg struct{ ch <-chan struct{} }
type configChangedMsg struct{}
type configReloadedMsg struct {
	cfg config.Config
	err error
}
