package app

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	clog "github.com/charmbracelet/log"

	"uvctl/internal/config"
	"uvctl/internal/testutil"
)

func TestNewCoreWiresFromConfig(t *testing.T) {
	home := t.TempDir()
	defer testutil.WithEnv(t, "HOME", home)()
	defer testutil.WithEnv(t, "XDG_CONFIG_HOME", filepath.Join(home, ".config"))()

	cfg := config.Default()
	cfg.Tool = "/opt/uv/bin/uv"
	cfg.Timeouts.InstallVersion = 42

	core := NewCore(cfg, clog.New(io.Discard))
	if core.Catalog.Tool() != "/opt/uv/bin/uv" {
		t.Fatalf("tool = %q", core.Catalog.Tool())
	}
	if core.Reconciler.Catalog() != core.Catalog {
		t.Fatal("reconciler should use the wired catalog")
	}
	if core.History == nil {
		t.Fatal("history store missing")
	}
	if err := core.History.Add("3.12"); err != nil {
		t.Fatalf("history add: %v", err)
	}
	p, _ := config.HistoryFile()
	if _, err := os.Stat(p); err != nil {
		t.Fatalf("history file not written: %v", err)
	}
}

func TestNewCoreToleratesCorruptHistory(t *testing.T) {
	home := t.TempDir()
	defer testutil.WithEnv(t, "HOME", home)()
	defer testutil.WithEnv(t, "XDG_CONFIG_HOME", filepath.Join(home, ".config"))()

	p, _ := config.HistoryFile()
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	core := NewCore(config.Default(), clog.New(io.Discard))
	if core.History == nil || len(core.History.Items()) != 0 {
		t.Fatalf("expected an empty store, got %v", core.History.Items())
	}
}
