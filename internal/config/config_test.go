package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"uvctl/internal/testutil"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yaml")
	c, err := Load(p)
	if err != nil {
		t.Fatal(err)
	}
	if c.Tool != "uv" || c.Serve.Addr != "127.0.0.1:8788" || !c.UI.AltScreen || c.History.Size != 20 {
		t.Fatalf("defaults not applied: %+v", c)
	}
	if c.Path() != p {
		t.Fatalf("path = %s", c.Path())
	}
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yaml")
	body := "tool: /opt/uv/bin/uv\ntimeouts:\n  install_version: 900\nui:\n  theme: light\n"
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	defer testutil.WithEnv(t, "UVCTL_LOG_LEVEL", "debug")()
	defer testutil.WithEnv(t, "UVCTL_TIMEOUTS_CHECK", "9")()
	c, err := Load(p)
	if err != nil {
		t.Fatal(err)
	}
	if c.Tool != "/opt/uv/bin/uv" || c.Timeouts.InstallVersion != 900 || c.UI.Theme != "light" {
		t.Fatalf("file values not read: %+v", c)
	}
	if c.Log.Level != "debug" || c.Timeouts.Check != 9 {
		t.Fatalf("env overrides not applied: %+v", c)
	}
}

func TestLoadHonoursConfigEnv(t *testing.T) {
	p := filepath.Join(t.TempDir(), "alt.yaml")
	if err := os.WriteFile(p, []byte("serve:\n  addr: 0.0.0.0:9000\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	defer testutil.WithEnv(t, "UVCTL_CONFIG", p)()
	c, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if c.Serve.Addr != "0.0.0.0:9000" {
		t.Fatalf("addr = %s", c.Serve.Addr)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(p, []byte("tool: [unterminated\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(p); err == nil {
		t.Fatal("expected error")
	}
}

func TestSaveThenLoad(t *testing.T) {
	p := filepath.Join(t.TempDir(), "sub", "config.yaml")
	c := Default().WithPath(p)
	c.Tool = "uvx-custom"
	c.Timeouts.PinVersion = 42
	if err := Save(c); err != nil {
		t.Fatal(err)
	}
	got, err := Load(p)
	if err != nil {
		t.Fatal(err)
	}
	if got.Tool != "uvx-custom" || got.Timeouts.PinVersion != 42 {
		t.Fatalf("round trip lost values: %+v", got)
	}
}

func TestSchemaUsesYAMLNames(t *testing.T) {
	b, err := MarshalSchema(Schema())
	if err != nil {
		t.Fatal(err)
	}
	s := string(b)
	for _, key := range []string{`"install_version"`, `"alt_screen"`, `"script_url"`} {
		if !strings.Contains(s, key) {
			t.Errorf("schema missing %s", key)
		}
	}
}

func TestWatchReportsWrites(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(p, []byte("tool: uv\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, err := Watch(ctx, p)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte("tool: /usr/local/bin/uv\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-ch:
	case <-time.After(3 * time.Second):
		t.Fatal("no change event")
	}
}
