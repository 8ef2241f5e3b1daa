package catalog

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"uvctl/internal/config"
)

func TestCommandLines(t *testing.T) {
	c := New("uv")
	cases := []struct {
		kind    Kind
		version string
		args    []string
		timeout time.Duration
	}{
		{CheckTool, "", []string{"--version"}, 5 * time.Second},
		{ListAvailable, "", []string{"python", "list"}, 30 * time.Second},
		{ListInstalled, "", []string{"python", "list", "--only-installed"}, 10 * time.Second},
		{InstallVersion, "3.12", []string{"python", "install", "3.12"}, 300 * time.Second},
		{UninstallVersion, "3.9.0", []string{"python", "uninstall", "3.9.0"}, 60 * time.Second},
		{FindVersion, "", []string{"python", "find"}, 10 * time.Second},
		{FindVersion, "3.11", []string{"python", "find", "3.11"}, 10 * time.Second},
		{PinVersion, "pypy@3.10", []string{"python", "pin", "pypy@3.10"}, 10 * time.Second},
	}
	for _, tc := range cases {
		cmd, err := c.Command(NewOperation(tc.kind, tc.version))
		if err != nil {
			t.Fatalf("%s: %v", tc.kind, err)
		}
		if cmd.Name != "uv" {
			t.Errorf("%s: name = %s", tc.kind, cmd.Name)
		}
		if !reflect.DeepEqual(cmd.Args, tc.args) {
			t.Errorf("%s: args = %v, want %v", tc.kind, cmd.Args, tc.args)
		}
		if cmd.Timeout != tc.timeout {
			t.Errorf("%s: timeout = %v, want %v", tc.kind, cmd.Timeout, tc.timeout)
		}
	}
}

func TestVersionRequired(t *testing.T) {
	c := New("")
	for _, k := range []Kind{InstallVersion, UninstallVersion, PinVersion} {
		_, err := c.Command(NewOperation(k, "   "))
		if !errors.Is(err, ErrVersionRequired) {
			t.Fatalf("%s: err = %v", k, err)
		}
	}
}

func TestValidateTrimsUnnormalizedVersion(t *testing.T) {
	op := Operation{Kind: InstallVersion, Version: " \t "}
	if err := op.Validate(); !errors.Is(err, ErrVersionRequired) {
		t.Fatalf("err = %v", err)
	}
	if err := (Operation{Kind: FindVersion, Version: "  "}).Validate(); err != nil {
		t.Fatalf("find takes an optional version: %v", err)
	}
}

func TestInstallerSelection(t *testing.T) {
	unix := InstallerFor("linux", "https://astral.sh/uv/install.sh", "https://astral.sh/uv/install.ps1")
	cmd := unix.Command(time.Minute)
	if cmd.Name != "sh" || len(cmd.Args) != 2 || cmd.Args[1] != "curl -LsSf https://astral.sh/uv/install.sh | sh" {
		t.Fatalf("unix installer = %+v", cmd)
	}
	win := InstallerFor("windows", "https://astral.sh/uv/install.sh", "https://astral.sh/uv/install.ps1")
	cmd = win.Command(time.Minute)
	if cmd.Name != "powershell" || cmd.Args[len(cmd.Args)-1] != "irm https://astral.sh/uv/install.ps1 | iex" {
		t.Fatalf("windows installer = %+v", cmd)
	}
	if cmd.Timeout != time.Minute {
		t.Fatalf("timeout not propagated")
	}
}

func TestFromConfigOverrides(t *testing.T) {
	cfg := config.Default()
	cfg.Tool = "/opt/uv/bin/uv"
	cfg.Timeouts.InstallVersion = 900
	cfg.Install.ScriptURL = "https://mirror.example/install.sh"
	c := FromConfig(cfg, "darwin")
	if c.Tool() != "/opt/uv/bin/uv" {
		t.Fatalf("tool = %s", c.Tool())
	}
	if got := c.Timeout(InstallVersion); got != 900*time.Second {
		t.Fatalf("install timeout = %v", got)
	}
	if got := c.Timeout(CheckTool); got != 5*time.Second {
		t.Fatalf("check timeout = %v", got)
	}
	cmd, err := c.Command(NewOperation(InstallTool, ""))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(cmd.Args[1], "mirror.example") || cmd.Timeout != 120*time.Second {
		t.Fatalf("install tool = %+v", cmd)
	}
}

func TestParseKindRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Fatalf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if k, err := ParseKind("Install-Version"); err != nil || k != InstallVersion {
		t.Fatalf("dash form: %v %v", k, err)
	}
	if _, err := ParseKind("explode"); err == nil {
		t.Fatal("expected error")
	}
}

func TestNewOperationTrimsAndIdentifies(t *testing.T) {
	a := NewOperation(InstallVersion, " 3.12 \n")
	b := NewOperation(InstallVersion, "3.12")
	if a.Version != "3.12" {
		t.Fatalf("version = %q", a.Version)
	}
	if a.ID == "" || a.ID == b.ID {
		t.Fatalf("ids not unique: %s %s", a.ID, b.ID)
	}
	if len(a.ShortID()) != 8 {
		t.Fatalf("short id = %s", a.ShortID())
	}
}
