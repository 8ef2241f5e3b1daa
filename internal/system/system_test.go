package system

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	clog "github.com/charmbracelet/log"
)

func TestPlatformString(t *testing.T) {
	cases := map[Platform]string{
		{OS: "linux", Arch: "amd64"}:   "Operating System: Linux (x86_64)",
		{OS: "darwin", Arch: "arm64"}:  "Operating System: Darwin (arm64)",
		{OS: "linux", Arch: "arm64"}:   "Operating System: Linux (aarch64)",
		{OS: "windows", Arch: "386"}:   "Operating System: Windows (i386)",
		{OS: "plan9", Arch: "riscv64"}: "Operating System: Plan9 (riscv64)",
	}
	for p, want := range cases {
		if got := p.String(); got != want {
			t.Errorf("%+v: got %q want %q", p, got, want)
		}
	}
}

func TestSetupLoggerToLogsDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	c, err := SetupLogger("debug", "", dir)
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = c.Close()
		Logger.SetOutput(os.Stderr)
	}()
	if Logger.GetLevel() != clog.DebugLevel {
		t.Fatalf("level = %v", Logger.GetLevel())
	}
	Logger.Debug("hello", "k", "v")
	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) != 1 {
		t.Fatalf("entries = %v err = %v", entries, err)
	}
	if !strings.HasPrefix(entries[0].Name(), "uvctl-") {
		t.Fatalf("name = %s", entries[0].Name())
	}
	b, _ := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if !strings.Contains(string(b), "hello") {
		t.Fatalf("log content = %q", string(b))
	}
}

func TestSetupLoggerBadLevelFallsBack(t *testing.T) {
	c, err := SetupLogger("loud", "", "")
	if err != nil {
		t.Fatal(err)
	}
	_ = c.Close()
	if Logger.GetLevel() != clog.InfoLevel {
		t.Fatalf("level = %v", Logger.GetLevel())
	}
}
