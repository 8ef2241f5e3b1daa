package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteScript writes an executable /bin/sh script named name into a temp dir
// and returns its absolute path.
func WriteScript(t *testing.T, name, body string) string {
	t.Helper()
	SkipOnWindows(t)
	dir := t.TempDir()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return p
}

// FakeUV describes a scripted stand-in for the uv binary.
type FakeUV struct {
	Version   string
	Installed []string
	Available []string
}

const fakeUVScript = `state=%q
case "$1" in
  --version) echo "uv %s"; exit 0;;
  python) shift;;
  *) echo "error: unrecognized subcommand '$1'" >&2; exit 2;;
esac
sub="$1"; shift
case "$sub" in
  list)
    if [ "$1" = "--only-installed" ]; then
      while read -r v; do
        [ -n "$v" ] && echo "$v    /fake/python/$v/bin/python"
      done < "$state"
    else
      for v in %s; do echo "cpython-$v-linux-x86_64-gnu    <download available>"; done
    fi;;
  install)
    [ -z "$1" ] && { echo "error: missing version" >&2; exit 2; }
    grep -qx "$1" "$state" || echo "$1" >> "$state"
    echo "Installed Python $1";;
  uninstall)
    if grep -qx "$1" "$state"; then
      grep -vx "$1" "$state" > "$state.tmp"
      mv "$state.tmp" "$state"
      echo "Uninstalled Python $1"
    else
      echo "version not found" >&2
      exit 1
    fi;;
  find) echo "/fake/python/${1:-3.12.1}/bin/python";;
  pin) echo "Pinned .python-version to $1";;
  *) echo "error: unknown command $sub" >&2; exit 2;;
esac`

// Write materialises the fake into a temp dir and returns the binary path.
// Installed versions live in a state file next to it so install/uninstall
// calls are visible to later list calls.
func (f FakeUV) Write(t *testing.T) string {
	t.Helper()
	SkipOnWindows(t)
	dir := t.TempDir()
	state := filepath.Join(dir, "installed.txt")
	content := strings.Join(f.Installed, "\n")
	if content != "" {
		content += "\n"
	}
	if err := os.WriteFile(state, []byte(content), 0o644); err != nil {
		t.Fatalf("write state: %v", err)
	}
	ver := f.Version
	if ver == "" {
		ver = "0.4.18"
	}
	avail := f.Available
	if len(avail) == 0 {
		avail = []string{"3.13.0", "3.12.1", "3.11.5"}
	}
	body := fmt.Sprintf(fakeUVScript, state, ver, strings.Join(avail, " "))
	p := filepath.Join(dir, "uv")
	if err := os.WriteFile(p, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatalf("write fake uv: %v", err)
	}
	return p
}
