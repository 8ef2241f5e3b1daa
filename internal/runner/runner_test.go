package runner

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"uvctl/internal/testutil"
)

func TestExecuteSuccessTrimsTrailingWhitespaceOnly(t *testing.T) {
	p := testutil.WriteScript(t, "ok", `printf '  uv 0.4.18\n\n  \n'`)
	r := New().Execute(context.Background(), Command{Name: p, Timeout: 5 * time.Second})
	if !r.Success {
		t.Fatalf("expected success, got %+v", r)
	}
	if r.Output != "  uv 0.4.18" {
		t.Fatalf("output = %q", r.Output)
	}
	if r.Detail != "" || r.Failure != FailureNone {
		t.Fatalf("unexpected failure fields: %+v", r)
	}
}

func TestExecuteNonZeroExitReturnsStderrVerbatim(t *testing.T) {
	p := testutil.WriteScript(t, "bad", `echo "partial" ; echo "version not found" >&2; exit 3`)
	r := New().Execute(context.Background(), Command{Name: p, Timeout: 5 * time.Second})
	if r.Success {
		t.Fatalf("expected failure")
	}
	if r.Failure != FailureExit || r.ExitCode != 3 {
		t.Fatalf("failure=%v exit=%d", r.Failure, r.ExitCode)
	}
	if r.Detail != "version not found\n" {
		t.Fatalf("detail = %q", r.Detail)
	}
	if r.DisplayDetail() != "version not found" {
		t.Fatalf("display = %q", r.DisplayDetail())
	}
}

func TestExecuteNonZeroExitEmptyStderr(t *testing.T) {
	p := testutil.WriteScript(t, "quiet", `exit 4`)
	r := New().Execute(context.Background(), Command{Name: p, Timeout: 5 * time.Second})
	if r.Success || r.Detail != "exit status 4" {
		t.Fatalf("got %+v", r)
	}
}

func TestExecuteTimeoutKillsProcessGroup(t *testing.T) {
	dir := t.TempDir()
	marker := filepath.Join(dir, "survived")
	// the background child would create the marker if it outlived the kill
	p := testutil.WriteScript(t, "slow", `(sleep 1; touch "`+marker+`") &
sleep 30`)
	start := time.Now()
	r := New(WithWaitDelay(500*time.Millisecond)).Execute(context.Background(), Command{Name: p, Timeout: 200 * time.Millisecond})
	if r.Success || r.Failure != FailureTimeout {
		t.Fatalf("expected timeout, got %+v", r)
	}
	if r.Detail != DetailTimeout {
		t.Fatalf("detail = %q", r.Detail)
	}
	if time.Since(start) > 5*time.Second {
		t.Fatalf("timeout not enforced: %v", time.Since(start))
	}
	time.Sleep(1500 * time.Millisecond)
	if _, err := os.Stat(marker); err == nil {
		t.Fatalf("child process outlived the timeout")
	}
}

func TestExecuteParentCancel(t *testing.T) {
	p := testutil.WriteScript(t, "slow", `sleep 30`)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()
	r := New().Execute(ctx, Command{Name: p, Timeout: 10 * time.Second})
	if r.Failure != FailureCanceled || r.Detail != DetailCanceled {
		t.Fatalf("got %+v", r)
	}
}

func TestExecuteAlreadyCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := New().Execute(ctx, Command{Name: "uv"})
	if r.Success || r.Failure != FailureCanceled {
		t.Fatalf("got %+v", r)
	}
}

func TestExecuteNotFound(t *testing.T) {
	cases := []string{
		"uvctl-definitely-missing-binary",
		filepath.Join(t.TempDir(), "nope"),
	}
	for _, name := range cases {
		r := New().Execute(context.Background(), Command{Name: name, Timeout: time.Second})
		if r.Success || r.Failure != FailureNotFound {
			t.Fatalf("%s: got %+v", name, r)
		}
		if r.Detail == "" {
			t.Fatalf("%s: empty detail", name)
		}
	}
}

func TestExecuteEmptyCommandIsFault(t *testing.T) {
	r := New().Execute(context.Background(), Command{})
	if r.Success || r.Failure != FailureFault || r.Detail == "" {
		t.Fatalf("got %+v", r)
	}
}

func TestExecuteSetsNoColor(t *testing.T) {
	p := testutil.WriteScript(t, "env", `echo "$NO_COLOR:$EXTRA"`)
	r := New().Execute(context.Background(), Command{Name: p, Env: []string{"EXTRA=x"}, Timeout: 5 * time.Second})
	if !r.Success || r.Output != "1:x" {
		t.Fatalf("got %+v", r)
	}
}

func TestResultNeverHalfFilled(t *testing.T) {
	ok := testutil.WriteScript(t, "ok", `true`)
	bad := testutil.WriteScript(t, "bad", `exit 1`)
	for _, c := range []Command{{Name: ok}, {Name: bad}, {Name: "missing-uvctl-bin"}} {
		r := New().Execute(context.Background(), c)
		if !r.Success && r.Detail == "" {
			t.Fatalf("%s: failure without detail", c.Name)
		}
		if r.Success && r.Detail != "" {
			t.Fatalf("%s: success with detail", c.Name)
		}
	}
}

func TestCommandString(t *testing.T) {
	c := Command{Name: "sh", Args: []string{"-c", "curl -LsSf x | sh"}}
	if got := c.String(); !strings.HasPrefix(got, "sh -c ") || !strings.Contains(got, `"curl -LsSf x | sh"`) {
		t.Fatalf("String() = %s", got)
	}
}
