package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"uvctl/internal/catalog"
	"uvctl/internal/history"
	"uvctl/internal/reconcile"
	"uvctl/internal/runner"
	"uvctl/internal/runner/runnertest"
)

func init() { gin.SetMode(gin.TestMode) }

func newTestServer(t *testing.T, f *runnertest.Fake) (*Server, *history.Store) {
	t.Helper()
	quiet := clog.New(io.Discard)
	hist, err := history.Open(filepath.Join(t.TempDir(), "history.json"), 5)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	rec := reconcile.New(f, catalog.New("uv"), reconcile.WithLogger(quiet))
	return &Server{Reconciler: rec, History: hist, Logger: quiet}, hist
}

func do(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	var m map[string]any
	_ = json.Unmarshal(rr.Body.Bytes(), &m)
	return rr, m
}

func TestHealthAndVersion(t *testing.T) {
	s, _ := newTestServer(t, runnertest.New())
	h := s.Handler()
	rr, m := do(t, h, http.MethodGet, "/api/health", "")
	if rr.Code != http.StatusOK || m["status"] != "ok" {
		t.Fatalf("health: %d %v", rr.Code, m)
	}
	rr, m = do(t, h, http.MethodGet, "/api/version", "")
	if rr.Code != http.StatusOK || m["version"] == "" {
		t.Fatalf("version: %d %v", rr.Code, m)
	}
	rr, _ = do(t, h, http.MethodGet, "/nope", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("unknown route: %d", rr.Code)
	}
}

func TestInstallReconcilesAndRemembers(t *testing.T) {
	f := runnertest.New().
		On("python install 3.12", runner.Ok("Installed")).
		On("python list --only-installed", runner.Ok("3.12.4    /py/3.12.4"))
	s, hist := newTestServer(t, f)
	rr, m := do(t, s.Handler(), http.MethodPost, "/api/python/install", `{"version":" 3.12 "}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("code = %d body=%s", rr.Code, rr.Body.String())
	}
	state := m["state"].(map[string]any)
	if state["detail"] != "✓ Python 3.12 installed successfully" {
		t.Fatalf("detail = %v", state["detail"])
	}
	vs := state["versions"].([]any)
	if len(vs) != 1 || vs[0].(map[string]any)["version"] != "3.12.4" {
		t.Fatalf("versions = %v", vs)
	}
	if got := hist.Items(); len(got) != 1 || got[0] != "3.12" {
		t.Fatalf("history = %v", got)
	}

	rr2 := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr2, httptest.NewRequest(http.MethodGet, "/api/history", nil))
	if strings.TrimSpace(rr2.Body.String()) != `["3.12"]` {
		t.Fatalf("history body = %s", rr2.Body.String())
	}

	rr, m = do(t, s.Handler(), http.MethodGet, "/api/state", "")
	if rr.Code != http.StatusOK || m["busy"] != false {
		t.Fatalf("state: %d %v", rr.Code, m)
	}
}

func TestMissingVersionIsBadRequest(t *testing.T) {
	f := runnertest.New()
	s, _ := newTestServer(t, f)
	for _, body := range []string{"", `{"version":"   "}`} {
		rr, m := do(t, s.Handler(), http.MethodPost, "/api/python/uninstall", body)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("body %q: code = %d", body, rr.Code)
		}
		if m["error"] != catalog.ErrVersionRequired.Error() {
			t.Fatalf("error = %v", m["error"])
		}
	}
	if calls := f.Calls(); len(calls) != 0 {
		t.Fatalf("no process expected, got %v", calls)
	}
}

func TestMalformedBody(t *testing.T) {
	s, _ := newTestServer(t, runnertest.New())
	rr, _ := do(t, s.Handler(), http.MethodPost, "/api/python/pin", `{"version":`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("code = %d", rr.Code)
	}
}

func TestProcessFailureIsBadGateway(t *testing.T) {
	f := runnertest.New().On("python uninstall 3.9", runnertest.Exit("version not found\n", 1))
	s, hist := newTestServer(t, f)
	rr, m := do(t, s.Handler(), http.MethodPost, "/api/python/uninstall", `{"version":"3.9"}`)
	if rr.Code != http.StatusBadGateway {
		t.Fatalf("code = %d", rr.Code)
	}
	res := m["result"].(map[string]any)
	if res["success"] != false || res["failure"] != "exit" {
		t.Fatalf("result = %v", res)
	}
	if d := m["state"].(map[string]any)["detail"]; d != "✗ version not found" {
		t.Fatalf("detail = %v", d)
	}
	if len(hist.Items()) != 0 {
		t.Fatalf("failed ops must not be remembered")
	}
}

func TestFindWithoutVersion(t *testing.T) {
	f := runnertest.New().On("python find", runner.Ok("/usr/bin/python3.12"))
	s, hist := newTestServer(t, f)
	rr, m := do(t, s.Handler(), http.MethodPost, "/api/python/find", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("code = %d", rr.Code)
	}
	if d := m["state"].(map[string]any)["detail"]; d != "Found:\n/usr/bin/python3.12" {
		t.Fatalf("detail = %v", d)
	}
	if len(hist.Items()) != 0 {
		t.Fatalf("empty find must not be remembered: %v", hist.Items())
	}
}

func TestToolCheckMissingIsOK(t *testing.T) {
	f := runnertest.New().On("--version", runner.Fail(runner.FailureNotFound, "not found"))
	s, _ := newTestServer(t, f)
	rr, m := do(t, s.Handler(), http.MethodPost, "/api/tool/check", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("code = %d", rr.Code)
	}
	tool := m["state"].(map[string]any)["tool"].(map[string]any)
	if tool["installed"] != false || tool["checked"] != true {
		t.Fatalf("tool = %v", tool)
	}
}

func TestBusyIsConflict(t *testing.T) {
	f := runnertest.New().On("python list", runner.Ok("cpython-3.13.0-linux    <download available>"))
	f.Gate = make(chan struct{})
	f.Entered = make(chan struct{}, 1)
	s, _ := newTestServer(t, f)
	h := s.Handler()

	done := make(chan int, 1)
	go func() {
		rr, _ := do(t, h, http.MethodGet, "/api/python/available", "")
		done <- rr.Code
	}()
	select {
	case <-f.Entered:
	case <-time.After(2 * time.Second):
		t.Fatal("first request never reached the executor")
	}

	rr, m := do(t, h, http.MethodPost, "/api/python/refresh", "")
	if rr.Code != http.StatusConflict {
		t.Fatalf("code = %d", rr.Code)
	}
	if m["error"] != reconcile.ErrBusy.Error() {
		t.Fatalf("error = %v", m["error"])
	}
	close(f.Gate)
	if code := <-done; code != http.StatusOK {
		t.Fatalf("first request = %d", code)
	}
}

func TestClientDisconnectCancels(t *testing.T) {
	f := runnertest.New().On("python install 3.13", runner.Ok(""))
	f.Gate = make(chan struct{})
	f.Entered = make(chan struct{}, 1)
	s, _ := newTestServer(t, f)

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodPost, "/api/python/install", strings.NewReader(`{"version":"3.13"}`)).WithContext(ctx)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	done := make(chan struct{})
	go func() {
		s.Handler().ServeHTTP(rr, req)
		close(done)
	}()
	<-f.Entered
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("handler did not return after cancel")
	}
	if rr.Code != http.StatusBadGateway {
		t.Fatalf("code = %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"failure":"canceled"`) {
		t.Fatalf("body = %s", rr.Body.String())
	}
}

func TestUninstallForgetsHistory(t *testing.T) {
	f := runnertest.New().
		On("python uninstall 3.11", runner.Ok("")).
		On("python list --only-installed", runner.Ok(""))
	s, hist := newTestServer(t, f)
	if err := hist.Add("3.11"); err != nil {
		t.Fatal(err)
	}
	rr, m := do(t, s.Handler(), http.MethodPost, "/api/python/uninstall", `{"version":"3.11"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("code = %d", rr.Code)
	}
	if vs, ok := m["state"].(map[string]any)["versions"].([]any); ok && len(vs) != 0 {
		t.Fatalf("versions = %v", vs)
	}
	if len(hist.Items()) != 0 {
		t.Fatalf("history = %v", hist.Items())
	}
}

func TestBrowserCommand(t *testing.T) {
	cases := map[string]string{
		"darwin":  "open http://127.0.0.1:8787",
		"windows": "rundll32 url.dll,FileProtocolHandler http://127.0.0.1:8787",
		"linux":   "xdg-open http://127.0.0.1:8787",
		"freebsd": "xdg-open http://127.0.0.1:8787",
	}
	for goos, want := range cases {
		name, args := browserCommand(goos, "http://127.0.0.1:8787")
		if got := name + " " + strings.Join(args, " "); got != want {
			t.Errorf("%s: got %q, want %q", goos, got, want)
		}
	}
}
