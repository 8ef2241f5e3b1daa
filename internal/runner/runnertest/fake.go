// Package runnertest provides a scripted runner.Executor for tests.
package runnertest

import (
	"context"
	"strings"
	"sync"

	"uvctl/internal/runner"
)

// Fake answers commands from a script keyed by the space-joined argument
// list. Unscripted commands fail with FailureFault. When Gate is set,
// Execute signals Entered (if set) and blocks until Gate is closed or the
// context ends.
type Fake struct {
	Gate    chan struct{}
	Entered chan struct{}

	mu      sync.Mutex
	replies map[string][]runner.Result
	calls   []string
}

// New returns an empty Fake.
func New() *Fake {
	return &Fake{replies: map[string][]runner.Result{}}
}

// On queues replies for args. The last reply repeats once the queue drains.
func (f *Fake) On(args string, rs ...runner.Result) *Fake {
	f.mu.Lock()
	f.replies[args] = append(f.replies[args], rs...)
	f.mu.Unlock()
	return f
}

func (f *Fake) Execute(ctx context.Context, c runner.Command) runner.Result {
	key := strings.Join(c.Args, " ")
	f.mu.Lock()
	f.calls = append(f.calls, key)
	q := f.replies[key]
	var r runner.Result
	if len(q) == 0 {
		r = runner.Fail(runner.FailureFault, "unscripted: "+key)
	} else {
		r = q[0]
		if len(q) > 1 {
			f.replies[key] = q[1:]
		}
	}
	gate, entered := f.Gate, f.Entered
	f.mu.Unlock()
	if entered != nil {
		entered <- struct{}{}
	}
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return runner.Fail(runner.FailureCanceled, runner.DetailCanceled)
		}
	}
	return r
}

// Calls returns the argument lists seen so far.
func (f *Fake) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// Exit builds a non-zero exit result carrying stderr.
func Exit(stderr string, code int) runner.Result {
	r := runner.Fail(runner.FailureExit, stderr)
	r.ExitCode = code
	return r
}
