// Package reconcile owns the dashboard state: it runs operations one at a
// time, interprets their results and re-queries uv after mutations so the
// published state always mirrors what is on disk.
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	clog "github.com/charmbracelet/log"

	"uvctl/internal/catalog"
	"uvctl/internal/runner"
)

// ErrBusy is returned when an operation is requested while another runs.
var ErrBusy = errors.New("another operation is in progress")

// WarnVersionRequired is shown when a version-sensitive action has no version.
const WarnVersionRequired = "⚠ Please enter a version number"

// Outcome is what Do reports back to the caller.
type Outcome struct {
	Operation catalog.Operation `json:"operation"`
	Result    runner.Result     `json:"result"`
	Snapshot  Snapshot          `json:"state"`
}

// Reconciler is the single actor that mutates dashboard state.
type Reconciler struct {
	exec   runner.Executor
	logger *clog.Logger

	// opMu serialises operations; held for the whole mutate+reconcile turn.
	opMu sync.Mutex

	mu      sync.RWMutex
	cat     *catalog.Catalog
	state   Snapshot
	subs    map[int]chan Snapshot
	nextSub int
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithLogger sets the logger used for operation lifecycle lines.
func WithLogger(l *clog.Logger) Option {
	return func(r *Reconciler) { r.logger = l }
}

// New builds a reconciler over exec and cat.
func New(exec runner.Executor, cat *catalog.Catalog, opts ...Option) *Reconciler {
	r := &Reconciler{
		exec:   exec,
		cat:    cat,
		logger: clog.Default(),
		subs:   map[int]chan Snapshot{},
		state:  Snapshot{Status: "Ready", UpdatedAt: time.Now()},
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// SetCatalog swaps the command catalog, e.g. after a config reload. Takes
// effect for the next operation.
func (r *Reconciler) SetCatalog(c *catalog.Catalog) {
	r.mu.Lock()
	r.cat = c
	r.mu.Unlock()
}

func (r *Reconciler) Catalog() *catalog.Catalog {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cat
}

// Snapshot returns a copy of the current state.
func (r *Reconciler) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state.clone()
}

// Subscribe returns a channel that receives state updates. Slow readers
// only see the latest snapshot. The returned func unsubscribes.
func (r *Reconciler) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 1)
	r.mu.Lock()
	id := r.nextSub
	r.nextSub++
	r.subs[id] = ch
	r.mu.Unlock()
	var once sync.Once
	return ch, func() {
		once.Do(func() {
			r.mu.Lock()
			delete(r.subs, id)
			r.mu.Unlock()
		})
	}
}

// update applies fn to the state under lock and publishes the result.
func (r *Reconciler) update(fn func(s *Snapshot)) Snapshot {
	r.mu.Lock()
	fn(&r.state)
	r.state.UpdatedAt = time.Now()
	snap := r.state.clone()
	subs := make([]chan Snapshot, 0, len(r.subs))
	for _, ch := range r.subs {
		subs = append(subs, ch)
	}
	r.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- snap:
		default:
			// drop the stale value and replace it
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
	return snap
}

// Init runs the startup presence check and, if uv is there, loads the
// installed versions. It waits for any in-flight operation.
func (r *Reconciler) Init(ctx context.Context) Snapshot {
	r.opMu.Lock()
	defer r.opMu.Unlock()
	r.checkTool(ctx)
	if r.Snapshot().Tool.Installed {
		r.refreshInstalled(ctx, false)
	}
	return r.update(func(s *Snapshot) { s.Status = "Ready - Press 'h' for help" })
}

// Do runs op to completion: it publishes a busy snapshot, executes the
// command, applies the result and reconciles after successful mutations.
// A concurrent call returns ErrBusy without touching state.
func (r *Reconciler) Do(ctx context.Context, op catalog.Operation) (Outcome, error) {
	if !r.opMu.TryLock() {
		return Outcome{Operation: op, Snapshot: r.Snapshot()}, ErrBusy
	}
	defer r.opMu.Unlock()

	if err := op.Validate(); err != nil {
		snap := r.update(func(s *Snapshot) {
			s.Detail = WarnVersionRequired
			s.Status = WarnVersionRequired
		})
		return Outcome{Operation: op, Snapshot: snap}, err
	}

	cat := r.Catalog()
	cmd, err := cat.Command(op)
	if err != nil {
		return Outcome{Operation: op, Snapshot: r.Snapshot()}, err
	}

	text := textsFor(op)
	kind := op.Kind
	r.update(func(s *Snapshot) {
		s.Busy = true
		s.Current = &kind
		s.Status = text.working
		if text.workingDetail != "" {
			s.Detail = text.workingDetail
		}
	})
	r.logger.Info("operation start", "op", op.ShortID(), "kind", op.Kind, "version", op.Version)

	res := r.exec.Execute(ctx, cmd)
	res = r.apply(ctx, op, res, text)

	snap := r.update(func(s *Snapshot) {
		s.Busy = false
		s.Current = nil
		s.LastOp = &OpSummary{
			ID: op.ID, Kind: op.Kind, Version: op.Version,
			Success: res.Success, Failure: res.Failure, Finished: time.Now(),
		}
	})
	r.logger.Info("operation done", "op", op.ShortID(), "kind", op.Kind, "ok", res.Success, "took", res.Duration.Round(time.Millisecond))
	return Outcome{Operation: op, Result: res, Snapshot: snap}, nil
}

// apply folds res into state and runs follow-up queries. It returns the
// result as seen by the caller, which differs from the raw one only for the
// presence check of a missing tool.
func (r *Reconciler) apply(ctx context.Context, op catalog.Operation, res runner.Result, text opText) runner.Result {
	switch op.Kind {
	case catalog.CheckTool:
		return r.applyCheck(res, true)
	case catalog.ListInstalled:
		r.applyInstalled(res, true)
		return res
	case catalog.ListAvailable:
		r.update(func(s *Snapshot) {
			if res.Success {
				s.Available = ParseAvailable(res.Output)
				s.Detail = "Available versions:\n" + res.Output
				s.Status = text.ok
				return
			}
			s.Detail = "✗ Error: " + res.DisplayDetail()
			s.Status = text.failed
		})
		return res
	case catalog.FindVersion:
		r.update(func(s *Snapshot) {
			if res.Success {
				s.Detail = "Found:\n" + res.Output
				s.Status = text.ok
				return
			}
			s.Detail = "✗ Error: " + res.DisplayDetail()
			s.Status = text.failed
		})
		return res
	}

	// mutations and pin
	r.update(func(s *Snapshot) {
		if res.Success {
			s.Detail = "✓ " + text.message
			s.Status = text.ok
			return
		}
		detail := res.DisplayDetail()
		if op.Kind == catalog.InstallTool && res.Failure == runner.FailureExit {
			detail = "Installation failed: " + detail
		}
		s.Detail = "✗ " + detail
		s.Status = text.failed
	})
	if !res.Success {
		r.logger.Warn("operation failed", "op", op.ShortID(), "kind", op.Kind, "failure", res.Failure, "detail", res.DisplayDetail())
		return res
	}
	if !op.Kind.Mutating() {
		return res
	}
	if op.Kind == catalog.InstallTool {
		r.checkTool(ctx)
		return res
	}
	r.refreshInstalled(ctx, false)
	return res
}

// checkTool runs the presence check as part of the current turn.
func (r *Reconciler) checkTool(ctx context.Context) {
	cmd, err := r.Catalog().Command(catalog.NewOperation(catalog.CheckTool, ""))
	if err != nil {
		return
	}
	r.applyCheck(r.exec.Execute(ctx, cmd), false)
}

// applyCheck maps the presence check onto ToolState. A missing executable
// is an expected state: it reports success with Installed=false. Any other
// failure surfaces the error separately; an explicit check marks uv absent,
// while a startup or post-install check keeps the last known ToolState.
func (r *Reconciler) applyCheck(res runner.Result, explicit bool) runner.Result {
	switch {
	case res.Success:
		r.update(func(s *Snapshot) {
			s.Tool = ToolState{Checked: true, Installed: true, Version: ParseToolVersion(res.Output), Raw: res.Output}
			s.RefreshErr = ""
			if explicit {
				s.Status = "UV " + s.Tool.Version + " detected"
			}
		})
		return res
	case res.Failure == runner.FailureNotFound:
		r.update(func(s *Snapshot) {
			s.Tool = ToolState{Checked: true}
			s.RefreshErr = ""
			if explicit {
				s.Status = "UV not found"
			}
		})
		return runner.Result{Success: true, Duration: res.Duration}
	default:
		r.update(func(s *Snapshot) {
			if explicit {
				s.Tool = ToolState{Checked: true}
			} else {
				s.Tool.Checked = true
			}
			s.RefreshErr = "uv --version: " + res.DisplayDetail()
			if explicit {
				s.Status = "UV check failed"
			}
		})
		r.logger.Warn("presence check failed", "failure", res.Failure, "detail", res.DisplayDetail())
		return res
	}
}

// refreshInstalled re-queries the installed list in the current turn.
func (r *Reconciler) refreshInstalled(ctx context.Context, explicit bool) {
	cmd, err := r.Catalog().Command(catalog.NewOperation(catalog.ListInstalled, ""))
	if err != nil {
		return
	}
	r.applyInstalled(r.exec.Execute(ctx, cmd), explicit)
}

// applyInstalled replaces the version table on success. On failure the
// table is kept and the error is surfaced in RefreshErr. Only an explicit
// refresh writes the detail and status lines.
func (r *Reconciler) applyInstalled(res runner.Result, explicit bool) {
	r.update(func(s *Snapshot) {
		if !res.Success {
			s.RefreshErr = "refresh failed: " + res.DisplayDetail()
			if explicit {
				s.Detail = "✗ Error: " + res.DisplayDetail()
				s.Status = "Failed to refresh"
			}
			return
		}
		s.Versions = ParseInstalled(res.Output)
		s.RefreshErr = ""
		if explicit {
			n := len(s.Versions)
			s.Detail = fmt.Sprintf("Found %d installed version(s)", n)
			s.Status = fmt.Sprintf("%d Python version(s) installed", n)
		}
	})
	if !res.Success {
		r.logger.Warn("installed list failed", "failure", res.Failure, "detail", res.DisplayDetail())
	}
}
