package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	clog "github.com/charmbracelet/log"
)

// Command is one external invocation: an argument vector plus its budget.
type Command struct {
	Name    string
	Args    []string
	Timeout time.Duration
	Env     []string
	Dir     string
}

// String renders the command line for logs and UI hints.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, c.Name)
	for _, a := range c.Args {
		if strings.ContainsAny(a, " \t|\"'") {
			a = fmt.Sprintf("%q", a)
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}

// Executor runs commands. Implementations never panic and never return Go
// errors; every outcome is folded into Result.
type Executor interface {
	Execute(ctx context.Context, c Command) Result
}

// Exec is the os/exec backed Executor.
type Exec struct {
	logger    *clog.Logger
	waitDelay time.Duration
	baseEnv   func() []string
}

// Option configures Exec.
type Option func(*Exec)

// WithLogger routes invocation logs to l.
func WithLogger(l *clog.Logger) Option {
	return func(e *Exec) { e.logger = l }
}

// WithWaitDelay bounds how long Wait blocks on inherited pipes after the
// process is killed.
func WithWaitDelay(d time.Duration) Option {
	return func(e *Exec) { e.waitDelay = d }
}

// New returns an Exec with defaults applied.
func New(opts ...Option) *Exec {
	e := &Exec{
		logger:    clog.Default(),
		waitDelay: 2 * time.Second,
		baseEnv:   os.Environ,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Execute runs c and waits for it. A zero Timeout means no budget beyond ctx.
func (e *Exec) Execute(ctx context.Context, c Command) (res Result) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			res = Fail(FailureFault, fmt.Sprint(r))
		}
		res.Duration = time.Since(start)
		e.log(c, res)
	}()

	if ctx == nil {
		ctx = context.Background()
	}
	if strings.TrimSpace(c.Name) == "" {
		return Fail(FailureFault, "empty command")
	}
	if err := ctx.Err(); err != nil {
		return Fail(FailureCanceled, DetailCanceled)
	}

	runCtx := ctx
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, c.Name, c.Args...)
	// plain text output, no pagers or colors
	cmd.Env = append(append(e.baseEnv(), c.Env...), "NO_COLOR=1")
	cmd.Dir = c.Dir
	cmd.WaitDelay = e.waitDelay
	killGroup(cmd)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	switch {
	case err == nil:
		res = Ok(stdout.String())
		return res
	case errors.Is(runCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil:
		res = Fail(FailureTimeout, DetailTimeout)
	case ctx.Err() != nil:
		res = Fail(FailureCanceled, DetailCanceled)
	case errors.Is(err, exec.ErrNotFound):
		res = Fail(FailureNotFound, err.Error())
	default:
		var ee *exec.ExitError
		if errors.As(err, &ee) && ee.Exited() {
			detail := stderr.String()
			if detail == "" {
				detail = fmt.Sprintf("exit status %d", ee.ExitCode())
			}
			res = Fail(FailureExit, detail)
			res.ExitCode = ee.ExitCode()
			return res
		}
		if isNotExist(err) {
			res = Fail(FailureNotFound, err.Error())
		} else {
			res = Fail(FailureFault, err.Error())
		}
	}
	return res
}

func isNotExist(err error) bool {
	var pe *os.PathError
	return errors.As(err, &pe) && errors.Is(pe.Err, os.ErrNotExist)
}

func (e *Exec) log(c Command, r Result) {
	if e.logger == nil {
		return
	}
	kv := []any{"cmd", c.String(), "took", r.Duration.Round(time.Millisecond), "exit", r.ExitCode}
	if r.Success {
		e.logger.Debug("exec ok", kv...)
		return
	}
	e.logger.Debug("exec failed", append(kv, "failure", r.Failure, "detail", r.DisplayDetail())...)
}
