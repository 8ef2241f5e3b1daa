// Package catalog maps logical operations to concrete uv command lines and
// their timeout budgets.
package catalog

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"uvctl/internal/config"
	"uvctl/internal/runner"
)

// DefaultTimeouts are the per-kind budgets used when config does not override them.
var DefaultTimeouts = map[Kind]time.Duration{
	CheckTool:        5 * time.Second,
	InstallTool:      120 * time.Second,
	ListAvailable:    30 * time.Second,
	ListInstalled:    10 * time.Second,
	InstallVersion:   300 * time.Second,
	UninstallVersion: 60 * time.Second,
	FindVersion:      10 * time.Second,
	PinVersion:       10 * time.Second,
}

// Catalog is a pure lookup from Operation to runner.Command.
type Catalog struct {
	tool      string
	timeouts  map[Kind]time.Duration
	installer Installer
}

// New builds a catalog for tool using the default timeouts and the
// installer for the running platform.
func New(tool string) *Catalog {
	d := config.Default()
	return &Catalog{
		tool:      normTool(tool),
		timeouts:  copyTimeouts(nil),
		installer: InstallerFor(runtime.GOOS, d.Install.ScriptURL, d.Install.PowerShellURL),
	}
}

// FromConfig builds a catalog honouring tool path, installer URLs and timeout overrides.
func FromConfig(cfg config.Config, goos string) *Catalog {
	t := cfg.Timeouts
	over := map[Kind]int{
		CheckTool:        t.Check,
		InstallTool:      t.InstallTool,
		ListAvailable:    t.ListAvailable,
		ListInstalled:    t.ListInstalled,
		InstallVersion:   t.InstallVersion,
		UninstallVersion: t.UninstallVersion,
		FindVersion:      t.FindVersion,
		PinVersion:       t.PinVersion,
	}
	d := config.Default()
	script, ps := cfg.Install.ScriptURL, cfg.Install.PowerShellURL
	if strings.TrimSpace(script) == "" {
		script = d.Install.ScriptURL
	}
	if strings.TrimSpace(ps) == "" {
		ps = d.Install.PowerShellURL
	}
	return &Catalog{
		tool:      normTool(cfg.Tool),
		timeouts:  copyTimeouts(over),
		installer: InstallerFor(goos, script, ps),
	}
}

// WithInstaller returns a copy using inst for InstallTool.
func (c *Catalog) WithInstaller(inst Installer) *Catalog {
	cp := *c
	cp.installer = inst
	return &cp
}

func (c *Catalog) Tool() string { return c.tool }

func (c *Catalog) Installer() Installer { return c.installer }

// Timeout returns the budget for kind.
func (c *Catalog) Timeout(k Kind) time.Duration {
	if d, ok := c.timeouts[k]; ok {
		return d
	}
	return DefaultTimeouts[k]
}

// Command resolves op into an argument vector. Version-sensitive kinds
// with an empty version return ErrVersionRequired.
func (c *Catalog) Command(op Operation) (runner.Command, error) {
	if err := op.Validate(); err != nil {
		return runner.Command{}, err
	}
	to := c.Timeout(op.Kind)
	cmd := func(args ...string) runner.Command {
		return runner.Command{Name: c.tool, Args: args, Timeout: to}
	}
	switch op.Kind {
	case CheckTool:
		return cmd("--version"), nil
	case InstallTool:
		return c.installer.Command(to), nil
	case ListAvailable:
		return cmd("python", "list"), nil
	case ListInstalled:
		return cmd("python", "list", "--only-installed"), nil
	case InstallVersion:
		return cmd("python", "install", op.Version), nil
	case UninstallVersion:
		return cmd("python", "uninstall", op.Version), nil
	case FindVersion:
		if op.Version == "" {
			return cmd("python", "find"), nil
		}
		return cmd("python", "find", op.Version), nil
	case PinVersion:
		return cmd("python", "pin", op.Version), nil
	}
	return runner.Command{}, fmt.Errorf("unknown operation %s", op.Kind)
}

func copyTimeouts(over map[Kind]int) map[Kind]time.Duration {
	m := make(map[Kind]time.Duration, len(DefaultTimeouts))
	for k, v := range DefaultTimeouts {
		m[k] = v
	}
	for k, secs := range over {
		if secs > 0 {
			m[k] = time.Duration(secs) * time.Second
		}
	}
	return m
}

func normTool(tool string) string {
	tool = strings.TrimSpace(tool)
	if tool == "" {
		return "uv"
	}
	return tool
}
