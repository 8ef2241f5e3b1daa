package catalog

import (
	"fmt"
	"time"

	"uvctl/internal/runner"
)

// Installer produces the platform-specific uv bootstrap command. This is
// the only place a shell string is built.
type Installer interface {
	Command(timeout time.Duration) runner.Command
	Describe() string
}

// PipeInstaller downloads the install script and pipes it into sh.
type PipeInstaller struct {
	URL string
}

func (p PipeInstaller) Command(timeout time.Duration) runner.Command {
	return runner.Command{
		Name:    "sh",
		Args:    []string{"-c", p.Script()},
		Timeout: timeout,
	}
}

// Script is the shell pipeline run by sh -c.
func (p PipeInstaller) Script() string {
	return fmt.Sprintf("curl -LsSf %s | sh", p.URL)
}

func (p PipeInstaller) Describe() string { return p.Script() }

// PowerShellInstaller fetches the .ps1 script and evaluates it.
type PowerShellInstaller struct {
	URL string
}

func (p PowerShellInstaller) Command(timeout time.Duration) runner.Command {
	return runner.Command{
		Name:    "powershell",
		Args:    []string{"-ExecutionPolicy", "ByPass", "-Command", p.Script()},
		Timeout: timeout,
	}
}

// Script is the expression passed to -Command.
func (p PowerShellInstaller) Script() string {
	return fmt.Sprintf("irm %s | iex", p.URL)
}

func (p PowerShellInstaller) Describe() string { return "powershell " + p.Script() }

// InstallerFor selects the bootstrap strategy for goos.
func InstallerFor(goos, scriptURL, powershellURL string) Installer {
	if goos == "windows" {
		return PowerShellInstaller{URL: powershellURL}
	}
	return PipeInstaller{URL: scriptURL}
}
