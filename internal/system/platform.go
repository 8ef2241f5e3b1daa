package system

import (
	"runtime"
	"strings"
)

// Platform describes the running OS the way the installation screen shows it.
type Platform struct {
	OS   string
	Arch string
}

// Current returns the running platform.
func Current() Platform { return Platform{OS: runtime.GOOS, Arch: runtime.GOARCH} }

// DisplayOS maps GOOS to a human name, e.g. "darwin" -> "Darwin".
func (p Platform) DisplayOS() string {
	switch p.OS {
	case "darwin":
		return "Darwin"
	case "windows":
		return "Windows"
	case "linux":
		return "Linux"
	case "freebsd":
		return "FreeBSD"
	}
	if p.OS == "" {
		return "Unknown"
	}
	return strings.ToUpper(p.OS[:1]) + p.OS[1:]
}

// DisplayArch maps GOARCH to the machine names users recognise.
func (p Platform) DisplayArch() string {
	switch p.Arch {
	case "amd64":
		return "x86_64"
	case "arm64":
		if p.OS == "linux" {
			return "aarch64"
		}
		return "arm64"
	case "386":
		return "i386"
	}
	return p.Arch
}

// String renders "Operating System: Linux (x86_64)".
func (p Platform) String() string {
	return "Operating System: " + p.DisplayOS() + " (" + p.DisplayArch() + ")"
}
