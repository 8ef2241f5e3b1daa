package reconcile

import (
	"regexp"
	"strings"
)

// ParseInstalled turns `uv python list --only-installed` output into table
// rows. The first whitespace-delimited token of each non-blank line is the
// version; the rest of the line is ignored.
func ParseInstalled(out string) []VersionEntry {
	var rows []VersionEntry
	for _, line := range strings.Split(out, "\n") {
		f := strings.Fields(line)
		if len(f) == 0 {
			continue
		}
		rows = append(rows, VersionEntry{Version: f[0], Status: StatusInstalled})
	}
	return rows
}

// ParseAvailable splits `uv python list` output into key and detail columns.
func ParseAvailable(out string) []AvailableEntry {
	var rows []AvailableEntry
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		key, rest, _ := strings.Cut(line, " ")
		rows = append(rows, AvailableEntry{Key: key, Detail: strings.TrimSpace(rest)})
	}
	return rows
}

var verRe = regexp.MustCompile(`(?i)\bv?(\d+\.\d+\.\d+(?:[\w\.-]+)?)\b`)

// ParseToolVersion extracts a semantic version from `uv --version` output,
// e.g. "uv 0.4.18 (Homebrew 2024-10-01)" -> "0.4.18". Falls back to the
// first line when no version-like token is present.
func ParseToolVersion(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	line := strings.Split(s, "\n")[0]
	if m := verRe.FindStringSubmatch(line); len(m) > 1 {
		return m[1]
	}
	return strings.TrimSpace(line)
}

// PythonVersion extracts the dotted version from an installed key such as
// "cpython-3.12.1-linux-x86_64-gnu". Keys that are already bare versions are
// returned unchanged.
func PythonVersion(key string) string {
	if m := pyRe.FindStringSubmatch(key); len(m) > 1 {
		return m[1]
	}
	return key
}

var pyRe = regexp.MustCompile(`(\d+\.\d+(?:\.\d+)?(?:[abrc]+\d+)?t?)`)
