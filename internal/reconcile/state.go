package reconcile

import (
	"time"

	"uvctl/internal/catalog"
	"uvctl/internal/runner"
)

// VersionStatus is the synthesized status of a listed Python version.
type VersionStatus int

const (
	StatusInstalled VersionStatus = iota
)

func (s VersionStatus) String() string {
	switch s {
	case StatusInstalled:
		return "Installed"
	default:
		return "Unknown"
	}
}

func (s VersionStatus) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// ToolState describes whether uv is present. Checked is false until the
// first presence check completes.
type ToolState struct {
	Checked   bool   `json:"checked"`
	Installed bool   `json:"installed"`
	Version   string `json:"version,omitempty"`
	Raw       string `json:"raw,omitempty"`
}

// Line renders the banner line for the tool.
func (t ToolState) Line() string {
	switch {
	case !t.Checked:
		return "… Checking for UV"
	case t.Installed:
		return "✓ UV Installed: " + t.Raw
	default:
		return "✗ UV not found - Please install UV to continue"
	}
}

// VersionEntry is one row of the installed-versions table.
type VersionEntry struct {
	Version string        `json:"version"`
	Status  VersionStatus `json:"status"`
}

// AvailableEntry is one row of `uv python list`.
type AvailableEntry struct {
	Key    string `json:"key"`
	Detail string `json:"detail,omitempty"`
}

// OpSummary records how the last operation ended.
type OpSummary struct {
	ID       string         `json:"id"`
	Kind     catalog.Kind   `json:"kind"`
	Version  string         `json:"version,omitempty"`
	Success  bool           `json:"success"`
	Failure  runner.Failure `json:"failure"`
	Finished time.Time      `json:"finished"`
}

// Snapshot is the state published to the presentation layer.
type Snapshot struct {
	Tool       ToolState        `json:"tool"`
	Versions   []VersionEntry   `json:"versions"`
	Available  []AvailableEntry `json:"available"`
	Busy       bool             `json:"busy"`
	Current    *catalog.Kind    `json:"current,omitempty"`
	Status     string           `json:"status"`
	Detail     string           `json:"detail"`
	RefreshErr string           `json:"refresh_error,omitempty"`
	LastOp     *OpSummary       `json:"last_op,omitempty"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

func (s Snapshot) clone() Snapshot {
	out := s
	out.Versions = append([]VersionEntry(nil), s.Versions...)
	out.Available = append([]AvailableEntry(nil), s.Available...)
	if s.Current != nil {
		k := *s.Current
		out.Current = &k
	}
	if s.LastOp != nil {
		op := *s.LastOp
		out.LastOp = &op
	}
	return out
}

// HasVersion reports whether v is in the installed table.
func (s Snapshot) HasVersion(v string) bool {
	for _, e := range s.Versions {
		if e.Version == v {
			return true
		}
	}
	return false
}

// VersionNames returns the installed version identifiers in table order.
func (s Snapshot) VersionNames() []string {
	out := make([]string, 0, len(s.Versions))
	for _, e := range s.Versions {
		out = append(out, e.Version)
	}
	return out
}
