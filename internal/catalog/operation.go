package catalog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind enumerates the logical operations the dashboard can request.
type Kind int

const (
	CheckTool Kind = iota
	InstallTool
	ListAvailable
	ListInstalled
	InstallVersion
	UninstallVersion
	FindVersion
	PinVersion
)

var kindNames = [...]string{
	CheckTool:        "check",
	InstallTool:      "install_tool",
	ListAvailable:    "list_available",
	ListInstalled:    "list_installed",
	InstallVersion:   "install_version",
	UninstallVersion: "uninstall_version",
	FindVersion:      "find_version",
	PinVersion:       "pin_version",
}

// Kinds lists every kind in declaration order.
func Kinds() []Kind {
	return []Kind{CheckTool, InstallTool, ListAvailable, ListInstalled, InstallVersion, UninstallVersion, FindVersion, PinVersion}
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// MarshalText renders the kind by name.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// ParseKind maps a name (as produced by String) back to a Kind.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "_")
	for i, n := range kindNames {
		if n == s {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown operation %q", s)
}

// NeedsVersion reports whether the kind requires a non-empty version.
func (k Kind) NeedsVersion() bool {
	switch k {
	case InstallVersion, UninstallVersion, PinVersion:
		return true
	}
	return false
}

// Mutating reports whether a successful run changes on-disk state the
// dashboard mirrors.
func (k Kind) Mutating() bool {
	switch k {
	case InstallTool, InstallVersion, UninstallVersion:
		return true
	}
	return false
}

// ErrVersionRequired is returned for version-sensitive operations given an empty version.
var ErrVersionRequired = errors.New("version required")

// Operation is one user request. Values are immutable once built.
type Operation struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Version   string    `json:"version,omitempty"`
	Requested time.Time `json:"requested"`
}

// NewOperation builds an operation with a fresh ID. The version is trimmed;
// no format validation is done since uv is authoritative on that.
func NewOperation(kind Kind, version string) Operation {
	return Operation{
		ID:        uuid.NewString(),
		Kind:      kind,
		Version:   strings.TrimSpace(version),
		Requested: time.Now(),
	}
}

// Validate checks the version requirement for the operation's kind.
func (o Operation) Validate() error {
	if o.Kind.NeedsVersion() && strings.TrimSpace(o.Version) == "" {
		return fmt.Errorf("%s: %w", o.Kind, ErrVersionRequired)
	}
	return nil
}

// ShortID is the first block of the uuid, for log lines and status hints.
func (o Operation) ShortID() string {
	if i := strings.IndexByte(o.ID, '-'); i > 0 {
		return o.ID[:i]
	}
	return o.ID
}
