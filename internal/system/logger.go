package system

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	clog "github.com/charmbracelet/log"
)

// Logger is the shared application logger. It prints to stderr with
// timestamps until SetupLogger redirects it.
var Logger = clog.NewWithOptions(os.Stderr, clog.Options{
	ReportTimestamp: true,
})

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// SetupLogger configures Logger's level and sink. When file is non-empty the
// log goes there; otherwise, if logsDir is non-empty, a timestamped file is
// created inside it (used while the TUI owns the terminal). With neither,
// output stays on stderr. The returned closer releases the file.
func SetupLogger(level, file, logsDir string) (io.Closer, error) {
	lvl, err := clog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		lvl = clog.InfoLevel
	}
	Logger.SetLevel(lvl)

	path := strings.TrimSpace(file)
	if path == "" && strings.TrimSpace(logsDir) != "" {
		path = filepath.Join(logsDir, "uvctl-"+time.Now().Format("20060102-150405")+".log")
	}
	if path == "" {
		Logger.SetOutput(os.Stderr)
		Logger.SetFormatter(clog.TextFormatter)
		return nopCloser{}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nopCloser{}, fmt.Errorf("ensure logs directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nopCloser{}, fmt.Errorf("open log file: %w", err)
	}
	Logger.SetOutput(f)
	Logger.SetFormatter(clog.LogfmtFormatter)
	return f, nil
}
