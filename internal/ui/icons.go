package ui

import (
	"os"
	"sync/atomic"
)

var nerdFont atomic.Bool

// SetNerdFont enables Nerd Font glyphs. NERDFONT=1/0 in the environment
// overrides the config value.
func SetNerdFont(on bool) {
	switch os.Getenv("NERDFONT") {
	case "1":
		on = true
	case "0":
		on = false
	}
	nerdFont.Store(on)
}

func nf(icon, fallback string) string {
	if nerdFont.Load() {
		return icon
	}
	return fallback
}

func IconPython() string   { return nf("\ue73c", "py") } // nf-dev-python
func IconTool() string     { return nf("\uf1b2", "uv") } // fa-cube
func IconInstall() string  { return nf("\uf019", "+") } // fa-download
func IconRemove() string   { return nf("\uf1f8", "-") } // fa-trash
func IconRefresh() string  { return nf("\uf021", "↻") } // fa-refresh
func IconList() string     { return nf("\uf03a", "≡") } // fa-list
func IconSearch() string   { return nf("\uf002", "?") } // fa-search
func IconPin() string      { return nf("\uf08d", "*") } // fa-thumb-tack
func IconClock() string    { return nf("\uf017", "") } // fa-clock
func IconVersion() string  { return nf("\uf02b", "v") } // fa-tag
func IconWarn() string     { return nf("\uf071", "!") } // fa-warning
func IconTerminal() string { return nf("\uf120", ">") } // fa-terminal
