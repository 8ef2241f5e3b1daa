package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	clog "github.com/charmbracelet/log"

	"uvctl/internal/config"
	"uvctl/internal/history"
	"uvctl/internal/reconcile"
	"uvctl/internal/system"
)

type tabKind int

const (
	tabInstall tabKind = iota
	tabPython
	tabHelp
)

func (t tabKind) String() string {
	switch t {
	case tabInstall:
		return "Installation"
	case tabPython:
		return "Python Versions"
	default:
		return "Help"
	}
}

type focusKind int

const (
	focusTable focusKind = iota
	focusInput
)

// Deps wires the dashboard to the core.
type Deps struct {
	Reconciler *reconcile.Reconciler
	History    *history.Store
	Config     config.Config
	Platform   system.Platform
	Logger     *clog.Logger
	// Watch enables config hot reload.
	Watch bool
	// Overrides is reapplied to every reloaded config.
	Overrides func(config.Config) config.Config
}

// Model for TUI
type model struct {
	rec      *reconcile.Reconciler
	hist     *history.Store
	cfg      config.Config
	platform system.Platform
	logger   *clog.Logger
	override func(config.Config) config.Config

	snap  reconcile.Snapshot
	subCh <-chan reconcile.Snapshot
	unsub func()

	width    int
	height   int
	quitting bool

	activeTab tabKind
	focus     focusKind

	table  table.Model
	ti     textinput.Model
	detail viewport.Model
	spin   spinner.Model
	keys   keyMap
	help   help.Model

	// version suggestions under the input
	suggestions  []string
	suggestIndex int

	// command palette
	paletteOpen  bool
	paletteInput textinput.Model
	paletteHits  []paletteEntry
	paletteIndex int

	// rendered help tab
	helpView   viewport.Model
	helpWidth  int
	helpTheme  string
	helpErr    string

	// transient status-bar hint
	notice    string
	hintText  string
	hintUntil time.Time
	now       time.Time

	opCancel  context.CancelFunc
	opSeq     int
	watch     bool
	watchCh   <-chan struct{}
	watchCtx  context.Context
	stopWatch context.CancelFunc
}

func newModel(d Deps) model {
	logger := d.Logger
	if logger == nil {
		logger = system.Logger
	}
	SetTheme(d.Config.UI.Theme)
	SetNerdFont(d.Config.UI.NerdFont)

	m := model{
		rec:      d.Reconciler,
		hist:     d.History,
		cfg:      d.Config,
		platform: d.Platform,
		logger:   logger,
		override: d.Overrides,
		keys:     defaultKeys(),
		help:     help.New(),
		watch:    d.Watch,
		now:      time.Now(),
	}
	if m.platform.OS == "" {
		m.platform = system.Current()
	}
	m.snap = d.Reconciler.Snapshot()
	m.subCh, m.unsub = d.Reconciler.Subscribe()
	m.watchCtx, m.stopWatch = context.WithCancel(context.Background())

	ti := textinput.New()
	ti.Prompt = " " + IconPython() + " "
	ti.Placeholder = "e.g. 3.12, 3.11.5, pypy@3.10"
	ti.CharLimit = 64
	ti.Blur() // start blurred; press '/' to focus
	m.ti = ti

	pi := textinput.New()
	pi.Prompt = "› "
	pi.Placeholder = "type a command"
	pi.CharLimit = 64
	m.paletteInput = pi

	t := table.New(
		table.WithColumns(versionColumns(40)),
		table.WithFocused(true),
		table.WithHeight(8),
	)
	m.table = t

	m.detail = viewport.New(40, 6)
	m.helpView = viewport.New(80, 20)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	m.spin = sp

	m.applyTheme()
	m.setSnapshot(m.snap)
	m.hintText = "Ready - Press 'h' for help · ctrl+p commands · q quit"
	m.hintUntil = time.Now().Add(6 * time.Second)
	m.activeTab = tabPython
	return m
}

// New builds the dashboard model.
func New(d Deps) tea.Model { return newModel(d) }

func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{initCmd(m.rec), waitSnapshotCmd(m.subCh), tickCmd(), m.spin.Tick}
	if m.watch {
		cmds = append(cmds, startWatchCmd(m.watchCtx, m.cfg.Path()))
	}
	return tea.Batch(cmds...)
}

// applyTheme restyles widgets after a palette change.
func (m *model) applyTheme() {
	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Vitesse.Border).
		BorderBottom(true).
		Bold(true).
		Foreground(Vitesse.Primary)
	ts.Selected = ts.Selected.
		Foreground(Vitesse.OnAccent).
		Background(Vitesse.Primary).
		Bold(false)
	ts.Cell = ts.Cell.Foreground(Vitesse.Text)
	m.table.SetStyles(ts)

	m.ti.PromptStyle = lipgloss.NewStyle().Foreground(Vitesse.Primary)
	m.ti.TextStyle = lipgloss.NewStyle().Foreground(Vitesse.Text)
	m.ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(Vitesse.Muted)
	m.paletteInput.PromptStyle = AccentBold()
	m.spin.Style = lipgloss.NewStyle().Foreground(Vitesse.Primary)

	m.help.Styles.ShortKey = lipgloss.NewStyle().Foreground(Vitesse.Primary)
	m.help.Styles.ShortDesc = lipgloss.NewStyle().Foreground(Vitesse.Secondary)
	m.help.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(Vitesse.Border)
	m.help.Styles.FullKey = m.help.Styles.ShortKey
	m.help.Styles.FullDesc = m.help.Styles.ShortDesc

	m.renderHelpDoc(true)
	m.detail.SetContent(styleDetail(m.snap.Detail))
}

// setSnapshot adopts s and refreshes dependent widgets.
func (m *model) setSnapshot(s reconcile.Snapshot) {
	m.snap = s
	rows := make([]table.Row, 0, len(s.Versions))
	for _, v := range s.Versions {
		rows = append(rows, table.Row{v.Version, v.Status.String()})
	}
	m.table.SetRows(rows)
	if c := m.table.Cursor(); c >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
	m.detail.SetContent(styleDetail(s.Detail))
	m.detail.GotoTop()
}
