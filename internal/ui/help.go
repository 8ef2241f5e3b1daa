package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	ansi "github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/lipgloss"
)

const helpMarkdown = `# uvctl help

## Navigation

| Key | Action |
|-----|--------|
| 1 / 2 / h | Installation, Python Versions, Help |
| tab / shift+tab | Next / previous tab |
| ctrl+p | Command palette |
| d | Toggle dark / light |
| ctrl+c | Cancel the running operation (quit when idle) |
| q | Quit |

## Python Versions tab

| Key | Action | uv command |
|-----|--------|------------|
| / | Focus the version input | |
| l | List available versions | ` + "`uv python list`" + ` |
| r | Refresh installed versions | ` + "`uv python list --only-installed`" + ` |
| i | Install the version in the input | ` + "`uv python install <version>`" + ` |
| u | Uninstall the version in the input | ` + "`uv python uninstall <version>`" + ` |
| f | Find an interpreter (version optional) | ` + "`uv python find [version]`" + ` |
| p | Pin the version for this project | ` + "`uv python pin <version>`" + ` |

While typing a version, suggestions from the last *List Available* and your
recent versions appear below the input; press **tab** to complete.

## Version formats

- ` + "`3.12`" + ` latest patch release of 3.12
- ` + "`3.12.1`" + ` an exact version
- ` + "`>=3.11,<3.13`" + ` a version range
- ` + "`pypy@3.10`" + ` or ` + "`cpython-3.12.1`" + ` a specific implementation

uv validates the version; uvctl passes it through unchanged.

## Tips

- Installing uv runs the official installer script; restart your terminal afterwards so ` + "`uv`" + ` is on PATH.
- Pinning writes ` + "`.python-version`" + ` in the current directory.
- Installs can take several minutes; the status bar shows progress and ctrl+c cancels.
- A failed refresh keeps the last known table and shows the error in the banner.
`

// vitesseGlamour returns a glamour ANSI style config adapted to the
// active Vitesse theme.
func vitesseGlamour() ansi.StyleConfig {
	// helper: take lipgloss.Color -> hex without alpha
	hex := func(c lipgloss.Color) string {
		s := string(c)
		if strings.HasPrefix(s, "#") && len(s) == 9 { // #RRGGBBAA
			return s[:7]
		}
		return s
	}
	sp := func(s string) *string { return &s }
	bp := func(b bool) *bool { return &b }
	up := func(u uint) *uint { return &u }

	text := hex(Vitesse.Text)
	secondary := hex(Vitesse.Secondary)
	primary := hex(Vitesse.Primary)
	blue := hex(Vitesse.Blue)
	yellow := hex(Vitesse.Yellow)
	bgSoft := hex(Vitesse.BgSoft)

	heading := ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Color: sp(blue), Bold: bp(true)}}
	return ansi.StyleConfig{
		Document: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Color: sp(text)},
			Margin:         up(1),
		},
		Paragraph:  ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Color: sp(text)}},
		BlockQuote: ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Color: sp(secondary), Italic: bp(true)}},
		Heading:    heading,
		H1: ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{
			Color: sp(primary), Bold: bp(true), Prefix: "✻ ",
		}},
		H2: heading,
		H3: heading,

		List: ansi.StyleList{LevelIndent: 2, StyleBlock: ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Color: sp(text)}}},
		Item: ansi.StylePrimitive{BlockPrefix: "• "},

		Text:           ansi.StylePrimitive{Color: sp(text)},
		Emph:           ansi.StylePrimitive{Italic: bp(true)},
		Strong:         ansi.StylePrimitive{Bold: bp(true), Color: sp(primary)},
		HorizontalRule: ansi.StylePrimitive{Color: sp(secondary)},
		Link:           ansi.StylePrimitive{Color: sp(blue), Underline: bp(true)},
		LinkText:       ansi.StylePrimitive{Color: sp(blue), Underline: bp(true)},

		Code: ansi.StyleBlock{ // inline code
			StylePrimitive: ansi.StylePrimitive{Color: sp(yellow), BackgroundColor: sp(bgSoft)},
		},
		CodeBlock: ansi.StyleCodeBlock{
			StyleBlock: ansi.StyleBlock{
				StylePrimitive: ansi.StylePrimitive{Color: sp(text), BackgroundColor: sp(bgSoft)},
			},
		},
		Table: ansi.StyleTable{
			StyleBlock:      ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Color: sp(text)}},
			CenterSeparator: sp("┼"),
			ColumnSeparator: sp("│"),
			RowSeparator:    sp("─"),
		},
	}
}

// renderHelp renders the help markdown for a wrap width.
func renderHelp(width int) (string, error) {
	wrap := width - 4
	if wrap < 40 {
		wrap = 40
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(vitesseGlamour()),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return "", err
	}
	return r.Render(helpMarkdown)
}

// renderHelpDoc re-renders the help tab when width or theme changed.
func (m *model) renderHelpDoc(force bool) {
	w := m.width
	if w <= 0 {
		w = 80
	}
	if !force && w == m.helpWidth && Vitesse.Name == m.helpTheme {
		return
	}
	out, err := renderHelp(w)
	if err != nil {
		m.helpErr = err.Error()
		out = helpMarkdown
	} else {
		m.helpErr = ""
	}
	m.helpWidth = w
	m.helpTheme = Vitesse.Name
	m.helpView.SetContent(strings.TrimRight(out, "\n"))
}
