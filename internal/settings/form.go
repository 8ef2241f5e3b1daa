package settings

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"uvctl/internal/config"
)

// values mirrors the editable config fields as form-friendly strings.
type values struct {
	tool           string
	theme          string
	logLevel       string
	altScreen      bool
	mouse          bool
	nerdFont       bool
	installTimeout string
	listTimeout    string
}

func fromConfig(c config.Config) values {
	return values{
		tool:           c.Tool,
		theme:          c.UI.Theme,
		logLevel:       c.Log.Level,
		altScreen:      c.UI.AltScreen,
		mouse:          c.UI.Mouse,
		nerdFont:       c.UI.NerdFont,
		installTimeout: strconv.Itoa(c.Timeouts.InstallVersion),
		listTimeout:    strconv.Itoa(c.Timeouts.ListAvailable),
	}
}

// apply copies the form values back onto c. Timeouts were validated by
// the form, so parse errors fall back to 0 (built-in default).
func (v values) apply(c config.Config) config.Config {
	if t := strings.TrimSpace(v.tool); t != "" {
		c.Tool = t
	}
	c.UI.Theme = v.theme
	c.Log.Level = v.logLevel
	c.UI.AltScreen = v.altScreen
	c.UI.Mouse = v.mouse
	c.UI.NerdFont = v.nerdFont
	c.Timeouts.InstallVersion, _ = strconv.Atoi(strings.TrimSpace(v.installTimeout))
	c.Timeouts.ListAvailable, _ = strconv.Atoi(strings.TrimSpace(v.listTimeout))
	return c
}

func validSeconds(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return fmt.Errorf("enter a whole number of seconds (0 = default)")
	}
	return nil
}

func theme() *huh.Theme {
	green := lipgloss.Color("#4d9375")
	t := huh.ThemeCharm()
	t.FieldSeparator = lipgloss.NewStyle()
	t.Blurred.Title = t.Blurred.Title.Width(18).Foreground(lipgloss.Color("7"))
	t.Focused.Title = t.Focused.Title.Width(18).Foreground(green).Bold(true)
	t.Blurred.SelectedOption = t.Blurred.SelectedOption.Foreground(lipgloss.Color("243"))
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(green)
	t.Focused.Base.BorderForeground(green)
	return t
}

// Run opens an interactive form over cfg and saves the result to the
// config file on submit. It returns the saved config.
func Run(cfg config.Config) (config.Config, error) {
	v := fromConfig(cfg)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("Settings").Description("Saved to " + cfg.Path()),
			huh.NewInput().Title("uv executable").Value(&v.tool),
			huh.NewSelect[string]().Title("Theme").
				Options(huh.NewOption("dark", "dark"), huh.NewOption("light", "light")).
				Value(&v.theme),
			huh.NewSelect[string]().Title("Log level").
				Options(huh.NewOptions("debug", "info", "warn", "error")...).
				Value(&v.logLevel),
		),
		huh.NewGroup(
			huh.NewConfirm().Title("Alt screen").Value(&v.altScreen),
			huh.NewConfirm().Title("Mouse").Value(&v.mouse),
			huh.NewConfirm().Title("Nerd Font icons").Value(&v.nerdFont),
		),
		huh.NewGroup(
			huh.NewInput().Title("Install timeout").Description("seconds, 0 = default").
				Value(&v.installTimeout).Validate(validSeconds),
			huh.NewInput().Title("List timeout").Description("seconds, 0 = default").
				Value(&v.listTimeout).Validate(validSeconds),
		),
	).WithTheme(theme()).WithWidth(60)

	if err := form.Run(); err != nil {
		return cfg, err // form canceled or failed
	}

	out := v.apply(cfg)
	if err := config.Save(out); err != nil {
		return cfg, err
	}
	return out, nil
}
