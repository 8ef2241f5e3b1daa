package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix for environment overrides, e.g. UVCTL_TOOL=/opt/uv/bin/uv.
const EnvPrefix = "UVCTL"

// Config holds application configuration.
type Config struct {
	Tool     string         `mapstructure:"tool" yaml:"tool" json:"tool" jsonschema:"description=Executable name or path of the uv binary,default=uv"`
	Install  InstallConfig  `mapstructure:"install" yaml:"install" json:"install"`
	Timeouts TimeoutConfig  `mapstructure:"timeouts" yaml:"timeouts" json:"timeouts" jsonschema:"description=Per-operation timeouts in seconds (0 keeps the built-in default)"`
	UI       UIConfig       `mapstructure:"ui" yaml:"ui" json:"ui"`
	Log      LogConfig      `mapstructure:"log" yaml:"log" json:"log"`
	Serve    ServeConfig    `mapstructure:"serve" yaml:"serve" json:"serve"`
	History  HistoryConfig  `mapstructure:"history" yaml:"history" json:"history"`

	path string
}

// InstallConfig points at the upstream uv installer scripts.
type InstallConfig struct {
	ScriptURL     string `mapstructure:"script_url" yaml:"script_url" json:"script_url" jsonschema:"format=uri"`
	PowerShellURL string `mapstructure:"powershell_url" yaml:"powershell_url" json:"powershell_url" jsonschema:"format=uri"`
}

// TimeoutConfig overrides the built-in per-operation budgets. Values are seconds.
type TimeoutConfig struct {
	Check            int `mapstructure:"check" yaml:"check" json:"check" jsonschema:"minimum=0"`
	InstallTool      int `mapstructure:"install_tool" yaml:"install_tool" json:"install_tool" jsonschema:"minimum=0"`
	ListAvailable    int `mapstructure:"list_available" yaml:"list_available" json:"list_available" jsonschema:"minimum=0"`
	ListInstalled    int `mapstructure:"list_installed" yaml:"list_installed" json:"list_installed" jsonschema:"minimum=0"`
	InstallVersion   int `mapstructure:"install_version" yaml:"install_version" json:"install_version" jsonschema:"minimum=0"`
	UninstallVersion int `mapstructure:"uninstall_version" yaml:"uninstall_version" json:"uninstall_version" jsonschema:"minimum=0"`
	FindVersion      int `mapstructure:"find_version" yaml:"find_version" json:"find_version" jsonschema:"minimum=0"`
	PinVersion       int `mapstructure:"pin_version" yaml:"pin_version" json:"pin_version" jsonschema:"minimum=0"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	AltScreen bool   `mapstructure:"alt_screen" yaml:"alt_screen" json:"alt_screen"`
	Mouse     bool   `mapstructure:"mouse" yaml:"mouse" json:"mouse"`
	NerdFont  bool   `mapstructure:"nerdfont" yaml:"nerdfont" json:"nerdfont"`
	Theme     string `mapstructure:"theme" yaml:"theme" json:"theme" jsonschema:"enum=dark,enum=light"`
}

// LogConfig controls charmbracelet/log output.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level" json:"level" jsonschema:"enum=debug,enum=info,enum=warn,enum=error"`
	File  string `mapstructure:"file" yaml:"file,omitempty" json:"file,omitempty"`
}

// ServeConfig holds the JSON API listener.
type ServeConfig struct {
	Addr string `mapstructure:"addr" yaml:"addr" json:"addr"`
}

// HistoryConfig bounds the recent-versions store.
type HistoryConfig struct {
	Size int `mapstructure:"size" yaml:"size" json:"size" jsonschema:"minimum=0"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Tool: "uv",
		Install: InstallConfig{
			ScriptURL:     "https://astral.sh/uv/install.sh",
			PowerShellURL: "https://astral.sh/uv/install.ps1",
		},
		UI:      UIConfig{AltScreen: true, Mouse: true, NerdFont: false, Theme: "dark"},
		Log:     LogConfig{Level: "info"},
		Serve:   ServeConfig{Addr: "127.0.0.1:8788"},
		History: HistoryConfig{Size: 20},
	}
}

// Path returns the file this config was loaded from (or will be saved to).
func (c Config) Path() string { return c.path }

// WithPath returns a copy bound to path.
func (c Config) WithPath(path string) Config {
	c.path = path
	return c
}

// Load reads configuration from file and env. An empty path falls back to
// $UVCTL_CONFIG and then to DefaultFile. A missing file is not an error.
func Load(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if strings.TrimSpace(path) == "" {
		p, err := DefaultFile()
		if err != nil {
			return Config{}, err
		}
		path = p
	}

	v := viper.New()
	setDefaults(v, Default())
	v.SetConfigType("yaml")
	v.SetConfigFile(path)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.path = path
	if strings.TrimSpace(c.Tool) == "" {
		c.Tool = "uv"
	}
	return c, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("tool", d.Tool)
	v.SetDefault("install.script_url", d.Install.ScriptURL)
	v.SetDefault("install.powershell_url", d.Install.PowerShellURL)
	// zero timeouts still need registering so env overrides are picked up by Unmarshal
	for _, k := range []string{"check", "install_tool", "list_available", "list_installed", "install_version", "uninstall_version", "find_version", "pin_version"} {
		v.SetDefault("timeouts."+k, 0)
	}
	v.SetDefault("ui.alt_screen", d.UI.AltScreen)
	v.SetDefault("ui.mouse", d.UI.Mouse)
	v.SetDefault("ui.nerdfont", d.UI.NerdFont)
	v.SetDefault("ui.theme", d.UI.Theme)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("serve.addr", d.Serve.Addr)
	v.SetDefault("history.size", d.History.Size)
}

// Save writes the config as YAML to its path, creating parent dirs.
func Save(c Config) error {
	if strings.TrimSpace(c.path) == "" {
		p, err := DefaultFile()
		if err != nil {
			return err
		}
		c.path = p
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return err
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	header := []byte("# uvctl configuration\n")
	return os.WriteFile(c.path, append(header, b...), 0o644)
}
