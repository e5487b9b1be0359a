package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// config is read from attrview.yaml. Every setting is optional.
type config struct {
	Color  *bool       `yaml:"color"`
	Format string      `yaml:"format"`
	Indent string      `yaml:"indent"`
	Theme  themeConfig `yaml:"theme"`
}

type themeConfig struct {
	Title  string `yaml:"title"`
	Key    string `yaml:"key"`
	Tag    string `yaml:"tag"`
	String string `yaml:"string"`
	Number string `yaml:"number"`
	Bool   string `yaml:"bool"`
}

var defaultTheme = themeConfig{
	Title:  "#7D56F4",
	Key:    "#87CEEB",
	Tag:    "#666666",
	String: "#98FB98",
	Number: "#FFD700",
	Bool:   "#FF8C69",
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "attrview", "attrview.yaml")
}

// loadConfig reads path. A missing file yields the defaults.
func loadConfig(path string) (*config, error) {
	cfg := &config{Indent: "  ", Theme: defaultTheme}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	switch cfg.Format {
	case "", formatJSON, formatCBOR:
	default:
		return nil, fmt.Errorf("config %s: unknown format %q", path, cfg.Format)
	}
	cfg.Theme = cfg.Theme.withDefaults()
	return cfg, nil
}

func (t themeConfig) withDefaults() themeConfig {
	pick := func(v, def string) string {
		if v == "" {
			return def
		}
		return v
	}
	return themeConfig{
		Title:  pick(t.Title, defaultTheme.Title),
		Key:    pick(t.Key, defaultTheme.Key),
		Tag:    pick(t.Tag, defaultTheme.Tag),
		String: pick(t.String, defaultTheme.String),
		Number: pick(t.Number, defaultTheme.Number),
		Bool:   pick(t.Bool, defaultTheme.Bool),
	}
}

func (c *config) styles() styles {
	t := c.Theme
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color(t.Title)).
			Padding(0, 1),
		selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color(t.Title)),
		key:     lipgloss.NewStyle().Foreground(lipgloss.Color(t.Key)),
		tag:     lipgloss.NewStyle().Foreground(lipgloss.Color(t.Tag)),
		str:     lipgloss.NewStyle().Foreground(lipgloss.Color(t.String)),
		number:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Number)),
		boolean: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Bool)),
		help:    lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")),
		err:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
	}
}
