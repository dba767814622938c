package config

import "fmt"

// Theme names accepted by UIConfig.Theme.
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// UIConfig holds user interface configuration.
type UIConfig struct {
	// Theme is auto, light or dark. Auto inspects the terminal.
	Theme string `yaml:"theme" json:"theme"`

	// DescriptionWidth is the word-wrap width for project descriptions.
	DescriptionWidth int `yaml:"description_width" json:"description_width"`

	// ShowHelp shows the full key help on startup instead of the short footer.
	ShowHelp bool `yaml:"show_help" json:"show_help"`
}

// DefaultUIConfig returns sensible UI defaults.
func DefaultUIConfig() *UIConfig {
	return &UIConfig{
		Theme:            ThemeAuto,
		DescriptionWidth: 80,
	}
}

// Validate checks the theme name.
func (u UIConfig) Validate() error {
	switch u.Theme {
	case "", ThemeAuto, ThemeLight, ThemeDark:
		return nil
	default:
		return fmt.Errorf("invalid ui theme %q (valid: auto, light, dark)", u.Theme)
	}
}
