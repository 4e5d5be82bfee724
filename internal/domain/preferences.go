package domain

// Theme is the UI color scheme
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// ParseTheme maps a stored value to a theme, defaulting to dark
func ParseTheme(s string) Theme {
	if Theme(s) == ThemeLight {
		return ThemeLight
	}
	return ThemeDark
}

// Toggle returns the opposite theme
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Icon returns the toggle glyph for the theme
func (t Theme) Icon() string {
	if t == ThemeLight {
		return "☀️"
	}
	return "🌙"
}

// Color returns the page background color used as theme-color
func (t Theme) Color() string {
	if t == ThemeLight {
		return "#f5f7fb"
	}
	return "#0b1020"
}

// Preferences are the two values remembered between runs
type Preferences struct {
	PreferredSetID string
	Theme          Theme
}

// DefaultPreferences returns preferences for a user that never chose anything
func DefaultPreferences() Preferences {
	return Preferences{Theme: ThemeDark}
}
