package enum

// Toggle returns the opposite theme (dark↔light).
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// IsDark reports whether the theme is dark.
func (t Theme) IsDark() bool {
	return t == ThemeDark
}

// ThemeFromStored maps a persisted value to a theme. Only the exact "dark" literal
// selects dark, anything else (including empty and unknown values) falls back to light.
func ThemeFromStored(v string) Theme {
	if v == ThemeDark.String() {
		return ThemeDark
	}
	return ThemeLight
}
