package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTheme_Toggle(t *testing.T) {
	tests := []struct {
		current  Theme
		expected Theme
	}{
		{ThemeLight, ThemeDark},
		{ThemeDark, ThemeLight},
	}

	for _, tc := range tests {
		t.Run(tc.current.String()+"->"+tc.expected.String(), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.current.Toggle())
		})
	}
}

func TestTheme_IsDark(t *testing.T) {
	assert.True(t, ThemeDark.IsDark())
	assert.False(t, ThemeLight.IsDark())
}

func TestThemeFromStored(t *testing.T) {
	tests := []struct {
		name     string
		stored   string
		expected Theme
	}{
		{name: "dark", stored: "dark", expected: ThemeDark},
		{name: "light", stored: "light", expected: ThemeLight},
		{name: "empty", stored: "", expected: ThemeLight},
		{name: "upper case is not dark", stored: "DARK", expected: ThemeLight},
		{name: "padded is not dark", stored: " dark", expected: ThemeLight},
		{name: "unknown value", stored: "solarized", expected: ThemeLight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ThemeFromStored(tc.stored))
		})
	}
}

func TestParseTheme(t *testing.T) {
	th, err := ParseTheme("Dark")
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, th)

	_, err = ParseTheme("blue")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid theme")

	assert.Equal(t, []string{"light", "dark"}, ThemeNames)
	assert.Panics(t, func() { MustTheme("nope") })
}

func TestTheme_MarshalText(t *testing.T) {
	b, err := ThemeDark.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "dark", string(b))

	var th Theme
	require.NoError(t, th.UnmarshalText([]byte("light")))
	assert.Equal(t, ThemeLight, th)
}
