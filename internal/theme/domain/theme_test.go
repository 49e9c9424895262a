package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemeFor_IsPureLookup(t *testing.T) {
	assert.Equal(t, Light, ThemeFor(false))
	assert.Equal(t, Dark, ThemeFor(true))
}

func TestPalettes_AreFullySpecified(t *testing.T) {
	for name, theme := range map[string]Theme{"light": Light, "dark": Dark} {
		p := theme.Colors
		for field, value := range map[string]string{
			"primary":       p.Primary,
			"secondary":     p.Secondary,
			"background":    p.Background,
			"surface":       p.Surface,
			"text":          p.Text,
			"textSecondary": p.TextSecondary,
			"border":        p.Border,
			"header":        p.Header,
			"headerText":    p.HeaderText,
			"card":          p.Card,
			"success":       p.Success,
			"error":         p.Error,
			"warning":       p.Warning,
		} {
			assert.NotEmpty(t, value, "%s palette is missing %s", name, field)
		}
	}
}

func TestIsDarkToken(t *testing.T) {
	assert.True(t, IsDarkToken("dark"))
	assert.False(t, IsDarkToken("light"))
	assert.False(t, IsDarkToken(""))
	assert.False(t, IsDarkToken("solarized"), "unrecognized tokens default to light")
}

func TestTokenFor_RoundTripsWithIsDarkToken(t *testing.T) {
	assert.True(t, IsDarkToken(TokenFor(true)))
	assert.False(t, IsDarkToken(TokenFor(false)))
}

func TestStatusBar_OpposesBackground(t *testing.T) {
	assert.Equal(t, "dark", Light.StatusBar)
	assert.Equal(t, "light", Dark.StatusBar)
}
