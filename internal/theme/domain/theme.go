package domain

import "context"

// Token values persisted in the theme slot. Any other stored value is
// treated as light.
const (
	TokenLight = "light"
	TokenDark  = "dark"
)

// Palette holds the full set of named colors for one theme mode
type Palette struct {
	Primary       string `json:"primary"`
	Secondary     string `json:"secondary"`
	Background    string `json:"background"`
	Surface       string `json:"surface"`
	Text          string `json:"text"`
	TextSecondary string `json:"textSecondary"`
	Border        string `json:"border"`
	Header        string `json:"header"`
	HeaderText    string `json:"headerText"`
	Card          string `json:"card"`
	Success       string `json:"success"`
	Error         string `json:"error"`
	Warning       string `json:"warning"`
}

// Theme pairs a palette with the status bar style it requires
type Theme struct {
	Colors    Palette `json:"colors"`
	StatusBar string  `json:"statusBar"`
}

// Light and Dark are the only two themes; there is no blending or
// per-field customization.
var (
	Light = Theme{
		Colors: Palette{
			Primary:       "#007AFF",
			Secondary:     "#5856D6",
			Background:    "#FFFFFF",
			Surface:       "#F2F2F7",
			Text:          "#000000",
			TextSecondary: "#8E8E93",
			Border:        "#C6C6C8",
			Header:        "#FFFFFF",
			HeaderText:    "#000000",
			Card:          "#FFFFFF",
			Success:       "#34C759",
			Error:         "#FF3B30",
			Warning:       "#FF9500",
		},
		StatusBar: "dark",
	}

	Dark = Theme{
		Colors: Palette{
			Primary:       "#0A84FF",
			Secondary:     "#5E5CE6",
			Background:    "#000000",
			Surface:       "#1C1C1E",
			Text:          "#FFFFFF",
			TextSecondary: "#8E8E93",
			Border:        "#38383A",
			Header:        "#1C1C1E",
			HeaderText:    "#FFFFFF",
			Card:          "#2C2C2E",
			Success:       "#30D158",
			Error:         "#FF453A",
			Warning:       "#FF9F0A",
		},
		StatusBar: "light",
	}
)

// ThemeFor returns the theme derived from the dark flag
func ThemeFor(isDark bool) Theme {
	if isDark {
		return Dark
	}
	return Light
}

// TokenFor returns the persisted token for the dark flag
func TokenFor(isDark bool) string {
	if isDark {
		return TokenDark
	}
	return TokenLight
}

// IsDarkToken maps a persisted token to the dark flag; unrecognized
// tokens default to light
func IsDarkToken(token string) bool {
	return token == TokenDark
}

// Repository defines the contract for theme persistence. Load reports an
// absent slot as an empty token with no error.
type Repository interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
}
