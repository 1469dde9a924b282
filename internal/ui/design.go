package ui

import "github.com/charmbracelet/lipgloss"

// Design centralizes the line colors.
//
// Palette is based on Vitesse Dark Soft:
// https://github.com/antfu/vscode-theme-vitesse/blob/main/themes/vitesse-dark-soft.json
type designTheme struct {
	Primary lipgloss.Color // #4d9375
	Blue    lipgloss.Color // #6394bf
	Red     lipgloss.Color // #cb7676

	Text lipgloss.AdaptiveColor
}

// Vitesse is the palette used by DefaultStyles.
var Vitesse = designTheme{
	Primary: lipgloss.Color("#4d9375"),
	Blue:    lipgloss.Color("#6394bf"),
	Red:     lipgloss.Color("#cb7676"),

	Text: lipgloss.AdaptiveColor{Light: "#393a34", Dark: "#dbd7caee"},
}
