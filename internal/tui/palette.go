package tui

import (
	"fmt"

	"vocabcards/internal/domain"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Palette is the set of colors one theme paints with
type Palette struct {
	Background tcell.Color
	Card       tcell.Color
	Text       tcell.Color
	Muted      tcell.Color
	Accent     tcell.Color
}

var (
	darkPalette = Palette{
		Background: tcell.GetColor(domain.ThemeDark.Color()),
		Card:       tcell.NewHexColor(0x1a2340),
		Text:       tcell.ColorWhite,
		Muted:      tcell.ColorLightGray,
		Accent:     tcell.ColorGold,
	}
	lightPalette = Palette{
		Background: tcell.GetColor(domain.ThemeLight.Color()),
		Card:       tcell.ColorWhite,
		Text:       tcell.ColorBlack,
		Muted:      tcell.ColorGray,
		Accent:     tcell.ColorNavy,
	}
)

// PaletteFor returns the palette of a theme
func PaletteFor(theme domain.Theme) Palette {
	if theme == domain.ThemeLight {
		return lightPalette
	}
	return darkPalette
}

// tag formats a color for tview's inline color tags
func tag(c tcell.Color) string {
	return fmt.Sprintf("#%06x", c.Hex())
}

// apply sets the global styles new primitives pick up
func (p Palette) apply() {
	tview.Styles.PrimitiveBackgroundColor = p.Background
	tview.Styles.ContrastBackgroundColor = p.Card
	tview.Styles.MoreContrastBackgroundColor = p.Card
	tview.Styles.BorderColor = p.Accent
	tview.Styles.TitleColor = p.Accent
	tview.Styles.GraphicsColor = p.Accent
	tview.Styles.PrimaryTextColor = p.Text
	tview.Styles.SecondaryTextColor = p.Muted
	tview.Styles.TertiaryTextColor = p.Accent
	tview.Styles.InverseTextColor = p.Background
	tview.Styles.ContrastSecondaryTextColor = p.Background
}
