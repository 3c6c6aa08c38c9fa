package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Dark palette matching the web form.
var (
	darkBackground      = color.NRGBA{R: 0x0b, G: 0x0f, B: 0x14, A: 0xff}
	darkInputBackground = color.NRGBA{R: 0x16, G: 0x1b, B: 0x22, A: 0xff}
	darkSeparator       = color.NRGBA{R: 0x30, G: 0x36, B: 0x3d, A: 0xff}
)

// FurniProfitTheme wraps the default Fyne theme with a darker background
// and slightly tighter spacing.
type FurniProfitTheme struct {
	base         fyne.Theme
	variant      fyne.ThemeVariant
	followSystem bool
}

// NewFurniProfitTheme returns the theme for a preference value: "light",
// "dark" or "system". Anything else is treated as dark.
func NewFurniProfitTheme(name string) *FurniProfitTheme {
	t := &FurniProfitTheme{base: theme.DefaultTheme(), variant: theme.VariantDark}
	switch name {
	case "light":
		t.variant = theme.VariantLight
	case "system":
		t.followSystem = true
	}
	return t
}

// Color uses the dark palette for the dark variant and the default colours otherwise.
func (t *FurniProfitTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	v := t.variant
	if t.followSystem {
		v = variant
	}
	if v == theme.VariantDark {
		switch name {
		case theme.ColorNameBackground:
			return darkBackground
		case theme.ColorNameInputBackground, theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
			return darkInputBackground
		case theme.ColorNameSeparator:
			return darkSeparator
		}
	}
	return t.base.Color(name, v)
}

// Font delegates to the base theme.
func (t *FurniProfitTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Icon delegates to the base theme.
func (t *FurniProfitTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *FurniProfitTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameSubHeadingText:
		return 16
	case theme.SizeNamePadding:
		return 4
	default:
		return t.base.Size(name)
	}
}
