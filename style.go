package chip

// DefaultChipSize is the chip footprint used when none is configured.
var DefaultChipSize = Vec2{X: 40, Y: 20}

// Style defines the visual defaults of a chip widget. Individual chips may
// override colors per unit; a zero color field means "inherit".
type Style struct {
	// Widget container colors
	WidgetBgColor uint32 // row background
	WidgetFgColor uint32 // row border while a chip is focused
	FaintColor    uint32 // row border while unfocused

	// Chip colors
	ChipBgColor   uint32
	ChipTextColor uint32
}

// DefaultStyle returns the standard chip appearance.
func DefaultStyle() Style {
	return Style{
		WidgetBgColor: ColorBlack,
		WidgetFgColor: ColorCyan,
		FaintColor:    ColorDarkGray,
		ChipBgColor:   ColorBlue,
		ChipTextColor: ColorWhite,
	}
}

// DarkStyle returns a muted appearance for dark UIs.
func DarkStyle() Style {
	return Style{
		WidgetBgColor: RGBA(16, 16, 20, 255),
		WidgetFgColor: RGBA(80, 200, 220, 255),
		FaintColor:    RGBA(40, 40, 48, 255),
		ChipBgColor:   RGBA(40, 70, 120, 255),
		ChipTextColor: ColorLightGray,
	}
}
