package main

import (
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Swatches offered by the properties panel for both fill and border.
var palette = []string{
	"#3b82f6", "#1e40af", "#ef4444", "#f59e0b",
	"#10b981", "#8b5cf6", "#111827", "#ffffff",
}

// parseHex accepts "#rrggbb", "rrggbb" and the short "#rgb" form.
func parseHex(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 || strings.Trim(strings.ToLower(s), "0123456789abcdef") != "" {
		return colorful.Color{}, fmt.Errorf("invalid color %q: want #rrggbb", s)
	}
	c, err := colorful.Hex("#" + strings.ToLower(s))
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}

// mustHex is for the package's own color constants.
func mustHex(s string) colorful.Color {
	c, err := parseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func toColorful(c color.Color) colorful.Color {
	cf, _ := colorful.MakeColor(c)
	return cf
}

// contrastText picks black or white text for a label drawn over bg.
func contrastText(bg colorful.Color) colorful.Color {
	l, _, _ := bg.Lab()
	if l > 0.6 {
		return mustHex("#000000")
	}
	return mustHex("#ffffff")
}

func defaultStyle() Style {
	return Style{
		Fill:        mustHex(defaultFill),
		Border:      mustHex(defaultBorder),
		BorderWidth: defaultBorderWidth,
	}
}
