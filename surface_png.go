package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// pngSurface draws onto a gg raster context, one pixel per canvas unit.
type pngSurface struct {
	dc *gg.Context
}

func newPNGSurface(width, height int) *pngSurface {
	return &pngSurface{dc: gg.NewContext(width, height)}
}

func (s *pngSurface) Clear() {
	s.dc.SetColor(mustHex(canvasBackground))
	s.dc.Clear()
}

func (s *pngSurface) FillRect(r Rect, fill color.Color) {
	r = r.Canon()
	s.dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	s.dc.SetColor(fill)
	s.dc.Fill()
}

func (s *pngSurface) StrokeRect(r Rect, stroke color.Color, width float64) {
	r = r.Canon()
	s.dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	s.dc.SetColor(stroke)
	s.dc.SetLineWidth(width)
	s.dc.Stroke()
}

// Caption writes text in the bottom-left corner.
func (s *pngSurface) Caption(text string) error {
	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %w", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    12,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	s.dc.SetFontFace(face)
	s.dc.SetColor(mustHex("#6b7280"))
	s.dc.DrawString(text, 8, float64(s.dc.Height())-8)
	return nil
}

func (s *pngSurface) Image() image.Image {
	return s.dc.Image()
}

func (s *pngSurface) Save(path string) error {
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
