package main

import (
	"fmt"
	"image/color"

	"github.com/jung-kurt/gofpdf"
)

// pdfSurface draws vector rectangles on a single page sized to the canvas,
// one point per canvas unit.
type pdfSurface struct {
	pdf           *gofpdf.Fpdf
	width, height float64
}

func newPDFSurface(width, height int) *pdfSurface {
	w, h := float64(width), float64(height)
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: w, Ht: h},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()
	return &pdfSurface{pdf: p, width: w, height: h}
}

func rgb255(c color.Color) (int, int, int) {
	r, g, b := toColorful(c).RGB255()
	return int(r), int(g), int(b)
}

func (s *pdfSurface) Clear() {
	s.pdf.SetFillColor(rgb255(mustHex(canvasBackground)))
	s.pdf.Rect(0, 0, s.width, s.height, "F")
}

func (s *pdfSurface) FillRect(r Rect, fill color.Color) {
	r = r.Canon()
	s.pdf.SetFillColor(rgb255(fill))
	s.pdf.Rect(r.X, r.Y, r.Width, r.Height, "F")
}

func (s *pdfSurface) StrokeRect(r Rect, stroke color.Color, width float64) {
	r = r.Canon()
	s.pdf.SetDrawColor(rgb255(stroke))
	s.pdf.SetLineWidth(width)
	s.pdf.Rect(r.X, r.Y, r.Width, r.Height, "D")
}

func (s *pdfSurface) Save(path string) error {
	if err := s.pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
