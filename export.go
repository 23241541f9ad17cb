package main

import (
	"fmt"
	"log"
	"time"
)

func exportFilename(f ExportFormat, now time.Time) string {
	return fmt.Sprintf("rectedit-%s.%s", now.Format("20060102-150405"), f.Ext())
}

// exportCanvas renders the editor state at canvas resolution and writes it
// to path. Handles and the rectangle being drawn are included, as on screen.
func exportCanvas(e *Editor, cfg *Config, f ExportFormat, path string) error {
	if e.Store().Len() == 0 {
		return fmt.Errorf("nothing to export")
	}

	switch f {
	case ExportPNG:
		s := newPNGSurface(cfg.CanvasWidth, cfg.CanvasHeight)
		Render(s, e.Store(), e.DrawStyle())
		if cfg.PNGCaption {
			if err := s.Caption(fmt.Sprintf("%d rectangles", e.Store().Len())); err != nil {
				return err
			}
		}
		if err := s.Save(path); err != nil {
			return err
		}
	case ExportPDF:
		s := newPDFSurface(cfg.CanvasWidth, cfg.CanvasHeight)
		Render(s, e.Store(), e.DrawStyle())
		if err := s.Save(path); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown export format %d", f)
	}

	log.Printf("exported %d rectangles to %s", e.Store().Len(), path)
	return nil
}
