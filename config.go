package main

import (
	"bufio"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	SaveDirectory string
	DrawStyle     Style
	CellWidth     float64
	CellHeight    float64
	CanvasWidth   int
	CanvasHeight  int
	LogFile       string
	PNGCaption    bool
}

func defaultConfig() *Config {
	return &Config{
		SaveDirectory: "",
		DrawStyle:     defaultStyle(),
		CellWidth:     defaultCellW,
		CellHeight:    defaultCellH,
		CanvasWidth:   defaultCanvasW,
		CanvasHeight:  defaultCanvasH,
	}
}

// loadConfig reads $RECTEDIT_CONFIG, or ~/.recteditrc. A missing file
// yields the defaults.
func loadConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	configPath := os.Getenv("RECTEDIT_CONFIG")
	if configPath == "" {
		if homeDir == "" {
			return defaultConfig()
		}
		configPath = filepath.Join(homeDir, ".recteditrc")
	}
	return loadConfigFrom(configPath, homeDir)
}

func loadConfigFrom(configPath, homeDir string) *Config {
	config := defaultConfig()

	file, err := os.Open(configPath)
	if err != nil {
		return config
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "savedirectory", "save_directory", "savedir":
			config.SaveDirectory = expandPath(value, homeDir)
		case "logfile", "log_file":
			config.LogFile = expandPath(value, homeDir)
		case "fill", "fillcolor", "fill_color":
			if c, err := parseHex(value); err == nil {
				config.DrawStyle.Fill = c
			}
		case "border", "bordercolor", "border_color":
			if c, err := parseHex(value); err == nil {
				config.DrawStyle.Border = c
			}
		case "borderwidth", "border_width":
			if n, err := strconv.Atoi(value); err == nil {
				config.DrawStyle.BorderWidth = clampBorderWidth(n)
			}
		case "cellwidth", "cell_width":
			if f, err := strconv.ParseFloat(value, 64); err == nil && f > 0 {
				config.CellWidth = f
			}
		case "cellheight", "cell_height":
			if f, err := strconv.ParseFloat(value, 64); err == nil && f > 0 {
				config.CellHeight = f
			}
		case "canvaswidth", "canvas_width":
			if n, err := strconv.Atoi(value); err == nil && n > 0 {
				config.CanvasWidth = n
			}
		case "canvasheight", "canvas_height":
			if n, err := strconv.Atoi(value); err == nil && n > 0 {
				config.CanvasHeight = n
			}
		case "pngcaption", "png_caption", "caption":
			config.PNGCaption = strings.ToLower(value) == "true"
		}
	}

	return config
}

func expandPath(value, homeDir string) string {
	if strings.HasPrefix(value, "~") && homeDir != "" {
		value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" {
		return filename
	}
	if err := os.MkdirAll(c.SaveDirectory, 0755); err != nil {
		log.Printf("save directory: %v", err)
	}
	return filepath.Join(c.SaveDirectory, filename)
}
