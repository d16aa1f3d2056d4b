package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/mattn/go-runewidth"
)

// Config is the resolved tictactoe configuration.
type Config struct {
	UI  UISettings
	Log LogSettings
}

// UISettings controls how the board is drawn.
type UISettings struct {
	GlyphX     string
	GlyphO     string
	GlyphEmpty string
	Color      bool
}

// LogSettings controls the debug log.
type LogSettings struct {
	Level string
	File  string
}

// fileConfig mirrors Config for decoding. Blocks and the color flag are
// pointers so a file can set only the values it cares about.
type fileConfig struct {
	UI  *uiBlock  `hcl:"ui,block"`
	Log *logBlock `hcl:"log,block"`
}

type uiBlock struct {
	GlyphX     string `hcl:"glyph_x,optional"`
	GlyphO     string `hcl:"glyph_o,optional"`
	GlyphEmpty string `hcl:"glyph_empty,optional"`
	Color      *bool  `hcl:"color,optional"`
}

type logBlock struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		UI: UISettings{
			GlyphX:     "x",
			GlyphO:     "o",
			GlyphEmpty: "▢",
			Color:      true,
		},
		Log: LogSettings{
			Level: "info",
			File:  "tictactoe.log",
		},
	}
}

// Load reads configuration from an HCL file, falling back to Default
// when the file does not exist. Values missing from the file keep their
// defaults.
func Load(filename string) (*Config, error) {
	config := Default()

	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return config, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if raw.UI != nil {
		if raw.UI.GlyphX != "" {
			config.UI.GlyphX = raw.UI.GlyphX
		}
		if raw.UI.GlyphO != "" {
			config.UI.GlyphO = raw.UI.GlyphO
		}
		if raw.UI.GlyphEmpty != "" {
			config.UI.GlyphEmpty = raw.UI.GlyphEmpty
		}
		if raw.UI.Color != nil {
			config.UI.Color = *raw.UI.Color
		}
	}
	if raw.Log != nil {
		if raw.Log.Level != "" {
			config.Log.Level = raw.Log.Level
		}
		if raw.Log.File != "" {
			config.Log.File = raw.Log.File
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the configuration for values the UI cannot render.
func (c *Config) Validate() error {
	// The board grid allots one display column per cell.
	glyphs := map[string]string{
		"glyph_x":     c.UI.GlyphX,
		"glyph_o":     c.UI.GlyphO,
		"glyph_empty": c.UI.GlyphEmpty,
	}
	for name, glyph := range glyphs {
		if strings.TrimSpace(glyph) == "" {
			return fmt.Errorf("%s must not be blank", name)
		}
		if runewidth.StringWidth(glyph) != 1 {
			return fmt.Errorf("%s must be a single-width character, got %q", name, glyph)
		}
	}

	if c.UI.GlyphX == c.UI.GlyphO || c.UI.GlyphX == c.UI.GlyphEmpty || c.UI.GlyphO == c.UI.GlyphEmpty {
		return fmt.Errorf("board glyphs must be distinct: x=%q o=%q empty=%q", c.UI.GlyphX, c.UI.GlyphO, c.UI.GlyphEmpty)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.Log.Level] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	return nil
}
