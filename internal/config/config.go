package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"LocalCanvas/internal/state"
)

const (
	appDir     = "localcanvas"
	configFile = "config.toml"
)

type Config struct {
	Color        string
	BrushSize    int
	DownloadDir  string
	WindowWidth  int
	WindowHeight int
	Debug        bool
}

// Default is black, 5px, a 1024x768 window and the user's Downloads folder.
func Default() Config {
	return Config{
		Color:        "#000000",
		BrushSize:    5,
		DownloadDir:  defaultDownloadDir(),
		WindowWidth:  1024,
		WindowHeight: 768,
	}
}

func defaultDownloadDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Downloads")
}

// Path is the default config file location.
func Path() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return configFile
	}
	return filepath.Join(dir, appDir, configFile)
}

// Validate rejects values the UI cannot represent.
func (c Config) Validate() error {
	var errs []error
	if _, err := state.ParseHexColor(c.Color); err != nil {
		errs = append(errs, err)
	}
	if c.BrushSize < state.MinBrushWidth || c.BrushSize > state.MaxBrushWidth {
		errs = append(errs, fmt.Errorf("brush size %d outside [%d,%d]", c.BrushSize, state.MinBrushWidth, state.MaxBrushWidth))
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.WindowWidth, c.WindowHeight))
	}
	if c.DownloadDir == "" {
		errs = append(errs, errors.New("download dir is empty"))
	}
	return errors.Join(errs...)
}

// Tools converts the configured color and brush into initial tool settings.
func (c Config) Tools() state.ToolSettings {
	t := state.DefaultTools()
	if col, err := state.ParseHexColor(c.Color); err == nil {
		t.Color = col
	}
	t.Width = state.ClampWidth(c.BrushSize)
	return t
}

// Load reads the file at path on top of Default. A missing file is created
// with the defaults. Keys absent from the file keep their default value.
func Load(path string) (Config, error) {
	conf := Default()
	_, err := toml.DecodeFile(path, &conf)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("Initializing config at", path)
		return conf, Write(path, conf)
	}
	if err != nil {
		return Default(), fmt.Errorf("read config %s: %w", path, err)
	}
	if err := conf.Validate(); err != nil {
		return Default(), fmt.Errorf("invalid config %s: %w", path, err)
	}
	return conf, nil
}

func Write(path string, conf Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(conf); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
