package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const configFile = ".lightbox/config.json"

// Defaults used when no config file exists
const (
	DefaultBasePath  = "img/pictures"
	DefaultExtension = "jpg"
)

// DefaultImages is the image set shipped with the sample gallery
var DefaultImages = []string{
	"ai-generated-8756365_1280",
	"boat-4868355_640",
	"boat-7497807_640",
	"boat-7497809_640",
	"coast-6917777_640",
	"dominicana-4620393_640",
	"sea-4994010_640",
	"sun-4475490_640",
	"sun-5039871_640",
	"sunset-5429861_640",
	"water-4873775_1280",
}

// allowedExtensions lists the image formats the preview decoder understands
var allowedExtensions = map[string]bool{
	"jpg":  true,
	"png":  true,
	"webp": true,
}

// Config is the static gallery configuration. It is read once at startup.
type Config struct {
	BasePath  string   `json:"base_path"`
	Extension string   `json:"extension"`
	Images    []string `json:"images"`
	LogFile   string   `json:"log_file,omitempty"`
}

// Default returns the built-in gallery configuration
func Default() *Config {
	images := make([]string, len(DefaultImages))
	copy(images, DefaultImages)
	return &Config{
		BasePath:  DefaultBasePath,
		Extension: DefaultExtension,
		Images:    images,
	}
}

// Path returns the config file location for a base directory
func Path(baseDir string) string {
	return filepath.Join(baseDir, configFile)
}

// Load reads the config from disk
func Load(baseDir string) (*Config, error) {
	data, err := os.ReadFile(Path(baseDir))
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", configFile, err)
	}
	cfg.Extension = strings.TrimPrefix(strings.ToLower(cfg.Extension), ".")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config to disk
func Save(baseDir string, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	configPath := Path(baseDir)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// Validate checks the config for values the gallery cannot serve
func (c *Config) Validate() error {
	verr := &ValidationError{}

	if strings.TrimSpace(c.BasePath) == "" {
		verr.Add(&FieldError{Field: "base_path", Reason: "must not be empty"})
	}
	if !allowedExtensions[c.Extension] {
		verr.Add(&FieldError{Field: "extension", Reason: fmt.Sprintf("unsupported %q (want jpg, png or webp)", c.Extension)})
	}
	for i, id := range c.Images {
		if strings.TrimSpace(id) == "" {
			verr.Add(&FieldError{Field: fmt.Sprintf("images[%d]", i), Reason: "empty identifier"})
		}
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}
