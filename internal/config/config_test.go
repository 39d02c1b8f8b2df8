package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("existing file", func(t *testing.T) {
		dir := t.TempDir()
		configDir := filepath.Join(dir, ".lightbox")
		if err := os.MkdirAll(configDir, 0755); err != nil {
			t.Fatalf("setup: mkdir failed: %v", err)
		}

		data := `{"base_path": "assets", "extension": ".PNG", "images": ["a", "b", "c"]}`
		if err := os.WriteFile(filepath.Join(configDir, "config.json"), []byte(data), 0644); err != nil {
			t.Fatalf("setup: write failed: %v", err)
		}

		cfg, err := Load(dir)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}

		if cfg.BasePath != "assets" {
			t.Errorf("BasePath: got %q, want %q", cfg.BasePath, "assets")
		}
		if cfg.Extension != "png" {
			t.Errorf("Extension: got %q, want %q", cfg.Extension, "png")
		}
		if len(cfg.Images) != 3 || cfg.Images[0] != "a" || cfg.Images[2] != "c" {
			t.Errorf("Images: got %v, want [a b c]", cfg.Images)
		}
	})

	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := Load(t.TempDir())
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.BasePath != DefaultBasePath {
			t.Errorf("BasePath: got %q, want %q", cfg.BasePath, DefaultBasePath)
		}
		if cfg.Extension != DefaultExtension {
			t.Errorf("Extension: got %q, want %q", cfg.Extension, DefaultExtension)
		}
		if len(cfg.Images) != len(DefaultImages) {
			t.Errorf("Images: got %d, want %d", len(cfg.Images), len(DefaultImages))
		}
	})

	t.Run("defaults are not shared", func(t *testing.T) {
		cfg := Default()
		cfg.Images[0] = "changed"
		if DefaultImages[0] == "changed" {
			t.Error("Default() must copy DefaultImages")
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.MkdirAll(filepath.Join(dir, ".lightbox"), 0755); err != nil {
			t.Fatalf("setup: mkdir failed: %v", err)
		}
		if err := os.WriteFile(Path(dir), []byte("{not json"), 0644); err != nil {
			t.Fatalf("setup: write failed: %v", err)
		}
		if _, err := Load(dir); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("empty image list is valid", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.MkdirAll(filepath.Join(dir, ".lightbox"), 0755); err != nil {
			t.Fatalf("setup: mkdir failed: %v", err)
		}
		if err := os.WriteFile(Path(dir), []byte(`{"images": []}`), 0644); err != nil {
			t.Fatalf("setup: write failed: %v", err)
		}
		cfg, err := Load(dir)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(cfg.Images) != 0 {
			t.Errorf("Images: got %v, want empty", cfg.Images)
		}
	})
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{BasePath: "pics", Extension: "webp", Images: []string{"x", "y"}}

	if err := Save(dir, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.BasePath != "pics" || got.Extension != "webp" || len(got.Images) != 2 {
		t.Errorf("got %+v, want %+v", got, cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		wantErrs int
	}{
		{"valid", Config{BasePath: "img", Extension: "jpg", Images: []string{"a"}}, 0},
		{"bad extension", Config{BasePath: "img", Extension: "bmp"}, 1},
		{"empty base path", Config{BasePath: " ", Extension: "png"}, 1},
		{"empty identifier", Config{BasePath: "img", Extension: "png", Images: []string{"a", ""}}, 1},
		{"everything wrong", Config{Extension: "tiff", Images: []string{""}}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErrs == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if len(verr.Errors) != tt.wantErrs {
				t.Errorf("got %d errors, want %d: %v", len(verr.Errors), tt.wantErrs, verr.Errors)
			}

			var ferr *FieldError
			if !errors.As(err, &ferr) {
				t.Errorf("expected errors.As to find a *FieldError")
			}
		})
	}
}
