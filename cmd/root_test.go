package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/marcus/lightbox/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// runCmd executes the root command against dir and returns stdout.
func runCmd(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { resetFlags(rootCmd) })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(append([]string{"-C", dir}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags restores every flag so state does not leak between runs.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func writeConfig(t *testing.T, dir string, ids ...string) {
	t.Helper()
	cfg := &config.Config{BasePath: "img", Extension: "png", Images: ids}
	if err := config.Save(dir, cfg); err != nil {
		t.Fatalf("save config: %v", err)
	}
}

func writePNG(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{B: 200, A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "boat", "coast")

	out, err := runCmd(t, dir, "render")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := strings.Count(out, `<button class="tile"`); got != 2 {
		t.Errorf("tiles = %d, want 2", got)
	}
	if !strings.Contains(out, `src="img/coast.png"`) {
		t.Errorf("missing source in %q", out)
	}
}

func TestRenderCommandToFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "boat")
	target := filepath.Join(dir, "gallery.html")

	out, err := runCmd(t, dir, "render", "-o", target)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "" {
		t.Errorf("stdout = %q, want empty", out)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), `aria-label="Image 1 open"`) {
		t.Errorf("unexpected markup %q", data)
	}
}

type failingCloser struct {
	bytes.Buffer
}

func (failingCloser) Close() error { return errors.New("disk full") }

func TestRenderCommandCloseError(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "boat")

	prev := createOutput
	createOutput = func(string) (io.WriteCloser, error) { return &failingCloser{}, nil }
	defer func() { createOutput = prev }()

	_, err := runCmd(t, dir, "render", "-o", filepath.Join(dir, "gallery.html"))
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("err = %v, want close error", err)
	}
}

func TestListCommand(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "boat", "coast", "sea-1")

	tests := []struct {
		name     string
		args     []string
		contains []string
		absent   []string
	}{
		{
			name:     "all images",
			args:     []string{"list"},
			contains: []string{"boat", "coast", "sea-1", "img/sea-1.png"},
		},
		{
			name:     "fuzzy filter",
			args:     []string{"list", "sea"},
			contains: []string{"sea-1"},
			absent:   []string{"boat"},
		},
		{
			name:     "no match",
			args:     []string{"list", "zzz"},
			contains: []string{`No images match "zzz"`},
		},
		{
			name:     "check files",
			args:     []string{"list", "--check"},
			contains: []string{"STATUS", "missing"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCmd(t, dir, tt.args...)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			for _, s := range tt.contains {
				if !strings.Contains(out, s) {
					t.Errorf("output missing %q:\n%s", s, out)
				}
			}
			for _, s := range tt.absent {
				if strings.Contains(out, s) {
					t.Errorf("output should not contain %q:\n%s", s, out)
				}
			}
		})
	}
}

func TestListCommandJSON(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "boat", "coast")

	out, err := runCmd(t, dir, "list", "--json")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var got []listedTile
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if len(got) != 2 || got[1].Position != 2 || got[1].Source != "img/coast.png" {
		t.Errorf("got %+v", got)
	}
}

func TestShowCommand(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "boat", "coast", "sea")
	writePNG(t, filepath.Join(dir, "img", "coast.png"))

	tests := []struct {
		name  string
		arg   string
		label string
	}{
		{"position", "2", "Image 2 of 3"},
		{"wraps past the end", "4", "Image 1 of 3"},
		{"wraps before the start", "0", "Image 3 of 3"},
		{"name", "coast", "Image 2 of 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCmd(t, dir, "show", tt.arg, "--width", "10", "--height", "5")
			if err != nil {
				t.Fatalf("show: %v", err)
			}
			if !strings.HasPrefix(out, tt.label+"\n") {
				t.Errorf("output starts %q, want label %q", firstLine(out), tt.label)
			}
		})
	}

	out, err := runCmd(t, dir, "show", "2", "--width", "10", "--height", "5")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.Contains(out, "▀") {
		t.Error("expected rendered image cells")
	}
	out, err = runCmd(t, dir, "show", "1", "--width", "10", "--height", "5")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.Contains(out, "✕") {
		t.Error("expected placeholder for missing file")
	}
}

func TestAbsoluteBasePath(t *testing.T) {
	dir := t.TempDir()
	pics := t.TempDir()
	writePNG(t, filepath.Join(pics, "boat.png"))

	cfg := &config.Config{BasePath: filepath.ToSlash(pics), Extension: "png", Images: []string{"boat"}}
	if err := config.Save(dir, cfg); err != nil {
		t.Fatalf("save config: %v", err)
	}

	out, err := runCmd(t, dir, "list", "--check")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "ok") {
		t.Errorf("expected boat to be found:\n%s", out)
	}

	out, err = runCmd(t, dir, "show", "1", "--width", "10", "--height", "5")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.Contains(out, "▀") || strings.Contains(out, "✕") {
		t.Errorf("expected rendered image, got:\n%s", out)
	}
}

func TestShowCommandErrors(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "boat")

	if _, err := runCmd(t, dir, "show", "zzz"); err == nil {
		t.Error("expected error for unmatched name")
	}
}

func TestConfigInit(t *testing.T) {
	dir := t.TempDir()

	out, err := runCmd(t, dir, "config", "init", "--ext", ".PNG")
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if !strings.Contains(out, "Wrote") {
		t.Errorf("output = %q", out)
	}
	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Extension != "png" || len(cfg.Images) != len(config.DefaultImages) {
		t.Errorf("cfg = %+v", cfg)
	}

	if _, err := runCmd(t, dir, "config", "init"); err == nil {
		t.Error("expected error when config exists")
	}
	if _, err := runCmd(t, dir, "config", "init", "--force"); err != nil {
		t.Errorf("init --force: %v", err)
	}

	out, err = runCmd(t, dir, "config", "show")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.Contains(out, "extension: jpg") {
		t.Errorf("expected default extension after --force, got %q", out)
	}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
