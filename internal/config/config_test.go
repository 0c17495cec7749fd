package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.OutputDir != "." {
		t.Errorf("OutputDir = %q, want .", cfg.OutputDir)
	}
	if cfg.GradientSamples != 10 {
		t.Errorf("GradientSamples = %d, want 10", cfg.GradientSamples)
	}
	if cfg.PaletteMode != PaletteOff {
		t.Errorf("PaletteMode = %q, want off", cfg.PaletteMode)
	}
	if cfg.PaletteSize != 5 {
		t.Errorf("PaletteSize = %d, want 5", cfg.PaletteSize)
	}
	if cfg.ColorMode != ColorAuto {
		t.Errorf("ColorMode = %q, want auto", cfg.ColorMode)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/data/screenshots", "/data/screenshots"},
		{"single trailing slash", "/data/screenshots/", "/data/screenshots"},
		{"multiple trailing slashes", "/data/screenshots///", "/data/screenshots"},
		{"root path", "/", "/"},
		{"relative path", "Screenshots", "Screenshots"},
		{"relative with slash", "Screenshots/", "Screenshots"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDirArg(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeDirArg(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidate_PaletteMode(t *testing.T) {
	tests := []struct {
		name    string
		mode    PaletteMode
		wantErr bool
	}{
		{"off is valid", PaletteOff, false},
		{"dominant is valid", PaletteDominant, false},
		{"kmeans is valid", PaletteKMeans, false},
		{"empty is invalid", "", true},
		{"unknown is invalid", "octree", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.PaletteMode = tt.mode
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_ColorMode(t *testing.T) {
	tests := []struct {
		name    string
		mode    ColorMode
		wantErr bool
	}{
		{"auto is valid", ColorAuto, false},
		{"always is valid", ColorAlways, false},
		{"never is valid", ColorNever, false},
		{"empty is invalid", "", true},
		{"unknown is invalid", "rainbow", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.ColorMode = tt.mode
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_Ranges(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"one sample is valid", func(c *Config) { c.GradientSamples = 1 }, false},
		{"zero samples is invalid", func(c *Config) { c.GradientSamples = 0 }, true},
		{"negative samples is invalid", func(c *Config) { c.GradientSamples = -3 }, true},
		{"palette size 64 is valid", func(c *Config) { c.PaletteSize = 64 }, false},
		{"palette size 0 is invalid", func(c *Config) { c.PaletteSize = 0 }, true},
		{"palette size 65 is invalid", func(c *Config) { c.PaletteSize = 65 }, true},
		{"empty output dir is invalid", func(c *Config) { c.OutputDir = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadEnv_ProcessEnvironment(t *testing.T) {
	t.Setenv("SKYSAMPLER_OUTPUT_DIR", "/tmp/sky-out")
	t.Setenv("SKYSAMPLER_SAMPLES", "25")
	t.Setenv("SKYSAMPLER_PALETTE", "dominant")
	t.Setenv("SKYSAMPLER_VERBOSE", "true")

	cfg := DefaultConfig()
	if err := LoadEnv(&cfg, ""); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}

	if cfg.OutputDir != "/tmp/sky-out" {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
	if cfg.GradientSamples != 25 {
		t.Errorf("GradientSamples = %d, want 25", cfg.GradientSamples)
	}
	if cfg.PaletteMode != PaletteDominant {
		t.Errorf("PaletteMode = %q, want dominant", cfg.PaletteMode)
	}
	if !cfg.Verbose {
		t.Error("Verbose = false, want true")
	}
	// Untouched fields keep their defaults.
	if cfg.PaletteSize != 5 {
		t.Errorf("PaletteSize = %d, want default 5", cfg.PaletteSize)
	}
}

func TestLoadEnv_EnvFile(t *testing.T) {
	// Pre-seed with t.Setenv so Overload's process-env writes are restored
	// on cleanup, and so the file visibly wins over the process env.
	t.Setenv("SKYSAMPLER_SAMPLES", "10")
	t.Setenv("SKYSAMPLER_PALETTE", "off")

	path := filepath.Join(t.TempDir(), "test.env")
	content := "SKYSAMPLER_SAMPLES=7\nSKYSAMPLER_PALETTE=kmeans\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	if err := LoadEnv(&cfg, path); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}

	if cfg.GradientSamples != 7 {
		t.Errorf("GradientSamples = %d, want 7 from env file", cfg.GradientSamples)
	}
	if cfg.PaletteMode != PaletteKMeans {
		t.Errorf("PaletteMode = %q, want kmeans", cfg.PaletteMode)
	}
}

func TestLoadEnv_MissingEnvFile(t *testing.T) {
	cfg := DefaultConfig()
	if err := LoadEnv(&cfg, filepath.Join(t.TempDir(), "absent.env")); err == nil {
		t.Fatal("LoadEnv with missing file: want error, got nil")
	}
}

func TestPrepareOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	abs, err := PrepareOutputDir(dir)
	if err != nil {
		t.Fatalf("PrepareOutputDir: %v", err)
	}
	if !filepath.IsAbs(abs) {
		t.Errorf("path %q is not absolute", abs)
	}
	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		t.Errorf("output dir was not created: %v", err)
	}
}

func TestPrepareOutputDir_FileInTheWay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "occupied")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := PrepareOutputDir(path); err == nil {
		t.Fatal("PrepareOutputDir over a file: want error, got nil")
	}
}
