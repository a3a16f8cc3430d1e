package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if len(cfg.Packages) != 3 {
		t.Fatalf("len(Packages) = %d, want 3", len(cfg.Packages))
	}

	// Sample batch order matters for output
	wantKinds := []string{"SWM", "RUN", "WLK"}
	wantArity := []int{5, 3, 4}
	for i, p := range cfg.Packages {
		if p.Kind != wantKinds[i] {
			t.Errorf("Packages[%d].Kind = %q, want %q", i, p.Kind, wantKinds[i])
		}
		if len(p.Fields) != wantArity[i] {
			t.Errorf("Packages[%d] has %d fields, want %d", i, len(p.Fields), wantArity[i])
		}
	}

	if cfg.Display.Interactive {
		t.Error("Display.Interactive should default to false")
	}
	if cfg.Display.ChartHeight != 8 {
		t.Errorf("Display.ChartHeight = %d, want 8", cfg.Display.ChartHeight)
	}
	if cfg.Log.Debug {
		t.Error("Log.Debug should default to false")
	}
}

func TestSamplePackagesIsFresh(t *testing.T) {
	a := SamplePackages()
	a[0].Fields[0] = 1
	b := SamplePackages()
	if b[0].Fields[0] != 720 {
		t.Errorf("SamplePackages shares state: got %v", b[0].Fields[0])
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
		errContains string
	}{
		{
			name:        "default config",
			config:      DefaultConfig(),
			expectError: false,
		},
		{
			name:        "no packages",
			config:      Config{},
			expectError: true,
			errContains: "packages",
		},
		{
			name: "missing kind",
			config: Config{
				Packages: []Package{
					{Kind: "RUN", Fields: []float64{15000, 1, 75}},
					{Fields: []float64{1, 2, 3}},
				},
			},
			expectError: true,
			errContains: "packages[1].kind",
		},
		{
			name: "unknown kind is left to dispatch",
			config: Config{
				Packages: []Package{{Kind: "XYZ", Fields: []float64{1}}},
			},
			expectError: false,
		},
		{
			name: "negative chart height",
			config: Config{
				Packages: SamplePackages(),
				Display:  DisplayConfig{ChartHeight: -1},
			},
			expectError: true,
			errContains: "chart_height",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectError {
				if err == nil {
					t.Error("expected error, got nil")
				} else if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q should contain %q", err.Error(), tt.errContains)
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "batch.json")

	data := `{
  "packages": [
    {"kind": "RUN", "fields": [15000, 1, 75]},
    {"kind": "WLK", "fields": [9000, 1, 75, 180]}
  ],
  "log": {"debug": true}
}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(cfg.Packages) != 2 {
		t.Fatalf("len(Packages) = %d, want 2", len(cfg.Packages))
	}
	if cfg.Packages[1].Kind != "WLK" || cfg.Packages[1].Fields[3] != 180 {
		t.Errorf("Packages[1] = %+v", cfg.Packages[1])
	}
	if !cfg.Log.Debug {
		t.Error("Log.Debug should be true")
	}
	// Missing display section takes defaults
	if cfg.Display.ChartHeight != 8 {
		t.Errorf("Display.ChartHeight = %d, want default 8", cfg.Display.ChartHeight)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, ErrNoConfig) {
		t.Errorf("Load error = %v, want ErrNoConfig", err)
	}
}

func TestLoadBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{packages: "), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "parsing config file") {
		t.Errorf("Load error = %v, want parse error", err)
	}
}

func TestCreateExample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", DefaultFileName)

	if err := CreateExample(path); err != nil {
		t.Fatalf("CreateExample: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load after CreateExample: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("example config should validate: %v", err)
	}

	// Existing file is not overwritten
	custom := Config{Packages: []Package{{Kind: "RUN", Fields: []float64{1, 1, 1}}}}
	if err := Save(path, &custom); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := CreateExample(path); !errors.Is(err, ErrConfigExists) {
		t.Fatalf("CreateExample on existing file: err = %v, want ErrConfigExists", err)
	}
	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Packages) != 1 {
		t.Errorf("CreateExample overwrote existing config: %+v", cfg.Packages)
	}
}
