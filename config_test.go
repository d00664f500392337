package cursor

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Theme != "DMZ-White" || cfg.Size != 24 || cfg.Path != "" {
		t.Errorf("DefaultConfig() = %+v, want DMZ-White/24", cfg)
	}
}

func TestConfigNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Config
		want Config
	}{
		{"zero", Config{}, Config{Theme: "DMZ-White", Size: 24}},
		{"negative size", Config{Theme: "Breeze", Size: -3}, Config{Theme: "Breeze", Size: 24}},
		{"kept", Config{Theme: "Breeze", Size: 48, Path: "/x"}, Config{Theme: "Breeze", Size: 48, Path: "/x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Normalize(); got != tt.want {
				t.Errorf("Normalize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestConfigOverride(t *testing.T) {
	base := Config{Theme: "Breeze", Size: 32, Path: "/a"}
	got := base.Override(Config{Size: 48})
	if want := (Config{Theme: "Breeze", Size: 48, Path: "/a"}); got != want {
		t.Errorf("Override() = %+v, want %+v", got, want)
	}
}

func TestConfigSearchPath(t *testing.T) {
	got := Config{Path: "/a:/b"}.SearchPath()
	if len(got) != 2 || got[0] != "/a" || got[1] != "/b" {
		t.Errorf("SearchPath() = %v, want [/a /b]", got)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(dir, "nope.yaml"))
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg != DefaultConfig() {
			t.Errorf("LoadConfig() = %+v, want defaults", cfg)
		}
	})

	t.Run("partial file", func(t *testing.T) {
		p := filepath.Join(dir, "cursor.yaml")
		if err := os.WriteFile(p, []byte("theme: Breeze\npath: /opt/icons\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		cfg, err := LoadConfig(p)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if want := (Config{Theme: "Breeze", Size: 24, Path: "/opt/icons"}); cfg != want {
			t.Errorf("LoadConfig() = %+v, want %+v", cfg, want)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		p := filepath.Join(dir, "bad.yaml")
		if err := os.WriteFile(p, []byte("size: [not, a, number"), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfig(p); err == nil {
			t.Error("LoadConfig() with invalid YAML: expected error")
		}
	})
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("XCURSOR_THEME", "Adwaita")
	t.Setenv("XCURSOR_SIZE", "48")
	t.Setenv("XCURSOR_PATH", "/usr/share/icons")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv() error = %v", err)
	}
	if want := (Config{Theme: "Adwaita", Size: 48, Path: "/usr/share/icons"}); cfg != want {
		t.Errorf("ConfigFromEnv() = %+v, want %+v", cfg, want)
	}
}

func TestConfigFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"XCURSOR_THEME", "XCURSOR_SIZE", "XCURSOR_PATH"} {
		t.Setenv(k, "") // restored on cleanup
		os.Unsetenv(k)
	}

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv() error = %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("ConfigFromEnv() = %+v, want defaults", cfg)
	}
}

func TestConfigFromEnvInvalidSize(t *testing.T) {
	t.Setenv("XCURSOR_SIZE", "huge")
	if _, err := ConfigFromEnv(); err == nil {
		t.Error("ConfigFromEnv() with XCURSOR_SIZE=huge: expected error")
	}
}
