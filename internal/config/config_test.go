package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

type envTestConfig struct {
	Port int `env:"FURRY_STORE_TEST_PORT" envDefault:"123"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("FURRY_STORE_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv(DotEnvSwitch, "off")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TickRate != 100*time.Millisecond {
		t.Fatalf("expected 100ms tick rate, got %s", cfg.TickRate)
	}
	want := []string{"blue", "red", "green", "yellow", "magenta", "cyan"}
	if !reflect.DeepEqual(cfg.Palette, want) {
		t.Fatalf("expected default palette %v, got %v", want, cfg.Palette)
	}
	if cfg.InspectFormat != "json" || cfg.InspectStyle != "monokai" {
		t.Fatalf("unexpected inspect defaults %q %q", cfg.InspectFormat, cfg.InspectStyle)
	}
}

func TestLoadPalette(t *testing.T) {
	t.Setenv(DotEnvSwitch, "off")
	t.Setenv("FURRY_STORE_PALETTE", " blue, ,#ff8800,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(cfg.Palette, []string{"blue", "#ff8800"}) {
		t.Fatalf("unexpected palette %v", cfg.Palette)
	}

	t.Setenv("FURRY_STORE_PALETTE", " , ")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for empty palette")
	}
}

func TestLoadRejectsNegativeTick(t *testing.T) {
	t.Setenv(DotEnvSwitch, "off")
	t.Setenv("FURRY_STORE_TICK_RATE", "-1s")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for negative tick rate")
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	local := filepath.Join(dir, ".env.local")
	shared := filepath.Join(dir, ".env")
	if err := os.WriteFile(local, []byte("FURRY_STORE_TEST_A=local\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(shared, []byte("FURRY_STORE_TEST_A=shared\nFURRY_STORE_TEST_B=shared\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FURRY_STORE_TEST_A", "")
	t.Setenv("FURRY_STORE_TEST_B", "")
	os.Unsetenv("FURRY_STORE_TEST_A")
	os.Unsetenv("FURRY_STORE_TEST_B")

	loaded, err := LoadDotEnv(local, filepath.Join(dir, "missing.env"), shared)
	if err != nil {
		t.Fatalf("load dotenv: %v", err)
	}
	if !reflect.DeepEqual(loaded, []string{local, shared}) {
		t.Fatalf("unexpected loaded files %v", loaded)
	}
	if got := os.Getenv("FURRY_STORE_TEST_A"); got != "local" {
		t.Fatalf("expected earlier file to win, got %q", got)
	}
	if got := os.Getenv("FURRY_STORE_TEST_B"); got != "shared" {
		t.Fatalf("expected value from later file, got %q", got)
	}
}

func TestLoadDotEnvDisabled(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("FURRY_STORE_TEST_C=set\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(DotEnvSwitch, "false")
	t.Setenv("FURRY_STORE_TEST_C", "")
	os.Unsetenv("FURRY_STORE_TEST_C")

	loaded, err := LoadDotEnv(path)
	if err != nil || len(loaded) != 0 {
		t.Fatalf("expected nothing loaded, got %v %v", loaded, err)
	}
	if _, ok := os.LookupEnv("FURRY_STORE_TEST_C"); ok {
		t.Fatalf("expected variable to stay unset")
	}
}
