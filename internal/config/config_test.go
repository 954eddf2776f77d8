package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	cfg := Load()
	if cfg.Format != "text" {
		t.Fatalf("expected default format text, got %q", cfg.Format)
	}
	if cfg.Verbose {
		t.Fatalf("expected verbose to default to false")
	}
}

func TestLoadOverrides(t *testing.T) {
	viper.Reset()
	viper.Set("format", "yaml")
	viper.Set("verbose", true)
	defer viper.Reset()

	cfg := Load()
	if cfg.Format != "yaml" {
		t.Fatalf("expected format yaml, got %q", cfg.Format)
	}
	if !cfg.Verbose {
		t.Fatalf("expected verbose true")
	}
}
