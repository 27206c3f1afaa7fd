package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.Width != 0 || cfg.App.Height != 0 || cfg.App.ShowFooter {
		t.Fatalf("unexpected defaults %#v", cfg.App)
	}
	if cfg.Logging.Trace || cfg.Logging.FilePath != "" {
		t.Fatalf("unexpected logging defaults %#v", cfg.Logging)
	}
	if len(cfg.Args) != 0 {
		t.Fatalf("expected no args, got %v", cfg.Args)
	}
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	environ := []string{
		"POPUP_MODAL_WIDTH=100",
		"POPUP_MODAL_HEIGHT=40",
		"POPUP_MODAL_LOCALE=fi",
		"POPUP_MODAL_FOOTER=true",
		"POPUP_MODAL_DIALOG=help",
	}
	cfg, err := LoadArgs([]string{"--width", "90", "--locale=sv", "--trace", "--metrics-addr", ":9100"}, environ)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.Width != 90 {
		t.Fatalf("expected flag width 90, got %d", cfg.App.Width)
	}
	if cfg.App.Height != 40 {
		t.Fatalf("expected env height 40, got %d", cfg.App.Height)
	}
	if cfg.App.Locale != "sv" {
		t.Fatalf("expected flag locale sv, got %q", cfg.App.Locale)
	}
	if !cfg.App.ShowFooter || !cfg.App.Trace || !cfg.Logging.Trace {
		t.Fatalf("expected footer and trace enabled, got %#v", cfg)
	}
	if cfg.App.Dialog != "help" {
		t.Fatalf("expected env dialog help, got %q", cfg.App.Dialog)
	}
	if cfg.Flags["metricsAddr"] != ":9100" || cfg.Flags["width"] != "90" {
		t.Fatalf("unexpected flag snapshot %v", cfg.Flags)
	}
}

func TestLoadArgsIgnoresMalformedEnvironment(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"POPUP_MODAL_WIDTH=wide", "POPUP_MODAL_TRACE=maybe", "garbage"})
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.Width != 0 || cfg.Logging.Trace {
		t.Fatalf("expected malformed values to fall back, got %#v", cfg)
	}
}

func TestLoadArgsRejectsNegativeSizes(t *testing.T) {
	if _, err := LoadArgs([]string{"--width", "-1"}, nil); err == nil {
		t.Fatalf("expected error for negative width")
	}
	if _, err := LoadArgs([]string{"--height=-3"}, nil); err == nil {
		t.Fatalf("expected error for negative height")
	}
}

func TestLoadArgsUnknownFlag(t *testing.T) {
	if _, err := LoadArgs([]string{"--socket", "x"}, nil); err == nil {
		t.Fatalf("expected unknown flag error")
	}
}

func TestRegisterBindsExistingFlagSet(t *testing.T) {
	fs := pflag.NewFlagSet("root", pflag.ContinueOnError)
	binding := Register(fs, []string{"POPUP_MODAL_LOG_FILE=/tmp/modal.log"})
	if err := fs.Parse([]string{"--dialog", "confirm"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	cfg, err := binding.Config([]string{"--dialog", "confirm"})
	if err != nil {
		t.Fatalf("Config: %v", err)
	}
	if cfg.App.Dialog != "confirm" || cfg.Logging.FilePath != "/tmp/modal.log" {
		t.Fatalf("unexpected config %#v", cfg)
	}
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("en: [unterminated"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "zero value", mutate: func(*Config) {}},
		{name: "metrics address", mutate: func(c *Config) { c.App.MetricsAddr = "127.0.0.1:9090" }},
		{name: "metrics without port", mutate: func(c *Config) { c.App.MetricsAddr = "localhost" }, wantErr: "metrics address"},
		{name: "metrics bad port", mutate: func(c *Config) { c.App.MetricsAddr = ":http" }, wantErr: "invalid port"},
		{name: "known dialog", mutate: func(c *Config) { c.App.Dialog = "sticky" }},
		{name: "unknown dialog", mutate: func(c *Config) { c.App.Dialog = "nope" }, wantErr: "unknown dialog"},
		{name: "missing catalog", mutate: func(c *Config) { c.App.CatalogPath = filepath.Join(dir, "none.yaml") }, wantErr: "read catalog"},
		{name: "malformed catalog", mutate: func(c *Config) { c.App.CatalogPath = bad }, wantErr: "parse catalog"},
		{name: "negative size", mutate: func(c *Config) { c.App.Width = -1 }, wantErr: "size must be"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var cfg Config
			tc.mutate(&cfg)
			err := Validate(cfg)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}
