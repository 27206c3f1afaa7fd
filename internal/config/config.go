package config

import (
	"fmt"
	"net"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/atomicstack/popup-modal/internal/app"
	"github.com/atomicstack/popup-modal/internal/i18n"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envWidth       = "POPUP_MODAL_WIDTH"
	envHeight      = "POPUP_MODAL_HEIGHT"
	envShowFooter  = "POPUP_MODAL_FOOTER"
	envTrace       = "POPUP_MODAL_TRACE"
	envLogFile     = "POPUP_MODAL_LOG_FILE"
	envLocale      = "POPUP_MODAL_LOCALE"
	envCatalog     = "POPUP_MODAL_CATALOG"
	envMetricsAddr = "POPUP_MODAL_METRICS_ADDR"
	envDialog      = "POPUP_MODAL_DIALOG"
)

// Binding holds the flag destinations registered on a flag set.
type Binding struct {
	width       *int
	height      *int
	footer      *bool
	trace       *bool
	logFile     *string
	locale      *string
	catalog     *string
	metricsAddr *string
	dialog      *string
}

// Register adds the application flags to fs. Defaults come from the
// POPUP_MODAL_* entries in environ.
func Register(fs *pflag.FlagSet, environ []string) *Binding {
	env := parseEnv(environ)
	return &Binding{
		width:       fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)"),
		height:      fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)"),
		footer:      fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)"),
		trace:       fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging"),
		logFile:     fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file"),
		locale:      fs.String("locale", envOrDefault(env, envLocale, ""), "locale for dialog labels (defaults to LC_ALL/LC_MESSAGES/LANG)"),
		catalog:     fs.String("catalog", envOrDefault(env, envCatalog, ""), "path to a YAML translation catalog (defaults to the built-in one)"),
		metricsAddr: fs.String("metrics-addr", envOrDefault(env, envMetricsAddr, ""), "serve Prometheus metrics on this address, e.g. 127.0.0.1:9090"),
		dialog:      fs.String("dialog", envOrDefault(env, envDialog, ""), "open this dialog at start ("+strings.Join(app.Dialogs(), ", ")+")"),
	}
}

// Config builds the configuration from the parsed flag values.
func (b *Binding) Config(args []string) (Config, error) {
	if *b.width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *b.width)
	}
	if *b.height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *b.height)
	}
	return Config{
		App: app.Config{
			Width:       *b.width,
			Height:      *b.height,
			ShowFooter:  *b.footer,
			Trace:       *b.trace,
			Locale:      *b.locale,
			CatalogPath: *b.catalog,
			MetricsAddr: *b.metricsAddr,
			Dialog:      *b.dialog,
		},
		Logging: Logging{
			FilePath: *b.logFile,
			Trace:    *b.trace,
		},
		Flags: map[string]string{
			"width":       strconv.Itoa(*b.width),
			"height":      strconv.Itoa(*b.height),
			"footer":      strconv.FormatBool(*b.footer),
			"trace":       strconv.FormatBool(*b.trace),
			"logFile":     *b.logFile,
			"locale":      *b.locale,
			"catalog":     *b.catalog,
			"metricsAddr": *b.metricsAddr,
			"dialog":      *b.dialog,
		},
		Args: append([]string(nil), args...),
	}, nil
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet("popup-modal", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	binding := Register(fs, environ)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return binding.Config(args)
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate rejects configuration the program cannot start with.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 || cfg.App.Height < 0 {
		return fmt.Errorf("size must be >= 0 (got %dx%d)", cfg.App.Width, cfg.App.Height)
	}
	if addr := cfg.App.MetricsAddr; addr != "" {
		if _, port, err := net.SplitHostPort(addr); err != nil {
			return fmt.Errorf("metrics address %q: %w", addr, err)
		} else if _, err := strconv.ParseUint(port, 10, 16); err != nil {
			return fmt.Errorf("metrics address %q: invalid port %q", addr, port)
		}
	}
	if d := cfg.App.Dialog; d != "" && !slices.Contains(app.Dialogs(), d) {
		return fmt.Errorf("unknown dialog %q (want one of %s)", d, strings.Join(app.Dialogs(), ", "))
	}
	if path := cfg.App.CatalogPath; path != "" {
		if _, err := i18n.Load(path); err != nil {
			return err
		}
	}
	return nil
}
