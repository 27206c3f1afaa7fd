package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/atomicstack/popup-modal/internal/i18n"
	"github.com/atomicstack/popup-modal/internal/logging"
	"github.com/atomicstack/popup-modal/internal/metrics"
	"github.com/atomicstack/popup-modal/internal/ui"
	"github.com/atomicstack/popup-modal/pkg/focus"
	"github.com/atomicstack/popup-modal/pkg/identity"
	"github.com/atomicstack/popup-modal/pkg/scrolllock"
)

const shutdownTimeout = 2 * time.Second

// Config describes user-provided application options.
type Config struct {
	Width       int
	Height      int
	ShowFooter  bool
	Trace       bool
	Locale      string
	CatalogPath string
	MetricsAddr string
	Dialog      string
}

// Dialogs lists the dialog IDs accepted by Config.Dialog.
func Dialogs() []string {
	return ui.DialogIDs()
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	model, closeFn, err := newModel(cfg, prometheus.NewRegistry())
	if err != nil {
		return err
	}
	defer closeFn()

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// newModel wires the shared collaborators into the demo host. The returned
// function unmounts the dialogs and stops the metrics server.
func newModel(cfg Config, reg *prometheus.Registry) (*ui.Model, func(), error) {
	msgs, err := i18n.Load(cfg.CatalogPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load catalog: %w", err)
	}
	locale := cfg.Locale
	if locale == "" {
		locale = i18n.FromEnvironment(os.Getenv)
	}
	catalog := i18n.New(msgs, locale)

	instruments := metrics.New(reg)
	lock := scrolllock.New()
	lock.SetObserver(instruments)

	stopMetrics := func() {}
	if cfg.MetricsAddr != "" {
		ln, err := net.Listen("tcp", cfg.MetricsAddr)
		if err != nil {
			return nil, nil, fmt.Errorf("listen on %s: %w", cfg.MetricsAddr, err)
		}
		stopMetrics = serveMetrics(ln, reg)
	}

	model := ui.NewModel(ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Dialog:     cfg.Dialog,
		Locale:     catalog.Locale().String(),
		Trace:      cfg.Trace,
		Lock:       lock,
		Focus:      focus.NewManager(),
		Translator: catalog,
		Observer:   instruments,
		Allocator:  identity.NewAllocator("dialog"),
	})
	return model, func() {
		model.Close()
		stopMetrics()
	}, nil
}

// serveMetrics exposes reg on ln under /metrics until the returned function
// is called.
func serveMetrics(ln net.Listener, reg *prometheus.Registry) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error(fmt.Errorf("metrics server: %w", err))
		}
	}()
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logging.Error(fmt.Errorf("metrics shutdown: %w", err))
		}
	}
}
