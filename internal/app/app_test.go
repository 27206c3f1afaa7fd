package app

import (
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestNewModelUsesCatalogLocale(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	data := "de:\n  modal.aria.back: Zurück\n  modal.aria.close: Schließen\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	cfg := Config{Width: 80, Height: 24, Locale: "de_DE.UTF-8", CatalogPath: path, Dialog: "settings"}
	model, closeFn, err := newModel(cfg, prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("newModel: %v", err)
	}
	defer closeFn()
	model.Init()
	if view := model.View(); !strings.Contains(view, "Zurück") {
		t.Fatalf("expected translated back label in view:\n%s", view)
	}
}

func TestNewModelRejectsMissingCatalog(t *testing.T) {
	_, _, err := newModel(Config{CatalogPath: filepath.Join(t.TempDir(), "missing.yaml")}, prometheus.NewRegistry())
	if err == nil || !strings.Contains(err.Error(), "load catalog") {
		t.Fatalf("expected load catalog error, got %v", err)
	}
}

func TestServeMetricsExposesRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	model, closeFn, err := newModel(Config{Width: 80, Height: 24}, reg)
	if err != nil {
		t.Fatalf("newModel: %v", err)
	}
	defer closeFn()
	_ = model

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	stop := serveMetrics(ln, reg)
	defer stop()

	resp, err := http.Get("http://" + ln.Addr().String() + "/metrics")
	if err != nil {
		t.Fatalf("get metrics: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
	if !strings.Contains(string(body), "popup_modal_scroll_lock_holders") {
		t.Fatalf("expected lock gauge in metrics output:\n%s", body)
	}
}

func TestDialogsMatchHost(t *testing.T) {
	ids := Dialogs()
	if len(ids) == 0 || ids[0] != "settings" {
		t.Fatalf("unexpected dialog list %v", ids)
	}
}
