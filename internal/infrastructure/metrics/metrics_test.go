package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewRegistersMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()

	m := New(registry)

	if m.InvoicesGenerated == nil || m.HTTPRequests == nil || m.InvoiceErrors == nil {
		t.Fatalf("expected key metrics to be initialized: %+v", m)
	}

	m.InvoicesGenerated.Inc()
	m.InvoiceErrors.WithLabelValues("parse").Inc()

	metricFamilies, err := registry.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	if len(metricFamilies) == 0 {
		t.Fatalf("expected registered metrics, got none")
	}

	if got := testutil.ToFloat64(m.InvoicesGenerated); got != 1 {
		t.Fatalf("expected 1 generated invoice, got %v", got)
	}
}

func TestNewUsesSeparateRegistries(t *testing.T) {
	// Two independent registries must not collide.
	New(prometheus.NewRegistry())
	New(prometheus.NewRegistry())
}

func TestWriteTextfile(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry)
	m.InvoicesGenerated.Inc()

	path := filepath.Join(t.TempDir(), "goinvoice.prom")
	if err := WriteTextfile(path, registry); err != nil {
		t.Fatalf("failed to write textfile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read textfile: %v", err)
	}

	if !strings.Contains(string(data), "goinvoice_invoices_generated_total 1") {
		t.Fatalf("expected counter in textfile, got:\n%s", data)
	}
}
