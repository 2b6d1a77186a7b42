package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveRequestCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.ObserveRequest(http.MethodGet, "/api/v1/products", http.StatusOK, 5*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/api/v1/products", http.StatusOK, 7*time.Millisecond)
	m.ObserveRequest(http.MethodPost, "/api/v1/checkout", http.StatusBadRequest, time.Millisecond)

	if got := testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/v1/products", "200")); got != 2 {
		t.Fatalf("expected 2 product requests got %v", got)
	}
	if got := testutil.ToFloat64(m.requests.WithLabelValues("POST", "/api/v1/checkout", "400")); got != 1 {
		t.Fatalf("expected 1 checkout request got %v", got)
	}
}

func TestObserveRequestNormalizesLabels(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.ObserveRequest("", "  ", http.StatusNotFound, time.Millisecond)

	if got := testutil.ToFloat64(m.requests.WithLabelValues("unknown", "unknown", "404")); got != 1 {
		t.Fatalf("expected normalized labels got %v", got)
	}
}

func TestNilReceiverIsSafe(t *testing.T) {
	var m *HTTPMetrics
	m.ObserveRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)

	empty := NewHTTPMetrics(nil)
	empty.ObserveRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)
}
