package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/arthurssantosibm/api-client/internal/metrics"
)

func TestCollectorExposesMovementCounters(t *testing.T) {
	collector := metrics.NewCollector()

	collector.RecordMovement("DEPOSIT", 10*time.Millisecond, true)
	collector.RecordMovement("DEPOSIT", 5*time.Millisecond, true)
	collector.RecordMovement("WITHDRAWAL", 2*time.Millisecond, false)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	collector.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body := rec.Body.String()
	if !strings.Contains(body, `movements_processed_total{kind="DEPOSIT"} 2`) {
		t.Fatalf("processed counter missing from exposition:\n%s", body)
	}
	if !strings.Contains(body, `movements_failed_total{kind="WITHDRAWAL"} 1`) {
		t.Fatalf("failed counter missing from exposition:\n%s", body)
	}
	if !strings.Contains(body, "movement_duration_seconds") {
		t.Fatalf("duration histogram missing from exposition:\n%s", body)
	}
}

func TestCollectorsAreIndependent(t *testing.T) {
	a := metrics.NewCollector()
	b := metrics.NewCollector()

	a.RecordMovement("TRANSFER", time.Millisecond, true)

	rec := httptest.NewRecorder()
	b.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if strings.Contains(rec.Body.String(), `movements_processed_total{kind="TRANSFER"} 1`) {
		t.Fatal("collectors must not share a registry")
	}
}
