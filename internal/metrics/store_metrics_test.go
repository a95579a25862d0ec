package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestNewStoreMetrics(t *testing.T) {
	metrics := NewStoreMetrics()

	if metrics == nil {
		t.Fatal("NewStoreMetrics should not return nil")
	}

	if metrics.operations == nil {
		t.Error("operations counter vec should not be nil")
	}

	if metrics.rejected == nil {
		t.Error("rejected counter vec should not be nil")
	}

	if metrics.ordersPlaced == nil {
		t.Error("ordersPlaced counter should not be nil")
	}

	if metrics.orderTotal == nil {
		t.Error("orderTotal histogram should not be nil")
	}

	if metrics.persistFailures == nil {
		t.Error("persistFailures counter vec should not be nil")
	}

	if metrics.eventsPublished == nil {
		t.Error("eventsPublished counter should not be nil")
	}

	if metrics.cartItems == nil {
		t.Error("cartItems gauge should not be nil")
	}
}

func TestRecordOperation(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := newStoreMetricsWithRegisterer(reg)

	metrics.RecordOperation("add_to_cart")
	metrics.RecordOperation("add_to_cart")
	metrics.RecordOperation("remove_from_cart")

	metric := &dto.Metric{}
	if err := metrics.operations.WithLabelValues("add_to_cart").Write(metric); err != nil {
		t.Fatalf("write metric: %v", err)
	}
	if got := metric.GetCounter().GetValue(); got != 2 {
		t.Fatalf("expected add_to_cart counter 2, got %v", got)
	}
}

func TestRecordOrderPlaced(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := newStoreMetricsWithRegisterer(reg)

	metrics.RecordOrderPlaced(25.50)

	metric := &dto.Metric{}
	if err := metrics.ordersPlaced.Write(metric); err != nil {
		t.Fatalf("write metric: %v", err)
	}
	if got := metric.GetCounter().GetValue(); got != 1 {
		t.Fatalf("expected ordersPlaced counter 1, got %v", got)
	}

	histMetric := &dto.Metric{}
	if err := metrics.orderTotal.Write(histMetric); err != nil {
		t.Fatalf("write histogram: %v", err)
	}
	if got := histMetric.GetHistogram().GetSampleSum(); got != 25.50 {
		t.Fatalf("expected order total sample sum 25.50, got %v", got)
	}
}

func TestRecordPersistFailureAndCartGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := newStoreMetricsWithRegisterer(reg)

	metrics.RecordPersistFailure("cart")
	metrics.SetCartItems(3)

	metric := &dto.Metric{}
	if err := metrics.persistFailures.WithLabelValues("cart").Write(metric); err != nil {
		t.Fatalf("write metric: %v", err)
	}
	if got := metric.GetCounter().GetValue(); got != 1 {
		t.Fatalf("expected persist failure counter 1, got %v", got)
	}

	gaugeMetric := &dto.Metric{}
	if err := metrics.cartItems.Write(gaugeMetric); err != nil {
		t.Fatalf("write gauge: %v", err)
	}
	if got := gaugeMetric.GetGauge().GetValue(); got != 3 {
		t.Fatalf("expected cart items gauge 3, got %v", got)
	}
}
