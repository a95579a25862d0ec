package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// StoreMetrics содержит метрики операций витрины.
type StoreMetrics struct {
	// Счётчики операций
	operations *prometheus.CounterVec
	rejected   *prometheus.CounterVec

	// Заказы
	ordersPlaced prometheus.Counter
	orderTotal   prometheus.Histogram

	// Персистентность и события
	persistFailures *prometheus.CounterVec
	eventsPublished prometheus.Counter

	// Gauge для размера корзины
	cartItems prometheus.Gauge
}

// NewStoreMetrics создаёт новый экземпляр метрик витрины.
func NewStoreMetrics() *StoreMetrics {
	return newStoreMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func newStoreMetricsWithRegisterer(registerer prometheus.Registerer) *StoreMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &StoreMetrics{
		operations: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "storefront_operations_total",
			Help: "Total number of completed store operations",
		}, []string{"op"}),
		rejected: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "storefront_rejected_operations_total",
			Help: "Total number of store operations rejected by preconditions",
		}, []string{"reason"}),
		ordersPlaced: registerCounter(registerer, prometheus.CounterOpts{
			Name: "storefront_orders_placed_total",
			Help: "Total number of orders placed",
		}),
		orderTotal: registerHistogram(registerer, prometheus.HistogramOpts{
			Name:    "storefront_order_total",
			Help:    "Distribution of placed order totals",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
		}),
		persistFailures: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "storefront_persist_failures_total",
			Help: "Total number of best-effort persistence failures",
		}, []string{"collection"}),
		eventsPublished: registerCounter(registerer, prometheus.CounterOpts{
			Name: "storefront_events_published_total",
			Help: "Total number of order events published",
		}),
		cartItems: registerGauge(registerer, prometheus.GaugeOpts{
			Name: "storefront_cart_items",
			Help: "Number of distinct items currently in the cart",
		}),
	}
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerGauge(registerer prometheus.Registerer, opts prometheus.GaugeOpts) prometheus.Gauge {
	collector := prometheus.NewGauge(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Gauge)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register gauge %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogram(registerer prometheus.Registerer, opts prometheus.HistogramOpts) prometheus.Histogram {
	collector := prometheus.NewHistogram(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Histogram)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram %q: %v", opts.Name, err))
	}
	return collector
}

// RecordOperation увеличивает счётчик завершённых операций.
func (m *StoreMetrics) RecordOperation(op string) {
	m.operations.WithLabelValues(op).Inc()
}

// RecordRejected увеличивает счётчик отклонённых операций.
func (m *StoreMetrics) RecordRejected(reason string) {
	m.rejected.WithLabelValues(reason).Inc()
}

// RecordOrderPlaced фиксирует размещённый заказ и его итог.
func (m *StoreMetrics) RecordOrderPlaced(total float64) {
	m.ordersPlaced.Inc()
	m.orderTotal.Observe(total)
}

// RecordPersistFailure увеличивает счётчик неудачных записей в хранилище.
func (m *StoreMetrics) RecordPersistFailure(collection string) {
	m.persistFailures.WithLabelValues(collection).Inc()
}

// RecordEventPublished увеличивает счётчик опубликованных событий.
func (m *StoreMetrics) RecordEventPublished() {
	m.eventsPublished.Inc()
}

// SetCartItems обновляет текущее количество позиций в корзине.
func (m *StoreMetrics) SetCartItems(n int) {
	m.cartItems.Set(float64(n))
}
