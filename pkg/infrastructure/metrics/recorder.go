// Package metrics exposes shop activity as prometheus metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/arashoo/Katena-project-management/pkg/domain/entities"
)

const namespace = "katena"

// Recorder holds the shop metrics on a private registry.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	registry *prometheus.Registry

	ordersCreated    prometheus.Counter
	orderTransitions *prometheus.CounterVec
	ordersDeleted    prometheus.Counter
	ordersByStatus   *prometheus.GaugeVec
	deliveries       *prometheus.CounterVec
	deliveredUnits   *prometheus.CounterVec
	shortageChecks   *prometheus.CounterVec
	lowStockItems    *prometheus.GaugeVec
}

// NewRecorder creates a recorder with go runtime collectors registered
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		ordersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_created_total",
			Help:      "Orders raised from requirement shortages.",
		}),
		orderTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_transitions_total",
			Help:      "Order status transitions by target status.",
		}, []string{"to"}),
		ordersDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_deleted_total",
			Help:      "Orders deleted from the board.",
		}),
		ordersByStatus: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "orders",
			Help:      "Orders currently in each status.",
		}, []string{"status"}),
		deliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deliveries_total",
			Help:      "Deliveries booked into inventory, by category and outcome.",
		}, []string{"category", "outcome"}),
		deliveredUnits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "delivered_units_total",
			Help:      "Units booked into inventory by deliveries.",
		}, []string{"category"}),
		shortageChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "availability_checks_total",
			Help:      "Availability checks by result.",
		}, []string{"result"}),
		lowStockItems: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "low_stock_items",
			Help:      "Inventory records under their low stock threshold.",
		}, []string{"category"}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.ordersCreated,
		r.orderTransitions,
		r.ordersDeleted,
		r.ordersByStatus,
		r.deliveries,
		r.deliveredUnits,
		r.shortageChecks,
		r.lowStockItems,
	)
	return r
}

// Registry returns the private registry
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the prometheus exposition format
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

func (r *Recorder) OrderCreated() {
	if r == nil {
		return
	}
	r.ordersCreated.Inc()
}

func (r *Recorder) OrderTransitioned(to entities.OrderStatus) {
	if r == nil {
		return
	}
	r.orderTransitions.WithLabelValues(string(to)).Inc()
}

func (r *Recorder) OrderDeleted() {
	if r == nil {
		return
	}
	r.ordersDeleted.Inc()
}

// SetOrderCounts replaces the per-status gauge values
func (r *Recorder) SetOrderCounts(counts map[entities.OrderStatus]int) {
	if r == nil {
		return
	}
	for _, status := range entities.OrderStatuses {
		r.ordersByStatus.WithLabelValues(string(status)).Set(float64(counts[status]))
	}
}

// DeliveryReceived records one booked delivery
func (r *Recorder) DeliveryReceived(category entities.Category, quantity entities.Quantity, created bool) {
	if r == nil {
		return
	}
	outcome := "incremented"
	if created {
		outcome = "created"
	}
	r.deliveries.WithLabelValues(string(category), outcome).Inc()
	r.deliveredUnits.WithLabelValues(string(category)).Add(float64(quantity))
}

func (r *Recorder) AvailabilityChecked(sufficient bool) {
	if r == nil {
		return
	}
	result := "short"
	if sufficient {
		result = "sufficient"
	}
	r.shortageChecks.WithLabelValues(result).Inc()
}

// SetLowStock replaces the per-category low stock gauge values
func (r *Recorder) SetLowStock(items []entities.InventoryItem) {
	if r == nil {
		return
	}
	counts := make(map[entities.Category]int)
	for _, item := range items {
		counts[item.Category()]++
	}
	for _, category := range entities.Categories {
		r.lowStockItems.WithLabelValues(string(category)).Set(float64(counts[category]))
	}
}
