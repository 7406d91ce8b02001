package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arashoo/Katena-project-management/pkg/domain/entities"
)

func TestRecorder_Counters(t *testing.T) {
	r := NewRecorder()

	r.OrderCreated()
	r.OrderCreated()
	r.OrderTransitioned(entities.OrderPending)
	r.OrderDeleted()
	r.DeliveryReceived(entities.CategoryGlass, 5, false)
	r.DeliveryReceived(entities.CategoryHardware, 3, true)
	r.AvailabilityChecked(false)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.ordersCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.orderTransitions.WithLabelValues("pending")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.ordersDeleted))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.deliveries.WithLabelValues("glass", "incremented")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.deliveries.WithLabelValues("hardware", "created")))
	assert.Equal(t, 5.0, testutil.ToFloat64(r.deliveredUnits.WithLabelValues("glass")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.shortageChecks.WithLabelValues("short")))
}

func TestRecorder_Gauges(t *testing.T) {
	r := NewRecorder()

	r.SetOrderCounts(map[entities.OrderStatus]int{entities.OrderBacklog: 2, entities.OrderDelivered: 1})
	r.SetLowStock([]entities.InventoryItem{{Spec: entities.HardwareSpec{ItemType: "Window Lock"}}})

	assert.Equal(t, 2.0, testutil.ToFloat64(r.ordersByStatus.WithLabelValues("backlog")))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.ordersByStatus.WithLabelValues("pending")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.lowStockItems.WithLabelValues("hardware")))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.lowStockItems.WithLabelValues("glass")))

	r.SetOrderCounts(map[entities.OrderStatus]int{})
	assert.Equal(t, 0.0, testutil.ToFloat64(r.ordersByStatus.WithLabelValues("backlog")))
}

func TestRecorder_NilIsNoop(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.OrderCreated()
		r.OrderTransitioned(entities.OrderOrdered)
		r.OrderDeleted()
		r.SetOrderCounts(nil)
		r.DeliveryReceived(entities.CategoryGlass, 1, true)
		r.AvailabilityChecked(true)
		r.SetLowStock(nil)
	})
}

func TestRecorder_Handler(t *testing.T) {
	r := NewRecorder()
	r.OrderCreated()

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "katena_orders_created_total 1"))
}
