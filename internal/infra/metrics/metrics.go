package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MutationsTotal counts committed mutations per category and action.
	MutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "depot_mutations_total",
		Help: "Committed stock mutations by category and action.",
	}, []string{"category", "action"})

	FuelConsumptionRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "depot_fuel_consumption_rejected_total",
		Help: "Consumption requests rejected for insufficient tank balance.",
	})

	LowStockItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "depot_low_stock_items",
		Help: "Items at or below their alert threshold, as of the last sweep.",
	})
)
