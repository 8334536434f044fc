package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "foodgram_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodgram_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	ShoppingListsRendered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodgram_shopping_lists_rendered_total",
			Help: "Shopping list documents rendered, by format and outcome",
		},
		[]string{"format", "outcome"},
	)

	ShoppingListItems = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "foodgram_shopping_list_items",
			Help:    "Number of aggregated items per rendered shopping list",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
		},
	)

	MembershipChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodgram_membership_changes_total",
			Help: "Cart and favorite list changes",
		},
		[]string{"list", "action"}, // action: added, already_present, removed
	)

	IngredientsImported = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "foodgram_ingredients_imported_total",
			Help: "Ingredients inserted by the bulk importer",
		},
	)
)

func RecordAPIRequest(method, route string, status int, duration time.Duration) {
	code := strconv.Itoa(status)
	APIRequestDuration.WithLabelValues(method, route, code).Observe(duration.Seconds())
	APIRequestsTotal.WithLabelValues(method, route, code).Inc()
}

func RecordShoppingList(format string, items int, err error) {
	if err != nil {
		ShoppingListsRendered.WithLabelValues(format, "error").Inc()
		return
	}
	ShoppingListsRendered.WithLabelValues(format, "ok").Inc()
	ShoppingListItems.Observe(float64(items))
}

func RecordMembershipChange(list, action string) {
	MembershipChanges.WithLabelValues(list, action).Inc()
}
