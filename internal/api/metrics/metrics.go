// Package metrics defines and registers the custom Prometheus metrics for
// the directory API. It is the single source of truth for metric names,
// labels, and help strings; metrics register with the default registry at
// package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "directory"

// BusinessesCreatedTotal counts newly created listings by category.
var BusinessesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "businesses_created_total",
		Help:      "Total number of business listings created, by category.",
	},
	[]string{"category"},
)

// BusinessViewsTotal counts single-listing reads by category. This tracks
// served responses, not the stored per-listing counter.
var BusinessViewsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "business_views_total",
		Help:      "Total number of single-listing reads served, by category.",
	},
	[]string{"category"},
)

// ListingQueriesTotal counts listing searches by effective sort order.
var ListingQueriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listing_queries_total",
		Help:      "Total number of listing queries served, by sort order.",
	},
	[]string{"sort"},
)

// ListingCacheTotal counts listing cache lookups.
// Label:
//   - result: "hit" or "miss"
var ListingCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listing_cache_total",
		Help:      "Total number of listing cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// FavoriteMutationsTotal counts favorite adds and removes.
// Label:
//   - action: "add" or "remove"
var FavoriteMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "favorite_mutations_total",
		Help:      "Total number of favorite mutations, by action.",
	},
	[]string{"action"},
)

// ViewEventsQueueDepth tracks the number of view events waiting in each
// dispatcher worker channel.
var ViewEventsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "view_events_queue_depth",
		Help:      "Current number of view events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
