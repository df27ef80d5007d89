package embed

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Tokenization metrics
	tokenizationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "quiver_tokenization_duration_seconds",
		Help:    "Time spent tokenizing input text",
		Buckets: prometheus.DefBuckets,
	})

	// Dictionary metrics
	lookupHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quiver_dictionary_lookup_hits_total",
		Help: "Dictionary lookups that found a vector",
	})

	lookupMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quiver_dictionary_lookup_misses_total",
		Help: "Dictionary lookups for unknown tokens",
	})

	// Index metrics
	searchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "quiver_search_duration_seconds",
		Help:    "Time spent scanning the index per query",
		Buckets: prometheus.DefBuckets,
	})

	indexSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "quiver_index_size",
		Help: "Number of vectors currently indexed",
	})
)
