package telemetry

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// FramesRead counts records read from capture files
	FramesRead = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wmap",
			Name:      "frames_read_total",
			Help:      "Total number of frames read from capture sources",
		},
		[]string{"link_type"},
	)

	// FramesDecoded counts frames whose outer layer decoded successfully
	FramesDecoded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wmap",
			Name:      "frames_decoded_total",
			Help:      "Total number of frames decoded",
		},
		[]string{"layer", "kind"},
	)

	// DecodeErrors counts frames rejected by a decoder
	DecodeErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wmap",
			Name:      "decode_errors_total",
			Help:      "Total number of frames that failed to decode",
		},
		[]string{"layer", "reason"},
	)

	// TagsDecoded counts information elements by tag name
	TagsDecoded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wmap",
			Name:      "tags_decoded_total",
			Help:      "Total number of tagged parameters decoded from management frames",
		},
		[]string{"tag"},
	)

	// Ensure metrics are only registered once
	once sync.Once
)

// InitMetrics registers all metrics with the global Prometheus registry
// This function is idempotent and can be called multiple times safely
func InitMetrics() {
	once.Do(func() {
		prometheus.DefaultRegisterer.Register(FramesRead)
		prometheus.DefaultRegisterer.Register(FramesDecoded)
		prometheus.DefaultRegisterer.Register(DecodeErrors)
		prometheus.DefaultRegisterer.Register(TagsDecoded)
	})
}
