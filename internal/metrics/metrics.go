package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FramesProcessed counts processed OCPP-J frames, labeled by direction and outcome.
	FramesProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "codec_frames_processed_total",
		Help: "Total number of OCPP-J frames processed.",
	}, []string{"direction", "outcome"})

	// DecodeFailures counts decode failures, labeled by action and failure kind.
	DecodeFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "codec_decode_failures_total",
		Help: "Total number of wire records that failed to decode.",
	}, []string{"action", "kind"})

	// RoundTripMismatches counts re-encoded payloads that differ from the input, labeled by action.
	RoundTripMismatches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "codec_roundtrip_mismatches_total",
		Help: "Total number of payloads whose re-encoding differs from the original.",
	}, []string{"action"})

	// FrameProcessingDuration observes per-frame processing time, labeled by action.
	FrameProcessingDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "codec_frame_processing_duration_seconds",
		Help:    "Histogram of per-frame decode/encode round-trip times.",
		Buckets: prometheus.ExponentialBuckets(0.00001, 2, 12),
	}, []string{"action"})
)

// RegisterMetrics registers all the defined Prometheus metrics.
// With promauto, registration is automatic; this is kept as an explicit
// startup hook point.
func RegisterMetrics() {}
