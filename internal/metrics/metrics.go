package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roomrelay_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// Session metrics
	ConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "roomrelay_connections_active",
			Help: "Currently registered WebSocket sessions",
		},
	)

	RoomsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "roomrelay_rooms_active",
			Help: "Rooms currently held in the registry",
		},
	)

	// Business metrics
	CommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roomrelay_commands_total",
			Help: "Inbound commands processed, by kind and outcome",
		},
		[]string{"command", "outcome"},
	)

	RelayedBytes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roomrelay_relayed_bytes_total",
			Help: "Payload bytes accepted for relay",
		},
		[]string{"kind"}, // "audio" or "text"
	)

	DroppedEvents = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "roomrelay_dropped_events_total",
			Help: "Outbound events dropped because a session buffer was full",
		},
	)

	RateLimitHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "roomrelay_rate_limit_hits_total",
			Help: "Inbound frames rejected by the per-connection rate limiter",
		},
	)
)
