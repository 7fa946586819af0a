package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "cardforge", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "cardforge", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
	// StorageOperations counts card store calls per tier; result is ok|error for
	// put and hit|miss|error for get.
	StorageOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "cardforge", Name: "storage_operations_total", Help: "Card storage operations by tier, operation and result."},
		[]string{"tier", "op", "result"},
	)
	// GenerationRequests counts generation pipeline outcomes:
	// ok|provider_error|invalid_sheet|empty_prompt.
	GenerationRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "cardforge", Name: "generation_requests_total", Help: "Sheet generation requests by outcome."},
		[]string{"result"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(StorageOperations)
	reg.MustRegister(GenerationRequests)
}
