package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Wizard submissions partitioned by outcome
	submissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campaign_submissions_total",
			Help: "Campaign wizard submissions by outcome",
		},
		[]string{"outcome"},
	)

	// Stored lifecycle transitions
	transitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campaign_status_transitions_total",
			Help: "Campaign status changes stored, by source and target status",
		},
		[]string{"from", "to"},
	)

	expiredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "campaigns_expired_total",
			Help: "Campaigns ended because their end date passed",
		},
	)
)
