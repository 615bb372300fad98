package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	contentMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_content_mutations_total",
			Help: "Total number of content mutations",
		},
		[]string{"section", "action", "status"},
	)

	aggregationFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_aggregation_fallbacks_total",
			Help: "Total number of reads served from built-in content",
		},
		[]string{"section", "reason"},
	)

	imageResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_image_resolutions_total",
			Help: "Image fields resolved by source",
		},
		[]string{"field", "source"},
	)

	summaryRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_summary_requests_total",
			Help: "Total number of project summary generations",
		},
		[]string{"status"},
	)

	loginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_admin_login_attempts_total",
			Help: "Total number of admin login attempts",
		},
		[]string{"status"},
	)
)
