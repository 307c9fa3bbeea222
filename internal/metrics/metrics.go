package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ReviewsSubmitted は提出された審査の件数（トラック・判定別）
	ReviewsSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reviews_submitted_total",
		Help: "Total number of submitted reviews, by track and decision.",
	}, []string{"track", "decision"})

	// EventsPublished は発行された通知イベントの件数（ルーティングキー別）
	EventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "events_published_total",
		Help: "Total number of published notification events, by routing key.",
	}, []string{"routing_key"})
)
