package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	FeedQueries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hoje_e_onde_feed_queries_total",
		Help: "Home feed queries served, including degraded empty results.",
	})

	VotesCast = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hoje_e_onde_votes_total",
		Help: "Vote submissions by outcome.",
	}, []string{"result"})

	EventsSaved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hoje_e_onde_saved_events_total",
		Help: "Events added to personal lists.",
	})
)

func Handler() http.Handler {
	return promhttp.Handler()
}
