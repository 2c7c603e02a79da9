package session

import "github.com/prometheus/client_golang/prometheus"

var (
	sessionsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "game_sessions_created_total",
			Help: "Sessions created, by game kind",
		},
		[]string{"kind"},
	)
	answersSubmitted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "game_answers_submitted_total",
			Help: "Answers accepted by the coordinator",
		},
	)
	sessionsCompleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "game_sessions_completed_total",
			Help: "Sessions that reached completed status",
		},
	)
	ratingsSubmitted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "game_ratings_submitted_total",
			Help: "Ratings accepted after completion",
		},
	)
)

func init() {
	prometheus.MustRegister(sessionsCreated)
	prometheus.MustRegister(answersSubmitted)
	prometheus.MustRegister(sessionsCompleted)
	prometheus.MustRegister(ratingsSubmitted)
}
