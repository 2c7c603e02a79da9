package questionbank

import "github.com/prometheus/client_golang/prometheus"

var generatorFallbacks = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "question_generator_fallbacks_total",
		Help: "Times the external question generator failed or returned nothing and the template bank was used instead",
	},
)

func init() {
	prometheus.MustRegister(generatorFallbacks)
}
