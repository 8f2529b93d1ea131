package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RequestCounter counts served requests by route and method.
type RequestCounter struct {
	requests *prometheus.CounterVec
}

// NewRequestCounter registers the "requests" counter on reg.
func NewRequestCounter(reg prometheus.Registerer) *RequestCounter {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "requests",
		Help: "Amount of requests.",
	}, []string{"endpoint", "http_verb"})
	reg.MustRegister(requests)
	return &RequestCounter{requests: requests}
}

// Middleware increments the counter once the rest of the chain has run.
// The endpoint label is the route pattern, so path parameters do not explode cardinality.
func (rc *RequestCounter) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		rc.requests.WithLabelValues(c.Route().Path, c.Method()).Inc()
		return err
	}
}

// Counter returns the counter for endpoint and verb.
func (rc *RequestCounter) Counter(endpoint, verb string) prometheus.Counter {
	return rc.requests.WithLabelValues(endpoint, verb)
}

// NewExpositionApp serves the metrics gathered by g under /metrics.
func NewExpositionApp(g prometheus.Gatherer) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(g, promhttp.HandlerOpts{})))
	return app
}
