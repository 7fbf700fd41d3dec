package valid

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// constructionsTotal is a Prometheus counter that tracks domain-primitive
// construction attempts going through New.
//
// Labels:
//   - raw_type: the Go type of the raw value being validated (e.g. "string",
//     "int"). Useful for spotting which primitives dominate validation volume.
//   - valid: "true" if every rule passed and a value was produced, "false" if
//     a rule rejected the input. The false rate per raw_type is the interesting
//     signal: a spike usually means a caller started feeding unclean input.
//
// The counter increments once per New call, regardless of outcome.
//
// The nolint:gochecknoglobals directive is used because Prometheus metrics are
// intentionally global by design - they need to be registered once and accessed
// throughout the application lifecycle for consistent metric collection.
var constructionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
	Name: "domain_value_constructions_total",
	Help: "The total number of domain-primitive construction attempts",
}, []string{"raw_type", "valid"})

func recordConstruction(raw any, valid bool) {
	constructionsTotal.WithLabelValues(
		fmt.Sprintf("%T", raw),
		fmt.Sprintf("%t", valid),
	).Inc()
}
