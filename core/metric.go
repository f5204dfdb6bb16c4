package core

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/stakewire/stakewire/staking/registry"
)

func init() {
	prometheus.MustRegister(
		takeDecreasedCounter,
		takeRejectedCounterVec,
	)
}

var (
	takeDecreasedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "swr",
			Subsystem: "takes",
			Name:      "decreased",
			Help:      "number of successful take decreases",
		},
	)

	takeRejectedCounterVec = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "swr",
			Subsystem: "takes",
			Name:      "rejected",
			Help:      "take mutations failed validation",
		},
		[]string{"err"},
	)
)

func countTakeRejection(err error) {
	takeRejectedCounterVec.With(prometheus.Labels{"err": rejectionKind(err)}).Inc()
}

func rejectionKind(err error) string {
	switch {
	case errors.Is(err, registry.ErrNotRegistered):
		return "not_registered"
	case errors.Is(err, registry.ErrNonAssociatedColdKey):
		return "non_associated_coldkey"
	case errors.Is(err, ErrTakeNotDecreasing):
		return "take_not_decreasing"
	case errors.Is(err, ErrTakeBelowMinimum):
		return "take_below_minimum"
	default:
		return "other"
	}
}
