// Package metrics exports registry activity as Prometheus metrics. A
// *Collector is both a container.Observer and a prometheus.Collector:
//
//	m := metrics.New("divendor")
//	prometheus.MustRegister(m)
//	r := container.New(container.WithObserver(m))
package metrics

import (
	"errors"
	"reflect"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/km-arc/go-divendor/framework/container"
)

const (
	outcomeOK           = "ok"
	outcomeError        = "error"
	outcomeUnregistered = "unregistered"
)

// Collector counts registrations, constructions and procurements.
type Collector struct {
	registrations *prometheus.CounterVec
	constructions *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	procurements  *prometheus.CounterVec
}

var _ container.Observer = (*Collector)(nil)

// New creates a Collector whose metric names start with namespace.
func New(namespace string) *Collector {
	return &Collector{
		registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registrations_total",
			Help:      "Registrations stored, by contract and lifetime.",
		}, []string{"contract", "lifetime"}),
		constructions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "constructions_total",
			Help:      "Constructor calls, by implementation and outcome.",
		}, []string{"implementation", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "construction_duration_seconds",
			Help:      "Time spent inside constructors.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}, []string{"implementation"}),
		procurements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "procurements_total",
			Help:      "Outermost Procure calls, by contract and outcome.",
		}, []string{"contract", "outcome"}),
	}
}

func (c *Collector) Registered(info container.RegistrationInfo) {
	c.registrations.WithLabelValues(info.Contract, info.Lifetime.String()).Inc()
}

func (c *Collector) Constructed(info container.RegistrationInfo, elapsed time.Duration, err error) {
	outcome := outcomeOK
	if err != nil {
		outcome = outcomeError
	}
	c.constructions.WithLabelValues(info.Implementation, outcome).Inc()
	c.duration.WithLabelValues(info.Implementation).Observe(elapsed.Seconds())
}

func (c *Collector) Procured(contract reflect.Type, err error) {
	outcome := outcomeOK
	switch {
	case errors.Is(err, container.ErrUnregisteredContract):
		outcome = outcomeUnregistered
	case err != nil:
		outcome = outcomeError
	}
	c.procurements.WithLabelValues(contract.String(), outcome).Inc()
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.registrations.Describe(ch)
	c.constructions.Describe(ch)
	c.duration.Describe(ch)
	c.procurements.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.registrations.Collect(ch)
	c.constructions.Collect(ch)
	c.duration.Collect(ch)
	c.procurements.Collect(ch)
}
