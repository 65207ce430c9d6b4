package providers

import (
	"reflect"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/km-arc/go-divendor/framework/config"
	"github.com/km-arc/go-divendor/framework/container"
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider makes the configuration and the logger injectable.
//
// Registered contracts:
//   - *config.Config
//   - logrus.FieldLogger
type ConfigServiceProvider struct {
	container.BaseProvider
	Config *config.Config
	Log    logrus.FieldLogger
}

func (p *ConfigServiceProvider) Register(r *container.Registry) error {
	container.RegisterInstance(r, p.Config)
	container.RegisterInstance(r, p.Log)
	return nil
}

// ── MetricsServiceProvider ────────────────────────────────────────────────────

// MetricsServiceProvider exposes the application's Prometheus registry to
// constructors that want to register their own metrics. It is deferred:
// nothing is registered until one of its contracts is procured.
//
// Registered contracts:
//   - prometheus.Registerer
//   - prometheus.Gatherer
type MetricsServiceProvider struct {
	container.BaseProvider
	Registry *prometheus.Registry
}

func (p *MetricsServiceProvider) Register(r *container.Registry) error {
	container.RegisterInstance[prometheus.Registerer](r, p.Registry)
	container.RegisterInstance[prometheus.Gatherer](r, p.Registry)
	return nil
}

func (p *MetricsServiceProvider) IsDeferred() bool { return true }

func (p *MetricsServiceProvider) Provides() []reflect.Type {
	return []reflect.Type{
		container.Contract[prometheus.Registerer](),
		container.Contract[prometheus.Gatherer](),
	}
}
