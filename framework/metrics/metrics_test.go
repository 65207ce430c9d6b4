package metrics

import (
	"io"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-divendor/framework/container"
)

type widget struct{ _ byte }

func newWidget() *widget { return &widget{} }

type gadget struct{ w *widget }

func newGadget(w *widget) *gadget { return &gadget{w: w} }

func TestCollector_CountsRegistryActivity(t *testing.T) {
	m := New("test")
	log := logrus.New()
	log.SetOutput(io.Discard)
	r := container.New(container.WithObserver(m), container.WithLogger(log))

	require.NoError(t, container.RegisterSelf(r, newWidget))
	require.NoError(t, container.RegisterSelf(r, newGadget, container.AsTransient()))

	container.MustProcure[*gadget](r)
	container.MustProcure[*gadget](r)
	_, err := container.Procure[io.Reader](r)
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.registrations.WithLabelValues("*metrics.widget", "singleton")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.registrations.WithLabelValues("*metrics.gadget", "transient")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.constructions.WithLabelValues("*metrics.widget", "ok")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.constructions.WithLabelValues("*metrics.gadget", "ok")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.procurements.WithLabelValues("*metrics.gadget", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.procurements.WithLabelValues("io.Reader", "unregistered")))
}

func TestCollector_Register(t *testing.T) {
	m := New("test")
	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(m))

	m.Registered(container.RegistrationInfo{Contract: "c", Lifetime: container.Singleton})
	n, err := testutil.GatherAndCount(reg, "test_registrations_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
