// Package inspector serves a read-only HTTP view of a registry:
//
//	GET /healthz                    → {"data": {"status": "ok"}}
//	GET /registrations              → {"data": [RegistrationInfo...]}
//	GET /registrations/{contract}   → {"data": RegistrationInfo} or 404
//	GET /metrics                    → Prometheus exposition (when enabled)
package inspector

import (
	"net/http"
	"net/url"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/km-arc/go-divendor/framework/container"
	gohttp "github.com/km-arc/go-divendor/framework/http"
	"github.com/km-arc/go-divendor/framework/routing"
)

// Options configures the inspector routes.
type Options struct {
	// Gatherer, when set, is served at /metrics.
	Gatherer prometheus.Gatherer
	Log      logrus.FieldLogger
}

// New builds the inspector router for r.
func New(r *container.Registry, opts Options) *routing.Router {
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	router := routing.New(log)
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		gohttp.NewResponse(w).Success(map[string]string{"status": "ok"})
	})

	router.Prefix("/registrations", func(api *routing.Router) {
		api.Get("/", func(w http.ResponseWriter, _ *http.Request) {
			gohttp.NewResponse(w).Success(r.Registrations())
		})
		api.Get("/{contract}", func(w http.ResponseWriter, req *http.Request) {
			res := gohttp.NewResponse(w)
			name, err := url.PathUnescape(routing.Param(req, "contract"))
			if err != nil {
				res.Error(http.StatusBadRequest, "malformed contract name")
				return
			}
			info, ok := r.Lookup(name)
			if !ok {
				res.NotFound("no registration for " + name)
				return
			}
			res.Success(info)
		})
	})

	if opts.Gatherer != nil {
		router.Handle("/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}
	return router
}
