package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/km-arc/go-divendor/framework/config"
	"github.com/km-arc/go-divendor/framework/container"
	"github.com/km-arc/go-divendor/framework/inspector"
	"github.com/km-arc/go-divendor/framework/metrics"
	"github.com/km-arc/go-divendor/framework/providers"
)

// defaultShutdownSeconds applies when APP_SHUTDOWN_TIMEOUT is unset.
const defaultShutdownSeconds = 5

// Application is the top-level registry plus everything around it.
// It embeds the Registry so user code can call container.Register(app.Registry, ...)
// and container.Procure[T](app.Registry) directly.
type Application struct {
	*container.Registry
	Providers *container.ProviderRegistry
	Config    *config.Config
	Log       *logrus.Logger

	gatherer *prometheus.Registry
}

// New creates the application from cfg and registers the framework core
// providers. A nil cfg is loaded from the environment.
func New(cfg *config.Config) (*Application, error) {
	if cfg == nil {
		cfg = config.Load()
	}
	log := cfg.Logger()

	opts := []container.RegistryOption{container.WithLogger(log)}
	gatherer := prometheus.NewRegistry()
	if cfg.Metrics.Enabled {
		collector := metrics.New(cfg.Metrics.Namespace)
		if err := gatherer.Register(collector); err != nil {
			return nil, err
		}
		opts = append(opts, container.WithObserver(collector))
	}

	r := container.New(opts...)
	a := &Application{
		Registry:  r,
		Providers: container.NewProviderRegistry(r),
		Config:    cfg,
		Log:       log,
		gatherer:  gatherer,
	}

	// Register framework core providers
	if err := a.Register(&providers.ConfigServiceProvider{Config: cfg, Log: log}); err != nil {
		return nil, err
	}
	if err := a.Register(&providers.MetricsServiceProvider{Registry: gatherer}); err != nil {
		return nil, err
	}
	return a, nil
}

// Register adds a ServiceProvider to the application.
func (a *Application) Register(provider container.ServiceProvider) error {
	return a.Providers.Register(provider)
}

// Boot runs the Boot phase on all providers.
func (a *Application) Boot() error {
	return a.Providers.Boot()
}

// Handler returns the inspector for this application's registry.
func (a *Application) Handler() http.Handler {
	opts := inspector.Options{Log: a.Log}
	if a.Config.Metrics.Enabled {
		opts.Gatherer = a.gatherer
	}
	return inspector.New(a.Registry, opts)
}

// Run boots the application (if needed) and serves the inspector on
// Config.Inspector.Addr until ctx is cancelled. With the inspector disabled
// it only holds the booted registry until ctx is cancelled.
func (a *Application) Run(ctx context.Context) error {
	if !a.Providers.Booted() {
		if err := a.Boot(); err != nil {
			return err
		}
	}

	if !a.Config.Inspector.Enabled {
		a.Log.WithField("app", a.Config.App.Name).Info("inspector disabled")
		<-ctx.Done()
		return nil
	}

	srv := &http.Server{
		Addr:              a.Config.Inspector.Addr,
		Handler:           a.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		a.Log.WithFields(logrus.Fields{
			"app":  a.Config.App.Name,
			"addr": srv.Addr,
			"env":  a.Config.App.Env,
		}).Info("inspector listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	timeout := time.Duration(config.GetInt("APP_SHUTDOWN_TIMEOUT", defaultShutdownSeconds)) * time.Second
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Environment returns APP_ENV value.
func (a *Application) Environment() string { return a.Config.App.Env }
func (a *Application) IsLocal() bool       { return a.Environment() == "local" }
func (a *Application) IsProduction() bool  { return a.Environment() == "production" }
func (a *Application) IsTesting() bool     { return a.Environment() == "testing" }
func (a *Application) IsDebug() bool       { return a.Config.App.Debug }
