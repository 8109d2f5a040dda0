package metrics

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// ScopeName is the instrumentation scope of the service meter.
const ScopeName = "github.com/dtroode/auth-service"

// Provider is an SDK meter provider whose readings are served in the
// Prometheus exposition format.
type Provider struct {
	provider *sdkmetric.MeterProvider
	registry *prometheus.Registry
}

// NewProvider creates a meter provider backed by a dedicated Prometheus registry.
func NewProvider() (*Provider, error) {
	registry := prometheus.NewRegistry()

	exporter, err := otelprom.New(otelprom.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	return &Provider{
		provider: sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter)),
		registry: registry,
	}, nil
}

// MeterProvider returns the underlying provider for otel.SetMeterProvider.
func (p *Provider) MeterProvider() metric.MeterProvider {
	return p.provider
}

func (p *Provider) Meter() metric.Meter {
	return p.provider.Meter(ScopeName)
}

// Handler serves the registry for scraping.
func (p *Provider) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

// Shutdown flushes and stops the provider. Recording after Shutdown is a no-op.
func (p *Provider) Shutdown(ctx context.Context) error {
	if err := p.provider.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down meter provider: %w", err)
	}
	return nil
}
