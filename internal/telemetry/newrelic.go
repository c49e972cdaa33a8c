package telemetry

import (
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/Maaz-R-Khan/truck-logistics-app/config"
)

// InitNewRelic initializes the New Relic application. Disabled or
// unconfigured telemetry yields a nil application, which callers treat as
// "skip instrumentation"; calling this again with telemetry disabled is a
// harmless no-op.
func InitNewRelic(cfg config.NewRelicConfig) (*newrelic.Application, error) {
	if !cfg.Enabled || cfg.LicenseKey == "" {
		return nil, nil
	}

	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.AppName),
		newrelic.ConfigLicense(cfg.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(true),
		newrelic.ConfigAppLogForwardingEnabled(true),
	)
	if err != nil {
		return nil, err
	}

	// Wait for the application to connect
	if err := app.WaitForConnection(5 * time.Second); err != nil {
		return nil, err
	}

	return app, nil
}
