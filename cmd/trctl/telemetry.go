package main

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/kbukum/testrail/logger"
	"github.com/kbukum/testrail/observability"
	"github.com/kbukum/testrail/version"
)

const telemetryShutdownTimeout = 5 * time.Second

// startTelemetry installs OTLP tracer and meter providers exporting to
// endpoint (host:port). The returned func flushes and stops both.
func startTelemetry(ctx context.Context, endpoint string, insecure bool, logOut io.Writer) (func() error, error) {
	logCfg := &logger.Config{}
	logCfg.ApplyDefaults()
	log := logger.NewWithWriter(logCfg, appName, logOut)

	tcfg := observability.DefaultTracerConfig(appName)
	tcfg.ServiceVersion = version.Get().Version
	tcfg.Endpoint = endpoint
	tcfg.Insecure = insecure
	tp, err := observability.InitTracer(ctx, tcfg, log)
	if err != nil {
		return nil, err
	}

	mcfg := observability.DefaultMeterConfig(appName)
	mcfg.ServiceVersion = tcfg.ServiceVersion
	mcfg.Endpoint = endpoint
	mcfg.Insecure = insecure
	mp, err := observability.InitMeter(ctx, mcfg, log)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, err
	}

	return func() error {
		ctx, cancel := context.WithTimeout(context.Background(), telemetryShutdownTimeout)
		defer cancel()
		return errors.Join(tp.Shutdown(ctx), mp.Shutdown(ctx))
	}, nil
}
