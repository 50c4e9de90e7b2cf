package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/signalsfoundry/gnss-conformance/conformance"
	"github.com/signalsfoundry/gnss-conformance/internal/config"
	"github.com/signalsfoundry/gnss-conformance/internal/logging"
	"github.com/signalsfoundry/gnss-conformance/internal/observability"
	"github.com/signalsfoundry/gnss-conformance/internal/replay"
	"github.com/signalsfoundry/gnss-conformance/report"
	"github.com/signalsfoundry/gnss-conformance/source"
	"github.com/signalsfoundry/gnss-conformance/sysprop"
)

func main() {
	log := logging.NewFromEnv()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Error(ctx, "failed to load configuration", logging.String("error", err.Error()))
		os.Exit(2)
	}

	shutdownTracing, err := observability.InitTracing(ctx, observability.TracingConfigFromEnv(), log)
	if err != nil {
		log.Error(ctx, "failed to initialise tracing", logging.String("error", err.Error()))
		os.Exit(1)
	}
	defer observability.ShutdownWithTimeout(context.Background(), shutdownTracing, log)

	collector, err := observability.NewCollector(nil)
	if err != nil {
		log.Error(ctx, "failed to initialise metrics collector", logging.String("error", err.Error()))
		os.Exit(1)
	}
	metricsSrv := serveMetrics(cfg.MetricsAddr, collector, log)

	automotive := probeDeviceProfile(ctx, cfg, log)

	opts := conformance.Options{
		CheckSpeed:          cfg.CheckSpeed,
		CheckMoreAccuracies: cfg.CheckMoreAccuracies,
	}

	store := report.NewStore()
	runID := store.StartRun(opts, automotive)
	ctx, log = logging.WithRunLogger(ctx, log, runID)

	unsubscribe := store.Subscribe(func(e report.Event) {
		if e.Type != report.EventFindingAdded {
			return
		}
		for _, v := range e.Finding.Violations {
			log.Warn(ctx, "contract violation",
				logging.String("rule", string(v.Rule)),
				logging.String("detail", v.String()),
				logging.String("record", e.Finding.Raw),
			)
		}
	})
	defer unsubscribe()

	src, closeSource, err := buildSource(cfg)
	if err != nil {
		log.Error(ctx, "failed to open record source", logging.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeSource()

	log.Info(ctx, "starting conformance run",
		logging.String("source", cfg.Source),
		logging.Any("options", opts),
		logging.Any("automotive", automotive),
	)

	runRecords(ctx, cfg, src, store, runID, collector, log)

	rep, err := store.FinishRun(runID)
	if err != nil {
		log.Error(ctx, "failed to finish run", logging.String("error", err.Error()))
		os.Exit(1)
	}

	if err := writeReport(cfg.ReportPath, rep); err != nil {
		log.Error(ctx, "failed to write report", logging.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info(ctx, "conformance run finished",
		logging.Int("records_checked", rep.RecordsChecked),
		logging.Int("records_failed", rep.RecordsFailed),
	)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if metricsSrv != nil {
		_ = metricsSrv.Shutdown(shutdownCtx)
	}

	if !rep.Passed() {
		os.Exit(1)
	}
}

// runRecords drains the source through the validator until it ends or the
// run is interrupted.
func runRecords(
	ctx context.Context,
	cfg *config.Runner,
	src source.Source,
	store *report.Store,
	runID string,
	collector *observability.Collector,
	log logging.Logger,
) {
	mode := replay.ASAP
	if cfg.ReplayMode == "timed" {
		mode = replay.Timed
	}
	pacer := replay.NewPacer(mode, cfg.ReplayRate)

	opts := conformance.Options{
		CheckSpeed:          cfg.CheckSpeed,
		CheckMoreAccuracies: cfg.CheckMoreAccuracies,
	}

	tracer := otel.Tracer("gnss-conformance/runner")
	ctx, span := tracer.Start(ctx, "conformance.run")
	defer span.End()
	span.SetAttributes(attribute.String("run_id", runID), attribute.String("source", cfg.Source))

	for {
		rec, err := src.Next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				return
			}
			log.Error(ctx, "record source failed", logging.String("error", err.Error()))
			return
		}

		if err := pacer.Wait(ctx, rec.Location.TimestampMillis); err != nil {
			return
		}

		start := time.Now()
		violations := conformance.CheckLocation(rec.Location, opts)
		collector.ObserveCheck(cfg.Source, violations, time.Since(start))

		if err := store.AddResult(runID, rec.Raw, violations); err != nil {
			log.Error(ctx, "failed to record result", logging.String("error", err.Error()))
			return
		}
	}
}

func buildSource(cfg *config.Runner) (source.Source, func(), error) {
	noop := func() {}

	switch cfg.Source {
	case "stdin":
		return source.NewJSONL(os.Stdin), noop, nil

	case "jsonl":
		f, err := os.Open(cfg.InputPath)
		if err != nil {
			return nil, nil, err
		}
		return source.NewJSONL(f), func() { f.Close() }, nil

	case "nmea":
		if cfg.InputPath == "" {
			return source.NewNMEA(os.Stdin), noop, nil
		}
		f, err := os.Open(cfg.InputPath)
		if err != nil {
			return nil, nil, err
		}
		return source.NewNMEA(f), func() { f.Close() }, nil

	case "mqtt":
		src, err := source.NewMQTT(source.MQTTConfig{
			Broker:   cfg.MQTTBroker,
			ClientID: cfg.MQTTClientID,
			Topic:    cfg.MQTTTopic,
			QoS:      cfg.MQTTQoS,
		})
		if err != nil {
			return nil, nil, err
		}
		return src, src.Close, nil
	}

	// config.Load validates Source; this is unreachable.
	return nil, nil, errors.New("unknown source " + cfg.Source)
}

func probeDeviceProfile(ctx context.Context, cfg *config.Runner, log logging.Logger) bool {
	if cfg.PropertyFile == "" {
		return false
	}
	props, err := sysprop.FromFile(cfg.PropertyFile)
	if err != nil {
		log.Warn(ctx, "failed to read property file; assuming non-automotive",
			logging.String("path", cfg.PropertyFile),
			logging.String("error", err.Error()),
		)
		return false
	}
	return sysprop.IsAutomotive(props)
}

func writeReport(path string, rep report.Report) error {
	if path == "-" {
		return rep.WriteJSON(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return rep.WriteJSON(f)
}

func serveMetrics(addr string, collector *observability.Collector, log logging.Logger) *http.Server {
	if collector == nil {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())

	srv := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Warn(context.Background(), "metrics server exited", logging.String("error", err.Error()))
		}
	}()

	log.Info(context.Background(), "serving Prometheus metrics", logging.String("addr", addr))
	return srv
}
