package rxlite

import (
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// config holds the ambient (non-protocol) settings a Subject family
// member carries: where it logs internal bookkeeping, and which meter it
// instruments itself with. Shape mirrors
// TundraWork-Ex-Otogi/internal/kernel/options.go's Option/config pair.
type config struct {
	logger *slog.Logger
	meter  metric.Meter
}

// Option mutates Subject construction configuration.
type Option func(*config)

// WithLogger configures the *slog.Logger a Subject uses for internal
// diagnostics (pruning skipped under lock contention, latch transitions).
// It is never used on a path that can affect Observer delivery — see
// SPEC_FULL.md §2.1.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMeter configures the OpenTelemetry metric.Meter a Subject
// instruments itself with (see SPEC_FULL.md §2.2). Without this option,
// a no-op meter backs every instrument, so instrumentation always exists
// but costs nothing observable by default.
func WithMeter(meter metric.Meter) Option {
	return func(c *config) {
		if meter != nil {
			c.meter = meter
		}
	}
}

func defaultConfig() config {
	return config{
		logger: slog.Default(),
		meter:  noop.NewMeterProvider().Meter("rxlite"),
	}
}

func resolveConfig(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// subjectInstruments are the three ambient counters every Subject family
// member records into, named in SPEC_FULL.md §2.2.
type subjectInstruments struct {
	broadcasts   metric.Int64Counter
	subscribers  metric.Int64UpDownCounter
	terminations metric.Int64Counter
}

func newSubjectInstruments(meter metric.Meter) subjectInstruments {
	broadcasts, _ := meter.Int64Counter("subject.broadcasts",
		metric.WithDescription("Next calls that reached the open branch of a Subject's latch"))
	subscribers, _ := meter.Int64UpDownCounter("subject.subscribers",
		metric.WithDescription("currently live subscribers across Subject family instances"))
	terminations, _ := meter.Int64Counter("subject.terminations",
		metric.WithDescription("terminal latch transitions, by reason"))
	return subjectInstruments{broadcasts: broadcasts, subscribers: subscribers, terminations: terminations}
}

// terminationReasonAttr tags a subject.terminations increment with why
// the latch transitioned, so the two causes are distinguishable on a
// dashboard without two separate instruments.
func terminationReasonAttr(reason string) metric.AddOption {
	return metric.WithAttributes(attribute.String("reason", reason))
}
