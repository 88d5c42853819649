package profiler

import (
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ProfilerBuilderOption is a functional option for configuring a Profiler.
type ProfilerBuilderOption func(*Profiler)

// WithLogger sets the logger statistics are written to.
func WithLogger(log zerolog.Logger) ProfilerBuilderOption {
	return func(p *Profiler) {
		p.log = log
	}
}

// WithMeter sets the meter instruments are created on.
func WithMeter(m metric.Meter) ProfilerBuilderOption {
	return func(p *Profiler) {
		p.meter = m
	}
}

// WithInterval sets how often statistics are logged.
// Values <= 0 are ignored.
func WithInterval(d time.Duration) ProfilerBuilderOption {
	return func(p *Profiler) {
		if d > 0 {
			p.updateInterval = d
		}
	}
}

// WithScene tags every measurement with the scene name.
func WithScene(name string) ProfilerBuilderOption {
	return func(p *Profiler) {
		p.attrs = metric.WithAttributes(attribute.String("scene", name))
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) ProfilerBuilderOption {
	return func(p *Profiler) {
		p.now = now
	}
}
