package service

import (
	"github.com/okian/podium/internal/adapters/repository"
	"github.com/okian/podium/internal/domain/features"
	"github.com/okian/podium/pkg/logger"
	"github.com/okian/podium/pkg/metrics"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithSource sets where appearances are read from.
func WithSource(src repository.Source) Option {
	return func(s *Service) {
		if src != nil {
			s.source = src
		}
	}
}

// WithSink sets where the feature table is written.
func WithSink(sink repository.Sink) Option {
	return func(s *Service) {
		if sink != nil {
			s.sink = sink
		}
	}
}

// WithCalculatorOptions passes options through to the feature calculator.
func WithCalculatorOptions(opts ...features.Option) Option {
	return func(s *Service) {
		s.calcOpts = append(s.calcOpts, opts...)
	}
}

// WithRunID overrides the generated run identifier.
func WithRunID(id string) Option {
	return func(s *Service) {
		if id != "" {
			s.runID = id
		}
	}
}

// WithMetricsFile sets the Prometheus textfile written after a successful run.
func WithMetricsFile(path string) Option {
	return func(s *Service) {
		s.metricsFile = path
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics sets the metrics manager; the global one is used otherwise.
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}
