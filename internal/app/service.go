// Package service runs the feature batch: load the record store, derive the
// feature table and persist it.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/okian/podium/internal/adapters/repository"
	"github.com/okian/podium/internal/domain/features"
	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/pkg/logger"
	"github.com/okian/podium/pkg/metrics"
)

// Run stages reported to metrics on failure.
const (
	stageLoad    = "load"
	stageWrite   = "write"
	stageMetrics = "metrics"
)

// Service runs one batch end to end. Not safe for concurrent use.
type Service struct {
	source   repository.Source
	sink     repository.Sink
	calcOpts []features.Option

	runID       string
	metricsFile string

	logger  logger.Logger
	metrics *metrics.Manager
}

// Summary describes a completed run.
type Summary struct {
	RunID        string
	InputRows    int
	InvalidYears int
	MissingNOC   int
	FeatureRows  int
	Fallbacks    int
	Format       string
	Elapsed      time.Duration
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		runID: uuid.NewString(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// RunID returns the identifier attached to every log line of the run.
func (s *Service) RunID() string { return s.runID }

// Run loads the input, computes every feature and writes the table. It fails
// only when the input cannot be read or the output cannot be written.
func (s *Service) Run(ctx context.Context) (Summary, error) {
	if s.source == nil {
		return Summary{}, ErrNoSource
	}
	if s.sink == nil {
		return Summary{}, ErrNoSink
	}
	if s.logger == nil {
		s.logger = logger.Named("pipeline")
	}
	if s.metrics == nil {
		s.metrics = metrics.Global()
	}

	log := s.logger.With(logger.String("run_id", s.runID))
	start := time.Now()
	sum := Summary{RunID: s.runID, Format: s.sink.Format()}

	log.Info(ctx, "loading appearances")
	apps, profile, err := s.source.Load(ctx)
	if err != nil {
		s.metrics.RecordRunError(stageLoad)
		log.Error(ctx, "load failed", logger.Error(err))
		return sum, fmt.Errorf("%w: %w", ErrRun, err)
	}
	s.metrics.RecordInput(profile.Rows, profile.InvalidYears, profile.HostRows, time.Since(start))
	s.logProfile(ctx, log, profile)

	sum.InputRows = profile.Rows
	sum.InvalidYears = profile.InvalidYears
	sum.MissingNOC = profile.MissingNOC

	opts := append([]features.Option{}, s.calcOpts...)
	opts = append(opts,
		features.WithPassObserver(func(ctx context.Context, pass string, elapsed time.Duration, produced int) {
			s.metrics.RecordPass(pass, elapsed, produced)
			log.Debug(ctx, "pass finished",
				logger.String("pass", pass),
				logger.Duration("elapsed", elapsed),
				logger.Int("entries", produced),
			)
		}),
		features.WithFallbackHandler(func(ctx context.Context, k model.Key, err error) {
			sum.Fallbacks++
			s.metrics.RecordLookbackFallback()
			log.Warn(ctx, "lookback fell back to zero",
				logger.Int("year", k.Year),
				logger.String("noc", k.NOC),
				logger.String("sport_code", k.SportCode),
				logger.Error(err),
			)
		}),
	)
	rows := features.NewCalculator(opts...).Compute(ctx, apps)
	sum.FeatureRows = len(rows)

	writeStart := time.Now()
	if err := s.sink.Write(ctx, rows); err != nil {
		s.metrics.RecordRunError(stageWrite)
		log.Error(ctx, "write failed", logger.String("format", sum.Format), logger.Error(err))
		return sum, fmt.Errorf("%w: %w", ErrRun, err)
	}
	s.metrics.RecordOutput(sum.Format, len(rows), time.Since(writeStart))

	sum.Elapsed = time.Since(start)
	s.metrics.RecordRunSuccess(sum.Elapsed, time.Now())
	if err := s.metrics.WriteTextfile(s.metricsFile); err != nil {
		s.metrics.RecordRunError(stageMetrics)
		log.Warn(ctx, "metrics textfile not written", logger.Error(err))
	}

	log.Info(ctx, "feature table written",
		logger.String("format", sum.Format),
		logger.Int("rows", sum.FeatureRows),
		logger.Int("lookback_fallbacks", sum.Fallbacks),
		logger.Duration("elapsed", sum.Elapsed),
	)
	return sum, nil
}

func (s *Service) logProfile(ctx context.Context, log logger.Logger, p repository.Profile) {
	log.Info(ctx, "appearances loaded",
		logger.Int("rows", p.Rows),
		logger.Int("invalid_years", p.InvalidYears),
		logger.Int("missing_noc", p.MissingNOC),
		logger.Int("missing_sport_code", p.MissingSports),
		logger.Int("host_rows", p.HostRows),
		logger.Float64("host_share", share(p.HostRows, p.Rows)),
		logger.Any("host_values", p.HostValues),
	)

	for i, r := range p.Sample {
		log.Debug(ctx, "sample row",
			logger.Int("index", i),
			logger.String("noc", r.NOC),
			logger.String("host", r.Host),
			logger.String("year", r.Year),
		)
	}
}

func share(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total)
}
