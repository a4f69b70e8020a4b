package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/okian/podium/internal/adapters/repository"
	"github.com/okian/podium/internal/config"
	"github.com/okian/podium/internal/domain/features"
)

// NewFromConfig builds a Service whose source, sink and calculator follow cfg.
func NewFromConfig(_ context.Context, cfg *config.Config, opts ...Option) (*Service, error) {
	runID := uuid.NewString()

	src := repository.NewSource(cfg.InputPath,
		repository.WithInputEncoding(cfg.InputEncoding),
		repository.WithColumns(repository.Columns{
			Year:  cfg.Columns.Year,
			NOC:   cfg.Columns.NOC,
			Sport: cfg.Columns.Sport,
			Event: cfg.Columns.Event,
			Name:  cfg.Columns.Name,
			Medal: cfg.Columns.Medal,
			Host:  cfg.Columns.Host,
		}),
	)

	sink, err := repository.NewSink(cfg.OutputFormat, cfg.OutputPath,
		repository.WithOutputEncoding(cfg.OutputEncoding),
		repository.WithTable(cfg.SQLiteTable),
		repository.WithRunID(runID),
	)
	if err != nil {
		return nil, err
	}

	base := []Option{
		WithRunID(runID),
		WithSource(src),
		WithSink(sink),
		WithMetricsFile(cfg.MetricsFile),
		WithCalculatorOptions(
			features.WithCareerOutlierYears(cfg.CareerOutlierYears),
			features.WithFirstGamesYear(cfg.FirstGamesYear),
		),
	}
	return New(append(base, opts...)...), nil
}
