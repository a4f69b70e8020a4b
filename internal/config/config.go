// Package config defines the batch configuration and how it is loaded.
package config

import (
	"context"
)

// Output formats accepted by OutputFormat.
const (
	FormatCSV    = "csv"
	FormatXLSX   = "xlsx"
	FormatSQLite = "sqlite"
)

// Columns names the input columns the batch reads.
type Columns struct {
	Year  string `koanf:"year" validate:"required"`
	NOC   string `koanf:"noc" validate:"required"`
	Sport string `koanf:"sport" validate:"required"`
	Event string `koanf:"event" validate:"required"`
	Name  string `koanf:"name" validate:"required"`
	Medal string `koanf:"medal" validate:"required"`
	Host  string `koanf:"host" validate:"required"`
}

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level" validate:"omitempty,oneof=debug info warn warning error"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format" validate:"omitempty,oneof=text json"`

	// InputPath is the athlete appearance table.
	InputPath string `koanf:"input_path" validate:"required"`

	// InputEncoding names the text encoding of the input, e.g. "gbk", "utf-8".
	InputEncoding string `koanf:"input_encoding" validate:"required,encoding"`

	// OutputPath is where the feature table is written.
	OutputPath string `koanf:"output_path" validate:"required"`

	// OutputEncoding names the text encoding of CSV output.
	OutputEncoding string `koanf:"output_encoding" validate:"required,encoding"`

	// OutputFormat is one of csv, xlsx, sqlite.
	OutputFormat string `koanf:"output_format" validate:"required,oneof=csv xlsx sqlite"`

	// SQLiteTable is the feature table name when OutputFormat is sqlite.
	SQLiteTable string `koanf:"sqlite_table" validate:"required_if=OutputFormat sqlite,omitempty,identifier"`

	// MetricsFile, when set, receives a Prometheus textfile at the end of the run.
	MetricsFile string `koanf:"metrics_file"`

	// CareerOutlierYears is the longest career span still averaged.
	CareerOutlierYears int `koanf:"career_outlier_years" validate:"min=1"`

	// FirstGamesYear is the year of the first modern Games.
	FirstGamesYear int `koanf:"first_games_year" validate:"min=1"`

	// Columns maps logical fields to input header names.
	Columns Columns `koanf:"columns"`
}

// New creates a Config holding the defaults.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:           "info",
		LogFormat:          "text",
		InputPath:          "summerOly_athletes.csv",
		InputEncoding:      "gbk",
		OutputPath:         "oly/stats_output.csv",
		OutputEncoding:     "gbk",
		OutputFormat:       FormatCSV,
		SQLiteTable:        "features",
		CareerOutlierYears: 24,
		FirstGamesYear:     1896,
		Columns: Columns{
			Year:  "Year",
			NOC:   "NOC",
			Sport: "code",
			Event: "Event",
			Name:  "Name",
			Medal: "Medal",
			Host:  "东道国",
		},
	}
}
