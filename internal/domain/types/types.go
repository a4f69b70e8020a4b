// Package types contains common types used across the application
package types

// Columns is the fixed output column order.
var Columns = []string{ //nolint:gochecknoglobals // fixed output schema
	"time",
	"country_code",
	"sport_category_code",
	"is_host",
	"year_total_participation",
	"year_sport_total_participation",
	"year_country_sport_participation",
	"sport_event_count",
	"country_sport_gold_rate",
	"country_sport_silver_rate",
	"country_sport_bronze_rate",
	"star_athlete_count",
	"rising_star_count",
	"avg_career_length",
	"actual_gold_count",
	"actual_silver_count",
	"actual_bronze_count",
}

// FeatureRow is one (year, noc, sport_code) row of the feature table.
type FeatureRow struct {
	Year             int
	NOC              string
	SportCode        string
	IsHost           int
	YearTotal        int
	YearSportTotal   int
	YearCountrySport int
	EventCount       int
	GoldRate         float64
	SilverRate       float64
	BronzeRate       float64
	StarAthletes     int
	RisingStars      int
	AvgCareerLength  float64
	Gold             int
	Silver           int
	Bronze           int
}

// Values returns the row cells in Columns order. Integer cells are int and
// rate cells are float64 so sinks can render each kind consistently.
func (r *FeatureRow) Values() []any {
	return []any{
		r.Year,
		r.NOC,
		r.SportCode,
		r.IsHost,
		r.YearTotal,
		r.YearSportTotal,
		r.YearCountrySport,
		r.EventCount,
		r.GoldRate,
		r.SilverRate,
		r.BronzeRate,
		r.StarAthletes,
		r.RisingStars,
		r.AvgCareerLength,
		r.Gold,
		r.Silver,
		r.Bronze,
	}
}
