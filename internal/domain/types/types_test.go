package types_test

import (
	"testing"

	types "github.com/okian/podium/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFeatureRow(t *testing.T) {
	Convey("Given the output schema", t, func() {
		Convey("Then it should have 17 columns in the fixed order", func() {
			So(len(types.Columns), ShouldEqual, 17)
			So(types.Columns[0], ShouldEqual, "time")
			So(types.Columns[3], ShouldEqual, "is_host")
			So(types.Columns[8], ShouldEqual, "country_sport_gold_rate")
			So(types.Columns[13], ShouldEqual, "avg_career_length")
			So(types.Columns[16], ShouldEqual, "actual_bronze_count")
		})
	})

	Convey("Given a feature row", t, func() {
		row := types.FeatureRow{
			Year:             2012,
			NOC:              "USA",
			SportCode:        "ATH",
			IsHost:           0,
			YearTotal:        10,
			YearSportTotal:   6,
			YearCountrySport: 4,
			EventCount:       2,
			GoldRate:         0.5,
			SilverRate:       0.25,
			BronzeRate:       0,
			StarAthletes:     1,
			RisingStars:      0,
			AvgCareerLength:  4,
			Gold:             1,
			Silver:           1,
			Bronze:           0,
		}

		Convey("When listing its values", func() {
			values := row.Values()

			Convey("Then they should line up with the columns", func() {
				So(len(values), ShouldEqual, len(types.Columns))
				So(values[0], ShouldEqual, 2012)
				So(values[1], ShouldEqual, "USA")
				So(values[2], ShouldEqual, "ATH")
				So(values[6], ShouldEqual, 4)
				So(values[8], ShouldEqual, 0.5)
				So(values[11], ShouldEqual, 1)
				So(values[13], ShouldEqual, 4.0)
				So(values[14], ShouldEqual, 1)
			})

			Convey("And rate cells should be floats while counts stay ints", func() {
				_, isFloat := values[9].(float64)
				_, isInt := values[4].(int)
				So(isFloat, ShouldBeTrue)
				So(isInt, ShouldBeTrue)
			})
		})
	})
}
