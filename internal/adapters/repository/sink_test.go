package repository

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/okian/podium/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/simplifiedchinese"
)

func sampleRows() []types.FeatureRow {
	return []types.FeatureRow{
		{
			Year: 2008, NOC: "CHN", SportCode: "ATH", IsHost: 1,
			YearTotal: 10, YearSportTotal: 6, YearCountrySport: 2, EventCount: 2,
			GoldRate: 0, SilverRate: 0, BronzeRate: 0,
			AvgCareerLength: 0, Gold: 1,
		},
		{
			Year: 2012, NOC: "USA", SportCode: "ATH",
			YearTotal: 12, YearSportTotal: 7, YearCountrySport: 4, EventCount: 3,
			GoldRate: 0.5, SilverRate: 0.25, BronzeRate: 1.0 / 3.0,
			StarAthletes: 1, RisingStars: 2, AvgCareerLength: 4, Silver: 1, Bronze: 2,
		},
	}
}

func TestFormatFloat(t *testing.T) {
	Convey("Given float feature values", t, func() {
		Convey("Then they should render with a decimal point", func() {
			So(formatFloat(0), ShouldEqual, "0.0")
			So(formatFloat(4), ShouldEqual, "4.0")
			So(formatFloat(0.25), ShouldEqual, "0.25")
			So(formatFloat(1.0/3.0), ShouldEqual, "0.3333333333333333")
			So(formatFloat(2.6666666666666665), ShouldEqual, "2.6666666666666665")
		})

		Convey("Then tiny values should use exponent form", func() {
			So(formatFloat(5e-05), ShouldEqual, "5e-05")
			So(formatFloat(0.0001), ShouldEqual, "0.0001")
		})

		Convey("Then other cells should render plainly", func() {
			So(formatCell(12), ShouldEqual, "12")
			So(formatCell("USA"), ShouldEqual, "USA")
		})
	})
}

func TestNewSink(t *testing.T) {
	Convey("Given output formats", t, func() {
		Convey("When the format is known", func() {
			for _, f := range []string{FormatCSV, "XLSX", FormatSQLite} {
				s, err := NewSink(f, "out")
				So(err, ShouldBeNil)
				So(s.Format(), ShouldEqual, strings.ToLower(f))
			}
		})

		Convey("When the format is unknown", func() {
			_, err := NewSink("parquet", "out")

			Convey("Then it should fail with ErrUnsupportedFormat", func() {
				So(errors.Is(err, ErrUnsupportedFormat), ShouldBeTrue)
			})
		})

		Convey("When the csv encoding is unknown", func() {
			_, err := NewSink(FormatCSV, "out", WithOutputEncoding("klingon"))

			Convey("Then it should fail with ErrUnknownEncoding", func() {
				So(errors.Is(err, ErrUnknownEncoding), ShouldBeTrue)
			})
		})
	})
}

func TestCSVSink_Write(t *testing.T) {
	Convey("Given a GBK csv sink in a directory that does not exist yet", t, func() {
		ctx := context.Background()
		path := filepath.Join(t.TempDir(), "oly", "stats_output.csv")
		sink, err := NewSink(FormatCSV, path)
		So(err, ShouldBeNil)

		Convey("When writing rows", func() {
			So(sink.Write(ctx, sampleRows()), ShouldBeNil)

			Convey("Then the file should hold the header and rendered rows", func() {
				raw, err := os.ReadFile(path)
				So(err, ShouldBeNil)
				text, err := simplifiedchinese.GBK.NewDecoder().Bytes(raw)
				So(err, ShouldBeNil)
				lines := strings.Split(strings.TrimRight(string(text), "\n"), "\n")
				So(lines, ShouldHaveLength, 3)
				So(lines[0], ShouldEqual, strings.Join(types.Columns, ","))
				So(lines[1], ShouldEqual, "2008,CHN,ATH,1,10,6,2,2,0.0,0.0,0.0,0,0,0.0,1,0,0")
				So(lines[2], ShouldEqual, "2012,USA,ATH,0,12,7,4,3,0.5,0.25,0.3333333333333333,1,2,4.0,0,1,2")
			})

			Convey("And writing the same rows again", func() {
				first, _ := os.ReadFile(path)
				So(sink.Write(ctx, sampleRows()), ShouldBeNil)
				second, _ := os.ReadFile(path)

				Convey("Then the bytes should be identical", func() {
					So(second, ShouldResemble, first)
				})
			})

			Convey("And a later write fails to encode", func() {
				first, _ := os.ReadFile(path)
				rows := sampleRows()
				rows[1].NOC = "\U0001F3C5"
				err := sink.Write(ctx, rows)

				Convey("Then it should fail and leave the previous table in place", func() {
					So(errors.Is(err, ErrWriteOutput), ShouldBeTrue)
					after, readErr := os.ReadFile(path)
					So(readErr, ShouldBeNil)
					So(after, ShouldResemble, first)
					entries, _ := os.ReadDir(filepath.Dir(path))
					So(entries, ShouldHaveLength, 1)
				})
			})
		})

		Convey("When the first write fails to encode", func() {
			rows := sampleRows()
			rows[0].NOC = "\U0001F3C5"
			err := sink.Write(ctx, rows)

			Convey("Then no output file should exist", func() {
				So(errors.Is(err, ErrWriteOutput), ShouldBeTrue)
				_, statErr := os.Stat(path)
				So(os.IsNotExist(statErr), ShouldBeTrue)
				entries, _ := os.ReadDir(filepath.Dir(path))
				So(entries, ShouldBeEmpty)
			})
		})
	})
}

func TestXLSXSink_Write(t *testing.T) {
	Convey("Given an xlsx sink", t, func() {
		path := filepath.Join(t.TempDir(), "features.xlsx")
		sink, err := NewSink(FormatXLSX, path)
		So(err, ShouldBeNil)

		Convey("When writing rows", func() {
			So(sink.Write(context.Background(), sampleRows()), ShouldBeNil)

			Convey("Then the features sheet should hold the header and rows", func() {
				f, err := excelize.OpenFile(path)
				So(err, ShouldBeNil)
				defer func() { _ = f.Close() }()

				So(f.GetSheetList(), ShouldResemble, []string{"features"})
				rows, err := f.GetRows("features")
				So(err, ShouldBeNil)
				So(rows, ShouldHaveLength, 3)
				So(rows[0], ShouldResemble, types.Columns)
				So(rows[2][0], ShouldEqual, "2012")
				So(rows[2][1], ShouldEqual, "USA")
				So(rows[2][8], ShouldEqual, "0.5")
			})
		})
	})
}

func TestSQLiteSink_Write(t *testing.T) {
	Convey("Given a sqlite sink tagged with a run id", t, func() {
		ctx := context.Background()
		path := filepath.Join(t.TempDir(), "features.db")
		sink, err := NewSink(FormatSQLite, path, WithTable("olympic_features"), WithRunID("run-1"))
		So(err, ShouldBeNil)

		Convey("When writing rows twice", func() {
			So(sink.Write(ctx, sampleRows()), ShouldBeNil)
			So(sink.Write(ctx, sampleRows()[:1]), ShouldBeNil)

			Convey("Then the table should be replaced and the run recorded", func() {
				db, err := sql.Open("sqlite", path)
				So(err, ShouldBeNil)
				defer func() { _ = db.Close() }()

				var n int
				So(db.QueryRow("SELECT COUNT(*) FROM olympic_features").Scan(&n), ShouldBeNil)
				So(n, ShouldEqual, 1)

				var host int
				var rate float64
				So(db.QueryRow(
					"SELECT is_host, country_sport_gold_rate FROM olympic_features WHERE country_code = ?", "CHN",
				).Scan(&host, &rate), ShouldBeNil)
				So(host, ShouldEqual, 1)
				So(rate, ShouldEqual, 0.0)

				var rowCount int
				So(db.QueryRow("SELECT row_count FROM runs WHERE run_id = ?", "run-1").Scan(&rowCount), ShouldBeNil)
				So(rowCount, ShouldEqual, 1)
			})
		})
	})
}
