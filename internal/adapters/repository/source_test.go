package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/podium/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
	"golang.org/x/text/encoding/simplifiedchinese"
)

const athletesCSV = `Name,Sex,Team,NOC,Year,City,Sport,Event,Medal,code,东道国
Alice,F,United States,USA,2008,Beijing,Athletics,100m,Gold,ATH,0
Bob,M,China,CHN,2008,Beijing,Athletics,"100m, heats",No medal,ATH,1
Chen,M,China,CHN,2008.0,Beijing,Swimming,50m,Bronze,SWM,1.0
Dora,F,United States,USA,unknown,Paris,Athletics,200m,Silver,ATH,
Eve,F,United States,USA,2012,London,Athletics,200m,NA,ATH,yes
Finn,M,,,2012,London,Athletics,200m,Gold,ATH,0
Gus,M,Greece,GRE,1896,Athina,Athletics,Marathon,Olive,ATH,0
Hana,F,China,CHN,2012,London,Athletics,200m,No medal,,0
`

func writeGBK(t *testing.T, content string) string {
	t.Helper()
	encoded, err := simplifiedchinese.GBK.NewEncoder().String(content)
	if err != nil {
		t.Fatalf("encode gbk: %v", err)
	}
	path := filepath.Join(t.TempDir(), "athletes.csv")
	if err := os.WriteFile(path, []byte(encoded), 0o600); err != nil {
		t.Fatalf("write input: %v", err)
	}
	return path
}

func TestCSVSource_Load(t *testing.T) {
	Convey("Given a GBK encoded athlete table", t, func() {
		ctx := context.Background()
		path := writeGBK(t, athletesCSV)

		Convey("When loading it", func() {
			apps, profile, err := NewSource(path).Load(ctx)

			Convey("Then every row should be returned in file order", func() {
				So(err, ShouldBeNil)
				So(len(apps), ShouldEqual, 8)
				So(profile.Rows, ShouldEqual, 8)
				So(apps[0], ShouldResemble, model.Appearance{
					Year: 2008, YearValid: true, NOC: "USA", SportCode: "ATH",
					Event: "100m", Athlete: "Alice", Medal: model.Gold,
				})
				So(apps[1].Event, ShouldEqual, "100m, heats")
			})

			Convey("Then cells should be coerced", func() {
				So(apps[1].Medal, ShouldEqual, model.NoMedal)
				So(apps[1].Host, ShouldBeTrue)
				So(apps[2].Year, ShouldEqual, 2008)
				So(apps[2].Host, ShouldBeTrue)
				So(apps[3].YearValid, ShouldBeFalse)
				So(apps[3].Host, ShouldBeFalse)
				So(apps[4].Medal, ShouldEqual, model.NoMedal)
				So(apps[4].Host, ShouldBeFalse)
				So(apps[6].Medal, ShouldEqual, model.Unrecognised)
			})

			Convey("Then rows with an incomplete key should be kept", func() {
				So(apps[5].NOC, ShouldEqual, "")
				So(apps[5].Athlete, ShouldEqual, "Finn")
				So(apps[7].SportCode, ShouldEqual, model.MissingSportCode)
				So(profile.MissingNOC, ShouldEqual, 1)
				So(profile.MissingSports, ShouldEqual, 1)
			})

			Convey("Then the profile should describe the input", func() {
				So(profile.InvalidYears, ShouldEqual, 1)
				So(profile.HostRows, ShouldEqual, 2)
				So(profile.HostValues, ShouldResemble, map[string]int{"0": 4, "1": 1, "1.0": 1, "": 1, "yes": 1})
				So(len(profile.Sample), ShouldEqual, 8)
				So(profile.Sample[0], ShouldResemble, SampleRow{NOC: "USA", Host: "0", Year: "2008"})
			})
		})

		Convey("When the sample size is limited", func() {
			_, profile, err := NewSource(path, WithSampleSize(2)).Load(ctx)

			Convey("Then only that many rows should be sampled", func() {
				So(err, ShouldBeNil)
				So(len(profile.Sample), ShouldEqual, 2)
			})
		})

		Convey("When a configured column is absent", func() {
			_, _, err := NewSource(path, WithColumns(Columns{Host: "is_host"})).Load(ctx)

			Convey("Then it should fail with ErrMissingColumn", func() {
				So(errors.Is(err, ErrMissingColumn), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "is_host")
			})
		})
	})

	Convey("Given a UTF-8 table with a byte order mark and renamed columns", t, func() {
		content := "\ufeffyr,country,sport,ev,athlete,result,host\n2016,BRA,FBL,Football,Neymar,Gold,1\n"
		path := filepath.Join(t.TempDir(), "athletes.csv")
		So(os.WriteFile(path, []byte(content), 0o600), ShouldBeNil)

		Convey("When loading with matching options", func() {
			src := NewSource(path,
				WithInputEncoding("utf-8"),
				WithColumns(Columns{
					Year: "yr", NOC: "country", Sport: "sport", Event: "ev",
					Name: "athlete", Medal: "result", Host: "host",
				}),
			)
			apps, _, err := src.Load(context.Background())

			Convey("Then the row should be read", func() {
				So(err, ShouldBeNil)
				So(apps, ShouldHaveLength, 1)
				So(apps[0].NOC, ShouldEqual, "BRA")
				So(apps[0].Host, ShouldBeTrue)
				So(apps[0].Medal, ShouldEqual, model.Gold)
			})
		})
	})

	Convey("Given unreadable input", t, func() {
		ctx := context.Background()

		Convey("When the file does not exist", func() {
			_, _, err := NewSource(filepath.Join(t.TempDir(), "missing.csv")).Load(ctx)

			Convey("Then it should fail with ErrReadInput", func() {
				So(errors.Is(err, ErrReadInput), ShouldBeTrue)
			})
		})

		Convey("When the encoding is unknown", func() {
			_, _, err := NewSource("whatever.csv", WithInputEncoding("klingon")).Load(ctx)

			Convey("Then it should fail with ErrUnknownEncoding", func() {
				So(errors.Is(err, ErrUnknownEncoding), ShouldBeTrue)
			})
		})
	})
}

func TestCoercions(t *testing.T) {
	Convey("Given raw year cells", t, func() {
		Convey("Then integral numbers should parse", func() {
			for raw, want := range map[string]int{"1896": 1896, "2008.0": 2008, " 2012 ": 2012} {
				got, ok := parseYear(raw)
				So(ok, ShouldBeTrue)
				So(got, ShouldEqual, want)
			}
		})

		Convey("Then anything else should be invalid", func() {
			for _, raw := range []string{"", "NaN", "2008.5", "MMVIII", "inf"} {
				_, ok := parseYear(raw)
				So(ok, ShouldBeFalse)
			}
		})
	})

	Convey("Given raw host cells", t, func() {
		Convey("Then only a numeric one should mean host", func() {
			So(parseHost("1"), ShouldBeTrue)
			So(parseHost("1.0"), ShouldBeTrue)
			So(parseHost(" 1 "), ShouldBeTrue)
			So(parseHost("0"), ShouldBeFalse)
			So(parseHost("2"), ShouldBeFalse)
			So(parseHost(""), ShouldBeFalse)
			So(parseHost("True"), ShouldBeFalse)
		})
	})
}
