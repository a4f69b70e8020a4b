package dedupe_test

import (
	"context"
	"fmt"
	"testing"

	dedupe "github.com/okian/podium/internal/domain/dedupe"
	"github.com/okian/podium/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestInMemoryDeduper(t *testing.T) {
	Convey("Given a new InMemoryDeduper", t, func() {
		ctx := context.Background()

		Convey("When creating a deduper with default options", func() {
			d := dedupe.NewInMemoryDeduper()

			Convey("Then it should be empty", func() {
				So(d, ShouldNotBeNil)
				So(d.Size(), ShouldEqual, 0)
				So(d.Tally(ctx), ShouldResemble, dedupe.Tally{})
			})
		})

		Convey("When creating a deduper with an expected size", func() {
			d := dedupe.NewInMemoryDeduper(dedupe.WithExpectedSize(100))

			Convey("Then it should still start empty", func() {
				So(d.Size(), ShouldEqual, 0)
			})
		})

		Convey("When recording athletes", func() {
			d := dedupe.NewInMemoryDeduper()

			Convey("And the athlete is new", func() {
				seen := d.SeenAndRecord(ctx, "A", model.Bronze)

				Convey("Then it should return false and record the medal", func() {
					So(seen, ShouldBeFalse)
					So(d.Size(), ShouldEqual, 1)
					best, ok := d.Best(ctx, "A")
					So(ok, ShouldBeTrue)
					So(best, ShouldEqual, model.Bronze)
				})
			})

			Convey("And the athlete improves on a later appearance", func() {
				d.SeenAndRecord(ctx, "A", model.Bronze)
				seen := d.SeenAndRecord(ctx, "A", model.Gold)

				Convey("Then the best medal should be kept", func() {
					So(seen, ShouldBeTrue)
					So(d.Size(), ShouldEqual, 1)
					best, _ := d.Best(ctx, "A")
					So(best, ShouldEqual, model.Gold)
				})
			})

			Convey("And the athlete does worse on a later appearance", func() {
				d.SeenAndRecord(ctx, "A", model.Silver)
				d.SeenAndRecord(ctx, "A", model.NoMedal)
				d.SeenAndRecord(ctx, "A", model.Unrecognised)

				Convey("Then the earlier better medal should stay", func() {
					best, _ := d.Best(ctx, "A")
					So(best, ShouldEqual, model.Silver)
				})
			})

			Convey("And the athlete is unknown", func() {
				_, ok := d.Best(ctx, "nobody")

				Convey("Then Best should report it missing", func() {
					So(ok, ShouldBeFalse)
				})
			})
		})

		Convey("When tallying best medals", func() {
			d := dedupe.NewInMemoryDeduper()
			d.SeenAndRecord(ctx, "A", model.Gold)
			d.SeenAndRecord(ctx, "A", model.Bronze)
			d.SeenAndRecord(ctx, "B", model.Silver)
			d.SeenAndRecord(ctx, "C", model.NoMedal)
			d.SeenAndRecord(ctx, "C", model.Bronze)
			d.SeenAndRecord(ctx, "D", model.NoMedal)
			d.SeenAndRecord(ctx, "E", model.Unrecognised)

			Convey("Then each athlete should count once under their best medal", func() {
				So(d.Tally(ctx), ShouldResemble, dedupe.Tally{
					Athletes: 5,
					Gold:     1,
					Silver:   1,
					Bronze:   1,
				})
			})
		})

		Convey("When many athletes are recorded", func() {
			d := dedupe.NewInMemoryDeduper()
			const numAthletes = 1000
			for i := 0; i < numAthletes; i++ {
				seen := d.SeenAndRecord(ctx, fmt.Sprintf("athlete-%d", i), model.NoMedal)
				So(seen, ShouldBeFalse)
			}

			Convey("Then all of them should be seen on a second pass", func() {
				So(d.Size(), ShouldEqual, int64(numAthletes))
				for i := 0; i < numAthletes; i++ {
					So(d.SeenAndRecord(ctx, fmt.Sprintf("athlete-%d", i), model.NoMedal), ShouldBeTrue)
				}
			})
		})
	})
}
