package rank_test

import (
	"testing"
	"time"

	"github.com/gurtle/gurtle/internal/domain/model"
	"github.com/gurtle/gurtle/internal/domain/rank"
	. "github.com/smartystreets/goconvey/convey"
)

func TestWindowFor(t *testing.T) {
	Convey("Given a fixed reference time", t, func() {
		now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

		Convey("When the duration is weekly", func() {
			w := rank.WindowFor(rank.DurationWeekly, now)

			Convey("Then the bound should be seven days back", func() {
				So(w.Unbounded(), ShouldBeFalse)
				So(w.Since, ShouldEqual, model.FormatTime(now.AddDate(0, 0, -7)))
			})
		})

		Convey("When the duration is monthly", func() {
			w := rank.WindowFor(rank.DurationMonthly, now)

			Convey("Then the bound should be twenty-eight days back", func() {
				So(w.Unbounded(), ShouldBeFalse)
				So(w.Since, ShouldEqual, model.FormatTime(now.AddDate(0, 0, -28)))
			})
		})

		Convey("When the duration is alltime", func() {
			So(rank.WindowFor(rank.DurationAllTime, now).Unbounded(), ShouldBeTrue)
		})

		Convey("When the duration is unrecognized", func() {
			for _, d := range []string{"", "daily", "ALLTIME", "Weekly", "yearly"} {
				So(rank.WindowFor(d, now).Unbounded(), ShouldBeTrue)
			}
		})

		Convey("Then window bounds should compare lexicographically with entry timestamps", func() {
			w := rank.WindowFor(rank.DurationWeekly, now)
			inside := model.FormatTime(now.AddDate(0, 0, -1))
			outside := model.FormatTime(now.AddDate(0, 0, -8))
			So(inside, ShouldBeGreaterThanOrEqualTo, w.Since)
			So(outside, ShouldBeLessThan, w.Since)
		})
	})
}
