package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/gurtle/gurtle/internal/adapters/repository"
	"github.com/gurtle/gurtle/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func stamp(daysAgo int) string {
	return model.FormatTime(time.Now().AddDate(0, 0, -daysAgo))
}

func TestMemoryStore_TopScores(t *testing.T) {
	Convey("Given a store with a mix of old and recent entries", t, func() {
		ctx := context.Background()
		store := repository.NewMemoryStore()
		seed := []model.Entry{
			{Name: "old-best", Score: 10, Datetime: stamp(30)},
			{Name: "recent-mid", Score: 60, Datetime: stamp(1)},
			{Name: "recent-best", Score: 50, Datetime: stamp(2)},
			{Name: "recent-worst", Score: 150, Datetime: stamp(3)},
		}
		for _, e := range seed {
			So(store.Insert(ctx, e), ShouldBeNil)
		}

		Convey("When querying without a time bound", func() {
			entries, err := store.TopScores(ctx, "", 10)

			Convey("Then all entries should come back ascending by score", func() {
				So(err, ShouldBeNil)
				So(len(entries), ShouldEqual, 4)
				So(entries[0].Name, ShouldEqual, "old-best")
				So(entries[1].Name, ShouldEqual, "recent-best")
				So(entries[2].Name, ShouldEqual, "recent-mid")
				So(entries[3].Name, ShouldEqual, "recent-worst")
			})
		})

		Convey("When querying with a bound excluding the old entry", func() {
			entries, err := store.TopScores(ctx, stamp(7), 10)

			Convey("Then only recent entries should match", func() {
				So(err, ShouldBeNil)
				So(len(entries), ShouldEqual, 3)
				So(entries[0].Name, ShouldEqual, "recent-best")
			})
		})

		Convey("When the limit is smaller than the match count", func() {
			entries, err := store.TopScores(ctx, "", 2)
			So(err, ShouldBeNil)
			So(len(entries), ShouldEqual, 2)
			So(entries[0].Score, ShouldEqual, 10)
			So(entries[1].Score, ShouldEqual, 50)
		})

		Convey("When the limit is invalid", func() {
			_, err := store.TopScores(ctx, "", 0)
			So(err, ShouldEqual, repository.ErrInvalidLimit)
		})
	})

	Convey("Given an empty store", t, func() {
		store := repository.NewMemoryStore()

		Convey("Then TopScores should return an empty sequence, not an error", func() {
			entries, err := store.TopScores(context.Background(), "", 10)
			So(err, ShouldBeNil)
			So(entries, ShouldBeEmpty)
		})
	})
}

func TestMemoryStore_CountAtLeast(t *testing.T) {
	Convey("Given a store with scores 50, 60, 100, 150", t, func() {
		ctx := context.Background()
		store := repository.NewMemoryStore()
		for i, score := range []int{50, 60, 100, 150} {
			So(store.Insert(ctx, model.Entry{Name: "p", Score: score, Datetime: stamp(i)}), ShouldBeNil)
		}

		Convey("Then counting scores >= 100 should find two", func() {
			n, err := store.CountAtLeast(ctx, 100, "")
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 2)
		})

		Convey("Then a bound excluding older entries should shrink the count", func() {
			n, err := store.CountAtLeast(ctx, 50, stamp(1))
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 2)
		})

		Convey("Then an empty matching set should count zero", func() {
			n, err := store.CountAtLeast(ctx, 1000, "")
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 0)
		})
	})
}

func TestMemoryStore_Insert(t *testing.T) {
	Convey("Given duplicate submissions", t, func() {
		ctx := context.Background()
		store := repository.NewMemoryStore()
		e := model.Entry{Name: "Ann", Score: 42, Datetime: stamp(0)}

		Convey("Then both copies should be stored", func() {
			So(store.Insert(ctx, e), ShouldBeNil)
			So(store.Insert(ctx, e), ShouldBeNil)
			n, err := store.Count(ctx)
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 2)
		})
	})
}
