package logger_test

import (
	"context"
	"testing"

	"github.com/gurtle/gurtle/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLogger(t *testing.T) {
	Convey("Given an initialized global logger", t, func() {
		So(logger.Init(), ShouldBeNil)
		l := logger.Get()
		ctx := context.Background()

		Convey("Then logging at every level should not panic", func() {
			So(func() {
				l.Debug(ctx, "debug", logger.String("k", "v"))
				l.Info(ctx, "info", logger.Int("n", 1))
				l.Warn(ctx, "warn", logger.Int64("n64", 2))
				l.Error(ctx, "error", logger.Any("x", struct{}{}))
			}, ShouldNotPanic)
		})

		Convey("Then named loggers should be derivable", func() {
			So(logger.Named("api"), ShouldNotBeNil)
			So(l.Named("store"), ShouldNotBeNil)
		})
	})
}

func TestSetLevelString(t *testing.T) {
	Convey("Given level strings", t, func() {
		So(logger.Init(), ShouldBeNil)

		Convey("Then known levels should parse", func() {
			for _, lvl := range []string{"debug", "info", "warn", "warning", "error", "", "  INFO "} {
				So(logger.SetLevelString(lvl), ShouldBeNil)
			}
		})

		Convey("Then unknown levels should fail", func() {
			So(logger.SetLevelString("verbose"), ShouldNotBeNil)
		})
	})
}
