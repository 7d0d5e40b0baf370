package main

import (
	"context"
	"net/http"
	"os"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/gurtle/gurtle/internal/adapters/http/api"
	service "github.com/gurtle/gurtle/internal/app"
	"github.com/gurtle/gurtle/internal/config"
)

func TestMainWiring(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("GURTLE_PORT", "8080")
			_ = os.Setenv("GURTLE_TOP_LIMIT", "5")
			defer func() {
				_ = os.Unsetenv("GURTLE_PORT")
				_ = os.Unsetenv("GURTLE_TOP_LIMIT")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				cfg, err := config.Load(context.Background())
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Port, convey.ShouldEqual, 8080)
				convey.So(cfg.TopLimit, convey.ShouldEqual, 5)
			})
		})

		convey.Convey("When testing service creation", func() {
			convey.Convey("Then service should be creatable with default options", func() {
				convey.So(service.New(), convey.ShouldNotBeNil)
			})

			convey.Convey("And routes should register without panicking", func() {
				svc := service.New()
				mux := http.NewServeMux()
				convey.So(func() {
					api.NewServer(svc, svc).Register(context.Background(), mux)
				}, convey.ShouldNotPanic)
			})
		})
	})
}
