package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/gurtle/gurtle/pkg/metrics"
)

func TestManager(t *testing.T) {
	Convey("Given a manager on a private registry", t, func() {
		reg := prometheus.NewRegistry()
		m := metrics.NewManager(
			metrics.WithRegistry(reg),
			metrics.WithNamespace("test"),
			metrics.WithSubsystem("lb"),
		)
		So(m, ShouldNotBeNil)

		Convey("Then its collectors should be gatherable", func() {
			// Unobserved counters may gather to an empty set; the point is
			// that registration succeeded and gathering does not error.
			families, err := reg.Gather()
			So(err, ShouldBeNil)
			So(len(families), ShouldBeGreaterThanOrEqualTo, 0)
		})
	})

	Convey("Given the package-level helpers", t, func() {
		Convey("Then recording should not panic and should show up in the registry", func() {
			metrics.RecordHTTPRequest("scores", "GET", "200")
			metrics.RecordHTTPRequestDuration("scores", "GET", "200", 3.5)
			metrics.RecordSubmissionAccepted()
			metrics.RecordSubmissionRejected()
			metrics.RecordStoreQueryLatency(1.2)
			metrics.RecordStoreInsertLatency(2.4)
			metrics.RecordStoreError("insert")
			metrics.UpdateEntriesTotal(7)

			families, err := metrics.GetRegistry().Gather()
			So(err, ShouldBeNil)

			names := make(map[string]bool, len(families))
			for _, f := range families {
				names[f.GetName()] = true
			}
			So(names["gurtle_leaderboard_http_requests_total"], ShouldBeTrue)
			So(names["gurtle_leaderboard_submissions_accepted_total"], ShouldBeTrue)
			So(names["gurtle_leaderboard_entries_total"], ShouldBeTrue)
		})
	})
}
