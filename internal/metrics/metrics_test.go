package metrics_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/Hagni1/jurney/internal/metrics"
)

func TestManager(t *testing.T) {
	Convey("Given a manager on a fresh registry", t, func() {
		registry := prometheus.NewRegistry()
		manager := metrics.NewManager(
			metrics.WithNamespace("test"),
			metrics.WithSubsystem("unit"),
			metrics.WithIterationBuckets([]float64{10, 100, 1000}),
			metrics.WithPrometheusRegistry(registry),
		)

		Convey("When fights are recorded", func() {
			manager.RecordFight(true, true, 49, 50)
			manager.RecordFight(true, false, 20, 10)
			manager.RecordFight(false, true, 1000, 0)

			Convey("Then each outcome is counted", func() {
				count, err := testutil.GatherAndCount(registry, "test_unit_fights_total")
				So(err, ShouldBeNil)
				So(count, ShouldEqual, 3)


				count, err = testutil.GatherAndCount(registry, "test_unit_combat_iterations")
				So(err, ShouldBeNil)
				So(count, ShouldEqual, 1)
			})

			Convey("Then won experience is summed", func() {
				families, err := registry.Gather()
				So(err, ShouldBeNil)

				var exp float64
				for _, family := range families {
					if family.GetName() == "test_unit_exp_gained_total" {
						exp = family.GetMetric()[0].GetCounter().GetValue()
					}
				}
				So(exp, ShouldEqual, 60)
			})
		})

		Convey("When training claims are recorded", func() {
			manager.RecordTrainingStarted("strength")
			manager.RecordTrainingClaim("strength", 4)
			manager.RecordTrainingClaim("strength", 0)

			Convey("Then claims and points are tracked separately", func() {
				count, err := testutil.GatherAndCount(registry, "test_unit_training_claims_total")
				So(err, ShouldBeNil)
				So(count, ShouldEqual, 1)

				count, err = testutil.GatherAndCount(registry, "test_unit_training_points_total")
				So(err, ShouldBeNil)
				So(count, ShouldEqual, 1)
			})
		})

		Convey("When the handler is scraped", func() {
			manager.RecordLevelUps(2)
			manager.RecordCharacterCreated()

			rec := httptest.NewRecorder()
			manager.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
			body, _ := io.ReadAll(rec.Body)

			Convey("Then it exposes the recorded series", func() {
				So(rec.Code, ShouldEqual, 200)
				So(string(body), ShouldContainSubstring, "test_unit_level_ups_total 2")
				So(string(body), ShouldContainSubstring, "test_unit_characters_created_total 1")
			})
		})
	})

	Convey("Given a nil manager", t, func() {
		var manager *metrics.Manager

		Convey("Then recording is a no-op", func() {
			So(func() {
				manager.RecordFight(true, true, 1, 1)
				manager.RecordLevelUps(1)
				manager.RecordStageUnlocked()
				manager.RecordCharacterCreated()
				manager.RecordTrainingStarted("dexterity")
				manager.RecordTrainingClaim("dexterity", 1)
				manager.RecordLockConflict("fight")
			}, ShouldNotPanic)
		})
	})

	Convey("Given a manager with defaults", t, func() {
		manager := metrics.NewManager()

		Convey("Then it owns a registry with runtime collectors", func() {
			families, err := manager.Registry().Gather()
			So(err, ShouldBeNil)
			So(len(families), ShouldBeGreaterThan, 0)
		})
	})
}
