package app

import (
	"context"
	"testing"
	"time"

	"github.com/quantfold/fedgauge/internal/adapters/repository"
	"github.com/quantfold/fedgauge/internal/calendar"
	"github.com/quantfold/fedgauge/internal/domain/classifier"
	"github.com/quantfold/fedgauge/internal/domain/model"
	"github.com/quantfold/fedgauge/internal/domain/registry"
	"github.com/quantfold/fedgauge/internal/domain/roster"
	"github.com/quantfold/fedgauge/internal/domain/signal"
	. "github.com/smartystreets/goconvey/convey"
)

func seededStore(t *testing.T, seed map[string][]model.StanceEntry) repository.Store {
	t.Helper()
	s, err := repository.NewJSONStore("", repository.WithSeed(seed))
	if err != nil {
		t.Fatalf("NewJSONStore: %v", err)
	}
	return s
}

func newTestGateway(t *testing.T, r *roster.Roster, seed map[string][]model.StanceEntry) *Gateway {
	t.Helper()
	store := seededStore(t, seed)
	clf := registry.NewRouter(registry.NewClassifierRegistry(), classifier.New())
	svc := New(r, store, clf, registry.NewSourceRouter(registry.NewSourceRegistry()))
	engine := signal.New(r, store, calendar.Default())
	return NewGateway(svc, engine, store, r, calendar.Default())
}

func TestGatewayParticipants(t *testing.T) {
	Convey("Given one recorded and one unrecorded participant", t, func() {
		ctx := context.Background()
		r := roster.New(
			roster.Participant{Name: "A", Title: "Chair", Institution: "Board of Governors", Voter: true, Governor: true},
			roster.Participant{Name: "B", Title: "President", Institution: "Cleveland Fed", BaselineLean: 2.0},
		)
		gw := newTestGateway(t, r, map[string][]model.StanceEntry{
			"A": {{Date: "2026-02-01", Score: 0.5, Label: model.LabelNeutral, Source: model.SourceLive}},
		})

		views := gw.Participants(ctx)

		Convey("Then the recorded one reflects the store", func() {
			So(views, ShouldHaveLength, 2)
			So(views[0].Name, ShouldEqual, "A")
			So(views[0].LatestScore, ShouldEqual, 0.5)
			So(views[0].LatestLabel, ShouldEqual, "Neutral")
			So(views[0].LatestDate, ShouldEqual, "2026-02-01")
			So(views[0].LatestSource, ShouldEqual, model.SourceLive)
		})

		Convey("Then the unrecorded one falls back to the baseline lean", func() {
			So(views[1].Name, ShouldEqual, "B")
			So(views[1].LatestScore, ShouldEqual, 2.0)
			So(views[1].LatestLabel, ShouldEqual, "Hawkish")
			So(views[1].LatestDate, ShouldBeEmpty)
		})
	})
}

func TestGatewayCalendarReads(t *testing.T) {
	Convey("Given a gateway over the published schedule", t, func() {
		r := roster.New(roster.Participant{Name: "A"})
		gw := newTestGateway(t, r, map[string][]model.StanceEntry{})
		ref := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

		Convey("Then the next meeting view carries the countdown", func() {
			next, ok := gw.NextMeeting(ref)
			So(ok, ShouldBeTrue)
			So(next.StartDate, ShouldEqual, "2026-03-17")
			So(next.EndDate, ShouldEqual, "2026-03-18")
			So(next.DaysUntil, ShouldEqual, 8)
		})

		Convey("Then the blackout window is exposed", func() {
			So(gw.IsBlackout(ref), ShouldBeTrue)
			start, ok := gw.BlackoutStart(ref)
			So(ok, ShouldBeTrue)
			So(start.Format("2006-01-02"), ShouldEqual, "2026-03-07")
		})

		Convey("Then the schedule eventually runs out", func() {
			far := time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)
			_, ok := gw.NextMeeting(far)
			So(ok, ShouldBeFalse)
			_, ok = gw.BlackoutStart(far)
			So(ok, ShouldBeFalse)
		})
	})
}
