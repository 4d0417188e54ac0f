package roster

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRoleKey(t *testing.T) {
	Convey("Given participants across the committee's roles", t, func() {
		cases := []struct {
			participant Participant
			want        string
		}{
			{Participant{Title: "Chair", Voter: true, Governor: true}, RoleChair},
			{Participant{Title: "Vice Chair", Voter: true, Governor: true}, RoleViceChair},
			{Participant{Title: "Vice Chair for Supervision", Voter: true, Governor: true}, RoleViceChairSup},
			{Participant{Title: "Governor", Voter: true, Governor: true}, RoleGovernor},
			{Participant{Title: "President", Voter: true}, RolePresidentVoter},
			{Participant{Title: "President", Voter: false}, RolePresidentAlternate},
		}

		Convey("Then each maps onto the expected weight-table key", func() {
			for _, tc := range cases {
				So(tc.participant.RoleKey(), ShouldEqual, tc.want)
			}
		})
	})
}

func TestBaselineFor(t *testing.T) {
	Convey("Given a participant with distinct leans per dimension", t, func() {
		p := Participant{BaselineLean: 0.5, BaselineBalanceSheetLean: -0.3}

		So(p.BaselineFor(false), ShouldEqual, 0.5)
		So(p.BaselineFor(true), ShouldEqual, -0.3)
	})
}

func TestDefaultRoster(t *testing.T) {
	Convey("Given the default committee roster", t, func() {
		r := Default()

		Convey("Then it carries all nineteen participants", func() {
			So(r.Len(), ShouldEqual, 19)
		})

		Convey("Then twelve of them vote this cycle", func() {
			So(len(r.Voters()), ShouldEqual, 12)
			So(len(r.Alternates()), ShouldEqual, 7)
		})

		Convey("Then the chair is found by partial case-insensitive match", func() {
			p, ok := r.Find("powell")
			So(ok, ShouldBeTrue)
			So(p.RoleKey(), ShouldEqual, RoleChair)
		})

		Convey("Then an unknown name reports absence", func() {
			_, ok := r.Find("greenspan")
			So(ok, ShouldBeFalse)
		})
	})
}

func TestAddIsIdempotent(t *testing.T) {
	Convey("Given a roster with one participant", t, func() {
		r := New(Participant{Name: "A", Voter: true})

		Convey("When the same name is added again alongside a new one", func() {
			r.Add(Participant{Name: "A"}, Participant{Name: "B"})

			Convey("Then duplicates are skipped and order is preserved", func() {
				all := r.All()
				So(len(all), ShouldEqual, 2)
				So(all[0].Name, ShouldEqual, "A")
				So(all[0].Voter, ShouldBeTrue)
				So(all[1].Name, ShouldEqual, "B")
			})
		})
	})
}
