package attendance_test

import (
	"context"
	"encoding/json"
	"testing"

	attendance "github.com/okian/captain/internal/agent/attendance"
	"github.com/okian/captain/internal/domain/types"
	"github.com/okian/captain/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	err := logger.Init()
	if err != nil {
		panic(err)
	}
}

func TestService_Tools(t *testing.T) {
	Convey("Given a started attendance service", t, func() {
		svc := attendance.New()
		So(svc.Start(context.Background()), ShouldBeNil)
		defer svc.Stop()

		tools := svc.Tools()

		Convey("Then it should expose the declared tool set", func() {
			names := make([]string, 0, len(tools))
			for _, tool := range tools {
				names = append(names, tool.Name)
			}
			So(names, ShouldResemble, []string{
				"record_attendance",
				"analyze_attendance_patterns",
				"get_attendance_report",
			})
		})

		Convey("When recording attendance", func() {
			out, err := tools[0].Handler(context.Background(), json.RawMessage(
				`{"player_id":"p12","event_id":"evt_3","status":"present","team_id":"7"}`,
			))

			Convey("Then the record id should be derived from player and event", func() {
				So(err, ShouldBeNil)
				resp, ok := out.(types.RecordAttendanceResponse)
				So(ok, ShouldBeTrue)
				So(resp.Success, ShouldBeTrue)
				So(resp.Message, ShouldEqual, "Attendance recorded successfully")
				So(resp.RecordID, ShouldEqual, "att_p12_evt_3")
				So(resp.PlayerID, ShouldEqual, "p12")
				So(resp.EventID, ShouldEqual, "evt_3")
				So(resp.Status, ShouldEqual, "present")
			})
		})

		Convey("When analyzing attendance patterns", func() {
			out, err := tools[1].Handler(context.Background(), json.RawMessage(`{"team_id":"7"}`))

			Convey("Then it should answer a zeroed patterns object", func() {
				So(err, ShouldBeNil)
				resp, ok := out.(types.AttendancePatternsResponse)
				So(ok, ShouldBeTrue)
				So(resp.Success, ShouldBeTrue)
				So(resp.TeamID, ShouldEqual, "7")
				So(resp.Patterns.TotalEvents, ShouldEqual, 0)
				So(resp.Patterns.AverageAttendanceRate, ShouldEqual, 0.0)
				So(resp.Patterns.MostConsistentPlayers, ShouldBeEmpty)
				So(resp.Patterns.AttendanceTrends, ShouldBeEmpty)
			})
		})

		Convey("When requesting an attendance report", func() {
			out, err := tools[2].Handler(context.Background(), json.RawMessage(
				`{"team_id":"7","event_id":"evt_3"}`,
			))

			Convey("Then it should answer a zeroed report", func() {
				So(err, ShouldBeNil)
				resp, ok := out.(types.AttendanceReportResponse)
				So(ok, ShouldBeTrue)
				So(resp.Success, ShouldBeTrue)
				So(resp.TeamID, ShouldEqual, "7")
				So(resp.EventID, ShouldEqual, "evt_3")
				So(resp.ReportData.TotalPlayers, ShouldEqual, 0)
				So(resp.ReportData.PresentCount, ShouldEqual, 0)
			})
		})

		Convey("When the body is not valid JSON", func() {
			_, err := tools[0].Handler(context.Background(), json.RawMessage(`{`))

			Convey("Then the decode failure should surface as an error", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}
