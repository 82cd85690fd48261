package eventstore_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/okian/captain/internal/adapters/delegate"
	"github.com/okian/captain/internal/adapters/eventstore"
	. "github.com/smartystreets/goconvey/convey"
)

func TestClient_CreateEvent(t *testing.T) {
	Convey("Given an event-store client", t, func() {
		ctx := context.Background()
		payload := map[string]any{
			"title":      "League Game",
			"date":       "2025-10-18",
			"time":       "14:00",
			"location":   "City Stadium",
			"event_type": "game",
			"team_id":    5,
		}

		Convey("When the store answers 200", func() {
			var gotPath string
			var gotBody []byte
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				gotBody, _ = io.ReadAll(r.Body)
				_, _ = w.Write([]byte(`{"id":"evt_1","status":"created"}`))
			}))
			defer srv.Close()

			client := eventstore.NewClient(srv.URL)
			result := client.CreateEvent(ctx, payload)

			Convey("Then the result is a success carrying the record", func() {
				So(result.Success, ShouldBeTrue)
				So(result.Kind, ShouldEqual, delegate.KindNone)
				So(string(result.Data), ShouldContainSubstring, `"id":"evt_1"`)
			})

			Convey("And the event was posted to /events with the team id attached", func() {
				So(gotPath, ShouldEqual, "/events")
				var sent map[string]any
				So(json.Unmarshal(gotBody, &sent), ShouldBeNil)
				So(sent["team_id"], ShouldEqual, 5)
				So(sent["title"], ShouldEqual, "League Game")
			})
		})

		Convey("When the store answers 201", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte(`{"id":"evt_2"}`))
			}))
			defer srv.Close()

			client := eventstore.NewClient(srv.URL)
			result := client.CreateEvent(ctx, payload)

			Convey("Then 201 also counts as created", func() {
				So(result.Success, ShouldBeTrue)
			})
		})

		Convey("When the store rejects the event", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte("DB error"))
			}))
			defer srv.Close()

			client := eventstore.NewClient(srv.URL)
			result := client.CreateEvent(ctx, payload)

			Convey("Then the result is an application failure with status and body", func() {
				So(result.Success, ShouldBeFalse)
				So(result.Kind, ShouldEqual, delegate.KindApplication)
				So(result.Error, ShouldEqual, "HTTP 500: DB error")
			})
		})

		Convey("When the store answers an unexpected 2xx", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusAccepted)
			}))
			defer srv.Close()

			client := eventstore.NewClient(srv.URL)
			result := client.CreateEvent(ctx, payload)

			Convey("Then only 200 and 201 count as success", func() {
				So(result.Success, ShouldBeFalse)
				So(result.Kind, ShouldEqual, delegate.KindApplication)
				So(result.Error, ShouldContainSubstring, "HTTP 202")
			})
		})

		Convey("When the store is unreachable", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
			srv.Close()

			client := eventstore.NewClient(srv.URL)
			result := client.CreateEvent(ctx, payload)

			Convey("Then the result is a transport failure", func() {
				So(result.Success, ShouldBeFalse)
				So(result.Kind, ShouldEqual, delegate.KindTransport)
				So(result.Error, ShouldNotBeEmpty)
			})
		})
	})
}
