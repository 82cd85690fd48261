package delegate_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/okian/captain/internal/adapters/delegate"
	"github.com/okian/captain/internal/toolkit"
	. "github.com/smartystreets/goconvey/convey"
)

func TestClient_Call(t *testing.T) {
	Convey("Given a delegation client", t, func() {
		ctx := context.Background()

		Convey("When the target answers 200 with a JSON body", func() {
			var gotPath, gotContentType string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				gotContentType = r.Header.Get("Content-Type")
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"success":true,"message":"ok"}`))
			}))
			defer srv.Close()

			client := delegate.NewClient("schedule-agent", srv.URL)
			result := client.Call(ctx, "analyze_schedule_image", map[string]any{"team_id": 5})

			Convey("Then the result is a success carrying the body", func() {
				So(result.Success, ShouldBeTrue)
				So(result.Kind, ShouldEqual, delegate.KindNone)
				So(result.Error, ShouldBeEmpty)
				So(string(result.Data), ShouldContainSubstring, `"message":"ok"`)
			})

			Convey("And the request targeted the tool endpoint as JSON", func() {
				So(gotPath, ShouldEqual, "/tools/analyze_schedule_image")
				So(gotContentType, ShouldEqual, "application/json")
			})

			Convey("And the payload decodes into a typed value", func() {
				var decoded struct {
					Success bool   `json:"success"`
					Message string `json:"message"`
				}
				So(result.Decode(&decoded), ShouldBeNil)
				So(decoded.Success, ShouldBeTrue)
				So(decoded.Message, ShouldEqual, "ok")
			})
		})

		Convey("When the target answers a non-2xx status", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte("DB error"))
			}))
			defer srv.Close()

			client := delegate.NewClient("schedule-agent", srv.URL)
			result := client.Call(ctx, "create_schedule_events", nil)

			Convey("Then the result is an application failure with status and body", func() {
				So(result.Success, ShouldBeFalse)
				So(result.Kind, ShouldEqual, delegate.KindApplication)
				So(result.Error, ShouldEqual, "HTTP 500: DB error")
			})

			Convey("And decoding the failed result reports no data", func() {
				var v map[string]any
				err := result.Decode(&v)
				So(err, ShouldNotBeNil)
				So(errors.Is(err, delegate.ErrNoData), ShouldBeTrue)
			})
		})

		Convey("When the target is unreachable", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
			srv.Close() // connection refused from here on

			client := delegate.NewClient("schedule-agent", srv.URL)
			result := client.Call(ctx, "analyze_schedule_image", nil)

			Convey("Then the result is a transport failure", func() {
				So(result.Success, ShouldBeFalse)
				So(result.Kind, ShouldEqual, delegate.KindTransport)
				So(result.Error, ShouldNotBeEmpty)
			})
		})

		Convey("When the target is slower than the timeout", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				time.Sleep(200 * time.Millisecond)
				w.WriteHeader(http.StatusOK)
			}))
			defer srv.Close()

			client := delegate.NewClient("schedule-agent", srv.URL,
				delegate.WithTimeout(20*time.Millisecond))
			result := client.Call(ctx, "analyze_schedule_image", nil)

			Convey("Then the result is a transport failure", func() {
				So(result.Success, ShouldBeFalse)
				So(result.Kind, ShouldEqual, delegate.KindTransport)
			})
		})

		Convey("When the context carries a request id", func() {
			var gotRequestID string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotRequestID = r.Header.Get(toolkit.RequestIDHeader)
				_, _ = w.Write([]byte(`{}`))
			}))
			defer srv.Close()

			client := delegate.NewClient("schedule-agent", srv.URL)
			result := client.Call(toolkit.WithRequestID(ctx, "req-42"), "analyze_schedule_image", nil)

			Convey("Then the id is propagated on the wire", func() {
				So(result.Success, ShouldBeTrue)
				So(gotRequestID, ShouldEqual, "req-42")
			})
		})

		Convey("When the payload cannot be encoded", func() {
			client := delegate.NewClient("schedule-agent", "http://unused")
			result := client.Call(ctx, "analyze_schedule_image", map[string]any{"bad": func() {}})

			Convey("Then the result is a transport failure naming the encode step", func() {
				So(result.Success, ShouldBeFalse)
				So(result.Kind, ShouldEqual, delegate.KindTransport)
				So(result.Error, ShouldContainSubstring, "encode request")
			})
		})

		Convey("When a 201 Created is returned", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte(`{"id":"evt_1"}`))
			}))
			defer srv.Close()

			client := delegate.NewClient("event-store", srv.URL)
			result := client.Call(ctx, "anything", json.RawMessage(`{}`))

			Convey("Then any 2xx counts as success", func() {
				So(result.Success, ShouldBeTrue)
				So(string(result.Data), ShouldEqual, `{"id":"evt_1"}`)
			})
		})
	})
}
