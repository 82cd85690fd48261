package toolkit_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/okian/captain/internal/toolkit"
	. "github.com/smartystreets/goconvey/convey"
)

type greetInput struct {
	Name     string   `json:"name"`
	Shout    bool     `json:"shout,omitempty"`
	Times    int      `json:"times,omitempty"`
	Score    float64  `json:"score,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	internal string   //nolint:unused // verifies unexported fields are skipped
	Skipped  string   `json:"-"`
}

type greetOutput struct {
	Greeting string `json:"greeting"`
}

func TestNewTool(t *testing.T) {
	Convey("Given a typed tool", t, func() {
		tool := toolkit.NewTool("greet", "Greets a player by name",
			func(_ context.Context, in greetInput) (greetOutput, error) {
				return greetOutput{Greeting: "hello " + in.Name}, nil
			})

		Convey("When inspecting its definition", func() {
			def := tool.Definition()

			Convey("Then name and description are carried over", func() {
				So(def.Name, ShouldEqual, "greet")
				So(def.Description, ShouldEqual, "Greets a player by name")
			})

			Convey("And the declared fields follow the json tags", func() {
				So(len(def.Input), ShouldEqual, 5)
				So(def.Input[0].Name, ShouldEqual, "name")
				So(def.Input[0].Type, ShouldEqual, "string")
				So(def.Input[0].Required, ShouldBeTrue)
				So(def.Input[1].Name, ShouldEqual, "shout")
				So(def.Input[1].Type, ShouldEqual, "boolean")
				So(def.Input[1].Required, ShouldBeFalse)
				So(def.Input[2].Type, ShouldEqual, "integer")
				So(def.Input[3].Type, ShouldEqual, "number")
				So(def.Input[4].Type, ShouldEqual, "array")
			})
		})

		Convey("When invoking it with a valid body", func() {
			out, err := tool.Handler(context.Background(), json.RawMessage(`{"name":"sam"}`))

			Convey("Then the typed handler result is returned", func() {
				So(err, ShouldBeNil)
				So(out, ShouldResemble, greetOutput{Greeting: "hello sam"})
			})
		})

		Convey("When invoking it with an empty body", func() {
			out, err := tool.Handler(context.Background(), nil)

			Convey("Then the handler runs with the zero input", func() {
				So(err, ShouldBeNil)
				So(out, ShouldResemble, greetOutput{Greeting: "hello "})
			})
		})

		Convey("When invoking it with a malformed body", func() {
			_, err := tool.Handler(context.Background(), json.RawMessage(`{"name":`))

			Convey("Then the error is tagged as invalid input", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, toolkit.ErrInvalidInput), ShouldBeTrue)
			})
		})

		Convey("When invoking it with mistyped fields", func() {
			_, err := tool.Handler(context.Background(), json.RawMessage(`{"name": 42}`))

			Convey("Then the error is tagged as invalid input", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, toolkit.ErrInvalidInput), ShouldBeTrue)
			})
		})

		Convey("When the handler itself fails", func() {
			boom := errors.New("boom")
			failing := toolkit.NewTool("fail", "Always fails",
				func(_ context.Context, _ greetInput) (greetOutput, error) {
					return greetOutput{}, boom
				})
			_, err := failing.Handler(context.Background(), json.RawMessage(`{"name":"x"}`))

			Convey("Then the handler error is returned untagged", func() {
				So(err, ShouldEqual, boom)
				So(errors.Is(err, toolkit.ErrInvalidInput), ShouldBeFalse)
			})
		})
	})
}

func TestRegistry(t *testing.T) {
	Convey("Given a tool registry", t, func() {
		reg := toolkit.NewRegistry()
		echo := toolkit.NewTool("echo", "Echoes the input",
			func(_ context.Context, in greetInput) (greetInput, error) { return in, nil })
		greet := toolkit.NewTool("greet", "Greets",
			func(_ context.Context, in greetInput) (greetOutput, error) {
				return greetOutput{Greeting: in.Name}, nil
			})

		Convey("When adding tools", func() {
			err := reg.Add(echo, greet)

			Convey("Then they can be looked up by name", func() {
				So(err, ShouldBeNil)
				So(reg.Len(), ShouldEqual, 2)
				got, ok := reg.Get("echo")
				So(ok, ShouldBeTrue)
				So(got.Name, ShouldEqual, "echo")
				_, ok = reg.Get("missing")
				So(ok, ShouldBeFalse)
			})

			Convey("And definitions keep registration order", func() {
				defs := reg.Definitions()
				So(len(defs), ShouldEqual, 2)
				So(defs[0].Name, ShouldEqual, "echo")
				So(defs[1].Name, ShouldEqual, "greet")
			})
		})

		Convey("When adding a duplicate name", func() {
			So(reg.Add(echo), ShouldBeNil)
			err := reg.Add(echo)

			Convey("Then the duplicate is rejected", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, toolkit.ErrDuplicateTool), ShouldBeTrue)
				So(reg.Len(), ShouldEqual, 1)
			})
		})

		Convey("When adding an unnamed tool", func() {
			err := reg.Add(toolkit.Tool{Handler: echo.Handler})

			Convey("Then it is rejected", func() {
				So(errors.Is(err, toolkit.ErrUnnamedTool), ShouldBeTrue)
			})
		})

		Convey("When adding a tool without a handler", func() {
			err := reg.Add(toolkit.Tool{Name: "broken"})

			Convey("Then it is rejected", func() {
				So(errors.Is(err, toolkit.ErrNilHandler), ShouldBeTrue)
			})
		})
	})
}

func TestRequestIDContext(t *testing.T) {
	Convey("Given a context", t, func() {
		ctx := context.Background()

		Convey("When no request id was set", func() {
			So(toolkit.RequestID(ctx), ShouldEqual, "")
		})

		Convey("When a request id is attached", func() {
			ctx = toolkit.WithRequestID(ctx, "req-123")

			Convey("Then it can be read back", func() {
				So(toolkit.RequestID(ctx), ShouldEqual, "req-123")
			})
		})
	})
}
