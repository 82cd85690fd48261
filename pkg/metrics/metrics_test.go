package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsOptions(t *testing.T) {
	Convey("Given metrics options", t, func() {
		Convey("When creating options", func() {
			namespaceOpt := WithNamespace("test-namespace")
			subsystemOpt := WithSubsystem("test-subsystem")
			metricPrefixOpt := WithMetricPrefix("test-prefix")
			histogramBucketsOpt := WithHistogramBuckets([]float64{0.1, 0.5, 1.0})
			metricsEnabledOpt := WithMetricsEnabled(true)
			refreshIntervalOpt := WithRefreshInterval(5 * time.Second)
			customLabelsOpt := WithCustomLabels(map[string]string{"env": "test"})

			Convey("Then they should be valid functions", func() {
				So(namespaceOpt, ShouldNotBeNil)
				So(subsystemOpt, ShouldNotBeNil)
				So(metricPrefixOpt, ShouldNotBeNil)
				So(histogramBucketsOpt, ShouldNotBeNil)
				So(metricsEnabledOpt, ShouldNotBeNil)
				So(refreshIntervalOpt, ShouldNotBeNil)
				So(customLabelsOpt, ShouldNotBeNil)
			})
		})
	})
}

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test-namespace"),
				WithSubsystem("test-subsystem"),
				WithMetricPrefix("test-prefix"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithMetricsEnabled(true),
				WithRefreshInterval(10*time.Second),
				WithCustomLabels(map[string]string{"env": "test", "version": "1.0"}),
				WithPrometheusRegistry(registry),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given metrics recording", t, func() {
		Convey("When recording tool metrics", func() {
			Convey("Then it should record invocations", func() {
				So(func() {
					RecordToolInvocation("upload_schedule_image", "ok")
					RecordToolInvocation("create_schedule_events", "ok")
					RecordToolInvocation("analyze_schedule_image", "error")
				}, ShouldNotPanic)
			})

			Convey("And it should record tool latency", func() {
				So(func() {
					RecordToolLatency("upload_schedule_image", 120.0)
					RecordToolLatency("analyze_schedule_image", 95.5)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording pipeline metrics", func() {
			Convey("Then it should record runs and duration", func() {
				So(func() {
					RecordPipelineRun("done")
					RecordPipelineRun("failed")
					RecordPipelineDuration(250.0)
				}, ShouldNotPanic)
			})

			Convey("And it should record event counts", func() {
				So(func() {
					RecordEventsParsed(2)
					RecordEventCreated()
					RecordEventCreationFailure()
				}, ShouldNotPanic)
			})
		})

		Convey("When recording upload metrics", func() {
			So(func() {
				RecordImageProcessed()
				RecordImageDecodeError()
			}, ShouldNotPanic)
		})

		Convey("When recording delegation metrics", func() {
			Convey("Then it should record delegated calls", func() {
				So(func() {
					RecordDelegatedCall("schedule-agent", "analyze_schedule_image", "ok")
					RecordDelegatedCall("schedule-agent", "create_schedule_events", "transport_error")
					RecordDelegatedCall("event-store", "create_event", "application_error")
				}, ShouldNotPanic)
			})

			Convey("And it should record delegated call latency", func() {
				So(func() {
					RecordDelegatedCallLatency("schedule-agent", "analyze_schedule_image", 180.0)
					RecordDelegatedCallLatency("schedule-agent", "create_schedule_events", 40.0)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording event-store metrics", func() {
			So(func() {
				RecordStoreRequest("ok")
				RecordStoreRequest("application_error")
				RecordStoreRequestLatency(25.0)
			}, ShouldNotPanic)
		})

		Convey("When recording vision metrics", func() {
			So(func() {
				RecordVisionLatency(110.0)
				RecordVisionLatency(140.0)
			}, ShouldNotPanic)
		})

		Convey("When recording HTTP metrics", func() {
			Convey("Then it should record HTTP requests", func() {
				So(func() {
					RecordHTTPRequest("/health", "GET", "200")
					RecordHTTPRequest("/tools/upload_schedule_image", "POST", "200")
					RecordHTTPRequest("/tools", "GET", "200")
				}, ShouldNotPanic)
			})

			Convey("And it should record HTTP request duration", func() {
				So(func() {
					RecordHTTPRequestDuration("/health", "GET", "200", 1.0)
					RecordHTTPRequestDuration("/tools/upload_schedule_image", "POST", "200", 350.0)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording error metrics", func() {
			Convey("Then it should record errors by component", func() {
				So(func() {
					RecordErrorByComponent("delegate", "transport_error")
					RecordErrorByComponent("pipeline", "decode_error")
					RecordErrorByComponent("eventstore", "application_error")
				}, ShouldNotPanic)
			})

			Convey("And it should record errors by type", func() {
				So(func() {
					RecordErrorByType("timeout", "error")
					RecordErrorByType("validation_error", "warning")
				}, ShouldNotPanic)
			})

			Convey("And it should record errors by endpoint", func() {
				So(func() {
					RecordErrorByEndpoint("/tools/upload_schedule_image", "POST", "decode_error")
					RecordErrorByEndpoint("/tools/create_schedule_events", "POST", "timeout")
				}, ShouldNotPanic)
			})

			Convey("And it should record error latency", func() {
				So(func() {
					RecordErrorLatency("delegate", "timeout", 30000.0)
					RecordErrorLatency("pipeline", "decode_error", 2.0)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording system metrics", func() {
			Convey("Then it should update system memory usage", func() {
				So(func() {
					UpdateSystemMemoryUsage(1024 * 1024 * 100)
					UpdateSystemMemoryUsage(1024 * 1024 * 200)
				}, ShouldNotPanic)
			})

			Convey("And it should update system goroutine count", func() {
				So(func() {
					UpdateSystemGoroutineCount(100)
					UpdateSystemGoroutineCount(200)
				}, ShouldNotPanic)
			})

			Convey("And it should record system GC pause time", func() {
				So(func() {
					RecordSystemGCPauseTime(1.0)
					RecordSystemGCPauseTime(2.0)
				}, ShouldNotPanic)
			})
		})
	})
}

func TestMetricsEdgeCases(t *testing.T) {
	Convey("Given metrics edge cases", t, func() {
		Convey("When recording metrics with edge values", func() {
			Convey("And using zero values", func() {
				So(func() {
					RecordEventsParsed(0)
					RecordToolLatency("upload_schedule_image", 0.0)
					RecordHTTPRequestDuration("/test", "GET", "200", 0.0)
					UpdateSystemGoroutineCount(0)
				}, ShouldNotPanic)
			})

			Convey("And using very large values", func() {
				So(func() {
					RecordEventsParsed(1000000)
					RecordPipelineDuration(10000.0)
					RecordHTTPRequestDuration("/test", "GET", "200", 30000.0)
				}, ShouldNotPanic)
			})

			Convey("And using empty strings", func() {
				So(func() {
					RecordToolInvocation("", "")
					RecordHTTPRequest("", "", "200")
					RecordErrorByComponent("", "")
					RecordErrorByType("", "")
					RecordErrorByEndpoint("", "", "")
					RecordErrorLatency("", "", 10.0)
				}, ShouldNotPanic)
			})

			Convey("And using special characters in labels", func() {
				So(func() {
					RecordHTTPRequest("/tools/upload_schedule_image?verbose=1", "POST", "200")
					RecordErrorByComponent("component-with-dash", "error_with_underscore")
					RecordErrorByType("error.with.dots", "error")
				}, ShouldNotPanic)
			})
		})
	})
}

func TestMetricsConcurrency(t *testing.T) {
	Convey("Given metrics concurrency", t, func() {
		Convey("When recording metrics concurrently", func() {
			done := make(chan bool, 10)

			// Start multiple goroutines recording metrics
			for i := 0; i < 10; i++ {
				go func(id int) {
					for j := 0; j < 100; j++ {
						RecordToolInvocation("upload_schedule_image", "ok")
						RecordPipelineDuration(float64(j))
						RecordDelegatedCall("schedule-agent", "analyze_schedule_image", "ok")
						RecordHTTPRequest("/tools", "GET", "200")
					}
					done <- true
				}(i)
			}

			// Wait for all goroutines to complete
			for i := 0; i < 10; i++ {
				<-done
			}

			Convey("Then it should handle concurrent access without panics", func() {
				So(true, ShouldBeTrue) // If we get here, no panics occurred
			})
		})
	})
}

func TestMetricsOptionsValidation(t *testing.T) {
	Convey("Given metrics options validation", t, func() {
		Convey("When creating with empty namespace", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithNamespace(""), WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with empty subsystem", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithSubsystem(""), WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with nil histogram buckets", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithHistogramBuckets(nil), WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with nil custom labels", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithCustomLabels(nil), WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with zero refresh interval", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithRefreshInterval(0), WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})
	})
}
