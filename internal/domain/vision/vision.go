// Package vision defines the contract for extracting schedule events from an
// uploaded image. The stub implementation stands in for an external vision
// model; real integration is out of scope.
package vision

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"
	"time"

	"github.com/okian/captain/internal/domain/model"
)

// Default analyzer configuration constants.
const (
	defaultMinLatency = 80 * time.Millisecond
	defaultMaxLatency = 150 * time.Millisecond
	defaultRandomSeed = 42

	// Confidence is derived deterministically from the image bytes and
	// mapped into [confidenceBase, confidenceBase+confidenceSpread].
	confidenceBase   = 0.75
	confidenceSpread = 0.2
	confidenceSteps  = 1000

	practiceTime = "18:00"
	gameTime     = "14:00"
	dateLayout   = "2006-01-02"
)

// Input abstracts the upload fields the analyzer needs.
type Input struct {
	TeamID   int64
	FileName string
	MIMEType string
	Content  []byte
}

// Result contains the candidate events extracted from one image.
type Result struct {
	Events     []model.CandidateEvent
	Confidence float64
}

// Analyzer extracts schedule events from an image. The implementation may
// simulate latency to model an external vision service.
type Analyzer interface {
	// Analyze extracts events, honoring ctx for cancellation.
	Analyze(ctx context.Context, in Input) (Result, error)
}

// StubAnalyzer implements Analyzer with simulated vision analysis: a latency
// pause followed by a fixed pair of candidate events dated relative to now,
// with a confidence derived from the image bytes.
type StubAnalyzer struct {
	// Simulated latency range
	minLatency time.Duration
	maxLatency time.Duration
	// Random source for latency jitter
	rng *rand.Rand
	// Clock hook for deterministic event dates in tests
	now func() time.Time
}

// NewStubAnalyzer creates a stub analyzer with configuration options.
func NewStubAnalyzer(opts ...Option) *StubAnalyzer {
	a := &StubAnalyzer{
		minLatency: defaultMinLatency,
		maxLatency: defaultMaxLatency,
		rng:        rand.New(rand.NewSource(defaultRandomSeed)), //nolint:gosec // deterministic seed for reproducible testing
		now:        time.Now,
	}

	// Apply all options
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Analyze simulates a vision pass over the image and returns two candidate
// events: the next weekly practice and the next home game.
func (a *StubAnalyzer) Analyze(ctx context.Context, in Input) (Result, error) {
	if len(in.Content) == 0 {
		return Result{}, ErrEmptyImage
	}

	// Simulate vision service latency
	latency := a.minLatency + time.Duration(a.rng.Int63n(int64(a.maxLatency-a.minLatency)))
	select {
	case <-ctx.Done():
		return Result{}, fmt.Errorf("context cancelled: %w", ctx.Err())
	case <-time.After(latency):
	}

	now := a.now()
	events := []model.CandidateEvent{
		{
			Title:       "Team Practice",
			Date:        nextWeekday(now, time.Tuesday).Format(dateLayout),
			Time:        practiceTime,
			Location:    "Home Training Ground",
			EventType:   model.EventTypePractice,
			Description: "Weekly team practice",
		},
		{
			Title:     "League Game",
			Date:      nextWeekday(now, time.Saturday).Format(dateLayout),
			Time:      gameTime,
			Location:  "City Stadium",
			EventType: model.EventTypeGame,
			Opponent:  "TBD",
		},
	}

	return Result{
		Events:     events,
		Confidence: confidenceOf(in.Content),
	}, nil
}

// confidenceOf maps the image bytes onto a stable confidence score so the
// same upload always reports the same value.
func confidenceOf(content []byte) float64 {
	h := fnv.New32a()
	_, _ = h.Write(content)
	frac := float64(h.Sum32()%confidenceSteps) / float64(confidenceSteps)
	c := confidenceBase + frac*confidenceSpread
	return math.Round(c*100) / 100
}

// nextWeekday returns the next occurrence of day strictly after from.
func nextWeekday(from time.Time, day time.Weekday) time.Time {
	delta := (int(day) - int(from.Weekday()) + 7) % 7
	if delta == 0 {
		delta = 7
	}
	return from.AddDate(0, 0, delta)
}
