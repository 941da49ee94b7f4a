package world

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/dungeonmaze/internal/telemetry"
)

// GenerateOptions controls floor generation.
type GenerateOptions struct {
	// GenerateExit places an exit door. Floors without an exit, such as the
	// final return trip, leave Exit set to NoPoint.
	GenerateExit bool

	// Rand drives every random choice. A nil Rand is seeded from the clock.
	Rand *rand.Rand
}

// Generate fills m with a new floor: it corrects the dimensions, carves a
// maze, adds loops, places the doors and populates the floor. On error the
// map must not be used.
func Generate(ctx context.Context, m *Map, opts GenerateOptions) error {
	if m == nil {
		return ErrNilMap
	}

	_, span := telemetry.Tracer("world").Start(ctx, "floor.generate")
	defer span.End()
	startTime := time.Now()

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	for _, fix := range m.normalize() {
		span.AddEvent("input.corrected", trace.WithAttributes(attribute.String("correction", fix)))
	}
	if err := m.allocate(); err != nil {
		return fail(span, err)
	}

	start := Point{1 + 2*rng.Intn((m.Width-1)/2), 1 + 2*rng.Intn((m.Height-1)/2)}
	cells := Carve(m, start, rng)
	loops := InjectLoops(m, rng)

	startEdge, err := PlaceStart(m, rng)
	if err != nil {
		return fail(span, fmt.Errorf("place start: %w", err))
	}
	span.SetAttributes(attribute.String("floor.start_edge", startEdge.String()))

	if opts.GenerateExit {
		exitEdge, err := PlaceExit(m, startEdge, rng)
		if err != nil {
			return fail(span, fmt.Errorf("place exit: %w", err))
		}
		span.SetAttributes(attribute.String("floor.exit_edge", exitEdge.String()))
	} else {
		m.Exit = NoPoint
	}

	if err := Populate(m, rng); err != nil {
		return fail(span, err)
	}
	if err := Validate(m); err != nil {
		return fail(span, err)
	}

	span.SetAttributes(
		attribute.Int("floor.number", m.Floor),
		attribute.Int("floor.width", m.Width),
		attribute.Int("floor.height", m.Height),
		attribute.Int("floor.cells", cells),
		attribute.Int("floor.loops", loops),
		attribute.Int("floor.enemy_count", m.EnemyCount),
		attribute.Int64("floor.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return nil
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
