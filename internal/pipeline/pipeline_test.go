package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"
	"testing"

	"github.com/nao1215/tripscout/internal/model"
)

// mockStep is a test helper that implements the Step interface.
type mockStep struct {
	name      string
	doFunc    func(ctx context.Context, plan *model.TripPlan) error
	callCount int
}

// Do implements Step.Do.
func (m *mockStep) Do(ctx context.Context, plan *model.TripPlan) error {
	m.callCount++
	if m.doFunc != nil {
		return m.doFunc(ctx, plan)
	}
	return nil
}

// Name implements Step.Name.
func (m *mockStep) Name() string {
	return m.name
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newPlan() *model.TripPlan {
	return model.NewTripPlan("Madrid travel 26-28 September 2025", "Madrid", "2025-09-26", "2025-09-28")
}

// TestPipelineNew tests the Pipeline constructor.
func TestPipelineNew(t *testing.T) {
	t.Parallel()

	t.Run("creates pipeline with default settings", func(t *testing.T) {
		t.Parallel()

		p := New()
		if p.StepCount() != 0 {
			t.Errorf("expected 0 steps, got %d", p.StepCount())
		}
		if p.continueOnError {
			t.Error("expected continueOnError to be false")
		}
		if p.logger == nil {
			t.Error("expected default logger")
		}
	})

	t.Run("applies WithContinueOnError option", func(t *testing.T) {
		t.Parallel()

		if p := New(WithContinueOnError(true)); !p.continueOnError {
			t.Error("expected continueOnError to be true")
		}
	})
}

// TestPipelineAddStep tests adding steps to the pipeline.
func TestPipelineAddStep(t *testing.T) {
	t.Parallel()

	t.Run("adds single step", func(t *testing.T) {
		t.Parallel()

		p := New()
		p.AddStep(&mockStep{name: "one"})
		if p.StepCount() != 1 {
			t.Errorf("expected 1 step, got %d", p.StepCount())
		}
	})

	t.Run("maintains step order", func(t *testing.T) {
		t.Parallel()

		p := New()
		p.AddStep(&mockStep{name: "first"})
		p.AddSteps(&mockStep{name: "second"}, &mockStep{name: "third"})

		want := []string{"first", "second", "third"}
		if got := p.StepNames(); !slices.Equal(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})
}

// TestPipelineExecute tests pipeline execution.
func TestPipelineExecute(t *testing.T) {
	t.Parallel()

	t.Run("executes all steps in order", func(t *testing.T) {
		t.Parallel()

		var order []string
		record := func(name string) *mockStep {
			return &mockStep{name: name, doFunc: func(context.Context, *model.TripPlan) error {
				order = append(order, name)
				return nil
			}}
		}

		p := New(WithLogger(discardLogger()))
		p.AddSteps(record("a"), record("b"), record("c"))

		plan := newPlan()
		if err := p.Execute(context.Background(), plan); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !slices.Equal(order, []string{"a", "b", "c"}) {
			t.Errorf("unexpected order %v", order)
		}
		if !slices.Equal(plan.PerformedSteps, []string{"a", "b", "c"}) {
			t.Errorf("unexpected performed steps %v", plan.PerformedSteps)
		}
	})

	t.Run("stops on first error by default", func(t *testing.T) {
		t.Parallel()

		stepErr := errors.New("boom")
		failing := &mockStep{name: "fail", doFunc: func(context.Context, *model.TripPlan) error { return stepErr }}
		after := &mockStep{name: "after"}

		p := New(WithLogger(discardLogger()))
		p.AddSteps(failing, after)

		plan := newPlan()
		if err := p.Execute(context.Background(), plan); !errors.Is(err, stepErr) {
			t.Fatalf("expected step error, got %v", err)
		}
		if after.callCount != 0 {
			t.Error("step after failure should not run")
		}
		if !slices.Equal(plan.PerformedSteps, []string{"fail"}) {
			t.Errorf("unexpected performed steps %v", plan.PerformedSteps)
		}
	})

	t.Run("continues on error when configured", func(t *testing.T) {
		t.Parallel()

		firstErr := errors.New("first")
		secondErr := errors.New("second")
		p := New(WithLogger(discardLogger()), WithContinueOnError(true))
		after := &mockStep{name: "after"}
		p.AddSteps(
			&mockStep{name: "one", doFunc: func(context.Context, *model.TripPlan) error { return firstErr }},
			&mockStep{name: "two", doFunc: func(context.Context, *model.TripPlan) error { return secondErr }},
			after,
		)

		if err := p.Execute(context.Background(), newPlan()); !errors.Is(err, firstErr) {
			t.Fatalf("expected first error, got %v", err)
		}
		if after.callCount != 1 {
			t.Error("expected remaining step to run")
		}
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		step := &mockStep{name: "never"}
		p := New(WithLogger(discardLogger()))
		p.AddStep(step)

		if err := p.Execute(ctx, newPlan()); !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
		if step.callCount != 0 {
			t.Error("step should not run after cancellation")
		}
	})
}

// TestPipelineStepNames tests StepNames.
func TestPipelineStepNames(t *testing.T) {
	t.Parallel()

	if names := New().StepNames(); len(names) != 0 {
		t.Errorf("expected empty names, got %v", names)
	}
}
