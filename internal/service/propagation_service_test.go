package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/nandoripardo888/TO--DO/internal/event"
	"github.com/nandoripardo888/TO--DO/internal/model"
)

func seedPropagation(f *fakes) {
	f.task.tasks["task-1"] = &model.Task{TaskID: "task-1", EventID: "ev-1", Status: model.StatusPending}
	f.microtask.microtasks = []*model.Microtask{
		{MicrotaskID: "mt-1", TaskID: "task-1", EventID: "ev-1", Status: model.StatusAssigned},
		{MicrotaskID: "mt-2", TaskID: "task-1", EventID: "ev-1", Status: model.StatusPending},
	}
	f.assignment.assignments = []*model.Assignment{
		{AssignmentID: "as-1", UserID: "vol-1", MicrotaskID: "mt-1", TaskID: "task-1", EventID: "ev-1", Status: model.StatusAssigned},
		{AssignmentID: "as-2", UserID: "vol-2", MicrotaskID: "mt-1", TaskID: "task-1", EventID: "ev-1", Status: model.StatusAssigned},
	}
}

func TestPropagationRecompute(t *testing.T) {
	ctx := context.Background()

	t.Run("one started assignment pulls microtask and task to in progress", func(t *testing.T) {
		repo, f := newTestRepo()
		seedPropagation(f)
		f.assignment.assignments[0].Status = model.StatusInProgress
		svc := NewPropagationService(repo, zap.NewNop())

		if err := svc.Recompute(ctx, "mt-1"); err != nil {
			t.Fatalf("Recompute() error = %v", err)
		}
		if got := f.microtask.microtasks[0].Status; got != model.StatusInProgress {
			t.Errorf("microtask status = %q, want in_progress", got)
		}
		if got := f.task.tasks["task-1"].Status; got != model.StatusInProgress {
			t.Errorf("task status = %q, want in_progress", got)
		}
	})

	t.Run("all assignments completed cascades completion", func(t *testing.T) {
		repo, f := newTestRepo()
		seedPropagation(f)
		f.assignment.assignments[0].Status = model.StatusCompleted
		f.assignment.assignments[1].Status = model.StatusCompleted
		// mt-2 pending keeps the task short of completed
		svc := NewPropagationService(repo, zap.NewNop())

		if err := svc.Recompute(ctx, "mt-1"); err != nil {
			t.Fatalf("Recompute() error = %v", err)
		}
		if got := f.microtask.microtasks[0].Status; got != model.StatusCompleted {
			t.Errorf("microtask status = %q, want completed", got)
		}
		if got := f.task.tasks["task-1"].Status; got != model.StatusInProgress {
			t.Errorf("task status = %q, want in_progress", got)
		}
	})

	t.Run("last microtask completing completes the task", func(t *testing.T) {
		repo, f := newTestRepo()
		seedPropagation(f)
		f.microtask.microtasks[1].Status = model.StatusCompleted
		f.assignment.assignments[0].Status = model.StatusCompleted
		f.assignment.assignments[1].Status = model.StatusCompleted
		svc := NewPropagationService(repo, zap.NewNop())

		if err := svc.Recompute(ctx, "mt-1"); err != nil {
			t.Fatalf("Recompute() error = %v", err)
		}
		if got := f.task.tasks["task-1"].Status; got != model.StatusCompleted {
			t.Errorf("task status = %q, want completed", got)
		}
	})

	t.Run("idempotent when nothing changed", func(t *testing.T) {
		repo, f := newTestRepo()
		seedPropagation(f)
		// assignments all assigned, microtask already assigned: no write at all
		svc := NewPropagationService(repo, zap.NewNop())

		if err := svc.Recompute(ctx, "mt-1"); err != nil {
			t.Fatalf("Recompute() error = %v", err)
		}
		if len(f.microtask.writes) != 0 {
			t.Errorf("recorded %d microtask writes, want 0", len(f.microtask.writes))
		}
		if len(f.task.writes) != 0 {
			t.Errorf("recorded %d task writes, want 0", len(f.task.writes))
		}
	})

	t.Run("re-running after a write is a no-op", func(t *testing.T) {
		repo, f := newTestRepo()
		seedPropagation(f)
		f.assignment.assignments[0].Status = model.StatusInProgress
		svc := NewPropagationService(repo, zap.NewNop())

		if err := svc.Recompute(ctx, "mt-1"); err != nil {
			t.Fatalf("first Recompute() error = %v", err)
		}
		before := len(f.microtask.writes) + len(f.task.writes)
		if err := svc.Recompute(ctx, "mt-1"); err != nil {
			t.Fatalf("second Recompute() error = %v", err)
		}
		after := len(f.microtask.writes) + len(f.task.writes)
		if after != before {
			t.Errorf("second run wrote %d more updates", after-before)
		}
	})

	t.Run("no assignments keeps current status", func(t *testing.T) {
		repo, f := newTestRepo()
		seedPropagation(f)
		svc := NewPropagationService(repo, zap.NewNop())

		if err := svc.Recompute(ctx, "mt-2"); err != nil {
			t.Fatalf("Recompute() error = %v", err)
		}
		if got := f.microtask.microtasks[1].Status; got != model.StatusPending {
			t.Errorf("microtask status = %q, want pending", got)
		}
		if len(f.microtask.writes) != 0 {
			t.Errorf("recorded %d microtask writes, want 0", len(f.microtask.writes))
		}
	})

	t.Run("orphan assignments are tolerated", func(t *testing.T) {
		repo, f := newTestRepo()
		f.assignment.assignments = []*model.Assignment{
			{AssignmentID: "as-9", UserID: "vol-1", MicrotaskID: "mt-gone", Status: model.StatusCompleted},
		}
		svc := NewPropagationService(repo, zap.NewNop())

		if err := svc.Recompute(ctx, "mt-gone"); err != nil {
			t.Fatalf("Recompute() error = %v", err)
		}
	})

	t.Run("list failure surfaces", func(t *testing.T) {
		repo, f := newTestRepo()
		seedPropagation(f)
		f.assignment.listByMicrotaskErr = errors.New("db down")
		svc := NewPropagationService(repo, zap.NewNop())

		if err := svc.Recompute(ctx, "mt-1"); err == nil {
			t.Fatal("Recompute() should surface the list error")
		}
	})
}

func TestPropagationHandleStatusChange(t *testing.T) {
	ctx := context.Background()

	t.Run("unchanged status is a no-op", func(t *testing.T) {
		repo, f := newTestRepo()
		seedPropagation(f)
		f.assignment.listByMicrotaskErr = errors.New("must not be called")
		svc := NewPropagationService(repo, zap.NewNop())

		err := svc.HandleStatusChange(ctx, event.AssignmentStatusChanged{
			MicrotaskID: "mt-1",
			Before:      model.StatusAssigned,
			After:       model.StatusAssigned,
		})
		if err != nil {
			t.Fatalf("HandleStatusChange() error = %v", err)
		}
	})

	t.Run("propagates on real change", func(t *testing.T) {
		repo, f := newTestRepo()
		seedPropagation(f)
		f.assignment.assignments[0].Status = model.StatusInProgress
		svc := NewPropagationService(repo, zap.NewNop())

		err := svc.HandleStatusChange(ctx, event.AssignmentStatusChanged{
			AssignmentID: "as-1",
			MicrotaskID:  "mt-1",
			Before:       model.StatusAssigned,
			After:        model.StatusInProgress,
		})
		if err != nil {
			t.Fatalf("HandleStatusChange() error = %v", err)
		}
		if got := f.microtask.microtasks[0].Status; got != model.StatusInProgress {
			t.Errorf("microtask status = %q, want in_progress", got)
		}
	})

	t.Run("never returns propagation errors to the bus", func(t *testing.T) {
		repo, f := newTestRepo()
		seedPropagation(f)
		f.assignment.listByMicrotaskErr = errors.New("db down")
		svc := NewPropagationService(repo, zap.NewNop())

		err := svc.HandleStatusChange(ctx, event.AssignmentStatusChanged{
			MicrotaskID: "mt-1",
			Before:      model.StatusAssigned,
			After:       model.StatusInProgress,
		})
		if err != nil {
			t.Fatalf("HandleStatusChange() error = %v, want nil", err)
		}
	})
}
