package mcp

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/dayplan/pkg/app"
	"tableflip.dev/dayplan/pkg/store"
	"tableflip.dev/dayplan/pkg/timeutil"
)

func newTestService(t *testing.T) (*Service, store.Persistence, *timeutil.FakeClock) {
	t.Helper()
	p := store.NewMemory()
	clock := timeutil.NewFakeClock(time.Date(2024, time.June, 1, 9, 0, 0, 0, time.Local))
	a, err := app.Open(context.Background(), p, app.Options{Clock: clock})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return NewService(a), p, clock
}

func TestServiceAddTaskIsSaved(t *testing.T) {
	ctx := context.Background()
	svc, p, clock := newTestService(t)

	task, err := svc.AddTask(ctx, app.TaskInput{Title: "Stretch", Time: "7am"})
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	if task.Time != "7:00 AM" {
		t.Fatalf("expected normalized time, got %q", task.Time)
	}

	// A second planner over the same store sees the task.
	other, err := app.Open(ctx, p, app.Options{Clock: clock})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, err := other.Task(task.ID); err != nil {
		t.Fatalf("expected task to be persisted: %v", err)
	}
}

func TestServiceFailedWriteLeavesNothingBehind(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	before, err := svc.Today(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.ToggleTask(ctx, "no-such-task"); !errors.Is(err, app.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
	if _, err := svc.MoveTask(ctx, "1", "sideways"); !errors.Is(err, app.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	after, err := svc.Today(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(after.Tasks) != len(before.Tasks) || after.Report.Completed != before.Report.Completed {
		t.Fatalf("state changed after failed writes")
	}
}

func TestServiceToggleByPosition(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	task, err := svc.ToggleTask(ctx, "1")
	if err != nil {
		t.Fatalf("ToggleTask failed: %v", err)
	}
	if !task.Completed {
		t.Fatalf("expected first task to be completed")
	}
	day, err := svc.Today(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if day.Report.Completed != 1 {
		t.Fatalf("expected 1 completed, got %d", day.Report.Completed)
	}
}

func TestServiceEventsAndRollover(t *testing.T) {
	ctx := context.Background()
	svc, _, clock := newTestService(t)

	if _, err := svc.AddEvent(ctx, app.EventInput{Title: "Dentist", Date: "2024-06-02", Time: "2:00 PM"}); err != nil {
		t.Fatalf("AddEvent failed: %v", err)
	}
	if _, err := svc.AddEvent(ctx, app.EventInput{Title: "Party"}); err != nil {
		t.Fatalf("AddEvent failed: %v", err)
	}

	tbd, err := svc.ListEvents(ctx, EventQuery{TBD: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(tbd) != 1 || tbd[0].Title != "Party" {
		t.Fatalf("expected only Party to be TBD, got %+v", tbd)
	}

	clock.Advance(24 * time.Hour)
	res, err := svc.CheckRollover(ctx)
	if err != nil {
		t.Fatalf("CheckRollover failed: %v", err)
	}
	if res == nil || len(res.Converted) != 1 {
		t.Fatalf("expected the dentist to be converted, got %+v", res)
	}

	day, err := svc.Today(ctx)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, task := range day.Tasks {
		if task.Title == "Dentist" && task.IsScheduledEvent {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected Dentist among today's tasks")
	}
	left, err := svc.ListEvents(ctx, EventQuery{})
	if err != nil {
		t.Fatal(err)
	}
	if len(left) != 1 {
		t.Fatalf("expected one event left, got %d", len(left))
	}
}

func TestServicePresetLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	p, err := svc.CreatePreset(ctx, "Weekend")
	if err != nil {
		t.Fatalf("CreatePreset failed: %v", err)
	}
	if _, err := svc.ApplyPreset(ctx, "weekend"); err != nil {
		t.Fatalf("ApplyPreset by name failed: %v", err)
	}
	list, err := svc.Presets(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if list.CurrentPresetID != p.ID {
		t.Fatalf("expected %s active, got %s", p.ID, list.CurrentPresetID)
	}
	if _, err := svc.DeletePreset(ctx, "default"); err != nil {
		t.Fatalf("DeletePreset failed: %v", err)
	}
	if _, err := svc.DeletePreset(ctx, p.ID); !errors.Is(err, app.ErrLastPreset) {
		t.Fatalf("expected ErrLastPreset, got %v", err)
	}
	backups, err := svc.Backups(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) == 0 {
		t.Fatalf("expected applying a preset to take a backup")
	}
}
