package routine

import (
	"errors"
	"testing"
)

func ids(tasks []Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func seed() *TaskStore {
	return NewTaskStore([]Task{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}})
}

func TestTaskStoreMove(t *testing.T) {
	tests := []struct {
		from, to int
		want     []string
	}{
		{0, 2, []string{"b", "c", "a", "d"}},
		{3, 0, []string{"d", "a", "b", "c"}},
		{1, 1, []string{"a", "b", "c", "d"}},
		{2, 3, []string{"a", "b", "d", "c"}},
	}
	for _, tc := range tests {
		s := seed()
		if err := s.Move(tc.from, tc.to); err != nil {
			t.Fatalf("Move(%d, %d): %v", tc.from, tc.to, err)
		}
		if got := ids(s.All()); !equal(got, tc.want) {
			t.Errorf("Move(%d, %d) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestTaskStoreMoveOutOfRange(t *testing.T) {
	s := seed()
	for _, c := range [][2]int{{-1, 0}, {0, 4}, {4, 0}} {
		if err := s.Move(c[0], c[1]); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Move(%d, %d) err = %v, want ErrIndexOutOfRange", c[0], c[1], err)
		}
	}
	if got := ids(s.All()); !equal(got, []string{"a", "b", "c", "d"}) {
		t.Errorf("order changed after failed moves: %v", got)
	}
}

func TestTaskStoreCRUD(t *testing.T) {
	s := seed()
	s.Add(Task{ID: "e", Title: "walk"})
	if got, ok := s.Get("e"); !ok || got.Title != "walk" {
		t.Fatalf("Get(e) = %v, %v", got, ok)
	}
	if !s.Update(Task{ID: "e", Title: "run"}) {
		t.Fatal("Update(e) = false")
	}
	if s.Update(Task{ID: "zz"}) {
		t.Error("Update(zz) = true, want false")
	}
	done, ok := s.Toggle("e")
	if !ok || !done {
		t.Errorf("Toggle(e) = %v, %v", done, ok)
	}
	if !s.Delete("b") || s.Delete("b") {
		t.Error("Delete(b) should succeed exactly once")
	}
	if got := ids(s.All()); !equal(got, []string{"a", "c", "d", "e"}) {
		t.Errorf("ids = %v", got)
	}
}

func TestTaskStoreAllIsCopy(t *testing.T) {
	s := seed()
	all := s.All()
	all[0].Title = "mutated"
	if got, _ := s.Get("a"); got.Title != "" {
		t.Errorf("store mutated through All(): %q", got.Title)
	}
}

func TestEventStoreRemoveWhere(t *testing.T) {
	s := NewEventStore([]ScheduledEvent{
		{ID: "1", Schedule: Concrete{Date: "2024-06-01", Time: "9:00 AM"}},
		{ID: "2", Schedule: FullyTBD{}},
		{ID: "3", Schedule: TimeTBD{Date: "2024-06-01"}},
	})
	removed := s.RemoveWhere(func(e ScheduledEvent) bool { return e.Date() == "2024-06-01" })
	if len(removed) != 2 || removed[0].ID != "1" || removed[1].ID != "3" {
		t.Errorf("removed = %v", removed)
	}
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}
	if _, ok := s.Get("2"); !ok {
		t.Error("TBD event was removed")
	}
}

func TestPresetStoreDeleteActive(t *testing.T) {
	s := NewPresetStore([]Preset{{ID: "default"}, {ID: "work"}, {ID: "weekend"}}, "work")
	if !s.Delete("work") {
		t.Fatal("Delete(work) = false")
	}
	if s.ActiveID() != "default" {
		t.Errorf("active = %q, want default", s.ActiveID())
	}
	s.Delete("weekend")
	if s.ActiveID() != "default" {
		t.Errorf("deleting an inactive preset changed active to %q", s.ActiveID())
	}
}

func TestPresetStoreSync(t *testing.T) {
	s := NewPresetStore([]Preset{{ID: "default", Tasks: []Task{{ID: "a"}}}}, "default")
	if !s.Sync([]Task{{ID: "x"}, {ID: "y"}}) {
		t.Fatal("Sync = false")
	}
	p, _ := s.Active()
	if got := ids(p.Tasks); !equal(got, []string{"x", "y"}) {
		t.Errorf("active tasks = %v", got)
	}
	s.SetActive("missing")
	if s.Sync(nil) {
		t.Error("Sync with a missing active preset = true")
	}
}

func TestStateClone(t *testing.T) {
	st := State{
		Tasks:           []Task{{ID: "a"}},
		Presets:         []Preset{{ID: "default", Tasks: []Task{{ID: "a"}}}},
		CurrentPresetID: "default",
	}
	c := st.Clone()
	c.Tasks[0].Title = "changed"
	c.Presets[0].Tasks[0].Title = "changed"
	if st.Tasks[0].Title != "" || st.Presets[0].Tasks[0].Title != "" {
		t.Error("Clone shares memory with the original")
	}
	if c.ScheduledEvents == nil {
		t.Error("Clone of nil events should be empty, not nil")
	}
}

func TestInPeriodOrder(t *testing.T) {
	tasks := []Task{
		{ID: "wake", Time: "7:00 AM"},
		{ID: "snack", Time: "9:00 PM"},
		{ID: "read"},
		{ID: "coffee", Time: "8:00 AM"},
		{ID: "feed", Time: "1:00 AM"},
		{ID: "lunch", Time: "12:30 PM"},
	}
	got := ids(InPeriodOrder(tasks))
	want := []string{"wake", "coffee", "lunch", "snack", "feed", "read"}
	if !equal(got, want) {
		t.Fatalf("InPeriodOrder = %v, want %v", got, want)
	}
}
