package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func backends(t *testing.T) map[string]Persistence {
	t.Helper()
	disk, err := Load(StaticConfig{Path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	return map[string]Persistence{
		"diskv":  disk,
		"memory": NewMemory(),
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	for name, p := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := p.Get("lastResetDate"); !errors.Is(err, ErrNotFound) {
				t.Fatalf("Get on empty store: %v, want ErrNotFound", err)
			}
			if err := p.Set("lastResetDate", []byte(`"2024-06-01"`)); err != nil {
				t.Fatalf("Set: %v", err)
			}
			if err := p.Set("currentPresetId", []byte(`"default"`)); err != nil {
				t.Fatalf("Set: %v", err)
			}
			got, err := p.Get("lastResetDate")
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if string(got) != `"2024-06-01"` {
				t.Errorf("Get = %s", got)
			}

			keys := p.Keys(context.Background())
			if len(keys) != 2 || keys[0] != "currentPresetId" || keys[1] != "lastResetDate" {
				t.Errorf("Keys = %v", keys)
			}

			if err := p.Delete("lastResetDate"); err != nil {
				t.Fatalf("Delete: %v", err)
			}
			if err := p.Delete("lastResetDate"); err != nil {
				t.Fatalf("second Delete: %v", err)
			}
			if _, err := p.Get("lastResetDate"); !errors.Is(err, ErrNotFound) {
				t.Errorf("Get after Delete: %v", err)
			}
		})
	}
}

func TestPersistenceRejectsBadKeys(t *testing.T) {
	for name, p := range backends(t) {
		t.Run(name, func(t *testing.T) {
			for _, k := range []string{"", "a/b", `a\b`} {
				if err := p.Set(k, nil); err == nil {
					t.Errorf("Set(%q) succeeded", k)
				}
			}
		})
	}
}

func TestDiskvLayout(t *testing.T) {
	base := t.TempDir()
	p, err := Load(StaticConfig{Path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	if err := p.Set("scheduledEvents", []byte(`[]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	b, err := os.ReadFile(filepath.Join(base, "scheduledEvents.json"))
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if string(b) != `[]` {
		t.Errorf("file = %s", b)
	}
}

func TestDiskvSeesExternalWrites(t *testing.T) {
	base := t.TempDir()
	p, err := Load(StaticConfig{Path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	if err := p.Set("currentPresetId", []byte(`"default"`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, err := p.Get("currentPresetId"); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if err := os.WriteFile(filepath.Join(base, "currentPresetId.json"), []byte(`"work"`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := p.Get("currentPresetId")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != `"work"` {
		t.Errorf("Get = %s, want the externally written value", got)
	}
}

func TestMemoryWatch(t *testing.T) {
	p := NewMemory()
	ctx, cancel := context.WithCancel(context.Background())
	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	if err := p.Set("currentDayTasks", []byte(`[]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	ev := <-ch
	if ev.Type != EventKeyChanged || ev.Key != "currentDayTasks" {
		t.Errorf("event = %+v", ev)
	}
	cancel()
	for range ch {
	}
}
