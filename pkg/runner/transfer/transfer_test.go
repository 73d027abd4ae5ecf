package transfer

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/dayplan/pkg/app"
	"tableflip.dev/dayplan/pkg/printers"
	"tableflip.dev/dayplan/pkg/store"
	"tableflip.dev/dayplan/pkg/timeutil"
)

func init() {
	color.NoColor = true
}

func newService(t *testing.T) *app.Service {
	t.Helper()
	clock := timeutil.NewFakeClock(time.Date(2024, time.June, 1, 9, 0, 0, 0, time.Local))
	svc, err := app.Open(context.Background(), store.NewMemory(), app.Options{Clock: clock})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return svc
}

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := newService(t)
	if _, err := src.AddEvent(app.EventInput{Title: "Dentist", Date: "2024-06-03", Time: "2pm"}); err != nil {
		t.Fatalf("AddEvent failed: %v", err)
	}
	if _, err := src.CreatePreset("Weekend"); err != nil {
		t.Fatalf("CreatePreset failed: %v", err)
	}

	var out bytes.Buffer
	export := Export{Service: src, Out: &out}
	if err := export.Do(ctx); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	dst := newService(t)
	imp := Import{Service: dst, Path: "-", In: &out, Output: printers.FormatJSON}
	if err := imp.Do(ctx); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	if len(dst.Events()) != 1 || dst.Events()[0].Title != "Dentist" {
		t.Fatalf("expected the event to be imported, got %+v", dst.Events())
	}
	if len(dst.Presets()) != 2 {
		t.Fatalf("expected 2 presets, got %d", len(dst.Presets()))
	}
	if dst.Unsaved() {
		t.Fatalf("expected import to be saved")
	}
	if len(dst.Backups()) == 0 {
		t.Fatalf("expected a backup of the previous state")
	}
}

func TestImportRejectsGarbage(t *testing.T) {
	svc := newService(t)
	before := svc.Tasks()

	imp := Import{Service: svc, Path: "-", In: strings.NewReader("{not json")}
	if err := imp.Do(context.Background()); err == nil {
		t.Fatalf("expected an error")
	}
	if len(svc.Tasks()) != len(before) || svc.Unsaved() {
		t.Fatalf("expected the planner to be unchanged")
	}
}

func TestExportICSToFile(t *testing.T) {
	svc := newService(t)
	if _, err := svc.AddEvent(app.EventInput{Title: "Dentist", Date: "2024-06-03", Time: "2pm"}); err != nil {
		t.Fatalf("AddEvent failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "events.ics")
	export := Export{Service: svc, Format: FormatICS, Path: path}
	if err := export.Do(context.Background()); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(b), "BEGIN:VCALENDAR") || !strings.Contains(string(b), "SUMMARY:Dentist") {
		t.Fatalf("unexpected calendar:\n%s", b)
	}
}

func TestExportUnknownFormat(t *testing.T) {
	export := Export{Service: newService(t), Format: "csv", Out: &bytes.Buffer{}}
	if err := export.Do(context.Background()); err == nil {
		t.Fatalf("expected csv to be rejected")
	}
}
