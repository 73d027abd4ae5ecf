package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"time"

	"tableflip.dev/dayplan/pkg/routine"
	"tableflip.dev/dayplan/pkg/store"
	"tableflip.dev/dayplan/pkg/timeutil"
)

var (
	ErrNoPersistence  = errors.New("app: no persistence configured")
	ErrTaskNotFound   = errors.New("app: task not found")
	ErrEventNotFound  = errors.New("app: event not found")
	ErrPresetNotFound = errors.New("app: preset not found")
	ErrLastPreset     = errors.New("app: cannot delete the last preset")
	ErrBackupNotFound = errors.New("app: backup not found")
	ErrImport         = errors.New("app: import")
	ErrInvalid        = errors.New("app: invalid input")
)

// Options tune a Service. The zero value is usable.
type Options struct {
	// Clock supplies "now"; defaults to the wall clock.
	Clock timeutil.Clock
	// Logger receives diagnostics; defaults to discarding them.
	Logger *slog.Logger
	// BackupLimit caps the backup ledger; defaults to 10.
	BackupLimit int
	// SyncEventTasks keeps event-derived tasks when the active preset is
	// synchronized with the task list.
	SyncEventTasks bool
}

// Service is the routine engine. Edits land in an in-memory buffer seeded
// from the last saved state and are written back by Save. A Service is not
// safe for concurrent use.
type Service struct {
	Persistence store.Persistence

	clock  timeutil.Clock
	logger *slog.Logger
	opts   Options

	tasks   *routine.TaskStore
	events  *routine.EventStore
	presets *routine.PresetStore
	backups []routine.Backup

	lastResetDate string
	saved         snapshot
	unsaved       bool
	lastID        int64
}

// snapshot is the last state written to, or read from, persistence.
type snapshot struct {
	state         routine.State
	lastResetDate string
}

// Open loads the persisted state and runs the daily reset if the date has
// changed since the last one.
func Open(ctx context.Context, p store.Persistence, opts Options) (*Service, error) {
	if p == nil {
		return nil, ErrNoPersistence
	}
	if opts.Clock == nil {
		opts.Clock = timeutil.RealClock{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.BackupLimit <= 0 {
		opts.BackupLimit = store.DefaultBackupLimit
	}
	s := &Service{
		Persistence: p,
		clock:       opts.Clock,
		logger:      opts.Logger,
		opts:        opts,
	}
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	if _, err := s.CheckRollover(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload replaces the buffer with the persisted state. It refuses to drop
// unsaved edits and reports whether anything was reloaded.
func (s *Service) Reload(ctx context.Context) (bool, error) {
	if s.unsaved {
		return false, nil
	}
	if err := s.load(ctx); err != nil {
		return false, err
	}
	if _, err := s.CheckRollover(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.Watch(ctx)
}

// Now is the current time according to the service clock.
func (s *Service) Now() time.Time { return s.clock.Now() }

// Today is the local date key for now.
func (s *Service) Today() string { return timeutil.DateKey(s.clock.Now()) }

// LastResetDate is the date key of the most recent daily reset.
func (s *Service) LastResetDate() string { return s.lastResetDate }

// Unsaved reports whether the buffer differs from what was last saved.
func (s *Service) Unsaved() bool { return s.unsaved }

// Tasks returns today's tasks in display order.
func (s *Service) Tasks() []routine.Task { return s.tasks.All() }

// Events returns the scheduled events in creation order.
func (s *Service) Events() []routine.ScheduledEvent { return s.events.All() }

// Presets returns every preset.
func (s *Service) Presets() []routine.Preset { return s.presets.All() }

// CurrentPresetID is the id of the active preset.
func (s *Service) CurrentPresetID() string { return s.presets.ActiveID() }

// ActivePreset returns the active preset, if it exists.
func (s *Service) ActivePreset() (routine.Preset, bool) { return s.presets.Active() }

// State is a deep copy of the buffer.
func (s *Service) State() routine.State {
	return routine.State{
		Tasks:           s.tasks.All(),
		ScheduledEvents: s.events.All(),
		Presets:         s.presets.All(),
		CurrentPresetID: s.presets.ActiveID(),
	}
}

func (s *Service) setState(st routine.State) {
	st = st.Clone()
	s.tasks.Replace(st.Tasks)
	s.events.Replace(st.ScheduledEvents)
	s.presets.Replace(st.Presets, st.CurrentPresetID)
}

func (s *Service) touch() { s.unsaved = true }

// Save synchronizes the active preset and commits every key to persistence.
func (s *Service) Save(ctx context.Context) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.SyncActivePreset(s.tasks.All())
	st := s.State()
	writes := []struct {
		key string
		val any
	}{
		{KeyTasks, st.Tasks},
		{KeyEvents, st.ScheduledEvents},
		{KeyPresets, st.Presets},
		{KeyCurrentPreset, st.CurrentPresetID},
		{KeyLastReset, s.lastResetDate},
		{KeyBackups, s.Backups()},
	}
	for _, w := range writes {
		if err := s.put(w.key, w.val); err != nil {
			return err
		}
	}
	s.saved = snapshot{state: st, lastResetDate: s.lastResetDate}
	s.unsaved = false
	return nil
}

// Discard drops every unsaved edit, returning the buffer to the last saved
// state. The backup ledger is kept.
func (s *Service) Discard() {
	s.setState(s.saved.state)
	s.lastResetDate = s.saved.lastResetDate
	s.unsaved = false
}

// newID derives an id from the clock in milliseconds, bumped past the last
// issued id and any id already taken.
func (s *Service) newID(taken func(string) bool) string {
	n := s.clock.Now().UnixMilli()
	if n <= s.lastID {
		n = s.lastID + 1
	}
	for taken != nil && taken(strconv.FormatInt(n, 10)) {
		n++
	}
	s.lastID = n
	return strconv.FormatInt(n, 10)
}
