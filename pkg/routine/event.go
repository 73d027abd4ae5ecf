package routine

import (
	"encoding/json"
	"strings"
)

// Schedule says when a scheduled event happens. It is one of Concrete,
// DateTBD, TimeTBD or FullyTBD.
type Schedule interface {
	// DateKey is the event date, empty while the date is to be determined.
	DateKey() string
	// Clock is the event time, empty while the time is to be determined.
	Clock() string
	isSchedule()
}

// Concrete has both a date and a time.
type Concrete struct {
	Date string
	Time string
}

// DateTBD has a time but no date yet.
type DateTBD struct {
	Time string
}

// TimeTBD has a date but no time yet.
type TimeTBD struct {
	Date string
}

// FullyTBD has neither a date nor a time.
type FullyTBD struct{}

func (s Concrete) DateKey() string { return s.Date }
func (s Concrete) Clock() string { return s.Time }
func (Concrete) isSchedule() {}

func (DateTBD) DateKey() string { return "" }
func (s DateTBD) Clock() string { return s.Time }
func (DateTBD) isSchedule() {}

func (s TimeTBD) DateKey() string { return s.Date }
func (TimeTBD) Clock() string { return "" }
func (TimeTBD) isSchedule() {}

func (FullyTBD) DateKey() string { return "" }
func (FullyTBD) Clock() string { return "" }
func (FullyTBD) isSchedule() {}

// NewSchedule builds the variant matching the known fields. Blank values
// count as unknown.
func NewSchedule(date, clock string) Schedule {
	date, clock = strings.TrimSpace(date), strings.TrimSpace(clock)
	switch {
	case date != "" && clock != "":
		return Concrete{Date: date, Time: clock}
	case date != "":
		return TimeTBD{Date: date}
	case clock != "":
		return DateTBD{Time: clock}
	default:
		return FullyTBD{}
	}
}

// ScheduledEvent is a future event that is folded into the task list on its date.
type ScheduledEvent struct {
	ID       string
	Title    string
	Icon     string
	Schedule Schedule
}

// When returns the schedule, treating a nil schedule as fully undetermined.
func (e ScheduledEvent) When() Schedule {
	if e.Schedule == nil {
		return FullyTBD{}
	}
	return e.Schedule
}

// IsDateTBD reports whether the event has no date.
func (e ScheduledEvent) IsDateTBD() bool { return e.When().DateKey() == "" }

// IsTimeTBD reports whether the event has no time.
func (e ScheduledEvent) IsTimeTBD() bool { return e.When().Clock() == "" }

// Date returns the event date key, empty when undetermined.
func (e ScheduledEvent) Date() string { return e.When().DateKey() }

// Time returns the event clock time, empty when undetermined.
func (e ScheduledEvent) Time() string { return e.When().Clock() }

// AsTask materializes the event as a task for its day.
func (e ScheduledEvent) AsTask() Task {
	return Task{
		ID:               EventTaskPrefix + e.ID,
		Title:            e.Title,
		Icon:             e.Icon,
		Time:             e.Time(),
		Completed:        false,
		IsScheduledEvent: true,
	}
}

// Record returns the flat wire form of the event.
func (e ScheduledEvent) Record() EventRecord {
	rec := EventRecord{ID: e.ID, Title: e.Title, Icon: e.Icon}
	date, clock := e.Date(), e.Time()
	isTBD, isTimeTBD := date == "", clock == ""
	if !isTBD {
		rec.Date = &date
	}
	if !isTimeTBD {
		rec.Time = &clock
	}
	rec.IsTBD = &isTBD
	rec.IsTimeTBD = &isTimeTBD
	return rec
}

func (e ScheduledEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Record())
}

func (e *ScheduledEvent) UnmarshalJSON(b []byte) error {
	var rec EventRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return err
	}
	*e = rec.Migrate().Event()
	return nil
}

// EventRecord is the persisted shape of a scheduled event. Older records may
// lack the TBD flags, which is why they are pointers.
type EventRecord struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Icon      string  `json:"icon"`
	Time      *string `json:"time,omitempty"`
	Date      *string `json:"date,omitempty"`
	IsTBD     *bool   `json:"isTBD,omitempty"`
	IsTimeTBD *bool   `json:"isTimeTBD,omitempty"`
}

// Legacy reports whether the record predates either TBD flag.
func (r EventRecord) Legacy() bool {
	return r.IsTBD == nil || r.IsTimeTBD == nil
}

// Migrate fills in missing TBD flags: isTBD defaults to whether the date is
// absent and isTimeTBD defaults to false. Other fields pass through.
func (r EventRecord) Migrate() EventRecord {
	if r.IsTBD == nil {
		tbd := r.Date == nil || *r.Date == ""
		r.IsTBD = &tbd
	}
	if r.IsTimeTBD == nil {
		timeTBD := false
		r.IsTimeTBD = &timeTBD
	}
	return r
}

// Event converts the record to its tagged form. A flag claiming a field is
// known while the field is empty resolves to the undetermined variant.
func (r EventRecord) Event() ScheduledEvent {
	r = r.Migrate()
	date, clock := "", ""
	if !*r.IsTBD && r.Date != nil {
		date = *r.Date
	}
	if !*r.IsTimeTBD && r.Time != nil {
		clock = *r.Time
	}
	return ScheduledEvent{
		ID:       r.ID,
		Title:    r.Title,
		Icon:     r.Icon,
		Schedule: NewSchedule(date, clock),
	}
}

// CloneEvents copies an event slice; schedules are immutable values.
func CloneEvents(events []ScheduledEvent) []ScheduledEvent {
	out := make([]ScheduledEvent, len(events))
	copy(out, events)
	return out
}
