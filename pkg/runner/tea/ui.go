package teaui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/dayplan/pkg/app"
	"tableflip.dev/dayplan/pkg/events"
	"tableflip.dev/dayplan/pkg/glyph"
	"tableflip.dev/dayplan/pkg/routine"
	"tableflip.dev/dayplan/pkg/runner/tea/internal/bottombar"
	"tableflip.dev/dayplan/pkg/runner/tea/internal/theme"
	"tableflip.dev/dayplan/pkg/store"
	"tableflip.dev/dayplan/pkg/timeutil"
)

// TickInterval drives the header clock and the daily reset check.
const TickInterval = time.Second

type action int

const (
	actionNone action = iota
	actionAddTask
	actionEditTask
	actionAddEvent
)

// Model contains UI state
type Model struct {
	svc *app.Service
	ctx context.Context

	theme  theme.Theme
	footer bottombar.Model

	mode   bottombar.Mode
	action action
	input  textinput.Model

	cursor int
	now    time.Time

	// confirm runs against the live model when the pending question is
	// answered yes.
	confirm       func(*Model) tea.Cmd
	question      string
	pendingDelete bool
	quitting      bool
	listening     bool

	termWidth  int
	termHeight int
}

const normalHelp = "j/k move · x done · o add · i edit · e event · J/K reorder · dd delete · s save · : commands · ? help"

var commands = []bottombar.CommandOption{
	{Name: "save", Description: "write changes"},
	{Name: "discard", Description: "drop unsaved changes"},
	{Name: "event", Description: "add an event: title @ [YYYY-MM-DD] [h:mm AM]"},
	{Name: "preset", Description: "apply a preset by name or id"},
	{Name: "newpreset", Description: "save today's tasks as a preset"},
	{Name: "backup", Description: "snapshot tasks, events and presets"},
	{Name: "restore", Description: "restore a backup by id"},
	{Name: "quit", Description: "leave the planner"},
}

// New creates a new UI model backed by the Service.
func New(svc *app.Service) Model {
	ti := textinput.New()
	ti.Placeholder = "Type here"
	ti.CharLimit = 256
	ti.Prompt = ""

	th := theme.Default()
	m := Model{
		svc:    svc,
		ctx:    context.Background(),
		theme:  th,
		footer: newFooter(th),
		mode:   bottombar.ModeNormal,
		input:  ti,
	}
	if svc != nil {
		m.now = svc.Now()
	}
	return m
}

func newFooter(th theme.Theme) bottombar.Model {
	f := bottombar.New(th.Footer)
	f.SetHelp(normalHelp)
	f.SetCommandDefinitions(commands)
	return f
}

// messages
type errMsg struct{ err error }
type tickMsg time.Time
type watchMsg struct{ ch <-chan store.Event }
type storeChangedMsg struct {
	ch <-chan store.Event
	ev store.Event
}

// Init starts the clock and the store watch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(), m.watch())
}

func tick() tea.Cmd {
	return tea.Tick(TickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) watch() tea.Cmd {
	if m.svc == nil {
		return nil
	}
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		ch, err := svc.Watch(ctx)
		if err != nil {
			return errMsg{err}
		}
		return watchMsg{ch}
	}
}

func waitForChange(ch <-chan store.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return storeChangedMsg{ch: ch, ev: ev}
	}
}

// Update handles messages and keybindings
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case errMsg:
		m.setStatus("ERR: " + msg.err.Error())
	case tickMsg:
		m.onTick(time.Time(msg))
		cmds = append(cmds, tick())
	case watchMsg:
		m.listening = true
		cmds = append(cmds, waitForChange(msg.ch))
	case storeChangedMsg:
		m.onStoreChanged()
		cmds = append(cmds, waitForChange(msg.ch))
	case tea.KeyPressMsg:
		cmds = append(cmds, m.onKey(msg))
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) onTick(t time.Time) {
	if m.svc == nil {
		return
	}
	m.now = m.svc.Now()
	res, err := m.svc.CheckRollover(m.ctx)
	if err != nil {
		m.setStatus("ERR: " + err.Error())
		return
	}
	if res != nil {
		m.clampCursor()
		m.setStatus(fmt.Sprintf("New day: %d tasks, %d from events", len(m.svc.Tasks()), len(res.Converted)))
	}
}

func (m *Model) onStoreChanged() {
	if m.svc == nil {
		return
	}
	if m.svc.Unsaved() {
		m.setStatus("Changed elsewhere; save or discard to pick it up")
		return
	}
	if _, err := m.svc.Reload(m.ctx); err != nil {
		m.setStatus("ERR: " + err.Error())
		return
	}
	m.clampCursor()
}

func (m *Model) onKey(msg tea.KeyPressMsg) tea.Cmd {
	switch m.mode {
	case bottombar.ModeHelp:
		if key := msg.String(); key == "q" || key == "esc" || key == "?" {
			m.setMode(bottombar.ModeNormal)
		}
		return nil
	case bottombar.ModeConfirm:
		return m.onConfirmKey(msg)
	case bottombar.ModeInsert:
		return m.onInsertKey(msg)
	case bottombar.ModeCommand:
		return m.onCommandKey(msg)
	default:
		return m.onNormalKey(msg)
	}
}

func (m *Model) onNormalKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()
	if key != "d" {
		m.pendingDelete = false
	}
	switch key {
	case "j", "down":
		m.moveCursor(1)
	case "k", "up":
		m.moveCursor(-1)
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		m.cursor = len(m.tasks()) - 1
		m.clampCursor()
	case "x", "space", " ":
		if t, ok := m.selected(); ok {
			if _, err := m.svc.ToggleTask(t.ID); err != nil {
				m.setStatus("ERR: " + err.Error())
			} else if t.Completed {
				m.setStatus("Marked not done")
			} else {
				m.setStatus("Done")
			}
		}
	case "o", "a":
		if m.svc != nil {
			return m.startInput(actionAddTask, "title @ time", "")
		}
	case "i":
		if t, ok := m.selected(); ok {
			value := t.Title
			if t.Time != "" {
				value += " @ " + t.Time
			}
			return m.startInput(actionEditTask, "title @ time", value)
		}
	case "e":
		if m.svc != nil {
			return m.startInput(actionAddEvent, "title @ YYYY-MM-DD h:mm AM", "")
		}
	case "K", "shift+up":
		m.shiftSelected(-1)
	case "J", "shift+down":
		m.shiftSelected(1)
	case "d":
		t, ok := m.selected()
		if !ok {
			return nil
		}
		if !m.pendingDelete {
			m.pendingDelete = true
			return nil
		}
		m.pendingDelete = false
		m.ask(fmt.Sprintf("Delete %q?", t.Title), func(m *Model) tea.Cmd {
			if err := m.svc.DeleteTask(t.ID); err != nil {
				m.setStatus("ERR: " + err.Error())
				return nil
			}
			m.clampCursor()
			m.setStatus("Deleted")
			return nil
		})
	case "s":
		m.save()
	case ":":
		return m.startCommand()
	case "?":
		m.setMode(bottombar.ModeHelp)
	case "q", "ctrl+c":
		return m.quit()
	}
	return nil
}

func (m *Model) onConfirmKey(msg tea.KeyPressMsg) tea.Cmd {
	switch strings.ToLower(msg.String()) {
	case "y", "enter":
		fn := m.confirm
		m.confirm = nil
		m.question = ""
		m.setMode(bottombar.ModeNormal)
		if fn != nil {
			return fn(m)
		}
	case "n", "esc", "q":
		m.confirm = nil
		m.question = ""
		m.setMode(bottombar.ModeNormal)
		m.setStatus("Cancelled")
	}
	return nil
}

func (m *Model) onInsertKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		input := strings.TrimSpace(m.input.Value())
		act := m.action
		m.endInput()
		if input == "" {
			m.setStatus("Cancelled")
			return nil
		}
		m.apply(act, input)
		return nil
	case "esc":
		m.endInput()
		m.setStatus("Cancelled")
		return nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd
	}
}

func (m *Model) onCommandKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		input := strings.TrimSpace(m.input.Value())
		m.input.Reset()
		m.input.Blur()
		m.setMode(bottombar.ModeNormal)
		return m.runCommand(input)
	case "esc":
		m.input.Reset()
		m.input.Blur()
		m.setMode(bottombar.ModeNormal)
		m.setStatus("Command cancelled")
		return nil
	case "tab":
		if opt, ok := m.footer.Suggestion(); ok {
			rest := ""
			if fields := strings.Fields(m.input.Value()); len(fields) > 1 {
				rest = " " + strings.Join(fields[1:], " ")
			}
			m.input.SetValue(opt.Name + rest)
			m.input.CursorEnd()
			m.footer.UpdateCommandInput(m.input.Value(), m.input.View())
		}
		return nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.footer.UpdateCommandInput(m.input.Value(), m.input.View())
		return cmd
	}
}

// runCommand executes a ":" command line.
func (m *Model) runCommand(line string) tea.Cmd {
	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	switch name {
	case "":
		return nil
	case "w", "save":
		m.save()
	case "discard":
		m.ask("Discard unsaved changes?", func(m *Model) tea.Cmd {
			m.svc.Discard()
			m.clampCursor()
			m.setStatus("Discarded")
			return nil
		})
	case "event":
		m.apply(actionAddEvent, arg)
	case "preset":
		p, err := m.svc.ResolvePreset(arg)
		if err != nil {
			m.setStatus("ERR: " + err.Error())
			return nil
		}
		m.ask(fmt.Sprintf("Replace today's tasks with %q?", p.Name), func(m *Model) tea.Cmd {
			if _, err := m.svc.ApplyPreset(p.ID); err != nil {
				m.setStatus("ERR: " + err.Error())
				return nil
			}
			m.cursor = 0
			m.setStatus("Applied " + p.Name)
			return nil
		})
	case "newpreset":
		p, err := m.svc.CreatePreset(arg)
		if err != nil {
			m.setStatus("ERR: " + err.Error())
			return nil
		}
		m.setStatus("Created preset " + p.Name)
	case "backup":
		b := m.svc.CreateBackup()
		m.setStatus("Backup " + b.ID)
	case "restore":
		if _, err := m.svc.Backup(arg); err != nil {
			m.setStatus("ERR: " + err.Error())
			return nil
		}
		m.ask("Replace everything with backup "+arg+"?", func(m *Model) tea.Cmd {
			if _, err := m.svc.RestoreBackup(arg); err != nil {
				m.setStatus("ERR: " + err.Error())
				return nil
			}
			m.clampCursor()
			m.setStatus("Restored " + arg)
			return nil
		})
	case "q", "quit", "exit":
		return m.quit()
	default:
		m.setStatus(fmt.Sprintf("Unknown command: %s", name))
	}
	return nil
}

// apply completes an insert action with the text the user typed.
func (m *Model) apply(act action, input string) {
	switch act {
	case actionAddTask:
		title, clock := splitTaskInput(input)
		added, err := m.svc.AddTask(app.TaskInput{Title: title, Time: clock})
		if err != nil {
			m.setStatus("ERR: " + err.Error())
			return
		}
		m.focus(added.ID)
		m.setStatus("Added")
	case actionEditTask:
		t, ok := m.selected()
		if !ok {
			return
		}
		title, clock := splitTaskInput(input)
		if _, err := m.svc.UpdateTask(t.ID, app.TaskPatch{Title: &title, Time: &clock}); err != nil {
			m.setStatus("ERR: " + err.Error())
			return
		}
		m.focus(t.ID)
		m.setStatus("Edited")
	case actionAddEvent:
		in := parseEventInput(input)
		e, err := m.svc.AddEvent(in)
		if err != nil {
			m.setStatus("ERR: " + err.Error())
			return
		}
		m.setStatus("Scheduled " + e.Title + ", " + events.DisplayText(e))
	}
}

func (m *Model) save() {
	if m.svc == nil {
		return
	}
	if err := m.svc.Save(m.ctx); err != nil {
		m.setStatus("ERR: " + err.Error())
		return
	}
	m.setStatus("Saved")
}

func (m *Model) quit() tea.Cmd {
	if m.svc == nil || !m.svc.Unsaved() {
		m.quitting = true
		return tea.Quit
	}
	m.ask("Quit without saving?", func(m *Model) tea.Cmd {
		m.quitting = true
		return tea.Quit
	})
	return nil
}

func (m *Model) ask(question string, fn func(*Model) tea.Cmd) {
	m.question = question
	m.confirm = fn
	m.setMode(bottombar.ModeConfirm)
	m.setStatus(question + " (y/n)")
}

func (m *Model) startInput(act action, placeholder, value string) tea.Cmd {
	m.action = act
	m.setMode(bottombar.ModeInsert)
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	cmds := []tea.Cmd{textinput.Blink}
	if cmd := m.input.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m *Model) endInput() {
	m.action = actionNone
	m.input.Reset()
	m.input.Blur()
	m.setMode(bottombar.ModeNormal)
}

func (m *Model) startCommand() tea.Cmd {
	m.setMode(bottombar.ModeCommand)
	m.input.Reset()
	m.input.Placeholder = "command"
	m.footer.UpdateCommandInput("", m.input.View())
	cmds := []tea.Cmd{textinput.Blink}
	if cmd := m.input.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m *Model) setMode(mode bottombar.Mode) {
	m.mode = mode
	m.footer.SetMode(mode)
}

func (m *Model) setStatus(status string) {
	m.footer.SetStatus(status)
}

// tasks is the list as shown: grouped by period, list order within each.
func (m *Model) tasks() []routine.Task {
	if m.svc == nil {
		return nil
	}
	return routine.InPeriodOrder(m.svc.Tasks())
}

func (m *Model) focus(id string) {
	for i, t := range m.tasks() {
		if t.ID == id {
			m.cursor = i
			return
		}
	}
	m.clampCursor()
}

// shiftSelected swaps the selected task with its neighbour on screen. Tasks
// only move within their period.
func (m *Model) shiftSelected(delta int) {
	t, ok := m.selected()
	if !ok {
		return
	}
	shown := m.tasks()
	next := m.cursor + delta
	if next < 0 || next >= len(shown) || shown[next].Period() != t.Period() {
		m.setStatus("Already at the edge of " + t.Period().String())
		return
	}
	from, to := listIndex(m.svc.Tasks(), t.ID), listIndex(m.svc.Tasks(), shown[next].ID)
	if err := m.svc.MoveTask(from, to); err != nil {
		m.setStatus("ERR: " + err.Error())
		return
	}
	m.focus(t.ID)
}

func listIndex(tasks []routine.Task, id string) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (m *Model) selected() (routine.Task, bool) {
	tasks := m.tasks()
	if m.cursor < 0 || m.cursor >= len(tasks) {
		return routine.Task{}, false
	}
	return tasks[m.cursor], true
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *Model) clampCursor() {
	n := len(m.tasks())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// splitTaskInput reads "title @ time"; the time part is optional.
func splitTaskInput(input string) (title, clock string) {
	title, clock, _ = strings.Cut(input, "@")
	return strings.TrimSpace(title), strings.TrimSpace(clock)
}

// parseEventInput reads "title @ date time", where either the date or the
// time may be left out.
func parseEventInput(input string) app.EventInput {
	title, when, _ := strings.Cut(input, "@")
	in := app.EventInput{Title: strings.TrimSpace(title)}
	fields := strings.Fields(when)
	if len(fields) > 0 && timeutil.ValidDateKey(fields[0]) {
		in.Date = fields[0]
		fields = fields[1:]
	}
	in.Time = strings.Join(fields, " ")
	return in
}

// View renders the header, the task list, upcoming events and the footer.
func (m Model) View() string {
	if m.svc == nil {
		return "no planner loaded"
	}
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")
	b.WriteString(m.viewTasks())
	b.WriteString("\n")
	b.WriteString(m.viewEvents())

	switch m.mode {
	case bottombar.ModeInsert:
		prompt := "Add: "
		switch m.action {
		case actionEditTask:
			prompt = "Edit: "
		case actionAddEvent:
			prompt = "Event: "
		}
		b.WriteString("\n" + prompt + m.input.View() + "\n")
	case bottombar.ModeHelp:
		b.WriteString("\n" + m.theme.Footer.Help.Italic(true).Render(wordwrap.String(helpText, m.wrapWidth())) + "\n")
	}

	footer, _ := m.footer.View()
	b.WriteString("\n" + footer)
	return b.String()
}

const helpText = "Keys: j/k or ↑/↓ move, g/G top/bottom, x or space toggles done, " +
	"o adds a task (title @ 7:00 AM), i edits the selected task, e schedules an event " +
	"(title @ 2024-06-01 2:00 PM, date and time optional), " +
	"J/K move the task down/up within its period, " +
	"dd deletes, s saves, : opens commands (tab completes), q quits. " +
	"Edits stay unsaved until you save; a new day resets tasks from the active preset " +
	"and turns today's events into tasks."

func (m Model) wrapWidth() int {
	if m.termWidth > 10 {
		return m.termWidth - 2
	}
	return 78
}

func (m Model) viewHeader() string {
	th := m.theme.Header
	done, total := m.svc.Progress()

	line := th.Date.Render(timeutil.FormatLongDate(m.now)) + "  " + th.Clock.Render(timeutil.FormatWallClock(m.now))
	if p, ok := m.svc.ActivePreset(); ok {
		line += "  " + th.Preset.Render(p.Name)
	}
	if m.svc.Unsaved() {
		line += "  " + th.Unsaved.Render("● unsaved")
	}
	return line + "\n" + progressBar(m.theme.Progress, done, total, 30) + fmt.Sprintf(" %d of %d done", done, total)
}

func (m Model) viewTasks() string {
	th := m.theme.Tasks
	tasks := m.tasks()
	if len(tasks) == 0 {
		return th.Normal.Italic(true).Render("  no tasks, press o to add one") + "\n"
	}

	var b strings.Builder
	last := timeutil.Period(-1)
	for i, t := range tasks {
		if p := t.Period(); p != last {
			b.WriteString(th.Period.Render(glyph.PeriodSymbol(p)+" "+p.String()) + "\n")
			last = p
		}
		cursor := "  "
		style := th.Normal
		if i == m.cursor {
			cursor = "→ "
			style = th.Selected
		}
		title := t.Title
		if t.Completed {
			title = th.Completed.Render(title)
		} else {
			title = style.Render(title)
		}
		symbol := glyph.TaskSymbol(t.Completed, t.IsScheduledEvent)
		if t.IsScheduledEvent {
			symbol = th.Event.Render(symbol)
		}
		line := fmt.Sprintf("%s%s %s %s", cursor, symbol, glyph.IconOr(t.Icon, glyph.DefaultTaskIcon), title)
		if t.Time != "" {
			line += "  " + th.Time.Render(t.Time)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m Model) viewEvents() string {
	th := m.theme.Events
	today := m.svc.Today()
	upcoming := m.svc.Upcoming()
	counts := m.svc.EventCounts()

	var b strings.Builder
	b.WriteString(m.theme.Tasks.Period.Render(fmt.Sprintf("%s Upcoming", glyph.Event)) + "\n")
	if len(upcoming) == 0 {
		b.WriteString(th.Title.Italic(true).Render("  nothing scheduled") + "\n")
	}
	for i, e := range upcoming {
		if i == 5 {
			b.WriteString(th.When.Render(fmt.Sprintf("  … %d more", len(upcoming)-i)) + "\n")
			break
		}
		line := fmt.Sprintf("  %s %s  %s", glyph.IconOr(e.Icon, glyph.DefaultEventIcon), th.Title.Render(e.Title), th.When.Render(events.DisplayText(e)))
		if e.Date() == today {
			line += th.Overdue.Render("  today")
		}
		b.WriteString(line + "\n")
	}
	if counts.Overdue > 0 {
		b.WriteString(th.Overdue.Render(fmt.Sprintf("  %s %d overdue", glyph.Overdue, counts.Overdue)) + "\n")
	}
	if counts.TBD > 0 {
		b.WriteString(th.TBD.Render(fmt.Sprintf("  %s %d to be scheduled", glyph.TBD, counts.TBD)) + "\n")
	}
	return b.String()
}

// progressBar renders done/total as a bar of width cells colored along the
// theme gradient.
func progressBar(th theme.ProgressTheme, done, total, width int) string {
	filled := 0
	if total > 0 {
		filled = done * width / total
	}
	from, err := colorful.Hex(th.From)
	if err != nil {
		from = colorful.Color{R: 0.35, G: 0.34, B: 0.88}
	}
	to, err := colorful.Hex(th.To)
	if err != nil {
		to = from
	}

	var b strings.Builder
	for i := 0; i < filled; i++ {
		t := 0.0
		if width > 1 {
			t = float64(i) / float64(width-1)
		}
		c := from.BlendLuv(to, t).Clamped()
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("█"))
	}
	b.WriteString(th.Empty.Render(strings.Repeat("░", width-filled)))
	return b.String()
}
