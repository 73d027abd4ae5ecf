package bottombar

import (
	"fmt"
	"strings"

	"tableflip.dev/dayplan/pkg/runner/tea/internal/theme"
)

// Mode represents the UI mode that influences footer layout.
type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert
	ModeCommand
	ModeHelp
	ModeConfirm
)

func (m Mode) String() string {
	switch m {
	case ModeInsert:
		return "INSERT"
	case ModeCommand:
		return "CMD"
	case ModeHelp:
		return "HELP"
	case ModeConfirm:
		return "CONFIRM"
	default:
		return "NORMAL"
	}
}

// CommandOption describes a command palette entry.
type CommandOption struct {
	Name        string
	Description string
}

// Model tracks footer/help/status rendering state.
type Model struct {
	theme           theme.FooterTheme
	mode            Mode
	helpLine        string
	statusLine      string
	commandInput    string
	commandView     string
	commandOptions  []CommandOption
	filteredOptions []CommandOption
	maxSuggestions  int
}

// New returns a footer model with sensible defaults.
func New(t theme.FooterTheme) Model {
	return Model{
		theme:          t,
		mode:           ModeNormal,
		maxSuggestions: 6,
	}
}

// Mode reports the current mode.
func (m Model) Mode() Mode {
	return m.mode
}

// SetMode updates the visual mode.
func (m *Model) SetMode(mode Mode) {
	if m.mode == mode {
		return
	}
	m.mode = mode
	if mode != ModeCommand {
		m.filteredOptions = nil
		m.commandInput = ""
		m.commandView = ""
	} else {
		m.filterSuggestions(m.commandInput)
	}
}

// SetHelp sets the contextual help line.
func (m *Model) SetHelp(help string) {
	m.helpLine = help
}

// SetStatus sets the status message to display.
func (m *Model) SetStatus(status string) {
	m.statusLine = status
}

// Status returns the status message.
func (m Model) Status() string {
	return m.statusLine
}

// SetCommandDefinitions configures the available command palette entries.
func (m *Model) SetCommandDefinitions(cmds []CommandOption) {
	m.commandOptions = cmds
	m.filterSuggestions(m.commandInput)
}

// UpdateCommandInput refreshes the command palette filter and rendered line.
func (m *Model) UpdateCommandInput(value string, view string) {
	m.commandInput = value
	m.commandView = ":" + view
	m.filterSuggestions(value)
}

// Suggestion returns the best matching command for the current input.
func (m Model) Suggestion() (CommandOption, bool) {
	if len(m.filteredOptions) == 0 {
		return CommandOption{}, false
	}
	return m.filteredOptions[0], true
}

// Height reports the number of lines consumed by the footer.
func (m Model) Height() int {
	switch m.mode {
	case ModeCommand:
		lines := len(m.filteredOptions)
		if lines > m.maxSuggestions {
			lines = m.maxSuggestions
		}
		// Include command input line.
		return lines + 1
	default:
		return 1
	}
}

// View renders the footer string and reports lines consumed.
func (m Model) View() (string, int) {
	switch m.mode {
	case ModeCommand:
		return m.renderCommandMode()
	default:
		return m.renderStatusLine(), 1
	}
}

func (m Model) renderStatusLine() string {
	segments := []string{m.theme.Mode.Render(fmt.Sprintf("[%s]", m.mode))}
	if m.statusLine != "" {
		segments = append(segments, m.theme.Status.Render(m.statusLine))
	}
	if m.helpLine != "" {
		segments = append(segments, m.theme.Help.Render(m.helpLine))
	}
	return strings.Join(segments, " │ ")
}

func (m Model) renderCommandMode() (string, int) {
	var lines []string
	if len(m.filteredOptions) == 0 && m.statusLine != "" {
		lines = append(lines, m.theme.Status.Render(m.statusLine))
	} else {
		limit := m.maxSuggestions
		if limit <= 0 || limit > len(m.filteredOptions) {
			limit = len(m.filteredOptions)
		}
		for i := 0; i < limit; i++ {
			opt := m.filteredOptions[i]
			nameStyle, descStyle := m.theme.CommandName, m.theme.CommandDescription
			if i == 0 {
				nameStyle, descStyle = m.theme.CommandSelectedName, m.theme.CommandSelectedDesc
			}
			name := nameStyle.Render(":" + opt.Name)
			if opt.Description == "" {
				lines = append(lines, name)
			} else {
				lines = append(lines, fmt.Sprintf("%s  %s", name, descStyle.Render(opt.Description)))
			}
		}
	}
	commandLine := m.commandView
	if commandLine == "" {
		commandLine = ":"
	}
	lines = append(lines, commandLine)
	return strings.Join(lines, "\n"), len(lines)
}

// filterSuggestions matches the first word of the input against command
// names.
func (m *Model) filterSuggestions(input string) {
	if m.mode != ModeCommand {
		m.filteredOptions = nil
		return
	}
	fields := strings.Fields(input)
	if len(fields) == 0 {
		m.filteredOptions = append([]CommandOption(nil), m.commandOptions...)
		return
	}
	prefix := strings.ToLower(fields[0])
	m.filteredOptions = m.filteredOptions[:0]
	for _, opt := range m.commandOptions {
		if strings.HasPrefix(strings.ToLower(opt.Name), prefix) {
			m.filteredOptions = append(m.filteredOptions, opt)
		}
	}
}
