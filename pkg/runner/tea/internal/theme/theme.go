package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Header   HeaderTheme
	Tasks    TaskTheme
	Events   EventTheme
	Footer   FooterTheme
	Progress ProgressTheme
}

// HeaderTheme styles the date and clock line.
type HeaderTheme struct {
	Date    lipgloss.Style
	Clock   lipgloss.Style
	Preset  lipgloss.Style
	Unsaved lipgloss.Style
}

// TaskTheme styles the task list.
type TaskTheme struct {
	Period    lipgloss.Style
	Normal    lipgloss.Style
	Selected  lipgloss.Style
	Completed lipgloss.Style
	Time      lipgloss.Style
	Event     lipgloss.Style
}

// EventTheme styles the scheduled events pane.
type EventTheme struct {
	Title   lipgloss.Style
	When    lipgloss.Style
	TBD     lipgloss.Style
	Overdue lipgloss.Style
}

// FooterTheme groups styles used by the bottom status/command bar.
type FooterTheme struct {
	Help                lipgloss.Style
	Status              lipgloss.Style
	Mode                lipgloss.Style
	CommandName         lipgloss.Style
	CommandDescription  lipgloss.Style
	CommandSelectedName lipgloss.Style
	CommandSelectedDesc lipgloss.Style
}

// ProgressTheme holds the gradient end points of the progress bar as hex
// colors, plus the style of the empty part.
type ProgressTheme struct {
	From  string
	To    string
	Empty lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return ForBackground(true)
}

// ForBackground returns the theme tuned for a dark or light terminal.
func ForBackground(dark bool) Theme {
	text, faint, accent := "252", "244", "212"
	from, to := "#5A56E0", "#EE6FF8"
	if !dark {
		text, faint, accent = "235", "243", "162"
		from, to = "#3F3CBB", "#B3379E"
	}

	commandName := lipgloss.NewStyle().
		Foreground(lipgloss.Color(accent)).
		Bold(true)
	commandDesc := lipgloss.NewStyle().Foreground(lipgloss.Color(faint))

	return Theme{
		Header: HeaderTheme{
			Date:    lipgloss.NewStyle().Foreground(lipgloss.Color(text)).Bold(true),
			Clock:   lipgloss.NewStyle().Foreground(lipgloss.Color(faint)),
			Preset:  lipgloss.NewStyle().Foreground(lipgloss.Color(accent)),
			Unsaved: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		},
		Tasks: TaskTheme{
			Period:    lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Bold(true),
			Normal:    lipgloss.NewStyle().Foreground(lipgloss.Color(text)),
			Selected:  lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Bold(true),
			Completed: lipgloss.NewStyle().Foreground(lipgloss.Color(faint)).Strikethrough(true),
			Time:      lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
			Event:     lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
		},
		Events: EventTheme{
			Title:   lipgloss.NewStyle().Foreground(lipgloss.Color(text)),
			When:    lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
			TBD:     lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Italic(true),
			Overdue: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		},
		Footer: FooterTheme{
			Help:               lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status:             lipgloss.NewStyle().Foreground(lipgloss.Color(faint)),
			Mode:               lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			CommandName:        commandName,
			CommandDescription: commandDesc,
			CommandSelectedName: commandName.
				Reverse(true),
			CommandSelectedDesc: commandDesc.
				Reverse(true),
		},
		Progress: ProgressTheme{
			From:  from,
			To:    to,
			Empty: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		},
	}
}
