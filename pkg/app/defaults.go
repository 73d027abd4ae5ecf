package app

import "tableflip.dev/dayplan/pkg/routine"

// DefaultTasks is the built-in routine used on a fresh install and whenever
// the active preset has gone missing.
func DefaultTasks() []routine.Task {
	return []routine.Task{
		{ID: "1", Title: "Wake up and stretch", Icon: "🌅", Time: "7:00 AM"},
		{ID: "2", Title: "Brush teeth", Icon: "🪥", Time: "7:15 AM"},
		{ID: "3", Title: "Hydrate", Icon: "💧", Time: "7:30 AM"},
		{ID: "4", Title: "Feed cats", Icon: "🐱", Time: "7:45 AM"},
		{ID: "5", Title: "Breakfast", Icon: "🍳", Time: "8:00 AM"},
		{ID: "6", Title: "Work out", Icon: "💪", Time: "8:30 AM"},
		{ID: "7", Title: "Play with cats", Icon: "🐈", Time: "9:30 AM"},
		{ID: "8", Title: "Get ready for work", Icon: "👔", Time: "10:00 AM"},
		{ID: "9", Title: "Go to work", Icon: "💼", Time: "10:30 AM"},
		{ID: "10", Title: "Lunch break", Icon: "🥗", Time: "12:00 PM"},
		{ID: "11", Title: "Drive home", Icon: "🚗", Time: "5:00 PM"},
		{ID: "12", Title: "Feed cats again", Icon: "🐱", Time: "5:30 PM"},
		{ID: "13", Title: "Free time", Icon: "🎮", Time: "6:00 PM"},
		{ID: "14", Title: "Dinner", Icon: "🍽️", Time: "7:00 PM"},
		{ID: "15", Title: "Relax in bed", Icon: "🛏️", Time: "8:30 PM"},
		{ID: "16", Title: "Go to sleep", Icon: "🌙", Time: "9:30 PM"},
	}
}

// DefaultPreset wraps DefaultTasks as the preset seeded on a fresh install.
func DefaultPreset() routine.Preset {
	return routine.Preset{ID: routine.DefaultPresetID, Name: "Default Routine", Tasks: DefaultTasks()}
}
