package app

// Keys under which the planner persists its state. Each value is JSON text.
const (
	KeyTasks         = "currentDayTasks"
	KeyEvents        = "scheduledEvents"
	KeyPresets       = "dayPlannerPresets"
	KeyCurrentPreset = "currentPresetId"
	KeyLastReset     = "lastResetDate"
	KeyBackups       = "routineBackups"
)
