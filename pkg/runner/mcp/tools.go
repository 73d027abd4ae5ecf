package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/dayplan/pkg/app"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerGetTodayTool(srv, svc)
	registerAddTaskTool(srv, svc)
	registerUpdateTaskTool(srv, svc)
	registerToggleTaskTool(srv, svc)
	registerDeleteTaskTool(srv, svc)
	registerMoveTaskTool(srv, svc)
	registerListEventsTool(srv, svc)
	registerAddEventTool(srv, svc)
	registerUpdateEventTool(srv, svc)
	registerDeleteEventTool(srv, svc)
	registerListPresetsTool(srv, svc)
	registerCreatePresetTool(srv, svc)
	registerApplyPresetTool(srv, svc)
	registerRenamePresetTool(srv, svc)
	registerDeletePresetTool(srv, svc)
	registerListBackupsTool(srv, svc)
	registerCreateBackupTool(srv, svc)
	registerRestoreBackupTool(srv, svc)
}

func registerGetTodayTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_today",
		mcp.WithDescription("Get today's tasks grouped by part of the day, progress and event counts."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		day, err := svc.Today(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(day)
	})
}

func registerAddTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_task",
		mcp.WithDescription("Add a task to today's list. The active preset is updated to match."),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Task title."),
		),
		mcp.WithString("icon",
			mcp.Description("Optional emoji icon."),
		),
		mcp.WithString("time",
			mcp.Description(`Optional time of day such as "7:00 AM", "7am" or "19:00".`),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Title string `json:"title"`
			Icon  string `json:"icon"`
			Time  string `json:"time"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		t, err := svc.AddTask(ctx, app.TaskInput{Title: args.Title, Icon: args.Icon, Time: args.Time})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(t)
	})
}

func registerUpdateTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"update_task",
		mcp.WithDescription("Change a task. Only the fields given are changed; an empty time clears it."),
		mcp.WithString("ref",
			mcp.Required(),
			mcp.Description("Task id, or its 1-based position in today's list."),
		),
		mcp.WithString("title", mcp.Description("New title.")),
		mcp.WithString("icon", mcp.Description("New emoji icon.")),
		mcp.WithString("time", mcp.Description("New time of day.")),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Ref   string  `json:"ref"`
			Title *string `json:"title"`
			Icon  *string `json:"icon"`
			Time  *string `json:"time"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		t, err := svc.UpdateTask(ctx, args.Ref, app.TaskPatch{Title: args.Title, Icon: args.Icon, Time: args.Time})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(t)
	})
}

func registerToggleTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"toggle_task",
		mcp.WithDescription("Mark a task done, or not done if it already was."),
		mcp.WithString("ref",
			mcp.Required(),
			mcp.Description("Task id, or its 1-based position in today's list."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ref, err := request.RequireString("ref")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		t, err := svc.ToggleTask(ctx, ref)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(t)
	})
}

func registerDeleteTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_task",
		mcp.WithDescription("Remove a task from today's list and from the active preset."),
		mcp.WithString("ref",
			mcp.Required(),
			mcp.Description("Task id, or its 1-based position in today's list."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ref, err := request.RequireString("ref")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		t, err := svc.DeleteTask(ctx, ref)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{"deleted": t})
	})
}

func registerMoveTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"move_task",
		mcp.WithDescription("Move a task one place up or down in today's list."),
		mcp.WithString("ref",
			mcp.Required(),
			mcp.Description("Task id, or its 1-based position in today's list."),
		),
		mcp.WithString("direction",
			mcp.Required(),
			mcp.Enum("up", "down"),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ref, err := request.RequireString("ref")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		direction, err := request.RequireString("direction")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		tasks, err := svc.MoveTask(ctx, ref, direction)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{"tasks": tasks})
	})
}

func registerListEventsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_events",
		mcp.WithDescription("List scheduled events ordered by date, undated events last."),
		mcp.WithString("window",
			mcp.Description(`Only dated events within this many days from today, e.g. "10d" or "2w".`),
		),
		mcp.WithString("search",
			mcp.Description("Case-insensitive text to match against title or time."),
		),
		mcp.WithBoolean("tbd",
			mcp.Description("Only events still missing a date or time."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		q := EventQuery{
			Window: request.GetString("window", ""),
			Search: request.GetString("search", ""),
			TBD:    request.GetBool("tbd", false),
		}

		list, err := svc.ListEvents(ctx, q)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"events": list,
			"count":  len(list),
		})
	})
}

func registerAddEventTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_event",
		mcp.WithDescription("Schedule an event. Leave date or time out when not known yet. Events on a date become tasks at that day's reset."),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Event title."),
		),
		mcp.WithString("icon", mcp.Description("Optional emoji icon.")),
		mcp.WithString("date", mcp.Description("Date as YYYY-MM-DD.")),
		mcp.WithString("time", mcp.Description(`Time of day such as "2:00 PM".`)),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Title string `json:"title"`
			Icon  string `json:"icon"`
			Date  string `json:"date"`
			Time  string `json:"time"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		e, err := svc.AddEvent(ctx, app.EventInput{Title: args.Title, Icon: args.Icon, Date: args.Date, Time: args.Time})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(e)
	})
}

func registerUpdateEventTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"update_event",
		mcp.WithDescription("Change a scheduled event. Only the fields given are changed; an empty date or time marks it as to be determined."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Event identifier."),
		),
		mcp.WithString("title", mcp.Description("New title.")),
		mcp.WithString("icon", mcp.Description("New emoji icon.")),
		mcp.WithString("date", mcp.Description("New date as YYYY-MM-DD.")),
		mcp.WithString("time", mcp.Description("New time of day.")),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			ID    string  `json:"id"`
			Title *string `json:"title"`
			Icon  *string `json:"icon"`
			Date  *string `json:"date"`
			Time  *string `json:"time"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		e, err := svc.UpdateEvent(ctx, args.ID, app.EventPatch{Title: args.Title, Icon: args.Icon, Date: args.Date, Time: args.Time})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(e)
	})
}

func registerDeleteEventTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_event",
		mcp.WithDescription("Remove a scheduled event."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Event identifier."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		e, err := svc.DeleteEvent(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{"deleted": e})
	})
}

func registerListPresetsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_presets",
		mcp.WithDescription("List routine presets and which one is active."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		list, err := svc.Presets(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(list)
	})
}

func registerCreatePresetTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"create_preset",
		mcp.WithDescription("Save today's tasks as a new preset, without making it active."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Preset name."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		p, err := svc.CreatePreset(ctx, name)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(p)
	})
}

func registerApplyPresetTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"apply_preset",
		mcp.WithDescription("Replace today's tasks with a preset's tasks and make it active. A backup is taken first."),
		mcp.WithString("preset",
			mcp.Required(),
			mcp.Description("Preset id or name."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ref, err := request.RequireString("preset")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		p, err := svc.ApplyPreset(ctx, ref)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(p)
	})
}

func registerRenamePresetTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"rename_preset",
		mcp.WithDescription("Rename a preset."),
		mcp.WithString("preset",
			mcp.Required(),
			mcp.Description("Preset id or name."),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("New name."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ref, err := request.RequireString("preset")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		name, err := request.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		p, err := svc.RenamePreset(ctx, ref, name)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(p)
	})
}

func registerDeletePresetTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_preset",
		mcp.WithDescription("Delete a preset. The last preset can not be deleted."),
		mcp.WithString("preset",
			mcp.Required(),
			mcp.Description("Preset id or name."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ref, err := request.RequireString("preset")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		list, err := svc.DeletePreset(ctx, ref)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(list)
	})
}

func registerListBackupsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_backups",
		mcp.WithDescription("List state backups, oldest first."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		backups, err := svc.Backups(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		summaries := make([]map[string]any, 0, len(backups))
		for _, b := range backups {
			summaries = append(summaries, map[string]any{
				"id":              b.ID,
				"timestamp":       b.Timestamp,
				"tasks":           len(b.State.Tasks),
				"scheduledEvents": len(b.State.ScheduledEvents),
				"presets":         len(b.State.Presets),
			})
		}
		return toJSONResult(map[string]any{
			"backups": summaries,
			"count":   len(summaries),
		})
	})
}

func registerCreateBackupTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"create_backup",
		mcp.WithDescription("Snapshot tasks, events and presets."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		b, err := svc.CreateBackup(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{"id": b.ID, "timestamp": b.Timestamp})
	})
}

func registerRestoreBackupTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"restore_backup",
		mcp.WithDescription("Replace tasks, events and presets with a backup."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Backup identifier."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		b, err := svc.RestoreBackup(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{"restored": b.ID})
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
