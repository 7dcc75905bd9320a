package domain

import "go.trai.ch/zerr"

var (
	// ErrTaskAlreadyExists is returned when adding a task whose id is already part of the plan.
	ErrTaskAlreadyExists = zerr.New("task already exists")

	// ErrUnknownDependency is returned when a task references a dependency id that is not part of the plan.
	ErrUnknownDependency = zerr.New("unknown dependency")

	// ErrCycleDetected is returned when tasks remain unresolvable because their dependencies form a cycle.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrInvalidDuration is returned when a task duration is below one working day.
	ErrInvalidDuration = zerr.New("duration must be at least one working day")

	// ErrTaskNotFound is returned when a requested task is not part of the plan.
	ErrTaskNotFound = zerr.New("task not found")

	// ErrMissingTitle is returned when a task entry carries neither an id nor a title.
	ErrMissingTitle = zerr.New("task title is required")

	// ErrMissingStart is returned when a task entry has no start date.
	ErrMissingStart = zerr.New("task start date is required")

	// ErrInvalidDate is returned when a date is not in YYYY-MM-DD form.
	ErrInvalidDate = zerr.New("invalid date, expected YYYY-MM-DD")

	// ErrProjectNotFound is returned when no project file can be found.
	ErrProjectNotFound = zerr.New("could not find a project file")

	// ErrProjectReadFailed is returned when the project file cannot be read.
	ErrProjectReadFailed = zerr.New("failed to read project file")

	// ErrProjectParseFailed is returned when the project file cannot be parsed.
	ErrProjectParseFailed = zerr.New("failed to parse project file")

	// ErrUnsupportedFormat is returned when a project file extension is not recognized.
	ErrUnsupportedFormat = zerr.New("unsupported project file format")

	// ErrUnknownRenderFormat is returned when a render format name is not registered.
	ErrUnknownRenderFormat = zerr.New("unknown render format")

	// ErrRenderFailed is returned when rendering a schedule fails.
	ErrRenderFailed = zerr.New("failed to render schedule")

	// ErrExportDirCreateFailed is returned when the export directory cannot be created.
	ErrExportDirCreateFailed = zerr.New("failed to create export directory")

	// ErrExportWriteFailed is returned when the schedule export cannot be written.
	ErrExportWriteFailed = zerr.New("failed to write schedule export")

	// ErrSettingsLoadFailed is returned when the user settings file cannot be read or parsed.
	ErrSettingsLoadFailed = zerr.New("failed to load settings")

	// ErrWatchStartFailed is returned when the file watcher cannot be started.
	ErrWatchStartFailed = zerr.New("failed to start watching project file")
)
