package domain

// Task is one raw schedule entry as produced by a project loader.
// All fields are already validated as typed values; the resolution engine
// never parses text.
type Task struct {
	// ID is the canonical identifier, unique within a plan.
	ID ID
	// Title is the display name.
	Title string
	// Start is the earliest date the task may begin.
	Start Date
	// Duration is the number of working days the task occupies, counting
	// its first day.
	Duration int
	// Dependencies lists the tasks that must finish before this one starts.
	Dependencies []ID
	// Resource optionally names the exclusive executor of the task.
	Resource Resource
}
