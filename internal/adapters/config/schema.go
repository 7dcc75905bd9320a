package config

// ProjectFile represents the structure of a ganttify.yaml project file.
type ProjectFile struct {
	Project string      `yaml:"project"`
	Version string      `yaml:"version"`
	Tasks   []TaskEntry `yaml:"tasks"`
}

// TaskEntry represents a single task definition in a project file. The HCL
// and CSV loaders normalize into the same shape before plan construction.
type TaskEntry struct {
	ID       string   `yaml:"id"`
	Title    string   `yaml:"title"`
	Start    string   `yaml:"start"`
	Duration int      `yaml:"duration"`
	Needs    []string `yaml:"needs"`
	Resource string   `yaml:"resource"`
}
