package domain

import (
	"os"
	"path/filepath"
)

const (
	// ProjectFileYAML is the canonical project file name.
	ProjectFileYAML = "ganttify.yaml"

	// ProjectFileHCL is the HCL project file name.
	ProjectFileHCL = "ganttify.hcl"

	// ProjectFileCSV is the CSV project file name.
	ProjectFileCSV = "ganttify.csv"

	// SettingsDirName is the directory under the user config dir that holds
	// the settings file.
	SettingsDirName = "ganttify"

	// SettingsFileName is the name of the settings file.
	SettingsFileName = "config.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// ProjectFileNames returns the file names probed during project discovery,
// in priority order.
func ProjectFileNames() []string {
	return []string{ProjectFileYAML, ProjectFileHCL, ProjectFileCSV}
}

// DefaultSettingsDir returns the settings directory under the user config
// directory.
func DefaultSettingsDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, SettingsDirName), nil
}
