package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kylemshaw/ganttify/internal/core/domain"
)

func TestLoader_Load_HCL(t *testing.T) {
	loader := newTestLoader(t)
	dir := t.TempDir()

	content := `
project = "website-launch"

variables {
  kickoff = "2024-08-01"
}

task "setup" {
  title    = "Set up environments"
  start    = var.kickoff
  duration = 5
  resource = "rig"
}

task "integration-tests" {
  title    = "Integration tests"
  start    = "2024-08-02"
  duration = 4
  needs    = ["setup"]
  resource = "rig"
}

task "deploy" {
  title    = "Deploy to production"
  start    = var.kickoff
  duration = 6
  needs    = ["integration-tests"]
}
`
	createFile(t, dir, domain.ProjectFileHCL, content)

	plan, err := loader.Load(filepath.Join(dir, domain.ProjectFileHCL))
	require.NoError(t, err)
	require.NotNil(t, plan)

	assert.Equal(t, "website-launch", plan.Name())
	assert.Equal(t, 3, plan.Len())

	// The variable reference resolves to the kickoff date.
	setup, ok := plan.Task(domain.NewID("setup"))
	require.True(t, ok)
	assert.Equal(t, "2024-08-01", setup.Start.String())
	assert.Equal(t, "rig", setup.Resource.String())

	deploy, ok := plan.Task(domain.NewID("deploy"))
	require.True(t, ok)
	assert.Equal(t, "2024-08-01", deploy.Start.String())
	assert.Equal(t, []domain.ID{domain.NewID("integration-tests")}, deploy.Dependencies)
	assert.True(t, deploy.Resource.IsZero())
}

func TestLoader_Load_HCL_BlockOrderIsProcessingOrder(t *testing.T) {
	loader := newTestLoader(t)
	dir := t.TempDir()

	content := `
task "late" {
  title    = "Late"
  start    = "2024-08-01"
  duration = 1
  needs    = ["early"]
}

task "early" {
  title    = "Early"
  start    = "2024-08-01"
  duration = 1
}
`
	createFile(t, dir, domain.ProjectFileHCL, content)

	plan, err := loader.Load(filepath.Join(dir, domain.ProjectFileHCL))
	require.NoError(t, err)
	require.NoError(t, plan.Validate())

	var ids []string
	for task := range plan.Walk() {
		ids = append(ids, task.ID.String())
	}
	assert.Equal(t, []string{"early", "late"}, ids)
}

func TestLoader_Load_HCL_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "malformed syntax",
			content: "task \"setup\" {\n  title = \n}\n",
		},
		{
			name: "missing required attribute",
			content: `
task "setup" {
  start    = "2024-08-01"
  duration = 5
}
`,
		},
		{
			name: "undefined variable",
			content: `
task "setup" {
  title    = "Set up environments"
  start    = var.kickoff
  duration = 5
}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := newTestLoader(t)
			dir := t.TempDir()
			createFile(t, dir, domain.ProjectFileHCL, tt.content)

			plan, err := loader.Load(filepath.Join(dir, domain.ProjectFileHCL))
			require.Error(t, err)
			require.ErrorContains(t, err, domain.ErrProjectParseFailed.Error())
			assert.Nil(t, plan)
		})
	}
}
