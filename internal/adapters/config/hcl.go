package config

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"go.trai.ch/zerr"

	"github.com/kylemshaw/ganttify/internal/core/domain"
)

// hclRoot captures the top-level attributes and leaves the task blocks
// undecoded until the variables are evaluated.
type hclRoot struct {
	Project   string        `hcl:"project,optional"`
	Version   string        `hcl:"version,optional"`
	Variables *hclVarsBlock `hcl:"variables,block"`
	Remain    hcl.Body      `hcl:",remain"`
}

// hclVarsBlock holds user-defined values referenced as var.<name> inside
// task blocks.
type hclVarsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

type hclTaskList struct {
	Tasks []hclTask `hcl:"task,block"`
}

// hclTask represents a task block. The block label is the task id.
type hclTask struct {
	ID       string   `hcl:"id,label"`
	Title    string   `hcl:"title"`
	Start    string   `hcl:"start"`
	Duration int      `hcl:"duration"`
	Needs    []string `hcl:"needs,optional"`
	Resource string   `hcl:"resource,optional"`
}

func (l *Loader) loadHCL(path string, data []byte) (*domain.Plan, error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCL(data, path)
	if diags.HasErrors() {
		return nil, zerr.Wrap(diags, domain.ErrProjectParseFailed.Error())
	}

	var root hclRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, zerr.Wrap(diags, domain.ErrProjectParseFailed.Error())
	}

	evalCtx, err := buildEvalContext(root.Variables)
	if err != nil {
		return nil, err
	}

	var list hclTaskList
	if diags := gohcl.DecodeBody(root.Remain, evalCtx, &list); diags.HasErrors() {
		return nil, zerr.Wrap(diags, domain.ErrProjectParseFailed.Error())
	}

	entries := make([]TaskEntry, len(list.Tasks))
	for i, task := range list.Tasks {
		entries[i] = TaskEntry{
			ID:       task.ID,
			Title:    task.Title,
			Start:    task.Start,
			Duration: task.Duration,
			Needs:    task.Needs,
			Resource: task.Resource,
		}
	}

	return l.buildPlan(projectName(root.Project, path), entries)
}

// buildEvalContext evaluates the variables block into values addressable as
// var.<name>. Variable values must be literals.
func buildEvalContext(vars *hclVarsBlock) (*hcl.EvalContext, error) {
	if vars == nil {
		return nil, nil
	}

	attrs, diags := vars.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, zerr.Wrap(diags, domain.ErrProjectParseFailed.Error())
	}

	values := make(map[string]cty.Value, len(attrs))
	for name, attr := range attrs {
		val, valDiags := attr.Expr.Value(nil)
		if valDiags.HasErrors() {
			return nil, zerr.Wrap(valDiags, domain.ErrProjectParseFailed.Error())
		}
		values[name] = val
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"var": cty.ObjectVal(values),
		},
	}, nil
}
