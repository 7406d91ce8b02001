package entities

import (
	"fmt"
	"strings"
	"time"
)

// StepName names a project workflow step
type StepName string

const (
	StepContract     StepName = "Contract"
	StepMeasurements StepName = "Measurements"
	StepDrawing      StepName = "Drawing"
	StepRequirements StepName = "Requirements"
)

// ProjectStatus is derived from step completion
type ProjectStatus string

const (
	ProjectUpcoming ProjectStatus = "upcoming"
	ProjectCurrent  ProjectStatus = "current"
	ProjectFinished ProjectStatus = "finished"
)

// FileRef is a reference to a document attached to a step
type FileRef struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	URL     string `json:"url"`
	IsCloud bool   `json:"is_cloud"`
}

// Step is one stage of the project workflow. Only the Requirements step carries requirements.
type Step struct {
	ID           int
	Name         StepName
	Completed    bool
	Files        []FileRef
	Requirements []Requirement
}

// Project is a fabrication job
type Project struct {
	ID        string
	Name      string
	Steps     []Step
	CreatedAt time.Time
}

// DefaultSteps returns the workflow every new project starts with
func DefaultSteps() []Step {
	return []Step{
		{ID: 1, Name: StepContract},
		{ID: 2, Name: StepMeasurements},
		{ID: 3, Name: StepDrawing},
		{ID: 4, Name: StepRequirements, Requirements: []Requirement{}},
	}
}

// NewProject creates a validated Project with the default steps
func NewProject(id, name string, createdAt time.Time) (*Project, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: project id cannot be empty", ErrValidation)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: project name cannot be empty", ErrValidation)
	}
	return &Project{
		ID:        id,
		Name:      name,
		Steps:     DefaultSteps(),
		CreatedAt: createdAt,
	}, nil
}

// Step returns the step with the given id
func (p *Project) Step(stepID int) (*Step, bool) {
	for i := range p.Steps {
		if p.Steps[i].ID == stepID {
			return &p.Steps[i], true
		}
	}
	return nil, false
}

// RemoveFile drops the file reference with the given id and reports whether it was attached
func (s *Step) RemoveFile(fileID string) bool {
	for i, f := range s.Files {
		if f.ID == fileID {
			s.Files = append(s.Files[:i], s.Files[i+1:]...)
			return true
		}
	}
	return false
}

// RequirementsStep returns the step that carries requirements, if any
func (p *Project) RequirementsStep() *Step {
	for i := range p.Steps {
		if p.Steps[i].Name == StepRequirements {
			return &p.Steps[i]
		}
	}
	return nil
}

// Requirements returns the project's requirement list
func (p *Project) Requirements() []Requirement {
	step := p.RequirementsStep()
	if step == nil {
		return nil
	}
	return step.Requirements
}

// Requirement finds a requirement by id
func (p *Project) Requirement(requirementID string) (*Requirement, bool) {
	step := p.RequirementsStep()
	if step == nil {
		return nil, false
	}
	for i := range step.Requirements {
		if step.Requirements[i].ID == requirementID {
			return &step.Requirements[i], true
		}
	}
	return nil, false
}

// Status derives upcoming/current/finished from completed steps
func (p *Project) Status() ProjectStatus {
	completed := 0
	for _, step := range p.Steps {
		if step.Completed {
			completed++
		}
	}
	switch {
	case completed == 0:
		return ProjectUpcoming
	case completed == len(p.Steps):
		return ProjectFinished
	default:
		return ProjectCurrent
	}
}

// Clone returns a deep copy safe to hand out as a snapshot
func (p Project) Clone() Project {
	steps := make([]Step, len(p.Steps))
	for i, step := range p.Steps {
		steps[i] = step
		steps[i].Files = append([]FileRef(nil), step.Files...)
		if step.Requirements != nil {
			steps[i].Requirements = make([]Requirement, len(step.Requirements))
			for j, req := range step.Requirements {
				steps[i].Requirements[j] = req.Clone()
			}
		}
	}
	p.Steps = steps
	return p
}
