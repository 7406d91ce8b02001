package memory

import (
	"fmt"

	"github.com/arashoo/Katena-project-management/pkg/domain/entities"
	"github.com/arashoo/Katena-project-management/pkg/domain/repositories"
)

// ProjectRepository provides in-memory project storage.
// Projects are stored and returned as deep copies.
type ProjectRepository struct {
	projects []entities.Project
}

// NewProjectRepository creates a new in-memory project repository
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{
		projects: []entities.Project{},
	}
}

// Verify interface compliance
var _ repositories.ProjectRepository = (*ProjectRepository)(nil)

// LoadProjects loads projects into the repository
func (r *ProjectRepository) LoadProjects(projects []*entities.Project) error {
	for _, project := range projects {
		if err := r.Save(*project); err != nil {
			return err
		}
	}
	return nil
}

// Get returns a copy of the project
func (r *ProjectRepository) Get(id string) (*entities.Project, error) {
	idx := r.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: project %s", entities.ErrNotFound, id)
	}
	project := r.projects[idx].Clone()
	return &project, nil
}

// List returns a snapshot of every project in creation order
func (r *ProjectRepository) List() ([]entities.Project, error) {
	out := make([]entities.Project, 0, len(r.projects))
	for _, project := range r.projects {
		out = append(out, project.Clone())
	}
	return out, nil
}

// Save inserts or replaces a project
func (r *ProjectRepository) Save(project entities.Project) error {
	if project.ID == "" {
		return fmt.Errorf("%w: project id cannot be empty", entities.ErrValidation)
	}
	if idx := r.indexOf(project.ID); idx >= 0 {
		r.projects[idx] = project.Clone()
		return nil
	}
	r.projects = append(r.projects, project.Clone())
	return nil
}

// Delete removes a project
func (r *ProjectRepository) Delete(id string) error {
	idx := r.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: project %s", entities.ErrNotFound, id)
	}
	r.projects = append(r.projects[:idx], r.projects[idx+1:]...)
	return nil
}

func (r *ProjectRepository) indexOf(id string) int {
	for i := range r.projects {
		if r.projects[i].ID == id {
			return i
		}
	}
	return -1
}
