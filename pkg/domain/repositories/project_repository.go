package repositories

import "github.com/arashoo/Katena-project-management/pkg/domain/entities"

// ProjectRepository provides access to projects and their requirement lists
type ProjectRepository interface {
	Get(id string) (*entities.Project, error)
	List() ([]entities.Project, error)
	Save(project entities.Project) error
	Delete(id string) error
	LoadProjects(projects []*entities.Project) error
}
