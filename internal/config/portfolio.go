package config

import "fmt"

// PortfolioConfig lists the projects shown by the TUI, one carousel each.
type PortfolioConfig struct {
	Company  string    `yaml:"company"`
	Projects []Project `yaml:"projects"`
}

// Project is one portfolio entry. Images may be empty; such a project
// renders no carousel.
type Project struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description,omitempty"` // Markdown
	Images      []string `yaml:"images,omitempty"`
}

// FindProject returns the project with the given id.
func (p PortfolioConfig) FindProject(id string) (Project, bool) {
	for _, proj := range p.Projects {
		if proj.ID == id {
			return proj, true
		}
	}
	return Project{}, false
}

// Validate requires unique, non-empty project ids.
func (p PortfolioConfig) Validate() error {
	seen := make(map[string]bool, len(p.Projects))
	for i, proj := range p.Projects {
		if proj.ID == "" {
			return fmt.Errorf("project %d: id is required", i)
		}
		if seen[proj.ID] {
			return fmt.Errorf("duplicate project id: %s", proj.ID)
		}
		seen[proj.ID] = true
	}
	return nil
}
