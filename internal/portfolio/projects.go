// internal/portfolio/projects.go
package portfolio

import (
	"context"
	"strings"

	"portfolio-site/internal/database"
	custom_errors "portfolio-site/internal/errors"
	"portfolio-site/internal/model"
)

// AddProject validates a manually entered project and inserts it.
// It never updates an existing row.
func (s *Service) AddProject(ctx context.Context, form model.ProjectForm) (model.Project, error) {
	if err := validateProjectForm(form); err != nil {
		return model.Project{}, err
	}

	pushedAt := s.now().UTC()
	params := database.CreateProjectParams{
		GithubID:        s.placeholder(),
		Name:            form.Name,
		FullName:        form.Name,
		Description:     database.Text(&form.Description),
		HtmlUrl:         form.GithubURL,
		Homepage:        database.Text(&form.Homepage),
		DemoUrl:         database.Text(&form.DemoURL),
		Language:        database.Text(&form.Language),
		TechStack:       ParseLabels(form.TechStack),
		Topics:          ParseLabels(form.Topics),
		StargazersCount: 0,
		ForksCount:      0,
		PushedAt:        database.Timestamptz(&pushedAt),
		Featured:        form.Featured,
	}

	row, err := s.q.CreateProject(ctx, params)
	if err != nil {
		s.logger.Error("Failed to add project", "name", form.Name, "error", err)
		return model.Project{}, err
	}
	s.logger.Info("Project added", "id", row.ID, "github_id", row.GithubID, "name", row.Name)
	return database.ToModelProject(row), nil
}

// ListProjects reads every stored project and splits them by the featured flag.
func (s *Service) ListProjects(ctx context.Context) (model.ProjectListing, error) {
	rows, err := s.q.ListProjects(ctx)
	if err != nil {
		return model.ProjectListing{}, err
	}

	projects := make([]model.Project, 0, len(rows))
	for _, r := range rows {
		projects = append(projects, database.ToModelProject(r))
	}
	return Partition(projects), nil
}

// Partition splits projects into featured and other, keeping their order.
func Partition(projects []model.Project) model.ProjectListing {
	listing := model.ProjectListing{
		Featured: []model.Project{},
		Other:    []model.Project{},
		Total:    len(projects),
		Empty:    len(projects) == 0,
	}
	for _, p := range projects {
		if p.Featured {
			listing.Featured = append(listing.Featured, p)
		} else {
			listing.Other = append(listing.Other, p)
		}
	}
	return listing
}

// ParseLabels turns "React, Node.js" into ["React", "Node.js"].
// Blank input gives an empty list; items are trimmed but kept even when empty.
func ParseLabels(text string) []string {
	if text == "" {
		return []string{}
	}
	parts := strings.Split(text, ",")
	labels := make([]string, 0, len(parts))
	for _, p := range parts {
		labels = append(labels, strings.TrimSpace(p))
	}
	return labels
}

func validateProjectForm(form model.ProjectForm) error {
	fields := map[string]string{}
	if strings.TrimSpace(form.Name) == "" {
		fields["name"] = "Project name is required"
	}
	if strings.TrimSpace(form.Description) == "" {
		fields["description"] = "Description is required"
	}
	if strings.TrimSpace(form.GithubURL) == "" {
		fields["github_url"] = "GitHub URL is required"
	}
	if len(fields) > 0 {
		return &custom_errors.ValidationError{Fields: fields}
	}
	return nil
}
