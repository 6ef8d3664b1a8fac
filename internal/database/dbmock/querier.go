// Package dbmock provides a testify mock of database.Querier.
package dbmock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"portfolio-site/internal/database"
)

// MockQuerier is a mock of the database.Querier interface.
type MockQuerier struct {
	mock.Mock
}

var _ database.Querier = (*MockQuerier)(nil)

func (m *MockQuerier) CreateContactMessage(ctx context.Context, arg database.CreateContactMessageParams) (database.ContactMessage, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(database.ContactMessage), args.Error(1)
}
func (m *MockQuerier) CreateProject(ctx context.Context, arg database.CreateProjectParams) (database.Project, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(database.Project), args.Error(1)
}
func (m *MockQuerier) GetProjectByGithubID(ctx context.Context, githubID int64) (database.Project, error) {
	args := m.Called(ctx, githubID)
	return args.Get(0).(database.Project), args.Error(1)
}
func (m *MockQuerier) ListContactMessages(ctx context.Context) ([]database.ContactMessage, error) {
	args := m.Called(ctx)
	return args.Get(0).([]database.ContactMessage), args.Error(1)
}
func (m *MockQuerier) ListProjects(ctx context.Context) ([]database.Project, error) {
	args := m.Called(ctx)
	return args.Get(0).([]database.Project), args.Error(1)
}
func (m *MockQuerier) UpsertProject(ctx context.Context, arg database.UpsertProjectParams) (database.Project, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(database.Project), args.Error(1)
}
