// internal/model/models.go
package model

import (
	"time"
)

// RemoteRepository is the repository metadata returned by GitHub for a user.
type RemoteRepository struct {
	GithubID    int64
	Owner       string
	Name        string
	FullName    string
	Description *string
	HTMLURL     string
	Homepage    *string
	Language    *string
	Topics      []string
	StarsCount  int
	ForksCount  int
	Fork        bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	PushedAt    *time.Time
}

// Project is a portfolio entry, either derived from a RemoteRepository or
// entered manually through the admin form.
type Project struct {
	ID          int64      `json:"id"`
	GithubID    int64      `json:"github_id"`
	Name        string     `json:"name"`
	FullName    string     `json:"full_name"`
	Description *string    `json:"description"`
	HTMLURL     string     `json:"html_url"`
	Homepage    *string    `json:"homepage"`
	DemoURL     *string    `json:"demo_url"`
	Language    *string    `json:"language"`
	TechStack   []string   `json:"tech_stack"`
	Topics      []string   `json:"topics"`
	StarsCount  int        `json:"stargazers_count"`
	ForksCount  int        `json:"forks_count"`
	PushedAt    *time.Time `json:"pushed_at"`
	Featured    bool       `json:"featured"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ProjectForm is the manually entered data from the admin form.
// TechStack and Topics are comma-separated.
type ProjectForm struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	GithubURL   string `json:"github_url"`
	DemoURL     string `json:"demo_url"`
	Homepage    string `json:"homepage"`
	Language    string `json:"language"`
	TechStack   string `json:"tech_stack"`
	Topics      string `json:"topics"`
	Featured    bool   `json:"featured"`
}

// ProjectListing is the stored projects split by the featured flag.
type ProjectListing struct {
	Featured []Project `json:"featured"`
	Other    []Project `json:"other"`
	Total    int       `json:"total"`
	Empty    bool      `json:"empty"`
}

type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
