package models

import "strings"

// Repository represents a GitHub repository returned by the REST API
type Repository struct {
	FullName string // Full repository name (owner/repo)
	HTMLURL  string // Web URL of the repository
}

// NewRepository creates a Repository from a full name (owner/repo) and its URL
func NewRepository(fullName, htmlURL string) Repository {
	return Repository{
		FullName: fullName,
		HTMLURL:  htmlURL,
	}
}

// Name extracts just the repository name from the full name (owner/repo)
func (r Repository) Name() string {
	parts := strings.SplitN(r.FullName, "/", 2)
	if len(parts) == 2 {
		return parts[1]
	}
	return r.FullName
}

// FindURL returns the URL of the first repository whose full name equals name
func FindURL(repos []Repository, name string) (string, bool) {
	for _, repo := range repos {
		if repo.FullName == name {
			return repo.HTMLURL, true
		}
	}
	return "", false
}
