package rbac

import (
	"regexp"

	"recruit-track-backend/models"
)

type HTTPMethod string

const (
	GET    HTTPMethod = "GET"
	POST   HTTPMethod = "POST"
	PUT    HTTPMethod = "PUT"
	DELETE HTTPMethod = "DELETE"
	PATCH  HTTPMethod = "PATCH"
)

type PathRule struct {
	// checks ordered fastest first
	Exact    map[string]models.RbacFunc
	Patterns []PatternRule
}

type PatternRule struct {
	Pattern *regexp.Regexp
	Handler models.RbacFunc
}
