// Package auth defines the role model and the static bearer token registry.
// Tokens are opaque configuration values; there is no issuance or refresh.
package auth

import "strings"

// Roles form a closed set. A credential maps to exactly one role.
const (
	RoleTeacher = "teacher"
	RoleParent  = "parent"
	RoleAdmin   = "admin"
)

// User is the ephemeral identity derived from a bearer token. It is never
// persisted.
type User struct {
	Role string
}

// Registry maps opaque bearer tokens to users. It is built once at process
// start and read-only afterwards.
type Registry map[string]User

// NewRegistry normalizes a token→role mapping into a Registry. Blank tokens
// and blank roles are dropped.
func NewRegistry(tokens map[string]string) Registry {
	registry := make(Registry, len(tokens))
	for token, role := range tokens {
		token = strings.TrimSpace(token)
		role = strings.ToLower(strings.TrimSpace(role))
		if token == "" || role == "" {
			continue
		}
		registry[token] = User{Role: role}
	}
	return registry
}

// Lookup resolves a token to its user. The second return reports whether the
// token is known.
func (r Registry) Lookup(token string) (User, bool) {
	user, ok := r[token]
	return user, ok
}
