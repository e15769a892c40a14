// Package access holds the portal's access-control rules: role derivation
// from the configured allow-list and the route guard decision table.
package access

import (
	"draftdesk/internal/domain/entity"
)

// Resolver derives the admin capability from a principal's email. The role
// is never stored; it is recomputed from the allow-list every time.
type Resolver struct {
	allowed map[string]struct{}
}

// NewResolver builds a Resolver from the configured admin emails.
func NewResolver(allowedEmails []string) *Resolver {
	allowed := make(map[string]struct{}, len(allowedEmails))
	for _, email := range allowedEmails {
		allowed[email] = struct{}{}
	}

	return &Resolver{allowed: allowed}
}

// IsAdmin reports whether the principal's email is an exact, case-sensitive
// member of the allow-list. A nil principal always resolves to false.
func (r *Resolver) IsAdmin(p *entity.Principal) bool {
	if p == nil {
		return false
	}
	_, ok := r.allowed[p.Email]

	return ok
}

// IsAdminEmail is IsAdmin for call sites that only hold an email string.
func (r *Resolver) IsAdminEmail(email string) bool {
	if email == "" {
		return false
	}
	_, ok := r.allowed[email]

	return ok
}

// RolesFor returns the full role set for a principal: every signed-in user
// is a client, allow-listed ones are additionally admins.
func (r *Resolver) RolesFor(p *entity.Principal) entity.Roles {
	if p == nil {
		return nil
	}

	roles := entity.Roles{entity.RoleClient}
	if r.IsAdmin(p) {
		roles = append(roles, entity.RoleAdmin)
	}

	return roles
}
