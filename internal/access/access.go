// Package access holds the role model and the permission predicates the
// domain layer evaluates before applying any mutation.
package access

import "fmt"

// Role is a dashboard privilege tier. Ordering is strict:
// editor < admin < owner.
type Role string

const (
	RoleEditor Role = "editor"
	RoleAdmin  Role = "admin"
	RoleOwner  Role = "owner"
)

var roleRank = map[Role]int{
	RoleEditor: 1,
	RoleAdmin:  2,
	RoleOwner:  3,
}

// ParseRole validates a raw role string.
func ParseRole(raw string) (Role, error) {
	r := Role(raw)
	if _, ok := roleRank[r]; !ok {
		return "", fmt.Errorf("unknown role %q", raw)
	}
	return r, nil
}

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether r grants at least the privileges of other.
func (r Role) AtLeast(other Role) bool {
	return roleRank[r] >= roleRank[other]
}

// Identity is the authenticated caller attached to a request.
type Identity struct {
	ID    string
	Email string
	Name  string
	Role  Role
}

// IsZero reports whether the identity is anonymous.
func (i Identity) IsZero() bool { return i.ID == "" }

// CanEdit reports whether the role may create and update content
// (projects, site copy, message state, application review).
func CanEdit(r Role) bool { return r.AtLeast(RoleEditor) }

// CanDelete reports whether the role may delete content.
func CanDelete(r Role) bool { return r.AtLeast(RoleAdmin) }

// CanManageTeam reports whether the role may view and change the admin
// roster.
func CanManageTeam(r Role) bool { return r == RoleOwner }
