// Package entity contains the core business objects of the project.
package entity

import (
	"slices"

	"github.com/google/uuid"
)

// Role represents the type of role an account can have in the system.
type Role string

const (
	// RoleViewer is a plain account that browses claims and submits ratings.
	RoleViewer Role = "viewer"
	// RoleOrganization can claim locations and issue event codes.
	RoleOrganization Role = "organization"
	// RoleAdmin manages accounts and may release any claim.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	return slices.Contains(AllRoles(), r)
}

// SelfAssignable reports whether the role may be chosen at registration.
func (r Role) SelfAssignable() bool {
	return r == RoleViewer || r == RoleOrganization
}

// AllRoles lists every role in display order.
func AllRoles() []Role {
	return []Role{RoleViewer, RoleOrganization, RoleAdmin}
}

// Identity is the verified caller of an operation, as supplied by the
// authentication layer.
type Identity struct {
	AccountID uuid.UUID
	Role      Role
}

// IsAdmin reports whether the caller holds the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// Owns reports whether the caller is the given owner.
func (i Identity) Owns(ownerID uuid.UUID) bool {
	return i.AccountID == ownerID
}
