package service

import (
	"github.com/anbessa/iam-backend/internal/apperr"
	"github.com/anbessa/iam-backend/internal/domain"
)

// Requirement names a capability a guarded operation needs.
type Requirement struct {
	Type     string
	Resource string
}

// ExtractPermissions flattens the permission sets of the given roles into a
// single slice: role order first, permission order within each role second.
// No deduplication: checks are existence-based, so redundant grants are
// harmless. The roles must already carry their permissions; this function
// performs no I/O.
func ExtractPermissions(roles []domain.Role) []domain.Permission {
	permissions := make([]domain.Permission, 0)
	for _, role := range roles {
		permissions = append(permissions, role.Permissions...)
	}
	return permissions
}

// AccessControl decides allow/deny for an authenticated principal whose
// roles and permissions were eagerly loaded upstream. Every deny is the
// single Forbidden signal; the checker never surfaces anything else.
type AccessControl struct{}

func NewAccessControl() *AccessControl { return &AccessControl{} }

// CheckPermission allows when the principal's user type is in the override
// list, or when at least one extracted permission matches the required
// (type, resource) pair exactly.
func (ac *AccessControl) CheckPermission(principal *domain.User, required Requirement, overrideUserTypes []uint) error {
	if userTypeIn(overrideUserTypes, principal.UserTypeID) {
		return nil
	}
	for _, p := range ExtractPermissions(principal.Roles) {
		if p.Type == required.Type && p.Resource == required.Resource {
			return nil
		}
	}
	return apperr.Forbidden()
}

// CheckPermissions requires every pair in order. Permissions are extracted
// once; the first unmet requirement denies without evaluating the rest.
func (ac *AccessControl) CheckPermissions(principal *domain.User, required []Requirement, overrideUserTypes []uint) error {
	if userTypeIn(overrideUserTypes, principal.UserTypeID) {
		return nil
	}
	permissions := ExtractPermissions(principal.Roles)
	for _, req := range required {
		if !hasPair(permissions, req) {
			return apperr.Forbidden()
		}
	}
	return nil
}

// CheckUserType allows iff the principal's user type is in the allowed list.
// No permission lookup happens.
func (ac *AccessControl) CheckUserType(principal *domain.User, allowedUserTypes []uint) error {
	if userTypeIn(allowedUserTypes, principal.UserTypeID) {
		return nil
	}
	return apperr.Forbidden()
}

func hasPair(permissions []domain.Permission, req Requirement) bool {
	for _, p := range permissions {
		if p.Type == req.Type && p.Resource == req.Resource {
			return true
		}
	}
	return false
}

func userTypeIn(userTypes []uint, id uint) bool {
	for _, t := range userTypes {
		if t == id {
			return true
		}
	}
	return false
}
