package services

import (
	"student-award-api/models"

	"gorm.io/gorm"
)

// Principal is an authenticated actor with their resolved role assignments.
// Workflow operations receive it explicitly instead of reading ambient
// session state, so the gate and state machine stay independently testable.
type Principal struct {
	UserID int
	Email  string
	Roles  []models.UserRole
}

// ResolvePrincipal loads the role assignments for a user. A user with no
// assignments is not an error; every downstream check fails closed on the
// empty set.
func ResolvePrincipal(db *gorm.DB, userID int) (*Principal, error) {
	var user models.User
	if err := db.Where("user_id = ? AND delete_at IS NULL", userID).First(&user).Error; err != nil {
		return nil, err
	}

	var roles []models.UserRole
	if err := db.Where("user_id = ?", userID).Find(&roles).Error; err != nil {
		return nil, err
	}

	return &Principal{
		UserID: user.UserID,
		Email:  user.Email,
		Roles:  roles,
	}, nil
}

// HasRole reports whether the principal holds the role under any scope.
func (p *Principal) HasRole(role models.AppRole) bool {
	for _, assignment := range p.Roles {
		if assignment.Role == role {
			return true
		}
	}
	return false
}

// IsSystemAdmin reports whether the principal holds the system_admin role,
// which bypasses all scope checks.
func (p *Principal) IsSystemAdmin() bool {
	return p.HasRole(models.RoleSystemAdmin)
}

// ReviewerRoles returns the distinct reviewing roles the principal holds,
// in no particular order. student and system_admin are excluded.
func (p *Principal) ReviewerRoles() []models.AppRole {
	seen := make(map[models.AppRole]bool)
	var roles []models.AppRole
	for _, assignment := range p.Roles {
		if assignment.Role.IsReviewer() && !seen[assignment.Role] {
			seen[assignment.Role] = true
			roles = append(roles, assignment.Role)
		}
	}
	return roles
}
