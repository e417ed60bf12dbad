package services

import (
	"student-award-api/models"
)

// ApplicationScope is the organizational placement of an application:
// its campus, and the faculty and department derived from the student's
// profile. Faculty and department may be unknown when the student profile
// is incomplete; scope checks against an unknown dimension deny.
type ApplicationScope struct {
	CampusID     int
	FacultyID    *int
	DepartmentID *int
}

// ScopeOf derives the scope from a loaded application. The caller must have
// preloaded Student.StudentProfile.Department.
func ScopeOf(app *models.Application) ApplicationScope {
	scope := ApplicationScope{CampusID: app.CampusID}
	if app.Student == nil || app.Student.StudentProfile == nil {
		return scope
	}
	profile := app.Student.StudentProfile
	scope.DepartmentID = profile.DepartmentID
	if profile.Department != nil {
		facultyID := profile.Department.FacultyID
		scope.FacultyID = &facultyID
	}
	return scope
}

// CanReviewAtStatus reports whether any of the roles is permitted to act on
// the status, ignoring scope.
func CanReviewAtStatus(roles []models.AppRole, status models.Status) bool {
	allowed := ReviewerRolesFor(status)
	for _, role := range roles {
		for _, want := range allowed {
			if role == want {
				return true
			}
		}
	}
	return false
}

// CanReviewApplication decides whether a principal may act on an application
// at the given status. Different role families are scoped along different
// organizational dimensions and the asymmetry is deliberate: department
// heads supervise one department, deans one faculty, while the university-
// wide roles are optionally partitioned by campus. A principal holding
// several assignments of the same role passes if any one of them matches.
func CanReviewApplication(p *Principal, status models.Status, scope ApplicationScope) bool {
	if p == nil || !status.IsReviewable() {
		return false
	}

	held := make([]models.AppRole, 0, len(p.Roles))
	for _, assignment := range p.Roles {
		held = append(held, assignment.Role)
	}
	if !CanReviewAtStatus(held, status) {
		return false
	}

	if p.IsSystemAdmin() {
		return true
	}

	allowed := ReviewerRolesFor(status)
	for _, assignment := range p.Roles {
		if !roleAllowed(assignment.Role, allowed) {
			continue
		}
		if assignmentMatchesScope(assignment, scope) {
			return true
		}
	}
	return false
}

func roleAllowed(role models.AppRole, allowed []models.AppRole) bool {
	for _, want := range allowed {
		if role == want {
			return true
		}
	}
	return false
}

// assignmentMatchesScope applies the scope predicate for the assignment's
// role family.
func assignmentMatchesScope(assignment models.UserRole, scope ApplicationScope) bool {
	switch assignment.Role {
	case models.RoleDepartmentHead:
		// Always department-scoped. An unscoped department head assignment
		// is a misconfiguration and must not match everything.
		return assignment.DepartmentID != nil && scope.DepartmentID != nil &&
			*assignment.DepartmentID == *scope.DepartmentID
	case models.RoleDean, models.RoleAssociateDean:
		return assignment.FacultyID != nil && scope.FacultyID != nil &&
			*assignment.FacultyID == *scope.FacultyID
	case models.RoleStudentAffairs, models.RoleCommitteeMember,
		models.RoleCommitteeChairman, models.RolePresident:
		// Unscoped means every campus.
		return assignment.CampusID == nil || *assignment.CampusID == scope.CampusID
	}
	return false
}
