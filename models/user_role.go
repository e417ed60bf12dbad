package models

import "time"

// AppRole is the closed set of organizational roles. Checks against it are
// exhaustive switches, never ad-hoc string comparisons.
type AppRole string

const (
	RoleStudent           AppRole = "student"
	RoleDepartmentHead    AppRole = "department_head"
	RoleAssociateDean     AppRole = "associate_dean"
	RoleDean              AppRole = "dean"
	RoleStudentAffairs    AppRole = "student_affairs"
	RoleCommitteeMember   AppRole = "committee_member"
	RoleCommitteeChairman AppRole = "committee_chairman"
	RolePresident         AppRole = "president"
	RoleSystemAdmin       AppRole = "system_admin"
)

// ReviewerRoles are the roles that act on applications somewhere in the
// chain. Excludes student; excludes system_admin, whose bypass is handled
// separately by the authorization gate.
var ReviewerRoles = []AppRole{
	RoleDepartmentHead,
	RoleAssociateDean,
	RoleDean,
	RoleStudentAffairs,
	RoleCommitteeMember,
	RoleCommitteeChairman,
	RolePresident,
}

// IsValid reports whether r is one of the defined roles.
func (r AppRole) IsValid() bool {
	switch r {
	case RoleStudent, RoleDepartmentHead, RoleAssociateDean, RoleDean,
		RoleStudentAffairs, RoleCommitteeMember, RoleCommitteeChairman,
		RolePresident, RoleSystemAdmin:
		return true
	}
	return false
}

// IsReviewer reports whether r reviews applications at some stage.
func (r AppRole) IsReviewer() bool {
	for _, role := range ReviewerRoles {
		if r == role {
			return true
		}
	}
	return false
}

// UserRole binds a user to a role, optionally scoped to a campus, faculty
// or department. A nil scope id means the assignment applies to every
// instance of that dimension. system_admin assignments are always unscoped.
type UserRole struct {
	UserRoleID   int        `gorm:"primaryKey;column:user_role_id" json:"user_role_id"`
	UserID       int        `gorm:"column:user_id;uniqueIndex:uniq_user_role_scope" json:"user_id"`
	Role         AppRole    `gorm:"column:role;uniqueIndex:uniq_user_role_scope" json:"role"`
	CampusID     *int       `gorm:"column:campus_id;uniqueIndex:uniq_user_role_scope" json:"campus_id,omitempty"`
	FacultyID    *int       `gorm:"column:faculty_id;uniqueIndex:uniq_user_role_scope" json:"faculty_id,omitempty"`
	DepartmentID *int       `gorm:"column:department_id;uniqueIndex:uniq_user_role_scope" json:"department_id,omitempty"`
	CreateAt     *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt     *time.Time `gorm:"column:update_at" json:"update_at"`

	Campus     *Campus     `gorm:"foreignKey:CampusID" json:"campus,omitempty"`
	Faculty    *Faculty    `gorm:"foreignKey:FacultyID" json:"faculty,omitempty"`
	Department *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
}

// TableName override
func (UserRole) TableName() string {
	return "user_roles"
}
