package models

type UserRole string

const (
	UserRoleRequester    UserRole = "REQUESTER"
	UserRoleRecruiter    UserRole = "RECRUITER"
	UserRolePlantManager UserRole = "PLANT_MANAGER"
	UserRoleHRManager    UserRole = "HR_MANAGER"
)

// legacy role names kept by accounts created before the role rename
var legacyRoleAlias = map[UserRole]UserRole{
	"rh":        UserRoleHRManager,
	"recruteur": UserRoleRecruiter,
	"manager":   UserRolePlantManager,
	"directeur": UserRolePlantManager,
}

var roleHumanName = map[UserRole]string{
	UserRoleRequester:    "Requester",
	UserRoleRecruiter:    "Recruiter",
	UserRolePlantManager: "Plant manager",
	UserRoleHRManager:    "HR manager",
}

// Normalize resolves legacy aliases to the canonical role name.
// Returns false when the value is neither canonical nor a known alias.
func (r UserRole) Normalize() (UserRole, bool) {
	if _, exist := roleHumanName[r]; exist {
		return r, true
	}
	if canonical, exist := legacyRoleAlias[r]; exist {
		return canonical, true
	}
	return r, false
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsHRManager() bool {
	return r == UserRoleHRManager
}

const SystemUser = "System"
