package rbac

import (
	"recruit-track-backend/models"
)

var (
	AllRoles = []models.UserRole{
		models.UserRoleRequester,
		models.UserRoleRecruiter,
		models.UserRolePlantManager,
		models.UserRoleHRManager,
	}
	HRManagerRoleSet          = []models.UserRole{models.UserRoleHRManager}
	HRRecruiterRoleSet        = []models.UserRole{models.UserRoleHRManager, models.UserRoleRecruiter}
	HRRecruiterManagerRoleSet = []models.UserRole{models.UserRoleHRManager, models.UserRoleRecruiter, models.UserRolePlantManager}
	RequestOwnerRoleSet       = []models.UserRole{models.UserRoleHRManager, models.UserRolePlantManager, models.UserRoleRequester}
)

func (i *impl) initRules() {
	i.addUsersRbac()
	i.addHiringRequestRbac()
	i.addCandidateRbac()
	i.addInterviewRbac()
	i.addNotificationRbac()
	i.addVacantPositionRbac()
}

func (i *impl) addUsersRbac() {
	//VIEW
	i.RegisterRule(models.UsersModule, models.ViewPermission, AllRoles, "/api/v1/users [get]", nil)
	i.RegisterRule(models.UsersModule, models.ViewPermission, AllRoles, "/api/v1/users/{id} [get]", nil)
	//MANAGE
	i.RegisterRule(models.UsersModule, models.ManagePermission, HRManagerRoleSet, "/api/v1/users [post]", nil)
	i.RegisterRule(models.UsersModule, models.ManagePermission, HRManagerRoleSet, "/api/v1/users/{id} [put]", nil)
	i.RegisterRule(models.UsersModule, models.ManagePermission, HRManagerRoleSet, "/api/v1/users/{id} [delete]", nil)
}

func (i *impl) addHiringRequestRbac() {
	//VIEW
	i.RegisterRule(models.HiringRequestModule, models.ViewPermission, AllRoles, "/api/v1/hiring-requests/list [post]", nil)
	i.RegisterRule(models.HiringRequestModule, models.ViewPermission, AllRoles, "/api/v1/hiring-requests/{id} [get]", nil)
	//CREATE/EDIT
	i.RegisterRule(models.HiringRequestModule, models.CreatePermission, RequestOwnerRoleSet, "/api/v1/hiring-requests [post]", nil)
	i.RegisterRule(models.HiringRequestModule, models.EditPermission, RequestOwnerRoleSet, "/api/v1/hiring-requests/{id} [put]", nil)
	i.RegisterRule(models.HiringRequestModule, models.EditPermission, HRManagerRoleSet, "/api/v1/hiring-requests/{id} [delete]", nil)
	i.RegisterRule(models.HiringRequestModule, models.EditPermission, HRRecruiterRoleSet, "/api/v1/hiring-requests/{id}/change_status [put]", nil)
}

func (i *impl) addCandidateRbac() {
	//VIEW
	i.RegisterRule(models.CandidateModule, models.ViewPermission, HRRecruiterManagerRoleSet, "/api/v1/candidates/list [post]", nil)
	i.RegisterRule(models.CandidateModule, models.ViewPermission, HRRecruiterManagerRoleSet, "/api/v1/candidates/{id} [get]", nil)
	i.RegisterRule(models.CandidateModule, models.ViewPermission, HRRecruiterManagerRoleSet, "/api/v1/candidates/{id}/status-history [get]", nil)
	//CREATE/EDIT
	i.RegisterRule(models.CandidateModule, models.CreatePermission, HRRecruiterRoleSet, "/api/v1/candidates [post]", nil)
	i.RegisterRule(models.CandidateModule, models.EditPermission, HRRecruiterRoleSet, "/api/v1/candidates/{id} [put]", nil)
	i.RegisterRule(models.CandidateModule, models.EditPermission, HRManagerRoleSet, "/api/v1/candidates/{id} [delete]", nil)
	//FILES
	i.RegisterRule(models.CandidateModule, models.FilesPermission, HRRecruiterRoleSet, "/api/v1/candidates/{id}/cv [post]", nil)
	i.RegisterRule(models.CandidateModule, models.FilesPermission, HRRecruiterManagerRoleSet, "/api/v1/candidates/{id}/cv [get]", nil)
	i.RegisterRule(models.CandidateModule, models.FilesPermission, HRRecruiterRoleSet, "/api/v1/candidates/{id}/doc [post]", nil)
	i.RegisterRule(models.CandidateModule, models.FilesPermission, HRRecruiterManagerRoleSet, "/api/v1/candidates/{id}/doc/list [get]", nil)
	i.RegisterRule(models.CandidateModule, models.FilesPermission, HRRecruiterManagerRoleSet, "/api/v1/candidates/doc/{id} [get]", nil)
	//EXPORT
	i.RegisterRule(models.CandidateModule, models.ExportPermission, HRRecruiterRoleSet, "/api/v1/candidates/export/xlsx [post]", nil)
	i.RegisterRule(models.CandidateModule, models.ExportPermission, HRRecruiterRoleSet, "/api/v1/candidates/export/pdf [post]", nil)
}

func (i *impl) addInterviewRbac() {
	//VIEW
	i.RegisterRule(models.InterviewModule, models.ViewPermission, AllRoles, "/api/v1/interviews [get]", nil)
	i.RegisterRule(models.InterviewModule, models.ViewPermission, AllRoles, "/api/v1/interviews/{id} [get]", nil)
	//CREATE/EDIT
	i.RegisterRule(models.InterviewModule, models.CreatePermission, HRRecruiterRoleSet, "/api/v1/interviews [post]", nil)
	i.RegisterRule(models.InterviewModule, models.EditPermission, HRRecruiterRoleSet, "/api/v1/interviews/{id} [put]", nil)
	i.RegisterRule(models.InterviewModule, models.EditPermission, HRManagerRoleSet, "/api/v1/interviews/{id} [delete]", nil)
}

func (i *impl) addNotificationRbac() {
	i.RegisterRule(models.NotificationModule, models.ViewPermission, AllRoles, "/api/v1/notifications [get]", nil)
	i.RegisterRule(models.NotificationModule, models.ViewPermission, AllRoles, "/api/v1/notifications/me [get]", nil)
	i.RegisterRule(models.NotificationModule, models.EditPermission, AllRoles, "/api/v1/notifications/{id}/read [put]", nil)
	i.RegisterRule(models.NotificationModule, models.EditPermission, AllRoles, "/api/v1/notifications/read-all [put]", nil)
	i.RegisterRule(models.NotificationModule, models.ManagePermission, HRManagerRoleSet, "/api/v1/notifications [post]", nil)
}

func (i *impl) addVacantPositionRbac() {
	i.RegisterRule(models.VacantPositionModule, models.ViewPermission, AllRoles, "/api/v1/vacant-positions [get]", nil)
}
