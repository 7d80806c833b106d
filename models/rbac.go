package models

type RbacFunc func(userID string, role UserRole, path string) bool

type Module string

const (
	UsersModule          Module = "USERS"
	HiringRequestModule  Module = "HIRING_REQUEST"
	CandidateModule      Module = "CANDIDATE"
	InterviewModule      Module = "INTERVIEW"
	NotificationModule   Module = "NOTIFICATION"
	VacantPositionModule Module = "VACANT_POSITION"
)

type Permission string

const (
	CreatePermission Permission = "CREATE"
	EditPermission   Permission = "EDIT"
	ViewPermission   Permission = "VIEW"
	ManagePermission Permission = "MANAGE"
	FilesPermission  Permission = "FILES"
	ExportPermission Permission = "EXPORT"
)
