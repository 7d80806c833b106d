package initializers

import (
	"context"

	"recruit-track-backend/config"
	"recruit-track-backend/fiberlog"
	authhandler "recruit-track-backend/lib/auth"
	candidatehandler "recruit-track-backend/lib/candidate"
	candidatehistoryhandler "recruit-track-backend/lib/candidate-history"
	xlsexport "recruit-track-backend/lib/export/xls"
	filestorage "recruit-track-backend/lib/file-storage"
	hiringrequesthandler "recruit-track-backend/lib/hiring-request"
	interviewhandler "recruit-track-backend/lib/interview"
	notificationhandler "recruit-track-backend/lib/notification"
	"recruit-track-backend/lib/rbac"
	usershandler "recruit-track-backend/lib/users"
	vacantpositionhandler "recruit-track-backend/lib/vacant-position"
	connectionhub "recruit-track-backend/lib/ws/hub/connection-hub"
)

var LoggerConfig *fiberlog.Config

// InitAllServices wires the handler singletons. Order matters: the
// notification handler needs the connection hub, the hiring request,
// candidate and interview handlers need the notification handler.
func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	connectionhub.Init()
	rbac.NewHandler()
	filestorage.NewHandler()
	usershandler.NewHandler()
	authhandler.NewHandler()
	notificationhandler.NewHandler()
	hiringrequesthandler.NewHandler()
	candidatehistoryhandler.NewHandler()
	candidatehandler.NewHandler()
	interviewhandler.NewHandler()
	vacantpositionhandler.NewHandler()
	xlsexport.NewHandler()
}
