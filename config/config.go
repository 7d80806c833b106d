package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr  string `default:"" env:"APP_HOST"`
		Port        int    `default:"8080"  env:"APP_PORT"`
		FrontendURL string `default:"http://localhost:3000" env:"FRONTEND_URL"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"recruit-track" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Auth struct {
		JWTSecret             string `default:"" env:"JWT_SECRET"`
		JWTExpireInSec        int    `default:"604800" env:"JWT_EXPIRES_IN_SEC"`
		JWTRefreshExpireInSec int    `default:"2592000" env:"REFRESH_TOKEN_EXPIRES_IN_SEC"`
		CookieDomain          string `default:"" env:"COOKIE_DOMAIN"`
		CookieSecure          *bool  `default:"false" env:"COOKIE_SECURE"`
	}
	Admin struct {
		Username string `default:"" env:"ADMIN_USERNAME"`
		Password string `default:"" env:"ADMIN_PASSWORD"`
		Email    string `default:"" env:"ADMIN_EMAIL"`
	}
	S3 struct {
		Endpoint        string `default:"127.0.0.1:9000" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		BucketName      string `default:"recruit-track-uploads" env:"S3_BUCKET_NAME"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
		Sender     string `default:"" env:"SMTP_SENDER"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
