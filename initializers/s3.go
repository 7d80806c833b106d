package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"

	s3client "recruit-track-backend/s3"
)

func InitS3() {
	minioClient, err := s3client.NewClient()
	if err != nil {
		log.WithError(err).Error("S3 client initialization failed")
		return
	}

	err = s3client.MakeBucket(context.Background(), minioClient)
	if err != nil {
		log.WithError(err).Error("S3 bucket check failed")
	}

	s3client.Client = minioClient
	log.Info("S3 client initialized")
}
