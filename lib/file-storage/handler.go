package filestorage

import (
	"bytes"
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	log "github.com/sirupsen/logrus"

	"recruit-track-backend/config"
	"recruit-track-backend/db"
	filesdbstore "recruit-track-backend/lib/file-storage/store"
	"recruit-track-backend/models"
	dbmodels "recruit-track-backend/models/db"
	s3client "recruit-track-backend/s3"
)

type Provider interface {
	UploadCV(ctx context.Context, candidateID, fileName, contentType string, body []byte) (id string, err error)
	UploadDoc(ctx context.Context, candidateID, fileName, contentType string, body []byte) (id string, err error)
	GetCV(ctx context.Context, candidateID string) (rec *dbmodels.FileStorage, body []byte, err error)
	GetFile(ctx context.Context, fileID string) (rec *dbmodels.FileStorage, body []byte, err error)
	GetDocList(candidateID string) (list []dbmodels.FileStorage, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:    filesdbstore.NewInstance(db.DB),
		s3client: s3client.Client,
	}
}

type impl struct {
	store    filesdbstore.Provider
	s3client *minio.Client
}

func (i impl) UploadCV(ctx context.Context, candidateID, fileName, contentType string, body []byte) (string, error) {
	return i.upload(ctx, candidateID, fileName, contentType, dbmodels.CandidateCV, body)
}

func (i impl) UploadDoc(ctx context.Context, candidateID, fileName, contentType string, body []byte) (string, error) {
	return i.upload(ctx, candidateID, fileName, contentType, dbmodels.CandidateDoc, body)
}

func (i impl) GetCV(ctx context.Context, candidateID string) (*dbmodels.FileStorage, []byte, error) {
	rec, err := i.store.GetLastByType(candidateID, dbmodels.CandidateCV)
	if err != nil {
		return nil, nil, err
	}
	if rec == nil {
		return nil, nil, models.ErrNotFound
	}
	body, err := i.download(ctx, rec.ID)
	if err != nil {
		return nil, nil, err
	}
	return rec, body, nil
}

func (i impl) GetFile(ctx context.Context, fileID string) (*dbmodels.FileStorage, []byte, error) {
	rec, err := i.store.GetByID(fileID)
	if err != nil {
		return nil, nil, err
	}
	if rec == nil {
		return nil, nil, models.ErrNotFound
	}
	body, err := i.download(ctx, rec.ID)
	if err != nil {
		return nil, nil, err
	}
	return rec, body, nil
}

func (i impl) GetDocList(candidateID string) ([]dbmodels.FileStorage, error) {
	return i.store.GetListByType(candidateID, dbmodels.CandidateDoc)
}

// upload writes the metadata row first, the row ID doubles as the S3 object key.
func (i impl) upload(ctx context.Context, candidateID, fileName, contentType string, fileType dbmodels.FileType, body []byte) (string, error) {
	logger := log.WithField("candidate_id", candidateID).
		WithField("file_name", fileName)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	rec := dbmodels.FileStorage{
		Name:        fileName,
		CandidateID: candidateID,
		Type:        fileType,
		ContentType: contentType,
	}
	id, err := i.store.SaveFile(rec)
	if err != nil {
		logger.WithError(err).Error("file metadata save failed")
		return "", err
	}
	_, err = i.s3client.PutObject(ctx, config.Conf.S3.BucketName, id,
		bytes.NewReader(body), int64(len(body)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		logger.WithError(err).Error("file upload failed")
		return "", err
	}
	logger.WithField("file_id", id).Info("file uploaded")
	return id, nil
}

func (i impl) download(ctx context.Context, objectID string) ([]byte, error) {
	obj, err := i.s3client.GetObject(ctx, config.Conf.S3.BucketName, objectID, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()
	body, err := io.ReadAll(obj)
	if err != nil {
		return nil, err
	}
	return body, nil
}
