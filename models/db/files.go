package dbmodels

import filesapimodels "recruit-track-backend/models/api/files"

// FileStorage keeps metadata for an uploaded object, the body lives in S3
// under the row ID as object key.
type FileStorage struct {
	BaseModel
	Name        string `gorm:"type:varchar(255)"`
	CandidateID string `gorm:"type:varchar(36);index"`
	Type        FileType `gorm:"type:varchar(50)"`
	ContentType string   `gorm:"type:varchar(255)"`
}

func (f FileStorage) ToModel() filesapimodels.FileView {
	return filesapimodels.FileView{
		ID:          f.ID,
		Name:        f.Name,
		CandidateID: f.CandidateID,
		ContentType: f.ContentType,
		CreatedAt:   f.CreatedAt,
	}
}

type FileType string

const (
	CandidateCV  FileType = "candidate_cv"
	CandidateDoc FileType = "candidate_doc"
)
