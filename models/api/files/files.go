package filesapimodels

import "time"

type FileView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	CandidateID string    `json:"candidate_id"`
	ContentType string    `json:"content_type"`
	CreatedAt   time.Time `json:"created_at"`
}
