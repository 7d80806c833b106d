package wsmodels

import "encoding/json"

// ServerMessage is pushed to the connected dashboard session of a user.
type ServerMessage struct {
	ToUserID string          `json:"-"`
	Type     string          `json:"type"`
	Title    string          `json:"title"`
	Message  string          `json:"message"`
	Payload  json.RawMessage `json:"payload,omitempty"`
}
