package model

import "time"

// PostureCollection stores one current-status document per user.
const PostureCollection = "posture_status"

// PostureModel is the document stored under posture_status/{uid}.
type PostureModel struct {
	UserID    string    `firestore:"userId"`
	Action    string    `firestore:"action"`
	Posture   string    `firestore:"posture,omitempty"`
	Source    string    `firestore:"source,omitempty"`
	UpdatedAt time.Time `firestore:"updatedAt"`
}
