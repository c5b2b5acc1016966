// Package model holds the Firestore document shapes for each collection.
package model

import "time"

// MedicalLogsCollection stores caregiver notes.
const MedicalLogsCollection = "medical_logs"

// MedicalLogModel is the document stored under medical_logs/{id}.
type MedicalLogModel struct {
	UserID    string    `firestore:"userId"`
	Note      string    `firestore:"note"`
	Author    string    `firestore:"author"`
	Role      string    `firestore:"role"`
	CreatedAt time.Time `firestore:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt"`
}
