package model

import "time"

// UsersCollection stores one profile document per user.
const UsersCollection = "users"

// ProfileModel is the document stored under users/{uid}.
type ProfileModel struct {
	UID             string    `firestore:"uid"`
	Email           string    `firestore:"email"`
	Role            string    `firestore:"role"`
	PostureTracking bool      `firestore:"postureTracking"`
	AlertDispatch   bool      `firestore:"alertDispatch"`
	CreatedAt       time.Time `firestore:"createdAt"`
	UpdatedAt       time.Time `firestore:"updatedAt"`
}
