package models

import "time"

// User is the profile record kept for signed-up customers. Identity itself
// lives in Supabase Auth; this row is upserted on signup sync and never
// carries the admin flag.
type User struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	FirstName       string    `json:"firstName,omitempty"`
	LastName        string    `json:"lastName,omitempty"`
	ProfileImageURL string    `json:"profileImageUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// UserSyncInput carries the optional profile fields a client may attach when
// syncing its verified identity into the users table.
type UserSyncInput struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	ProfileImageURL string `json:"profileImageUrl"`
}
