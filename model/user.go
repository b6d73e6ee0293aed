package model

import "time"

// User is an account on the platform. Registration is restricted to the
// institutional email domain; the plaintext password is never stored.
type User struct {
	Id                string    `json:"id" firestore:"id"`
	Username          string    `json:"username" firestore:"username"`
	Email             string    `json:"email" firestore:"email"`
	PasswordHash      string    `json:"-" firestore:"password_hash"`
	Bio               string    `json:"bio,omitempty" firestore:"bio"`
	ProfilePicture    string    `json:"profilePicture,omitempty" firestore:"profile_picture"`
	JoinedCommunities []string  `json:"joinedCommunities" firestore:"joined_communities"`
	CreatedAt         time.Time `json:"createdAt" firestore:"created_at"`
	UpdatedAt         time.Time `json:"updatedAt" firestore:"updated_at"`
}

// Sanitized returns a copy with the password digest stripped. The digest is
// already excluded from JSON, but callers should not be handed it at all.
func (u *User) Sanitized() *User {
	sanitized := *u
	sanitized.PasswordHash = ""
	return &sanitized
}
