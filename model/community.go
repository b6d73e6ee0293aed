package model

import "time"

type Visibility string

const (
	VisibilityPublic     Visibility = "public"
	VisibilityRestricted Visibility = "restricted"
	VisibilityPrivate    Visibility = "private"
)

func (v Visibility) Valid() bool {
	switch v {
	case VisibilityPublic, VisibilityRestricted, VisibilityPrivate:
		return true
	}
	return false
}

// Community invariant: the creator is seeded into both Members and
// Moderators at creation. PostCount is a denormalized counter kept roughly in
// sync by the post controller (read-then-write, so drift under concurrent
// writers is possible).
type Community struct {
	Id           string     `json:"id" firestore:"id"`
	Name         string     `json:"name" firestore:"name"`
	Description  string     `json:"description" firestore:"description"`
	CreatedBy    string     `json:"createdBy" firestore:"created_by"`
	Visibility   Visibility `json:"visibility" firestore:"visibility"`
	AdultContent bool       `json:"adultContent" firestore:"adult_content"`
	Topics       []string   `json:"topics" firestore:"topics"`
	Members      []string   `json:"members" firestore:"members"`
	Moderators   []string   `json:"moderators" firestore:"moderators"`
	PostCount    int        `json:"postCount" firestore:"post_count"`
	CreatedAt    time.Time  `json:"createdAt" firestore:"created_at"`
}

func (c *Community) HasMember(userId string) bool {
	for _, member := range c.Members {
		if member == userId {
			return true
		}
	}
	return false
}
