package model

import "time"

type PostType string

const (
	PostTypeText  PostType = "text"
	PostTypeImage PostType = "image"
	PostTypeLink  PostType = "link"
	PostTypePoll  PostType = "poll"
)

func (pt PostType) Valid() bool {
	switch pt {
	case PostTypeText, PostTypeImage, PostTypeLink, PostTypePoll:
		return true
	}
	return false
}

// Post carries the type-specific fields for all four post types; unused ones
// stay zero. Upvotes/Downvotes are denormalized from the vote ledger and must
// only ever be written by the vote controller. CommunityName is a denormalized
// copy taken at creation so list renders skip a community lookup.
type Post struct {
	Id            string   `json:"id" firestore:"id"`
	Title         string   `json:"title" firestore:"title"`
	CommunityId   string   `json:"communityId" firestore:"community_id"`
	CommunityName string   `json:"communityName" firestore:"community_name"`
	PostType      PostType `json:"postType" firestore:"post_type"`
	Author        string   `json:"author" firestore:"author"`

	Content       string `json:"content,omitempty" firestore:"content"`
	Url           string `json:"url,omitempty" firestore:"url"`
	Description   string `json:"description,omitempty" firestore:"description"`
	Caption       string `json:"caption,omitempty" firestore:"caption"`
	HasImage      bool   `json:"hasImage" firestore:"has_image"`
	ImageBlobName string `json:"imageBlobName,omitempty" firestore:"image_blob_name"`

	PollDescription string         `json:"pollDescription,omitempty" firestore:"poll_description"`
	PollOptions     []string       `json:"pollOptions,omitempty" firestore:"poll_options"`
	PollDuration    string         `json:"pollDuration,omitempty" firestore:"poll_duration"`
	PollResults     map[string]int `json:"pollResults,omitempty" firestore:"poll_results"`

	Tags         []string  `json:"tags" firestore:"tags"`
	Upvotes      int       `json:"upvotes" firestore:"upvotes"`
	Downvotes    int       `json:"downvotes" firestore:"downvotes"`
	CommentCount int       `json:"commentCount" firestore:"comment_count"`
	CreatedAt    time.Time `json:"createdAt" firestore:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" firestore:"updated_at"`
}
