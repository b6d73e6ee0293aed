package model

import "time"

// Comment belongs to a post. ParentId is empty for a root comment, otherwise
// it references another comment on the same post (checked at creation only).
type Comment struct {
	Id        string    `json:"id" firestore:"id"`
	PostId    string    `json:"postId" firestore:"post_id"`
	ParentId  string    `json:"parentId,omitempty" firestore:"parent_id"`
	Author    string    `json:"author" firestore:"author"`
	Content   string    `json:"content" firestore:"content"`
	Upvotes   int       `json:"upvotes" firestore:"upvotes"`
	Downvotes int       `json:"downvotes" firestore:"downvotes"`
	CreatedAt time.Time `json:"createdAt" firestore:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updated_at"`
}

type CommentTree struct {
	*Comment
	Replies []*CommentTree `json:"replies"`
}
