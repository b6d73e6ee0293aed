package model

import "time"

type VoteType string

const (
	VoteTypeUpvote   VoteType = "upvote"
	VoteTypeDownvote VoteType = "downvote"
)

func (vt VoteType) Valid() bool {
	return vt == VoteTypeUpvote || vt == VoteTypeDownvote
}

// Vote is a ledger entry: at most one per (post, user) pair. The ledger is
// the source of truth for a post's upvote/downvote counters.
type Vote struct {
	Id        string    `json:"id" firestore:"id"`
	PostId    string    `json:"postId" firestore:"post_id"`
	UserId    string    `json:"userId" firestore:"user_id"`
	VoteType  VoteType  `json:"voteType" firestore:"vote_type"`
	CreatedAt time.Time `json:"createdAt" firestore:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updated_at"`
}
