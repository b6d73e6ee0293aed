package db

import (
	"context"
	"time"

	"github.com/recnet/recnet-be/model"
)

// Database is the document-store abstraction the rest of the app is built
// on: single-document atomic reads/writes, partial field updates, equality
// queries, and array-membership queries. No cross-document transactions are
// assumed. Lookups return (nil, nil) when the document does not exist.
type Database interface {
	UserDatabase
	CommunityDatabase
	PostDatabase
	CommentDatabase
	VoteDatabase
	Close() error
}

type UserDatabase interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserById(ctx context.Context, id string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	SetUserJoinedCommunities(ctx context.Context, userId string, communityIds []string) error
}

type CommunityDatabase interface {
	CreateCommunity(ctx context.Context, community *model.Community) error
	GetCommunityById(ctx context.Context, id string) (*model.Community, error)
	GetCommunityByName(ctx context.Context, name string) (*model.Community, error)
	GetCommunities(ctx context.Context) ([]*model.Community, error)
	// GetCommunitiesForUser queries array membership of userId in members.
	GetCommunitiesForUser(ctx context.Context, userId string) ([]*model.Community, error)
	SetCommunityMembers(ctx context.Context, id string, members []string) error
	SetCommunityPostCount(ctx context.Context, id string, count int) error
}

// PostsListQuery pages posts most-recent first. A zero From means "from now";
// LastId breaks created-at ties. Limit <= 0 means no limit.
type PostsListQuery struct {
	From        *time.Time
	LastId      string
	CommunityId string
	Limit       int
}

type PostDatabase interface {
	CreatePost(ctx context.Context, post *model.Post) error
	GetPostById(ctx context.Context, id string) (*model.Post, error)
	GetPostsByCommunity(ctx context.Context, communityId string) ([]*model.Post, error)
	GetPosts(ctx context.Context, query *PostsListQuery) ([]*model.Post, error)
	SetPostVoteCounts(ctx context.Context, id string, upvotes, downvotes int) error
	SetPostCommentCount(ctx context.Context, id string, count int) error
}

type CommentDatabase interface {
	CreateComment(ctx context.Context, comment *model.Comment) error
	GetCommentById(ctx context.Context, id string) (*model.Comment, error)
	GetCommentsForPost(ctx context.Context, postId string) ([]*model.Comment, error)
}

type VoteDatabase interface {
	CreateVote(ctx context.Context, vote *model.Vote) error
	// GetVoteByPostAndUser enforces the ledger's uniqueness constraint via
	// query-before-write; the store has no compound unique key.
	GetVoteByPostAndUser(ctx context.Context, postId, userId string) (*model.Vote, error)
	SetVoteType(ctx context.Context, id string, voteType model.VoteType) error
	DeleteVote(ctx context.Context, id string) error
}
