package memdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appdb "github.com/recnet/recnet-be/db"
	"github.com/recnet/recnet-be/model"
)

func addPost(t *testing.T, mdb *MemDB, id, communityId string, createdAt time.Time) {
	t.Helper()
	require.NoError(t, mdb.CreatePost(context.Background(), &model.Post{
		Id:          id,
		Title:       "post " + id,
		CommunityId: communityId,
		PostType:    model.PostTypeText,
		Author:      "someone",
		CreatedAt:   createdAt,
	}))
}

func TestGetUserById_MissingReturnsNilNil(t *testing.T) {
	mdb := NewDatabase()
	user, err := mdb.GetUserById(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestGetUserByEmail_EqualityMatch(t *testing.T) {
	mdb := NewDatabase()
	ctx := context.Background()
	require.NoError(t, mdb.CreateUser(ctx, &model.User{
		Id:    "u1",
		Email: "foo@rajalakshmi.edu.in",
	}))

	user, err := mdb.GetUserByEmail(ctx, "foo@rajalakshmi.edu.in")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "u1", user.Id)

	user, err = mdb.GetUserByEmail(ctx, "FOO@rajalakshmi.edu.in")
	require.NoError(t, err)
	assert.Nil(t, user, "email lookup is exact equality, not case folding")
}

func TestGetCommunitiesForUser_ArrayMembership(t *testing.T) {
	mdb := NewDatabase()
	ctx := context.Background()
	require.NoError(t, mdb.CreateCommunity(ctx, &model.Community{
		Id: "c1", Name: "one", Members: []string{"u1", "u2"},
	}))
	require.NoError(t, mdb.CreateCommunity(ctx, &model.Community{
		Id: "c2", Name: "two", Members: []string{"u2"},
	}))

	communities, err := mdb.GetCommunitiesForUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, communities, 1)
	assert.Equal(t, "c1", communities[0].Id)
}

func TestCreateCommunity_ReturnsClones(t *testing.T) {
	mdb := NewDatabase()
	ctx := context.Background()
	community := &model.Community{Id: "c1", Name: "one", Members: []string{"u1"}}
	require.NoError(t, mdb.CreateCommunity(ctx, community))

	fetched, err := mdb.GetCommunityById(ctx, "c1")
	require.NoError(t, err)
	fetched.Members = append(fetched.Members, "intruder")

	again, err := mdb.GetCommunityById(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, []string{"u1"}, again.Members, "mutating a read must not leak into the store")
}

func TestGetPosts_OrdersNewestFirst(t *testing.T) {
	mdb := NewDatabase()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	addPost(t, mdb, "old", "c1", base)
	addPost(t, mdb, "mid", "c1", base.Add(time.Minute))
	addPost(t, mdb, "new", "c1", base.Add(2*time.Minute))

	posts, err := mdb.GetPosts(context.Background(), &appdb.PostsListQuery{Limit: 10})
	require.NoError(t, err)
	ids := make([]string, len(posts))
	for i, post := range posts {
		ids[i] = post.Id
	}
	assert.Equal(t, []string{"new", "mid", "old"}, ids)
}

func TestGetPosts_TieBreaksOnIdDesc(t *testing.T) {
	mdb := NewDatabase()
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	addPost(t, mdb, "a", "c1", at)
	addPost(t, mdb, "b", "c1", at)
	addPost(t, mdb, "c", "c1", at)

	posts, err := mdb.GetPosts(context.Background(), &appdb.PostsListQuery{Limit: 10})
	require.NoError(t, err)
	ids := make([]string, len(posts))
	for i, post := range posts {
		ids[i] = post.Id
	}
	assert.Equal(t, []string{"c", "b", "a"}, ids)
}

func TestGetPosts_CursorSkipsAtAndBeforeMarker(t *testing.T) {
	mdb := NewDatabase()
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	addPost(t, mdb, "a", "c1", at)
	addPost(t, mdb, "b", "c1", at)
	addPost(t, mdb, "c", "c1", at.Add(time.Minute))

	posts, err := mdb.GetPosts(context.Background(), &appdb.PostsListQuery{
		From:   &at,
		LastId: "b",
		Limit:  10,
	})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "a", posts[0].Id)
}

func TestGetPosts_FiltersByCommunityAndLimits(t *testing.T) {
	mdb := NewDatabase()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	addPost(t, mdb, "p1", "c1", base)
	addPost(t, mdb, "p2", "c2", base.Add(time.Minute))
	addPost(t, mdb, "p3", "c1", base.Add(2*time.Minute))
	addPost(t, mdb, "p4", "c1", base.Add(3*time.Minute))

	posts, err := mdb.GetPosts(context.Background(), &appdb.PostsListQuery{
		CommunityId: "c1",
		Limit:       2,
	})
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "p4", posts[0].Id)
	assert.Equal(t, "p3", posts[1].Id)
}

func TestVoteLifecycle(t *testing.T) {
	mdb := NewDatabase()
	ctx := context.Background()
	require.NoError(t, mdb.CreateVote(ctx, &model.Vote{
		Id: "v1", PostId: "p1", UserId: "u1", VoteType: model.VoteTypeUpvote,
	}))

	vote, err := mdb.GetVoteByPostAndUser(ctx, "p1", "u1")
	require.NoError(t, err)
	require.NotNil(t, vote)
	assert.Equal(t, model.VoteTypeUpvote, vote.VoteType)

	require.NoError(t, mdb.SetVoteType(ctx, "v1", model.VoteTypeDownvote))
	vote, err = mdb.GetVoteByPostAndUser(ctx, "p1", "u1")
	require.NoError(t, err)
	assert.Equal(t, model.VoteTypeDownvote, vote.VoteType)

	require.NoError(t, mdb.DeleteVote(ctx, "v1"))
	vote, err = mdb.GetVoteByPostAndUser(ctx, "p1", "u1")
	require.NoError(t, err)
	assert.Nil(t, vote)
}
