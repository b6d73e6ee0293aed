package controllers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recnet/recnet-be/db/memdb"
	"github.com/recnet/recnet-be/model"
)

type fakeBlobChecker struct {
	blobs map[string]bool
}

func (f *fakeBlobChecker) Exists(_ context.Context, blobName string) (bool, error) {
	return f.blobs[blobName], nil
}

func TestCreatePost_CommunityNotFound(t *testing.T) {
	pc := NewPostController(memdb.NewDatabase(), nil)
	_, err := pc.CreatePost(context.Background(), &CreatePostReq{
		Title:       "hello",
		CommunityId: "missing",
		PostType:    model.PostTypeText,
		Author:      "userA",
	})
	require.Error(t, err)
	assert.Equal(t, model.KindNotFound, model.KindOf(err))
}

func TestCreatePost_DenormalizesCommunityNameAndBumpsPostCount(t *testing.T) {
	mdb := memdb.NewDatabase()
	seedCommunity(t, mdb, "c1", "userA")
	pc := NewPostController(mdb, nil)
	ctx := context.Background()

	postId, err := pc.CreatePost(ctx, &CreatePostReq{
		Title:       "hello",
		CommunityId: "c1",
		PostType:    model.PostTypeText,
		Author:      "userA",
		Content:     "first post",
	})
	require.NoError(t, err)

	post, err := mdb.GetPostById(ctx, postId)
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, "community-c1", post.CommunityName)
	assert.Zero(t, post.Upvotes)
	assert.Zero(t, post.Downvotes)
	assert.Zero(t, post.CommentCount)

	community, err := mdb.GetCommunityById(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 1, community.PostCount)
}

func TestCreatePost_InitializesPollResults(t *testing.T) {
	mdb := memdb.NewDatabase()
	seedCommunity(t, mdb, "c1", "userA")
	pc := NewPostController(mdb, nil)
	ctx := context.Background()

	postId, err := pc.CreatePost(ctx, &CreatePostReq{
		Title:       "lunch?",
		CommunityId: "c1",
		PostType:    model.PostTypePoll,
		Author:      "userA",
		PollOptions: []string{"mess", "canteen", "skip"},
	})
	require.NoError(t, err)

	post, err := mdb.GetPostById(ctx, postId)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"mess": 0, "canteen": 0, "skip": 0}, post.PollResults)
}

func TestCreatePost_InvalidType(t *testing.T) {
	mdb := memdb.NewDatabase()
	seedCommunity(t, mdb, "c1", "userA")
	pc := NewPostController(mdb, nil)
	_, err := pc.CreatePost(context.Background(), &CreatePostReq{
		Title:       "hello",
		CommunityId: "c1",
		PostType:    model.PostType("video"),
		Author:      "userA",
	})
	require.Error(t, err)
	assert.Equal(t, model.KindInvalidInput, model.KindOf(err))
}

func TestCreatePost_ImageBlobMustExist(t *testing.T) {
	mdb := memdb.NewDatabase()
	seedCommunity(t, mdb, "c1", "userA")
	blobs := &fakeBlobChecker{blobs: map[string]bool{"uploaded.png": true}}
	pc := NewPostController(mdb, blobs)
	ctx := context.Background()

	_, err := pc.CreatePost(ctx, &CreatePostReq{
		Title:         "pic",
		CommunityId:   "c1",
		PostType:      model.PostTypeImage,
		Author:        "userA",
		HasImage:      true,
		ImageBlobName: "missing.png",
	})
	require.Error(t, err)
	assert.Equal(t, model.KindInvalidInput, model.KindOf(err))

	_, err = pc.CreatePost(ctx, &CreatePostReq{
		Title:         "pic",
		CommunityId:   "c1",
		PostType:      model.PostTypeImage,
		Author:        "userA",
		HasImage:      true,
		ImageBlobName: "uploaded.png",
	})
	require.NoError(t, err)
}

func TestGetPostWithComments_NotFound(t *testing.T) {
	pc := NewPostController(memdb.NewDatabase(), nil)
	_, err := pc.GetPostWithComments(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, model.KindNotFound, model.KindOf(err))
}

func TestGetPostWithComments_BuildsForest(t *testing.T) {
	mdb := memdb.NewDatabase()
	seedPost(t, mdb, "p1", "c1")
	seedComment(t, mdb, "root", "p1", "")
	seedComment(t, mdb, "reply", "p1", "root")
	pc := NewPostController(mdb, nil)

	result, err := pc.GetPostWithComments(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", result.Post.Id)
	require.Len(t, result.Comments, 1)
	assert.Equal(t, "root", result.Comments[0].Id)
	require.Len(t, result.Comments[0].Replies, 1)
	assert.Equal(t, "reply", result.Comments[0].Replies[0].Id)
}

func TestGetCommunityPosts_CommunityNotFound(t *testing.T) {
	pc := NewPostController(memdb.NewDatabase(), nil)
	_, err := pc.GetCommunityPosts(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, model.KindNotFound, model.KindOf(err))
}

func TestSearch_MatchesSubstringsCaseInsensitively(t *testing.T) {
	mdb := memdb.NewDatabase()
	seedCommunity(t, mdb, "c1", "userA")
	pc := NewPostController(mdb, nil)
	ctx := context.Background()

	_, err := pc.CreatePost(ctx, &CreatePostReq{
		Title:       "Exam Schedule Released",
		CommunityId: "c1",
		PostType:    model.PostTypeText,
		Author:      "userA",
	})
	require.NoError(t, err)
	_, err = pc.CreatePost(ctx, &CreatePostReq{
		Title:       "lost umbrella",
		CommunityId: "c1",
		PostType:    model.PostTypeText,
		Author:      "userB",
	})
	require.NoError(t, err)

	result, err := pc.Search(ctx, "exam")
	require.NoError(t, err)
	require.Len(t, result.Posts, 1)
	assert.Equal(t, "Exam Schedule Released", result.Posts[0].Title)
	assert.Empty(t, result.Communities)
}
