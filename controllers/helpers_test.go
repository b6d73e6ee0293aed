package controllers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/recnet/recnet-be/db/memdb"
	"github.com/recnet/recnet-be/model"
)

const testEmailDomain = "@rajalakshmi.edu.in"

// fakeHasher keeps identity tests fast and digests recognizable.
type fakeHasher struct {
}

func (fakeHasher) Hash(plaintext string) (string, error) {
	return "hashed:" + plaintext, nil
}

func (fakeHasher) Compare(digest, candidate string) bool {
	return digest == "hashed:"+candidate
}

func seedUser(t *testing.T, mdb *memdb.MemDB, id string) *model.User {
	t.Helper()
	user := &model.User{
		Id:                id,
		Username:          "user-" + id,
		Email:             "user-" + id + testEmailDomain,
		PasswordHash:      "hashed:pw",
		JoinedCommunities: []string{},
		CreatedAt:         time.Now().UTC(),
		UpdatedAt:         time.Now().UTC(),
	}
	require.NoError(t, mdb.CreateUser(context.Background(), user))
	return user
}

func seedCommunity(t *testing.T, mdb *memdb.MemDB, id, createdBy string) *model.Community {
	t.Helper()
	community := &model.Community{
		Id:         id,
		Name:       "community-" + id,
		CreatedBy:  createdBy,
		Visibility: model.VisibilityPublic,
		Topics:     []string{},
		Members:    []string{createdBy},
		Moderators: []string{createdBy},
		CreatedAt:  time.Now().UTC(),
	}
	require.NoError(t, mdb.CreateCommunity(context.Background(), community))
	return community
}

func seedPost(t *testing.T, mdb *memdb.MemDB, id, communityId string) *model.Post {
	t.Helper()
	post := &model.Post{
		Id:          id,
		Title:       "post " + id,
		CommunityId: communityId,
		PostType:    model.PostTypeText,
		Author:      "someone",
		Tags:        []string{},
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
	require.NoError(t, mdb.CreatePost(context.Background(), post))
	return post
}

func seedComment(t *testing.T, mdb *memdb.MemDB, id, postId, parentId string) *model.Comment {
	t.Helper()
	comment := &model.Comment{
		Id:        id,
		PostId:    postId,
		ParentId:  parentId,
		Author:    "someone",
		Content:   "comment " + id,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, mdb.CreateComment(context.Background(), comment))
	return comment
}
