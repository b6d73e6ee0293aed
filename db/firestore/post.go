package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	appdb "github.com/recnet/recnet-be/db"
	"github.com/recnet/recnet-be/model"
)

type PostDB struct {
	client *firestore.Client
}

func (pdb *PostDB) CreatePost(ctx context.Context, post *model.Post) error {
	_, err := pdb.client.Collection(postsCollection).Doc(post.Id).Create(ctx, post)
	return err
}

func (pdb *PostDB) GetPostById(ctx context.Context, id string) (*model.Post, error) {
	snap, err := pdb.client.Collection(postsCollection).Doc(id).Get(ctx)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return postFromSnap(snap)
}

func (pdb *PostDB) GetPostsByCommunity(ctx context.Context, communityId string) ([]*model.Post, error) {
	return postsFromQuery(ctx,
		pdb.client.Collection(postsCollection).Where("community_id", "==", communityId))
}

func (pdb *PostDB) GetPosts(ctx context.Context, query *appdb.PostsListQuery) ([]*model.Post, error) {
	q := pdb.client.Collection(postsCollection).Query
	if query.CommunityId != "" {
		q = q.Where("community_id", "==", query.CommunityId)
	}
	q = q.OrderBy("created_at", firestore.Desc).OrderBy("id", firestore.Desc)
	if query.From != nil {
		q = q.StartAfter(*query.From, query.LastId)
	}
	if query.Limit > 0 {
		q = q.Limit(query.Limit)
	}
	return postsFromQuery(ctx, q)
}

func (pdb *PostDB) SetPostVoteCounts(ctx context.Context, id string, upvotes, downvotes int) error {
	_, err := pdb.client.Collection(postsCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "upvotes", Value: upvotes},
		{Path: "downvotes", Value: downvotes},
	})
	return err
}

func (pdb *PostDB) SetPostCommentCount(ctx context.Context, id string, count int) error {
	_, err := pdb.client.Collection(postsCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "comment_count", Value: count},
	})
	return err
}

func postsFromQuery(ctx context.Context, query firestore.Query) ([]*model.Post, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()
	posts := []*model.Post{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			return posts, nil
		}
		if err != nil {
			return nil, err
		}
		post, err := postFromSnap(snap)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
}

func postFromSnap(snap *firestore.DocumentSnapshot) (*model.Post, error) {
	var post model.Post
	if err := snap.DataTo(&post); err != nil {
		return nil, err
	}
	return &post, nil
}
