package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/recnet/recnet-be/model"
)

type CommentDB struct {
	client *firestore.Client
}

func (cdb *CommentDB) CreateComment(ctx context.Context, comment *model.Comment) error {
	_, err := cdb.client.Collection(commentsCollection).Doc(comment.Id).Create(ctx, comment)
	return err
}

func (cdb *CommentDB) GetCommentById(ctx context.Context, id string) (*model.Comment, error) {
	snap, err := cdb.client.Collection(commentsCollection).Doc(id).Get(ctx)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return commentFromSnap(snap)
}

// GetCommentsForPost returns the flat comment set for a post. Store order is
// not part of the contract; the forest builder must not depend on it.
func (cdb *CommentDB) GetCommentsForPost(ctx context.Context, postId string) ([]*model.Comment, error) {
	iter := cdb.client.Collection(commentsCollection).
		Where("post_id", "==", postId).
		Documents(ctx)
	defer iter.Stop()
	comments := []*model.Comment{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			return comments, nil
		}
		if err != nil {
			return nil, err
		}
		comment, err := commentFromSnap(snap)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
}

func commentFromSnap(snap *firestore.DocumentSnapshot) (*model.Comment, error) {
	var comment model.Comment
	if err := snap.DataTo(&comment); err != nil {
		return nil, err
	}
	return &comment, nil
}
