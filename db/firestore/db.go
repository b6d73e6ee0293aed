// Package firestore implements db.Database on Cloud Firestore, the document
// store behind the platform. One client is shared by the per-entity stores.
package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	appdb "github.com/recnet/recnet-be/db"
)

const (
	usersCollection       = "users"
	communitiesCollection = "communities"
	postsCollection       = "posts"
	commentsCollection    = "comments"
	votesCollection       = "votes"
)

type FirestoreDB struct {
	*UserDB
	*CommunityDB
	*PostDB
	*CommentDB
	*VoteDB
	client *firestore.Client
}

func GetDatabase(ctx context.Context, app *firebase.App) (appdb.Database, error) {
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, err
	}
	return &FirestoreDB{
		UserDB:      &UserDB{client},
		CommunityDB: &CommunityDB{client},
		PostDB:      &PostDB{client},
		CommentDB:   &CommentDB{client},
		VoteDB:      &VoteDB{client},
		client:      client,
	}, nil
}

func (fdb *FirestoreDB) Close() error {
	return fdb.client.Close()
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// queryFirst returns the first document of a query, or nil when there is none.
func queryFirst(ctx context.Context, query firestore.Query) (*firestore.DocumentSnapshot, error) {
	iter := query.Limit(1).Documents(ctx)
	defer iter.Stop()
	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return snap, nil
}
