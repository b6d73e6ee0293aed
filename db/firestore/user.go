package firestore

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/recnet/recnet-be/model"
)

type UserDB struct {
	client *firestore.Client
}

func (udb *UserDB) CreateUser(ctx context.Context, user *model.User) error {
	_, err := udb.client.Collection(usersCollection).Doc(user.Id).Create(ctx, user)
	return err
}

func (udb *UserDB) GetUserById(ctx context.Context, id string) (*model.User, error) {
	snap, err := udb.client.Collection(usersCollection).Doc(id).Get(ctx)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return userFromSnap(snap)
}

func (udb *UserDB) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return udb.getUserByField(ctx, "email", email)
}

func (udb *UserDB) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return udb.getUserByField(ctx, "username", username)
}

func (udb *UserDB) getUserByField(ctx context.Context, field, value string) (*model.User, error) {
	snap, err := queryFirst(ctx, udb.client.Collection(usersCollection).Where(field, "==", value))
	if err != nil || snap == nil {
		return nil, err
	}
	return userFromSnap(snap)
}

func (udb *UserDB) SetUserJoinedCommunities(ctx context.Context, userId string, communityIds []string) error {
	_, err := udb.client.Collection(usersCollection).Doc(userId).Update(ctx, []firestore.Update{
		{Path: "joined_communities", Value: communityIds},
	})
	return err
}

func userFromSnap(snap *firestore.DocumentSnapshot) (*model.User, error) {
	var user model.User
	if err := snap.DataTo(&user); err != nil {
		return nil, err
	}
	return &user, nil
}
