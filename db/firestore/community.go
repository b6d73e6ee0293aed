package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/recnet/recnet-be/model"
)

type CommunityDB struct {
	client *firestore.Client
}

func (cdb *CommunityDB) CreateCommunity(ctx context.Context, community *model.Community) error {
	_, err := cdb.client.Collection(communitiesCollection).Doc(community.Id).Create(ctx, community)
	return err
}

func (cdb *CommunityDB) GetCommunityById(ctx context.Context, id string) (*model.Community, error) {
	snap, err := cdb.client.Collection(communitiesCollection).Doc(id).Get(ctx)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return communityFromSnap(snap)
}

func (cdb *CommunityDB) GetCommunityByName(ctx context.Context, name string) (*model.Community, error) {
	snap, err := queryFirst(ctx, cdb.client.Collection(communitiesCollection).Where("name", "==", name))
	if err != nil || snap == nil {
		return nil, err
	}
	return communityFromSnap(snap)
}

func (cdb *CommunityDB) GetCommunities(ctx context.Context) ([]*model.Community, error) {
	return communitiesFromQuery(ctx, cdb.client.Collection(communitiesCollection).Query)
}

func (cdb *CommunityDB) GetCommunitiesForUser(ctx context.Context, userId string) ([]*model.Community, error) {
	return communitiesFromQuery(ctx,
		cdb.client.Collection(communitiesCollection).Where("members", "array-contains", userId))
}

func (cdb *CommunityDB) SetCommunityMembers(ctx context.Context, id string, members []string) error {
	_, err := cdb.client.Collection(communitiesCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "members", Value: members},
	})
	return err
}

func (cdb *CommunityDB) SetCommunityPostCount(ctx context.Context, id string, count int) error {
	_, err := cdb.client.Collection(communitiesCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "post_count", Value: count},
	})
	return err
}

func communitiesFromQuery(ctx context.Context, query firestore.Query) ([]*model.Community, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()
	communities := []*model.Community{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			return communities, nil
		}
		if err != nil {
			return nil, err
		}
		community, err := communityFromSnap(snap)
		if err != nil {
			return nil, err
		}
		communities = append(communities, community)
	}
}

func communityFromSnap(snap *firestore.DocumentSnapshot) (*model.Community, error) {
	var community model.Community
	if err := snap.DataTo(&community); err != nil {
		return nil, err
	}
	return &community, nil
}
