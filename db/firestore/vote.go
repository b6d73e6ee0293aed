package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/recnet/recnet-be/model"
)

type VoteDB struct {
	client *firestore.Client
}

func (vdb *VoteDB) CreateVote(ctx context.Context, vote *model.Vote) error {
	_, err := vdb.client.Collection(votesCollection).Doc(vote.Id).Create(ctx, vote)
	return err
}

func (vdb *VoteDB) GetVoteByPostAndUser(ctx context.Context, postId, userId string) (*model.Vote, error) {
	snap, err := queryFirst(ctx, vdb.client.Collection(votesCollection).
		Where("post_id", "==", postId).
		Where("user_id", "==", userId))
	if err != nil || snap == nil {
		return nil, err
	}
	var vote model.Vote
	if err := snap.DataTo(&vote); err != nil {
		return nil, err
	}
	return &vote, nil
}

func (vdb *VoteDB) SetVoteType(ctx context.Context, id string, voteType model.VoteType) error {
	_, err := vdb.client.Collection(votesCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "vote_type", Value: voteType},
		{Path: "updated_at", Value: time.Now().UTC()},
	})
	return err
}

func (vdb *VoteDB) DeleteVote(ctx context.Context, id string) error {
	_, err := vdb.client.Collection(votesCollection).Doc(id).Delete(ctx)
	return err
}
