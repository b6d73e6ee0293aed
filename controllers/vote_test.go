package controllers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recnet/recnet-be/db/memdb"
	"github.com/recnet/recnet-be/model"
)

func TestCastVote_FullScenario(t *testing.T) {
	mdb := memdb.NewDatabase()
	seedPost(t, mdb, "p1", "c1")
	vc := NewVoteController(mdb)
	ctx := context.Background()

	counts, err := vc.CastVote(ctx, "p1", "userA", model.VoteTypeUpvote)
	require.NoError(t, err)
	assert.Equal(t, &VoteCounts{Upvotes: 1, Downvotes: 0}, counts)

	// same direction again: toggle off
	counts, err = vc.CastVote(ctx, "p1", "userA", model.VoteTypeUpvote)
	require.NoError(t, err)
	assert.Equal(t, &VoteCounts{Upvotes: 0, Downvotes: 0}, counts)
	assert.Empty(t, mdb.VotesForPost("p1"), "toggled-off vote must leave the ledger")

	counts, err = vc.CastVote(ctx, "p1", "userA", model.VoteTypeDownvote)
	require.NoError(t, err)
	assert.Equal(t, &VoteCounts{Upvotes: 0, Downvotes: 1}, counts)

	counts, err = vc.CastVote(ctx, "p1", "userB", model.VoteTypeUpvote)
	require.NoError(t, err)
	assert.Equal(t, &VoteCounts{Upvotes: 1, Downvotes: 1}, counts)
}

func TestCastVote_SwitchUpdatesLedgerInPlace(t *testing.T) {
	mdb := memdb.NewDatabase()
	seedPost(t, mdb, "p1", "c1")
	vc := NewVoteController(mdb)
	ctx := context.Background()

	_, err := vc.CastVote(ctx, "p1", "userA", model.VoteTypeUpvote)
	require.NoError(t, err)
	counts, err := vc.CastVote(ctx, "p1", "userA", model.VoteTypeDownvote)
	require.NoError(t, err)

	assert.Equal(t, &VoteCounts{Upvotes: 0, Downvotes: 1}, counts)
	votes := mdb.VotesForPost("p1")
	require.Len(t, votes, 1)
	assert.Equal(t, model.VoteTypeDownvote, votes[0].VoteType)
}

func TestCastVote_AtMostOneLedgerEntryPerUser(t *testing.T) {
	mdb := memdb.NewDatabase()
	seedPost(t, mdb, "p1", "c1")
	vc := NewVoteController(mdb)
	ctx := context.Background()

	sequence := []model.VoteType{
		model.VoteTypeUpvote,
		model.VoteTypeDownvote,
		model.VoteTypeDownvote,
		model.VoteTypeUpvote,
		model.VoteTypeUpvote,
		model.VoteTypeDownvote,
	}
	for _, direction := range sequence {
		_, err := vc.CastVote(ctx, "p1", "userA", direction)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(mdb.VotesForPost("p1")), 1)
	}
}

func TestCastVote_NetEffectIsLastDirection(t *testing.T) {
	mdb := memdb.NewDatabase()
	seedPost(t, mdb, "p1", "c1")
	vc := NewVoteController(mdb)
	ctx := context.Background()

	// up, down, up: the vote ends as the last-applied direction
	for _, direction := range []model.VoteType{
		model.VoteTypeUpvote, model.VoteTypeDownvote, model.VoteTypeUpvote,
	} {
		_, err := vc.CastVote(ctx, "p1", "userA", direction)
		require.NoError(t, err)
	}
	votes := mdb.VotesForPost("p1")
	require.Len(t, votes, 1)
	assert.Equal(t, model.VoteTypeUpvote, votes[0].VoteType)

	post, err := mdb.GetPostById(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, post.Upvotes)
	assert.Equal(t, 0, post.Downvotes)
}

func TestCastVote_CountersFloorAtZero(t *testing.T) {
	// counters drifted to zero while the ledger still has an entry
	mdb := memdb.NewDatabase()
	seedPost(t, mdb, "p1", "c1")
	ctx := context.Background()
	require.NoError(t, mdb.CreateVote(ctx, &model.Vote{
		Id:       "v1",
		PostId:   "p1",
		UserId:   "userA",
		VoteType: model.VoteTypeUpvote,
	}))
	vc := NewVoteController(mdb)

	t.Run("toggle off", func(t *testing.T) {
		counts, err := vc.CastVote(ctx, "p1", "userA", model.VoteTypeUpvote)
		require.NoError(t, err)
		assert.Equal(t, &VoteCounts{Upvotes: 0, Downvotes: 0}, counts)
	})

	t.Run("switch", func(t *testing.T) {
		_, err := vc.CastVote(ctx, "p1", "userA", model.VoteTypeUpvote)
		require.NoError(t, err)
		counts, err := vc.CastVote(ctx, "p1", "userA", model.VoteTypeDownvote)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, counts.Upvotes, 0)
		assert.GreaterOrEqual(t, counts.Downvotes, 0)
	})
}

func TestCastVote_PostNotFound(t *testing.T) {
	vc := NewVoteController(memdb.NewDatabase())
	_, err := vc.CastVote(context.Background(), "missing", "userA", model.VoteTypeUpvote)
	require.Error(t, err)
	assert.Equal(t, model.KindNotFound, model.KindOf(err))
}

func TestCastVote_InvalidDirection(t *testing.T) {
	mdb := memdb.NewDatabase()
	seedPost(t, mdb, "p1", "c1")
	vc := NewVoteController(mdb)
	_, err := vc.CastVote(context.Background(), "p1", "userA", model.VoteType("sideways"))
	require.Error(t, err)
	assert.Equal(t, model.KindInvalidInput, model.KindOf(err))
	assert.Empty(t, mdb.VotesForPost("p1"))
}

func TestCastVote_IndependentUsersAccumulate(t *testing.T) {
	mdb := memdb.NewDatabase()
	seedPost(t, mdb, "p1", "c1")
	vc := NewVoteController(mdb)
	ctx := context.Background()

	for _, userId := range []string{"u1", "u2", "u3"} {
		_, err := vc.CastVote(ctx, "p1", userId, model.VoteTypeUpvote)
		require.NoError(t, err)
	}
	counts, err := vc.CastVote(ctx, "p1", "u4", model.VoteTypeDownvote)
	require.NoError(t, err)
	assert.Equal(t, &VoteCounts{Upvotes: 3, Downvotes: 1}, counts)
	assert.Len(t, mdb.VotesForPost("p1"), 4)
}
