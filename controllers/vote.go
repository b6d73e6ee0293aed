package controllers

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/recnet/recnet-be/db"
	"github.com/recnet/recnet-be/model"
)

// VoteController owns the vote ledger and the denormalized post counters.
// SetPostVoteCounts must never be called from any other code path; the
// counters are a pure function of the ledger and this controller is the
// single writer keeping them that way.
type VoteController struct {
	db db.Database
}

func NewVoteController(database db.Database) *VoteController {
	return &VoteController{db: database}
}

type VoteCounts struct {
	Upvotes   int `json:"upvotes"`
	Downvotes int `json:"downvotes"`
}

// CastVote applies one vote call as a single logical unit:
// no prior vote inserts a ledger entry, the same direction toggles it off,
// a different direction switches it in place. Counters move with the ledger,
// floored at zero, and are re-read before returning. The read-modify-write
// is not atomic across concurrent callers (accepted, see the store contract).
func (vc *VoteController) CastVote(ctx context.Context, postId, userId string, voteType model.VoteType) (*VoteCounts, error) {
	if !voteType.Valid() {
		return nil, model.NewInvalidInput("voteType must be upvote or downvote")
	}

	post, err := vc.db.GetPostById(ctx, postId)
	if err != nil {
		return nil, model.NewTransient(err)
	}
	if post == nil {
		return nil, model.NewNotFound("post")
	}

	existing, err := vc.db.GetVoteByPostAndUser(ctx, postId, userId)
	if err != nil {
		return nil, model.NewTransient(err)
	}

	upvotes, downvotes := post.Upvotes, post.Downvotes
	switch {
	case existing == nil:
		now := time.Now().UTC()
		if err := vc.db.CreateVote(ctx, &model.Vote{
			Id:        uuid.NewString(),
			PostId:    postId,
			UserId:    userId,
			VoteType:  voteType,
			CreatedAt: now,
			UpdatedAt: now,
		}); err != nil {
			return nil, model.NewTransient(err)
		}
		if voteType == model.VoteTypeUpvote {
			upvotes++
		} else {
			downvotes++
		}
	case existing.VoteType == voteType:
		// toggle off
		if err := vc.db.DeleteVote(ctx, existing.Id); err != nil {
			return nil, model.NewTransient(err)
		}
		if voteType == model.VoteTypeUpvote {
			upvotes = max(0, upvotes-1)
		} else {
			downvotes = max(0, downvotes-1)
		}
	default:
		// switch direction
		if err := vc.db.SetVoteType(ctx, existing.Id, voteType); err != nil {
			return nil, model.NewTransient(err)
		}
		if voteType == model.VoteTypeUpvote {
			upvotes++
			downvotes = max(0, downvotes-1)
		} else {
			downvotes++
			upvotes = max(0, upvotes-1)
		}
	}

	if err := vc.db.SetPostVoteCounts(ctx, postId, upvotes, downvotes); err != nil {
		return nil, model.NewTransient(err)
	}

	updated, err := vc.db.GetPostById(ctx, postId)
	if err != nil {
		return nil, model.NewTransient(err)
	}
	if updated == nil {
		return nil, model.NewNotFound("post")
	}
	return &VoteCounts{Upvotes: updated.Upvotes, Downvotes: updated.Downvotes}, nil
}
