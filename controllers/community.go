package controllers

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/recnet/recnet-be/db"
	"github.com/recnet/recnet-be/model"
	"github.com/recnet/recnet-be/util"
)

type CommunityController struct {
	db db.Database
}

func NewCommunityController(database db.Database) *CommunityController {
	return &CommunityController{db: database}
}

type CreateCommunityReq struct {
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	CreatedBy    string           `json:"createdBy"`
	Visibility   model.Visibility `json:"visibility"`
	AdultContent bool             `json:"adultContent"`
	Topics       []string         `json:"topics"`
}

// CreateCommunity seeds the creator into both the member and moderator sets.
func (cc *CommunityController) CreateCommunity(ctx context.Context, req *CreateCommunityReq) (communityId string, err error) {
	if req.Name == "" {
		return "", model.NewInvalidInput("community name must not be empty")
	}
	if !req.Visibility.Valid() {
		return "", model.NewInvalidInput("visibility must be public, restricted, or private")
	}

	existing, err := cc.db.GetCommunityByName(ctx, req.Name)
	if err != nil {
		return "", model.NewTransient(err)
	}
	if existing != nil {
		return "", model.NewConflict("community name already exists")
	}

	topics := req.Topics
	if topics == nil {
		topics = []string{}
	}
	community := &model.Community{
		Id:           uuid.NewString(),
		Name:         req.Name,
		Description:  util.XSSSanitize(req.Description),
		CreatedBy:    req.CreatedBy,
		Visibility:   req.Visibility,
		AdultContent: req.AdultContent,
		Topics:       topics,
		Members:      []string{req.CreatedBy},
		Moderators:   []string{req.CreatedBy},
		CreatedAt:    time.Now().UTC(),
	}
	if err := cc.db.CreateCommunity(ctx, community); err != nil {
		return "", model.NewTransient(err)
	}
	return community.Id, nil
}

type JoinResult struct {
	Joined        bool `json:"joined"`
	AlreadyMember bool `json:"alreadyMember"`
}

// Join is an idempotent member-set insert. Already being a member is a
// success outcome, just a distinct signal from a fresh join.
func (cc *CommunityController) Join(ctx context.Context, communityId, userId string) (*JoinResult, error) {
	community, err := cc.db.GetCommunityById(ctx, communityId)
	if err != nil {
		return nil, model.NewTransient(err)
	}
	if community == nil {
		return nil, model.NewNotFound("community")
	}
	user, err := cc.db.GetUserById(ctx, userId)
	if err != nil {
		return nil, model.NewTransient(err)
	}
	if user == nil {
		return nil, model.NewNotFound("user")
	}

	if community.HasMember(userId) {
		return &JoinResult{AlreadyMember: true}, nil
	}

	if err := cc.db.SetCommunityMembers(ctx, communityId, append(community.Members, userId)); err != nil {
		return nil, model.NewTransient(err)
	}
	// denormalized mirror on the user doc; no cross-document transaction,
	// so the two writes can diverge on a crash between them
	if err := cc.db.SetUserJoinedCommunities(ctx, userId, append(user.JoinedCommunities, communityId)); err != nil {
		return nil, model.NewTransient(err)
	}
	return &JoinResult{Joined: true}, nil
}

func (cc *CommunityController) GetCommunities(ctx context.Context) ([]*model.Community, error) {
	communities, err := cc.db.GetCommunities(ctx)
	if err != nil {
		return nil, model.NewTransient(err)
	}
	return communities, nil
}

// GetUserCommunities lists the communities whose member set contains the user.
func (cc *CommunityController) GetUserCommunities(ctx context.Context, userId string) ([]*model.Community, error) {
	communities, err := cc.db.GetCommunitiesForUser(ctx, userId)
	if err != nil {
		return nil, model.NewTransient(err)
	}
	return communities, nil
}
