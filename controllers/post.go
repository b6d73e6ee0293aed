package controllers

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/recnet/recnet-be/db"
	"github.com/recnet/recnet-be/model"
	"github.com/recnet/recnet-be/util"
)

// BlobChecker reports whether an uploaded blob exists; satisfied by
// services.StorageBucket. Nil-able: without a bucket the check is skipped.
type BlobChecker interface {
	Exists(ctx context.Context, blobName string) (bool, error)
}

type PostController struct {
	db    db.Database
	blobs BlobChecker
}

func NewPostController(database db.Database, blobs BlobChecker) *PostController {
	return &PostController{db: database, blobs: blobs}
}

type CreatePostReq struct {
	Title       string         `json:"title"`
	CommunityId string         `json:"communityId"`
	PostType    model.PostType `json:"postType"`
	Author      string         `json:"author"`

	Content       string `json:"content"`
	Url           string `json:"url"`
	Description   string `json:"description"`
	Caption       string `json:"caption"`
	HasImage      bool   `json:"hasImage"`
	ImageBlobName string `json:"imageBlobName"`

	PollDescription string   `json:"pollDescription"`
	PollOptions     []string `json:"pollOptions"`
	PollDuration    string   `json:"pollDuration"`

	Tags []string `json:"tags"`
}

// CreatePost requires the community to exist before any write. Poll posts get
// poll_results initialized to zero for exactly the given options. The
// community's post_count bump is read-then-write (accepted drift).
func (pc *PostController) CreatePost(ctx context.Context, req *CreatePostReq) (postId string, err error) {
	if req.Title == "" {
		return "", model.NewInvalidInput("post title must not be empty")
	}
	if !req.PostType.Valid() {
		return "", model.NewInvalidInput("postType must be text, image, link, or poll")
	}

	community, err := pc.db.GetCommunityById(ctx, req.CommunityId)
	if err != nil {
		return "", model.NewTransient(err)
	}
	if community == nil {
		return "", model.NewNotFound("community")
	}

	if req.HasImage && pc.blobs != nil {
		exists, err := pc.blobs.Exists(ctx, req.ImageBlobName)
		if err != nil {
			return "", model.NewTransient(err)
		}
		if !exists {
			return "", model.NewInvalidInput("image blob has not been uploaded")
		}
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	now := time.Now().UTC()
	post := &model.Post{
		Id:            uuid.NewString(),
		Title:         req.Title,
		CommunityId:   req.CommunityId,
		CommunityName: community.Name,
		PostType:      req.PostType,
		Author:        req.Author,

		Content:       util.XSSSanitize(req.Content),
		Url:           req.Url,
		Description:   util.XSSSanitize(req.Description),
		Caption:       util.XSSSanitize(req.Caption),
		HasImage:      req.HasImage,
		ImageBlobName: req.ImageBlobName,

		PollDescription: req.PollDescription,
		PollOptions:     req.PollOptions,
		PollDuration:    req.PollDuration,

		Tags:      tags,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.PostType == model.PostTypePoll && len(req.PollOptions) > 0 {
		post.PollResults = make(map[string]int, len(req.PollOptions))
		for _, option := range req.PollOptions {
			post.PollResults[option] = 0
		}
	}

	if err := pc.db.CreatePost(ctx, post); err != nil {
		return "", model.NewTransient(err)
	}
	if err := pc.db.SetCommunityPostCount(ctx, community.Id, community.PostCount+1); err != nil {
		return "", model.NewTransient(err)
	}
	return post.Id, nil
}

type PostWithComments struct {
	Post     *model.Post          `json:"post"`
	Comments []*model.CommentTree `json:"comments"`
}

func (pc *PostController) GetPostWithComments(ctx context.Context, postId string) (*PostWithComments, error) {
	post, err := pc.db.GetPostById(ctx, postId)
	if err != nil {
		return nil, model.NewTransient(err)
	}
	if post == nil {
		return nil, model.NewNotFound("post")
	}

	comments, err := pc.db.GetCommentsForPost(ctx, postId)
	if err != nil {
		return nil, model.NewTransient(err)
	}
	forest, _ := BuildCommentForest(comments)
	return &PostWithComments{
		Post:     post,
		Comments: forest,
	}, nil
}

func (pc *PostController) GetCommunityPosts(ctx context.Context, communityId string) ([]*model.Post, error) {
	community, err := pc.db.GetCommunityById(ctx, communityId)
	if err != nil {
		return nil, model.NewTransient(err)
	}
	if community == nil {
		return nil, model.NewNotFound("community")
	}
	posts, err := pc.db.GetPostsByCommunity(ctx, communityId)
	if err != nil {
		return nil, model.NewTransient(err)
	}
	return posts, nil
}

func (pc *PostController) GetPosts(ctx context.Context) ([]*model.Post, error) {
	posts, err := pc.db.GetPosts(ctx, &db.PostsListQuery{})
	if err != nil {
		return nil, model.NewTransient(err)
	}
	return posts, nil
}

type SearchResult struct {
	Communities []*model.Community `json:"communities"`
	Posts       []*model.Post      `json:"posts"`
}

// Search does case-insensitive substring matching over community
// names/descriptions and post titles/contents. The store has no text index,
// so this scans both collections; acceptable at campus scale.
func (pc *PostController) Search(ctx context.Context, query string) (*SearchResult, error) {
	needle := strings.ToLower(query)

	communities, err := pc.db.GetCommunities(ctx)
	if err != nil {
		return nil, model.NewTransient(err)
	}
	matchedCommunities := []*model.Community{}
	for _, community := range communities {
		if strings.Contains(strings.ToLower(community.Name), needle) ||
			strings.Contains(strings.ToLower(community.Description), needle) {
			matchedCommunities = append(matchedCommunities, community)
		}
	}

	posts, err := pc.db.GetPosts(ctx, &db.PostsListQuery{})
	if err != nil {
		return nil, model.NewTransient(err)
	}
	matchedPosts := []*model.Post{}
	for _, post := range posts {
		if strings.Contains(strings.ToLower(post.Title), needle) ||
			strings.Contains(strings.ToLower(post.Content), needle) {
			matchedPosts = append(matchedPosts, post)
		}
	}

	return &SearchResult{
		Communities: matchedCommunities,
		Posts:       matchedPosts,
	}, nil
}
