package controllers

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/recnet/recnet-be/db"
	"github.com/recnet/recnet-be/model"
	"github.com/recnet/recnet-be/util"
)

type CommentController struct {
	db db.Database
}

func NewCommentController(database db.Database) *CommentController {
	return &CommentController{db: database}
}

type AddCommentReq struct {
	Author   string `json:"author"`
	Content  string `json:"content"`
	ParentId string `json:"parentId"`
}

// AddComment checks the post (and parent, for replies) before any write.
// The parent must be a comment on the same post. The post's comment_count
// bump is read-then-write; drift under concurrent commenters is accepted.
func (cc *CommentController) AddComment(ctx context.Context, postId string, req *AddCommentReq) (*model.Comment, error) {
	if req.Content == "" {
		return nil, model.NewInvalidInput("comment content must not be empty")
	}

	post, err := cc.db.GetPostById(ctx, postId)
	if err != nil {
		return nil, model.NewTransient(err)
	}
	if post == nil {
		return nil, model.NewNotFound("post")
	}

	if req.ParentId != "" {
		parent, err := cc.db.GetCommentById(ctx, req.ParentId)
		if err != nil {
			return nil, model.NewTransient(err)
		}
		if parent == nil || parent.PostId != postId {
			return nil, model.NewNotFound("parent comment")
		}
	}

	now := time.Now().UTC()
	comment := &model.Comment{
		Id:        uuid.NewString(),
		PostId:    postId,
		ParentId:  req.ParentId,
		Author:    req.Author,
		Content:   util.XSSSanitize(req.Content),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := cc.db.CreateComment(ctx, comment); err != nil {
		return nil, model.NewTransient(err)
	}

	if err := cc.db.SetPostCommentCount(ctx, postId, post.CommentCount+1); err != nil {
		return nil, model.NewTransient(err)
	}
	return comment, nil
}

// GetCommentForest fetches a post's flat comment set and assembles the reply
// forest. Comments pointing at a parent that was not fetched are dropped.
func (cc *CommentController) GetCommentForest(ctx context.Context, postId string) ([]*model.CommentTree, error) {
	comments, err := cc.db.GetCommentsForPost(ctx, postId)
	if err != nil {
		return nil, model.NewTransient(err)
	}
	forest, dropped := BuildCommentForest(comments)
	if dropped > 0 {
		log.Printf("post %v: dropped %v comments with unresolvable parents", postId, dropped)
	}
	return forest, nil
}

// BuildCommentForest reconstructs the reply forest from a flat comment set
// using two explicit passes: map every comment to a node first, then link
// each node to its parent (or to the forest roots). Linking only needs the
// parent node to exist in the map, so the input order is irrelevant; the
// store does not guarantee parent-before-child. Returns the forest and the
// number of comments dropped for an unresolvable parent_id.
func BuildCommentForest(comments []*model.Comment) ([]*model.CommentTree, int) {
	nodes := make(map[string]*model.CommentTree, len(comments))
	for _, comment := range comments {
		nodes[comment.Id] = &model.CommentTree{
			Comment: comment,
			Replies: []*model.CommentTree{},
		}
	}

	forest := []*model.CommentTree{}
	dropped := 0
	for _, comment := range comments {
		node := nodes[comment.Id]
		if comment.ParentId == "" {
			forest = append(forest, node)
			continue
		}
		parent, ok := nodes[comment.ParentId]
		if !ok {
			dropped++
			continue
		}
		parent.Replies = append(parent.Replies, node)
	}
	return forest, dropped
}
