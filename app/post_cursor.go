package app

import (
	"context"

	"github.com/recnet/recnet-be/model"
)

type RawCursor map[string]interface{}

type PostCursorOpts struct {
	Limit int
}

type PostCursor interface {
	Posts(ctx context.Context, opts *PostCursorOpts) (posts []*model.Post, cursor interface{}, err error)
}

type PostCursorType string

const (
	PostCursorTypeMostRecent PostCursorType = "MOST_RECENT"
)
