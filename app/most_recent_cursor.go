package app

import (
	"context"
	"time"

	"github.com/recnet/recnet-be/db"
	"github.com/recnet/recnet-be/model"
	"github.com/recnet/recnet-be/util"
)

type mostRecentCursor struct {
	db          db.Database
	CommunityId string    `json:"communityId,omitempty"`
	LastDate    time.Time `json:"lastDate"`
	LastId      string    `json:"lastId"`
}

// MostRecentCursorFromRaw assumes rawCursor is not nil.
func MostRecentCursorFromRaw(database db.Database, rawCursor RawCursor) (*mostRecentCursor, error) {
	lastDate := time.Now().UTC()
	if lastDateStr, hasLastDate := rawCursor["lastDate"].(string); hasLastDate {
		var err error
		lastDate, err = util.ParseTime(lastDateStr)
		if err != nil {
			return nil, err
		}
	}

	communityId, _ := rawCursor["communityId"].(string)
	lastId, _ := rawCursor["lastId"].(string)

	return &mostRecentCursor{
		db:          database,
		CommunityId: communityId,
		LastDate:    lastDate,
		LastId:      lastId,
	}, nil
}

func (mrpc *mostRecentCursor) Posts(ctx context.Context, cursorOpts *PostCursorOpts) (posts []*model.Post, cursor interface{}, err error) {
	posts, err = mrpc.db.GetPosts(ctx, &db.PostsListQuery{
		From:        &mrpc.LastDate,
		LastId:      mrpc.LastId,
		CommunityId: mrpc.CommunityId,
		Limit:       cursorOpts.Limit,
	})
	if err != nil {
		return nil, nil, err
	}
	return posts, mrpc.buildCursorForNextPage(posts), nil
}

func (mrpc *mostRecentCursor) buildCursorForNextPage(previousPosts []*model.Post) *mostRecentCursor {
	if len(previousPosts) == 0 {
		return nil
	}
	last := previousPosts[len(previousPosts)-1]
	return &mostRecentCursor{
		db:          mrpc.db,
		CommunityId: mrpc.CommunityId,
		LastDate:    last.CreatedAt,
		LastId:      last.Id,
	}
}
