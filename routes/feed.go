package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recnet/recnet-be/app"
	"github.com/recnet/recnet-be/db"
	"github.com/recnet/recnet-be/model"
	"github.com/recnet/recnet-be/util"
)

type feedRoutes struct {
	db db.Database
}

func AddFeedRoutes(group *gin.RouterGroup, database db.Database) {
	routes := feedRoutes{db: database}
	feeds := group.Group("/feeds")
	feeds.POST("", util.HandlerWrapper(routes.getFeed, &util.HandlerOpts{}))
}

type getFeedReq struct {
	OrderBy app.PostCursorType `json:"orderBy"`
	Cursor  app.RawCursor      `json:"cursor"`
}

func (fr *feedRoutes) getFeed(c *gin.Context) (interface{}, *util.HTTPError) {
	var req getFeedReq
	if err := c.BindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	page, err := app.GetFeed(fr.db, req.OrderBy, req.Cursor)
	if err != nil {
		return nil, &util.HTTPError{
			Status:  http.StatusBadRequest,
			Kind:    model.KindInvalidInput,
			Message: err.Error(),
		}
	}
	posts, cursor, err := page.Posts(c, &app.PostCursorOpts{Limit: 20})
	if err != nil {
		return nil, util.BuildHTTPErr(model.NewTransient(err))
	}

	return gin.H{
		"posts":  posts,
		"cursor": cursor,
	}, nil
}
