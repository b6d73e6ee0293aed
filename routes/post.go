package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/recnet/recnet-be/controllers"
	"github.com/recnet/recnet-be/model"
	"github.com/recnet/recnet-be/util"
)

type postRoutes struct {
	posts    *controllers.PostController
	comments *controllers.CommentController
	votes    *controllers.VoteController
}

func AddPostRoutes(group *gin.RouterGroup, posts *controllers.PostController, comments *controllers.CommentController, votes *controllers.VoteController) {
	routes := postRoutes{posts, comments, votes}
	postGroup := group.Group("/posts")
	postGroup.PUT("", util.HandlerWrapper(routes.createPost, &util.HandlerOpts{}))
	postGroup.GET("", util.HandlerWrapper(routes.getPosts, &util.HandlerOpts{}))
	postGroup.GET("/:id", util.HandlerWrapper(routes.getPostWithComments, &util.HandlerOpts{}))
	postGroup.POST("/:id/comments", util.HandlerWrapper(routes.addComment, &util.HandlerOpts{}))
	postGroup.POST("/:id/votes", util.HandlerWrapper(routes.castVote, &util.HandlerOpts{}))

	group.GET("/search", util.HandlerWrapper(routes.search, &util.HandlerOpts{}))
}

func (pr *postRoutes) createPost(c *gin.Context) (interface{}, *util.HTTPError) {
	var req controllers.CreatePostReq
	if err := c.BindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	postId, err := pr.posts.CreatePost(c, &req)
	if err != nil {
		return nil, util.BuildHTTPErr(err)
	}
	return gin.H{
		"postId": postId,
	}, nil
}

func (pr *postRoutes) getPosts(c *gin.Context) (interface{}, *util.HTTPError) {
	posts, err := pr.posts.GetPosts(c)
	if err != nil {
		return nil, util.BuildHTTPErr(err)
	}
	return posts, nil
}

func (pr *postRoutes) getPostWithComments(c *gin.Context) (interface{}, *util.HTTPError) {
	postWithComments, err := pr.posts.GetPostWithComments(c, c.Param("id"))
	if err != nil {
		return nil, util.BuildHTTPErr(err)
	}
	return postWithComments, nil
}

func (pr *postRoutes) addComment(c *gin.Context) (interface{}, *util.HTTPError) {
	var req controllers.AddCommentReq
	if err := c.BindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	comment, err := pr.comments.AddComment(c, c.Param("id"), &req)
	if err != nil {
		return nil, util.BuildHTTPErr(err)
	}
	return gin.H{
		"commentId": comment.Id,
	}, nil
}

type castVoteReq struct {
	UserId   string         `json:"userId"`
	VoteType model.VoteType `json:"voteType"`
}

func (pr *postRoutes) castVote(c *gin.Context) (interface{}, *util.HTTPError) {
	var req castVoteReq
	if err := c.BindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	counts, err := pr.votes.CastVote(c, c.Param("id"), req.UserId, req.VoteType)
	if err != nil {
		return nil, util.BuildHTTPErr(err)
	}
	return counts, nil
}

func (pr *postRoutes) search(c *gin.Context) (interface{}, *util.HTTPError) {
	result, err := pr.posts.Search(c, c.Query("q"))
	if err != nil {
		return nil, util.BuildHTTPErr(err)
	}
	return result, nil
}
