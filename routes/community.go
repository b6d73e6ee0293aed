package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/recnet/recnet-be/controllers"
	"github.com/recnet/recnet-be/util"
)

type communityRoutes struct {
	communities *controllers.CommunityController
	posts       *controllers.PostController
}

func AddCommunityRoutes(group *gin.RouterGroup, communities *controllers.CommunityController, posts *controllers.PostController) {
	routes := communityRoutes{communities, posts}
	communityGroup := group.Group("/communities")
	communityGroup.PUT("", util.HandlerWrapper(routes.createCommunity, &util.HandlerOpts{}))
	communityGroup.GET("", util.HandlerWrapper(routes.getCommunities, &util.HandlerOpts{}))
	communityGroup.POST("/:id/members", util.HandlerWrapper(routes.join, &util.HandlerOpts{}))
	communityGroup.GET("/:id/posts", util.HandlerWrapper(routes.getCommunityPosts, &util.HandlerOpts{}))
}

func (cr *communityRoutes) createCommunity(c *gin.Context) (interface{}, *util.HTTPError) {
	var req controllers.CreateCommunityReq
	if err := c.BindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	communityId, err := cr.communities.CreateCommunity(c, &req)
	if err != nil {
		return nil, util.BuildHTTPErr(err)
	}
	return gin.H{
		"communityId": communityId,
	}, nil
}

func (cr *communityRoutes) getCommunities(c *gin.Context) (interface{}, *util.HTTPError) {
	communities, err := cr.communities.GetCommunities(c)
	if err != nil {
		return nil, util.BuildHTTPErr(err)
	}
	return communities, nil
}

type joinReq struct {
	UserId string `json:"userId"`
}

func (cr *communityRoutes) join(c *gin.Context) (interface{}, *util.HTTPError) {
	var req joinReq
	if err := c.BindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	result, err := cr.communities.Join(c, c.Param("id"), req.UserId)
	if err != nil {
		return nil, util.BuildHTTPErr(err)
	}
	return result, nil
}

func (cr *communityRoutes) getCommunityPosts(c *gin.Context) (interface{}, *util.HTTPError) {
	posts, err := cr.posts.GetCommunityPosts(c, c.Param("id"))
	if err != nil {
		return nil, util.BuildHTTPErr(err)
	}
	return posts, nil
}
